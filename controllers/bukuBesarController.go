package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/kamil5b/sewa-alat-berat/database"
	"github.com/kamil5b/sewa-alat-berat/document"
	"github.com/kamil5b/sewa-alat-berat/models"
	"gorm.io/gorm"
)

func today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ringkasan loads the entries of one account in [dari, sampai] ordered by
// date then id, with the running balance filled in. The opening balance is
// the net of every earlier entry of the account.
func ringkasan(akun string, dari, sampai models.Date) (models.RingkasanBukuBesar, error) {
	var saldoAwal int64
	if !dari.IsZero() {
		err := database.DB.Model(&models.BukuBesar{}).
			Select("COALESCE(SUM(debit), 0) - COALESCE(SUM(kredit), 0)").
			Where("akun = ? AND tanggal < ?", akun, dari).
			Row().Scan(&saldoAwal)
		if err != nil {
			return models.RingkasanBukuBesar{}, err
		}
	}

	var entries []models.BukuBesar
	q := database.DB.Where("akun = ?", akun)
	if !dari.IsZero() {
		q = q.Where("tanggal >= ?", dari)
	}
	if !sampai.IsZero() {
		q = q.Where("tanggal <= ?", sampai)
	}
	if err := q.Order("tanggal asc, id asc").Find(&entries).Error; err != nil {
		return models.RingkasanBukuBesar{}, err
	}
	r := models.HitungSaldo(saldoAwal, entries)
	r.Akun = akun
	return r, nil
}

func ringkasanQuery(c *fiber.Ctx) (models.RingkasanBukuBesar, models.Date, models.Date, error) {
	dari, err := optionalDate(c, "dari")
	if err != nil {
		return models.RingkasanBukuBesar{}, dari, dari, err
	}
	sampai, err := optionalDate(c, "sampai")
	if err != nil {
		return models.RingkasanBukuBesar{}, dari, sampai, err
	}
	if !dari.IsZero() && !sampai.IsZero() && sampai.Before(dari) {
		return models.RingkasanBukuBesar{}, dari, sampai, badRequest("tanggal sampai tidak boleh sebelum tanggal dari")
	}
	r, err := ringkasan(c.Query("akun", models.DefaultAkun), dari, sampai)
	return r, dari, sampai, err
}

// GET ?akun=&dari=&sampai=
func GetBukuBesar(c *fiber.Ctx) error {
	r, _, _, err := ringkasanQuery(c)
	if err != nil {
		return err
	}
	return c.JSON(r)
}

// GET
func GetAkunBukuBesar(c *fiber.Ctx) error {
	akun := []string{}
	err := database.DB.Model(&models.BukuBesar{}).
		Distinct("akun").
		Order("akun").
		Pluck("akun", &akun).Error
	if err != nil {
		return err
	}
	return c.JSON(akun)
}

// GET
func GetEntriBukuBesar(c *fiber.Ctx) error {
	var entry models.BukuBesar
	if err := findByID(c, &entry); err != nil {
		return err
	}
	return c.JSON(entry)
}

// POST
func PostBukuBesar(c *fiber.Ctx) error {
	/*
		{
			tanggal:
			akun: (default Kas)
			keterangan:
			debit:
			kredit:
			referensi:
		}
	*/
	var entry models.BukuBesar
	if err := parseBody(c, &entry); err != nil {
		return err
	}
	entry.Base = models.Base{}
	entry.Sumber, entry.SumberID = "", 0
	if entry.Akun == "" {
		entry.Akun = models.DefaultAkun
	}
	if err := validate(entry); err != nil {
		return err
	}
	if err := database.DB.Create(&entry).Error; err != nil {
		return err
	}
	return success(c, fiber.StatusCreated, entry)
}

// PUT
func UpdateBukuBesar(c *fiber.Ctx) error {
	var entry models.BukuBesar
	if err := findByID(c, &entry); err != nil {
		return err
	}
	base, sumber, sumberID := entry.Base, entry.Sumber, entry.SumberID
	if err := parseBody(c, &entry); err != nil {
		return err
	}
	entry.Base, entry.Sumber, entry.SumberID = base, sumber, sumberID
	if entry.Akun == "" {
		entry.Akun = models.DefaultAkun
	}
	if err := validate(entry); err != nil {
		return err
	}
	if err := database.DB.Save(&entry).Error; err != nil {
		return err
	}
	return success(c, fiber.StatusOK, entry)
}

// DELETE
func DeleteBukuBesar(c *fiber.Ctx) error {
	return deleteByID(c, &models.BukuBesar{})
}

// GET ?akun=&dari=&sampai=
func PdfBukuBesar(c *fiber.Ctx) error {
	r, dari, sampai, err := ringkasanQuery(c)
	if err != nil {
		return err
	}
	return sendPDF(c, document.BukuBesar(r, dari, sampai, companyHeader()))
}

// catatBukuBesar books an entry generated by another module. Each source
// record is booked at most once.
func catatBukuBesar(tx *gorm.DB, entry models.BukuBesar) error {
	var n int64
	err := tx.Model(&models.BukuBesar{}).
		Where("sumber = ? AND sumber_id = ?", entry.Sumber, entry.SumberID).
		Count(&n).Error
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return tx.Create(&entry).Error
}
