package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/kamil5b/sewa-alat-berat/database"
	"github.com/kamil5b/sewa-alat-berat/document"
	"github.com/kamil5b/sewa-alat-berat/models"
	"github.com/kamil5b/sewa-alat-berat/utils"
	"gorm.io/gorm"
)

// GET ?pekerja_id=
func GetAllGaji(c *fiber.Ctx) error {
	gaji := []models.Gaji{}
	q := database.DB.Preload("Pekerja").Order("tanggal_mulai desc, id desc")
	if id := utils.MapStringToInt(c.Queries())["pekerja_id"]; id > 0 {
		q = q.Where("pekerja_id = ?", id)
	}
	if err := q.Find(&gaji).Error; err != nil {
		return err
	}
	return c.JSON(gaji)
}

// GET
func GetGaji(c *fiber.Ctx) error {
	var g models.Gaji
	if err := findByID(c, &g, "Pekerja"); err != nil {
		return err
	}
	return c.JSON(g)
}

// lengkapiGaji checks the worker exists, fills rates from it and computes
// the totals. The worker is attached only after saving so gorm does not
// write it back.
func lengkapiGaji(g *models.Gaji) (models.Pekerja, error) {
	g.Pekerja = nil
	var p models.Pekerja
	if g.PekerjaID != 0 {
		database.DB.Limit(1).Find(&p, g.PekerjaID)
	}
	if p.ID == 0 {
		return p, badRequest("pekerja tidak ditemukan")
	}
	g.IsiDariPekerja(p)
	if err := validate(g); err != nil {
		return p, err
	}
	g.Hitung()
	return p, nil
}

// POST
func PostGaji(c *fiber.Ctx) error {
	/*
		{
			pekerja_id:
			periode: mingguan | bulanan (default dari pekerja)
			tanggal_mulai:
			tanggal_selesai:
			hari_kerja:
			upah_harian:
			gaji_pokok:
			lembur:
			bonus:
			potongan:
			kasbon:
			catatan:
		}
	*/
	var g models.Gaji
	if err := parseBody(c, &g); err != nil {
		return err
	}
	g.Base = models.Base{}
	g.Dibayar = false
	p, err := lengkapiGaji(&g)
	if err != nil {
		return err
	}
	if err := database.DB.Create(&g).Error; err != nil {
		return err
	}
	g.Pekerja = &p
	return success(c, fiber.StatusCreated, g)
}

// PUT
func UpdateGaji(c *fiber.Ctx) error {
	var g models.Gaji
	if err := findByID(c, &g); err != nil {
		return err
	}
	if g.Dibayar {
		return fiber.NewError(fiber.StatusConflict, "gaji sudah dibayar, tidak dapat diubah")
	}
	base := g.Base
	if err := parseBody(c, &g); err != nil {
		return err
	}
	g.Base, g.Dibayar = base, false
	p, err := lengkapiGaji(&g)
	if err != nil {
		return err
	}
	if err := database.DB.Save(&g).Error; err != nil {
		return err
	}
	g.Pekerja = &p
	return success(c, fiber.StatusOK, g)
}

// PUT

// BayarGaji marks the payroll paid and books the payout as a credit in the
// ledger.
func BayarGaji(c *fiber.Ctx) error {
	var g models.Gaji
	if err := findByID(c, &g, "Pekerja"); err != nil {
		return err
	}
	if g.Dibayar {
		return c.JSON(fiber.Map{
			"message": "gaji sudah dibayar",
			"data":    g,
		})
	}
	nama := ""
	if g.Pekerja != nil {
		nama = g.Pekerja.Nama
	}
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Gaji{}).Where("id = ?", g.ID).Update("dibayar", true).Error; err != nil {
			return err
		}
		if g.Total <= 0 {
			return nil
		}
		return catatBukuBesar(tx, models.BukuBesar{
			Tanggal:    models.Date{Time: today()},
			Akun:       models.DefaultAkun,
			Keterangan: fmt.Sprintf("Pembayaran gaji %s periode %s s/d %s", nama, g.TanggalMulai, g.TanggalSelesai),
			Kredit:     g.Total,
			Referensi:  fmt.Sprintf("GAJI-%d", g.ID),
			Sumber:     models.SumberGaji,
			SumberID:   g.ID,
		})
	})
	if err != nil {
		return err
	}
	g.Dibayar = true
	return success(c, fiber.StatusOK, g)
}

// DELETE
func DeleteGaji(c *fiber.Ctx) error {
	return deleteByID(c, &models.Gaji{})
}

// GET
func PdfGaji(c *fiber.Ctx) error {
	var g models.Gaji
	if err := findByID(c, &g, "Pekerja"); err != nil {
		return err
	}
	return sendPDF(c, document.SlipGaji(g, companyHeader()))
}
