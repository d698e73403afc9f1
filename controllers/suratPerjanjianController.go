package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kamil5b/sewa-alat-berat/config"
	"github.com/kamil5b/sewa-alat-berat/database"
	"github.com/kamil5b/sewa-alat-berat/document"
	"github.com/kamil5b/sewa-alat-berat/models"
)

// GET ?q=
func GetAllSuratPerjanjian(c *fiber.Ctx) error {
	surat := []models.SuratPerjanjian{}
	q := database.DB.Order("tanggal desc, id desc")
	if s := c.Query("q"); s != "" {
		q = q.Where("nomor LIKE ? OR pihak_kedua LIKE ?", like(s), like(s))
	}
	if err := q.Find(&surat).Error; err != nil {
		return err
	}
	return c.JSON(surat)
}

// GET
func GetSuratPerjanjian(c *fiber.Ctx) error {
	var sp models.SuratPerjanjian
	if err := findByID(c, &sp); err != nil {
		return err
	}
	return c.JSON(sp)
}

// lengkapiPerjanjian fills defaults, resolves the referenced equipment and
// recomputes the contract value.
func lengkapiPerjanjian(sp *models.SuratPerjanjian) error {
	if sp.PihakPertama == "" {
		sp.PihakPertama = config.App.Company.Name
	}
	if sp.SatuanSewa == "" {
		sp.SatuanSewa = models.SatuanHari
	}
	if sp.AlatID != nil && *sp.AlatID != 0 {
		var alat models.Alat
		database.DB.Limit(1).Find(&alat, *sp.AlatID)
		if alat.ID == 0 {
			return badRequest("alat tidak ditemukan")
		}
		if sp.NamaAlat == "" {
			sp.NamaAlat = alat.Nama
		}
	} else {
		sp.AlatID = nil
	}
	if err := validate(sp); err != nil {
		return err
	}
	sp.Hitung()
	return nil
}

// POST
func PostSuratPerjanjian(c *fiber.Ctx) error {
	/*
		{
			nomor:
			tanggal:
			pihak_pertama:
			pihak_kedua:
			alamat_pihak_kedua:
			alat_id:
			nama_alat:
			lokasi_proyek:
			tanggal_mulai:
			tanggal_selesai:
			harga_sewa:
			satuan_sewa: hari | bulan
			ketentuan:
		}
	*/
	var sp models.SuratPerjanjian
	if err := parseBody(c, &sp); err != nil {
		return err
	}
	sp.Base = models.Base{}
	if err := lengkapiPerjanjian(&sp); err != nil {
		return err
	}
	if err := nomorDipakai(&models.SuratPerjanjian{}, sp.Nomor, 0); err != nil {
		return err
	}
	if err := database.DB.Create(&sp).Error; err != nil {
		return err
	}
	return success(c, fiber.StatusCreated, sp)
}

// PUT
func UpdateSuratPerjanjian(c *fiber.Ctx) error {
	var sp models.SuratPerjanjian
	if err := findByID(c, &sp); err != nil {
		return err
	}
	base := sp.Base
	if err := parseBody(c, &sp); err != nil {
		return err
	}
	sp.Base = base
	if err := lengkapiPerjanjian(&sp); err != nil {
		return err
	}
	if err := nomorDipakai(&models.SuratPerjanjian{}, sp.Nomor, sp.ID); err != nil {
		return err
	}
	if err := database.DB.Save(&sp).Error; err != nil {
		return err
	}
	return success(c, fiber.StatusOK, sp)
}

// DELETE
func DeleteSuratPerjanjian(c *fiber.Ctx) error {
	return deleteByID(c, &models.SuratPerjanjian{})
}

// GET
func PdfSuratPerjanjian(c *fiber.Ctx) error {
	var sp models.SuratPerjanjian
	if err := findByID(c, &sp); err != nil {
		return err
	}
	return sendPDF(c, document.SuratPerjanjian(sp, companyHeader()))
}
