package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kamil5b/sewa-alat-berat/database"
	"github.com/kamil5b/sewa-alat-berat/document"
	"github.com/kamil5b/sewa-alat-berat/models"
	"gorm.io/gorm"
)

// GET ?q=
func GetAllSuratJalan(c *fiber.Ctx) error {
	surat := []models.SuratJalan{}
	q := database.DB.Preload("Items").Order("tanggal desc, id desc")
	if s := c.Query("q"); s != "" {
		q = q.Where("nomor LIKE ? OR penerima LIKE ?", like(s), like(s))
	}
	if err := q.Find(&surat).Error; err != nil {
		return err
	}
	return c.JSON(surat)
}

// GET
func GetSuratJalan(c *fiber.Ctx) error {
	var sj models.SuratJalan
	if err := findByID(c, &sj, "Items"); err != nil {
		return err
	}
	return c.JSON(sj)
}

// POST
func PostSuratJalan(c *fiber.Ctx) error {
	/*
		{
			nomor:
			tanggal:
			pengirim:
			penerima:
			alamat_tujuan:
			no_kendaraan:
			sopir:
			keterangan:
			items: [{nama_barang, jumlah, satuan, keterangan}]
		}
	*/
	var sj models.SuratJalan
	if err := parseBody(c, &sj); err != nil {
		return err
	}
	sj.Base = models.Base{}
	if err := validate(sj); err != nil {
		return err
	}
	if err := nomorDipakai(&models.SuratJalan{}, sj.Nomor, 0); err != nil {
		return err
	}
	for i := range sj.Items {
		sj.Items[i].ID = 0
		sj.Items[i].SuratJalanID = 0
	}
	if err := database.DB.Create(&sj).Error; err != nil {
		return err
	}
	return success(c, fiber.StatusCreated, sj)
}

// PUT
func UpdateSuratJalan(c *fiber.Ctx) error {
	var sj models.SuratJalan
	if err := findByID(c, &sj); err != nil {
		return err
	}
	base := sj.Base
	if err := parseBody(c, &sj); err != nil {
		return err
	}
	sj.Base = base
	if err := validate(sj); err != nil {
		return err
	}
	if err := nomorDipakai(&models.SuratJalan{}, sj.Nomor, sj.ID); err != nil {
		return err
	}
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("surat_jalan_id = ?", sj.ID).Delete(&models.SuratJalanItem{}).Error; err != nil {
			return err
		}
		for i := range sj.Items {
			sj.Items[i].ID = 0
			sj.Items[i].SuratJalanID = sj.ID
		}
		if err := tx.Omit("Items").Save(&sj).Error; err != nil {
			return err
		}
		return tx.Create(&sj.Items).Error
	})
	if err != nil {
		return err
	}
	return success(c, fiber.StatusOK, sj)
}

// DELETE
func DeleteSuratJalan(c *fiber.Ctx) error {
	return deleteByID(c, &models.SuratJalan{})
}

// GET
func PdfSuratJalan(c *fiber.Ctx) error {
	var sj models.SuratJalan
	if err := findByID(c, &sj, "Items"); err != nil {
		return err
	}
	return sendPDF(c, document.SuratJalan(sj, companyHeader()))
}
