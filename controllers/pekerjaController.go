package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kamil5b/sewa-alat-berat/database"
	"github.com/kamil5b/sewa-alat-berat/models"
)

// GET ?aktif=true|false&q=
func GetAllPekerja(c *fiber.Ctx) error {
	pekerja := []models.Pekerja{}
	q := database.DB.Order("nama asc")
	switch c.Query("aktif") {
	case "true":
		q = q.Where("aktif = ?", true)
	case "false":
		q = q.Where("aktif = ?", false)
	}
	if s := c.Query("q"); s != "" {
		q = q.Where("nama LIKE ? OR jabatan LIKE ?", like(s), like(s))
	}
	if err := q.Find(&pekerja).Error; err != nil {
		return err
	}
	return c.JSON(pekerja)
}

// GET
func GetPekerja(c *fiber.Ctx) error {
	var p models.Pekerja
	if err := findByID(c, &p); err != nil {
		return err
	}
	return c.JSON(p)
}

// POST
func PostPekerja(c *fiber.Ctx) error {
	/*
		{
			nama:
			nik:
			jabatan:
			telepon:
			alamat:
			tipe_gaji: mingguan | bulanan
			upah_harian:
			gaji_pokok:
			aktif:
			tanggal_masuk:
		}
	*/
	p := models.Pekerja{Aktif: true, TipeGaji: models.PeriodeMingguan}
	if err := parseBody(c, &p); err != nil {
		return err
	}
	p.Base = models.Base{}
	if err := validate(p); err != nil {
		return err
	}
	if err := database.DB.Create(&p).Error; err != nil {
		return err
	}
	return success(c, fiber.StatusCreated, p)
}

// PUT
func UpdatePekerja(c *fiber.Ctx) error {
	var p models.Pekerja
	if err := findByID(c, &p); err != nil {
		return err
	}
	base := p.Base
	if err := parseBody(c, &p); err != nil {
		return err
	}
	p.Base = base
	if err := validate(p); err != nil {
		return err
	}
	if err := database.DB.Save(&p).Error; err != nil {
		return err
	}
	return success(c, fiber.StatusOK, p)
}

// DELETE
func DeletePekerja(c *fiber.Ctx) error {
	var p models.Pekerja
	if err := findByID(c, &p); err != nil {
		return err
	}
	var n int64
	if err := database.DB.Model(&models.Gaji{}).Where("pekerja_id = ?", p.ID).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "pekerja masih memiliki data gaji, nonaktifkan saja",
		})
	}
	if err := database.DB.Delete(&p).Error; err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "success",
	})
}
