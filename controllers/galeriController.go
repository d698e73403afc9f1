package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kamil5b/sewa-alat-berat/config"
	"github.com/kamil5b/sewa-alat-berat/database"
	"github.com/kamil5b/sewa-alat-berat/models"
	"github.com/kamil5b/sewa-alat-berat/utils"
)

// GET ?tipe=foto|video
func GetGaleriPublik(c *fiber.Ctx) error {
	items := []models.Galeri{}
	q := database.DB.Order("id desc")
	if tipe := c.Query("tipe"); tipe != "" {
		q = q.Where("tipe = ?", tipe)
	}
	if err := q.Find(&items).Error; err != nil {
		return err
	}
	return c.JSON(items)
}

// GET
func GetGaleri(c *fiber.Ctx) error {
	var item models.Galeri
	if err := findByID(c, &item); err != nil {
		return err
	}
	return c.JSON(item)
}

// POST
func PostGaleri(c *fiber.Ctx) error {
	/*
		{
			judul:
			tipe: foto | video
			url:
			deskripsi:
		}
	*/
	var item models.Galeri
	if err := parseBody(c, &item); err != nil {
		return err
	}
	item.Base = models.Base{}
	if err := validate(item); err != nil {
		return err
	}
	if err := database.DB.Create(&item).Error; err != nil {
		return err
	}
	return success(c, fiber.StatusCreated, item)
}

// POST multipart: file, judul, deskripsi
func UploadGaleri(c *fiber.Ctx) error {
	path, err := saveImage(c)
	if err != nil {
		return err
	}
	item := models.Galeri{
		Judul:     c.FormValue("judul"),
		Deskripsi: c.FormValue("deskripsi"),
		Tipe:      models.TipeFoto,
		URL:       path,
	}
	if err := database.DB.Create(&item).Error; err != nil {
		utils.RemoveUpload(config.App.UploadDir, path)
		return err
	}
	return success(c, fiber.StatusCreated, item)
}

// PUT
func UpdateGaleri(c *fiber.Ctx) error {
	var item models.Galeri
	if err := findByID(c, &item); err != nil {
		return err
	}
	base := item.Base
	if err := parseBody(c, &item); err != nil {
		return err
	}
	item.Base = base
	if err := validate(item); err != nil {
		return err
	}
	if err := database.DB.Save(&item).Error; err != nil {
		return err
	}
	return success(c, fiber.StatusOK, item)
}

// DELETE
func DeleteGaleri(c *fiber.Ctx) error {
	var item models.Galeri
	if err := findByID(c, &item); err != nil {
		return err
	}
	if err := database.DB.Delete(&item).Error; err != nil {
		return err
	}
	utils.RemoveUpload(config.App.UploadDir, item.URL)
	return c.JSON(fiber.Map{
		"message": "success",
	})
}
