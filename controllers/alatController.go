package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/kamil5b/sewa-alat-berat/config"
	"github.com/kamil5b/sewa-alat-berat/database"
	"github.com/kamil5b/sewa-alat-berat/models"
	"github.com/kamil5b/sewa-alat-berat/utils"
)

// GET
func GetAlatPublik(c *fiber.Ctx) error {
	alat := []models.Alat{}
	q := database.DB.Where("tersedia = ?", true)
	if kategori := c.Query("kategori"); kategori != "" {
		q = q.Where("kategori = ?", kategori)
	}
	if err := q.Order("id desc").Find(&alat).Error; err != nil {
		return err
	}
	return c.JSON(alat)
}

// GET
func GetSatuAlatPublik(c *fiber.Ctx) error {
	var alat models.Alat
	if err := findByID(c, &alat); err != nil {
		return err
	}
	if !alat.Tersedia {
		return errNotFound
	}
	return c.JSON(alat)
}

// GET
func GetAllAlat(c *fiber.Ctx) error {
	alat := []models.Alat{}
	q := database.DB.Order("id desc")
	if s := c.Query("q"); s != "" {
		q = q.Where("nama LIKE ? OR kategori LIKE ?", like(s), like(s))
	}
	if err := q.Find(&alat).Error; err != nil {
		return err
	}
	return c.JSON(alat)
}

// GET
func GetAlat(c *fiber.Ctx) error {
	var alat models.Alat
	if err := findByID(c, &alat); err != nil {
		return err
	}
	return c.JSON(alat)
}

// POST
func PostAlat(c *fiber.Ctx) error {
	/*
		{
			nama:
			kategori:
			merk:
			kapasitas:
			deskripsi:
			harga_sewa_harian:
			harga_sewa_bulanan:
			tersedia:
		}
	*/
	alat := models.Alat{Tersedia: true}
	if err := parseBody(c, &alat); err != nil {
		return err
	}
	alat.Base = models.Base{}
	if err := validate(alat); err != nil {
		return err
	}
	if err := database.DB.Create(&alat).Error; err != nil {
		return err
	}
	return success(c, fiber.StatusCreated, alat)
}

// PUT
func UpdateAlat(c *fiber.Ctx) error {
	var alat models.Alat
	if err := findByID(c, &alat); err != nil {
		return err
	}
	base, gambar := alat.Base, alat.Gambar
	if err := parseBody(c, &alat); err != nil {
		return err
	}
	alat.Base = base
	if alat.Gambar == "" {
		alat.Gambar = gambar
	}
	if err := validate(alat); err != nil {
		return err
	}
	if err := database.DB.Save(&alat).Error; err != nil {
		return err
	}
	return success(c, fiber.StatusOK, alat)
}

// DELETE
func DeleteAlat(c *fiber.Ctx) error {
	return deleteByID(c, &models.Alat{})
}

// POST multipart: file
func UploadGambarAlat(c *fiber.Ctx) error {
	var alat models.Alat
	if err := findByID(c, &alat); err != nil {
		return err
	}
	path, err := saveImage(c)
	if err != nil {
		return err
	}
	utils.RemoveUpload(config.App.UploadDir, alat.Gambar)
	alat.Gambar = path
	if err := database.DB.Save(&alat).Error; err != nil {
		return err
	}
	return success(c, fiber.StatusOK, alat)
}

func saveImage(c *fiber.Ctx) (string, error) {
	path, err := utils.SaveUpload(c, "file", config.App.UploadDir, utils.ImageExt)
	switch {
	case errors.Is(err, utils.ErrEkstensi):
		return "", badRequest("file harus berupa gambar jpg, jpeg, png, webp atau gif")
	case errors.Is(err, utils.ErrFileKosong):
		return "", badRequest("file gambar wajib diunggah")
	case err != nil:
		return "", err
	}
	return path, nil
}
