package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/kamil5b/sewa-alat-berat/database"
	"github.com/kamil5b/sewa-alat-berat/logger"
	"github.com/kamil5b/sewa-alat-berat/models"
)

// POST
func PostKontak(c *fiber.Ctx) error {
	/*
		{
			nama:
			email:
			telepon:
			pesan:
		}
	*/
	var data map[string]string
	if err := parseBody(c, &data); err != nil {
		return err
	}
	kontak := models.Kontak{
		Nama:    strings.TrimSpace(data["nama"]),
		Email:   strings.TrimSpace(data["email"]),
		Telepon: strings.TrimSpace(data["telepon"]),
		Pesan:   strings.TrimSpace(data["pesan"]),
	}
	if err := validate(kontak); err != nil {
		return err
	}
	if err := database.DB.Create(&kontak).Error; err != nil {
		return err
	}
	logger.Log.Info("pesan kontak masuk", "id", kontak.ID, "nama", kontak.Nama)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "pesan terkirim",
	})
}

// GET ?dibaca=true|false
func GetAllKontak(c *fiber.Ctx) error {
	kontak := []models.Kontak{}
	q := database.DB.Order("id desc")
	switch c.Query("dibaca") {
	case "true":
		q = q.Where("dibaca = ?", true)
	case "false":
		q = q.Where("dibaca = ?", false)
	}
	if err := q.Find(&kontak).Error; err != nil {
		return err
	}
	return c.JSON(kontak)
}

// GET
func GetKontak(c *fiber.Ctx) error {
	var kontak models.Kontak
	if err := findByID(c, &kontak); err != nil {
		return err
	}
	return c.JSON(kontak)
}

// PUT
func TandaiKontakDibaca(c *fiber.Ctx) error {
	var kontak models.Kontak
	if err := findByID(c, &kontak); err != nil {
		return err
	}
	if err := database.DB.Model(&kontak).Update("dibaca", true).Error; err != nil {
		return err
	}
	kontak.Dibaca = true
	return success(c, fiber.StatusOK, kontak)
}

// DELETE
func DeleteKontak(c *fiber.Ctx) error {
	return deleteByID(c, &models.Kontak{})
}
