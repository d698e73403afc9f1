package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kamil5b/sewa-alat-berat/config"
	"github.com/kamil5b/sewa-alat-berat/database"
	"github.com/kamil5b/sewa-alat-berat/models"
)

// GET
func GetHome(c *fiber.Ctx) error {
	alat := []models.Alat{}
	posts := []models.Blog{}
	galeri := []models.Galeri{}
	if err := database.DB.Where("tersedia = ?", true).Order("id desc").Limit(6).Find(&alat).Error; err != nil {
		return err
	}
	if err := database.DB.Where("published = ?", true).Order("published_at desc, id desc").Limit(3).Find(&posts).Error; err != nil {
		return err
	}
	if err := database.DB.Order("id desc").Limit(8).Find(&galeri).Error; err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"perusahaan": config.App.Company,
		"alat":       alat,
		"blog":       posts,
		"galeri":     galeri,
	})
}

// GET
func GetAbout(c *fiber.Ctx) error {
	return c.JSON(config.App.Company)
}
