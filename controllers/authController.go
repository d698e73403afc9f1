package controllers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/kamil5b/sewa-alat-berat/config"
	"github.com/kamil5b/sewa-alat-berat/database"
	"github.com/kamil5b/sewa-alat-berat/logger"
	"github.com/kamil5b/sewa-alat-berat/middleware"
	"github.com/kamil5b/sewa-alat-berat/models"
	"golang.org/x/crypto/bcrypt"
)

// POST
func Register(c *fiber.Ctx) error {
	/*
		{
			name:
			email:
			password:
		}
	*/
	var data map[string]string
	if err := parseBody(c, &data); err != nil {
		return err
	}
	var users int64
	if err := database.DB.Model(&models.User{}).Count(&users).Error; err != nil {
		return err
	}
	// the very first admin can always register
	if !config.App.AllowRegister && users > 0 {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "registrasi ditutup",
		})
	}

	email := strings.ToLower(strings.TrimSpace(data["email"]))
	if data["name"] == "" || email == "" || data["password"] == "" {
		return badRequest("nama, email dan password wajib diisi")
	}
	if len(data["password"]) < 6 {
		return badRequest("password minimal 6 karakter")
	}
	var n int64
	if err := database.DB.Model(&models.User{}).Where("email = ?", email).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return badRequest("email sudah terdaftar")
	}

	password, err := bcrypt.GenerateFromPassword([]byte(data["password"]), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := models.User{
		Name:     data["name"],
		Email:    email,
		Password: password,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		return err
	}
	logger.Log.Info("admin registered", "id", user.ID, "email", user.Email)
	return c.Status(fiber.StatusCreated).JSON(user)
}

// POST
func Login(c *fiber.Ctx) error {
	/*
		{
			email:
			password:
		}
	*/
	var data map[string]string
	if err := parseBody(c, &data); err != nil {
		return err
	}
	var user models.User
	email := strings.ToLower(strings.TrimSpace(data["email"]))
	database.DB.Where("email = ?", email).Limit(1).Find(&user)
	if user.ID == 0 {
		return badRequest("email atau password salah")
	}
	if err := bcrypt.CompareHashAndPassword(user.Password, []byte(data["password"])); err != nil {
		return badRequest("email atau password salah")
	}

	token, expires, err := middleware.IssueToken(user.ID, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "could not login",
		})
	}
	c.Cookie(&fiber.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Expires:  expires,
		HTTPOnly: true,
		Secure:   config.App.IsProd(),
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(fiber.Map{
		"message": "success",
		"token":   token,
	})
}

// GET
func User(c *fiber.Ctx) error {
	id, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "unauthenticated",
		})
	}
	var user models.User
	database.DB.Limit(1).Find(&user, id)
	if user.ID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "unauthenticated",
		})
	}
	return c.JSON(user)
}

// POST
func Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return c.JSON(fiber.Map{
		"message": "success",
	})
}
