package controllers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/kamil5b/sewa-alat-berat/config"
	"github.com/kamil5b/sewa-alat-berat/database"
	"github.com/kamil5b/sewa-alat-berat/document"
	"github.com/kamil5b/sewa-alat-berat/logger"
	"github.com/kamil5b/sewa-alat-berat/models"
	"github.com/kamil5b/sewa-alat-berat/utils"
	"gorm.io/gorm"
)

var errNotFound = fiber.NewError(fiber.StatusNotFound, "data tidak ditemukan")

// ErrorHandler turns handler errors into {"message": ...} responses.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "terjadi kesalahan pada server"
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		code, msg = fe.Code, fe.Message
	case errors.Is(err, gorm.ErrRecordNotFound):
		code, msg = fiber.StatusNotFound, "data tidak ditemukan"
	}
	if code >= fiber.StatusInternalServerError {
		logger.Log.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
	}
	return c.Status(code).JSON(fiber.Map{
		"message": msg,
	})
}

func badRequest(msg string) error {
	return fiber.NewError(fiber.StatusBadRequest, msg)
}

func paramID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, badRequest("id tidak valid")
	}
	return uint(id), nil
}

// findByID loads the record named by the :id route parameter into dest.
func findByID(c *fiber.Ctx, dest interface{}, preloads ...string) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	q := database.DB
	for _, p := range preloads {
		q = q.Preload(p)
	}
	if err := q.First(dest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound
		}
		return fmt.Errorf("ambil data: %w", err)
	}
	return nil
}

func parseBody(c *fiber.Ctx, dest interface{}) error {
	if err := c.BodyParser(dest); err != nil {
		logger.Log.Debug("body parser", "path", c.Path(), "error", err)
		return badRequest("format data tidak valid")
	}
	return nil
}

func validate(v interface{ Validate() error }) error {
	if err := v.Validate(); err != nil {
		return badRequest(err.Error())
	}
	return nil
}

func success(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(fiber.Map{
		"message": "success",
		"data":    data,
	})
}

func deleteByID(c *fiber.Ctx, model interface{}) error {
	if err := findByID(c, model); err != nil {
		return err
	}
	if err := database.DB.Delete(model).Error; err != nil {
		return fmt.Errorf("hapus data: %w", err)
	}
	return c.JSON(fiber.Map{
		"message": "success",
	})
}

// nomorDipakai reports whether another live record of model already uses nomor.
func nomorDipakai(model interface{}, nomor string, exceptID uint) error {
	var n int64
	err := database.DB.Model(model).
		Where("nomor = ?", nomor).
		Where("id <> ?", exceptID).
		Count(&n).Error
	if err != nil {
		return fmt.Errorf("cek nomor: %w", err)
	}
	if n > 0 {
		return badRequest("nomor " + nomor + " sudah dipakai")
	}
	return nil
}

func pagination(c *fiber.Ctx) (page, limit int) {
	q := utils.MapStringToInt(c.Queries())
	page, limit = q["page"], q["limit"]
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}
	return page, limit
}

func optionalDate(c *fiber.Ctx, key string) (models.Date, error) {
	s := c.Query(key)
	if s == "" {
		return models.Date{}, nil
	}
	d, err := models.ParseDate(s)
	if err != nil {
		return models.Date{}, badRequest("tanggal " + key + " tidak valid")
	}
	return d, nil
}

func like(s string) string {
	return "%" + s + "%"
}

func companyHeader() document.Header {
	co := config.App.Company
	return document.Header{
		Name:    co.Name,
		Address: co.Address,
		Phone:   co.Phone,
		Email:   co.Email,
	}
}

func sendPDF(c *fiber.Ctx, doc document.Document) error {
	out, err := document.Render(doc, document.DefaultOptions())
	if errors.Is(err, document.ErrTooLong) {
		return badRequest("dokumen terlalu panjang untuk dicetak, persempit periode atau filter data")
	}
	if err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+doc.Filename+`"`)
	return c.Send(out)
}
