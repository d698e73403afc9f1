package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/kamil5b/sewa-alat-berat/database"
	"github.com/kamil5b/sewa-alat-berat/document"
	"github.com/kamil5b/sewa-alat-berat/models"
	"gorm.io/gorm"
)

var errSudahLunas = fiber.NewError(fiber.StatusConflict, "invoice sudah lunas, tidak dapat diubah")

// GET ?status=&q=
func GetAllInvoice(c *fiber.Ctx) error {
	invoices := []models.Invoice{}
	q := database.DB.Preload("Items").Order("tanggal desc, id desc")
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if s := c.Query("q"); s != "" {
		q = q.Where("nomor LIKE ? OR customer LIKE ?", like(s), like(s))
	}
	if err := q.Find(&invoices).Error; err != nil {
		return err
	}
	return c.JSON(invoices)
}

// GET
func GetInvoice(c *fiber.Ctx) error {
	var inv models.Invoice
	if err := findByID(c, &inv, "Items"); err != nil {
		return err
	}
	return c.JSON(inv)
}

// POST
func PostInvoice(c *fiber.Ctx) error {
	/*
		{
			nomor:
			tanggal:
			jatuh_tempo:
			customer:
			alamat_customer:
			items: [{deskripsi, jumlah, satuan, harga}]
			diskon:
			ppn_persen: (default 11)
			uang_muka:
			catatan:
		}
	*/
	inv := models.Invoice{
		PPNPersen: models.DefaultPPNPersen,
		Status:    models.StatusBelumLunas,
	}
	if err := parseBody(c, &inv); err != nil {
		return err
	}
	inv.Base = models.Base{}
	// only LunasiInvoice settles an invoice
	inv.Status = models.StatusBelumLunas
	if err := validate(inv); err != nil {
		return err
	}
	if err := nomorDipakai(&models.Invoice{}, inv.Nomor, 0); err != nil {
		return err
	}
	for i := range inv.Items {
		inv.Items[i].ID = 0
		inv.Items[i].InvoiceID = 0
	}
	inv.Hitung()
	if err := database.DB.Create(&inv).Error; err != nil {
		return err
	}
	return success(c, fiber.StatusCreated, inv)
}

// PUT
func UpdateInvoice(c *fiber.Ctx) error {
	var inv models.Invoice
	if err := findByID(c, &inv); err != nil {
		return err
	}
	if inv.Status == models.StatusLunas {
		return errSudahLunas
	}
	base, status := inv.Base, inv.Status
	if err := parseBody(c, &inv); err != nil {
		return err
	}
	inv.Base, inv.Status = base, status
	if err := validate(inv); err != nil {
		return err
	}
	if err := nomorDipakai(&models.Invoice{}, inv.Nomor, inv.ID); err != nil {
		return err
	}
	inv.Hitung()
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("invoice_id = ?", inv.ID).Delete(&models.InvoiceItem{}).Error; err != nil {
			return err
		}
		for i := range inv.Items {
			inv.Items[i].ID = 0
			inv.Items[i].InvoiceID = inv.ID
		}
		if err := tx.Omit("Items").Save(&inv).Error; err != nil {
			return err
		}
		return tx.Create(&inv.Items).Error
	})
	if err != nil {
		return err
	}
	return success(c, fiber.StatusOK, inv)
}

// PUT

// LunasiInvoice marks the invoice paid and books the outstanding amount as
// a debit in the ledger.
func LunasiInvoice(c *fiber.Ctx) error {
	var inv models.Invoice
	if err := findByID(c, &inv, "Items"); err != nil {
		return err
	}
	if inv.Status == models.StatusLunas {
		return c.JSON(fiber.Map{
			"message": "invoice sudah lunas",
			"data":    inv,
		})
	}
	sisa := inv.Sisa
	inv.Status = models.StatusLunas
	inv.Hitung()
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Save(&inv).Error; err != nil {
			return err
		}
		if sisa <= 0 {
			return nil
		}
		return catatBukuBesar(tx, models.BukuBesar{
			Tanggal:    models.Date{Time: today()},
			Akun:       models.DefaultAkun,
			Keterangan: fmt.Sprintf("Pelunasan invoice %s - %s", inv.Nomor, inv.Customer),
			Debit:      sisa,
			Referensi:  "INV-" + inv.Nomor,
			Sumber:     models.SumberInvoice,
			SumberID:   inv.ID,
		})
	})
	if err != nil {
		return err
	}
	return success(c, fiber.StatusOK, inv)
}

// DELETE
func DeleteInvoice(c *fiber.Ctx) error {
	return deleteByID(c, &models.Invoice{})
}

// GET
func PdfInvoice(c *fiber.Ctx) error {
	var inv models.Invoice
	if err := findByID(c, &inv, "Items"); err != nil {
		return err
	}
	return sendPDF(c, document.Invoice(inv, companyHeader()))
}
