package models

import (
	"errors"
	"fmt"
	"math"
)

const (
	StatusBelumLunas = "belum_lunas"
	StatusLunas      = "lunas"

	DefaultPPNPersen = 11.0
)

type Invoice struct {
	Base
	Nomor          string        `gorm:"size:64;index" json:"nomor"`
	Tanggal        Date          `json:"tanggal"`
	JatuhTempo     Date          `json:"jatuh_tempo"`
	Customer       string        `json:"customer"`
	AlamatCustomer string        `json:"alamat_customer"`
	Items          []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"items"`
	Diskon         int64         `json:"diskon"`
	PPNPersen      float64       `json:"ppn_persen"`
	UangMuka       int64         `json:"uang_muka"`
	Subtotal       int64         `json:"subtotal"`
	DPP            int64         `json:"dpp"`
	PPN            int64         `json:"ppn"`
	Total          int64         `json:"total"`
	Sisa           int64         `json:"sisa"`
	Status         string        `gorm:"size:20;index" json:"status"`
	Catatan        string        `gorm:"type:text" json:"catatan"`
}

type InvoiceItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	InvoiceID uint    `gorm:"index" json:"invoice_id"`
	Deskripsi string  `json:"deskripsi"`
	Jumlah    float64 `json:"jumlah"`
	Satuan    string  `json:"satuan"`
	Harga     int64   `json:"harga"`
	Subtotal  int64   `json:"subtotal"`
}

func (Invoice) TableName() string {
	return "invoice"
}

func (InvoiceItem) TableName() string {
	return "invoice_item"
}

func (inv Invoice) Validate() error {
	if inv.Nomor == "" {
		return errors.New("nomor invoice wajib diisi")
	}
	if inv.Customer == "" {
		return errors.New("customer wajib diisi")
	}
	if inv.Tanggal.IsZero() {
		return errors.New("tanggal wajib diisi")
	}
	if !inv.JatuhTempo.IsZero() && inv.JatuhTempo.Before(inv.Tanggal) {
		return errors.New("jatuh tempo tidak boleh sebelum tanggal invoice")
	}
	if len(inv.Items) == 0 {
		return errors.New("invoice minimal berisi satu item")
	}
	var subtotal float64
	for i, item := range inv.Items {
		if item.Deskripsi == "" {
			return fmt.Errorf("item ke-%d: deskripsi wajib diisi", i+1)
		}
		if item.Jumlah <= 0 {
			return fmt.Errorf("item ke-%d: jumlah harus lebih dari 0", i+1)
		}
		if item.Harga < 0 {
			return fmt.Errorf("item ke-%d: harga tidak boleh negatif", i+1)
		}
		if item.Jumlah > MaxJumlah || !nominalValid(item.Harga) {
			return fmt.Errorf("item ke-%d: %w", i+1, errNominal)
		}
		subtotal += item.Jumlah * float64(item.Harga)
	}
	if subtotal > float64(MaxNominal) {
		return errNominal
	}
	if inv.Diskon < 0 || inv.UangMuka < 0 {
		return errors.New("diskon dan uang muka tidak boleh negatif")
	}
	if !nominalValid(inv.Diskon, inv.UangMuka) {
		return errNominal
	}
	if inv.PPNPersen < 0 || inv.PPNPersen > 100 {
		return errors.New("ppn harus di antara 0 dan 100 persen")
	}
	if inv.Status != StatusBelumLunas && inv.Status != StatusLunas {
		return errors.New("status harus belum_lunas atau lunas")
	}
	return nil
}

// Hitung recomputes every derived amount from the items, discount, tax
// rate and down payment. Client supplied totals are overwritten.
func (inv *Invoice) Hitung() {
	inv.Subtotal = 0
	for i := range inv.Items {
		item := &inv.Items[i]
		item.Subtotal = int64(math.Round(item.Jumlah * float64(item.Harga)))
		inv.Subtotal += item.Subtotal
	}
	inv.DPP = inv.Subtotal - inv.Diskon
	if inv.DPP < 0 {
		inv.DPP = 0
	}
	inv.PPN = int64(math.Round(float64(inv.DPP) * inv.PPNPersen / 100))
	inv.Total = inv.DPP + inv.PPN
	inv.Sisa = inv.Total - inv.UangMuka
	if inv.Status == StatusLunas {
		inv.Sisa = 0
	}
}
