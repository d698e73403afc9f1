package models

import (
	"errors"
	"fmt"
)

type SuratJalan struct {
	Base
	Nomor        string           `gorm:"size:64;index" json:"nomor"`
	Tanggal      Date             `json:"tanggal"`
	Pengirim     string           `json:"pengirim"`
	Penerima     string           `json:"penerima"`
	AlamatTujuan string           `json:"alamat_tujuan"`
	NoKendaraan  string           `json:"no_kendaraan"`
	Sopir        string           `json:"sopir"`
	Keterangan   string           `json:"keterangan"`
	Items        []SuratJalanItem `gorm:"foreignKey:SuratJalanID" json:"items"`
}

type SuratJalanItem struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	SuratJalanID uint   `gorm:"index" json:"surat_jalan_id"`
	NamaBarang   string `json:"nama_barang"`
	Jumlah       int    `json:"jumlah"`
	Satuan       string `json:"satuan"`
	Keterangan   string `json:"keterangan"`
}

func (SuratJalan) TableName() string {
	return "surat_jalan"
}

func (SuratJalanItem) TableName() string {
	return "surat_jalan_item"
}

func (s SuratJalan) Validate() error {
	if s.Nomor == "" {
		return errors.New("nomor surat jalan wajib diisi")
	}
	if s.Tanggal.IsZero() {
		return errors.New("tanggal wajib diisi")
	}
	if len(s.Items) == 0 {
		return errors.New("surat jalan minimal berisi satu barang")
	}
	for i, item := range s.Items {
		if item.NamaBarang == "" {
			return fmt.Errorf("barang ke-%d: nama barang wajib diisi", i+1)
		}
		if item.Jumlah <= 0 {
			return fmt.Errorf("barang ke-%d: jumlah harus lebih dari 0", i+1)
		}
	}
	return nil
}
