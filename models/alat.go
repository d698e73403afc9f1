package models

import "errors"

// Alat is a piece of heavy equipment offered for rent.
type Alat struct {
	Base
	Nama             string `json:"nama"`
	Kategori         string `gorm:"index" json:"kategori"`
	Merk             string `json:"merk"`
	Kapasitas        string `json:"kapasitas"`
	Deskripsi        string `gorm:"type:text" json:"deskripsi"`
	HargaSewaHarian  int64  `json:"harga_sewa_harian"`
	HargaSewaBulanan int64  `json:"harga_sewa_bulanan"`
	Gambar           string `json:"gambar"`
	Tersedia         bool   `json:"tersedia"`
}

func (Alat) TableName() string {
	return "alat"
}

func (a Alat) Validate() error {
	if a.Nama == "" {
		return errors.New("nama alat wajib diisi")
	}
	if a.HargaSewaHarian < 0 || a.HargaSewaBulanan < 0 {
		return errors.New("harga sewa tidak boleh negatif")
	}
	if !nominalValid(a.HargaSewaHarian, a.HargaSewaBulanan) {
		return errNominal
	}
	return nil
}
