package models

import "errors"

const (
	PeriodeMingguan = "mingguan"
	PeriodeBulanan  = "bulanan"
)

type Pekerja struct {
	Base
	Nama         string `json:"nama"`
	NIK          string `gorm:"size:32" json:"nik"`
	Jabatan      string `json:"jabatan"`
	Telepon      string `json:"telepon"`
	Alamat       string `json:"alamat"`
	TipeGaji     string `gorm:"size:10" json:"tipe_gaji"`
	UpahHarian   int64  `json:"upah_harian"`
	GajiPokok    int64  `json:"gaji_pokok"`
	Aktif        bool   `json:"aktif"`
	TanggalMasuk Date   `json:"tanggal_masuk"`
}

func (Pekerja) TableName() string {
	return "pekerja"
}

func (p Pekerja) Validate() error {
	if p.Nama == "" {
		return errors.New("nama pekerja wajib diisi")
	}
	if p.TipeGaji != PeriodeMingguan && p.TipeGaji != PeriodeBulanan {
		return errors.New("tipe gaji harus mingguan atau bulanan")
	}
	if p.UpahHarian < 0 || p.GajiPokok < 0 {
		return errors.New("upah tidak boleh negatif")
	}
	if !nominalValid(p.UpahHarian, p.GajiPokok) {
		return errNominal
	}
	return nil
}
