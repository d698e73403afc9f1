package models

import (
	"errors"

	"gorm.io/gorm"
)

// Gaji is one payroll record for a worker over a weekly or monthly period.
type Gaji struct {
	Base
	PekerjaID      uint     `gorm:"index" json:"pekerja_id"`
	Pekerja        *Pekerja `gorm:"foreignKey:PekerjaID" json:"pekerja,omitempty"`
	Periode        string   `gorm:"size:10" json:"periode"`
	TanggalMulai   Date     `json:"tanggal_mulai"`
	TanggalSelesai Date     `json:"tanggal_selesai"`
	HariKerja      int      `json:"hari_kerja"`
	UpahHarian     int64    `json:"upah_harian"`
	GajiPokok      int64    `json:"gaji_pokok"`
	Lembur         int64    `json:"lembur"`
	Bonus          int64    `json:"bonus"`
	Potongan       int64    `json:"potongan"`
	Kasbon         int64    `json:"kasbon"`
	Pendapatan     int64    `json:"pendapatan"`
	Total          int64    `json:"total"`
	Dibayar        bool     `json:"dibayar"`
	Catatan        string   `json:"catatan"`
	Peringatan     string   `gorm:"-" json:"peringatan,omitempty"`
}

func (Gaji) TableName() string {
	return "gaji"
}

// IsiDariPekerja fills the period and rates the form left empty.
func (g *Gaji) IsiDariPekerja(p Pekerja) {
	if g.Periode == "" {
		g.Periode = p.TipeGaji
	}
	if g.UpahHarian == 0 {
		g.UpahHarian = p.UpahHarian
	}
	if g.GajiPokok == 0 {
		g.GajiPokok = p.GajiPokok
	}
}

func (g Gaji) Validate() error {
	if g.PekerjaID == 0 {
		return errors.New("pekerja wajib dipilih")
	}
	if g.Periode != PeriodeMingguan && g.Periode != PeriodeBulanan {
		return errors.New("periode harus mingguan atau bulanan")
	}
	if g.TanggalMulai.IsZero() || g.TanggalSelesai.IsZero() {
		return errors.New("tanggal mulai dan selesai wajib diisi")
	}
	if g.TanggalSelesai.Before(g.TanggalMulai) {
		return errors.New("tanggal selesai tidak boleh sebelum tanggal mulai")
	}
	if g.HariKerja < 0 {
		return errors.New("hari kerja tidak boleh negatif")
	}
	for _, v := range []int64{g.UpahHarian, g.GajiPokok, g.Lembur, g.Bonus, g.Potongan, g.Kasbon} {
		if v < 0 {
			return errors.New("nominal gaji tidak boleh negatif")
		}
	}
	if g.HariKerja > 366 || !nominalValid(g.UpahHarian, g.GajiPokok, g.Lembur, g.Bonus, g.Potongan, g.Kasbon) {
		return errNominal
	}
	return nil
}

// Hitung fills Pendapatan, Total and Peringatan. A negative total is kept
// as is and flagged.
func (g *Gaji) Hitung() {
	if g.Periode == PeriodeMingguan {
		g.Pendapatan = int64(g.HariKerja) * g.UpahHarian
	} else {
		g.Pendapatan = g.GajiPokok
	}
	g.Pendapatan += g.Lembur + g.Bonus
	g.Total = g.Pendapatan - g.Potongan - g.Kasbon
	g.tandai()
}

func (g *Gaji) tandai() {
	g.Peringatan = ""
	if g.Total < 0 {
		g.Peringatan = "total gaji minus, potongan dan kasbon melebihi pendapatan"
	}
}

func (g *Gaji) AfterFind(tx *gorm.DB) error {
	g.tandai()
	return nil
}
