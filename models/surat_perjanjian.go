package models

import "errors"

const (
	SatuanHari  = "hari"
	SatuanBulan = "bulan"
)

// SuratPerjanjian is a rental agreement between the company and a customer.
type SuratPerjanjian struct {
	Base
	Nomor            string `gorm:"size:64;index" json:"nomor"`
	Tanggal          Date   `json:"tanggal"`
	PihakPertama     string `json:"pihak_pertama"`
	PihakKedua       string `json:"pihak_kedua"`
	AlamatPihakKedua string `json:"alamat_pihak_kedua"`
	AlatID           *uint  `json:"alat_id"`
	NamaAlat         string `json:"nama_alat"`
	LokasiProyek     string `json:"lokasi_proyek"`
	TanggalMulai     Date   `json:"tanggal_mulai"`
	TanggalSelesai   Date   `json:"tanggal_selesai"`
	HargaSewa        int64  `json:"harga_sewa"`
	SatuanSewa       string `gorm:"size:10" json:"satuan_sewa"`
	Ketentuan        string `gorm:"type:text" json:"ketentuan"`
	Durasi           int    `json:"durasi"`
	NilaiKontrak     int64  `json:"nilai_kontrak"`
}

func (SuratPerjanjian) TableName() string {
	return "surat_perjanjian"
}

func (s SuratPerjanjian) Validate() error {
	if s.Nomor == "" {
		return errors.New("nomor perjanjian wajib diisi")
	}
	if s.PihakKedua == "" {
		return errors.New("pihak kedua wajib diisi")
	}
	if s.TanggalMulai.IsZero() || s.TanggalSelesai.IsZero() {
		return errors.New("tanggal mulai dan selesai wajib diisi")
	}
	if s.TanggalSelesai.Before(s.TanggalMulai) {
		return errors.New("tanggal selesai tidak boleh sebelum tanggal mulai")
	}
	if s.HargaSewa < 0 {
		return errors.New("harga sewa tidak boleh negatif")
	}
	if s.SatuanSewa != SatuanHari && s.SatuanSewa != SatuanBulan {
		return errors.New("satuan sewa harus hari atau bulan")
	}
	if s.HargaSewa > 0 && int64(s.JumlahHari()) > MaxNominal/s.HargaSewa {
		return errNominal
	}
	return nil
}

// JumlahHari counts rental days, both ends inclusive.
func (s SuratPerjanjian) JumlahHari() int {
	if s.TanggalMulai.IsZero() || s.TanggalSelesai.IsZero() || s.TanggalSelesai.Before(s.TanggalMulai) {
		return 0
	}
	return int(s.TanggalSelesai.Sub(s.TanggalMulai.Time).Hours()/24) + 1
}

// Hitung fills Durasi and NilaiKontrak. A started month of 30 days counts
// as a full month.
func (s *SuratPerjanjian) Hitung() {
	hari := s.JumlahHari()
	if s.SatuanSewa == SatuanBulan {
		s.Durasi = (hari + 29) / 30
	} else {
		s.Durasi = hari
	}
	s.NilaiKontrak = int64(s.Durasi) * s.HargaSewa
}
