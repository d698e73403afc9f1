package models

import "errors"

const (
	DefaultAkun = "Kas"

	SumberInvoice = "invoice"
	SumberGaji    = "gaji"
)

// BukuBesar is one general ledger entry. Saldo is derived on read.
// Sumber and SumberID point at the record an automatic entry was booked
// for; manual entries leave them empty.
type BukuBesar struct {
	Base
	Tanggal    Date   `gorm:"index" json:"tanggal"`
	Akun       string `gorm:"size:100;index" json:"akun"`
	Keterangan string `json:"keterangan"`
	Debit      int64  `json:"debit"`
	Kredit     int64  `json:"kredit"`
	Referensi  string `json:"referensi"`
	Sumber     string `gorm:"size:20;index:idx_buku_besar_sumber" json:"sumber,omitempty"`
	SumberID   uint   `gorm:"index:idx_buku_besar_sumber" json:"sumber_id,omitempty"`
	Saldo      int64  `gorm:"-" json:"saldo"`
}

func (BukuBesar) TableName() string {
	return "buku_besar"
}

func (b BukuBesar) Validate() error {
	if b.Tanggal.IsZero() {
		return errors.New("tanggal wajib diisi")
	}
	if b.Keterangan == "" {
		return errors.New("keterangan wajib diisi")
	}
	if b.Debit < 0 || b.Kredit < 0 {
		return errors.New("debit dan kredit tidak boleh negatif")
	}
	if !nominalValid(b.Debit, b.Kredit) {
		return errNominal
	}
	if (b.Debit > 0) == (b.Kredit > 0) {
		return errors.New("isi salah satu dari debit atau kredit")
	}
	return nil
}

type RingkasanBukuBesar struct {
	Akun        string      `json:"akun"`
	SaldoAwal   int64       `json:"saldo_awal"`
	Data        []BukuBesar `json:"data"`
	TotalDebit  int64       `json:"total_debit"`
	TotalKredit int64       `json:"total_kredit"`
	SaldoAkhir  int64       `json:"saldo_akhir"`
}

// HitungSaldo walks entries in the given order, filling each Saldo with the
// running balance starting from saldoAwal.
func HitungSaldo(saldoAwal int64, entries []BukuBesar) RingkasanBukuBesar {
	r := RingkasanBukuBesar{SaldoAwal: saldoAwal, Data: entries}
	saldo := saldoAwal
	for i := range entries {
		saldo += entries[i].Debit - entries[i].Kredit
		entries[i].Saldo = saldo
		r.TotalDebit += entries[i].Debit
		r.TotalKredit += entries[i].Kredit
	}
	r.SaldoAkhir = saldo
	if r.Data == nil {
		r.Data = []BukuBesar{}
	}
	return r
}
