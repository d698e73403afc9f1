package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	var p Pekerja
	require.NoError(t, json.Unmarshal([]byte(`{"nama":"Budi","tanggal_masuk":"2024-01-15"}`), &p))
	assert.Equal(t, NewDate(2024, 1, 15), p.TanggalMasuk)

	b, err := json.Marshal(p.TanggalMasuk)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-15"`, string(b))

	var kosong Date
	require.NoError(t, json.Unmarshal([]byte(`""`), &kosong))
	assert.True(t, kosong.IsZero())
	b, _ = json.Marshal(kosong)
	assert.Equal(t, "null", string(b))

	assert.Error(t, json.Unmarshal([]byte(`"kemarin"`), &kosong))
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan("2024-02-29 00:00:00+00:00"))
	assert.Equal(t, NewDate(2024, 2, 29), d)
	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())
	v, err := d.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestInvoiceHitung(t *testing.T) {
	inv := Invoice{
		Items: []InvoiceItem{
			{Deskripsi: "Sewa excavator PC200", Jumlah: 8.5, Harga: 450000},
			{Deskripsi: "Mobilisasi", Jumlah: 1, Harga: 2500000},
		},
		Diskon:    325000,
		PPNPersen: 11,
		UangMuka:  1000000,
		Status:    StatusBelumLunas,
	}
	inv.Hitung()

	assert.Equal(t, int64(3825000), inv.Items[0].Subtotal)
	assert.Equal(t, int64(6325000), inv.Subtotal)
	assert.Equal(t, int64(6000000), inv.DPP)
	assert.Equal(t, int64(660000), inv.PPN)
	assert.Equal(t, int64(6660000), inv.Total)
	assert.Equal(t, int64(5660000), inv.Sisa)

	inv.Status = StatusLunas
	inv.Hitung()
	assert.Equal(t, int64(0), inv.Sisa)
}

func TestInvoiceDiskonMelebihiSubtotal(t *testing.T) {
	inv := Invoice{
		Items:     []InvoiceItem{{Deskripsi: "Operator", Jumlah: 1, Harga: 100000}},
		Diskon:    500000,
		PPNPersen: 11,
	}
	inv.Hitung()
	assert.Equal(t, int64(0), inv.DPP)
	assert.Equal(t, int64(0), inv.Total)
}

func TestInvoiceValidate(t *testing.T) {
	valid := Invoice{
		Nomor:     "INV/001",
		Customer:  "PT Karya",
		Tanggal:   NewDate(2024, 5, 1),
		Items:     []InvoiceItem{{Deskripsi: "Sewa", Jumlah: 1, Harga: 1}},
		PPNPersen: 11,
		Status:    StatusBelumLunas,
	}
	require.NoError(t, valid.Validate())

	bad := valid
	bad.Items = nil
	assert.Error(t, bad.Validate())

	bad = valid
	bad.JatuhTempo = NewDate(2024, 4, 1)
	assert.Error(t, bad.Validate())

	bad = valid
	bad.Items = []InvoiceItem{{Deskripsi: "Sewa", Jumlah: 0, Harga: 1}}
	assert.Error(t, bad.Validate())

	bad = valid
	bad.Status = "cicil"
	assert.Error(t, bad.Validate())
}

func TestHitungSaldo(t *testing.T) {
	entries := []BukuBesar{
		{Debit: 5000000},
		{Kredit: 1200000},
		{Kredit: 300000},
		{Debit: 750000},
	}
	r := HitungSaldo(1000000, entries)

	saldo := []int64{6000000, 4800000, 4500000, 5250000}
	for i, e := range r.Data {
		assert.Equal(t, saldo[i], e.Saldo)
	}
	assert.Equal(t, int64(5750000), r.TotalDebit)
	assert.Equal(t, int64(1500000), r.TotalKredit)
	assert.Equal(t, int64(5250000), r.SaldoAkhir)
	assert.Equal(t, r.SaldoAwal+r.TotalDebit-r.TotalKredit, r.SaldoAkhir)
}

func TestHitungSaldoKosong(t *testing.T) {
	r := HitungSaldo(250000, nil)
	assert.NotNil(t, r.Data)
	assert.Equal(t, int64(250000), r.SaldoAkhir)
}

func TestBukuBesarValidate(t *testing.T) {
	e := BukuBesar{Tanggal: NewDate(2024, 1, 1), Keterangan: "Setoran", Debit: 100}
	assert.NoError(t, e.Validate())
	e.Kredit = 100
	assert.Error(t, e.Validate())
	e.Debit, e.Kredit = 0, 0
	assert.Error(t, e.Validate())
}

func TestGajiHitung(t *testing.T) {
	g := Gaji{
		Periode:    PeriodeMingguan,
		HariKerja:  6,
		UpahHarian: 150000,
		Lembur:     100000,
		Bonus:      50000,
		Potongan:   20000,
		Kasbon:     200000,
	}
	g.Hitung()
	assert.Equal(t, int64(1050000), g.Pendapatan)
	assert.Equal(t, int64(830000), g.Total)
	assert.Empty(t, g.Peringatan)

	g = Gaji{Periode: PeriodeBulanan, HariKerja: 26, UpahHarian: 150000, GajiPokok: 4000000, Kasbon: 4500000}
	g.Hitung()
	assert.Equal(t, int64(4000000), g.Pendapatan)
	assert.Equal(t, int64(-500000), g.Total)
	assert.NotEmpty(t, g.Peringatan)
}

func TestGajiIsiDariPekerja(t *testing.T) {
	p := Pekerja{TipeGaji: PeriodeMingguan, UpahHarian: 175000, GajiPokok: 0}
	g := Gaji{UpahHarian: 0}
	g.IsiDariPekerja(p)
	assert.Equal(t, PeriodeMingguan, g.Periode)
	assert.Equal(t, int64(175000), g.UpahHarian)

	g = Gaji{Periode: PeriodeBulanan, UpahHarian: 1}
	g.IsiDariPekerja(p)
	assert.Equal(t, PeriodeBulanan, g.Periode)
	assert.Equal(t, int64(1), g.UpahHarian)
}

func TestSuratPerjanjianHitung(t *testing.T) {
	sp := SuratPerjanjian{
		TanggalMulai:   NewDate(2024, 1, 1),
		TanggalSelesai: NewDate(2024, 1, 10),
		HargaSewa:      2000000,
		SatuanSewa:     SatuanHari,
	}
	sp.Hitung()
	assert.Equal(t, 10, sp.Durasi)
	assert.Equal(t, int64(20000000), sp.NilaiKontrak)

	sp.SatuanSewa = SatuanBulan
	sp.HargaSewa = 45000000
	sp.TanggalSelesai = NewDate(2024, 2, 15)
	sp.Hitung()
	assert.Equal(t, 2, sp.Durasi)
	assert.Equal(t, int64(90000000), sp.NilaiKontrak)

	sp.TanggalSelesai = NewDate(2023, 12, 1)
	assert.Equal(t, 0, sp.JumlahHari())
	assert.Error(t, sp.Validate())
}

func TestKontakValidate(t *testing.T) {
	assert.NoError(t, Kontak{Nama: "Andi", Pesan: "Mau sewa crane"}.Validate())
	assert.Error(t, Kontak{Nama: "Andi"}.Validate())
	assert.Error(t, Kontak{Nama: "Andi", Pesan: "x", Email: "andi.example"}.Validate())
}

func TestBlogMarkPublished(t *testing.T) {
	b := Blog{Judul: "x"}
	now := NewDate(2024, 6, 1).Time
	b.MarkPublished(now)
	assert.Nil(t, b.PublishedAt)

	b.Published = true
	b.MarkPublished(now)
	require.NotNil(t, b.PublishedAt)

	later := now.AddDate(0, 1, 0)
	b.MarkPublished(later)
	assert.Equal(t, now, *b.PublishedAt)
}

func TestNominalDibatasi(t *testing.T) {
	valid := Invoice{
		Nomor:    "INV/002",
		Customer: "PT Karya",
		Tanggal:  NewDate(2024, 5, 1),
		Items:    []InvoiceItem{{Deskripsi: "Sewa", Jumlah: 2, Harga: MaxNominal / 2}},
		Status:   StatusBelumLunas,
	}
	require.NoError(t, valid.Validate())

	bad := valid
	bad.Items = []InvoiceItem{{Deskripsi: "Sewa", Jumlah: 3, Harga: MaxNominal / 2}}
	assert.ErrorIs(t, bad.Validate(), errNominal)

	bad.Items = []InvoiceItem{{Deskripsi: "Sewa", Jumlah: MaxJumlah + 1, Harga: 1}}
	assert.ErrorIs(t, bad.Validate(), errNominal)

	bad.Items = []InvoiceItem{{Deskripsi: "Sewa", Jumlah: 1, Harga: MaxNominal + 1}}
	assert.ErrorIs(t, bad.Validate(), errNominal)

	bad = valid
	bad.Items = []InvoiceItem{
		{Deskripsi: "Sewa", Jumlah: 1, Harga: MaxNominal},
		{Deskripsi: "Mobilisasi", Jumlah: 1, Harga: 1},
	}
	assert.ErrorIs(t, bad.Validate(), errNominal)

	entry := BukuBesar{Tanggal: NewDate(2024, 1, 1), Keterangan: "x", Debit: MaxNominal + 1}
	assert.ErrorIs(t, entry.Validate(), errNominal)

	sp := SuratPerjanjian{
		Nomor:          "SP/1",
		PihakKedua:     "PT Karya",
		TanggalMulai:   NewDate(2024, 1, 1),
		TanggalSelesai: NewDate(2024, 1, 10),
		HargaSewa:      MaxNominal / 5,
		SatuanSewa:     SatuanHari,
	}
	assert.ErrorIs(t, sp.Validate(), errNominal)
}
