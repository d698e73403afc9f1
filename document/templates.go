package document

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kamil5b/sewa-alat-berat/models"
	"github.com/kamil5b/sewa-alat-berat/utils"
)

func rp(n int64) string {
	return utils.FormatRupiah(n)
}

func tgl(d models.Date) string {
	return utils.FormatTanggal(d.Time)
}

func jumlah(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func filename(prefix, nomor string) string {
	r := strings.NewReplacer("/", "-", "\\", "-", " ", "_", `"`, "")
	return prefix + "-" + r.Replace(nomor) + ".pdf"
}

func Invoice(inv models.Invoice, h Header) Document {
	rows := make([][]string, 0, len(inv.Items))
	for i, item := range inv.Items {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			item.Deskripsi,
			jumlah(item.Jumlah) + " " + item.Satuan,
			rp(item.Harga),
			rp(item.Subtotal),
		})
	}
	summary := []Row{{Label: "Subtotal", Value: rp(inv.Subtotal)}}
	if inv.Diskon > 0 {
		summary = append(summary, Row{Label: "Diskon", Value: "-" + rp(inv.Diskon)})
	}
	summary = append(summary,
		Row{Label: "DPP", Value: rp(inv.DPP)},
		Row{Label: fmt.Sprintf("PPN %s%%", jumlah(inv.PPNPersen)), Value: rp(inv.PPN)},
		Row{Label: "Total", Value: rp(inv.Total), Bold: true},
	)
	if inv.UangMuka > 0 {
		summary = append(summary, Row{Label: "Uang Muka", Value: "-" + rp(inv.UangMuka)})
	}
	summary = append(summary, Row{Label: "Sisa Tagihan", Value: rp(inv.Sisa), Bold: true})

	status := "Belum Lunas"
	if inv.Status == models.StatusLunas {
		status = "Lunas"
	}
	notes := []string{"Terbilang: " + utils.Terbilang(inv.Total) + " rupiah"}
	if inv.Catatan != "" {
		notes = append(notes, "Catatan: "+inv.Catatan)
	}
	return Document{
		Filename: filename("invoice", inv.Nomor),
		Header:   h,
		Title:    "Invoice",
		Number:   inv.Nomor,
		Meta: []Row{
			{Label: "Kepada", Value: inv.Customer, Bold: true},
			{Label: "Alamat", Value: inv.AlamatCustomer},
			{Label: "Tanggal", Value: tgl(inv.Tanggal)},
			{Label: "Jatuh Tempo", Value: tgl(inv.JatuhTempo)},
			{Label: "Status", Value: status},
		},
		Table: &Table{
			Columns: []Column{
				{Title: "No", Width: 0.6, Align: AlignCenter},
				{Title: "Deskripsi", Width: 4},
				{Title: "Jumlah", Width: 1.4, Align: AlignCenter},
				{Title: "Harga", Width: 1.8, Align: AlignRight},
				{Title: "Subtotal", Width: 2, Align: AlignRight},
			},
			Rows: rows,
		},
		Summary:    summary,
		Notes:      notes,
		Place:      tgl(inv.Tanggal),
		Signatures: []string{"Hormat Kami"},
	}
}

func SuratJalan(sj models.SuratJalan, h Header) Document {
	rows := make([][]string, 0, len(sj.Items))
	for i, item := range sj.Items {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			item.NamaBarang,
			strconv.Itoa(item.Jumlah),
			item.Satuan,
			item.Keterangan,
		})
	}
	doc := Document{
		Filename: filename("surat-jalan", sj.Nomor),
		Header:   h,
		Title:    "Surat Jalan",
		Number:   sj.Nomor,
		Meta: []Row{
			{Label: "Tanggal", Value: tgl(sj.Tanggal)},
			{Label: "Pengirim", Value: sj.Pengirim},
			{Label: "Penerima", Value: sj.Penerima, Bold: true},
			{Label: "Alamat Tujuan", Value: sj.AlamatTujuan},
			{Label: "No. Kendaraan", Value: sj.NoKendaraan},
			{Label: "Sopir", Value: sj.Sopir},
		},
		Table: &Table{
			Columns: []Column{
				{Title: "No", Width: 0.6, Align: AlignCenter},
				{Title: "Nama Barang", Width: 4},
				{Title: "Jumlah", Width: 1, Align: AlignCenter},
				{Title: "Satuan", Width: 1.2, Align: AlignCenter},
				{Title: "Keterangan", Width: 3},
			},
			Rows: rows,
		},
		Place:      tgl(sj.Tanggal),
		Signatures: []string{"Pengirim", "Sopir", "Penerima"},
	}
	if sj.Keterangan != "" {
		doc.Notes = []string{"Keterangan: " + sj.Keterangan}
	}
	return doc
}

func SuratPerjanjian(sp models.SuratPerjanjian, h Header) Document {
	satuan := "hari"
	if sp.SatuanSewa == models.SatuanBulan {
		satuan = "bulan"
	}
	paragraphs := []string{
		fmt.Sprintf("Pada hari ini, %s, telah dibuat perjanjian sewa alat berat antara %s sebagai PIHAK PERTAMA (pemilik alat) dan %s sebagai PIHAK KEDUA (penyewa).",
			tgl(sp.Tanggal), sp.PihakPertama, sp.PihakKedua),
		fmt.Sprintf("PIHAK PERTAMA menyewakan %s kepada PIHAK KEDUA untuk digunakan di %s selama %d %s, terhitung sejak %s sampai dengan %s.",
			sp.NamaAlat, sp.LokasiProyek, sp.Durasi, satuan, tgl(sp.TanggalMulai), tgl(sp.TanggalSelesai)),
		fmt.Sprintf("Harga sewa disepakati sebesar %s per %s dengan nilai kontrak %s (%s rupiah).",
			rp(sp.HargaSewa), satuan, rp(sp.NilaiKontrak), utils.Terbilang(sp.NilaiKontrak)),
	}
	if sp.Ketentuan != "" {
		paragraphs = append(paragraphs, "Ketentuan:\n"+sp.Ketentuan)
	}
	return Document{
		Filename: filename("surat-perjanjian", sp.Nomor),
		Header:   h,
		Title:    "Surat Perjanjian Sewa Alat Berat",
		Number:   sp.Nomor,
		Meta: []Row{
			{Label: "Pihak Pertama", Value: sp.PihakPertama, Bold: true},
			{Label: "Pihak Kedua", Value: sp.PihakKedua, Bold: true},
			{Label: "Alamat Pihak Kedua", Value: sp.AlamatPihakKedua},
			{Label: "Alat", Value: sp.NamaAlat},
			{Label: "Lokasi Proyek", Value: sp.LokasiProyek},
		},
		Paragraphs: paragraphs,
		Place:      tgl(sp.Tanggal),
		Signatures: []string{"Pihak Pertama", "Pihak Kedua"},
	}
}

func SlipGaji(g models.Gaji, h Header) Document {
	nama, jabatan := "", ""
	if g.Pekerja != nil {
		nama, jabatan = g.Pekerja.Nama, g.Pekerja.Jabatan
	}
	var rows [][]string
	if g.Periode == models.PeriodeMingguan {
		rows = append(rows, []string{
			fmt.Sprintf("Upah harian (%d hari x %s)", g.HariKerja, rp(g.UpahHarian)),
			rp(int64(g.HariKerja) * g.UpahHarian), "",
		})
	} else {
		rows = append(rows, []string{"Gaji pokok", rp(g.GajiPokok), ""})
	}
	rows = append(rows,
		[]string{"Lembur", rp(g.Lembur), ""},
		[]string{"Bonus", rp(g.Bonus), ""},
		[]string{"Potongan", "", rp(g.Potongan)},
		[]string{"Kasbon", "", rp(g.Kasbon)},
	)
	status := "Belum dibayar"
	if g.Dibayar {
		status = "Sudah dibayar"
	}
	doc := Document{
		Filename: filename("slip-gaji", fmt.Sprintf("%d-%s", g.ID, g.TanggalSelesai.String())),
		Header:   h,
		Title:    "Slip Gaji",
		Meta: []Row{
			{Label: "Nama", Value: nama, Bold: true},
			{Label: "Jabatan", Value: jabatan},
			{Label: "Periode", Value: fmt.Sprintf("%s (%s s/d %s)", g.Periode, tgl(g.TanggalMulai), tgl(g.TanggalSelesai))},
			{Label: "Status", Value: status},
		},
		Table: &Table{
			Columns: []Column{
				{Title: "Komponen", Width: 4},
				{Title: "Pendapatan", Width: 2, Align: AlignRight},
				{Title: "Potongan", Width: 2, Align: AlignRight},
			},
			Rows: rows,
		},
		Summary: []Row{
			{Label: "Total Pendapatan", Value: rp(g.Pendapatan)},
			{Label: "Total Potongan", Value: rp(g.Potongan + g.Kasbon)},
			{Label: "Gaji Diterima", Value: rp(g.Total), Bold: true},
		},
		Place:      tgl(g.TanggalSelesai),
		Signatures: []string{"Penerima", "Bagian Keuangan"},
	}
	if g.Catatan != "" {
		doc.Notes = append(doc.Notes, "Catatan: "+g.Catatan)
	}
	return doc
}

func BukuBesar(r models.RingkasanBukuBesar, dari, sampai models.Date, h Header) Document {
	rows := make([][]string, 0, len(r.Data))
	for _, e := range r.Data {
		rows = append(rows, []string{
			tgl(e.Tanggal),
			e.Keterangan,
			e.Referensi,
			rp(e.Debit),
			rp(e.Kredit),
			rp(e.Saldo),
		})
	}
	periode := "Semua transaksi"
	if !dari.IsZero() || !sampai.IsZero() {
		periode = tgl(dari) + " s/d " + tgl(sampai)
	}
	return Document{
		Filename: filename("buku-besar", r.Akun),
		Header:   h,
		Title:    "Buku Besar",
		Meta: []Row{
			{Label: "Akun", Value: r.Akun, Bold: true},
			{Label: "Periode", Value: periode},
			{Label: "Saldo Awal", Value: rp(r.SaldoAwal)},
		},
		Table: &Table{
			Columns: []Column{
				{Title: "Tanggal", Width: 1.6},
				{Title: "Keterangan", Width: 3},
				{Title: "Ref", Width: 1},
				{Title: "Debit", Width: 1.5, Align: AlignRight},
				{Title: "Kredit", Width: 1.5, Align: AlignRight},
				{Title: "Saldo", Width: 1.6, Align: AlignRight},
			},
			Rows: rows,
		},
		Summary: []Row{
			{Label: "Total Debit", Value: rp(r.TotalDebit)},
			{Label: "Total Kredit", Value: rp(r.TotalKredit)},
			{Label: "Saldo Akhir", Value: rp(r.SaldoAkhir), Bold: true},
		},
	}
}
