package document

import (
	"bytes"
	"image"
	"strconv"
	"testing"

	"github.com/kamil5b/sewa-alat-berat/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableDoc(rows int) Document {
	data := make([][]string, rows)
	for i := range data {
		data[i] = []string{"baris " + strconv.Itoa(i)}
	}
	return Document{Title: "Buku Besar", Table: &Table{Columns: []Column{{Title: "A"}}, Rows: data}}
}

func hasInk(img image.Image) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r != 0xffff || g != 0xffff || bl != 0xffff {
				return true
			}
		}
	}
	return false
}

func TestRasterizePages(t *testing.T) {
	opt := Options{Width: 400, PageHeight: 200, Margin: 20, Scale: 1, MaxPages: 100}
	doc := tableDoc(60)

	width, height, err := Measure(doc, opt)
	require.NoError(t, err)
	assert.Equal(t, 400, width)

	pages, err := RasterizePages(doc, opt)
	require.NoError(t, err)
	require.Len(t, pages, (height+199)/200)
	require.Greater(t, len(pages), 1)
	for i, p := range pages {
		assert.Equal(t, 400, p.Bounds().Dx())
		assert.Equal(t, image.Pt(0, 0), p.Bounds().Min)
		if i < len(pages)-1 {
			assert.Equal(t, 200, p.Bounds().Dy())
			assert.True(t, hasInk(p), "halaman %d kosong", i+1)
		}
	}
	assert.Equal(t, height-(len(pages)-1)*200, pages[len(pages)-1].Bounds().Dy())
}

func TestRasterizePagesShortDocument(t *testing.T) {
	pages, err := RasterizePages(Document{Title: "Slip"}, Options{Scale: 1})
	require.NoError(t, err)
	assert.Len(t, pages, 1)

	pages, err = RasterizePages(Document{}, Options{})
	require.NoError(t, err)
	assert.Len(t, pages, 1)
}

func TestRasterizePagesTooLong(t *testing.T) {
	opt := Options{Width: 400, PageHeight: 200, Margin: 20, Scale: 1, MaxPages: 2}
	_, err := RasterizePages(tableDoc(200), opt)
	assert.ErrorIs(t, err, ErrTooLong)

	_, err = Render(tableDoc(200), opt)
	assert.ErrorIs(t, err, ErrTooLong)
}

func TestBuildPDF(t *testing.T) {
	_, err := BuildPDF(nil)
	assert.ErrorIs(t, err, ErrNoPages)

	pages := []image.Image{
		image.NewRGBA(image.Rect(0, 0, 80, 113)),
		image.NewRGBA(image.Rect(0, 0, 80, 40)),
	}
	out, err := BuildPDF(pages)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestMeasureGrowsWithContent(t *testing.T) {
	opt := Options{Width: 400, PageHeight: 500, Margin: 20, Scale: 1}
	_, short, err := Measure(tableDoc(0), opt)
	require.NoError(t, err)
	_, long, err := Measure(tableDoc(120), opt)
	require.NoError(t, err)
	assert.Greater(t, long, short)
}

func TestRenderEmptyDocument(t *testing.T) {
	out, err := Render(Document{}, Options{})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestInvoiceTemplate(t *testing.T) {
	inv := models.Invoice{
		Nomor:     "INV/2024/001",
		Tanggal:   models.NewDate(2024, 3, 1),
		Customer:  "PT Bangun Jaya",
		Items:     []models.InvoiceItem{{Deskripsi: "Sewa crane 25 ton", Jumlah: 2, Satuan: "hari", Harga: 3500000}},
		PPNPersen: 11,
		Diskon:    0,
		Status:    models.StatusBelumLunas,
	}
	inv.Hitung()
	doc := Invoice(inv, Header{Name: "CV Sewa Alat Berat"})

	assert.Equal(t, "invoice-INV-2024-001.pdf", doc.Filename)
	require.NotNil(t, doc.Table)
	assert.Equal(t, []string{"1", "Sewa crane 25 ton", "2 hari", "Rp 3.500.000", "Rp 7.000.000"}, doc.Table.Rows[0])
	assert.Equal(t, "Rp 7.770.000", doc.Summary[len(doc.Summary)-2].Value)
	assert.Contains(t, doc.Notes[0], "tujuh juta tujuh ratus tujuh puluh ribu")

	out, err := Render(doc, Options{Scale: 1})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestSlipGajiTemplate(t *testing.T) {
	g := models.Gaji{
		Pekerja:        &models.Pekerja{Nama: "Slamet", Jabatan: "Operator"},
		Periode:        models.PeriodeMingguan,
		TanggalMulai:   models.NewDate(2024, 4, 1),
		TanggalSelesai: models.NewDate(2024, 4, 6),
		HariKerja:      6,
		UpahHarian:     200000,
	}
	g.Hitung()
	doc := SlipGaji(g, Header{})
	assert.Equal(t, "Slamet", doc.Meta[0].Value)
	assert.Equal(t, "Rp 1.200.000", doc.Table.Rows[0][1])
	assert.Equal(t, "Rp 1.200.000", doc.Summary[2].Value)
}
