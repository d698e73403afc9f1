package document

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"

	"github.com/go-pdf/fpdf"
)

const a4WidthMM = 210.0

var ErrNoPages = errors.New("dokumen tidak memiliki halaman")

// BuildPDF places each page image at the top of its own A4 portrait page,
// scaled to the page width.
func BuildPDF(pages []image.Image) ([]byte, error) {
	if len(pages) == 0 {
		return nil, ErrNoPages
	}
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	opt := fpdf.ImageOptions{ImageType: "PNG"}
	for i, page := range pages {
		var buf bytes.Buffer
		if err := png.Encode(&buf, page); err != nil {
			return nil, fmt.Errorf("encode halaman %d: %w", i+1, err)
		}
		name := fmt.Sprintf("halaman-%d", i+1)
		pdf.RegisterImageOptionsReader(name, opt, &buf)

		b := page.Bounds()
		h := float64(b.Dy()) * a4WidthMM / float64(b.Dx())
		pdf.AddPage()
		pdf.ImageOptions(name, 0, 0, a4WidthMM, h, false, opt, 0, "")
		if err := pdf.Error(); err != nil {
			return nil, fmt.Errorf("halaman %d: %w", i+1, err)
		}
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
