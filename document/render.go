package document

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontOnce    sync.Once
	fontRegular *truetype.Font
	fontBold    *truetype.Font
	fontErr     error
)

func loadFonts() error {
	fontOnce.Do(func() {
		fontRegular, fontErr = truetype.Parse(goregular.TTF)
		if fontErr != nil {
			return
		}
		fontBold, fontErr = truetype.Parse(gobold.TTF)
	})
	return fontErr
}

var (
	colorText   = color.Black
	colorMuted  = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	colorBorder = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	colorHead   = color.RGBA{R: 230, G: 230, B: 230, A: 255}
)

// ErrTooLong is returned when a document needs more than Options.MaxPages
// pages.
var ErrTooLong = errors.New("dokumen terlalu panjang")

// Measure lays the document out without drawing and returns the canvas size
// in pixels. The height is whatever the content needs.
func Measure(doc Document, opt Options) (width, height int, err error) {
	opt = opt.normalized()
	if err := loadFonts(); err != nil {
		return 0, 0, err
	}
	width = int(math.Round(float64(opt.Width) * opt.Scale))
	measure := newRenderer(gg.NewContext(width, 1), opt, true)
	height = int(math.Ceil(measure.layout(doc)))
	return width, height, nil
}

// RasterizePages draws the laid out document as consecutive page-height
// strips, one canvas per page. The last strip keeps the height left over.
func RasterizePages(doc Document, opt Options) ([]image.Image, error) {
	opt = opt.normalized()
	width, height, err := Measure(doc, opt)
	if err != nil {
		return nil, err
	}
	pageHeight := int(math.Round(float64(opt.PageHeight) * opt.Scale))
	n := (height + pageHeight - 1) / pageHeight
	if n < 1 {
		n = 1
	}
	if n > opt.MaxPages {
		return nil, fmt.Errorf("%w: %d halaman, maksimum %d", ErrTooLong, n, opt.MaxPages)
	}

	pages := make([]image.Image, 0, n)
	for i := 0; i < n; i++ {
		top := i * pageHeight
		h := height - top
		if h > pageHeight {
			h = pageHeight
		}
		if h < 1 {
			h = 1
		}
		dc := gg.NewContext(width, h)
		dc.SetColor(color.White)
		dc.Clear()
		dc.Translate(0, -float64(top))
		newRenderer(dc, opt, false).layout(doc)
		pages = append(pages, dc.Image())
	}
	return pages, nil
}

type renderer struct {
	dc     *gg.Context
	dry    bool
	s      float64
	margin float64
	inner  float64
	y      float64
	faces  map[faceKey]font.Face
}

type faceKey struct {
	bold bool
	size float64
}

func newRenderer(dc *gg.Context, opt Options, dry bool) *renderer {
	width := float64(opt.Width) * opt.Scale
	margin := float64(opt.Margin) * opt.Scale
	return &renderer{
		dc:     dc,
		dry:    dry,
		s:      opt.Scale,
		margin: margin,
		inner:  width - 2*margin,
		faces:  make(map[faceKey]font.Face),
	}
}

func (r *renderer) setFont(bold bool, size float64) {
	key := faceKey{bold: bold, size: size}
	face, ok := r.faces[key]
	if !ok {
		f := fontRegular
		if bold {
			f = fontBold
		}
		face = truetype.NewFace(f, &truetype.Options{Size: size * r.s, DPI: 72})
		r.faces[key] = face
	}
	r.dc.SetFontFace(face)
}

func (r *renderer) wrap(s string, w float64) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		wrapped := r.dc.WordWrap(para, w)
		if len(wrapped) == 0 {
			wrapped = []string{""}
		}
		lines = append(lines, wrapped...)
	}
	return lines
}

// text draws s wrapped inside [x, x+w] starting at top y and returns the
// height it takes.
func (r *renderer) text(s string, x, y, w float64, align Align, size float64, bold bool, c color.Color) float64 {
	r.setFont(bold, size)
	lines := r.wrap(s, w)
	lh := size * r.s * 1.35
	if !r.dry {
		r.dc.SetColor(c)
		for i, line := range lines {
			baseline := y + float64(i)*lh + size*r.s
			switch align {
			case AlignCenter:
				r.dc.DrawStringAnchored(line, x+w/2, baseline, 0.5, 0)
			case AlignRight:
				r.dc.DrawStringAnchored(line, x+w, baseline, 1, 0)
			default:
				r.dc.DrawString(line, x, baseline)
			}
		}
	}
	return float64(len(lines)) * lh
}

func (r *renderer) hline(y, thickness float64) {
	if r.dry {
		return
	}
	r.dc.SetColor(colorText)
	r.dc.SetLineWidth(thickness * r.s)
	r.dc.DrawLine(r.margin, y, r.margin+r.inner, y)
	r.dc.Stroke()
}

func (r *renderer) layout(doc Document) float64 {
	r.y = r.margin
	r.header(doc.Header)
	r.title(doc.Title, doc.Number)
	r.meta(doc.Meta)
	for _, p := range doc.Paragraphs {
		r.y += r.text(p, r.margin, r.y, r.inner, AlignLeft, 10, false, colorText) + 6*r.s
	}
	if doc.Table != nil {
		r.table(*doc.Table)
	}
	r.summary(doc.Summary)
	for _, n := range doc.Notes {
		r.y += r.text(n, r.margin, r.y, r.inner, AlignLeft, 9, false, colorMuted) + 2*r.s
	}
	r.signatures(doc.Place, doc.Signatures)
	return r.y + r.margin
}

func (r *renderer) header(h Header) {
	if h.Name == "" {
		return
	}
	r.y += r.text(h.Name, r.margin, r.y, r.inner, AlignLeft, 16, true, colorText)
	var contact []string
	if h.Address != "" {
		contact = append(contact, h.Address)
	}
	if h.Phone != "" {
		contact = append(contact, "Telp. "+h.Phone)
	}
	if h.Email != "" {
		contact = append(contact, h.Email)
	}
	if len(contact) > 0 {
		r.y += r.text(strings.Join(contact, " | "), r.margin, r.y, r.inner, AlignLeft, 9, false, colorMuted)
	}
	r.y += 4 * r.s
	r.hline(r.y, 2)
	r.y += 12 * r.s
}

func (r *renderer) title(title, number string) {
	if title != "" {
		r.y += r.text(strings.ToUpper(title), r.margin, r.y, r.inner, AlignCenter, 14, true, colorText)
	}
	if number != "" {
		r.y += r.text("No. "+number, r.margin, r.y, r.inner, AlignCenter, 10, false, colorText)
	}
	r.y += 14 * r.s
}

func (r *renderer) meta(rows []Row) {
	if len(rows) == 0 {
		return
	}
	labelW := r.inner * 0.26
	valueX := r.margin + labelW + 12*r.s
	valueW := r.inner - labelW - 12*r.s
	for _, row := range rows {
		hl := r.text(row.Label, r.margin, r.y, labelW, AlignLeft, 10, false, colorText)
		r.text(":", r.margin+labelW, r.y, 12*r.s, AlignLeft, 10, false, colorText)
		hv := r.text(row.Value, valueX, r.y, valueW, AlignLeft, 10, row.Bold, colorText)
		r.y += math.Max(hl, hv) + 2*r.s
	}
	r.y += 10 * r.s
}

func (r *renderer) table(t Table) {
	if len(t.Columns) == 0 {
		return
	}
	total := 0.0
	for _, c := range t.Columns {
		if c.Width > 0 {
			total += c.Width
		} else {
			total++
		}
	}
	widths := make([]float64, len(t.Columns))
	for i, c := range t.Columns {
		w := c.Width
		if w <= 0 {
			w = 1
		}
		widths[i] = r.inner * w / total
	}
	pad := 4 * r.s

	row := func(cells []string, head bool) {
		h := 0.0
		for i := range t.Columns {
			if i < len(cells) {
				h = math.Max(h, r.textHeight(cells[i], widths[i]-2*pad, 9.5, head))
			}
		}
		h = math.Max(h, 9.5*r.s*1.35) + 2*pad
		x := r.margin
		for i := range t.Columns {
			if !r.dry {
				if head {
					r.dc.SetColor(colorHead)
					r.dc.DrawRectangle(x, r.y, widths[i], h)
					r.dc.Fill()
				}
				r.dc.SetColor(colorBorder)
				r.dc.SetLineWidth(0.8 * r.s)
				r.dc.DrawRectangle(x, r.y, widths[i], h)
				r.dc.Stroke()
			}
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			align := t.Columns[i].Align
			if head {
				align = AlignCenter
			}
			r.text(cell, x+pad, r.y+pad, widths[i]-2*pad, align, 9.5, head, colorText)
			x += widths[i]
		}
		r.y += h
	}

	titles := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		titles[i] = c.Title
	}
	row(titles, true)
	if len(t.Rows) == 0 {
		empty := make([]string, len(t.Columns))
		empty[0] = "Tidak ada data"
		row(empty, false)
	}
	for _, cells := range t.Rows {
		row(cells, false)
	}
	r.y += 10 * r.s
}

func (r *renderer) textHeight(s string, w, size float64, bold bool) float64 {
	r.setFont(bold, size)
	return float64(len(r.wrap(s, w))) * size * r.s * 1.35
}

func (r *renderer) summary(rows []Row) {
	if len(rows) == 0 {
		return
	}
	labelX := r.margin + r.inner*0.45
	labelW := r.inner * 0.3
	valueX := labelX + labelW
	valueW := r.inner - (valueX - r.margin)
	for _, row := range rows {
		hl := r.text(row.Label, labelX, r.y, labelW, AlignRight, 10, row.Bold, colorText)
		hv := r.text(row.Value, valueX, r.y, valueW, AlignRight, 10, row.Bold, colorText)
		r.y += math.Max(hl, hv) + 2*r.s
	}
	r.y += 10 * r.s
}

func (r *renderer) signatures(place string, labels []string) {
	if place != "" {
		r.y += 10 * r.s
		r.y += r.text(place, r.margin, r.y, r.inner, AlignRight, 10, false, colorText)
	}
	if len(labels) == 0 {
		return
	}
	r.y += 10 * r.s
	colW := r.inner / float64(len(labels))
	h := 0.0
	for i, label := range labels {
		h = math.Max(h, r.text(label, r.margin+float64(i)*colW, r.y, colW, AlignCenter, 10, true, colorText))
	}
	r.y += h + 70*r.s
	for i := range labels {
		r.text("(..............................)", r.margin+float64(i)*colW, r.y, colW, AlignCenter, 10, false, colorText)
	}
	r.y += 14 * r.s
}
