// Package document lays out printable business documents (invoices,
// delivery notes, agreements, payslips, ledger reports) and exports them
// to PDF. Export lays the document out on one tall A4-wide canvas, draws
// it as page-height strips and assembles one PDF page per strip.
package document

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

type Header struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

// Row is a label/value pair, used for the meta block and the summary.
type Row struct {
	Label string
	Value string
	Bold  bool
}

type Column struct {
	Title string
	// Width is a share of the printable width; shares are normalized.
	Width float64
	Align Align
}

type Table struct {
	Columns []Column
	Rows    [][]string
}

type Document struct {
	Filename   string
	Header     Header
	Title      string
	Number     string
	Meta       []Row
	Paragraphs []string
	Table      *Table
	Summary    []Row
	Notes      []string
	Place      string
	Signatures []string
}

type Options struct {
	// Width is the canvas width in pixels at Scale 1 (A4 at 96 dpi).
	Width int
	// PageHeight is the height of one printed page at Scale 1.
	PageHeight int
	Margin     int
	Scale      float64
	// MaxPages bounds the output; longer documents fail with ErrTooLong.
	MaxPages int
}

func DefaultOptions() Options {
	return Options{
		Width:      794,
		PageHeight: 1123,
		Margin:     48,
		Scale:      1.5,
		MaxPages:   50,
	}
}

func (o Options) normalized() Options {
	def := DefaultOptions()
	if o.Width <= 0 {
		o.Width = def.Width
	}
	if o.PageHeight <= 0 {
		o.PageHeight = def.PageHeight
	}
	if o.Margin < 0 || o.Margin*2 >= o.Width {
		o.Margin = def.Margin
	}
	if o.Scale <= 0 {
		o.Scale = 1
	}
	if o.Scale > 4 {
		o.Scale = 4
	}
	if o.MaxPages <= 0 {
		o.MaxPages = def.MaxPages
	}
	return o
}

// Render runs the full export pipeline and returns the PDF bytes.
func Render(doc Document, opt Options) ([]byte, error) {
	opt = opt.normalized()
	pages, err := RasterizePages(doc, opt)
	if err != nil {
		return nil, err
	}
	return BuildPDF(pages)
}
