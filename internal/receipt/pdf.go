package receipt

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/dslipak/pdf"
)

// ParseError is returned when the receipt document can't be turned into text or fields.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("PDF parsing failed: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var ErrEmptyDocument = errors.New("document is empty")

// TextExtractor returns the text of every page of a document, in page order.
//
//go:generate mockery --name=TextExtractor --case=underscore --structname=MockTextExtractor --filename=text_extractor_mock.go --inpackage
type TextExtractor interface {
	ExtractPages(content []byte) ([]string, error)
}

// PDFTextExtractor reads page text out of PDF documents.
type PDFTextExtractor struct{}

var _ TextExtractor = PDFTextExtractor{}

// ExtractPages returns the text of every page that has a content stream, one line per text row.
func (PDFTextExtractor) ExtractPages(content []byte) (pages []string, err error) {
	if len(content) == 0 {
		return nil, ErrEmptyDocument
	}

	// The pdf package panics on some malformed documents.
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("reading PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}

	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pages = append(pages, strings.Join(layoutLines(page.Content().Text), "\n"))
	}

	return pages, nil
}

const (
	// rowTolerance is how far apart, in points, two glyphs' baselines can be and still share a row.
	rowTolerance = 2.0
	// minWordGap is the smallest horizontal gap, relative to the font size, read as a space.
	minWordGap = 0.15
)

type textRow struct {
	y      float64
	glyphs []pdf.Text
}

// layoutLines rebuilds the text rows of a page from its positioned glyphs. Rows are ordered top to
// bottom and glyphs left to right. Glyphs that are visually apart are separated by a space, which
// keeps a label and its value, or two table cells, from being glued together.
//
// Fonts without a Widths array report a zero width, so every glyph of a text run shares the run's
// X. The stable sort keeps those in drawing order and only the jump to the next run adds a space.
func layoutLines(glyphs []pdf.Text) []string {
	var rows []*textRow
	for _, glyph := range glyphs {
		if glyph.S == "" {
			continue
		}
		row := findRow(rows, glyph.Y)
		if row == nil {
			row = &textRow{y: glyph.Y}
			rows = append(rows, row)
		}
		row.glyphs = append(row.glyphs, glyph)
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].y > rows[j].y })

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		sort.SliceStable(row.glyphs, func(i, j int) bool { return row.glyphs[i].X < row.glyphs[j].X })

		var sb strings.Builder
		for j, glyph := range row.glyphs {
			if j > 0 && isWordGap(row.glyphs[j-1], glyph) {
				sb.WriteString(" ")
			}
			sb.WriteString(glyph.S)
		}
		if line := strings.TrimSpace(sb.String()); line != "" {
			lines = append(lines, line)
		}
	}

	return lines
}

func findRow(rows []*textRow, y float64) *textRow {
	for _, row := range rows {
		if math.Abs(row.y-y) <= rowTolerance {
			return row
		}
	}
	return nil
}

func isWordGap(prev, next pdf.Text) bool {
	if strings.TrimSpace(prev.S) == "" || strings.TrimSpace(next.S) == "" {
		return false
	}
	gap := next.X - (prev.X + prev.W)
	return gap > math.Max(next.FontSize, 1)*minWordGap
}

// Parse flattens the document text and extracts the receipt fields from it. Any failure is
// returned as a *ParseError.
func Parse(content []byte, textExtractor TextExtractor) (fields Fields, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ParseError{Err: fmt.Errorf("%v", r)}
		}
	}()

	pages, err := textExtractor.ExtractPages(content)
	if err != nil {
		return Fields{}, &ParseError{Err: err}
	}

	return ExtractFields(Flatten(pages)), nil
}
