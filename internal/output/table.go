package output

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/coinfolio/portfolio-tracker/internal/domain"
)

// DefaultColumnWidth applies to every column no width was supplied for.
const DefaultColumnWidth = 10

// borderGlyphs holds the eleven glyph roles of one border style.
type borderGlyphs struct {
	topLeft, topCenter, topRight          string
	midLeft, midCenter, midRight          string
	bottomLeft, bottomCenter, bottomRight string
	horizontal, vertical                  string
}

var borderSets = map[domain.BorderStyle]borderGlyphs{
	domain.BorderASCII: {
		topLeft: "+", topCenter: "+", topRight: "+",
		midLeft: "+", midCenter: "+", midRight: "+",
		bottomLeft: "+", bottomCenter: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
	},
	domain.BorderThin: {
		topLeft: "┌", topCenter: "┬", topRight: "┐",
		midLeft: "├", midCenter: "┼", midRight: "┤",
		bottomLeft: "└", bottomCenter: "┴", bottomRight: "┘",
		horizontal: "─", vertical: "│",
	},
	domain.BorderThick: {
		topLeft: "┏", topCenter: "┳", topRight: "┓",
		midLeft: "┣", midCenter: "╋", midRight: "┫",
		bottomLeft: "┗", bottomCenter: "┻", bottomRight: "┛",
		horizontal: "━", vertical: "┃",
	},
}

// ArityError reports a Row call whose cell count does not match the table's
// column count. It signals a caller defect, not bad data.
type ArityError struct {
	Want, Got int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("table expects %d cells per row, got %d", e.Want, e.Got)
}

// Table renders fixed-width data rows and horizontal separators for
// sequential printing. Every emitted line has the same display width for a
// given configuration, which is what keeps the box borders aligned.
//
// A Table is a single render session and is not safe for concurrent use;
// SetColumnWidths must not race with rendering.
type Table struct {
	columns int
	widths  []int
	glyphs  borderGlyphs

	// separator templates, regenerated on every width change
	top, mid, bottom string
}

// NewTable creates a table with the given column count and border style.
// Unknown styles silently fall back to ascii. All widths start at
// DefaultColumnWidth.
func NewTable(columns int, style domain.BorderStyle) *Table {
	glyphs, ok := borderSets[style]
	if !ok {
		glyphs = borderSets[domain.BorderASCII]
	}
	t := &Table{columns: columns, glyphs: glyphs}
	t.SetColumnWidths(nil)
	return t
}

// SetColumnWidths sets per-column widths in order. Columns beyond the given
// slice fall back to DefaultColumnWidth. All separator templates are rebuilt
// before the call returns, so the next render already sees the new layout.
func (t *Table) SetColumnWidths(widths []int) {
	t.widths = make([]int, t.columns)
	for i := range t.widths {
		if i < len(widths) {
			t.widths[i] = widths[i]
		} else {
			t.widths[i] = DefaultColumnWidth
		}
	}
	t.top = t.separator(t.glyphs.topLeft, t.glyphs.topCenter, t.glyphs.topRight)
	t.mid = t.separator(t.glyphs.midLeft, t.glyphs.midCenter, t.glyphs.midRight)
	t.bottom = t.separator(t.glyphs.bottomLeft, t.glyphs.bottomCenter, t.glyphs.bottomRight)
}

func (t *Table) separator(left, center, right string) string {
	segments := make([]string, t.columns)
	for i, w := range t.widths {
		// +2 accounts for the padding spaces around each cell
		segments[i] = strings.Repeat(t.glyphs.horizontal, w+2)
	}
	return left + strings.Join(segments, center) + right
}

// Row renders one data row: each cell left-justified to its column width,
// one space on either side, vertical separators between cells and at both
// ends. The cell count must match the column count.
func (t *Table) Row(cells []string) (string, error) {
	if len(cells) != t.columns {
		return "", &ArityError{Want: t.columns, Got: len(cells)}
	}
	var b strings.Builder
	b.WriteString(t.glyphs.vertical)
	for i, cell := range cells {
		b.WriteString(" ")
		b.WriteString(runewidth.FillRight(cell, t.widths[i]))
		b.WriteString(" ")
		b.WriteString(t.glyphs.vertical)
	}
	return b.String(), nil
}

// SeparatorFirst returns the top border line.
func (t *Table) SeparatorFirst() string { return t.top }

// Separator returns an inner border line.
func (t *Table) Separator() string { return t.mid }

// SeparatorLast returns the bottom border line.
func (t *Table) SeparatorLast() string { return t.bottom }
