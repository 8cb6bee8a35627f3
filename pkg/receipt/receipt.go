package receipt

import (
	"fmt"
	"strings"
)

// Document builds a fixed-width text receipt for a completed sale.
type Document struct {
	b     strings.Builder
	width int // line width in characters
}

// NewDocument creates a receipt document with the given character width.
func NewDocument(width int) *Document {
	if width <= 0 {
		width = 40
	}
	return &Document{width: width}
}

// Line writes a line of text.
func (d *Document) Line(s string) *Document {
	d.b.WriteString(s)
	d.b.WriteByte('\n')
	return d
}

// LineF writes a formatted line of text.
func (d *Document) LineF(format string, args ...interface{}) *Document {
	d.b.WriteString(fmt.Sprintf(format, args...))
	d.b.WriteByte('\n')
	return d
}

// Center writes a line centered within the receipt width.
func (d *Document) Center(s string) *Document {
	pad := (d.width - len(s)) / 2
	if pad < 0 {
		pad = 0
	}
	d.b.WriteString(strings.Repeat(" ", pad))
	d.b.WriteString(s)
	d.b.WriteByte('\n')
	return d
}

// Separator writes a full-width separator line.
func (d *Document) Separator(char byte) *Document {
	d.b.WriteString(strings.Repeat(string(char), d.width))
	d.b.WriteByte('\n')
	return d
}

// KeyValue writes a left-aligned key and right-aligned value on one line.
// Example: "Sous-total               230.00 MAD"
func (d *Document) KeyValue(key, value string) *Document {
	spaces := d.width - len(key) - len(value)
	if spaces < 1 {
		spaces = 1
	}
	d.b.WriteString(key)
	d.b.WriteString(strings.Repeat(" ", spaces))
	d.b.WriteString(value)
	d.b.WriteByte('\n')
	return d
}

// ItemLine writes a receipt item line: qty x name, then a right-aligned total.
// Example: "2x Stylo                  180.00 MAD"
func (d *Document) ItemLine(qty int, name, total string) *Document {
	prefix := fmt.Sprintf("%dx %s", qty, name)
	spaces := d.width - len(prefix) - len(total)
	if spaces < 1 {
		spaces = 1
	}
	d.b.WriteString(prefix)
	d.b.WriteString(strings.Repeat(" ", spaces))
	d.b.WriteString(total)
	d.b.WriteByte('\n')
	return d
}

// String returns the accumulated receipt text.
func (d *Document) String() string {
	return d.b.String()
}
