// Package sequence provides gapless per-document-type, per-year
// document numbering.
package sequence

import (
	"fmt"
	"strings"
	"time"
)

// DocumentType is the aggregate a sequence of document numbers hangs
// off. Its row doubles as the lock anchor serializing concurrent
// allocations for the same type.
type DocumentType struct {
	id     uint
	code   string
	name   string
	prefix string
	active bool
}

// NewDocumentType creates a new document type.
func NewDocumentType(code, name, prefix string) (*DocumentType, error) {
	code = strings.TrimSpace(code)
	name = strings.TrimSpace(name)
	if code == "" {
		return nil, fmt.Errorf("document type code is required")
	}
	if name == "" {
		return nil, fmt.Errorf("document type name is required")
	}

	return &DocumentType{
		code:   code,
		name:   name,
		prefix: strings.TrimSpace(prefix),
		active: true,
	}, nil
}

// ReconstructDocumentType reconstructs a document type from persistence.
func ReconstructDocumentType(id uint, code, name, prefix string, active bool) (*DocumentType, error) {
	if id == 0 {
		return nil, fmt.Errorf("document type ID cannot be zero")
	}
	if code == "" {
		return nil, fmt.Errorf("document type code is required")
	}

	return &DocumentType{
		id:     id,
		code:   code,
		name:   name,
		prefix: prefix,
		active: active,
	}, nil
}

// ID returns the document type ID.
func (d *DocumentType) ID() uint { return d.id }

// Code returns the document type code.
func (d *DocumentType) Code() string { return d.code }

// Name returns the document type name.
func (d *DocumentType) Name() string { return d.name }

// Prefix returns the optional number prefix.
func (d *DocumentType) Prefix() string { return d.prefix }

// Active returns whether numbers may be allocated for this type.
func (d *DocumentType) Active() bool { return d.active }

// SetID assigns the storage-generated ID after insert.
func (d *DocumentType) SetID(id uint) {
	if d.id == 0 {
		d.id = id
	}
}

// Allocation is one issued document number.
type Allocation struct {
	Number   string
	Sequence int
	Year     int
}

// FormatNumber renders a document number as {prefix-}{year}-{seq:05d}.
func FormatNumber(prefix string, year, seq int) string {
	if prefix != "" {
		return fmt.Sprintf("%s-%d-%05d", prefix, year, seq)
	}
	return fmt.Sprintf("%d-%05d", year, seq)
}

// YearOf returns the calendar year an allocation date falls into.
func YearOf(asOf time.Time) int {
	return asOf.UTC().Year()
}
