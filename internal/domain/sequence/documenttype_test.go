package sequence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocumentType(t *testing.T) {
	dt, err := NewDocumentType("  INV  ", " Invoice ", " F ")
	require.NoError(t, err)
	assert.Equal(t, "INV", dt.Code())
	assert.Equal(t, "Invoice", dt.Name())
	assert.Equal(t, "F", dt.Prefix())
	assert.True(t, dt.Active())

	_, err = NewDocumentType("", "Invoice", "")
	assert.Error(t, err)

	_, err = NewDocumentType("INV", "   ", "")
	assert.Error(t, err)
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "F-2026-00001", FormatNumber("F", 2026, 1))
	assert.Equal(t, "F-2026-00123", FormatNumber("F", 2026, 123))
	assert.Equal(t, "2026-00007", FormatNumber("", 2026, 7))
	assert.Equal(t, "T-2026-123456", FormatNumber("T", 2026, 123456), "wide sequences are not truncated")
}

func TestYearOf(t *testing.T) {
	loc := time.FixedZone("UTC+13", 13*3600)
	// 2025-12-31 23:30 UTC is already January 1st in UTC+13; the year
	// is taken from UTC.
	asOf := time.Date(2026, 1, 1, 12, 30, 0, 0, loc)
	assert.Equal(t, 2025, YearOf(asOf))

	assert.Equal(t, 2026, YearOf(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)))
}
