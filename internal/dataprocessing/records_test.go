package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"confpulse/pkg/contracts/domain"
)

func TestBuildRecords(t *testing.T) {
	headers := []string{"ID", "Title", "Country"}
	rows := [][]domain.Cell{
		{"A1", "First Paper", "USA"},
		{"A2", "Second Paper"},                   // short row: Country absent
		{"A3", "Third Paper", "Canada", "extra"}, // long row: extra dropped
		{},
	}

	records := BuildRecords(headers, rows)
	assert.Len(t, records, 4)

	assert.Equal(t, domain.Record{"ID": "A1", "Title": "First Paper", "Country": "USA"}, records[0])

	assert.Equal(t, "A2", records[1].StringOr("ID"))
	assert.False(t, records[1].Has("Country"))

	assert.Equal(t, "Canada", records[2].StringOr("Country"))
	_, hasExtra := records[2]["extra"]
	assert.False(t, hasExtra)

	assert.Empty(t, records[3])
}

func TestBuildRecordsPreservesCellTypes(t *testing.T) {
	headers := []string{"ID", "Score"}
	rows := [][]domain.Cell{
		{"A1", 4.5},
		{"A2", nil},
	}

	records := BuildRecords(headers, rows)
	assert.Equal(t, 4.5, records[0]["Score"])
	assert.True(t, records[1].Has("ID"))
	assert.False(t, records[1].Has("Score"))
}
