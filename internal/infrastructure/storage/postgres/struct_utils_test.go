package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"bakehouse/internal/core/entity"
	"bakehouse/internal/core/id"
)

type MockCatalog struct {
	entity.BaseCatalog
	Code string `db:"code" json:"code"`
	Name string `db:"name" json:"name"`
}

type MockDocument struct {
	entity.Document
	Number2 string `db:"invoice_no" json:"invoiceNo"`
	Lines   []int  `db:"-" json:"lines"`
}

func TestExtractDBColumns(t *testing.T) {
	cols := ExtractDBColumns[MockCatalog]()

	expectedCols := []string{
		"id", "deletion_mark", "version", "attributes", "code", "name",
	}

	for _, expected := range expectedCols {
		assert.Contains(t, cols, expected)
	}
}

func TestExtractDBColumns_Document(t *testing.T) {
	cols := ExtractDBColumns[MockDocument]()

	expectedCols := []string{
		"id", "deletion_mark", "version",
		"created_at", "updated_at",
		"number", "date", "fiscal_year_id", "revision_no",
		"invoice_no",
	}

	for _, expected := range expectedCols {
		assert.Contains(t, cols, expected)
	}

	// Table parts are tagged "-" and never become columns.
	assert.NotContains(t, cols, "-")
}

func TestStructToMap(t *testing.T) {
	cat := MockCatalog{
		BaseCatalog: entity.BaseCatalog{
			BaseEntity: entity.BaseEntity{
				ID:           id.New(),
				DeletionMark: true,
				Version:      5,
			},
		},
		Code: "TEST",
		Name: "Test Name",
	}

	m := StructToMap(cat)

	assert.Equal(t, cat.ID, m["id"])
	assert.Equal(t, true, m["deletion_mark"])
	assert.Equal(t, 5, m["version"])
	assert.Equal(t, "TEST", m["code"])
	assert.Equal(t, "Test Name", m["name"])
}

func TestStructToMap_Document(t *testing.T) {
	doc := MockDocument{
		Document: entity.NewDocument(),
		Number2:  "INV-42",
		Lines:    []int{1, 2},
	}
	doc.Number = "MUM24PU000001"
	doc.Date = time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	m := StructToMap(&doc)

	assert.Equal(t, doc.ID, m["id"])
	assert.Equal(t, "MUM24PU000001", m["number"])
	assert.Equal(t, doc.Date, m["date"])
	assert.Equal(t, "INV-42", m["invoice_no"])
	assert.NotContains(t, m, "-")
}
