package kitchenproduction

const (
	// DocCode is the type code embedded in transaction numbers.
	DocCode = "FP"

	// DocumentType names this document kind in postings and audit rows.
	DocumentType = "kitchen_production"
)
