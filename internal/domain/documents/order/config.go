package order

const (
	// DocCode is the type code embedded in transaction numbers.
	DocCode = "OD"

	// DocumentType names this document kind in audit rows.
	DocumentType = "order"
)
