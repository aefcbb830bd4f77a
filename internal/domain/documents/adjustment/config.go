package adjustment

const (
	// DocCode is the type code embedded in transaction numbers.
	DocCode = "SA"

	// DocumentType names this document kind in audit rows.
	DocumentType = "stock_adjustment"
)
