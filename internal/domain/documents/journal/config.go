package journal

const (
	// DocCode is the type code embedded in transaction numbers.
	DocCode = "JV"

	// DocumentType names this document kind in audit rows.
	DocumentType = "journal_voucher"
)
