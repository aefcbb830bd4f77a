package purchase

const (
	// DocCode is the type code embedded in transaction numbers.
	DocCode = "PU"

	// DocumentType names this document kind in postings and audit rows.
	DocumentType = "purchase"
)
