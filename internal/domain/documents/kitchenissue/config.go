package kitchenissue

const (
	// DocCode is the type code embedded in transaction numbers.
	DocCode = "RM"

	// DocumentType names this document kind in postings and audit rows.
	DocumentType = "kitchen_issue"
)
