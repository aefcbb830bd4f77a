package sale

const (
	// DocCode is the type code embedded in sale transaction numbers.
	DocCode = "SL"

	// ReturnDocCode is the type code for sale returns.
	ReturnDocCode = "SR"

	// Document kind names in postings and audit rows.
	DocumentType       = "sale"
	ReturnDocumentType = "sale_return"
)
