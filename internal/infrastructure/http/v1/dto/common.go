// Package dto defines request and response shapes for the HTTP API.
// Requests are dedicated types with binding rules; responses reuse the
// domain entities, which carry full JSON tags.
package dto

// IDResponse is returned on entity creation.
type IDResponse struct {
	ID string `json:"id"`
}

// SuccessResponse is a simple success acknowledgment.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ListResponse wraps a paginated collection.
type ListResponse struct {
	Items      any `json:"items"`
	TotalCount int `json:"totalCount"`
	Limit      int `json:"limit"`
	Offset     int `json:"offset"`
}

// SetDeletionMarkRequest toggles the soft-delete flag.
type SetDeletionMarkRequest struct {
	Marked bool `json:"marked"`
}
