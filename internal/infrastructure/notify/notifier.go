// Package notify pushes document events to an external webhook.
// Delivery is best-effort: the documents are already committed when a
// notification fires, so failures are logged and dropped, never retried
// into the caller's request.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"bakehouse/internal/domain/posting"
	"bakehouse/pkg/logger"
)

// Event is the webhook payload for one document action.
type Event struct {
	Action        string    `json:"action"`
	DocumentType  string    `json:"documentType"`
	DocumentID    string    `json:"documentId"`
	TransactionNo string    `json:"transactionNo"`
	OccurredAt    time.Time `json:"occurredAt"`
}

// Notifier posts document events to a configured URL.
type Notifier struct {
	url    string
	client *http.Client
}

// New creates a notifier. An empty URL disables delivery.
func New(url string) *Notifier {
	return &Notifier{
		url: url,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// Enabled reports whether a webhook URL is configured.
func (n *Notifier) Enabled() bool {
	return n.url != ""
}

// DocumentSaved returns an engine hook that reports posted documents.
func (n *Notifier) DocumentSaved() posting.AfterSaveHook {
	return func(ctx context.Context, doc posting.Postable) {
		n.send(ctx, "posted", doc)
	}
}

// DocumentDeleted returns an engine hook that reports unposted documents.
func (n *Notifier) DocumentDeleted() posting.AfterSaveHook {
	return func(ctx context.Context, doc posting.Postable) {
		n.send(ctx, "deleted", doc)
	}
}

func (n *Notifier) send(ctx context.Context, action string, doc posting.Postable) {
	if !n.Enabled() {
		return
	}

	event := Event{
		Action:        action,
		DocumentType:  doc.DocumentType(),
		DocumentID:    doc.GetID().String(),
		TransactionNo: doc.GetNumber(),
		OccurredAt:    time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		logger.Warn(ctx, "notify: marshal event", "error", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(payload))
	if err != nil {
		logger.Warn(ctx, "notify: build request", "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		logger.Warn(ctx, "notify: deliver event",
			"action", action,
			"document", event.TransactionNo,
			"error", err,
		)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		logger.Warn(ctx, "notify: webhook rejected event",
			"action", action,
			"document", event.TransactionNo,
			"error", fmt.Sprintf("status %d", resp.StatusCode),
		)
	}
}
