// Package notification fans submitted guest requests out to the
// front-desk console via the task queue.
package notification

import (
	"context"
	"encoding/json"
	"time"

	"miohost/models"
)

// TypeDeskNotify is the queue task type consumed by the desk worker.
const TypeDeskNotify = "desk:notify"

// DeskFeedKey is the capped Redis list the worker appends processed
// notifications to, newest first. The desk console polls it.
const DeskFeedKey = "desk:feed"

// Notification kinds.
const (
	KindServiceRequest   = "service_request"
	KindReceptionMessage = "reception_message"
)

// DeskNotification is the queue task payload.
type DeskNotification struct {
	Kind      string    `json:"kind"`
	RefID     string    `json:"refId"`
	Room      string    `json:"room"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"createdAt"`
}

// DecodeFeed parses raw feed list entries, dropping any that fail to
// decode. Order is preserved.
func DecodeFeed(entries []string) []DeskNotification {
	notes := make([]DeskNotification, 0, len(entries))
	for _, raw := range entries {
		var note DeskNotification
		if err := json.Unmarshal([]byte(raw), &note); err != nil {
			continue
		}
		notes = append(notes, note)
	}
	return notes
}

// DeskNotifier alerts the front desk about new guest submissions.
type DeskNotifier interface {
	NotifyServiceRequest(ctx context.Context, req models.ServiceRequest) error
	NotifyReceptionMessage(ctx context.Context, msg models.ReceptionMessage) error
}

// NoopNotifier discards notifications. Used in tests and when the queue
// is not configured.
type NoopNotifier struct{}

func (NoopNotifier) NotifyServiceRequest(context.Context, models.ServiceRequest) error {
	return nil
}

func (NoopNotifier) NotifyReceptionMessage(context.Context, models.ReceptionMessage) error {
	return nil
}
