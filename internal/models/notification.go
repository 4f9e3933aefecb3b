package models

import (
	"time"

	"github.com/google/uuid"
)

type NotificationKind string

const (
	NotificationReceipt         NotificationKind = "receipt"
	NotificationCommercialOrder NotificationKind = "commercial_order"
)

type NotificationStatus string

const (
	StatusPending NotificationStatus = "pending"
	StatusSent    NotificationStatus = "sent"
	StatusFailed  NotificationStatus = "failed"
)

// Notification is one recorded email attempt.
type Notification struct {
	ID        uuid.UUID          `json:"id"`
	Kind      NotificationKind   `json:"kind"`
	Reference string             `json:"reference"`
	Recipient string             `json:"recipient"`
	Subject   string             `json:"subject,omitempty"`
	Status    NotificationStatus `json:"status"`
	Error     string             `json:"error,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
	SentAt    *time.Time         `json:"sent_at,omitempty"`
}

// TemplateEmail is a dynamic-template email as handed to the mail provider.
type TemplateEmail struct {
	Kind       NotificationKind
	Reference  string
	Recipient  string
	Name       string
	Subject    string
	TemplateID string
	BCC        []string
	Data       map[string]any
	Text       string
	HTML       string
}
