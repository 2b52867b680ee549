package domain

import "time"

type NotificationKind string

const NotificationSuccess NotificationKind = "success"

// Notification is a transient message shown to the user once.
type Notification struct {
	Kind      NotificationKind `json:"kind"`
	Message   string           `json:"message"`
	CreatedAt time.Time        `json:"created_at"`
}
