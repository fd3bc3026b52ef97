package entity

import "time"

type Notification struct {
	ID          string    `json:"_id" validate:"required"`
	RecipientID string    `json:"userId" validate:"required"`
	Message     string    `json:"message" validate:"required"`
	Type        string    `json:"type,omitempty"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"createdAt"`
}

type NotificationList struct {
	Notifications []Notification `json:"notifications" validate:"dive"`
}
