package entity

import "time"

type Review struct {
	ID        string    `json:"_id" validate:"required"`
	VendorID  string    `json:"vendorId" validate:"required"`
	ClientID  string    `json:"clientId" validate:"required"`
	EventID   string    `json:"eventId,omitempty"`
	Rating    int       `json:"rating" validate:"gte=1,lte=5"`
	Comment   string    `json:"comment,omitempty" validate:"max=1000"`
	CreatedAt time.Time `json:"createdAt"`
}

type ReviewList struct {
	Reviews []Review `json:"reviews" validate:"dive"`
}
