package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID          string          `json:"_id" validate:"required"`
	EventID     string          `json:"eventId" validate:"required"`
	ClientID    string          `json:"clientId" validate:"required"`
	TicketCount int             `json:"ticketCount" validate:"gte=1"`
	TotalAmount decimal.Decimal `json:"totalAmount" validate:"gte=0"`
	Status      BookingStatus   `json:"status" validate:"required,oneof=pending confirmed cancelled"`
	BookedAt    time.Time       `json:"createdAt"`
}

type BookingList struct {
	Bookings []Booking `json:"bookings" validate:"dive"`
}
