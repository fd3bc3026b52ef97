package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusOngoing   EventStatus = "ongoing"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCancelled EventStatus = "cancelled"
)

type Event struct {
	ID               string          `json:"_id" validate:"required"`
	Title            string          `json:"title" validate:"required"`
	Description      string          `json:"description,omitempty"`
	Category         string          `json:"category,omitempty"`
	VendorID         string          `json:"vendorId" validate:"required"`
	Date             time.Time       `json:"date" validate:"required"`
	Venue            string          `json:"venue,omitempty"`
	Location         string          `json:"location,omitempty"`
	TicketPrice      decimal.Decimal `json:"ticketPrice" validate:"gte=0"`
	TicketsAvailable int             `json:"ticketsAvailable" validate:"gte=0"`
	Images           []string        `json:"images,omitempty" validate:"dive,url"`
	Status           EventStatus     `json:"status" validate:"omitempty,oneof=upcoming ongoing completed cancelled"`
}

// EventPage is one page of the remote events collection.
type EventPage struct {
	Events      []Event `json:"events" validate:"dive"`
	CurrentPage int     `json:"currentPage" validate:"gte=1"`
	TotalPages  int     `json:"totalPages" validate:"gte=0"`
	TotalEvents int     `json:"totalEvents" validate:"gte=0"`
}

func (p EventPage) HasNextPage() bool {
	return p.CurrentPage < p.TotalPages
}
