package entity

import "github.com/shopspring/decimal"

type TicketStatus string

const (
	TicketStatusValid     TicketStatus = "valid"
	TicketStatusUsed      TicketStatus = "used"
	TicketStatusCancelled TicketStatus = "cancelled"
)

type Ticket struct {
	ID         string          `json:"_id" validate:"required"`
	BookingID  string          `json:"bookingId" validate:"required"`
	EventID    string          `json:"eventId" validate:"required"`
	TicketType string          `json:"ticketType,omitempty"`
	Price      decimal.Decimal `json:"price" validate:"gte=0"`
	QRCode     string          `json:"qrCode,omitempty"`
	Status     TicketStatus    `json:"status" validate:"required,oneof=valid used cancelled"`
}

type TicketList struct {
	Tickets []Ticket `json:"tickets" validate:"dive"`
}
