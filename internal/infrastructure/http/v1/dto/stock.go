package dto

import (
	"time"

	"supplypro/internal/domain/stock"
)

// EventListRequest filters stock event log queries.
type EventListRequest struct {
	ItemName   string `form:"itemName"`
	SupplierID string `form:"supplierId"`
	CreatedBy  string `form:"createdBy"`
	FromDate   string `form:"fromDate"`
	ToDate     string `form:"toDate"`
	MinChange  *int64 `form:"minChange"`
	MaxChange  *int64 `form:"maxChange"`
	Limit      int    `form:"limit"`
	Offset     int    `form:"offset"`
}

// EventResponse is the public view of one stock log entry.
type EventResponse struct {
	ID             string    `json:"id"`
	ItemID         string    `json:"itemId"`
	ItemName       string    `json:"itemName,omitempty"`
	SupplierID     string    `json:"supplierId,omitempty"`
	QuantityChange int64     `json:"quantityChange"`
	Reason         string    `json:"reason"`
	PriceAtChange  *string   `json:"priceAtChange,omitempty"`
	CreatedBy      string    `json:"createdBy,omitempty"`
	OccurredAt     time.Time `json:"occurredAt"`
}

// FromEvent converts a domain event to its response DTO.
func FromEvent(e *stock.Event) EventResponse {
	resp := EventResponse{
		ID:             e.ID.String(),
		ItemID:         e.ItemID.String(),
		ItemName:       e.ItemName,
		SupplierID:     e.SupplierID,
		QuantityChange: e.QuantityChange,
		Reason:         string(e.Reason),
		CreatedBy:      e.CreatedBy,
		OccurredAt:     e.OccurredAt,
	}
	if e.PriceAtChange != nil {
		s := e.PriceAtChange.String()
		resp.PriceAtChange = &s
	}
	return resp
}

// FromEvents converts a slice of domain events.
func FromEvents(events []stock.Event) []EventResponse {
	out := make([]EventResponse, len(events))
	for i := range events {
		out[i] = FromEvent(&events[i])
	}
	return out
}
