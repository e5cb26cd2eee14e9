package stock

import (
	"context"
	"fmt"
	"time"

	"supplypro/internal/core/apperror"
	appctx "supplypro/internal/core/context"
	"supplypro/internal/core/id"
	"supplypro/pkg/logger"
)

// Service provides business operations for the stock event log.
type Service struct {
	repo Repository
}

// NewService creates a new stock history service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Record validates and appends a stock event.
// Quantity must be non-zero except for PRICE_CHANGE entries, which exist
// only to keep the log replay-compatible.
func (s *Service) Record(ctx context.Context, e *Event) error {
	if id.IsNil(e.ItemID) {
		return apperror.NewValidation("item_id is required")
	}
	if !e.Reason.Valid() {
		return apperror.NewValidation(fmt.Sprintf("unknown stock change reason %q", e.Reason))
	}
	if e.QuantityChange == 0 && e.Reason != ReasonPriceChange {
		return apperror.NewValidation("quantity change cannot be zero")
	}
	if e.PriceAtChange != nil && e.PriceAtChange.IsNegative() {
		return apperror.NewValidation("price at change must not be negative")
	}

	if id.IsNil(e.ID) {
		e.ID = id.New()
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now()
	}
	if e.CreatedBy == "" {
		e.CreatedBy = appctx.GetUserID(ctx)
	}

	if err := s.repo.Append(ctx, e); err != nil {
		return fmt.Errorf("append stock event: %w", err)
	}

	logger.Debug(ctx, "stock event recorded",
		"item_id", e.ItemID,
		"change", e.QuantityChange,
		"reason", e.Reason,
	)

	return nil
}

// List returns events matching the filter.
func (s *Service) List(ctx context.Context, filter EventFilter) ([]Event, error) {
	if filter.Limit <= 0 {
		filter.Limit = 100
	}
	if filter.Limit > 1000 {
		filter.Limit = 1000
	}
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, apperror.NewValidation("from must be on or before to")
	}

	events, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list stock events: %w", err)
	}
	return events, nil
}
