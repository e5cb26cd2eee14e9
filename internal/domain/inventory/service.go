package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"supplypro/internal/core/apperror"
	appctx "supplypro/internal/core/context"
	"supplypro/internal/core/id"
	"supplypro/internal/domain/stock"
	"supplypro/pkg/logger"
)

// deletionReasons are the only tags accepted when removing an item: the
// remaining quantity leaves the books as a write-off or supplier return,
// never as an untagged disappearance.
var deletionReasons = map[stock.Reason]struct{}{
	stock.ReasonScrapped:           {},
	stock.ReasonDestroyed:          {},
	stock.ReasonDamaged:            {},
	stock.ReasonExpired:            {},
	stock.ReasonLost:               {},
	stock.ReasonReturnedToSupplier: {},
}

// Auditor records entity change history.
type Auditor interface {
	Record(ctx context.Context, entityType string, entityID id.ID, action string, changes any) error
}

// Service provides business logic for inventory items.
type Service struct {
	repo    Repository
	history *stock.Service
	auditor Auditor
}

// NewService creates a new inventory service.
func NewService(repo Repository, history *stock.Service, auditor Auditor) *Service {
	return &Service{
		repo:    repo,
		history: history,
		auditor: auditor,
	}
}

// Create validates and stores a new item, recording its initial stock.
func (s *Service) Create(ctx context.Context, item *Item) error {
	if err := s.validate(item); err != nil {
		return err
	}

	exists, err := s.repo.ExistsByNameAndPrice(ctx, item.Name, item.Price, id.Nil())
	if err != nil {
		return fmt.Errorf("check duplicate item: %w", err)
	}
	if exists {
		return apperror.NewDuplicate("inventory item", "name and price", item.Name)
	}

	if id.IsNil(item.ID) {
		item.ID = id.New()
	}
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now
	if item.CreatedBy == "" {
		item.CreatedBy = appctx.GetUserID(ctx)
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return fmt.Errorf("create item: %w", err)
	}

	if item.Quantity > 0 {
		price := item.Price
		if err := s.history.Record(ctx, &stock.Event{
			ItemID:         item.ID,
			SupplierID:     item.SupplierID.String(),
			QuantityChange: item.Quantity,
			Reason:         stock.ReasonInitialStock,
			PriceAtChange:  &price,
		}); err != nil {
			return err
		}
	}

	if err := s.auditor.Record(ctx, "inventory_item", item.ID, "create", item); err != nil {
		logger.Warn(ctx, "audit record failed", "item_id", item.ID, "error", err)
	}

	logger.Info(ctx, "inventory item created",
		"item_id", item.ID,
		"name", item.Name,
		"quantity", item.Quantity,
	)

	return nil
}

// Update applies changes to an existing item. Price changes append a
// zero-delta PRICE_CHANGE event; quantity changes append a MANUAL_UPDATE
// event with the signed difference.
func (s *Service) Update(ctx context.Context, item *Item) error {
	if err := s.validate(item); err != nil {
		return err
	}

	current, err := s.repo.GetByID(ctx, item.ID)
	if err != nil {
		return err
	}

	exists, err := s.repo.ExistsByNameAndPrice(ctx, item.Name, item.Price, item.ID)
	if err != nil {
		return fmt.Errorf("check duplicate item: %w", err)
	}
	if exists {
		return apperror.NewDuplicate("inventory item", "name and price", item.Name)
	}

	item.CreatedBy = current.CreatedBy
	item.CreatedAt = current.CreatedAt
	item.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, item); err != nil {
		return fmt.Errorf("update item: %w", err)
	}

	if !current.Price.Equal(item.Price) {
		price := item.Price
		if err := s.history.Record(ctx, &stock.Event{
			ItemID:         item.ID,
			SupplierID:     item.SupplierID.String(),
			QuantityChange: 0,
			Reason:         stock.ReasonPriceChange,
			PriceAtChange:  &price,
		}); err != nil {
			return err
		}
	}

	if delta := item.Quantity - current.Quantity; delta != 0 {
		if err := s.history.Record(ctx, &stock.Event{
			ItemID:         item.ID,
			SupplierID:     item.SupplierID.String(),
			QuantityChange: delta,
			Reason:         stock.ReasonManualUpdate,
		}); err != nil {
			return err
		}
	}

	if err := s.auditor.Record(ctx, "inventory_item", item.ID, "update", item); err != nil {
		logger.Warn(ctx, "audit record failed", "item_id", item.ID, "error", err)
	}

	return nil
}

// AdjustQuantity applies a signed quantity change with an explicit reason.
// The resulting on-hand quantity must not go negative; the event log keeps
// the books consistent with what the shelf can actually hold.
func (s *Service) AdjustQuantity(ctx context.Context, itemID id.ID, delta int64, reason stock.Reason) (*Item, error) {
	if delta == 0 {
		return nil, apperror.NewValidation("quantity change cannot be zero")
	}
	if !reason.Valid() {
		return nil, apperror.NewValidation(fmt.Sprintf("unknown stock change reason %q", reason))
	}

	item, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	newQty := item.Quantity + delta
	if newQty < 0 {
		return nil, apperror.NewValidation("resulting quantity cannot be negative").
			WithDetail("current", item.Quantity).
			WithDetail("change", delta)
	}

	item.Quantity = newQty
	item.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update item quantity: %w", err)
	}

	event := &stock.Event{
		ItemID:         item.ID,
		SupplierID:     item.SupplierID.String(),
		QuantityChange: delta,
		Reason:         reason,
	}
	if delta > 0 && reason == stock.ReasonInitialStock {
		price := item.Price
		event.PriceAtChange = &price
	}
	if err := s.history.Record(ctx, event); err != nil {
		return nil, err
	}

	return item, nil
}

// Delete removes an item. The remaining quantity is written out of the log
// under the given reason before the row disappears.
func (s *Service) Delete(ctx context.Context, itemID id.ID, reason stock.Reason) error {
	if _, ok := deletionReasons[reason]; !ok {
		return apperror.NewValidation(fmt.Sprintf("reason %q is not valid for deletion", reason))
	}

	item, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}

	if item.Quantity > 0 {
		if err := s.history.Record(ctx, &stock.Event{
			ItemID:         item.ID,
			SupplierID:     item.SupplierID.String(),
			QuantityChange: -item.Quantity,
			Reason:         reason,
		}); err != nil {
			return err
		}
	}

	if err := s.repo.Delete(ctx, itemID); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}

	if err := s.auditor.Record(ctx, "inventory_item", itemID, "delete", map[string]any{"reason": reason}); err != nil {
		logger.Warn(ctx, "audit record failed", "item_id", itemID, "error", err)
	}

	logger.Info(ctx, "inventory item deleted",
		"item_id", itemID,
		"reason", reason,
	)

	return nil
}

// GetByID retrieves one item.
func (s *Service) GetByID(ctx context.Context, itemID id.ID) (*Item, error) {
	return s.repo.GetByID(ctx, itemID)
}

// List returns items matching the filter plus the total count.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]Item, int64, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	if filter.Limit > 500 {
		filter.Limit = 500
	}

	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count items: %w", err)
	}

	return items, total, nil
}

// validate enforces field-level rules.
func (s *Service) validate(item *Item) error {
	if strings.TrimSpace(item.Name) == "" {
		return apperror.NewValidation("name is required")
	}
	if item.Price.IsZero() || item.Price.IsNegative() {
		return apperror.NewValidation("price must be positive")
	}
	if item.Quantity < 0 {
		return apperror.NewValidation("quantity must not be negative")
	}
	if item.MinimumQuantity < 0 {
		return apperror.NewValidation("minimum quantity must not be negative")
	}
	if id.IsNil(item.SupplierID) {
		return apperror.NewValidation("supplier_id is required")
	}
	return nil
}
