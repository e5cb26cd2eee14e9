package supplier

import (
	"context"
	"fmt"
	"strings"
	"time"

	"supplypro/internal/core/apperror"
	appctx "supplypro/internal/core/context"
	"supplypro/internal/core/id"
	"supplypro/pkg/logger"
)

// ItemCounter reports how many inventory items are linked to a supplier.
// Deletion is blocked while linked items exist.
type ItemCounter interface {
	CountBySupplier(ctx context.Context, supplierID id.ID) (int64, error)
}

// Auditor records entity change history.
type Auditor interface {
	Record(ctx context.Context, entityType string, entityID id.ID, action string, changes any) error
}

// Service provides business logic for suppliers.
type Service struct {
	repo    Repository
	items   ItemCounter
	auditor Auditor
}

// NewService creates a new supplier service.
func NewService(repo Repository, items ItemCounter, auditor Auditor) *Service {
	return &Service{
		repo:    repo,
		items:   items,
		auditor: auditor,
	}
}

// Create validates and stores a new supplier.
func (s *Service) Create(ctx context.Context, sup *Supplier) error {
	if err := s.validate(sup); err != nil {
		return err
	}

	if err := s.checkNameUnique(ctx, sup.Name, id.Nil()); err != nil {
		return err
	}

	if id.IsNil(sup.ID) {
		sup.ID = id.New()
	}
	sup.CreatedAt = time.Now()
	if sup.CreatedBy == "" {
		sup.CreatedBy = appctx.GetUserID(ctx)
	}

	if err := s.repo.Create(ctx, sup); err != nil {
		return fmt.Errorf("create supplier: %w", err)
	}

	if err := s.auditor.Record(ctx, "supplier", sup.ID, "create", sup); err != nil {
		logger.Warn(ctx, "audit record failed", "supplier_id", sup.ID, "error", err)
	}

	logger.Info(ctx, "supplier created", "supplier_id", sup.ID, "name", sup.Name)
	return nil
}

// Update applies changes to an existing supplier.
func (s *Service) Update(ctx context.Context, sup *Supplier) error {
	if err := s.validate(sup); err != nil {
		return err
	}

	current, err := s.repo.GetByID(ctx, sup.ID)
	if err != nil {
		return err
	}

	if err := s.checkNameUnique(ctx, sup.Name, sup.ID); err != nil {
		return err
	}

	sup.CreatedBy = current.CreatedBy
	sup.CreatedAt = current.CreatedAt

	if err := s.repo.Update(ctx, sup); err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}

	if err := s.auditor.Record(ctx, "supplier", sup.ID, "update", sup); err != nil {
		logger.Warn(ctx, "audit record failed", "supplier_id", sup.ID, "error", err)
	}

	return nil
}

// Delete removes a supplier with no linked items.
func (s *Service) Delete(ctx context.Context, supplierID id.ID) error {
	if _, err := s.repo.GetByID(ctx, supplierID); err != nil {
		return err
	}

	linked, err := s.items.CountBySupplier(ctx, supplierID)
	if err != nil {
		return fmt.Errorf("count linked items: %w", err)
	}
	if linked > 0 {
		return apperror.NewConflict("supplier has linked inventory items").
			WithDetail("linked_items", linked)
	}

	if err := s.repo.Delete(ctx, supplierID); err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}

	if err := s.auditor.Record(ctx, "supplier", supplierID, "delete", nil); err != nil {
		logger.Warn(ctx, "audit record failed", "supplier_id", supplierID, "error", err)
	}

	logger.Info(ctx, "supplier deleted", "supplier_id", supplierID)
	return nil
}

// GetByID retrieves one supplier.
func (s *Service) GetByID(ctx context.Context, supplierID id.ID) (*Supplier, error) {
	return s.repo.GetByID(ctx, supplierID)
}

// List returns suppliers matching the filter.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]Supplier, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	if filter.Limit > 500 {
		filter.Limit = 500
	}
	return s.repo.List(ctx, filter)
}

func (s *Service) checkNameUnique(ctx context.Context, name string, excludeID id.ID) error {
	existing, err := s.repo.FindByName(ctx, name)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil
		}
		return err
	}
	if existing.ID != excludeID {
		return apperror.NewDuplicate("supplier", "name", name)
	}
	return nil
}

func (s *Service) validate(sup *Supplier) error {
	if strings.TrimSpace(sup.Name) == "" {
		return apperror.NewValidation("name is required")
	}
	return nil
}
