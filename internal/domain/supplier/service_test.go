package supplier

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supplypro/internal/core/apperror"
	"supplypro/internal/core/id"
)

type memSupplierRepo struct {
	suppliers map[id.ID]Supplier
}

func newMemSupplierRepo() *memSupplierRepo {
	return &memSupplierRepo{suppliers: make(map[id.ID]Supplier)}
}

func (m *memSupplierRepo) Create(_ context.Context, s *Supplier) error {
	m.suppliers[s.ID] = *s
	return nil
}

func (m *memSupplierRepo) Update(_ context.Context, s *Supplier) error {
	if _, ok := m.suppliers[s.ID]; !ok {
		return apperror.NewNotFound("supplier", s.ID.String())
	}
	m.suppliers[s.ID] = *s
	return nil
}

func (m *memSupplierRepo) Delete(_ context.Context, supplierID id.ID) error {
	delete(m.suppliers, supplierID)
	return nil
}

func (m *memSupplierRepo) GetByID(_ context.Context, supplierID id.ID) (*Supplier, error) {
	s, ok := m.suppliers[supplierID]
	if !ok {
		return nil, apperror.NewNotFound("supplier", supplierID.String())
	}
	return &s, nil
}

func (m *memSupplierRepo) List(_ context.Context, _ ListFilter) ([]Supplier, error) {
	out := make([]Supplier, 0, len(m.suppliers))
	for _, s := range m.suppliers {
		out = append(out, s)
	}
	return out, nil
}

func (m *memSupplierRepo) FindByName(_ context.Context, name string) (*Supplier, error) {
	for _, s := range m.suppliers {
		if strings.EqualFold(s.Name, name) {
			found := s
			return &found, nil
		}
	}
	return nil, apperror.NewNotFound("supplier", name)
}

type fixedItemCounter struct {
	count int64
}

func (f fixedItemCounter) CountBySupplier(_ context.Context, _ id.ID) (int64, error) {
	return f.count, nil
}

type nopAuditor struct{}

func (nopAuditor) Record(_ context.Context, _ string, _ id.ID, _ string, _ any) error {
	return nil
}

func TestCreate_RejectsDuplicateName(t *testing.T) {
	repo := newMemSupplierRepo()
	svc := NewService(repo, fixedItemCounter{}, nopAuditor{})
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, &Supplier{Name: "Acme Industrial"}))

	// Name uniqueness is case-insensitive.
	err := svc.Create(ctx, &Supplier{Name: "ACME industrial"})
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeDuplicate, appErr.Code)
}

func TestCreate_RequiresName(t *testing.T) {
	svc := NewService(newMemSupplierRepo(), fixedItemCounter{}, nopAuditor{})

	err := svc.Create(context.Background(), &Supplier{Name: "   "})
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestUpdate_AllowsKeepingOwnName(t *testing.T) {
	repo := newMemSupplierRepo()
	svc := NewService(repo, fixedItemCounter{}, nopAuditor{})
	ctx := context.Background()

	sup := &Supplier{Name: "Acme Industrial"}
	require.NoError(t, svc.Create(ctx, sup))

	sup.Phone = "+1-555-0101"
	require.NoError(t, svc.Update(ctx, sup))
}

func TestDelete_BlockedWhileItemsLinked(t *testing.T) {
	repo := newMemSupplierRepo()
	svc := NewService(repo, fixedItemCounter{count: 3}, nopAuditor{})
	ctx := context.Background()

	sup := &Supplier{Name: "Acme Industrial"}
	require.NoError(t, svc.Create(ctx, sup))

	err := svc.Delete(ctx, sup.ID)
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeConflict, appErr.Code)
	assert.Equal(t, int64(3), appErr.Details["linked_items"])
}

func TestDelete_Unlinked(t *testing.T) {
	repo := newMemSupplierRepo()
	svc := NewService(repo, fixedItemCounter{count: 0}, nopAuditor{})
	ctx := context.Background()

	sup := &Supplier{Name: "Acme Industrial"}
	require.NoError(t, svc.Create(ctx, sup))

	require.NoError(t, svc.Delete(ctx, sup.ID))
	assert.Empty(t, repo.suppliers)
}
