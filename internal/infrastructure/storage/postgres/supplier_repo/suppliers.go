// Package supplier_repo provides the PostgreSQL implementation of the
// supplier repository.
package supplier_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	"supplypro/internal/core/apperror"
	"supplypro/internal/core/id"
	"supplypro/internal/domain/supplier"
)

const suppliersTable = "suppliers"

// SupplierRepo implements supplier.Repository.
type SupplierRepo struct {
	pool    *pgxpool.Pool
	builder squirrel.StatementBuilderType
}

// NewSupplierRepo creates a new supplier repository.
func NewSupplierRepo(pool *pgxpool.Pool) *SupplierRepo {
	return &SupplierRepo{
		pool:    pool,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *SupplierRepo) Create(ctx context.Context, s *supplier.Supplier) error {
	q := r.builder.Insert(suppliersTable).
		Columns("id", "name", "contact_name", "phone", "email", "created_by", "created_at").
		Values(s.ID, s.Name, s.ContactName, s.Phone, s.Email, s.CreatedBy, s.CreatedAt)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}

	return nil
}

func (r *SupplierRepo) Update(ctx context.Context, s *supplier.Supplier) error {
	q := r.builder.Update(suppliersTable).
		Set("name", s.Name).
		Set("contact_name", s.ContactName).
		Set("phone", s.Phone).
		Set("email", s.Email).
		Where(squirrel.Eq{"id": s.ID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	tag, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("supplier", s.ID.String())
	}

	return nil
}

func (r *SupplierRepo) Delete(ctx context.Context, supplierID id.ID) error {
	q := r.builder.Delete(suppliersTable).Where(squirrel.Eq{"id": supplierID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tag, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("supplier", supplierID.String())
	}

	return nil
}

func (r *SupplierRepo) GetByID(ctx context.Context, supplierID id.ID) (*supplier.Supplier, error) {
	q := r.builder.Select(supplierColumns()...).
		From(suppliersTable).
		Where(squirrel.Eq{"id": supplierID})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var s supplier.Supplier
	if err := pgxscan.Get(ctx, r.pool, &s, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("supplier", supplierID.String())
		}
		return nil, fmt.Errorf("select supplier: %w", err)
	}

	return &s, nil
}

func (r *SupplierRepo) List(ctx context.Context, filter supplier.ListFilter) ([]supplier.Supplier, error) {
	q := r.builder.Select(supplierColumns()...).
		From(suppliersTable).
		OrderBy("name").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))

	if filter.NameContains != "" {
		q = q.Where(squirrel.ILike{"name": "%" + filter.NameContains + "%"})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var suppliers []supplier.Supplier
	if err := pgxscan.Select(ctx, r.pool, &suppliers, sql, args...); err != nil {
		return nil, fmt.Errorf("select suppliers: %w", err)
	}

	return suppliers, nil
}

func (r *SupplierRepo) FindByName(ctx context.Context, name string) (*supplier.Supplier, error) {
	q := r.builder.Select(supplierColumns()...).
		From(suppliersTable).
		Where("LOWER(name) = LOWER(?)", name).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var s supplier.Supplier
	if err := pgxscan.Get(ctx, r.pool, &s, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("supplier", name)
		}
		return nil, fmt.Errorf("select supplier: %w", err)
	}

	return &s, nil
}

func supplierColumns() []string {
	return []string{"id", "name", "contact_name", "phone", "email", "created_by", "created_at"}
}
