// Package item_repo provides the PostgreSQL implementation of the inventory
// item repository.
package item_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	"supplypro/internal/core/apperror"
	"supplypro/internal/core/id"
	"supplypro/internal/core/types"
	"supplypro/internal/domain/inventory"
)

const itemsTable = "inventory_items"

// ItemRepo implements inventory.Repository.
type ItemRepo struct {
	pool    *pgxpool.Pool
	builder squirrel.StatementBuilderType
}

// NewItemRepo creates a new inventory item repository.
func NewItemRepo(pool *pgxpool.Pool) *ItemRepo {
	return &ItemRepo{
		pool:    pool,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *ItemRepo) Create(ctx context.Context, item *inventory.Item) error {
	q := r.builder.Insert(itemsTable).
		Columns(
			"id", "name", "quantity", "price", "supplier_id",
			"minimum_quantity", "created_by", "created_at", "updated_at",
		).
		Values(
			item.ID, item.Name, item.Quantity, item.Price, item.SupplierID,
			item.MinimumQuantity, item.CreatedBy, item.CreatedAt, item.UpdatedAt,
		)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert item: %w", err)
	}

	return nil
}

func (r *ItemRepo) Update(ctx context.Context, item *inventory.Item) error {
	item.UpdatedAt = time.Now().UTC()

	q := r.builder.Update(itemsTable).
		Set("name", item.Name).
		Set("quantity", item.Quantity).
		Set("price", item.Price).
		Set("supplier_id", item.SupplierID).
		Set("minimum_quantity", item.MinimumQuantity).
		Set("updated_at", item.UpdatedAt).
		Where(squirrel.Eq{"id": item.ID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	tag, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("item", item.ID.String())
	}

	return nil
}

func (r *ItemRepo) Delete(ctx context.Context, itemID id.ID) error {
	q := r.builder.Delete(itemsTable).Where(squirrel.Eq{"id": itemID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tag, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("item", itemID.String())
	}

	return nil
}

func (r *ItemRepo) GetByID(ctx context.Context, itemID id.ID) (*inventory.Item, error) {
	q := r.builder.Select(itemColumns()...).
		From(itemsTable).
		Where(squirrel.Eq{"id": itemID})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var item inventory.Item
	if err := pgxscan.Get(ctx, r.pool, &item, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("item", itemID.String())
		}
		return nil, fmt.Errorf("select item: %w", err)
	}

	return &item, nil
}

func (r *ItemRepo) List(ctx context.Context, filter inventory.ListFilter) ([]inventory.Item, error) {
	q := r.applyFilter(r.builder.Select(itemColumns()...).From(itemsTable), filter).
		OrderBy("name").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var items []inventory.Item
	if err := pgxscan.Select(ctx, r.pool, &items, sql, args...); err != nil {
		return nil, fmt.Errorf("select items: %w", err)
	}

	return items, nil
}

func (r *ItemRepo) Count(ctx context.Context, filter inventory.ListFilter) (int64, error) {
	q := r.applyFilter(r.builder.Select("COUNT(*)").From(itemsTable), filter)

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}

	var count int64
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}

	return count, nil
}

func (r *ItemRepo) ExistsByNameAndPrice(ctx context.Context, name string, price types.Money, excludeID id.ID) (bool, error) {
	q := r.builder.Select("1").
		From(itemsTable).
		Where(squirrel.Eq{"name": name}).
		Where(squirrel.Eq{"price": price}).
		Limit(1)

	if !id.IsNil(excludeID) {
		q = q.Where(squirrel.NotEq{"id": excludeID})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return false, fmt.Errorf("build select: %w", err)
	}

	var one int
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&one); err != nil {
		if pgxscan.NotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("check duplicate: %w", err)
	}

	return true, nil
}

func (r *ItemRepo) CountBySupplier(ctx context.Context, supplierID id.ID) (int64, error) {
	q := r.builder.Select("COUNT(*)").
		From(itemsTable).
		Where(squirrel.Eq{"supplier_id": supplierID})

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}

	var count int64
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count items by supplier: %w", err)
	}

	return count, nil
}

func (r *ItemRepo) applyFilter(q squirrel.SelectBuilder, filter inventory.ListFilter) squirrel.SelectBuilder {
	if filter.NameContains != "" {
		q = q.Where(squirrel.ILike{"name": "%" + filter.NameContains + "%"})
	}
	if !id.IsNil(filter.SupplierID) {
		q = q.Where(squirrel.Eq{"supplier_id": filter.SupplierID})
	}
	return q
}

func itemColumns() []string {
	return []string{
		"id", "name", "quantity", "price", "supplier_id",
		"minimum_quantity", "created_by", "created_at", "updated_at",
	}
}
