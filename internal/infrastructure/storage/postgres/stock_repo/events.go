// Package stock_repo provides the PostgreSQL implementation of the stock
// event log repository.
package stock_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	"supplypro/internal/domain/stock"
)

const eventsTable = "stock_events"

// EventRepo implements stock.Repository and the analytics EventSource.
type EventRepo struct {
	pool    *pgxpool.Pool
	builder squirrel.StatementBuilderType
}

// NewEventRepo creates a new stock event repository.
func NewEventRepo(pool *pgxpool.Pool) *EventRepo {
	return &EventRepo{
		pool:    pool,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Append inserts a new event. The log is append-only; there is no update.
func (r *EventRepo) Append(ctx context.Context, e *stock.Event) error {
	q := r.builder.Insert(eventsTable).
		Columns(
			"id", "item_id", "supplier_id", "quantity_change",
			"reason", "price_at_change", "created_by", "occurred_at",
		).
		Values(
			e.ID, e.ItemID, e.SupplierID, e.QuantityChange,
			e.Reason, e.PriceAtChange, e.CreatedBy, e.OccurredAt,
		)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

// List returns events matching the filter, newest first.
func (r *EventRepo) List(ctx context.Context, filter stock.EventFilter) ([]stock.Event, error) {
	q := r.builder.Select(
		"e.id", "e.item_id",
		"COALESCE(i.name, '') AS item_name",
		"e.supplier_id", "e.quantity_change", "e.reason",
		"e.price_at_change", "e.created_by", "e.occurred_at",
	).
		From(eventsTable+" e").
		LeftJoin("inventory_items i ON i.id = e.item_id").
		OrderBy("e.occurred_at DESC", "e.id DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))

	if filter.ItemName != "" {
		q = q.Where(squirrel.ILike{"i.name": "%" + filter.ItemName + "%"})
	}
	if filter.SupplierID != "" {
		q = q.Where(squirrel.Eq{"e.supplier_id": filter.SupplierID})
	}
	if filter.CreatedBy != "" {
		q = q.Where(squirrel.Eq{"e.created_by": filter.CreatedBy})
	}
	if filter.From != nil {
		q = q.Where(squirrel.GtOrEq{"e.occurred_at": *filter.From})
	}
	if filter.To != nil {
		q = q.Where(squirrel.LtOrEq{"e.occurred_at": *filter.To})
	}
	if filter.MinChange != nil {
		q = q.Where(squirrel.GtOrEq{"e.quantity_change": *filter.MinChange})
	}
	if filter.MaxChange != nil {
		q = q.Where(squirrel.LtOrEq{"e.quantity_change": *filter.MaxChange})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var events []stock.Event
	if err := pgxscan.Select(ctx, r.pool, &events, sql, args...); err != nil {
		return nil, fmt.Errorf("select events: %w", err)
	}

	return events, nil
}

// StreamEventsUpTo returns all events with occurred_at <= end, optionally
// restricted to one supplier. The ordering is the replay contract: grouped
// by item, ascending in time within each item, insertion order (time-ordered
// UUIDv7 ids) breaking timestamp ties.
func (r *EventRepo) StreamEventsUpTo(ctx context.Context, end time.Time, supplierID string) ([]stock.Event, error) {
	q := r.builder.Select(
		"id", "item_id", "supplier_id", "quantity_change",
		"reason", "price_at_change", "created_by", "occurred_at",
	).
		From(eventsTable).
		Where(squirrel.LtOrEq{"occurred_at": end}).
		OrderBy("item_id", "occurred_at", "id")

	if supplierID != "" {
		q = q.Where(squirrel.Eq{"supplier_id": supplierID})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var events []stock.Event
	if err := pgxscan.Select(ctx, r.pool, &events, sql, args...); err != nil {
		return nil, fmt.Errorf("select events: %w", err)
	}

	return events, nil
}
