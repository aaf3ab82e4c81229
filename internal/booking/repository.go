package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/itemshare/item-sharing-backend/internal/pkg/request"
)

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	ListByBooker(ctx context.Context, bookerID string, bucket Bucket, window request.PageWindow, now time.Time) ([]*Booking, error)
	ListByOwner(ctx context.Context, ownerID string, bucket Bucket, window request.PageWindow, now time.Time) ([]*Booking, error)

	// UpdateStatus moves the booking to the given status. The update is
	// conditioned on the booking not being APPROVED, so two concurrent
	// decisions cannot both take effect.
	UpdateStatus(ctx context.Context, id string, status Status) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns("start_time", "end_time", "status", "item_id", "booker_id").
		Values(b.Start, b.End, b.Status, b.ItemID, b.BookerID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

// hydratedSelect is the base query joining the booker and item snapshots.
func hydratedSelect() squirrel.SelectBuilder {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	return psql.Select(
		"b.id", "b.start_time", "b.end_time", "b.status",
		"b.item_id", "i.name", "i.owner_id", "i.available",
		"b.booker_id", "u.name",
		"b.created_at", "b.updated_at",
	).
		From("public.bookings b").
		Join("public.items i ON b.item_id = i.id").
		Join("public.users u ON b.booker_id = u.id")
}

func scanBooking(row pgx.Row) (*Booking, error) {
	var b Booking
	err := row.Scan(
		&b.ID, &b.Start, &b.End, &b.Status,
		&b.ItemID, &b.ItemName, &b.ItemOwnerID, &b.ItemAvailable,
		&b.BookerID, &b.BookerName,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	query, args, err := hydratedSelect().
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	b, err := scanBooking(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

// bucketConditions translates a bucket into its query-time predicates.
// The temporal buckets compare against the now the caller sampled at the
// start of the operation.
func bucketConditions(bucket Bucket, now time.Time) []squirrel.Sqlizer {
	switch bucket {
	case BucketCurrent:
		return []squirrel.Sqlizer{
			squirrel.Lt{"b.start_time": now},
			squirrel.Gt{"b.end_time": now},
		}
	case BucketFuture:
		return []squirrel.Sqlizer{squirrel.Gt{"b.start_time": now}}
	case BucketPast:
		return []squirrel.Sqlizer{squirrel.Lt{"b.end_time": now}}
	case BucketWaiting:
		return []squirrel.Sqlizer{squirrel.Eq{"b.status": StatusWaiting}}
	case BucketRejected:
		return []squirrel.Sqlizer{squirrel.Eq{"b.status": StatusRejected}}
	case BucketApproved:
		return []squirrel.Sqlizer{squirrel.Eq{"b.status": StatusApproved}}
	default: // BucketAll
		return nil
	}
}

func (r *pgxRepository) ListByBooker(ctx context.Context, bookerID string, bucket Bucket, window request.PageWindow, now time.Time) ([]*Booking, error) {
	return r.list(ctx, squirrel.Eq{"b.booker_id": bookerID}, bucket, window, now)
}

func (r *pgxRepository) ListByOwner(ctx context.Context, ownerID string, bucket Bucket, window request.PageWindow, now time.Time) ([]*Booking, error) {
	return r.list(ctx, squirrel.Eq{"i.owner_id": ownerID}, bucket, window, now)
}

func (r *pgxRepository) list(ctx context.Context, scope squirrel.Sqlizer, bucket Bucket, window request.PageWindow, now time.Time) ([]*Booking, error) {
	query := hydratedSelect().Where(scope)
	for _, cond := range bucketConditions(bucket, now) {
		query = query.Where(cond)
	}

	// start descending; id ascending keeps ties deterministic.
	sql, args, err := query.
		OrderBy("b.start_time DESC", "b.id ASC").
		Limit(window.Limit()).
		Offset(window.Offset()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, b)
	}

	return bookings, nil
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.NotEq{"status": StatusApproved}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking status query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update booking status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		// The booking existed when the caller read it, so the only way to
		// match zero rows is a concurrent approval.
		return ErrAlreadyApproved
	}
	return nil
}
