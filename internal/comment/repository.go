package comment

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/itemshare/item-sharing-backend/internal/booking"
)

type Repository interface {
	Create(ctx context.Context, cm *Comment) error

	// HasCompletedApprovedBooking checks whether the user has an approved
	// booking of the item that ended before the given time.
	HasCompletedApprovedBooking(ctx context.Context, userID, itemID string, before time.Time) (bool, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, cm *Comment) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.comments").
		Columns("text", "item_id", "author_id").
		Values(cm.Text, cm.ItemID, cm.AuthorID).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create comment query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&cm.ID, &cm.CreatedAt)
}

func (r *pgxRepository) HasCompletedApprovedBooking(ctx context.Context, userID, itemID string, before time.Time) (bool, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	subQuery := psql.Select("1").
		From("public.bookings").
		Where(squirrel.Eq{"booker_id": userID}).
		Where(squirrel.Eq{"item_id": itemID}).
		Where(squirrel.Lt{"end_time": before}).
		Where(squirrel.Eq{"status": booking.StatusApproved})

	sql, args, err := subQuery.ToSql()
	if err != nil {
		return false, fmt.Errorf("build completed booking query failed: %w", err)
	}

	query := "SELECT EXISTS (" + sql + ")"

	var exists bool
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("check completed booking failed: %w", err)
	}
	return exists, nil
}
