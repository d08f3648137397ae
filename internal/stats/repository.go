package stats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type Repository interface {
	Dashboard(ctx context.Context, now time.Time) (*Dashboard, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Dashboard(ctx context.Context, now time.Time) (*Dashboard, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	nextMonth := monthStart.AddDate(0, 1, 0)

	const countsQuery = `
		SELECT
			count(*) FILTER (WHERE start_date = $1),
			count(*) FILTER (WHERE start_date >= $2 AND start_date < $3),
			count(*),
			COALESCE(sum(total_price) FILTER (WHERE status = 'confirmed' AND start_date >= $2 AND start_date < $3), 0),
			count(DISTINCT customer_id)
		FROM public.bookings
		WHERE status <> 'cancelled'
	`

	var d Dashboard
	var revenue decimal.Decimal
	if err := r.pool.QueryRow(ctx, countsQuery, today, monthStart, nextMonth).Scan(
		&d.BookingsToday,
		&d.BookingsThisMonth,
		&d.BookingsTotal,
		&revenue,
		&d.UniqueCustomers,
	); err != nil {
		return nil, fmt.Errorf("dashboard counts query failed: %w", err)
	}
	d.RevenueThisMonth = revenue

	const popularQuery = `
		SELECT bi.item_id, i.name, sum(bi.quantity)::int AS total_quantity
		FROM public.booking_items bi
		JOIN public.bookings b ON bi.booking_id = b.id
		JOIN public.items i ON bi.item_id = i.id
		WHERE b.status <> 'cancelled'
		GROUP BY bi.item_id, i.name
		ORDER BY total_quantity DESC, i.name
		LIMIT 1
	`

	var popular PopularItem
	err := r.pool.QueryRow(ctx, popularQuery).Scan(&popular.ItemID, &popular.ItemName, &popular.Quantity)
	switch {
	case err == nil:
		d.PopularItem = &popular
	case errors.Is(err, pgx.ErrNoRows):
		// No bookings yet.
	default:
		return nil, fmt.Errorf("dashboard popular item query failed: %w", err)
	}

	return &d, nil
}
