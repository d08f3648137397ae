package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Submission carries everything one customer booking writes: the customer
// upsert, the booking row and its lines. The repository persists it in a
// single transaction.
type Submission struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   *string
	CustomerAddress *string
	StartDate       time.Time
	EndDate         time.Time
	StartTime       *string
	EndTime         *string
	TotalPrice      decimal.Decimal
	Lines           []Line
}

type Repository interface {
	// Submit runs the whole booking write transactionally: it locks the
	// selected item rows, re-checks date-range conflicts per item, upserts
	// the customer by email and inserts the booking with its lines. A
	// *ConflictError is returned when an item is already booked in the
	// proposed range; nothing is written in that case.
	Submit(ctx context.Context, sub *Submission) (*Booking, error)

	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)

	// SetStatus updates the status field and keeps the customer's
	// denormalized total_spent in step with confirmed totals.
	SetStatus(ctx context.Context, id string, status Status) error

	Delete(ctx context.Context, id string) error

	// ListOverlappingRange returns non-cancelled bookings whose date range
	// intersects [from, to], optionally restricted to bookings referencing
	// the given item.
	ListOverlappingRange(ctx context.Context, from, to time.Time, itemID string) ([]*Booking, error)

	// ListStockLines returns the booking lines feeding the day-level stock
	// calculator for one item around the given date.
	ListStockLines(ctx context.Context, itemID string, date time.Time) ([]StockLine, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Submit(ctx context.Context, sub *Submission) (*Booking, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin submit tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	// Lock the selected item rows so concurrent submissions for the same
	// items serialize on the conflict check below.
	itemIDs := make([]string, len(sub.Lines))
	for i, l := range sub.Lines {
		itemIDs[i] = l.ItemID
	}
	rows, err := tx.Query(ctx, `SELECT id FROM public.items WHERE id = ANY($1::uuid[]) FOR UPDATE`, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("lock items failed: %w", err)
	}
	rows.Close()

	for _, line := range sub.Lines {
		conflict, err := r.hasConflict(ctx, tx, line.ItemID, sub.StartDate, sub.EndDate)
		if err != nil {
			return nil, err
		}
		if conflict {
			return nil, &ConflictError{ItemName: line.ItemName}
		}
	}

	// Create-or-reuse the customer keyed by email; contact fields are
	// overwritten, not merged.
	const upsertCustomer = `
		INSERT INTO public.customers (name, email, phone, address)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE
		SET name = EXCLUDED.name,
		    phone = EXCLUDED.phone,
		    address = EXCLUDED.address,
		    updated_at = now()
		RETURNING id
	`
	var customerID string
	if err := tx.QueryRow(ctx, upsertCustomer,
		sub.CustomerName, sub.CustomerEmail, sub.CustomerPhone, sub.CustomerAddress,
	).Scan(&customerID); err != nil {
		return nil, fmt.Errorf("upsert customer failed: %w", err)
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns("customer_id", "start_date", "end_date", "start_time", "end_time", "total_price", "status").
		Values(customerID, sub.StartDate, sub.EndDate, sub.StartTime, sub.EndTime, sub.TotalPrice, StatusPending).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create booking query failed: %w", err)
	}

	b := &Booking{
		CustomerID:    customerID,
		CustomerName:  sub.CustomerName,
		CustomerEmail: sub.CustomerEmail,
		StartDate:     sub.StartDate,
		EndDate:       sub.EndDate,
		StartTime:     sub.StartTime,
		EndTime:       sub.EndTime,
		TotalPrice:    sub.TotalPrice,
		Status:        StatusPending,
		Lines:         make([]Line, len(sub.Lines)),
	}
	if err := tx.QueryRow(ctx, query, args...).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, fmt.Errorf("create booking failed: %w", err)
	}

	lineInsert := psql.Insert("public.booking_items").
		Columns("booking_id", "item_id", "quantity")
	for _, line := range sub.Lines {
		lineInsert = lineInsert.Values(b.ID, line.ItemID, line.Quantity)
	}
	query, args, err = lineInsert.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create booking lines query failed: %w", err)
	}
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("create booking lines failed: %w", err)
	}
	copy(b.Lines, sub.Lines)

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit submit tx failed: %w", err)
	}
	return b, nil
}

// hasConflict applies the inclusive overlap test: a proposed [start, end]
// conflicts with an existing range when start <= existing_end AND
// end >= existing_start. Ranges that merely touch conflict.
func (r *pgxRepository) hasConflict(ctx context.Context, tx pgx.Tx, itemID string, start, end time.Time) (bool, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	subQuery := psql.Select("1").
		From("public.bookings b").
		Join("public.booking_items bi ON bi.booking_id = b.id").
		Where(squirrel.Eq{"bi.item_id": itemID}).
		Where(squirrel.NotEq{"b.status": StatusCancelled}).
		Where(squirrel.LtOrEq{"b.start_date": end}).
		Where(squirrel.GtOrEq{"b.end_date": start})

	sql, args, err := subQuery.ToSql()
	if err != nil {
		return false, fmt.Errorf("build conflict query failed: %w", err)
	}

	var exists bool
	if err := tx.QueryRow(ctx, "SELECT EXISTS ("+sql+")", args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("check conflict failed: %w", err)
	}
	return exists, nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"b.id", "b.customer_id", "c.name", "c.email",
		"b.start_date", "b.end_date", "b.start_time", "b.end_time",
		"b.total_price", "b.status", "b.created_at", "b.updated_at",
	).
		From("public.bookings b").
		Join("public.customers c ON b.customer_id = c.id").
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	var b Booking
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&b.ID, &b.CustomerID, &b.CustomerName, &b.CustomerEmail,
		&b.StartDate, &b.EndDate, &b.StartTime, &b.EndTime,
		&b.TotalPrice, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}

	lines, err := r.linesFor(ctx, []string{b.ID})
	if err != nil {
		return nil, err
	}
	b.Lines = lines[b.ID]

	return &b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"b.id", "b.customer_id", "c.name", "c.email",
		"b.start_date", "b.end_date", "b.start_time", "b.end_time",
		"b.total_price", "b.status", "b.created_at", "b.updated_at",
		"count(*) OVER() as total_count",
	).
		From("public.bookings b").
		Join("public.customers c ON b.customer_id = c.id")

	if filter.CustomerID != "" {
		query = query.Where(squirrel.Eq{"b.customer_id": filter.CustomerID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"b.status": filter.Status})
	}
	if filter.ItemID != "" {
		query = query.Where(squirrel.Expr(
			"EXISTS (SELECT 1 FROM public.booking_items bi WHERE bi.booking_id = b.id AND bi.item_id = ?)",
			filter.ItemID,
		))
	}
	// Date range filtering (intersection logic)
	if filter.From != nil {
		query = query.Where(squirrel.GtOrEq{"b.end_date": filter.From})
	}
	if filter.To != nil {
		query = query.Where(squirrel.LtOrEq{"b.start_date": filter.To})
	}

	// Sorting
	orderBy := "b.start_date"
	if filter.SortBy != "" {
		orderBy = "b." + filter.SortBy
	}

	orderDir := "DESC"
	if filter.SortOrder != "" {
		orderDir = filter.SortOrder
	}

	query = query.OrderBy(orderBy + " " + orderDir)

	// Pagination
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	var ids []string
	var total int

	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.CustomerID, &b.CustomerName, &b.CustomerEmail,
			&b.StartDate, &b.EndDate, &b.StartTime, &b.EndTime,
			&b.TotalPrice, &b.Status, &b.CreatedAt, &b.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
		ids = append(ids, b.ID)
	}
	rows.Close()

	if len(ids) > 0 {
		lines, err := r.linesFor(ctx, ids)
		if err != nil {
			return nil, 0, err
		}
		for _, b := range bookings {
			b.Lines = lines[b.ID]
		}
	}

	return bookings, total, nil
}

// linesFor loads the item lines for a set of bookings in one query.
func (r *pgxRepository) linesFor(ctx context.Context, bookingIDs []string) (map[string][]Line, error) {
	const query = `
		SELECT bi.booking_id, bi.id, bi.item_id, i.name, bi.quantity
		FROM public.booking_items bi
		JOIN public.items i ON bi.item_id = i.id
		WHERE bi.booking_id = ANY($1::uuid[])
		ORDER BY i.name
	`
	rows, err := r.pool.Query(ctx, query, bookingIDs)
	if err != nil {
		return nil, fmt.Errorf("list booking lines failed: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]Line)
	for rows.Next() {
		var bookingID string
		var l Line
		if err := rows.Scan(&bookingID, &l.ID, &l.ItemID, &l.ItemName, &l.Quantity); err != nil {
			return nil, fmt.Errorf("scan booking line failed: %w", err)
		}
		out[bookingID] = append(out[bookingID], l)
	}
	return out, nil
}

func (r *pgxRepository) SetStatus(ctx context.Context, id string, status Status) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin status tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	var current Status
	var customerID string
	var total decimal.Decimal
	const lockQuery = `
		SELECT status, customer_id, total_price
		FROM public.bookings
		WHERE id = $1
		FOR UPDATE
	`
	if err := tx.QueryRow(ctx, lockQuery, id).Scan(&current, &customerID, &total); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("lock booking failed: %w", err)
	}

	if current == status {
		return tx.Commit(ctx)
	}

	if _, err := tx.Exec(ctx,
		`UPDATE public.bookings SET status = $1, updated_at = now() WHERE id = $2`,
		status, id,
	); err != nil {
		return fmt.Errorf("update booking status failed: %w", err)
	}

	// total_spent tracks confirmed revenue per customer.
	var delta decimal.Decimal
	switch {
	case current != StatusConfirmed && status == StatusConfirmed:
		delta = total
	case current == StatusConfirmed && status != StatusConfirmed:
		delta = total.Neg()
	}
	if !delta.IsZero() {
		if _, err := tx.Exec(ctx,
			`UPDATE public.customers SET total_spent = total_spent + $1, updated_at = now() WHERE id = $2`,
			delta, customerID,
		); err != nil {
			return fmt.Errorf("update customer total_spent failed: %w", err)
		}
	}

	return tx.Commit(ctx)
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin delete tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	var status Status
	var customerID string
	var total decimal.Decimal
	const lockQuery = `
		SELECT status, customer_id, total_price
		FROM public.bookings
		WHERE id = $1
		FOR UPDATE
	`
	if err := tx.QueryRow(ctx, lockQuery, id).Scan(&status, &customerID, &total); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("lock booking failed: %w", err)
	}

	// Lines go with the booking via ON DELETE CASCADE.
	if _, err := tx.Exec(ctx, `DELETE FROM public.bookings WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete booking failed: %w", err)
	}

	if status == StatusConfirmed {
		if _, err := tx.Exec(ctx,
			`UPDATE public.customers SET total_spent = total_spent - $1, updated_at = now() WHERE id = $2`,
			total, customerID,
		); err != nil {
			return fmt.Errorf("update customer total_spent failed: %w", err)
		}
	}

	return tx.Commit(ctx)
}

func (r *pgxRepository) ListOverlappingRange(ctx context.Context, from, to time.Time, itemID string) ([]*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"b.id", "b.customer_id", "b.start_date", "b.end_date",
		"b.start_time", "b.end_time", "b.total_price", "b.status",
		"b.created_at", "b.updated_at",
	).
		From("public.bookings b").
		Where(squirrel.NotEq{"b.status": StatusCancelled}).
		Where(squirrel.LtOrEq{"b.start_date": to}).
		Where(squirrel.GtOrEq{"b.end_date": from})

	if itemID != "" {
		query = query.Where(squirrel.Expr(
			"EXISTS (SELECT 1 FROM public.booking_items bi WHERE bi.booking_id = b.id AND bi.item_id = ?)",
			itemID,
		))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build availability query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings for availability failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.CustomerID, &b.StartDate, &b.EndDate,
			&b.StartTime, &b.EndTime, &b.TotalPrice, &b.Status,
			&b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan availability booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}
	return bookings, nil
}

func (r *pgxRepository) ListStockLines(ctx context.Context, itemID string, date time.Time) ([]StockLine, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("bi.quantity", "b.start_date", "b.end_date", "b.status").
		From("public.booking_items bi").
		Join("public.bookings b ON bi.booking_id = b.id").
		Where(squirrel.Eq{"bi.item_id": itemID}).
		Where(squirrel.NotEq{"b.status": StatusCancelled}).
		Where(squirrel.LtOrEq{"b.start_date": date}).
		Where(squirrel.GtOrEq{"b.end_date": date}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build stock lines query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock lines failed: %w", err)
	}
	defer rows.Close()

	var lines []StockLine
	for rows.Next() {
		var l StockLine
		if err := rows.Scan(&l.Quantity, &l.StartDate, &l.EndDate, &l.Status); err != nil {
			return nil, fmt.Errorf("scan stock line failed: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, nil
}
