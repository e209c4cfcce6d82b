package pgxstore

import (
	"context"
	"fmt"
	"strings"

	"gearshare/internal/domain"
	"gearshare/internal/repository"

	"github.com/jackc/pgx/v5"
)

const reservationColumns = `reservation_id, equipment_id, owner_username, reserver_username, status,
start_date, end_date, per_day_price, total_price, review_id, created_at, updated_at`

type reservationRepo struct {
	q querier
}

func scanReservation(row pgx.Row) (*domain.Reservation, error) {
	var r domain.Reservation
	err := row.Scan(&r.ID, &r.EquipmentID, &r.OwnerUsername, &r.ReserverUsername, &r.Status,
		&r.StartDate, &r.EndDate, &r.PerDayPrice, &r.TotalPrice, &r.ReviewID, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return &r, nil
}

func (r *reservationRepo) Create(ctx context.Context, res *domain.Reservation) error {
	row := r.q.QueryRow(ctx, `
INSERT INTO reservations (equipment_id, owner_username, reserver_username, status,
	start_date, end_date, per_day_price, total_price, review_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
RETURNING reservation_id, created_at, updated_at`,
		res.EquipmentID, res.OwnerUsername, res.ReserverUsername, res.Status,
		res.StartDate, res.EndDate, res.PerDayPrice, res.TotalPrice, res.ReviewID)
	return translate(row.Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt))
}

func (r *reservationRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	return scanReservation(r.q.QueryRow(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE reservation_id = $1`, id))
}

func (r *reservationRepo) List(ctx context.Context, f repository.ReservationFilter) ([]domain.Reservation, error) {
	var (
		where []string
		args  []any
	)
	if f.Owner != "" {
		args = append(args, f.Owner)
		where = append(where, fmt.Sprintf("owner_username = $%d", len(args)))
	}
	if f.Reserver != "" {
		args = append(args, f.Reserver)
		where = append(where, fmt.Sprintf("reserver_username = $%d", len(args)))
	}
	if len(f.Statuses) > 0 {
		args = append(args, f.Statuses)
		where = append(where, fmt.Sprintf("status = ANY($%d)", len(args)))
	}

	sql := `SELECT ` + reservationColumns + ` FROM reservations`
	if len(where) > 0 {
		sql += ` WHERE ` + strings.Join(where, " AND ")
	}
	sql += ` ORDER BY reservation_id`

	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	out := make([]domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *res)
	}
	return out, translate(rows.Err())
}

func (r *reservationRepo) Update(ctx context.Context, res *domain.Reservation) error {
	err := r.q.QueryRow(ctx, `
UPDATE reservations SET status = $2, review_id = $3, updated_at = NOW()
WHERE reservation_id = $1
RETURNING updated_at`,
		res.ID, res.Status, res.ReviewID).Scan(&res.UpdatedAt)
	return translate(err)
}

func (r *reservationRepo) Delete(ctx context.Context, id int64) error {
	return affected(r.q.Exec(ctx, `DELETE FROM reservations WHERE reservation_id = $1`, id))
}
