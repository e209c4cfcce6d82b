package pgxstore

import (
	"context"
	"fmt"
	"strings"

	"gearshare/internal/domain"
	"gearshare/internal/repository"

	"github.com/jackc/pgx/v5"
)

const reviewColumns = `review_id, reservation_id, equipment_id, reviewer_username, owner_username,
rating, comment, created_at, updated_at`

type reviewRepo struct {
	q querier
}

func scanReview(row pgx.Row) (*domain.Review, error) {
	var rv domain.Review
	err := row.Scan(&rv.ID, &rv.ReservationID, &rv.EquipmentID, &rv.ReviewerUsername,
		&rv.OwnerUsername, &rv.Rating, &rv.Comment, &rv.CreatedAt, &rv.UpdatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return &rv, nil
}

func (r *reviewRepo) Create(ctx context.Context, rv *domain.Review) error {
	row := r.q.QueryRow(ctx, `
INSERT INTO reviews (reservation_id, equipment_id, reviewer_username, owner_username,
	rating, comment, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
RETURNING review_id, created_at, updated_at`,
		rv.ReservationID, rv.EquipmentID, rv.ReviewerUsername, rv.OwnerUsername, rv.Rating, rv.Comment)
	return translate(row.Scan(&rv.ID, &rv.CreatedAt, &rv.UpdatedAt))
}

func (r *reviewRepo) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	return scanReview(r.q.QueryRow(ctx, `SELECT `+reviewColumns+` FROM reviews WHERE review_id = $1`, id))
}

func (r *reviewRepo) GetByReservation(ctx context.Context, reservationID int64) (*domain.Review, error) {
	return scanReview(r.q.QueryRow(ctx,
		`SELECT `+reviewColumns+` FROM reviews WHERE reservation_id = $1`, reservationID))
}

func (r *reviewRepo) List(ctx context.Context, f repository.ReviewFilter) ([]domain.Review, error) {
	var (
		where []string
		args  []any
	)
	if f.EquipmentID > 0 {
		args = append(args, f.EquipmentID)
		where = append(where, fmt.Sprintf("equipment_id = $%d", len(args)))
	}
	if f.Owner != "" {
		args = append(args, f.Owner)
		where = append(where, fmt.Sprintf("owner_username = $%d", len(args)))
	}

	sql := `SELECT ` + reviewColumns + ` FROM reviews`
	if len(where) > 0 {
		sql += ` WHERE ` + strings.Join(where, " AND ")
	}
	sql += ` ORDER BY created_at DESC, review_id DESC`

	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	out := make([]domain.Review, 0)
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rv)
	}
	return out, translate(rows.Err())
}

func (r *reviewRepo) RatingsForEquipment(ctx context.Context, equipmentID int64) ([]int, error) {
	rows, err := r.q.Query(ctx, `SELECT rating FROM reviews WHERE equipment_id = $1`, equipmentID)
	if err != nil {
		return nil, translate(err)
	}
	ratings, err := pgx.CollectRows(rows, pgx.RowTo[int])
	return ratings, translate(err)
}

func (r *reviewRepo) Update(ctx context.Context, rv *domain.Review) error {
	err := r.q.QueryRow(ctx, `
UPDATE reviews SET rating = $2, comment = $3, updated_at = NOW()
WHERE review_id = $1
RETURNING updated_at`,
		rv.ID, rv.Rating, rv.Comment).Scan(&rv.UpdatedAt)
	return translate(err)
}

func (r *reviewRepo) Delete(ctx context.Context, id int64) error {
	return affected(r.q.Exec(ctx, `DELETE FROM reviews WHERE review_id = $1`, id))
}
