package pgxstore

import (
	"context"

	"gearshare/internal/domain"

	"github.com/jackc/pgx/v5"
)

const reportColumns = `report_id, reporter_username, report_type, subject, description,
equipment_id, reservation_id, status, priority, created_at, updated_at`

type reportRepo struct {
	q querier
}

func scanReport(row pgx.Row) (*domain.Report, error) {
	var rp domain.Report
	err := row.Scan(&rp.ID, &rp.ReporterUsername, &rp.ReportType, &rp.Subject, &rp.Description,
		&rp.EquipmentID, &rp.ReservationID, &rp.Status, &rp.Priority, &rp.CreatedAt, &rp.UpdatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return &rp, nil
}

func (r *reportRepo) Create(ctx context.Context, rp *domain.Report) error {
	row := r.q.QueryRow(ctx, `
INSERT INTO reports (reporter_username, report_type, subject, description,
	equipment_id, reservation_id, status, priority, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
RETURNING report_id, created_at, updated_at`,
		rp.ReporterUsername, rp.ReportType, rp.Subject, rp.Description,
		rp.EquipmentID, rp.ReservationID, rp.Status, rp.Priority)
	return translate(row.Scan(&rp.ID, &rp.CreatedAt, &rp.UpdatedAt))
}

func (r *reportRepo) GetByID(ctx context.Context, id int64) (*domain.Report, error) {
	return scanReport(r.q.QueryRow(ctx, `SELECT `+reportColumns+` FROM reports WHERE report_id = $1`, id))
}

func (r *reportRepo) List(ctx context.Context, status string) ([]domain.Report, error) {
	sql := `SELECT ` + reportColumns + ` FROM reports`
	var args []any
	if status != "" {
		sql += ` WHERE status = $1`
		args = append(args, status)
	}
	sql += ` ORDER BY report_id`

	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	out := make([]domain.Report, 0)
	for rows.Next() {
		rp, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rp)
	}
	return out, translate(rows.Err())
}

func (r *reportRepo) Update(ctx context.Context, rp *domain.Report) error {
	err := r.q.QueryRow(ctx, `
UPDATE reports SET status = $2, priority = $3, updated_at = NOW()
WHERE report_id = $1
RETURNING updated_at`,
		rp.ID, rp.Status, rp.Priority).Scan(&rp.UpdatedAt)
	return translate(err)
}

func (r *reportRepo) Delete(ctx context.Context, id int64) error {
	return affected(r.q.Exec(ctx, `DELETE FROM reports WHERE report_id = $1`, id))
}

func (r *reportRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM reports`).Scan(&count)
	return count, translate(err)
}
