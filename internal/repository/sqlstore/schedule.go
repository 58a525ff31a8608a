package sqlstore

import (
	"context"
	"database/sql"

	"rental-backend/internal/domain"
	"rental-backend/internal/repository"
)

type scheduleRepository struct {
	db *sql.DB
}

func NewScheduleRepository(db *sql.DB) repository.ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) ListBoatTimes(ctx context.Context, activeOnly bool) ([]domain.BoatTime, error) {
	query := `SELECT id, time, type, COALESCE(service_type, 'gewoon'), active FROM boat_times`
	if activeOnly {
		query += ` WHERE active = TRUE`
	}
	rows, err := r.db.QueryContext(ctx, query+` ORDER BY type ASC, time ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.BoatTime
	for rows.Next() {
		var (
			bt domain.BoatTime
			at clock
		)
		if err := rows.Scan(&bt.ID, &at, &bt.Type, &bt.ServiceType, &bt.Active); err != nil {
			return nil, err
		}
		bt.Time = string(at)
		out = append(out, bt)
	}
	return out, rows.Err()
}

func (r *scheduleRepository) ListBaggageTimes(ctx context.Context, activeOnly bool) ([]domain.BaggageTime, error) {
	query := `SELECT id, time, type, active FROM baggage_times`
	if activeOnly {
		query += ` WHERE active = TRUE`
	}
	rows, err := r.db.QueryContext(ctx, query+` ORDER BY time ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.BaggageTime
	for rows.Next() {
		var (
			bt domain.BaggageTime
			at clock
		)
		if err := rows.Scan(&bt.ID, &at, &bt.Type, &bt.Active); err != nil {
			return nil, err
		}
		bt.Time = string(at)
		out = append(out, bt)
	}
	return out, rows.Err()
}
