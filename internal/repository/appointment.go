package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/migueltomazini/barbershop-scheduler-sub001/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type AppointmentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAppointmentRepo(db *dbpg.DB) *AppointmentRepository {
	return &AppointmentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *AppointmentRepository) Create(ctx context.Context, a *domain.Appointment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	taken, err := slotTaken(ctx, tx, a.Date, a.Slot, "")
	if err != nil {
		return err
	}
	if taken {
		return domain.ErrSlotTaken
	}

	query := `INSERT INTO appointments (id, user_id, service_id, appointment_date, slot, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = tx.ExecContext(
		ctx, query, a.ID, a.UserID, a.ServiceID,
		a.Date, a.Slot, a.Status, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrSlotTaken
		}
		return fmt.Errorf("insert appointment: %w", err)
	}

	return tx.Commit()
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	query := `SELECT id, user_id, service_id, appointment_date, slot, status, created_at, updated_at
			  FROM appointments
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get appointment: %w", err)
	}

	var a domain.Appointment
	if err = row.Scan(
		&a.ID, &a.UserID, &a.ServiceID, &a.Date,
		&a.Slot, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("scan appointment: %w", err)
	}

	return &a, nil
}

// UpdateSlot moves a scheduled appointment to a new date and slot. The
// collision check excludes the appointment being moved.
func (r *AppointmentRepository) UpdateSlot(ctx context.Context, id string, date time.Time, slot string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	taken, err := slotTaken(ctx, tx, date, slot, id)
	if err != nil {
		return err
	}
	if taken {
		return domain.ErrSlotTaken
	}

	query := `UPDATE appointments
			  SET appointment_date = $2, slot = $3, updated_at = now()
			  WHERE id = $1 AND status = $4`
	res, err := tx.ExecContext(ctx, query, id, date, slot, domain.AppointmentStatusScheduled)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrSlotTaken
		}
		return fmt.Errorf("update appointment slot: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("appointment rows affected: %w", err)
	}
	if rows == 0 {
		var status string
		checkQuery := `SELECT status FROM appointments WHERE id = $1`
		if scanErr := tx.QueryRowContext(ctx, checkQuery, id).Scan(&status); scanErr != nil {
			return domain.ErrAppointmentNotFound
		}
		return domain.ErrNotScheduled
	}

	return tx.Commit()
}

// UpdateStatus transitions a scheduled appointment to the given status. The
// write is conditional so a concurrent transition (the completion sweep, a
// racing cancel) cannot be overwritten; a row already holding the target
// status is left as is.
func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error {
	query := `UPDATE appointments
			  SET status = $2, updated_at = now()
			  WHERE id = $1 AND status = $3`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status, domain.AppointmentStatusScheduled)
	if err != nil {
		return fmt.Errorf("update appointment status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("appointment rows affected: %w", err)
	}
	if rows == 0 {
		var current domain.AppointmentStatus
		checkQuery := `SELECT status FROM appointments WHERE id = $1`
		row, rowErr := r.db.QueryRowWithRetry(ctx, r.strategy, checkQuery, id)
		if rowErr != nil {
			return fmt.Errorf("check appointment status: %w", rowErr)
		}
		if scanErr := row.Scan(&current); scanErr != nil {
			return domain.ErrAppointmentNotFound
		}
		if current == status {
			return nil
		}
		return domain.ErrNotScheduled
	}

	return nil
}

func (r *AppointmentRepository) ListByUser(ctx context.Context, userID string) ([]*domain.UserAppointment, error) {
	query := `SELECT a.id, a.user_id, a.service_id, a.appointment_date, a.slot,
					 a.status, a.created_at, a.updated_at, s.name
			  FROM appointments a
			  JOIN services s ON s.id = a.service_id
			  WHERE a.user_id = $1
			  ORDER BY a.appointment_date DESC, a.slot DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list appointments by user: %w", err)
	}
	defer rows.Close()

	var res []*domain.UserAppointment
	for rows.Next() {
		var a domain.UserAppointment
		if err = rows.Scan(
			&a.ID, &a.UserID, &a.ServiceID, &a.Date, &a.Slot,
			&a.Status, &a.CreatedAt, &a.UpdatedAt, &a.ServiceName,
		); err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		res = append(res, &a)
	}

	return res, rows.Err()
}

// BookedSlots returns the slot labels held by non-canceled appointments on the
// given date. The shop is a single resource pool: one chair, so a booked slot
// blocks every service.
func (r *AppointmentRepository) BookedSlots(ctx context.Context, date time.Time) ([]string, error) {
	query := `SELECT slot FROM appointments
			  WHERE appointment_date = $1 AND status = ANY($2)
			  ORDER BY slot`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, date, pq.Array(domain.BlockingStatuses))
	if err != nil {
		return nil, fmt.Errorf("booked slots: %w", err)
	}
	defer rows.Close()

	var res []string
	for rows.Next() {
		var slot string
		if err = rows.Scan(&slot); err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		res = append(res, slot)
	}

	return res, rows.Err()
}

// CompletePast marks scheduled appointments whose date and slot have passed as
// completed and returns them.
func (r *AppointmentRepository) CompletePast(ctx context.Context) ([]*domain.Appointment, error) {
	query := `UPDATE appointments
			  SET status = $2, updated_at = now()
			  WHERE status = $1
			    AND appointment_date + slot::time < now()
			  RETURNING id, user_id, service_id, appointment_date, slot, status, created_at, updated_at`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.AppointmentStatusScheduled, domain.AppointmentStatusCompleted,
	)
	if err != nil {
		return nil, fmt.Errorf("complete past: %w", err)
	}
	defer rows.Close()

	var res []*domain.Appointment
	for rows.Next() {
		var a domain.Appointment
		if err = rows.Scan(
			&a.ID, &a.UserID, &a.ServiceID, &a.Date,
			&a.Slot, &a.Status, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}

		res = append(res, &a)
	}

	return res, rows.Err()
}

func slotTaken(ctx context.Context, tx *sql.Tx, date time.Time, slot, excludeID string) (bool, error) {
	query := `SELECT EXISTS (
				SELECT 1 FROM appointments
				WHERE appointment_date = $1 AND slot = $2 AND status = ANY($3) AND id <> $4
			  )`

	var taken bool
	if err := tx.QueryRowContext(
		ctx, query, date, slot,
		pq.Array(domain.BlockingStatuses), excludeID,
	).Scan(&taken); err != nil {
		return false, fmt.Errorf("check slot: %w", err)
	}

	return taken, nil
}
