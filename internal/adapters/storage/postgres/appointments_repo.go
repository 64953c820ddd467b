package postgres

import (
	"context"
	"database/sql"
	"errors"

	"pet-care-hub/internal/domain/appointments"
)

// AppointmentsRepo persiste citas en Postgres. Es el único store con opción
// durable: el catálogo (pets/clinics/shop) es seed de solo lectura y se queda
// in-memory siempre.
//
// Esquema esperado:
//
//	CREATE TABLE IF NOT EXISTS appointments (
//	    id         BIGSERIAL PRIMARY KEY,
//	    clinic_id  BIGINT NOT NULL,
//	    pet_id     BIGINT NOT NULL,
//	    date       TEXT NOT NULL,
//	    time       TEXT NOT NULL,
//	    reason     TEXT NOT NULL,
//	    status     TEXT NOT NULL,
//	    modality   TEXT NOT NULL,
//	    doctor_id  BIGINT NOT NULL
//	);
type AppointmentsRepo struct {
	db *sql.DB
}

func NewAppointmentsRepo(db *sql.DB) *AppointmentsRepo {
	return &AppointmentsRepo{db: db}
}

func (r *AppointmentsRepo) Seed(ctx context.Context, items []appointments.Appointment) error {
	for _, a := range items {
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO appointments (
				id, clinic_id, pet_id,
				date, time, reason,
				status, modality, doctor_id
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
			ON CONFLICT (id) DO NOTHING
		`,
			a.ID,
			a.ClinicID,
			a.PetID,
			a.Date,
			a.Time,
			a.Reason,
			string(a.Status),
			string(a.Modality),
			a.DoctorID,
		)
		if err != nil {
			return err
		}
	}

	// que la secuencia no pise ids del seed
	_, err := r.db.ExecContext(ctx, `
		SELECT setval(
			pg_get_serial_sequence('appointments', 'id'),
			GREATEST((SELECT COALESCE(MAX(id), 0) FROM appointments), 1)
		)
	`)
	return err
}

func (r *AppointmentsRepo) Create(ctx context.Context, a appointments.Appointment) (appointments.Appointment, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO appointments (
			clinic_id, pet_id,
			date, time, reason,
			status, modality, doctor_id
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id
	`,
		a.ClinicID,
		a.PetID,
		a.Date,
		a.Time,
		a.Reason,
		string(a.Status),
		string(a.Modality),
		a.DoctorID,
	)

	if err := row.Scan(&a.ID); err != nil {
		return appointments.Appointment{}, err
	}
	return a, nil
}

func (r *AppointmentsRepo) GetByID(ctx context.Context, id int64) (appointments.Appointment, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, clinic_id, pet_id, date, time, reason, status, modality, doctor_id
		FROM appointments
		WHERE id = $1
	`, id)

	a, err := scanAppointment(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appointments.Appointment{}, appointments.ErrNotFound
		}
		return appointments.Appointment{}, err
	}
	return a, nil
}

func (r *AppointmentsRepo) List(ctx context.Context) ([]appointments.Appointment, error) {
	return r.list(ctx, `
		SELECT id, clinic_id, pet_id, date, time, reason, status, modality, doctor_id
		FROM appointments
		ORDER BY id ASC
	`)
}

func (r *AppointmentsRepo) ListByStatus(ctx context.Context, status appointments.Status) ([]appointments.Appointment, error) {
	return r.list(ctx, `
		SELECT id, clinic_id, pet_id, date, time, reason, status, modality, doctor_id
		FROM appointments
		WHERE status = $1
		ORDER BY id ASC
	`, string(status))
}

func (r *AppointmentsRepo) list(ctx context.Context, query string, args ...any) ([]appointments.Appointment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]appointments.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AppointmentsRepo) UpdateStatus(ctx context.Context, id int64, status appointments.Status) error {
	return r.exec(ctx, `UPDATE appointments SET status = $2 WHERE id = $1`, id, string(status))
}

func (r *AppointmentsRepo) UpdateTime(ctx context.Context, id int64, slot string) error {
	return r.exec(ctx, `UPDATE appointments SET time = $2 WHERE id = $1`, id, slot)
}

func (r *AppointmentsRepo) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return appointments.ErrNotFound
	}
	return nil
}

func scanAppointment(scan func(...any) error) (appointments.Appointment, error) {
	var (
		a        appointments.Appointment
		status   string
		modality string
	)
	if err := scan(
		&a.ID,
		&a.ClinicID,
		&a.PetID,
		&a.Date,
		&a.Time,
		&a.Reason,
		&status,
		&modality,
		&a.DoctorID,
	); err != nil {
		return appointments.Appointment{}, err
	}
	a.Status = appointments.Status(status)
	a.Modality = appointments.Modality(modality)
	return a, nil
}
