package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"petcare-marketplace/internal/domain/healthrecords"
)

type HealthRecordsRepo struct {
	db *sql.DB
}

func NewHealthRecordsRepo(db *sql.DB) *HealthRecordsRepo {
	return &HealthRecordsRepo{db: db}
}

func (r *HealthRecordsRepo) Upsert(ctx context.Context, rec healthrecords.HealthRecord) (healthrecords.HealthRecord, error) {
	vacc, err := encodeList(rec.Vaccinations)
	if err != nil {
		return healthrecords.HealthRecord{}, err
	}
	allergies, err := encodeList(rec.Allergies)
	if err != nil {
		return healthrecords.HealthRecord{}, err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO health_records (
			pet_id, veterinarian, vaccinations, allergies, notes,
			last_checkup, source, updated_by, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (pet_id) DO UPDATE SET
			veterinarian = EXCLUDED.veterinarian,
			vaccinations = EXCLUDED.vaccinations,
			allergies = EXCLUDED.allergies,
			notes = EXCLUDED.notes,
			last_checkup = EXCLUDED.last_checkup,
			source = EXCLUDED.source,
			updated_by = EXCLUDED.updated_by,
			updated_at = EXCLUDED.updated_at
	`,
		rec.PetID,
		rec.Veterinarian,
		vacc,
		allergies,
		rec.Notes,
		toNullDate(rec.LastCheckup),
		string(rec.Source),
		rec.UpdatedBy,
		rec.UpdatedAt,
	)
	if err != nil {
		return healthrecords.HealthRecord{}, mapErr("healthrecords.upsert", err)
	}
	return rec, nil
}

func (r *HealthRecordsRepo) GetByPet(ctx context.Context, petID int64) (healthrecords.HealthRecord, error) {
	var (
		rec             healthrecords.HealthRecord
		vacc, allergies string
		source          string
		checkup         sql.NullTime
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT pet_id, veterinarian, vaccinations, allergies, notes,
		       last_checkup, source, updated_by, updated_at
		FROM health_records
		WHERE pet_id = $1
	`, petID).Scan(
		&rec.PetID,
		&rec.Veterinarian,
		&vacc,
		&allergies,
		&rec.Notes,
		&checkup,
		&source,
		&rec.UpdatedBy,
		&rec.UpdatedAt,
	)
	if err != nil {
		return healthrecords.HealthRecord{}, mapErr("healthrecords.get", err)
	}

	if rec.Vaccinations, err = decodeList(vacc); err != nil {
		return healthrecords.HealthRecord{}, err
	}
	if rec.Allergies, err = decodeList(allergies); err != nil {
		return healthrecords.HealthRecord{}, err
	}
	rec.Source = healthrecords.Source(source)
	if checkup.Valid {
		// ojo: last_checkup es date, pgx lo mapea a medianoche UTC
		t := checkup.Time
		rec.LastCheckup = &t
	}
	return rec, nil
}

func encodeList(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("encode list: %w", err)
	}
	return string(b), nil
}

func decodeList(raw string) ([]string, error) {
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	return out, nil
}

// last_checkup es DATE, lo pasamos como NullTime para simplificar
func toNullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
