package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"mill-backend/internal/storage"
)

// GetElectrical returns the maintenance record for date, or nil when nothing
// has been stored for it.
func (s *Storage) GetElectrical(ctx context.Context, date string) (*storage.ElectricalRecord, error) {
	const op = "storage.mysql.GetElectrical"

	rows, err := s.db.QueryContext(ctx, `
		SELECT section, machine_type, install_date, life_days, life_months, next_schedule
		FROM electrical_sections
		WHERE record_date = ?
	`, date)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	rec := &storage.ElectricalRecord{
		Date:     date,
		Sections: make(map[string]storage.SectionStatus),
	}

	for rows.Next() {
		var section string
		var st storage.SectionStatus
		if err := rows.Scan(&section, &st.MachineType, &st.InstallDate, &st.LifeInDays, &st.LifeInMonths, &st.NextSchedule); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		rec.Sections[section] = st
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(rec.Sections) == 0 {
		return nil, nil
	}

	return rec, nil
}

// SaveElectrical writes the merged record for its date. Only sections present
// on the record are written; the merge policy decides which those are.
func (s *Storage) SaveElectrical(ctx context.Context, rec storage.ElectricalRecord) error {
	const op = "storage.mysql.SaveElectrical"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO electrical_sections (record_date, section, machine_type, install_date, life_days, life_months, next_schedule)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			machine_type = VALUES(machine_type),
			install_date = VALUES(install_date),
			life_days = VALUES(life_days),
			life_months = VALUES(life_months),
			next_schedule = VALUES(next_schedule)
	`)
	if err != nil {
		return fmt.Errorf("%s: prepare statement: %w", op, err)
	}
	defer stmt.Close()

	for section, st := range rec.Sections {
		if _, err := stmt.ExecContext(ctx, rec.Date, section, st.MachineType, st.InstallDate,
			st.LifeInDays, st.LifeInMonths, st.NextSchedule); err != nil {
			return fmt.Errorf("%s: section %s: %w", op, section, err)
		}
	}

	return tx.Commit()
}

// ListElectricalThrough returns every record with date <= through, ordered by
// date ascending. The ascending order makes the aggregator's last-value-wins
// fields deterministic: most recent date wins.
func (s *Storage) ListElectricalThrough(ctx context.Context, through string) ([]storage.ElectricalRecord, error) {
	const op = "storage.mysql.ListElectricalThrough"

	rows, err := s.db.QueryContext(ctx, `
		SELECT record_date, section, machine_type, install_date, life_days, life_months, next_schedule
		FROM electrical_sections
		WHERE record_date <= ?
		ORDER BY record_date ASC
	`, through)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return scanElectricalRecords(op, rows)
}

// ListElectricalAll returns every maintenance record, most recent date first.
func (s *Storage) ListElectricalAll(ctx context.Context) ([]storage.ElectricalRecord, error) {
	const op = "storage.mysql.ListElectricalAll"

	rows, err := s.db.QueryContext(ctx, `
		SELECT record_date, section, machine_type, install_date, life_days, life_months, next_schedule
		FROM electrical_sections
		ORDER BY record_date DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return scanElectricalRecords(op, rows)
}

func scanElectricalRecords(op string, rows *sql.Rows) ([]storage.ElectricalRecord, error) {
	defer rows.Close()

	var records []storage.ElectricalRecord
	byDate := make(map[string]int)

	for rows.Next() {
		var date, section string
		var st storage.SectionStatus
		if err := rows.Scan(&date, &section, &st.MachineType, &st.InstallDate, &st.LifeInDays, &st.LifeInMonths, &st.NextSchedule); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}

		i, ok := byDate[date]
		if !ok {
			records = append(records, storage.ElectricalRecord{
				Date:     date,
				Sections: make(map[string]storage.SectionStatus),
			})
			i = len(records) - 1
			byDate[date] = i
		}
		records[i].Sections[section] = st
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return records, nil
}
