package mysql

import (
	"context"
	"fmt"

	"mill-backend/internal/constants"
	"mill-backend/internal/storage"
)

// GetProduction returns the record for date, or nil when no counters have
// been stored for it yet. Departments without a row come back zero-valued.
func (s *Storage) GetProduction(ctx context.Context, date string) (*storage.ProductionRecord, error) {
	const op = "storage.mysql.GetProduction"

	rows, err := s.db.QueryContext(ctx,
		`SELECT department, ondate_prod, ondate_hands FROM production_counters WHERE record_date = ?`, date)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	rec := &storage.ProductionRecord{
		Date:        date,
		Departments: make(map[string]storage.DepartmentCounters, len(constants.Departments)),
	}

	found := false
	for rows.Next() {
		var dept string
		var c storage.DepartmentCounters
		if err := rows.Scan(&dept, &c.OndateProd, &c.OndateHands); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		rec.Departments[dept] = c
		found = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !found {
		return nil, nil
	}

	for _, dept := range constants.Departments {
		if _, ok := rec.Departments[dept]; !ok {
			rec.Departments[dept] = storage.DepartmentCounters{}
		}
	}

	return rec, nil
}

// SaveProduction writes the full merged record for its date. One row per
// department; rewriting an existing row replaces the counters with the merged
// values computed by the caller.
func (s *Storage) SaveProduction(ctx context.Context, rec storage.ProductionRecord) error {
	const op = "storage.mysql.SaveProduction"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO production_counters (record_date, department, ondate_prod, ondate_hands)
		VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			ondate_prod = VALUES(ondate_prod),
			ondate_hands = VALUES(ondate_hands)
	`)
	if err != nil {
		return fmt.Errorf("%s: prepare statement: %w", op, err)
	}
	defer stmt.Close()

	for _, dept := range constants.Departments {
		c := rec.Departments[dept]
		if _, err := stmt.ExecContext(ctx, rec.Date, dept, c.OndateProd, c.OndateHands); err != nil {
			return fmt.Errorf("%s: department %s: %w", op, dept, err)
		}
	}

	return tx.Commit()
}

// ListProductionByMonth returns every record whose date string starts with
// the given "YYYY-MM" prefix, ordered by date ascending. A plain string
// prefix match, which is exact for well-formed YYYY-MM-DD keys.
func (s *Storage) ListProductionByMonth(ctx context.Context, monthPrefix string) ([]storage.ProductionRecord, error) {
	const op = "storage.mysql.ListProductionByMonth"

	rows, err := s.db.QueryContext(ctx, `
		SELECT record_date, department, ondate_prod, ondate_hands
		FROM production_counters
		WHERE record_date LIKE CONCAT(?, '%')
		ORDER BY record_date ASC
	`, monthPrefix)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var records []storage.ProductionRecord
	byDate := make(map[string]int)

	for rows.Next() {
		var date, dept string
		var c storage.DepartmentCounters
		if err := rows.Scan(&date, &dept, &c.OndateProd, &c.OndateHands); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}

		i, ok := byDate[date]
		if !ok {
			records = append(records, storage.ProductionRecord{
				Date:        date,
				Departments: make(map[string]storage.DepartmentCounters, len(constants.Departments)),
			})
			i = len(records) - 1
			byDate[date] = i
		}
		records[i].Departments[dept] = c
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return records, nil
}
