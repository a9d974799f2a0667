package electrical

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"mill-backend/internal/constants"
	"mill-backend/internal/service/aggregate"
	"mill-backend/internal/service/lifecycle"
	"mill-backend/internal/service/merge"
	"mill-backend/internal/storage"
)

var (
	ErrMissingDate    = errors.New("date is required")
	ErrNoSections     = errors.New("at least one section is required")
	ErrUnknownSection = errors.New("unknown section")
	ErrBadDate        = errors.New("date must be YYYY-MM-DD")
)

// SectionInput is one submitted section: the machine type and its install
// date. The life-cycle fields are derived here, not taken from the client.
type SectionInput struct {
	MachineType string `json:"type"`
	InstallDate string `json:"date"`
}

type ElectricalStorage interface {
	GetElectrical(ctx context.Context, date string) (*storage.ElectricalRecord, error)
	SaveElectrical(ctx context.Context, rec storage.ElectricalRecord) error
	ListElectricalThrough(ctx context.Context, through string) ([]storage.ElectricalRecord, error)
	ListElectricalAll(ctx context.Context) ([]storage.ElectricalRecord, error)
}

type ElectricalService struct {
	storage ElectricalStorage
	now     func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewElectricalService(storage ElectricalStorage) *ElectricalService {
	return &ElectricalService{
		storage: storage,
		now:     time.Now,
		locks:   make(map[string]*sync.Mutex),
	}
}

func (s *ElectricalService) dateLock(date string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[date]
	if !ok {
		l = &sync.Mutex{}
		s.locks[date] = l
	}
	return l
}

// Submit validates the payload, derives life-cycle fields for each section
// and merges the result into the stored record for date. Returns true when a
// new record was created, false when an existing one was updated. Validation
// failures leave the store untouched.
func (s *ElectricalService) Submit(ctx context.Context, date string, sections map[string]SectionInput) (created bool, err error) {
	const op = "service.electrical.Submit"

	if date == "" {
		return false, fmt.Errorf("%s: %w", op, ErrMissingDate)
	}
	if _, err := time.Parse(lifecycle.DateLayout, date); err != nil {
		return false, fmt.Errorf("%s: %w", op, ErrBadDate)
	}
	if len(sections) == 0 {
		return false, fmt.Errorf("%s: %w", op, ErrNoSections)
	}

	now := s.now()
	incoming := make(map[string]storage.SectionStatus, len(sections))
	for section, in := range sections {
		if !constants.IsSection[section] {
			return false, fmt.Errorf("%s: %w: %s", op, ErrUnknownSection, section)
		}

		install, err := time.Parse(lifecycle.DateLayout, in.InstallDate)
		if err != nil {
			return false, fmt.Errorf("%s: section %s: %w", op, section, ErrBadDate)
		}

		life := lifecycle.Compute(install, now)
		incoming[section] = storage.SectionStatus{
			MachineType:  in.MachineType,
			InstallDate:  in.InstallDate,
			LifeInDays:   life.Days,
			LifeInMonths: life.Months,
			NextSchedule: life.NextSchedule,
		}
	}

	l := s.dateLock(date)
	l.Lock()
	defer l.Unlock()

	existing, err := s.storage.GetElectrical(ctx, date)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	rec := merge.Electrical(existing, date, incoming)

	if err := s.storage.SaveElectrical(ctx, rec); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return existing == nil, nil
}

// All returns every maintenance record, most recent date first.
func (s *ElectricalService) All(ctx context.Context) ([]storage.ElectricalRecord, error) {
	const op = "service.electrical.All"

	records, err := s.storage.ListElectricalAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return records, nil
}

// CumulativeAsOf folds every record with date <= through into per-section
// totals. matched reports whether any record was in range, so callers can
// distinguish "no data" from totals that happen to sum to zero.
func (s *ElectricalService) CumulativeAsOf(ctx context.Context, through string) (totals map[string]storage.SectionTotals, matched bool, err error) {
	const op = "service.electrical.CumulativeAsOf"

	records, err := s.storage.ListElectricalThrough(ctx, through)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}

	return aggregate.Sections(records), len(records) > 0, nil
}
