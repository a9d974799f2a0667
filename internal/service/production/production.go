package production

import (
	"context"
	"fmt"
	"sync"

	"mill-backend/internal/service/aggregate"
	"mill-backend/internal/service/merge"
	"mill-backend/internal/storage"
)

type ProductionStorage interface {
	GetProduction(ctx context.Context, date string) (*storage.ProductionRecord, error)
	SaveProduction(ctx context.Context, rec storage.ProductionRecord) error
	ListProductionByMonth(ctx context.Context, monthPrefix string) ([]storage.ProductionRecord, error)
}

type ProductionService struct {
	storage ProductionStorage

	// Guards the read-merge-write sequence per date. Without this, two
	// concurrent submissions for the same date could both read the same
	// prior state and the second write would clobber the first increment.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewProductionService(storage ProductionStorage) *ProductionService {
	return &ProductionService{
		storage: storage,
		locks:   make(map[string]*sync.Mutex),
	}
}

func (s *ProductionService) dateLock(date string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[date]
	if !ok {
		l = &sync.Mutex{}
		s.locks[date] = l
	}
	return l
}

// Add merges an incoming partial department mapping into the stored record
// for date and persists the result. Counters accumulate across calls.
func (s *ProductionService) Add(ctx context.Context, date string, incoming map[string]storage.DepartmentCounters) error {
	const op = "service.production.Add"

	l := s.dateLock(date)
	l.Lock()
	defer l.Unlock()

	existing, err := s.storage.GetProduction(ctx, date)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	rec := merge.Production(existing, date, incoming)

	if err := s.storage.SaveProduction(ctx, rec); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// SelectedDate returns the stored record for date, or nil when the date has
// never been submitted.
func (s *ProductionService) SelectedDate(ctx context.Context, date string) (*storage.ProductionRecord, error) {
	const op = "service.production.SelectedDate"

	rec, err := s.storage.GetProduction(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return rec, nil
}

// MonthCumulative sums every record of the given "YYYY-MM" month into the
// full ten-department template, zero-filled when nothing matched.
func (s *ProductionService) MonthCumulative(ctx context.Context, monthPrefix string) (map[string]storage.DepartmentTotals, error) {
	const op = "service.production.MonthCumulative"

	records, err := s.storage.ListProductionByMonth(ctx, monthPrefix)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return aggregate.ProductionMonth(records), nil
}
