package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"mill-backend/internal/storage"
)

type ProductionProvider interface {
	SelectedDate(ctx context.Context, date string) (*storage.ProductionRecord, error)
	MonthCumulative(ctx context.Context, monthPrefix string) (map[string]storage.DepartmentTotals, error)
}

// SelectedDateProduction handles GET /production/selected-date/{date}. A date
// with no record responds with an empty object, not 404.
func SelectedDateProduction(log *slog.Logger, provider ProductionProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.production.get.SelectedDateProduction"

		date := chi.URLParam(r, "date")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		rec, err := provider.SelectedDate(ctx, date)
		if err != nil {
			log.Error("failed to get production record", slog.String("op", op), slog.String("error", err.Error()))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"error": err.Error()})
			return
		}

		if rec == nil {
			render.JSON(w, r, struct{}{})
			return
		}

		// Departments sit at the top level of the response, next to the date.
		resp := make(map[string]interface{}, len(rec.Departments)+1)
		resp["date"] = rec.Date
		for dept, c := range rec.Departments {
			resp[dept] = c
		}
		render.JSON(w, r, resp)
	}
}

// MonthCumulativeProduction handles GET /cumulative/production/{month}. The
// response is always the full ten-department template, zero-filled when the
// month has no records.
func MonthCumulativeProduction(log *slog.Logger, provider ProductionProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.production.get.MonthCumulativeProduction"

		month := chi.URLParam(r, "month")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		totals, err := provider.MonthCumulative(ctx, month)
		if err != nil {
			log.Error("failed to aggregate production month", slog.String("op", op), slog.String("error", err.Error()))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"error": err.Error()})
			return
		}

		render.JSON(w, r, totals)
	}
}
