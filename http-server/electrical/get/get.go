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

type ElectricalProvider interface {
	All(ctx context.Context) ([]storage.ElectricalRecord, error)
	CumulativeAsOf(ctx context.Context, through string) (totals map[string]storage.SectionTotals, matched bool, err error)
}

type ListResponse struct {
	Success bool                       `json:"success"`
	Count   int                        `json:"count"`
	Data    []storage.ElectricalRecord `json:"data"`
}

// AllElectrical handles GET /electrical-all, most recent date first. This is
// the one listing that responds 404 on an empty result; the cumulative
// queries below never do.
func AllElectrical(log *slog.Logger, provider ElectricalProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.electrical.get.AllElectrical"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		records, err := provider.All(ctx)
		if err != nil {
			log.Error("failed to list electrical records", slog.String("op", op), slog.String("error", err.Error()))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]interface{}{"success": false, "message": "Failed to fetch electrical data."})
			return
		}

		if len(records) == 0 {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, map[string]string{"message": "No electrical records found."})
			return
		}

		render.JSON(w, r, ListResponse{Success: true, Count: len(records), Data: records})
	}
}

// CumulativeAsOf handles GET /cumulative/{date}. When no record falls in
// range the response is an empty object — "no data" is distinct from totals
// that sum to zero.
func CumulativeAsOf(log *slog.Logger, provider ElectricalProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.electrical.get.CumulativeAsOf"

		date := chi.URLParam(r, "date")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		totals, matched, err := provider.CumulativeAsOf(ctx, date)
		if err != nil {
			log.Error("failed to aggregate electrical data", slog.String("op", op), slog.String("error", err.Error()))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"error": err.Error()})
			return
		}

		if !matched {
			render.JSON(w, r, struct{}{})
			return
		}

		render.JSON(w, r, totals)
	}
}

// CumulativeElectrical handles GET /cumulative/electrical/{date}. Unlike
// CumulativeAsOf it always responds with the full three-section template,
// zero-filled when nothing matched.
func CumulativeElectrical(log *slog.Logger, provider ElectricalProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.electrical.get.CumulativeElectrical"

		date := chi.URLParam(r, "date")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		totals, _, err := provider.CumulativeAsOf(ctx, date)
		if err != nil {
			log.Error("failed to aggregate electrical data", slog.String("op", op), slog.String("error", err.Error()))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"error": err.Error()})
			return
		}

		render.JSON(w, r, totals)
	}
}
