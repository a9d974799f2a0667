package save

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"mill-backend/internal/constants"
	"mill-backend/internal/service/lifecycle"
	"mill-backend/internal/storage"
)

type ProductionAdder interface {
	Add(ctx context.Context, date string, incoming map[string]storage.DepartmentCounters) error
}

type Response struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// AddProduction handles POST /add. The payload carries the date plus the
// observed departments at the top level:
//
//	{"date": "2024-03-01", "MIXING": {"ondate_prod": 5, "ondate_hands": 2}}
//
// Departments outside the fixed set are rejected, not stored.
func AddProduction(log *slog.Logger, adder ProductionAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.production.save.AddProduction"

		date, incoming, err := parseRequest(r)
		if err != nil {
			log.Error("invalid production payload", slog.String("op", op), slog.String("error", err.Error()))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, Response{Message: err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := adder.Add(ctx, date, incoming); err != nil {
			log.Error("failed to save production data", slog.String("op", op), slog.String("error", err.Error()))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, Response{Message: "Failed to save data", Error: err.Error()})
			return
		}

		render.JSON(w, r, Response{Message: "Production data saved successfully"})
	}
}

func parseRequest(r *http.Request) (string, map[string]storage.DepartmentCounters, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return "", nil, fmt.Errorf("invalid JSON: %w", err)
	}

	rawDate, ok := raw["date"]
	if !ok {
		return "", nil, fmt.Errorf("date is required")
	}
	var date string
	if err := json.Unmarshal(rawDate, &date); err != nil || date == "" {
		return "", nil, fmt.Errorf("date is required")
	}
	if _, err := time.Parse(lifecycle.DateLayout, date); err != nil {
		return "", nil, fmt.Errorf("date must be YYYY-MM-DD")
	}

	incoming := make(map[string]storage.DepartmentCounters)
	for key, value := range raw {
		if key == "date" {
			continue
		}
		if !constants.IsDepartment[key] {
			return "", nil, fmt.Errorf("unknown department: %s", key)
		}

		var c storage.DepartmentCounters
		if err := json.Unmarshal(value, &c); err != nil {
			return "", nil, fmt.Errorf("department %s: invalid counters", key)
		}
		incoming[key] = c
	}

	return date, incoming, nil
}
