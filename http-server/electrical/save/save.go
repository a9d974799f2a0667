package save

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"mill-backend/internal/service/electrical"
)

type ElectricalSubmitter interface {
	Submit(ctx context.Context, date string, sections map[string]electrical.SectionInput) (created bool, err error)
}

type Request struct {
	Date     string                             `json:"date"`
	Sections map[string]electrical.SectionInput `json:"sections"`
}

type Response struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// AddElectrical handles POST /add-electrical. Responds 201 when a new record
// for the date was created and 200 when an existing one was updated.
func AddElectrical(log *slog.Logger, submitter ElectricalSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.electrical.save.AddElectrical"

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("invalid electrical payload", slog.String("op", op), slog.String("error", err.Error()))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, Response{Message: "Invalid data format received."})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		created, err := submitter.Submit(ctx, req.Date, req.Sections)
		if err != nil {
			if isValidationError(err) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, Response{Message: "Invalid data format received."})
				return
			}
			log.Error("failed to save electrical data", slog.String("op", op), slog.String("error", err.Error()))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, Response{Message: "Failed to save data.", Error: err.Error()})
			return
		}

		if created {
			render.Status(r, http.StatusCreated)
			render.JSON(w, r, Response{Message: "Data added successfully!"})
			return
		}
		render.JSON(w, r, Response{Message: "Data updated successfully!"})
	}
}

func isValidationError(err error) bool {
	return errors.Is(err, electrical.ErrMissingDate) ||
		errors.Is(err, electrical.ErrNoSections) ||
		errors.Is(err, electrical.ErrUnknownSection) ||
		errors.Is(err, electrical.ErrBadDate)
}
