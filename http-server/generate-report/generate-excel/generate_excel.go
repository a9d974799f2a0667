package generate_excel

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"time"

	"github.com/go-chi/render"
)

var monthRe = regexp.MustCompile(`^\d{4}-\d{2}$`)

type MonthlyReporter interface {
	Monthly(ctx context.Context, month string) ([]byte, error)
}

// GenerateReportExcel handles GET /report/excel?month=YYYY-MM and streams the
// workbook as an attachment.
func GenerateReportExcel(log *slog.Logger, reporter MonthlyReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.generate-report.GenerateReportExcel"

		month := r.URL.Query().Get("month")
		if !monthRe.MatchString(month) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "month must be YYYY-MM"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		data, err := reporter.Monthly(ctx, month)
		if err != nil {
			log.Error("failed to generate report", slog.String("op", op), slog.String("error", err.Error()))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"message": "Failed to generate report"})
			return
		}

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="mill-report-%s.xlsx"`, month))
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	}
}
