package signup

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"mill-backend/internal/storage"
)

type UserSaver interface {
	SaveUser(ctx context.Context, user storage.User) (int64, error)
}

type Request struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func Signup(log *slog.Logger, saver UserSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.signup.Signup"

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("invalid signup payload", slog.String("op", op), slog.String("error", err.Error()))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, Response{Success: false, Message: "Invalid data format received."})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		_, err := saver.SaveUser(ctx, storage.User{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			if errors.Is(err, storage.ErrEmailTaken) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, Response{Success: false, Message: "Email already in use."})
				return
			}
			log.Error("failed to save user", slog.String("op", op), slog.String("error", err.Error()))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, Response{Success: false, Message: err.Error()})
			return
		}

		render.JSON(w, r, Response{Success: true, Message: "Signup successful!"})
	}
}
