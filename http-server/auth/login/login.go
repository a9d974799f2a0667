package login

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"mill-backend/internal/storage"
)

type UserProvider interface {
	GetUserByEmail(ctx context.Context, email string) (*storage.User, error)
}

type Request struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Login compares the submitted password against the stored one as plain
// text. No token is issued; session state lives only in the client.
func Login(log *slog.Logger, provider UserProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.login.Login"

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("invalid login payload", slog.String("op", op), slog.String("error", err.Error()))
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, Response{Success: false, Message: "Invalid credentials"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		user, err := provider.GetUserByEmail(ctx, req.Email)
		if err != nil || user.Password != req.Password {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, Response{Success: false, Message: "Invalid credentials"})
			return
		}

		render.JSON(w, r, Response{Success: true, Message: "Login successful"})
	}
}
