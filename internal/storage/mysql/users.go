package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"mill-backend/internal/storage"
)

// MySQL error 1062: duplicate entry for a unique key.
const errDuplicateEntry = 1062

func (s *Storage) SaveUser(ctx context.Context, user storage.User) (int64, error) {
	const op = "storage.mysql.SaveUser"

	exec, err := s.db.ExecContext(ctx,
		`INSERT INTO users (name, email, password) VALUES (?, ?, ?)`,
		user.Name, user.Email, user.Password)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == errDuplicateEntry {
			return 0, fmt.Errorf("%s: %w", op, storage.ErrEmailTaken)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return exec.LastInsertId()
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*storage.User, error) {
	const op = "storage.mysql.GetUserByEmail"

	var user storage.User
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, email, password FROM users WHERE email = ?`, email).
		Scan(&user.ID, &user.Name, &user.Email, &user.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &user, nil
}
