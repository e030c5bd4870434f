package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/liveesee/java-filmorate/internal/domain"
)

// PostgresUserStore реализует UserStore для PostgreSQL.
type PostgresUserStore struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewPostgresUserStore создает хранилище пользователей поверх подключения к БД.
func NewPostgresUserStore(db *sqlx.DB, logger *slog.Logger) *PostgresUserStore {
	return &PostgresUserStore{db: db, logger: logger}
}

func (s *PostgresUserStore) FindAll(ctx context.Context) ([]domain.User, error) {
	query := `SELECT id, email, login, name, birthday FROM users ORDER BY id`
	users := []domain.User{}

	s.logger.DebugContext(ctx, "Executing FindAll users query")
	if err := s.db.SelectContext(ctx, &users, query); err != nil {
		s.logger.ErrorContext(ctx, "Failed to list users from DB", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Create вставляет строку пользователя и записывает сгенерированный БД ключ
// обратно в user.ID.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (email, login, name, birthday)
              VALUES ($1, $2, $3, $4)
              RETURNING id`

	s.logger.DebugContext(ctx, "Executing Create user query", slog.String("login", user.Login))
	err := s.db.QueryRowContext(ctx, query,
		user.Email, user.Login, user.Name, user.Birthday,
	).Scan(&user.ID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to create user in DB", slog.String("error", err.Error()))
		return fmt.Errorf("failed to create user: %w", err)
	}
	s.logger.InfoContext(ctx, "User created in DB", slog.Int("userID", user.ID))
	return nil
}

// Update перезаписывает все скалярные колонки пользователя.
func (s *PostgresUserStore) Update(ctx context.Context, user *domain.User) error {
	query := `UPDATE users SET email = $1, login = $2, name = $3, birthday = $4
              WHERE id = $5`

	s.logger.DebugContext(ctx, "Executing Update user query", slog.Int("userID", user.ID))
	result, err := s.db.ExecContext(ctx, query,
		user.Email, user.Login, user.Name, user.Birthday, user.ID,
	)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to update user in DB", slog.Int("userID", user.ID), slog.String("error", err.Error()))
		return fmt.Errorf("failed to update user: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rowsAffected == 0 {
		s.logger.WarnContext(ctx, "No user found to update in DB", slog.Int("userID", user.ID))
		return ErrUserNotFound
	}
	return nil
}

func (s *PostgresUserStore) GetByID(ctx context.Context, id int) (*domain.User, error) {
	query := `SELECT id, email, login, name, birthday FROM users WHERE id = $1`
	var user domain.User

	s.logger.DebugContext(ctx, "Executing GetUserByID query", slog.Int("userID", id))
	if err := s.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.WarnContext(ctx, "User not found by ID in DB", slog.Int("userID", id))
			return nil, ErrUserNotFound
		}
		s.logger.ErrorContext(ctx, "Failed to get user by ID from DB", slog.Int("userID", id), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return &user, nil
}

// GetByIDs возвращает только существующих пользователей, отсутствующие ID
// молча пропускаются.
func (s *PostgresUserStore) GetByIDs(ctx context.Context, ids []int) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}
	query, args, err := sqlx.In(`SELECT id, email, login, name, birthday
              FROM users WHERE id IN (?) ORDER BY id`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build users IN query: %w", err)
	}
	query = s.db.Rebind(query)

	users := []domain.User{}
	if err := s.db.SelectContext(ctx, &users, query, args...); err != nil {
		s.logger.ErrorContext(ctx, "Failed to get users by IDs from DB", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to get users by IDs: %w", err)
	}
	return users, nil
}
