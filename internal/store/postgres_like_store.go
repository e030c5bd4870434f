package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
)

// PostgresLikeStore реализует LikeStore для PostgreSQL. Идемпотентность Add
// обеспечивает ON CONFLICT DO NOTHING по первичному ключу пары.
type PostgresLikeStore struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewPostgresLikeStore создает хранилище лайков поверх подключения к БД.
func NewPostgresLikeStore(db *sqlx.DB, logger *slog.Logger) *PostgresLikeStore {
	return &PostgresLikeStore{db: db, logger: logger}
}

func (s *PostgresLikeStore) Add(ctx context.Context, filmID, userID int) error {
	query := `INSERT INTO likes (user_id, film_id) VALUES ($1, $2)
              ON CONFLICT (user_id, film_id) DO NOTHING`

	s.logger.DebugContext(ctx, "Executing Add like query", slog.Int("filmID", filmID), slog.Int("userID", userID))
	if _, err := s.db.ExecContext(ctx, query, userID, filmID); err != nil {
		s.logger.ErrorContext(ctx, "Failed to add like in DB", slog.String("error", err.Error()))
		return fmt.Errorf("failed to add like: %w", err)
	}
	return nil
}

func (s *PostgresLikeStore) Delete(ctx context.Context, filmID, userID int) error {
	query := `DELETE FROM likes WHERE user_id = $1 AND film_id = $2`

	s.logger.DebugContext(ctx, "Executing Delete like query", slog.Int("filmID", filmID), slog.Int("userID", userID))
	if _, err := s.db.ExecContext(ctx, query, userID, filmID); err != nil {
		s.logger.ErrorContext(ctx, "Failed to delete like in DB", slog.String("error", err.Error()))
		return fmt.Errorf("failed to delete like: %w", err)
	}
	return nil
}

// UserIDs возвращает ID пользователей, лайкнувших фильм, по возрастанию.
func (s *PostgresLikeStore) UserIDs(ctx context.Context, filmID int) ([]int, error) {
	query := `SELECT user_id FROM likes WHERE film_id = $1 ORDER BY user_id`
	userIDs := []int{}

	if err := s.db.SelectContext(ctx, &userIDs, query, filmID); err != nil {
		s.logger.ErrorContext(ctx, "Failed to get likes from DB", slog.Int("filmID", filmID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to get likes: %w", err)
	}
	return userIDs, nil
}

// UserIDsByFilmIDs возвращает лайки сразу для набора фильмов одним запросом.
func (s *PostgresLikeStore) UserIDsByFilmIDs(ctx context.Context, filmIDs []int) (map[int][]int, error) {
	if len(filmIDs) == 0 {
		return map[int][]int{}, nil
	}
	query, args, err := sqlx.In(`SELECT film_id, user_id FROM likes
              WHERE film_id IN (?) ORDER BY film_id, user_id`, filmIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build likes IN query: %w", err)
	}
	query = s.db.Rebind(query)

	rows, err := s.db.QueryxContext(ctx, query, args...)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to get likes by film IDs from DB", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to get likes by film IDs: %w", err)
	}
	defer rows.Close()

	result := make(map[int][]int, len(filmIDs))
	for rows.Next() {
		var filmID, userID int
		if err := rows.Scan(&filmID, &userID); err != nil {
			return nil, fmt.Errorf("failed to scan like row: %w", err)
		}
		result[filmID] = append(result[filmID], userID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate like rows: %w", err)
	}
	return result, nil
}
