package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
)

// PostgresFriendStore реализует FriendStore для PostgreSQL. Ребро дружбы
// направленное: строка (user_id, friend_id) означает "user считает friend
// своим другом".
type PostgresFriendStore struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewPostgresFriendStore создает хранилище дружеских связей поверх
// подключения к БД.
func NewPostgresFriendStore(db *sqlx.DB, logger *slog.Logger) *PostgresFriendStore {
	return &PostgresFriendStore{db: db, logger: logger}
}

func (s *PostgresFriendStore) Add(ctx context.Context, userID, friendID int) error {
	query := `INSERT INTO friends (user_id, friend_id) VALUES ($1, $2)
              ON CONFLICT (user_id, friend_id) DO NOTHING`

	s.logger.DebugContext(ctx, "Executing Add friend query", slog.Int("userID", userID), slog.Int("friendID", friendID))
	if _, err := s.db.ExecContext(ctx, query, userID, friendID); err != nil {
		s.logger.ErrorContext(ctx, "Failed to add friend in DB", slog.String("error", err.Error()))
		return fmt.Errorf("failed to add friend: %w", err)
	}
	return nil
}

func (s *PostgresFriendStore) Delete(ctx context.Context, userID, friendID int) error {
	query := `DELETE FROM friends WHERE user_id = $1 AND friend_id = $2`

	s.logger.DebugContext(ctx, "Executing Delete friend query", slog.Int("userID", userID), slog.Int("friendID", friendID))
	if _, err := s.db.ExecContext(ctx, query, userID, friendID); err != nil {
		s.logger.ErrorContext(ctx, "Failed to delete friend in DB", slog.String("error", err.Error()))
		return fmt.Errorf("failed to delete friend: %w", err)
	}
	return nil
}

// FriendIDs возвращает ID друзей пользователя по возрастанию.
func (s *PostgresFriendStore) FriendIDs(ctx context.Context, userID int) ([]int, error) {
	query := `SELECT friend_id FROM friends WHERE user_id = $1 ORDER BY friend_id`
	friendIDs := []int{}

	if err := s.db.SelectContext(ctx, &friendIDs, query, userID); err != nil {
		s.logger.ErrorContext(ctx, "Failed to get friends from DB", slog.Int("userID", userID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to get friends: %w", err)
	}
	return friendIDs, nil
}

// FriendIDsByUserIDs возвращает друзей сразу для набора пользователей
// одним запросом.
func (s *PostgresFriendStore) FriendIDsByUserIDs(ctx context.Context, userIDs []int) (map[int][]int, error) {
	if len(userIDs) == 0 {
		return map[int][]int{}, nil
	}
	query, args, err := sqlx.In(`SELECT user_id, friend_id FROM friends
              WHERE user_id IN (?) ORDER BY user_id, friend_id`, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build friends IN query: %w", err)
	}
	query = s.db.Rebind(query)

	rows, err := s.db.QueryxContext(ctx, query, args...)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to get friends by user IDs from DB", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to get friends by user IDs: %w", err)
	}
	defer rows.Close()

	result := make(map[int][]int, len(userIDs))
	for rows.Next() {
		var userID, friendID int
		if err := rows.Scan(&userID, &friendID); err != nil {
			return nil, fmt.Errorf("failed to scan friend row: %w", err)
		}
		result[userID] = append(result[userID], friendID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate friend rows: %w", err)
	}
	return result, nil
}
