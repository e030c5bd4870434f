package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
)

// PostgresFilmGenreStore реализует FilmGenreStore для PostgreSQL.
type PostgresFilmGenreStore struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewPostgresFilmGenreStore создает хранилище связей фильм-жанр поверх
// подключения к БД.
func NewPostgresFilmGenreStore(db *sqlx.DB, logger *slog.Logger) *PostgresFilmGenreStore {
	return &PostgresFilmGenreStore{db: db, logger: logger}
}

type filmGenreRow struct {
	FilmID  int `db:"film_id"`
	GenreID int `db:"genre_id"`
}

// Set заменяет набор жанров фильма: снимает старые связи и вставляет новые
// одним батчем. Операции не обернуты в транзакцию, атомарность на уровне
// отдельных выражений.
func (s *PostgresFilmGenreStore) Set(ctx context.Context, filmID int, genreIDs []int) error {
	s.logger.DebugContext(ctx, "Executing Set film genres", slog.Int("filmID", filmID), slog.Int("count", len(genreIDs)))

	if _, err := s.db.ExecContext(ctx, `DELETE FROM film_genres WHERE film_id = $1`, filmID); err != nil {
		s.logger.ErrorContext(ctx, "Failed to clear film genres in DB", slog.Int("filmID", filmID), slog.String("error", err.Error()))
		return fmt.Errorf("failed to clear film genres: %w", err)
	}
	if len(genreIDs) == 0 {
		return nil
	}

	rows := make([]filmGenreRow, 0, len(genreIDs))
	for _, genreID := range genreIDs {
		rows = append(rows, filmGenreRow{FilmID: filmID, GenreID: genreID})
	}
	query := `INSERT INTO film_genres (film_id, genre_id) VALUES (:film_id, :genre_id)
              ON CONFLICT (film_id, genre_id) DO NOTHING`
	if _, err := s.db.NamedExecContext(ctx, query, rows); err != nil {
		s.logger.ErrorContext(ctx, "Failed to insert film genres in DB", slog.Int("filmID", filmID), slog.String("error", err.Error()))
		return fmt.Errorf("failed to insert film genres: %w", err)
	}
	return nil
}

// GenreIDs возвращает ID жанров фильма по возрастанию.
func (s *PostgresFilmGenreStore) GenreIDs(ctx context.Context, filmID int) ([]int, error) {
	query := `SELECT genre_id FROM film_genres WHERE film_id = $1 ORDER BY genre_id`
	genreIDs := []int{}

	if err := s.db.SelectContext(ctx, &genreIDs, query, filmID); err != nil {
		s.logger.ErrorContext(ctx, "Failed to get film genres from DB", slog.Int("filmID", filmID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to get film genres: %w", err)
	}
	return genreIDs, nil
}

// GenreIDsByFilmIDs возвращает жанры сразу для набора фильмов одним запросом.
func (s *PostgresFilmGenreStore) GenreIDsByFilmIDs(ctx context.Context, filmIDs []int) (map[int][]int, error) {
	if len(filmIDs) == 0 {
		return map[int][]int{}, nil
	}
	query, args, err := sqlx.In(`SELECT film_id, genre_id FROM film_genres
              WHERE film_id IN (?) ORDER BY film_id, genre_id`, filmIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build film genres IN query: %w", err)
	}
	query = s.db.Rebind(query)

	rows, err := s.db.QueryxContext(ctx, query, args...)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to get film genres by film IDs from DB", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to get film genres by film IDs: %w", err)
	}
	defer rows.Close()

	result := make(map[int][]int, len(filmIDs))
	for rows.Next() {
		var filmID, genreID int
		if err := rows.Scan(&filmID, &genreID); err != nil {
			return nil, fmt.Errorf("failed to scan film genre row: %w", err)
		}
		result[filmID] = append(result[filmID], genreID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate film genre rows: %w", err)
	}
	return result, nil
}
