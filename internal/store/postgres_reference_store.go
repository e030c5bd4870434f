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

// PostgresGenreStore реализует GenreStore для PostgreSQL.
type PostgresGenreStore struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewPostgresGenreStore создает справочник жанров поверх подключения к БД.
func NewPostgresGenreStore(db *sqlx.DB, logger *slog.Logger) *PostgresGenreStore {
	return &PostgresGenreStore{db: db, logger: logger}
}

func (s *PostgresGenreStore) FindAll(ctx context.Context) ([]domain.Genre, error) {
	query := `SELECT id, name FROM genres ORDER BY id`
	genres := []domain.Genre{}

	if err := s.db.SelectContext(ctx, &genres, query); err != nil {
		s.logger.ErrorContext(ctx, "Failed to list genres from DB", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list genres: %w", err)
	}
	return genres, nil
}

func (s *PostgresGenreStore) GetByID(ctx context.Context, id int) (*domain.Genre, error) {
	query := `SELECT id, name FROM genres WHERE id = $1`
	var genre domain.Genre

	if err := s.db.GetContext(ctx, &genre, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.WarnContext(ctx, "Genre not found by ID in DB", slog.Int("genreID", id))
			return nil, ErrGenreNotFound
		}
		s.logger.ErrorContext(ctx, "Failed to get genre by ID from DB", slog.Int("genreID", id), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to get genre by ID: %w", err)
	}
	return &genre, nil
}

// GetByIDs возвращает только существующие жанры, отсутствующие ID
// молча пропускаются.
func (s *PostgresGenreStore) GetByIDs(ctx context.Context, ids []int) ([]domain.Genre, error) {
	if len(ids) == 0 {
		return []domain.Genre{}, nil
	}
	query, args, err := sqlx.In(`SELECT id, name FROM genres WHERE id IN (?) ORDER BY id`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build genres IN query: %w", err)
	}
	query = s.db.Rebind(query)

	genres := []domain.Genre{}
	if err := s.db.SelectContext(ctx, &genres, query, args...); err != nil {
		s.logger.ErrorContext(ctx, "Failed to get genres by IDs from DB", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to get genres by IDs: %w", err)
	}
	return genres, nil
}

// PostgresMpaStore реализует MpaStore для PostgreSQL.
type PostgresMpaStore struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewPostgresMpaStore создает справочник рейтингов поверх подключения к БД.
func NewPostgresMpaStore(db *sqlx.DB, logger *slog.Logger) *PostgresMpaStore {
	return &PostgresMpaStore{db: db, logger: logger}
}

func (s *PostgresMpaStore) FindAll(ctx context.Context) ([]domain.Mpa, error) {
	query := `SELECT id, name FROM mpa ORDER BY id`
	ratings := []domain.Mpa{}

	if err := s.db.SelectContext(ctx, &ratings, query); err != nil {
		s.logger.ErrorContext(ctx, "Failed to list mpa ratings from DB", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list mpa ratings: %w", err)
	}
	return ratings, nil
}

func (s *PostgresMpaStore) GetByID(ctx context.Context, id int) (*domain.Mpa, error) {
	query := `SELECT id, name FROM mpa WHERE id = $1`
	var mpa domain.Mpa

	if err := s.db.GetContext(ctx, &mpa, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.WarnContext(ctx, "Mpa rating not found by ID in DB", slog.Int("mpaID", id))
			return nil, ErrMpaNotFound
		}
		s.logger.ErrorContext(ctx, "Failed to get mpa rating by ID from DB", slog.Int("mpaID", id), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to get mpa rating by ID: %w", err)
	}
	return &mpa, nil
}
