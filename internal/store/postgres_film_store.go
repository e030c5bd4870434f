package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/liveesee/java-filmorate/internal/domain"
)

// PostgresFilmStore реализует FilmStore для PostgreSQL. Название рейтинга
// подтягивается JOIN-ом со справочной таблицей mpa.
type PostgresFilmStore struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewPostgresFilmStore создает хранилище фильмов поверх подключения к БД.
func NewPostgresFilmStore(db *sqlx.DB, logger *slog.Logger) *PostgresFilmStore {
	return &PostgresFilmStore{db: db, logger: logger}
}

const selectFilmColumns = `f.id, f.name, f.description, f.release_date, f.duration,
       m.id AS "mpa.id", m.name AS "mpa.name"`

func (s *PostgresFilmStore) FindAll(ctx context.Context) ([]domain.Film, error) {
	query := `SELECT ` + selectFilmColumns + `
              FROM films AS f JOIN mpa AS m ON m.id = f.mpa_id
              ORDER BY f.id`
	films := []domain.Film{}

	s.logger.DebugContext(ctx, "Executing FindAll films query")
	if err := s.db.SelectContext(ctx, &films, query); err != nil {
		s.logger.ErrorContext(ctx, "Failed to list films from DB", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list films: %w", err)
	}
	return films, nil
}

// Create вставляет строку фильма и записывает сгенерированный БД ключ
// обратно в film.ID.
func (s *PostgresFilmStore) Create(ctx context.Context, film *domain.Film) error {
	query := `INSERT INTO films (name, description, release_date, duration, mpa_id)
              VALUES ($1, $2, $3, $4, $5)
              RETURNING id`

	s.logger.DebugContext(ctx, "Executing Create film query", slog.String("name", film.Name))
	err := s.db.QueryRowContext(ctx, query,
		film.Name, film.Description, film.ReleaseDate, film.Duration, film.Mpa.ID,
	).Scan(&film.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" { // foreign_key_violation
			s.logger.WarnContext(ctx, "Film create failed: mpa id does not exist",
				slog.Int("mpaID", film.Mpa.ID), slog.String("constraint", pqErr.Constraint))
			return ErrMpaNotFound
		}
		s.logger.ErrorContext(ctx, "Failed to create film in DB", slog.String("error", err.Error()))
		return fmt.Errorf("failed to create film: %w", err)
	}
	s.logger.InfoContext(ctx, "Film created in DB", slog.Int("filmID", film.ID))
	return nil
}

// Update перезаписывает все скалярные колонки фильма.
func (s *PostgresFilmStore) Update(ctx context.Context, film *domain.Film) error {
	query := `UPDATE films
              SET name = $1, description = $2, release_date = $3, duration = $4, mpa_id = $5
              WHERE id = $6`

	s.logger.DebugContext(ctx, "Executing Update film query", slog.Int("filmID", film.ID))
	result, err := s.db.ExecContext(ctx, query,
		film.Name, film.Description, film.ReleaseDate, film.Duration, film.Mpa.ID, film.ID,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			s.logger.WarnContext(ctx, "Film update failed: mpa id does not exist",
				slog.Int("mpaID", film.Mpa.ID), slog.String("constraint", pqErr.Constraint))
			return ErrMpaNotFound
		}
		s.logger.ErrorContext(ctx, "Failed to update film in DB", slog.Int("filmID", film.ID), slog.String("error", err.Error()))
		return fmt.Errorf("failed to update film: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rowsAffected == 0 {
		s.logger.WarnContext(ctx, "No film found to update in DB", slog.Int("filmID", film.ID))
		return ErrFilmNotFound
	}
	return nil
}

func (s *PostgresFilmStore) GetByID(ctx context.Context, id int) (*domain.Film, error) {
	query := `SELECT ` + selectFilmColumns + `
              FROM films AS f JOIN mpa AS m ON m.id = f.mpa_id
              WHERE f.id = $1`
	var film domain.Film

	s.logger.DebugContext(ctx, "Executing GetFilmByID query", slog.Int("filmID", id))
	if err := s.db.GetContext(ctx, &film, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.WarnContext(ctx, "Film not found by ID in DB", slog.Int("filmID", id))
			return nil, ErrFilmNotFound
		}
		s.logger.ErrorContext(ctx, "Failed to get film by ID from DB", slog.Int("filmID", id), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to get film by ID: %w", err)
	}
	return &film, nil
}

// GetByIDs возвращает только существующие фильмы, отсутствующие ID
// молча пропускаются.
func (s *PostgresFilmStore) GetByIDs(ctx context.Context, ids []int) ([]domain.Film, error) {
	if len(ids) == 0 {
		return []domain.Film{}, nil
	}
	query, args, err := sqlx.In(`SELECT `+selectFilmColumns+`
              FROM films AS f JOIN mpa AS m ON m.id = f.mpa_id
              WHERE f.id IN (?)
              ORDER BY f.id`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build films IN query: %w", err)
	}
	query = s.db.Rebind(query)

	films := []domain.Film{}
	if err := s.db.SelectContext(ctx, &films, query, args...); err != nil {
		s.logger.ErrorContext(ctx, "Failed to get films by IDs from DB", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to get films by IDs: %w", err)
	}
	return films, nil
}
