package service

import (
	"context"
	"log/slog"

	"github.com/liveesee/java-filmorate/internal/domain"
	"github.com/liveesee/java-filmorate/internal/store"
)

// GenreService отдает справочник жанров. Справочник только читается,
// путей мутации у приложения нет.
type GenreService struct {
	genres store.GenreStore
	logger *slog.Logger
}

// NewGenreService создает сервис справочника жанров.
func NewGenreService(genres store.GenreStore, logger *slog.Logger) *GenreService {
	return &GenreService{genres: genres, logger: logger}
}

// FindAll возвращает все жанры по возрастанию ID.
func (s *GenreService) FindAll(ctx context.Context) ([]domain.Genre, error) {
	return s.genres.FindAll(ctx)
}

// FindByID возвращает жанр или store.ErrGenreNotFound.
func (s *GenreService) FindByID(ctx context.Context, id int) (*domain.Genre, error) {
	return s.genres.GetByID(ctx, id)
}

// MpaService отдает справочник возрастных рейтингов.
type MpaService struct {
	mpa    store.MpaStore
	logger *slog.Logger
}

// NewMpaService создает сервис справочника рейтингов.
func NewMpaService(mpa store.MpaStore, logger *slog.Logger) *MpaService {
	return &MpaService{mpa: mpa, logger: logger}
}

// FindAll возвращает все рейтинги по возрастанию ID.
func (s *MpaService) FindAll(ctx context.Context) ([]domain.Mpa, error) {
	return s.mpa.FindAll(ctx)
}

// FindByID возвращает рейтинг или store.ErrMpaNotFound.
func (s *MpaService) FindByID(ctx context.Context, id int) (*domain.Mpa, error) {
	return s.mpa.GetByID(ctx, id)
}
