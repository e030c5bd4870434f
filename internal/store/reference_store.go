package store

import (
	"context"
	"sort"

	"github.com/liveesee/java-filmorate/internal/domain"
)

// GenreStore определяет контракт справочника жанров. Справочник закрыт:
// приложение его только читает, наполнением занимается схема БД или сид.
type GenreStore interface {
	FindAll(ctx context.Context) ([]domain.Genre, error)
	GetByID(ctx context.Context, id int) (*domain.Genre, error)
	GetByIDs(ctx context.Context, ids []int) ([]domain.Genre, error)
}

// MpaStore определяет контракт справочника возрастных рейтингов.
type MpaStore interface {
	FindAll(ctx context.Context) ([]domain.Mpa, error)
	GetByID(ctx context.Context, id int) (*domain.Mpa, error)
}

// DefaultGenres возвращает стандартный набор жанров, которым сидируется
// in-memory справочник. Совпадает с сидом из migrations/schema.sql.
func DefaultGenres() []domain.Genre {
	return []domain.Genre{
		{ID: 1, Name: "Комедия"},
		{ID: 2, Name: "Драма"},
		{ID: 3, Name: "Мультфильм"},
		{ID: 4, Name: "Триллер"},
		{ID: 5, Name: "Документальный"},
		{ID: 6, Name: "Боевик"},
	}
}

// DefaultMpaRatings возвращает стандартный набор рейтингов MPA.
func DefaultMpaRatings() []domain.Mpa {
	return []domain.Mpa{
		{ID: 1, Name: "G"},
		{ID: 2, Name: "PG"},
		{ID: 3, Name: "PG-13"},
		{ID: 4, Name: "R"},
		{ID: 5, Name: "NC-17"},
	}
}

// MemoryGenreStore хранит справочник жанров в памяти. Набор фиксируется при
// создании и дальше не меняется, поэтому синхронизация не нужна.
type MemoryGenreStore struct {
	genres map[int]domain.Genre
}

// NewMemoryGenreStore создает справочник жанров с заданным набором.
func NewMemoryGenreStore(genres []domain.Genre) *MemoryGenreStore {
	byID := make(map[int]domain.Genre, len(genres))
	for _, genre := range genres {
		byID[genre.ID] = genre
	}
	return &MemoryGenreStore{genres: byID}
}

func (s *MemoryGenreStore) FindAll(ctx context.Context) ([]domain.Genre, error) {
	genres := make([]domain.Genre, 0, len(s.genres))
	for _, genre := range s.genres {
		genres = append(genres, genre)
	}
	sort.Slice(genres, func(i, j int) bool { return genres[i].ID < genres[j].ID })
	return genres, nil
}

func (s *MemoryGenreStore) GetByID(ctx context.Context, id int) (*domain.Genre, error) {
	genre, ok := s.genres[id]
	if !ok {
		return nil, ErrGenreNotFound
	}
	return &genre, nil
}

// GetByIDs возвращает только существующие жанры; отсутствующие ID
// молча пропускаются.
func (s *MemoryGenreStore) GetByIDs(ctx context.Context, ids []int) ([]domain.Genre, error) {
	genres := make([]domain.Genre, 0, len(ids))
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if genre, ok := s.genres[id]; ok {
			genres = append(genres, genre)
		}
	}
	sort.Slice(genres, func(i, j int) bool { return genres[i].ID < genres[j].ID })
	return genres, nil
}

// MemoryMpaStore хранит справочник рейтингов MPA в памяти.
type MemoryMpaStore struct {
	ratings map[int]domain.Mpa
}

// NewMemoryMpaStore создает справочник рейтингов с заданным набором.
func NewMemoryMpaStore(ratings []domain.Mpa) *MemoryMpaStore {
	byID := make(map[int]domain.Mpa, len(ratings))
	for _, mpa := range ratings {
		byID[mpa.ID] = mpa
	}
	return &MemoryMpaStore{ratings: byID}
}

func (s *MemoryMpaStore) FindAll(ctx context.Context) ([]domain.Mpa, error) {
	ratings := make([]domain.Mpa, 0, len(s.ratings))
	for _, mpa := range s.ratings {
		ratings = append(ratings, mpa)
	}
	sort.Slice(ratings, func(i, j int) bool { return ratings[i].ID < ratings[j].ID })
	return ratings, nil
}

func (s *MemoryMpaStore) GetByID(ctx context.Context, id int) (*domain.Mpa, error) {
	mpa, ok := s.ratings[id]
	if !ok {
		return nil, ErrMpaNotFound
	}
	return &mpa, nil
}
