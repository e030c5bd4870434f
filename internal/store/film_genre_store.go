package store

import (
	"context"
	"sync"
)

// FilmGenreStore определяет контракт связки фильмов с жанрами.
// Set полностью заменяет набор жанров фильма; пустой набор снимает все связи.
type FilmGenreStore interface {
	Set(ctx context.Context, filmID int, genreIDs []int) error
	GenreIDs(ctx context.Context, filmID int) ([]int, error)
	GenreIDsByFilmIDs(ctx context.Context, filmIDs []int) (map[int][]int, error)
}

// MemoryFilmGenreStore хранит связи фильм-жанр в памяти процесса.
type MemoryFilmGenreStore struct {
	mu     sync.RWMutex
	genres map[int]map[int]struct{}
}

// NewMemoryFilmGenreStore создает пустое in-memory хранилище связей.
func NewMemoryFilmGenreStore() *MemoryFilmGenreStore {
	return &MemoryFilmGenreStore{genres: make(map[int]map[int]struct{})}
}

func (s *MemoryFilmGenreStore) Set(ctx context.Context, filmID int, genreIDs []int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(genreIDs) == 0 {
		delete(s.genres, filmID)
		return nil
	}
	set := make(map[int]struct{}, len(genreIDs))
	for _, genreID := range genreIDs {
		set[genreID] = struct{}{}
	}
	s.genres[filmID] = set
	return nil
}

// GenreIDs возвращает ID жанров фильма по возрастанию.
func (s *MemoryFilmGenreStore) GenreIDs(ctx context.Context, filmID int) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return sortedKeys(s.genres[filmID]), nil
}

// GenreIDsByFilmIDs возвращает жанры сразу для набора фильмов; фильмы без
// жанров в результат не попадают.
func (s *MemoryFilmGenreStore) GenreIDsByFilmIDs(ctx context.Context, filmIDs []int) (map[int][]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[int][]int, len(filmIDs))
	for _, filmID := range filmIDs {
		if genres := s.genres[filmID]; len(genres) > 0 {
			result[filmID] = sortedKeys(genres)
		}
	}
	return result, nil
}
