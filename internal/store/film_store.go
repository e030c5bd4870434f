package store

import (
	"context"
	"sort"
	"sync"

	"github.com/liveesee/java-filmorate/internal/domain"
)

// FilmStore определяет контракт хранилища фильмов. Create присваивает
// идентификатор, Update перезаписывает все скалярные поля целиком; слиянием
// частичных обновлений занимается сервисный слой.
type FilmStore interface {
	FindAll(ctx context.Context) ([]domain.Film, error)
	Create(ctx context.Context, film *domain.Film) error
	Update(ctx context.Context, film *domain.Film) error
	GetByID(ctx context.Context, id int) (*domain.Film, error)
	GetByIDs(ctx context.Context, ids []int) ([]domain.Film, error)
}

// MemoryFilmStore хранит фильмы в памяти процесса. Идентификаторы выдает
// монотонный счетчик под мьютексом.
type MemoryFilmStore struct {
	mu     sync.RWMutex
	films  map[int]domain.Film
	nextID int
}

// NewMemoryFilmStore создает пустое in-memory хранилище фильмов.
func NewMemoryFilmStore() *MemoryFilmStore {
	return &MemoryFilmStore{
		films:  make(map[int]domain.Film),
		nextID: 1,
	}
}

// FindAll возвращает все фильмы в порядке возрастания ID, что совпадает
// с порядком вставки.
func (s *MemoryFilmStore) FindAll(ctx context.Context) ([]domain.Film, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	films := make([]domain.Film, 0, len(s.films))
	for _, film := range s.films {
		films = append(films, film)
	}
	sort.Slice(films, func(i, j int) bool { return films[i].ID < films[j].ID })
	return films, nil
}

func (s *MemoryFilmStore) Create(ctx context.Context, film *domain.Film) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	film.ID = s.nextID
	s.nextID++
	s.films[film.ID] = *film
	return nil
}

func (s *MemoryFilmStore) Update(ctx context.Context, film *domain.Film) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.films[film.ID]; !ok {
		return ErrFilmNotFound
	}
	s.films[film.ID] = *film
	return nil
}

func (s *MemoryFilmStore) GetByID(ctx context.Context, id int) (*domain.Film, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	film, ok := s.films[id]
	if !ok {
		return nil, ErrFilmNotFound
	}
	return &film, nil
}

// GetByIDs возвращает только существующие фильмы; отсутствующие ID
// молча пропускаются.
func (s *MemoryFilmStore) GetByIDs(ctx context.Context, ids []int) ([]domain.Film, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	films := make([]domain.Film, 0, len(ids))
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if film, ok := s.films[id]; ok {
			films = append(films, film)
		}
	}
	sort.Slice(films, func(i, j int) bool { return films[i].ID < films[j].ID })
	return films, nil
}
