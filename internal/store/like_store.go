package store

import (
	"context"
	"sort"
	"sync"
)

// LikeStore определяет контракт связки "пользователь лайкнул фильм".
// Add и Delete идемпотентны: повторный лайк и удаление отсутствующего
// лайка не являются ошибкой.
type LikeStore interface {
	Add(ctx context.Context, filmID, userID int) error
	Delete(ctx context.Context, filmID, userID int) error
	UserIDs(ctx context.Context, filmID int) ([]int, error)
	UserIDsByFilmIDs(ctx context.Context, filmIDs []int) (map[int][]int, error)
}

// MemoryLikeStore хранит лайки в памяти процесса.
type MemoryLikeStore struct {
	mu    sync.RWMutex
	likes map[int]map[int]struct{}
}

// NewMemoryLikeStore создает пустое in-memory хранилище лайков.
func NewMemoryLikeStore() *MemoryLikeStore {
	return &MemoryLikeStore{likes: make(map[int]map[int]struct{})}
}

func (s *MemoryLikeStore) Add(ctx context.Context, filmID, userID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, ok := s.likes[filmID]
	if !ok {
		users = make(map[int]struct{})
		s.likes[filmID] = users
	}
	users[userID] = struct{}{}
	return nil
}

func (s *MemoryLikeStore) Delete(ctx context.Context, filmID, userID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.likes[filmID], userID)
	return nil
}

// UserIDs возвращает ID пользователей, лайкнувших фильм, по возрастанию.
func (s *MemoryLikeStore) UserIDs(ctx context.Context, filmID int) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return sortedKeys(s.likes[filmID]), nil
}

// UserIDsByFilmIDs возвращает лайки сразу для набора фильмов; фильмы без
// лайков в результат не попадают.
func (s *MemoryLikeStore) UserIDsByFilmIDs(ctx context.Context, filmIDs []int) (map[int][]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[int][]int, len(filmIDs))
	for _, filmID := range filmIDs {
		if users := s.likes[filmID]; len(users) > 0 {
			result[filmID] = sortedKeys(users)
		}
	}
	return result, nil
}

func sortedKeys(set map[int]struct{}) []int {
	keys := make([]int, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Ints(keys)
	return keys
}
