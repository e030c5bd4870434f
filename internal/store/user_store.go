package store

import (
	"context"
	"sort"
	"sync"

	"github.com/liveesee/java-filmorate/internal/domain"
)

// UserStore определяет контракт хранилища пользователей. Семантика та же,
// что у FilmStore: Create присваивает ID, Update перезаписывает целиком.
type UserStore interface {
	FindAll(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int) (*domain.User, error)
	GetByIDs(ctx context.Context, ids []int) ([]domain.User, error)
}

// MemoryUserStore хранит пользователей в памяти процесса.
type MemoryUserStore struct {
	mu     sync.RWMutex
	users  map[int]domain.User
	nextID int
}

// NewMemoryUserStore создает пустое in-memory хранилище пользователей.
func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{
		users:  make(map[int]domain.User),
		nextID: 1,
	}
}

func (s *MemoryUserStore) FindAll(ctx context.Context) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]domain.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (s *MemoryUserStore) Create(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = s.nextID
	s.nextID++
	s.users[user.ID] = *user
	return nil
}

func (s *MemoryUserStore) Update(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return ErrUserNotFound
	}
	s.users[user.ID] = *user
	return nil
}

func (s *MemoryUserStore) GetByID(ctx context.Context, id int) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

// GetByIDs возвращает только существующих пользователей; отсутствующие ID
// молча пропускаются.
func (s *MemoryUserStore) GetByIDs(ctx context.Context, ids []int) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]domain.User, 0, len(ids))
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if user, ok := s.users[id]; ok {
			users = append(users, user)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}
