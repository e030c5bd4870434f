package store

import (
	"context"
	"sync"
)

// FriendStore определяет контракт дружеских связей. Связь направленная:
// Add(a, b) делает b другом a, но не наоборот. Add и Delete идемпотентны.
type FriendStore interface {
	Add(ctx context.Context, userID, friendID int) error
	Delete(ctx context.Context, userID, friendID int) error
	FriendIDs(ctx context.Context, userID int) ([]int, error)
	FriendIDsByUserIDs(ctx context.Context, userIDs []int) (map[int][]int, error)
}

// MemoryFriendStore хранит дружеские связи в памяти процесса.
type MemoryFriendStore struct {
	mu      sync.RWMutex
	friends map[int]map[int]struct{}
}

// NewMemoryFriendStore создает пустое in-memory хранилище дружеских связей.
func NewMemoryFriendStore() *MemoryFriendStore {
	return &MemoryFriendStore{friends: make(map[int]map[int]struct{})}
}

func (s *MemoryFriendStore) Add(ctx context.Context, userID, friendID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	friends, ok := s.friends[userID]
	if !ok {
		friends = make(map[int]struct{})
		s.friends[userID] = friends
	}
	friends[friendID] = struct{}{}
	return nil
}

func (s *MemoryFriendStore) Delete(ctx context.Context, userID, friendID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.friends[userID], friendID)
	return nil
}

// FriendIDs возвращает ID друзей пользователя по возрастанию.
func (s *MemoryFriendStore) FriendIDs(ctx context.Context, userID int) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return sortedKeys(s.friends[userID]), nil
}

// FriendIDsByUserIDs возвращает друзей сразу для набора пользователей;
// пользователи без друзей в результат не попадают.
func (s *MemoryFriendStore) FriendIDsByUserIDs(ctx context.Context, userIDs []int) (map[int][]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[int][]int, len(userIDs))
	for _, userID := range userIDs {
		if friends := s.friends[userID]; len(friends) > 0 {
			result[userID] = sortedKeys(friends)
		}
	}
	return result, nil
}
