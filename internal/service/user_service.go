package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/liveesee/java-filmorate/internal/domain"
	"github.com/liveesee/java-filmorate/internal/store"
)

// UserService содержит бизнес-логику работы с пользователями и дружескими
// связями. Дружба направленная: добавление друга не делает связь взаимной.
type UserService struct {
	stores   store.Stores
	validate *validator.Validate
	logger   *slog.Logger
}

// NewUserService создает сервис пользователей.
func NewUserService(stores store.Stores, validate *validator.Validate, logger *slog.Logger) *UserService {
	return &UserService{
		stores:   stores,
		validate: validate,
		logger:   logger,
	}
}

// FindAll возвращает всех пользователей с заполненными списками друзей.
func (s *UserService) FindAll(ctx context.Context) ([]domain.User, error) {
	users, err := s.stores.Users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return users, nil
	}

	userIDs := make([]int, 0, len(users))
	for _, user := range users {
		userIDs = append(userIDs, user.ID)
	}
	friendsByUser, err := s.stores.Friends.FriendIDsByUserIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].Friends = friendsByUser[users[i].ID]
		if users[i].Friends == nil {
			users[i].Friends = []int{}
		}
	}
	return users, nil
}

// Create валидирует запрос и сохраняет пользователя. Пустое имя заменяется
// логином.
func (s *UserService) Create(ctx context.Context, req domain.CreateUserRequest) (*domain.User, error) {
	if err := s.validate.StructCtx(ctx, req); err != nil {
		s.logger.WarnContext(ctx, "User create request validation failed", slog.String("error", err.Error()))
		return nil, &ValidationError{Message: "validation failed: " + err.Error()}
	}
	if err := validateUserFields(req.Email, req.Login, req.Birthday); err != nil {
		s.logger.WarnContext(ctx, "User create request validation failed", slog.String("error", err.Error()))
		return nil, err
	}

	name := req.Name
	if strings.TrimSpace(name) == "" {
		name = req.Login
	}
	user := &domain.User{
		Email:    req.Email,
		Login:    req.Login,
		Name:     name,
		Birthday: req.Birthday,
	}
	if err := s.stores.Users.Create(ctx, user); err != nil {
		return nil, err
	}
	user.Friends = []int{}

	s.logger.InfoContext(ctx, "User created", slog.Int("userID", user.ID), slog.String("login", user.Login))
	return user, nil
}

// Update применяет частичное обновление: загружает существующего
// пользователя, накладывает только переданные поля и перезаписывает результат
// целиком. Переданное пустое имя сбрасывается к логину.
func (s *UserService) Update(ctx context.Context, req domain.UpdateUserRequest) (*domain.User, error) {
	if err := s.validate.StructCtx(ctx, req); err != nil {
		s.logger.WarnContext(ctx, "User update request validation failed", slog.String("error", err.Error()))
		return nil, &ValidationError{Message: "validation failed: " + err.Error()}
	}

	existing, err := s.stores.Users.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		if strings.TrimSpace(*req.Email) == "" || !strings.Contains(*req.Email, "@") {
			return nil, validationErrorf("email must not be blank and must contain @")
		}
		existing.Email = *req.Email
	}
	if req.Login != nil {
		if strings.TrimSpace(*req.Login) == "" || strings.Contains(*req.Login, " ") {
			return nil, validationErrorf("login must not be blank or contain spaces")
		}
		existing.Login = *req.Login
	}
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			existing.Name = existing.Login
		} else {
			existing.Name = *req.Name
		}
	}
	if req.Birthday != nil {
		if req.Birthday.After(domain.Today()) {
			return nil, validationErrorf("birthday must not be in the future")
		}
		existing.Birthday = *req.Birthday
	}

	if err := s.stores.Users.Update(ctx, existing); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "User updated", slog.Int("userID", existing.ID), slog.String("login", existing.Login))
	return s.enrichUser(ctx, existing)
}

// FindByID возвращает пользователя с заполненным списком друзей.
func (s *UserService) FindByID(ctx context.Context, id int) (*domain.User, error) {
	user, err := s.stores.Users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.enrichUser(ctx, user)
}

// AddFriend устанавливает направленную дружескую связь. Добавить в друзья
// самого себя нельзя; оба пользователя должны существовать.
func (s *UserService) AddFriend(ctx context.Context, userID, friendID int) error {
	if userID == friendID {
		return validationErrorf("user cannot befriend themselves")
	}
	if _, err := s.stores.Users.GetByID(ctx, userID); err != nil {
		return err
	}
	if _, err := s.stores.Users.GetByID(ctx, friendID); err != nil {
		return err
	}
	if err := s.stores.Friends.Add(ctx, userID, friendID); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "Friend added", slog.Int("userID", userID), slog.Int("friendID", friendID))
	return nil
}

// DeleteFriend снимает дружескую связь. Удаление несуществующей связи
// не является ошибкой.
func (s *UserService) DeleteFriend(ctx context.Context, userID, friendID int) error {
	if _, err := s.stores.Users.GetByID(ctx, userID); err != nil {
		return err
	}
	if _, err := s.stores.Users.GetByID(ctx, friendID); err != nil {
		return err
	}
	if err := s.stores.Friends.Delete(ctx, userID, friendID); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "Friend removed", slog.Int("userID", userID), slog.Int("friendID", friendID))
	return nil
}

// Friends возвращает полные записи всех друзей пользователя.
func (s *UserService) Friends(ctx context.Context, userID int) ([]domain.User, error) {
	if _, err := s.stores.Users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	friendIDs, err := s.stores.Friends.FriendIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.stores.Users.GetByIDs(ctx, friendIDs)
}

// CommonFriends возвращает пересечение множеств друзей двух пользователей,
// разрешенное в полные записи.
func (s *UserService) CommonFriends(ctx context.Context, userID, otherID int) ([]domain.User, error) {
	if _, err := s.stores.Users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := s.stores.Users.GetByID(ctx, otherID); err != nil {
		return nil, err
	}

	userFriends, err := s.stores.Friends.FriendIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	otherFriends, err := s.stores.Friends.FriendIDs(ctx, otherID)
	if err != nil {
		return nil, err
	}

	otherSet := make(map[int]bool, len(otherFriends))
	for _, friendID := range otherFriends {
		otherSet[friendID] = true
	}
	commonIDs := make([]int, 0)
	for _, friendID := range userFriends {
		if otherSet[friendID] {
			commonIDs = append(commonIDs, friendID)
		}
	}
	return s.stores.Users.GetByIDs(ctx, commonIDs)
}

func (s *UserService) enrichUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	friendIDs, err := s.stores.Friends.FriendIDs(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	user.Friends = friendIDs
	return user, nil
}

func validateUserFields(email, login string, birthday domain.Date) error {
	if strings.TrimSpace(email) == "" || !strings.Contains(email, "@") {
		return validationErrorf("email must not be blank and must contain @")
	}
	if strings.TrimSpace(login) == "" || strings.Contains(login, " ") {
		return validationErrorf("login must not be blank or contain spaces")
	}
	if birthday.IsZero() {
		return validationErrorf("birthday must be provided")
	}
	if birthday.After(domain.Today()) {
		return validationErrorf("birthday must not be in the future")
	}
	return nil
}
