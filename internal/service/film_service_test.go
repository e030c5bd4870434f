package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liveesee/java-filmorate/internal/domain"
	"github.com/liveesee/java-filmorate/internal/store"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServices() (*FilmService, *UserService, store.Stores) {
	stores := store.NewMemoryStores()
	validate := validator.New()
	logger := testLogger()
	return NewFilmService(stores, validate, logger), NewUserService(stores, validate, logger), stores
}

func intPtr(v int) *int                  { return &v }
func strPtr(v string) *string            { return &v }
func datePtr(d domain.Date) *domain.Date { return &d }

func validFilmRequest(name string) domain.CreateFilmRequest {
	return domain.CreateFilmRequest{
		Name:        name,
		Description: "описание",
		ReleaseDate: domain.NewDate(1999, time.March, 31),
		Duration:    intPtr(136),
		Mpa:         &domain.MpaRef{ID: 4},
	}
}

func validUserRequest(login string) domain.CreateUserRequest {
	return domain.CreateUserRequest{
		Email:    login + "@example.com",
		Login:    login,
		Name:     "Пользователь " + login,
		Birthday: domain.NewDate(1990, time.June, 15),
	}
}

func TestFilmServiceCreateAndFindByID(t *testing.T) {
	ctx := context.Background()
	films, _, _ := newTestServices()

	req := validFilmRequest("Матрица")
	req.Genres = []domain.GenreRef{{ID: 6}, {ID: 4}, {ID: 6}}

	created, err := films.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "R", created.Mpa.Name)
	require.Len(t, created.Genres, 2)
	assert.Equal(t, "Триллер", created.Genres[0].Name)
	assert.Equal(t, "Боевик", created.Genres[1].Name)
	assert.Empty(t, created.Likes)

	found, err := films.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, found.Name)
	assert.Equal(t, created.ReleaseDate, found.ReleaseDate)
	assert.Equal(t, created.Genres, found.Genres)
}

func TestFilmServiceCreateValidation(t *testing.T) {
	ctx := context.Background()

	tooLong := make([]byte, 201)
	for i := range tooLong {
		tooLong[i] = 'a'
	}

	tests := []struct {
		name   string
		mutate func(*domain.CreateFilmRequest)
	}{
		{"blank name", func(r *domain.CreateFilmRequest) { r.Name = "   " }},
		{"missing name", func(r *domain.CreateFilmRequest) { r.Name = "" }},
		{"description over 200 chars", func(r *domain.CreateFilmRequest) { r.Description = string(tooLong) }},
		{"missing release date", func(r *domain.CreateFilmRequest) { r.ReleaseDate = domain.Date{} }},
		{"release date before first film", func(r *domain.CreateFilmRequest) {
			r.ReleaseDate = domain.NewDate(1895, time.December, 27)
		}},
		{"negative duration", func(r *domain.CreateFilmRequest) { r.Duration = intPtr(-1) }},
		{"missing duration", func(r *domain.CreateFilmRequest) { r.Duration = nil }},
		{"missing mpa", func(r *domain.CreateFilmRequest) { r.Mpa = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			films, _, stores := newTestServices()
			req := validFilmRequest("Матрица")
			tt.mutate(&req)

			_, err := films.Create(ctx, req)
			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)

			all, err := stores.Films.FindAll(ctx)
			require.NoError(t, err)
			assert.Empty(t, all, "rejected request must not be stored")
		})
	}
}

func TestFilmServiceCreateBoundaryReleaseDate(t *testing.T) {
	ctx := context.Background()
	films, _, _ := newTestServices()

	req := validFilmRequest("Прибытие поезда")
	req.ReleaseDate = domain.NewDate(1895, time.December, 28)

	_, err := films.Create(ctx, req)
	assert.NoError(t, err)
}

func TestFilmServiceCreateZeroDuration(t *testing.T) {
	ctx := context.Background()
	films, _, _ := newTestServices()

	req := validFilmRequest("Пустой хронометраж")
	req.Duration = intPtr(0)

	created, err := films.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 0, created.Duration)
}

func TestFilmServiceCreateUnknownMpa(t *testing.T) {
	ctx := context.Background()
	films, _, _ := newTestServices()

	req := validFilmRequest("Матрица")
	req.Mpa = &domain.MpaRef{ID: 99}

	_, err := films.Create(ctx, req)
	assert.ErrorIs(t, err, store.ErrMpaNotFound)
}

func TestFilmServiceCreateUnknownGenre(t *testing.T) {
	ctx := context.Background()
	films, _, stores := newTestServices()

	req := validFilmRequest("Матрица")
	req.Genres = []domain.GenreRef{{ID: 1}, {ID: 99}}

	_, err := films.Create(ctx, req)
	assert.ErrorIs(t, err, store.ErrGenreNotFound)

	all, err := stores.Films.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestFilmServiceUpdatePartial(t *testing.T) {
	ctx := context.Background()
	films, _, _ := newTestServices()

	created, err := films.Create(ctx, validFilmRequest("Матрица"))
	require.NoError(t, err)

	updated, err := films.Update(ctx, domain.UpdateFilmRequest{
		ID:          created.ID,
		Description: strPtr("новое описание"),
		Duration:    intPtr(150),
	})
	require.NoError(t, err)

	// нетронутые поля сохраняются
	assert.Equal(t, "Матрица", updated.Name)
	assert.Equal(t, created.ReleaseDate, updated.ReleaseDate)
	assert.Equal(t, created.Mpa, updated.Mpa)
	assert.Equal(t, "новое описание", updated.Description)
	assert.Equal(t, 150, updated.Duration)
}

func TestFilmServiceUpdateGenres(t *testing.T) {
	ctx := context.Background()
	films, _, _ := newTestServices()

	req := validFilmRequest("Матрица")
	req.Genres = []domain.GenreRef{{ID: 1}, {ID: 2}}
	created, err := films.Create(ctx, req)
	require.NoError(t, err)

	// новый набор полностью замещает старый
	updated, err := films.Update(ctx, domain.UpdateFilmRequest{
		ID:     created.ID,
		Genres: []domain.GenreRef{{ID: 6}},
	})
	require.NoError(t, err)
	require.Len(t, updated.Genres, 1)
	assert.Equal(t, 6, updated.Genres[0].ID)

	// пустой набор снимает все жанры
	updated, err = films.Update(ctx, domain.UpdateFilmRequest{
		ID:     created.ID,
		Genres: []domain.GenreRef{},
	})
	require.NoError(t, err)
	assert.Empty(t, updated.Genres)
}

func TestFilmServiceUpdateRejections(t *testing.T) {
	ctx := context.Background()
	films, _, _ := newTestServices()

	created, err := films.Create(ctx, validFilmRequest("Матрица"))
	require.NoError(t, err)

	tests := []struct {
		name string
		req  domain.UpdateFilmRequest
	}{
		{"blank name", domain.UpdateFilmRequest{ID: created.ID, Name: strPtr("  ")}},
		{"early release date", domain.UpdateFilmRequest{
			ID:          created.ID,
			ReleaseDate: datePtr(domain.NewDate(1800, time.January, 1)),
		}},
		{"negative duration", domain.UpdateFilmRequest{ID: created.ID, Duration: intPtr(-5)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := films.Update(ctx, tt.req)
			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}

	// отказ не оставляет частичных изменений
	found, err := films.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Матрица", found.Name)
	assert.Equal(t, 136, found.Duration)
}

func TestFilmServiceUpdateMissingFilm(t *testing.T) {
	ctx := context.Background()
	films, _, _ := newTestServices()

	_, err := films.Update(ctx, domain.UpdateFilmRequest{ID: 42, Name: strPtr("нет")})
	assert.ErrorIs(t, err, store.ErrFilmNotFound)
}

func TestFilmServiceLikes(t *testing.T) {
	ctx := context.Background()
	films, users, _ := newTestServices()

	film, err := films.Create(ctx, validFilmRequest("Матрица"))
	require.NoError(t, err)
	user, err := users.Create(ctx, validUserRequest("neo"))
	require.NoError(t, err)

	require.NoError(t, films.AddLike(ctx, film.ID, user.ID))
	// повторный лайк не меняет состояния
	require.NoError(t, films.AddLike(ctx, film.ID, user.ID))

	found, err := films.FindByID(ctx, film.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{user.ID}, found.Likes)

	require.NoError(t, films.DeleteLike(ctx, film.ID, user.ID))
	// снятие отсутствующего лайка не является ошибкой
	require.NoError(t, films.DeleteLike(ctx, film.ID, user.ID))

	found, err = films.FindByID(ctx, film.ID)
	require.NoError(t, err)
	assert.Empty(t, found.Likes)
}

func TestFilmServiceLikeUnknownTargets(t *testing.T) {
	ctx := context.Background()
	films, users, _ := newTestServices()

	film, err := films.Create(ctx, validFilmRequest("Матрица"))
	require.NoError(t, err)
	user, err := users.Create(ctx, validUserRequest("neo"))
	require.NoError(t, err)

	assert.ErrorIs(t, films.AddLike(ctx, 99, user.ID), store.ErrFilmNotFound)
	assert.ErrorIs(t, films.AddLike(ctx, film.ID, 99), store.ErrUserNotFound)
	assert.ErrorIs(t, films.DeleteLike(ctx, 99, user.ID), store.ErrFilmNotFound)
	assert.ErrorIs(t, films.DeleteLike(ctx, film.ID, 99), store.ErrUserNotFound)
}

func TestFilmServiceTopPopular(t *testing.T) {
	ctx := context.Background()
	films, users, _ := newTestServices()

	likeCounts := []int{5, 3, 3, 1, 0}
	for i := range likeCounts {
		_, err := films.Create(ctx, validFilmRequest(fmt.Sprintf("Фильм %d", i+1)))
		require.NoError(t, err)
	}
	for i := 0; i < 5; i++ {
		_, err := users.Create(ctx, validUserRequest(fmt.Sprintf("user%d", i+1)))
		require.NoError(t, err)
	}
	for filmIdx, count := range likeCounts {
		for userID := 1; userID <= count; userID++ {
			require.NoError(t, films.AddLike(ctx, filmIdx+1, userID))
		}
	}

	top, err := films.TopPopular(ctx, 3)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, 1, top[0].ID)
	// при равном числе лайков порядок хранилища сохраняется
	assert.Equal(t, 2, top[1].ID)
	assert.Equal(t, 3, top[2].ID)

	// count больше числа фильмов возвращает все
	all, err := films.TopPopular(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestFilmServiceTopPopularInvalidCount(t *testing.T) {
	ctx := context.Background()
	films, _, _ := newTestServices()

	for _, count := range []int{0, -1} {
		_, err := films.TopPopular(ctx, count)
		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	}
}
