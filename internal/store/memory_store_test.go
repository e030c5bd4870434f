package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liveesee/java-filmorate/internal/domain"
)

func testFilm(name string) *domain.Film {
	return &domain.Film{
		Name:        name,
		Description: "описание",
		ReleaseDate: domain.NewDate(1999, time.March, 31),
		Duration:    136,
		Mpa:         domain.Mpa{ID: 4, Name: "R"},
	}
}

func TestMemoryFilmStoreCreateAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryFilmStore()

	first := testFilm("Матрица")
	second := testFilm("Матрица: Перезагрузка")
	require.NoError(t, s.Create(ctx, first))
	require.NoError(t, s.Create(ctx, second))

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)

	got, err := s.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, *first, *got)
}

func TestMemoryFilmStoreFindAllOrderedByID(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryFilmStore()
	for _, name := range []string{"а", "б", "в"} {
		require.NoError(t, s.Create(ctx, testFilm(name)))
	}

	films, err := s.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, films, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{films[0].ID, films[1].ID, films[2].ID})
}

func TestMemoryFilmStoreUpdateMissing(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryFilmStore()

	film := testFilm("нет такого")
	film.ID = 42
	err := s.Update(ctx, film)
	assert.ErrorIs(t, err, ErrFilmNotFound)
}

func TestMemoryFilmStoreGetByIDMissing(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryFilmStore()

	_, err := s.GetByID(ctx, 7)
	assert.ErrorIs(t, err, ErrFilmNotFound)
}

func TestMemoryFilmStoreGetByIDsSkipsMissing(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryFilmStore()
	require.NoError(t, s.Create(ctx, testFilm("один")))
	require.NoError(t, s.Create(ctx, testFilm("два")))

	films, err := s.GetByIDs(ctx, []int{2, 99, 1, 2})
	require.NoError(t, err)
	require.Len(t, films, 2)
	assert.Equal(t, 1, films[0].ID)
	assert.Equal(t, 2, films[1].ID)

	empty, err := s.GetByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMemoryUserStoreUpdateOverwrites(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryUserStore()

	user := &domain.User{
		Email:    "box@example.com",
		Login:    "box",
		Name:     "Коробка",
		Birthday: domain.NewDate(1990, time.January, 1),
	}
	require.NoError(t, s.Create(ctx, user))

	user.Name = "Ящик"
	require.NoError(t, s.Update(ctx, user))

	got, err := s.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ящик", got.Name)
}

func TestMemoryLikeStoreAddIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryLikeStore()

	require.NoError(t, s.Add(ctx, 1, 10))
	require.NoError(t, s.Add(ctx, 1, 10))
	require.NoError(t, s.Add(ctx, 1, 20))

	users, err := s.UserIDs(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20}, users)
}

func TestMemoryLikeStoreDeleteMissingIsNoop(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryLikeStore()

	require.NoError(t, s.Delete(ctx, 1, 10))

	users, err := s.UserIDs(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestMemoryLikeStoreBatchLookup(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryLikeStore()
	require.NoError(t, s.Add(ctx, 1, 10))
	require.NoError(t, s.Add(ctx, 1, 20))
	require.NoError(t, s.Add(ctx, 3, 10))

	byFilm, err := s.UserIDsByFilmIDs(ctx, []int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, map[int][]int{1: {10, 20}, 3: {10}}, byFilm)

	empty, err := s.UserIDsByFilmIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMemoryFriendStoreIsDirectional(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryFriendStore()

	require.NoError(t, s.Add(ctx, 1, 2))

	friendsOfOne, err := s.FriendIDs(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, friendsOfOne)

	friendsOfTwo, err := s.FriendIDs(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, friendsOfTwo)
}

func TestMemoryFilmGenreStoreSetRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryFilmGenreStore()

	require.NoError(t, s.Set(ctx, 1, []int{2, 1}))
	genreIDs, err := s.GenreIDs(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, genreIDs)

	// пустой набор снимает все связи
	require.NoError(t, s.Set(ctx, 1, nil))
	genreIDs, err = s.GenreIDs(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, genreIDs)
}

func TestMemoryGenreStoreReferenceData(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryGenreStore(DefaultGenres())

	genres, err := s.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, genres, 6)
	assert.Equal(t, "Комедия", genres[0].Name)

	_, err = s.GetByID(ctx, 99)
	assert.ErrorIs(t, err, ErrGenreNotFound)

	found, err := s.GetByIDs(ctx, []int{6, 1, 99})
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, 1, found[0].ID)
	assert.Equal(t, 6, found[1].ID)
}

func TestMemoryMpaStoreReferenceData(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryMpaStore(DefaultMpaRatings())

	ratings, err := s.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, ratings, 5)
	assert.Equal(t, "G", ratings[0].Name)

	_, err = s.GetByID(ctx, 99)
	assert.ErrorIs(t, err, ErrMpaNotFound)
}
