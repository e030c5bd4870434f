package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/liveesee/java-filmorate/internal/domain"
	"github.com/liveesee/java-filmorate/internal/store"
)

// Дата выхода первого в истории фильма; более ранние даты релиза отклоняются.
var firstFilmReleaseDate = domain.NewDate(1895, time.December, 28)

// FilmService содержит бизнес-логику работы с фильмами: валидацию запросов,
// проверку ссылок на справочники и обогащение фильмов жанрами и лайками.
type FilmService struct {
	stores   store.Stores
	validate *validator.Validate
	logger   *slog.Logger
}

// NewFilmService создает сервис фильмов.
func NewFilmService(stores store.Stores, validate *validator.Validate, logger *slog.Logger) *FilmService {
	return &FilmService{
		stores:   stores,
		validate: validate,
		logger:   logger,
	}
}

// FindAll возвращает все фильмы, обогащенные жанрами и лайками. Связи
// подтягиваются батчевыми запросами, чтобы не делать N+1 обращений.
func (s *FilmService) FindAll(ctx context.Context) ([]domain.Film, error) {
	films, err := s.stores.Films.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.enrichFilms(ctx, films)
}

// Create валидирует запрос, проверяет ссылки на рейтинг и жанры, сохраняет
// фильм и его жанровые связи.
func (s *FilmService) Create(ctx context.Context, req domain.CreateFilmRequest) (*domain.Film, error) {
	if err := s.validate.StructCtx(ctx, req); err != nil {
		s.logger.WarnContext(ctx, "Film create request validation failed", slog.String("error", err.Error()))
		return nil, &ValidationError{Message: "validation failed: " + err.Error()}
	}
	if err := validateFilmFields(req.Name, req.ReleaseDate); err != nil {
		s.logger.WarnContext(ctx, "Film create request validation failed", slog.String("error", err.Error()))
		return nil, err
	}

	mpa, err := s.stores.Mpa.GetByID(ctx, req.Mpa.ID)
	if err != nil {
		return nil, err
	}
	genreIDs := uniqueRefIDs(req.Genres)
	genres, err := s.resolveGenres(ctx, genreIDs)
	if err != nil {
		return nil, err
	}

	film := &domain.Film{
		Name:        req.Name,
		Description: req.Description,
		ReleaseDate: req.ReleaseDate,
		Duration:    *req.Duration,
		Mpa:         *mpa,
	}
	if err := s.stores.Films.Create(ctx, film); err != nil {
		return nil, err
	}
	if len(genreIDs) > 0 {
		if err := s.stores.FilmGenres.Set(ctx, film.ID, genreIDs); err != nil {
			return nil, err
		}
	}
	film.Genres = genres
	film.Likes = []int{}

	s.logger.InfoContext(ctx, "Film created", slog.Int("filmID", film.ID), slog.String("name", film.Name))
	return film, nil
}

// Update применяет частичное обновление: загружает существующий фильм,
// накладывает только переданные поля и перезаписывает результат целиком.
// Оба бэкенда хранилища ведут себя при этом одинаково.
func (s *FilmService) Update(ctx context.Context, req domain.UpdateFilmRequest) (*domain.Film, error) {
	if err := s.validate.StructCtx(ctx, req); err != nil {
		s.logger.WarnContext(ctx, "Film update request validation failed", slog.String("error", err.Error()))
		return nil, &ValidationError{Message: "validation failed: " + err.Error()}
	}

	existing, err := s.stores.Films.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, validationErrorf("film name must not be blank")
		}
		existing.Name = *req.Name
	}
	if req.Description != nil {
		existing.Description = *req.Description
	}
	if req.ReleaseDate != nil {
		if req.ReleaseDate.Before(firstFilmReleaseDate) {
			return nil, validationErrorf("release date must not be before %s", firstFilmReleaseDate)
		}
		existing.ReleaseDate = *req.ReleaseDate
	}
	if req.Duration != nil {
		if *req.Duration < 0 {
			return nil, validationErrorf("duration must not be negative")
		}
		existing.Duration = *req.Duration
	}
	if req.Mpa != nil {
		mpa, err := s.stores.Mpa.GetByID(ctx, req.Mpa.ID)
		if err != nil {
			return nil, err
		}
		existing.Mpa = *mpa
	}

	// Все проверки ссылок выполняются до первой мутации, чтобы отказ
	// не оставил частично примененного обновления.
	genresSupplied := req.Genres != nil
	var genreIDs []int
	if genresSupplied {
		genreIDs = uniqueRefIDs(req.Genres)
		if _, err := s.resolveGenres(ctx, genreIDs); err != nil {
			return nil, err
		}
	}

	if genresSupplied {
		if err := s.stores.FilmGenres.Set(ctx, req.ID, genreIDs); err != nil {
			return nil, err
		}
	}
	if err := s.stores.Films.Update(ctx, existing); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "Film updated", slog.Int("filmID", existing.ID), slog.String("name", existing.Name))
	return s.enrichFilm(ctx, existing)
}

// FindByID возвращает фильм, обогащенный жанрами и лайками.
func (s *FilmService) FindByID(ctx context.Context, id int) (*domain.Film, error) {
	film, err := s.stores.Films.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.enrichFilm(ctx, film)
}

// AddLike ставит лайк фильму от имени пользователя. Оба должны существовать;
// повторный лайк не является ошибкой.
func (s *FilmService) AddLike(ctx context.Context, filmID, userID int) error {
	if _, err := s.stores.Users.GetByID(ctx, userID); err != nil {
		return err
	}
	if _, err := s.stores.Films.GetByID(ctx, filmID); err != nil {
		return err
	}
	if err := s.stores.Likes.Add(ctx, filmID, userID); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "Like added", slog.Int("filmID", filmID), slog.Int("userID", userID))
	return nil
}

// DeleteLike снимает лайк. Удаление отсутствующего лайка не является ошибкой.
func (s *FilmService) DeleteLike(ctx context.Context, filmID, userID int) error {
	if _, err := s.stores.Users.GetByID(ctx, userID); err != nil {
		return err
	}
	if _, err := s.stores.Films.GetByID(ctx, filmID); err != nil {
		return err
	}
	if err := s.stores.Likes.Delete(ctx, filmID, userID); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "Like removed", slog.Int("filmID", filmID), slog.Int("userID", userID))
	return nil
}

// TopPopular возвращает count фильмов с наибольшим числом лайков. При равном
// числе лайков сохраняется естественный порядок хранилища.
func (s *FilmService) TopPopular(ctx context.Context, count int) ([]domain.Film, error) {
	if count < 1 {
		return nil, validationErrorf("popular films count must be positive, got %d", count)
	}
	films, err := s.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(films, func(i, j int) bool {
		return len(films[i].Likes) > len(films[j].Likes)
	})
	if len(films) > count {
		films = films[:count]
	}
	return films, nil
}

func (s *FilmService) enrichFilm(ctx context.Context, film *domain.Film) (*domain.Film, error) {
	films, err := s.enrichFilms(ctx, []domain.Film{*film})
	if err != nil {
		return nil, err
	}
	return &films[0], nil
}

// enrichFilms заполняет жанры и лайки для набора фильмов тремя батчевыми
// запросами: связи фильм-жанр, лайки и имена жанров.
func (s *FilmService) enrichFilms(ctx context.Context, films []domain.Film) ([]domain.Film, error) {
	if len(films) == 0 {
		return films, nil
	}
	filmIDs := make([]int, 0, len(films))
	for _, film := range films {
		filmIDs = append(filmIDs, film.ID)
	}

	genreIDsByFilm, err := s.stores.FilmGenres.GenreIDsByFilmIDs(ctx, filmIDs)
	if err != nil {
		return nil, err
	}
	likesByFilm, err := s.stores.Likes.UserIDsByFilmIDs(ctx, filmIDs)
	if err != nil {
		return nil, err
	}

	allGenreIDs := make([]int, 0)
	for _, genreIDs := range genreIDsByFilm {
		allGenreIDs = append(allGenreIDs, genreIDs...)
	}
	genres, err := s.stores.Genres.GetByIDs(ctx, allGenreIDs)
	if err != nil {
		return nil, err
	}
	genreByID := make(map[int]domain.Genre, len(genres))
	for _, genre := range genres {
		genreByID[genre.ID] = genre
	}

	for i := range films {
		film := &films[i]
		filmGenreIDs := genreIDsByFilm[film.ID]
		film.Genres = make([]domain.Genre, 0, len(filmGenreIDs))
		for _, genreID := range filmGenreIDs {
			if genre, ok := genreByID[genreID]; ok {
				film.Genres = append(film.Genres, genre)
			}
		}
		film.Likes = likesByFilm[film.ID]
		if film.Likes == nil {
			film.Likes = []int{}
		}
	}
	return films, nil
}

// resolveGenres проверяет, что каждый ID ссылается на существующий жанр,
// и возвращает полные записи справочника.
func (s *FilmService) resolveGenres(ctx context.Context, genreIDs []int) ([]domain.Genre, error) {
	if len(genreIDs) == 0 {
		return []domain.Genre{}, nil
	}
	genres, err := s.stores.Genres.GetByIDs(ctx, genreIDs)
	if err != nil {
		return nil, err
	}
	if len(genres) != len(genreIDs) {
		found := make(map[int]bool, len(genres))
		for _, genre := range genres {
			found[genre.ID] = true
		}
		for _, genreID := range genreIDs {
			if !found[genreID] {
				return nil, fmt.Errorf("genre with id %d: %w", genreID, store.ErrGenreNotFound)
			}
		}
	}
	return genres, nil
}

func validateFilmFields(name string, releaseDate domain.Date) error {
	if strings.TrimSpace(name) == "" {
		return validationErrorf("film name must not be blank")
	}
	if releaseDate.IsZero() {
		return validationErrorf("release date must be provided")
	}
	if releaseDate.Before(firstFilmReleaseDate) {
		return validationErrorf("release date must not be before %s", firstFilmReleaseDate)
	}
	return nil
}

func uniqueRefIDs(refs []domain.GenreRef) []int {
	ids := make([]int, 0, len(refs))
	seen := make(map[int]bool, len(refs))
	for _, ref := range refs {
		if seen[ref.ID] {
			continue
		}
		seen[ref.ID] = true
		ids = append(ids, ref.ID)
	}
	sort.Ints(ids)
	return ids
}
