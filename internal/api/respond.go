package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/liveesee/java-filmorate/internal/service"
	"github.com/liveesee/java-filmorate/internal/store"
)

// Handler объединяет HTTP-обработчики поверх сервисного слоя.
type Handler struct {
	films  *service.FilmService
	users  *service.UserService
	genres *service.GenreService
	mpa    *service.MpaService
	logger *slog.Logger
}

// NewHandler создает набор HTTP-обработчиков.
func NewHandler(films *service.FilmService, users *service.UserService, genres *service.GenreService, mpa *service.MpaService, logger *slog.Logger) *Handler {
	return &Handler{
		films:  films,
		users:  users,
		genres: genres,
		mpa:    mpa,
		logger: logger,
	}
}

func (h *Handler) respondJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			h.logger.ErrorContext(r.Context(), "Failed to encode JSON response",
				slog.String("error", err.Error()), slog.String("path", r.URL.Path))
		}
	}
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	h.respondJSON(w, r, status, map[string]string{"error": message})
}

// respondServiceError переводит ошибки сервисного слоя в HTTP-статусы:
// ошибка валидации в 400, отсутствующая сущность в 404, остальное в 500.
func (h *Handler) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		h.respondError(w, r, http.StatusBadRequest, vErr.Message)
	case errors.Is(err, store.ErrFilmNotFound),
		errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrGenreNotFound),
		errors.Is(err, store.ErrMpaNotFound):
		h.respondError(w, r, http.StatusNotFound, err.Error())
	default:
		h.logger.ErrorContext(r.Context(), "Unhandled service error",
			slog.String("error", err.Error()), slog.String("path", r.URL.Path))
		h.respondError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

// pathInt извлекает целочисленный path-параметр запроса.
func pathInt(r *http.Request, name string) (int, error) {
	value, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil {
		return 0, &service.ValidationError{Message: name + " must be an integer"}
	}
	return value, nil
}
