package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/liveesee/java-filmorate/internal/domain"
	"github.com/liveesee/java-filmorate/internal/service"
)

const defaultPopularCount = 10

// ListFilms обрабатывает GET /films.
func (h *Handler) ListFilms(w http.ResponseWriter, r *http.Request) {
	films, err := h.films.FindAll(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respondJSON(w, r, http.StatusOK, films)
}

// CreateFilm обрабатывает POST /films.
func (h *Handler) CreateFilm(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateFilmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, r, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	film, err := h.films.Create(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respondJSON(w, r, http.StatusCreated, film)
}

// UpdateFilm обрабатывает PUT /films.
func (h *Handler) UpdateFilm(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateFilmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, r, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	film, err := h.films.Update(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respondJSON(w, r, http.StatusOK, film)
}

// GetFilm обрабатывает GET /films/{id}.
func (h *Handler) GetFilm(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	film, err := h.films.FindByID(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respondJSON(w, r, http.StatusOK, film)
}

// AddLike обрабатывает PUT /films/{id}/like/{userId}.
func (h *Handler) AddLike(w http.ResponseWriter, r *http.Request) {
	filmID, err := pathInt(r, "id")
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	userID, err := pathInt(r, "userId")
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	if err := h.films.AddLike(r.Context(), filmID, userID); err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respondJSON(w, r, http.StatusNoContent, nil)
}

// DeleteLike обрабатывает DELETE /films/{id}/like/{userId}.
func (h *Handler) DeleteLike(w http.ResponseWriter, r *http.Request) {
	filmID, err := pathInt(r, "id")
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	userID, err := pathInt(r, "userId")
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	if err := h.films.DeleteLike(r.Context(), filmID, userID); err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respondJSON(w, r, http.StatusNoContent, nil)
}

// PopularFilms обрабатывает GET /films/popular?count=N (по умолчанию 10).
func (h *Handler) PopularFilms(w http.ResponseWriter, r *http.Request) {
	count := defaultPopularCount
	if raw := r.URL.Query().Get("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.respondServiceError(w, r, &service.ValidationError{Message: "count must be an integer"})
			return
		}
		count = parsed
	}
	films, err := h.films.TopPopular(r.Context(), count)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respondJSON(w, r, http.StatusOK, films)
}
