package api

import "net/http"

// ListGenres обрабатывает GET /genres.
func (h *Handler) ListGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.genres.FindAll(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respondJSON(w, r, http.StatusOK, genres)
}

// GetGenre обрабатывает GET /genres/{id}.
func (h *Handler) GetGenre(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	genre, err := h.genres.FindByID(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respondJSON(w, r, http.StatusOK, genre)
}

// ListMpa обрабатывает GET /mpa.
func (h *Handler) ListMpa(w http.ResponseWriter, r *http.Request) {
	ratings, err := h.mpa.FindAll(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respondJSON(w, r, http.StatusOK, ratings)
}

// GetMpa обрабатывает GET /mpa/{id}.
func (h *Handler) GetMpa(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	mpa, err := h.mpa.FindByID(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respondJSON(w, r, http.StatusOK, mpa)
}
