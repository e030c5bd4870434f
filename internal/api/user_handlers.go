package api

import (
	"encoding/json"
	"net/http"

	"github.com/liveesee/java-filmorate/internal/domain"
)

// ListUsers обрабатывает GET /users.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.FindAll(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respondJSON(w, r, http.StatusOK, users)
}

// CreateUser обрабатывает POST /users.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, r, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	user, err := h.users.Create(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respondJSON(w, r, http.StatusCreated, user)
}

// UpdateUser обрабатывает PUT /users.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, r, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	user, err := h.users.Update(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respondJSON(w, r, http.StatusOK, user)
}

// GetUser обрабатывает GET /users/{id}.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	user, err := h.users.FindByID(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respondJSON(w, r, http.StatusOK, user)
}

// AddFriend обрабатывает PUT /users/{id}/friends/{friendId}.
func (h *Handler) AddFriend(w http.ResponseWriter, r *http.Request) {
	userID, err := pathInt(r, "id")
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	friendID, err := pathInt(r, "friendId")
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	if err := h.users.AddFriend(r.Context(), userID, friendID); err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respondJSON(w, r, http.StatusNoContent, nil)
}

// DeleteFriend обрабатывает DELETE /users/{id}/friends/{friendId}.
func (h *Handler) DeleteFriend(w http.ResponseWriter, r *http.Request) {
	userID, err := pathInt(r, "id")
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	friendID, err := pathInt(r, "friendId")
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	if err := h.users.DeleteFriend(r.Context(), userID, friendID); err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respondJSON(w, r, http.StatusNoContent, nil)
}

// ListFriends обрабатывает GET /users/{id}/friends.
func (h *Handler) ListFriends(w http.ResponseWriter, r *http.Request) {
	userID, err := pathInt(r, "id")
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	friends, err := h.users.Friends(r.Context(), userID)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respondJSON(w, r, http.StatusOK, friends)
}

// CommonFriends обрабатывает GET /users/{id}/friends/common/{otherId}.
func (h *Handler) CommonFriends(w http.ResponseWriter, r *http.Request) {
	userID, err := pathInt(r, "id")
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	otherID, err := pathInt(r, "otherId")
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	common, err := h.users.CommonFriends(r.Context(), userID, otherID)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respondJSON(w, r, http.StatusOK, common)
}
