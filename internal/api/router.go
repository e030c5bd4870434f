package api

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter создает и настраивает HTTP-маршрутизатор приложения.
func NewRouter(h *Handler) *mux.Router {
	router := mux.NewRouter()
	router.Use(h.RequestLogging)

	films := router.PathPrefix("/films").Subrouter()
	films.HandleFunc("", h.ListFilms).Methods(http.MethodGet)
	films.HandleFunc("", h.CreateFilm).Methods(http.MethodPost)
	films.HandleFunc("", h.UpdateFilm).Methods(http.MethodPut)
	films.HandleFunc("/popular", h.PopularFilms).Methods(http.MethodGet)
	films.HandleFunc("/{id}", h.GetFilm).Methods(http.MethodGet)
	films.HandleFunc("/{id}/like/{userId}", h.AddLike).Methods(http.MethodPut)
	films.HandleFunc("/{id}/like/{userId}", h.DeleteLike).Methods(http.MethodDelete)

	users := router.PathPrefix("/users").Subrouter()
	users.HandleFunc("", h.ListUsers).Methods(http.MethodGet)
	users.HandleFunc("", h.CreateUser).Methods(http.MethodPost)
	users.HandleFunc("", h.UpdateUser).Methods(http.MethodPut)
	users.HandleFunc("/{id}", h.GetUser).Methods(http.MethodGet)
	users.HandleFunc("/{id}/friends", h.ListFriends).Methods(http.MethodGet)
	users.HandleFunc("/{id}/friends/common/{otherId}", h.CommonFriends).Methods(http.MethodGet)
	users.HandleFunc("/{id}/friends/{friendId}", h.AddFriend).Methods(http.MethodPut)
	users.HandleFunc("/{id}/friends/{friendId}", h.DeleteFriend).Methods(http.MethodDelete)

	router.HandleFunc("/genres", h.ListGenres).Methods(http.MethodGet)
	router.HandleFunc("/genres/{id}", h.GetGenre).Methods(http.MethodGet)
	router.HandleFunc("/mpa", h.ListMpa).Methods(http.MethodGet)
	router.HandleFunc("/mpa/{id}", h.GetMpa).Methods(http.MethodGet)

	return router
}
