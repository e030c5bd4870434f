package store

import "errors"

// Сигнальные ошибки хранилищ. Сервисный и HTTP-слои различают их
// через errors.Is.
var (
	ErrFilmNotFound  = errors.New("film not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrGenreNotFound = errors.New("genre not found")
	ErrMpaNotFound   = errors.New("mpa rating not found")
)
