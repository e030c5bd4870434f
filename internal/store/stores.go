package store

import (
	"log/slog"

	"github.com/jmoiron/sqlx"
)

// Stores собирает все хранилища за одним значением, чтобы сервисный слой
// не зависел от выбранного бэкенда.
type Stores struct {
	Films      FilmStore
	Users      UserStore
	Genres     GenreStore
	Mpa        MpaStore
	Likes      LikeStore
	Friends    FriendStore
	FilmGenres FilmGenreStore
}

// NewMemoryStores создает полный набор in-memory хранилищ. Справочники
// жанров и рейтингов сидируются стандартными наборами.
func NewMemoryStores() Stores {
	return Stores{
		Films:      NewMemoryFilmStore(),
		Users:      NewMemoryUserStore(),
		Genres:     NewMemoryGenreStore(DefaultGenres()),
		Mpa:        NewMemoryMpaStore(DefaultMpaRatings()),
		Likes:      NewMemoryLikeStore(),
		Friends:    NewMemoryFriendStore(),
		FilmGenres: NewMemoryFilmGenreStore(),
	}
}

// NewPostgresStores создает полный набор хранилищ поверх одного подключения
// к PostgreSQL. Схема должна быть заранее применена (migrations/schema.sql).
func NewPostgresStores(db *sqlx.DB, logger *slog.Logger) Stores {
	return Stores{
		Films:      NewPostgresFilmStore(db, logger),
		Users:      NewPostgresUserStore(db, logger),
		Genres:     NewPostgresGenreStore(db, logger),
		Mpa:        NewPostgresMpaStore(db, logger),
		Likes:      NewPostgresLikeStore(db, logger),
		Friends:    NewPostgresFriendStore(db, logger),
		FilmGenres: NewPostgresFilmGenreStore(db, logger),
	}
}
