package domain

// Mpa представляет возрастной рейтинг фильма (справочные данные).
type Mpa struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name,omitempty" db:"name"`
}

// Genre представляет жанр фильма (справочные данные).
type Genre struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name,omitempty" db:"name"`
}

// Film представляет доменную модель фильма. Жанры и лайки живут в отдельных
// таблицах-связках и заполняются сервисным слоем, хранилище фильмов работает
// только со скалярными полями.
type Film struct {
	ID          int     `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description string  `json:"description,omitempty" db:"description"`
	ReleaseDate Date    `json:"releaseDate" db:"release_date"`
	Duration    int     `json:"duration" db:"duration"`
	Mpa         Mpa     `json:"mpa" db:"mpa"`
	Genres      []Genre `json:"genres" db:"-"`
	Likes       []int   `json:"likes" db:"-"`
}

// MpaRef ссылка на рейтинг по идентификатору.
type MpaRef struct {
	ID int `json:"id" validate:"gt=0"`
}

// GenreRef ссылка на жанр по идентификатору.
type GenreRef struct {
	ID int `json:"id" validate:"gt=0"`
}

// CreateFilmRequest определяет тело запроса для создания фильма.
// Дата релиза и ее нижняя граница проверяются в сервисе.
type CreateFilmRequest struct {
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description" validate:"max=200"`
	ReleaseDate Date       `json:"releaseDate"`
	Duration    *int       `json:"duration" validate:"required,gte=0"`
	Mpa         *MpaRef    `json:"mpa" validate:"required"`
	Genres      []GenreRef `json:"genres" validate:"omitempty,dive"`
}

// UpdateFilmRequest определяет тело запроса для обновления фильма.
// Поля-указатели: nil означает "оставить без изменений".
type UpdateFilmRequest struct {
	ID          int        `json:"id" validate:"required"`
	Name        *string    `json:"name"`
	Description *string    `json:"description" validate:"omitempty,max=200"`
	ReleaseDate *Date      `json:"releaseDate"`
	Duration    *int       `json:"duration" validate:"omitempty,gte=0"`
	Mpa         *MpaRef    `json:"mpa"`
	Genres      []GenreRef `json:"genres" validate:"omitempty,dive"`
}
