package domain

// User представляет доменную модель пользователя. Друзья живут в отдельной
// таблице-связке и заполняются сервисным слоем.
type User struct {
	ID       int    `json:"id" db:"id"`
	Email    string `json:"email" db:"email"`
	Login    string `json:"login" db:"login"`
	Name     string `json:"name" db:"name"`
	Birthday Date   `json:"birthday" db:"birthday"`
	Friends  []int  `json:"friends" db:"-"`
}

// CreateUserRequest определяет тело запроса для создания пользователя.
// Пустое имя заменяется логином, дата рождения проверяется в сервисе.
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,contains=@"`
	Login    string `json:"login" validate:"required,excludesall=0x20"`
	Name     string `json:"name"`
	Birthday Date   `json:"birthday"`
}

// UpdateUserRequest определяет тело запроса для обновления пользователя.
// Поля-указатели: nil означает "оставить без изменений". Переданное пустое
// имя сбрасывается к логину.
type UpdateUserRequest struct {
	ID       int     `json:"id" validate:"required"`
	Email    *string `json:"email" validate:"omitempty,contains=@"`
	Login    *string `json:"login" validate:"omitempty,excludesall=0x20"`
	Name     *string `json:"name"`
	Birthday *Date   `json:"birthday"`
}
