package service

import "errors"

// Типизированная таксономия ошибок сервисного слоя.
// Хендлеры сопоставляют их со статусами через errors.Is и никогда
// не опираются на текст ошибки.
var (
	// ErrInvalidInput — некорректный или пустой вход после нормализации.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUsernameTaken — имя пользователя уже занято (регистрозависимо).
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials — неверная пара логин/пароль. Не различает
	// «нет такого пользователя» и «неверный пароль».
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthenticated — токен отсутствует, просрочен, не прошёл проверку
	// подписи или ссылается на удалённого пользователя.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrDuplicate — коллизия имени в рамках владельца или списка.
	ErrDuplicate = errors.New("duplicate name")

	// ErrNotFound — ресурс отсутствует или принадлежит другому пользователю;
	// для клиента эти случаи неразличимы.
	ErrNotFound = errors.New("not found")
)
