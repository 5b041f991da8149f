package service

import "errors"

// Таксономия ошибок сервисного слоя. Обработчики сопоставляют их
// HTTP-статусам; публичный путь редиректа до статусов не доходит —
// там любая ошибка вырождается в редирект на fallback-страницу.
var (
	// ErrNotFound — код не существует или ссылка деактивирована.
	ErrNotFound = errors.New("not found")
	// ErrExpired — ссылка найдена, но её срок действия истёк.
	ErrExpired = errors.New("link expired")
	// ErrConflict — запрошенный пользовательский код или email уже занят.
	ErrConflict = errors.New("already taken")
	// ErrForbidden — нарушение тарифной политики или чужой ресурс.
	ErrForbidden = errors.New("forbidden")
	// ErrValidation — некорректный ввод (URL, даты, параметры).
	ErrValidation = errors.New("invalid input")
	// ErrUnauthorized — неверные учётные данные.
	ErrUnauthorized = errors.New("invalid credentials")
)
