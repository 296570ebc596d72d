package models

import "errors"

// Базовые ошибки доменного слоя. Хендлеры переводят их в HTTP-статусы
// через errors.Is, без разбора текста ошибки.
var (
	ErrNotFound           = errors.New("ресурс не найден")
	ErrInvalidCredentials = errors.New("неверный email или пароль")
	ErrConflict           = errors.New("нарушение уникальности")
	ErrValidation         = errors.New("неверные данные запроса")
	ErrUpload             = errors.New("ошибка загрузки файла в хранилище")
	ErrDelete             = errors.New("ошибка удаления файла из хранилища")
)
