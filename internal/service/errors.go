package service

import "errors"

// Таксономия ошибок движка. Отсутствие данных у агрегатора/пульса ошибкой
// не является и выражается статусом "unknown" / пустым списком.
var (
	// ErrInvalidInput - некорректные координаты, неизвестный вид услуги,
	// неизвестный тип теплокарты и т.п. Отклоняется до вычислений.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateObservation - нарушение уникальности (user, service, day).
	// Существующая запись авторитетна: ни перезаписи, ни слияния.
	ErrDuplicateObservation = errors.New("observation already recorded for this user, service and day")

	// ErrZoneNotFound - ни одна зона не содержит точку либо зоны с таким id нет
	ErrZoneNotFound = errors.New("zone not found")
)
