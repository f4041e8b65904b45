package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrInsufficientPoints = errors.New("puntos insuficientes en la tarjeta")
	ErrSlotUnavailable    = errors.New("el horario solicitado no está disponible")
	ErrCapacityExceeded   = errors.New("capacidad diaria excedida")
	ErrInvalidTransition  = errors.New("transición de estado inválida")
)
