package service

import (
	"errors"

	"github.com/mesa-app/mesa/internal/session"
)

// Service errors
var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPersistence        = errors.New("failed to persist account")
	ErrTooManyAttempts    = errors.New("too many failed login attempts")
	ErrInvalidInput       = errors.New("invalid input")
)

// Notices shown to the visitor
const (
	MsgRegistered         = "¡Bienvenido %s! Tu cuenta ha sido creada exitosamente."
	MsgWelcomeBack        = "¡Bienvenido de vuelta!"
	MsgLoggedOut          = "Has cerrado sesión correctamente."
	MsgEmailTaken         = "Este correo electrónico ya está registrado."
	MsgInvalidCredentials = "Credenciales incorrectas. Inténtalo de nuevo."
	MsgRegisterFailed     = "Error al crear la cuenta. Inténtalo de nuevo."
	MsgInvalidForm        = "Revisa los datos del formulario."
	MsgTooManyAttempts    = "Demasiados intentos. Inténtalo más tarde."
	MsgUnexpected         = "Ha ocurrido un error inesperado. Inténtalo de nuevo."
)

// FailureFlash returns the notice for a failed account operation. fallback is
// shown for errors the visitor cannot act on.
func FailureFlash(err error, fallback string) session.Flash {
	msg := fallback
	switch {
	case errors.Is(err, ErrEmailAlreadyExists):
		msg = MsgEmailTaken
	case errors.Is(err, ErrInvalidCredentials):
		msg = MsgInvalidCredentials
	case errors.Is(err, ErrTooManyAttempts):
		msg = MsgTooManyAttempts
	case errors.Is(err, ErrInvalidInput):
		msg = MsgInvalidForm
	}
	return session.Flash{Category: session.FlashError, Message: msg}
}
