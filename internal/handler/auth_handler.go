package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mesa-app/mesa/internal/database/models"
	"github.com/mesa-app/mesa/internal/database/service"
	"github.com/mesa-app/mesa/internal/middleware"
	"github.com/mesa-app/mesa/internal/session"
)

// AuthHandler handles the register, login and logout forms
type AuthHandler struct {
	pages
	service service.AuthService
	metrics *middleware.Metrics
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(
	service service.AuthService,
	sessions *session.Manager,
	metrics *middleware.Metrics,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		pages:   pages{sessions: sessions, logger: logger},
		service: service,
		metrics: metrics,
	}
}

// Form DTOs
type RegisterForm struct {
	Nombre          string `form:"nombre" binding:"required,max=100"`
	Apellido        string `form:"apellido" binding:"required,max=100"`
	Email           string `form:"email" binding:"required,email,max=255"`
	Password        string `form:"password" binding:"required,max=72"`
	Telefono        string `form:"telefono" binding:"max=20"`
	Direccion       string `form:"direccion"`
	Ciudad          string `form:"ciudad" binding:"max=100"`
	CodigoPostal    string `form:"codigo_postal" binding:"max=10"`
	Genero          string `form:"genero" binding:"omitempty,oneof=masculino femenino otro no_especifica"`
	FechaNacimiento string `form:"fecha_nacimiento" binding:"omitempty,datetime=2006-01-02"`
}

type LoginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

// ShowHome renders the page without acting on any form
func (h *AuthHandler) ShowHome(c *gin.Context) {
	h.render(c, http.StatusOK)
}

// Register handles the registration form. The new account is not logged in.
func (h *AuthHandler) Register(c *gin.Context) {
	var form RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		middleware.Logger(c, h.logger).Warn("⚠️ [Handler] Invalid registration form", "error", err)
		h.fail(c, middleware.EventRegister, service.ErrInvalidInput)
		return
	}

	input, err := form.input()
	if err != nil {
		h.fail(c, middleware.EventRegister, err)
		return
	}

	result, err := h.service.Register(c.Request.Context(), input)
	if err != nil {
		h.fail(c, middleware.EventRegister, err)
		return
	}

	h.succeed(c, middleware.EventRegister, result)
}

// Login handles the login form
func (h *AuthHandler) Login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		middleware.Logger(c, h.logger).Warn("⚠️ [Handler] Invalid login form", "error", err)
		h.fail(c, middleware.EventLogin, service.ErrInvalidInput)
		return
	}

	result, err := h.service.Login(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		h.fail(c, middleware.EventLogin, err)
		return
	}

	h.succeed(c, middleware.EventLogin, result)
}

// Logout clears the session whether or not anyone is logged in
func (h *AuthHandler) Logout(c *gin.Context) {
	h.succeed(c, middleware.EventLogout, h.service.Logout(c.Request.Context()))
}

func (h *AuthHandler) succeed(c *gin.Context, event string, result *service.AccountResult) {
	h.metrics.RecordAccountEvent(event, middleware.ResultSuccess)

	sess := session.FromContext(c)
	sess.Apply(result.Delta)
	sess.AddFlash(result.Flash)
	h.redirectHome(c)
}

func (h *AuthHandler) fail(c *gin.Context, event string, err error) {
	h.metrics.RecordAccountEvent(event, middleware.ResultFailure)

	fallback := service.MsgUnexpected
	if event == middleware.EventRegister {
		fallback = service.MsgRegisterFailed
	}

	session.FromContext(c).AddFlash(service.FailureFlash(err, fallback))
	h.render(c, h.statusFor(c, err))
}

func (h *AuthHandler) statusFor(c *gin.Context, err error) int {
	switch {
	case errors.Is(err, service.ErrEmailAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrTooManyAttempts):
		return http.StatusTooManyRequests
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		middleware.Logger(c, h.logger).Error("❌ [Handler] Internal server error", "error", err)
		return http.StatusInternalServerError
	}
}

func (f RegisterForm) input() (service.RegisterInput, error) {
	input := service.RegisterInput{
		FirstName:  f.Nombre,
		LastName:   f.Apellido,
		Email:      f.Email,
		Password:   f.Password,
		Phone:      f.Telefono,
		Address:    f.Direccion,
		City:       f.Ciudad,
		PostalCode: f.CodigoPostal,
	}

	if f.Genero != "" {
		gender := models.Gender(f.Genero)
		input.Gender = &gender
	}

	if f.FechaNacimiento != "" {
		birthDate, err := time.Parse(time.DateOnly, f.FechaNacimiento)
		if err != nil {
			return input, service.ErrInvalidInput
		}
		input.BirthDate = &birthDate
	}

	return input, nil
}
