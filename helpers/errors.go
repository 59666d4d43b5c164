package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/uqo/assistanat_client/internal/clients"
)

// AppError porte le statut HTTP et le message présentés à l'utilisateur.
type AppError struct {
	Status  int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func NewAppError(status int, message string, err error) *AppError {
	return &AppError{Status: status, Message: message, Err: err}
}

// BadRequest signale une saisie invalide.
func BadRequest(message string, err error) *AppError {
	return NewAppError(http.StatusBadRequest, message, err)
}

// AsAppError convertit une erreur quelconque. Les erreurs 4xx du backend gardent
// leur statut; les 5xx et les pannes réseau deviennent 502.
func AsAppError(err error, defaultMessage string) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	msg := defaultMessage
	if msg == "" {
		msg = "erreur inattendue"
	}
	var httpErr *clients.HTTPError
	if errors.As(err, &httpErr) {
		status := httpErr.Status
		if status < 400 || status >= 500 {
			status = http.StatusBadGateway
		}
		return &AppError{Status: status, Message: msg, Err: err}
	}
	if errors.Is(err, clients.ErrTransport) {
		return &AppError{Status: http.StatusBadGateway, Message: msg, Err: err}
	}
	return &AppError{Status: http.StatusInternalServerError, Message: msg, Err: err}
}
