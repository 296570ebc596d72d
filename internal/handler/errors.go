package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"rentservice/internal/models"
)

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// WriteError - универсальная функция для отправки ошибок
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// WriteSuccess - функция для успешных ответов
func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// WriteDomainError переводит доменные ошибки в HTTP-статусы. Неожиданные
// ошибки логируются и наружу уходят как общий 400 без деталей.
func WriteDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrValidation):
		WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, models.ErrInvalidCredentials):
		WriteError(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, models.ErrNotFound):
		WriteError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, models.ErrConflict):
		WriteError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, models.ErrUpload), errors.Is(err, models.ErrDelete):
		// the remote message goes to the client as is
		WriteError(w, err.Error(), http.StatusBadRequest)
	default:
		log.Printf("Необработанная ошибка: %v", err)
		WriteError(w, "Ошибка обработки запроса", http.StatusBadRequest)
	}
}
