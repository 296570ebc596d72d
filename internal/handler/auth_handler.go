package handlers

import (
	"encoding/json"
	"net/http"
	"rentservice/internal/middleware"
	"rentservice/internal/models"
)

const AccessTokenCookie = "access_token"

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type LoginResponse struct {
	User UserResponse `json:"user"`
}

func userView(user *models.User) UserResponse {
	return UserResponse{
		ID:    user.UserID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}
}

// Login проверяет учетные данные и кладет токен в httpOnly-куку. Сам токен в
// теле ответа не возвращается.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	user, accessToken, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	// срок куки совпадает со сроком токена
	http.SetCookie(w, &http.Cookie{
		Name:     AccessTokenCookie,
		Value:    accessToken,
		Path:     "/",
		MaxAge:   int(h.Cfg.JWTExpiration.Seconds()),
		HttpOnly: true,
		Secure:   h.Cfg.Environment == "production",
		SameSite: http.SameSiteStrictMode,
	})

	WriteSuccess(w, LoginResponse{User: userView(user)}, http.StatusOK)
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     AccessTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.Cfg.Environment == "production",
		SameSite: http.SameSiteStrictMode,
	})

	WriteSuccess(w, MessageResponse{Message: "Выход выполнен"}, http.StatusOK)
}

func (h *Handlers) Profile(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(middleware.ContextUserKey).(*models.User)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	WriteSuccess(w, userView(user), http.StatusOK)
}
