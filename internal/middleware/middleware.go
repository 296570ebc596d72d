package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"rentservice/internal/service"
	"strings"
)

// ContextUserKey - ключ, под которым аутентифицированный пользователь лежит в
// контексте запроса
const ContextUserKey = "user"

type Middleware func(http.Handler) http.Handler

func writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// публичные эндпоинты: логин, логаут и чтение ассетов
func isPublicPath(method, path string) bool {
	if path == "/api/v1/auth/login" || path == "/api/v1/auth/logout" {
		return true
	}

	if method == http.MethodGet && strings.HasPrefix(path, "/api/v1/assets/rent/") {
		return true
	}

	return false
}

// AuthMiddleware достает JWT из httpOnly-куки, проверяет подпись и срок и
// разрешает subject через хранилище пользователей. Токен несуществующего
// пользователя отклоняется.
func AuthMiddleware(authService service.AuthService) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.Method, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			cookie, err := r.Cookie("access_token")
			if err != nil {
				writeError(w, "Требуется авторизация", http.StatusUnauthorized)
				return
			}

			user, err := authService.UserFromToken(r.Context(), cookie.Value)
			if err != nil {
				writeError(w, "Недействительный токен", http.StatusUnauthorized)
				return
			}

			// adding the user to the request context
			ctx := context.WithValue(r.Context(), ContextUserKey, user)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s %s", r.Method, r.RequestURI, r.RemoteAddr)
		next.ServeHTTP(w, r)
	})
}

func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
