// Package middleware HTTP-middleware: аутентификация сотрудников и
// администратора, request-id, сбор метрик.
package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
)

type contextKey string

const employeeIDKey contextKey = "employeeID"

// HeaderEmployeeID заголовок с ID аутентифицированного сотрудника.
// Проставляется API-гейтвеем после проверки сессии.
const HeaderEmployeeID = "X-Employee-ID"

// HeaderAdminToken заголовок с токеном администратора
const HeaderAdminToken = "X-Admin-Token"

const (
	msgMissingEmployeeID = "отсутствует заголовок X-Employee-ID"
	msgInvalidEmployeeID = "некорректный заголовок X-Employee-ID"
	msgInvalidAdminToken = "неверный токен администратора"
)

// Auth проверяет заголовок X-Employee-ID и кладет ID сотрудника в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderEmployeeID)
		if raw == "" {
			handlers.RespondUnauthorized(w, msgMissingEmployeeID)
			return
		}

		employeeID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || employeeID <= 0 {
			handlers.RespondUnauthorized(w, msgInvalidEmployeeID)
			return
		}

		ctx := context.WithValue(r.Context(), employeeIDKey, employeeID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// EmployeeIDFromContext достает ID сотрудника, положенный Auth
func EmployeeIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(employeeIDKey).(int64)
	return id, ok
}

// AdminAuth проверяет заголовок X-Admin-Token.
// Сравнение constant-time, чтобы не утекала длина совпавшего префикса.
func AdminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(HeaderAdminToken)
			if subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				handlers.RespondUnauthorized(w, msgInvalidAdminToken)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
