package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/eatease/EatEase-BookingService/internal/api/handlers"
	"github.com/eatease/EatEase-BookingService/internal/domain"
)

type contextKey string

const actorContextKey contextKey = "actor"

const (
	headerUserID   = "X-User-ID"
	headerUserRole = "X-User-Role"
)

// Auth извлекает идентичность пользователя из заголовков гейтвея и кладет
// её в контекст запроса. Аутентификацию выполняет гейтвей, сервис доверяет
// заголовкам.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		idStr := r.Header.Get(headerUserID)
		if idStr == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок X-User-ID")
			return
		}

		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil || id <= 0 {
			handlers.RespondUnauthorized(w, "некорректный заголовок X-User-ID")
			return
		}

		role, ok := domain.ParseRole(r.Header.Get(headerUserRole))
		if !ok {
			handlers.RespondUnauthorized(w, "некорректный заголовок X-User-Role")
			return
		}

		actor := domain.Actor{ID: id, Role: role}
		ctx := context.WithValue(r.Context(), actorContextKey, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetActor возвращает актора запроса из контекста
func GetActor(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorContextKey).(domain.Actor)
	return actor, ok
}
