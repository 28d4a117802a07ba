package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cazingue/BMT-ReservationService/internal/api/handlers"
)

const (
	msgMissingToken  = "отсутствует токен авторизации"
	msgInvalidToken  = "недействительный токен авторизации"
	msgAdminRequired = "требуются права администратора"

	// RoleAdmin имеет полный доступ, RoleStaff — только к операциям персонала
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

type contextKey string

const (
	staffIDKey contextKey = "staff_id"
	roleKey    contextKey = "role"
)

// StaffClaims полезная нагрузка токена сотрудника
type StaffClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Auth проверяет JWT из заголовка Authorization и кладет
// идентификатор сотрудника и роль в контекст запроса.
type Auth struct {
	secret []byte
	logger Logger
}

func NewAuth(secret string, logger Logger) *Auth {
	return &Auth{
		secret: []byte(strings.TrimSpace(secret)),
		logger: logger,
	}
}

// Middleware пропускает только запросы с валидным токеном
func (a *Auth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := a.parseToken(r)
		if err != nil {
			a.logger.Warn("Auth - %s %s - Rejected: %v", r.Method, r.URL.Path, err)
			handlers.RespondUnauthorized(w, msgInvalidToken)
			return
		}

		ctx := context.WithValue(r.Context(), staffIDKey, claims.Subject)
		ctx = context.WithValue(ctx, roleKey, claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin дополнительно требует роль admin. Используется после Middleware.
func (a *Auth) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := GetRole(r.Context())
		if !ok || role != RoleAdmin {
			a.logger.Warn("Auth - %s %s - Admin required, got role=%q", r.Method, r.URL.Path, role)
			handlers.RespondForbidden(w, msgAdminRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (a *Auth) parseToken(r *http.Request) (*StaffClaims, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return nil, fmt.Errorf("missing Authorization header")
	}

	raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if raw == "" || raw == header {
		return nil, fmt.Errorf("malformed Authorization header")
	}

	claims := &StaffClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("token is not valid")
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("token has no subject")
	}
	if claims.Role != RoleAdmin && claims.Role != RoleStaff {
		return nil, fmt.Errorf("unknown role %q", claims.Role)
	}

	return claims, nil
}

// GetStaffID извлекает идентификатор сотрудника из контекста
func GetStaffID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(staffIDKey).(string)
	return id, ok
}

// GetRole извлекает роль сотрудника из контекста
func GetRole(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(roleKey).(string)
	return role, ok
}
