package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/escala-trocas/internal/auth"
	"github.com/BruksfildServices01/escala-trocas/internal/domain/user"
	"github.com/BruksfildServices01/escala-trocas/internal/httperr"
	"github.com/BruksfildServices01/escala-trocas/internal/models"
)

const (
	ContextUserID    = "userID"
	ContextUserRole  = "userRole"
	ContextUserLogin = "userLogin"
)

// UserLookup loads the caller behind a token. user.Repository satisfies it.
type UserLookup interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
}

// AuthMiddleware validates the bearer token and reloads the user on every
// request: role and login come from the stored row, and deactivated or
// deleted users are rejected even while their token is still valid.
func AuthMiddleware(tokens *auth.TokenManager, users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Abort(c, http.StatusUnauthorized, "missing_authorization_header", "Autenticação necessária.")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_authorization_header", "Cabeçalho de autorização inválido.")
			return
		}

		claims, err := tokens.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				httperr.Abort(c, http.StatusUnauthorized, "token_expired", "Sessão expirada.")
				return
			}
			httperr.Abort(c, http.StatusUnauthorized, "invalid_token", "Token inválido.")
			return
		}

		userID, err := claims.UserID()
		if err != nil || userID == 0 {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_token", "Token inválido.")
			return
		}

		u, err := users.GetByID(c.Request.Context(), userID)
		if err != nil && !errors.Is(err, user.ErrNotFound) {
			_ = c.Error(err)
			httperr.Abort(c, http.StatusInternalServerError, "internal_error", "Erro interno. Tente novamente mais tarde.")
			return
		}
		if err != nil || !u.Active {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_session", "Sessão inválida. Entre novamente.")
			return
		}

		c.Set(ContextUserID, u.ID)
		c.Set(ContextUserRole, u.Role)
		c.Set(ContextUserLogin, u.LoginIdentifier)

		c.Next()
	}
}

// RequireRole lets the request through when the caller holds one of roles.
// It must run after AuthMiddleware.
func RequireRole(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		if !ok {
			httperr.Abort(c, http.StatusUnauthorized, "unauthenticated", "Autenticação necessária.")
			return
		}

		for _, r := range roles {
			if actor.Is(r) {
				c.Next()
				return
			}
		}

		httperr.Abort(c, http.StatusForbidden, "forbidden_role", "Acesso não permitido para este perfil.")
	}
}

// ActorFrom reads the caller set by AuthMiddleware.
func ActorFrom(c *gin.Context) (user.Actor, bool) {
	id, ok := c.Get(ContextUserID)
	if !ok {
		return user.Actor{}, false
	}
	uid, ok := id.(uint)
	if !ok || uid == 0 {
		return user.Actor{}, false
	}

	return user.Actor{
		ID:    uid,
		Login: c.GetString(ContextUserLogin),
		Role:  user.Role(c.GetString(ContextUserRole)),
	}, true
}
