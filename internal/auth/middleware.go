package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/ddsolutions/careers-api/internal/config"
	"github.com/ddsolutions/careers-api/internal/models"
	"github.com/ddsolutions/careers-api/internal/utils"
)

type ctxKey string

const ctxUserKey ctxKey = "currentUser"

// UserLookup is the single store dependency of the middleware: resolve a
// user id from token claims back to a live account.
type UserLookup interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

func GetUserFromCtx(ctx context.Context) *models.User {
	if u, ok := ctx.Value(ctxUserKey).(*models.User); ok {
		return u
	}
	return nil
}

// AuthMiddleware validates the bearer JWT, re-fetches the user on every
// request (covers deletion after token issuance) and sets it in context.
func AuthMiddleware(cfg *config.Config, users UserLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authz := r.Header.Get("Authorization")
			if authz == "" {
				utils.WriteJSONResponse(w, http.StatusUnauthorized, false, "missing authorization", nil, nil)
				return
			}
			parts := strings.SplitN(authz, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.WriteJSONResponse(w, http.StatusUnauthorized, false, "invalid authorization header", nil, nil)
				return
			}
			claims, err := ParseAndValidateToken(cfg, parts[1])
			if err != nil {
				utils.WriteJSONResponse(w, http.StatusUnauthorized, false, "invalid token", nil, nil)
				return
			}
			u, err := users.GetUserByID(r.Context(), claims.UserID)
			if err != nil {
				utils.WriteJSONResponse(w, http.StatusUnauthorized, false, "user not found", nil, nil)
				return
			}
			ctx := context.WithValue(r.Context(), ctxUserKey, u)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RoleMiddleware allows multiple roles; usage: RoleMiddleware("admin").
// Must run after AuthMiddleware.
func RoleMiddleware(allowedRoles ...models.Role) func(http.Handler) http.Handler {
	set := map[models.Role]struct{}{}
	for _, r := range allowedRoles {
		set[r] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u := GetUserFromCtx(r.Context())
			if u == nil {
				utils.WriteJSONResponse(w, http.StatusUnauthorized, false, "unauthorized", nil, nil)
				return
			}
			if _, ok := set[u.Role]; !ok {
				utils.WriteJSONResponse(w, http.StatusForbidden, false, "forbidden", nil, nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
