package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/sogolo/sogolo-escrow-service/internal/domain"
)

const actorContextKey = "actor"

// JWTAuth resolves the request identity once and stores a typed Actor in the
// request context. The role claim rides inside the token; the engine below
// this point never sees credentials.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			raw, found := strings.CutPrefix(header, "Bearer ")
			if !found || raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
			}
			sub, err := claims.GetSubject()
			if err != nil || sub == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token has no subject")
			}

			role := domain.RoleUser
			if r, ok := claims["role"].(string); ok && r == string(domain.RoleAdmin) {
				role = domain.RoleAdmin
			}

			c.Set(actorContextKey, domain.Actor{ID: sub, Role: role})
			return next(c)
		}
	}
}

func ActorFromContext(c echo.Context) domain.Actor {
	actor, _ := c.Get(actorContextKey).(domain.Actor)
	return actor
}
