package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/sogolo/sogolo-escrow-service/internal/domain"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func runAuth(t *testing.T, authHeader string) (domain.Actor, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var actor domain.Actor
	handler := JWTAuth(testSecret)(func(c echo.Context) error {
		actor = ActorFromContext(c)
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return actor, rec
}

func TestJWTAuthResolvesActor(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"sub": "user-42"})

	actor, rec := runAuth(t, "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if actor.ID != "user-42" || actor.Role != domain.RoleUser {
		t.Errorf("actor = %+v, want user-42 with user role", actor)
	}
	if actor.IsAdmin() {
		t.Error("plain token must not grant admin")
	}
}

func TestJWTAuthAdminRole(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"sub": "admin-1", "role": "admin"})

	actor, rec := runAuth(t, "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !actor.IsAdmin() {
		t.Errorf("actor = %+v, want admin role", actor)
	}
}

func TestJWTAuthRejectsUnknownRole(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"sub": "user-1", "role": "superuser"})

	actor, rec := runAuth(t, "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if actor.Role != domain.RoleUser {
		t.Errorf("role = %s, unknown claim values must fall back to user", actor.Role)
	}
}

func TestJWTAuthMissingToken(t *testing.T) {
	_, rec := runAuth(t, "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestJWTAuthMalformedToken(t *testing.T) {
	_, rec := runAuth(t, "Bearer not-a-jwt")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestJWTAuthWrongSecret(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "user-1"})
	signed, err := token.SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	_, rec := runAuth(t, "Bearer "+signed)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestJWTAuthMissingSubject(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"role": "admin"})

	_, rec := runAuth(t, "Bearer "+token)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}
