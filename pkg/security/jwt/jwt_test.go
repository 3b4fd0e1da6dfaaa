package jwt

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateClaims(t *testing.T) {
	g := NewGenerator("s3cret", "mediaid", time.Hour)

	tok, err := g.Generate("  ops  ", true)
	require.NoError(t, err)

	claims := &Claims{}
	_, err = jwt.ParseWithClaims(tok, claims, func(*jwt.Token) (any, error) { return []byte("s3cret"), nil })
	require.NoError(t, err)
	assert.Equal(t, "ops", claims.Subject)
	assert.Equal(t, "mediaid", claims.Issuer)
	assert.True(t, claims.IsAdmin)

	_, err = g.Generate(" ", false)
	assert.ErrorIs(t, err, ErrEmptySubject)
}

func TestMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/who", NewAuthMiddleware("s3cret", "mediaid"), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("subject").(string))
	})
	app.Get("/admin", NewAuthMiddleware("s3cret", "mediaid"), RequireAdmin(), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusNoContent)
	})

	g := NewGenerator("s3cret", "mediaid", time.Hour)
	viewer, err := g.Generate("viewer", false)
	require.NoError(t, err)
	admin, err := g.Generate("ops", true)
	require.NoError(t, err)
	expired, err := NewGenerator("s3cret", "mediaid", -time.Minute).Generate("ops", true)
	require.NoError(t, err)
	forged, err := NewGenerator("other", "mediaid", time.Hour).Generate("ops", true)
	require.NoError(t, err)

	cases := []struct {
		name, path, header string
		want               int
	}{
		{"no header", "/who", "", http.StatusUnauthorized},
		{"bearer", "/who", "Bearer " + viewer, http.StatusOK},
		{"bare token", "/who", viewer, http.StatusOK},
		{"expired", "/who", "Bearer " + expired, http.StatusUnauthorized},
		{"wrong secret", "/who", "Bearer " + forged, http.StatusUnauthorized},
		{"not admin", "/admin", "Bearer " + viewer, http.StatusForbidden},
		{"admin", "/admin", "bearer " + admin, http.StatusNoContent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}
}
