package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup() (*echo.Echo, *string) {
	e := echo.New()
	e.Use(ClientToken())
	var seen string
	e.GET("/", func(c echo.Context) error {
		token, ok := GetClientToken(c)
		if !ok {
			return c.NoContent(http.StatusInternalServerError)
		}
		seen = token
		return c.NoContent(http.StatusOK)
	})
	return e, &seen
}

func TestClientToken_IssuesCookieWhenMissing(t *testing.T) {
	e, seen := setup()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, *seen)

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "client_token", cookies[0].Name)
	assert.Equal(t, *seen, cookies[0].Value)
}

func TestClientToken_HeaderWins(t *testing.T) {
	e, seen := setup()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Client-Token", "tok-header")
	req.AddCookie(&http.Cookie{Name: "client_token", Value: "tok-cookie"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "tok-header", *seen)
	assert.Empty(t, rec.Result().Cookies(), "existing token must not be reissued")
}

func TestClientToken_CookieReused(t *testing.T) {
	e, seen := setup()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "client_token", Value: "tok-cookie"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "tok-cookie", *seen)
}
