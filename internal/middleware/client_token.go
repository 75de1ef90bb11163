package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	CtxClientTokenKey = "client_token"

	clientTokenCookie = "client_token"
	clientTokenHeader = "X-Client-Token"

	// カート・お気に入りの寿命
	clientTokenMaxAge = 180 * 24 * 60 * 60
)

// ClientToken は匿名クライアントの識別子を読み取り、無ければ発行してcontextに積む。
// ヘッダ優先、次にCookie。新規発行時はCookieで返す。
func ClientToken() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(clientTokenHeader)
			if token == "" {
				if ck, err := c.Cookie(clientTokenCookie); err == nil {
					token = ck.Value
				}
			}
			if token == "" {
				token = uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     clientTokenCookie,
					Value:    token,
					Path:     "/",
					MaxAge:   clientTokenMaxAge,
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			c.Set(CtxClientTokenKey, token)
			return next(c)
		}
	}
}

func GetClientToken(c echo.Context) (string, bool) {
	token, ok := c.Get(CtxClientTokenKey).(string)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}
