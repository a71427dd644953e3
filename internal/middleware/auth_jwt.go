package middleware

import (
	"net/http"
	"strings"

	"restaurant/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	CtxIdentityKey = "identity"  // usecase.Identity
	CtxUserIDKey   = "user_id"   // int64
	CtxUserRoleKey = "user_role" // model.Role
)

// tokenの検証だけを約束
type TokenVerifier interface {
	VerifyToken(raw string) (usecase.Identity, error)
}

// bearerAuth用のJWT検証ミドルウェア。
// ヘッダなし・形式不正は401、署名不正・期限切れは403
func AuthJWT(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			//Authorizationヘッダを取得
			authz := c.Request().Header.Get(echo.HeaderAuthorization)
			if authz == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("access denied"))
			}

			//Bearer形式か確認してtokenを抜く
			parts := strings.SplitN(authz, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return c.JSON(http.StatusUnauthorized, errorJSON("access denied"))
			}

			id, err := verifier.VerifyToken(strings.TrimSpace(parts[1]))
			if err != nil {
				if he, ok := usecase.AsHTTPError(err); ok {
					return c.JSON(he.Status, errorJSON(he.Message))
				}
				return c.JSON(http.StatusForbidden, errorJSON("invalid token"))
			}

			//contextへ保存
			c.Set(CtxIdentityKey, id)
			c.Set(CtxUserIDKey, id.ID)
			c.Set(CtxUserRoleKey, id.Role)

			return next(c)
		}
	}
}

// IdentityFrom returns what AuthJWT stored for this request.
func IdentityFrom(c echo.Context) (usecase.Identity, bool) {
	id, ok := c.Get(CtxIdentityKey).(usecase.Identity)
	return id, ok && id.ID > 0
}

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Success: false, Message: msg}
}
