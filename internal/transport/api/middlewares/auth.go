package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/fsdevblog/jalsa-khata/internal/service/tokens"
	"github.com/gin-gonic/gin"
)

var ErrTokenNotExist = errors.New("token not exist")

const (
	CurrentAdminIDKey = "currentAdminID"
	// AuthTokenHeader альтернатива Authorization, ее шлет админка.
	AuthTokenHeader = "x-auth-token"
)

// tokenFromRequest извлекает токен из Authorization: Bearer или x-auth-token.
func tokenFromRequest(c *gin.Context) (string, error) {
	const bearer = "Bearer "
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, bearer) {
		return strings.TrimSpace(header[len(bearer):]), nil
	}
	if token := strings.TrimSpace(c.GetHeader(AuthTokenHeader)); token != "" {
		return token, nil
	}
	return "", ErrTokenNotExist
}

func checkAuthorization(c *gin.Context, jwtTokenSecret []byte) (*tokens.AdminClaims, error) {
	tokenStr, err := tokenFromRequest(c)
	if err != nil {
		return nil, err
	}
	return tokens.ValidateAdminJWT(tokenStr, jwtTokenSecret) //nolint:wrapcheck
}

func unauthorized(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	if !errors.Is(err, ErrTokenNotExist) {
		_ = c.Error(err).SetType(gin.ErrorTypePrivate)
	}
}

// AuthRequired пропускает только запросы с действительным токеном администратора.
// Записывает в контекст (поле CurrentAdminIDKey) id администратора.
func AuthRequired(jwtTokenSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := checkAuthorization(c, jwtTokenSecret)
		if err != nil {
			unauthorized(c, err)
			return
		}
		c.Set(CurrentAdminIDKey, claims.ID)
		c.Next()
	}
}

// AuthOptional пропускает запросы без токена, но недействительный токен отклоняет.
func AuthOptional(jwtTokenSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := checkAuthorization(c, jwtTokenSecret)
		switch {
		case errors.Is(err, ErrTokenNotExist):
			c.Next()
		case err != nil:
			unauthorized(c, err)
		default:
			c.Set(CurrentAdminIDKey, claims.ID)
			c.Next()
		}
	}
}

// IsAdmin сообщает, прошел ли запрос проверку токена администратора.
func IsAdmin(c *gin.Context) bool {
	_, ok := c.Get(CurrentAdminIDKey)
	return ok
}
