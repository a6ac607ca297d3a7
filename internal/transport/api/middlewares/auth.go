package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/auction-settle/internal/transport/api/tokens"
)

var ErrTokenNotExist = errors.New("token not exist")

const CurrentClientIDKey = "currentClientID"

// checkAuthorization извлекает bearer токен из заголовка Authorization и проверяет его.
// Если токен не передан, вернется ошибка ErrTokenNotExist.
func checkAuthorization(c *gin.Context, jwtSecret []byte) (*tokens.ClientClaims, error) {
	tokenHeader := c.GetHeader("Authorization")
	bearer := "Bearer "

	if len(tokenHeader) < len(bearer) || tokenHeader[:len(bearer)] != bearer {
		return nil, ErrTokenNotExist
	}

	return tokens.ValidateClientJWT(tokenHeader[len(bearer):], jwtSecret)
}

// AuthRequired проверяет, что запрос авторизован. Записывает в контекст
// (поле CurrentClientIDKey) идентификатор клиента.
func AuthRequired(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := checkAuthorization(c, jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			if !errors.Is(err, ErrTokenNotExist) {
				_ = c.Error(err).SetType(gin.ErrorTypePrivate)
			}
			return
		}
		c.Set(CurrentClientIDKey, claims.ClientID)
		c.Next()
	}
}
