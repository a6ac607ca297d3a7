package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrTokenExpired = errors.New("token expired")

// ClientClaims токен клиента API (драйвер нагрузки или админский инструмент).
type ClientClaims struct {
	jwt.RegisteredClaims
	ClientID string
}

func GenerateClientJWT(clientID string, expire time.Duration, key []byte) (string, error) {
	claims := ClientClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expire)),
		},
		ClientID: clientID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("generating client jwt token: %s", err.Error())
	}
	return tokenString, nil
}

func ValidateClientJWT(tokenString string, key []byte) (*ClientClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, new(ClientClaims), func(_ *jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{"HS256"}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("parsing client jwt token: %w", err)
	}

	claims, ok := token.Claims.(*ClientClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}
