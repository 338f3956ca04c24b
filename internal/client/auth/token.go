package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// subjectFromToken извлекает claim sub без проверки подписи.
// Подпись проверяет сервер, клиенту subject нужен только для отображения.
func subjectFromToken(token string) (string, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("invalid sub claim: %w", err)
	}
	if sub == "" {
		return "", errors.New("token has no sub claim")
	}

	return sub, nil
}
