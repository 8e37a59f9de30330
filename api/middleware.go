package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Auth verifies the bearer tokens issued by the identity provider that
// gates dashboard access. Tokens are HS256 JWTs over a shared secret.
type Auth struct {
	Secret string
}

// Middleware adds bearer token authentication around accessing the routes
func (a Auth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		requestID := uuid.New().String()

		token := bearerToken(r)
		if token == "" {
			zap.S().Errorw("unauthorized, missing bearer token",
				"url", r.URL,
				"requestId", requestID,
			)
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": "unauthorized"}`))
			return
		}

		claims, err := a.parse(token)
		if err != nil {
			zap.S().Errorw("unauthorized",
				"url", r.URL,
				"requestId", requestID,
				"error", err,
			)
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": "unauthorized"}`))
			return
		}

		subject, _ := claims.GetSubject()
		zap.S().Debugf("user %s authenticated, request %s", subject, requestID)
		next.ServeHTTP(w, r)
	})
}

func (a Auth) parse(token string) (jwt.Claims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(a.Secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return parsed.Claims, nil
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}
