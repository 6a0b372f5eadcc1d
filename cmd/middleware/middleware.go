package middleware

import (
	"context"
	"strings"
	"time"

	"eventfront/internal/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"
)

type tokenKey struct{}

// WithToken stores a verified bearer token on the request context so the
// backend client can forward it upstream.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// ForwardedToken is the token provider wired into the backend client at
// startup. Requests that never passed AuthJWT carry no token and go out
// unauthenticated.
func ForwardedToken(ctx context.Context) (string, error) {
	if token, ok := ctx.Value(tokenKey{}).(string); ok {
		return token, nil
	}
	return "", nil
}

func LoggingMiddleware() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()
		requestID := uuid.New().String()
		c.Set("request_id", requestID)

		c.Next()

		zlog.Logger.Info().
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	}
}

// AuthJWT gates the dashboard routes. The bearer token comes from the
// identity provider; only its signature and expiry are checked here, the
// upstream re-verifies on every forwarded call.
func AuthJWT(secret string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		raw := ""
		if authz := strings.TrimSpace(c.GetHeader("Authorization")); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		}
		if raw == "" {
			c.AbortWithStatusJSON(401, dto.Response{
				Status: "error",
				Error:  &dto.Error{Code: "UNAUTHORIZED", Desc: "Missing bearer token"},
			})
			return
		}

		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			c.AbortWithStatusJSON(401, dto.Response{
				Status: "error",
				Error:  &dto.Error{Code: "UNAUTHORIZED", Desc: "Invalid token"},
			})
			return
		}

		if claims, ok := tok.Claims.(jwt.MapClaims); ok {
			if sub, ok := claims["sub"].(string); ok {
				c.Set("operator_id", sub)
			}
		}

		c.Request = c.Request.WithContext(WithToken(c.Request.Context(), raw))
		c.Next()
	}
}
