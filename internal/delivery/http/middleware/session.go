package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"

	"resume-insights/internal/pkg/token"
)

const CtxSessionIDKey = "session_id"

// SessionMiddleware gates endpoints that reuse an uploaded resume: the
// bearer token issued by the upload endpoint names the session to load.
type SessionMiddleware struct {
	tokens token.Service
}

func NewSessionMiddleware(tokens token.Service) *SessionMiddleware {
	return &SessionMiddleware{tokens: tokens}
}

func (m *SessionMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		tok, ok := bearerTokenFromHeader(c.Get("Authorization"))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Missing session token", nil, nil)
		}

		claims, err := m.tokens.ValidateToken(tok)
		if err != nil {
			if errors.Is(err, token.ErrTokenExpired) {
				return NewAppError(fiber.StatusUnauthorized, "Session token expired", nil, err)
			}
			return NewAppError(fiber.StatusUnauthorized, "Invalid session token", nil, err)
		}

		c.Locals(CtxSessionIDKey, claims.SessionID)

		return c.Next()
	}
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	tok := strings.TrimSpace(parts[1])
	if tok == "" {
		return "", false
	}
	return tok, true
}
