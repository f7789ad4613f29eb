package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/lens-order-service/internal/entities"
	"github.com/SergeyBogomolovv/lens-order-service/pkg/utils"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

var errInvalidClaims = errors.New("invalid token claims")

type (
	principalKey struct{}
	holderKey    struct{}
)

type principalHolder struct {
	p   entities.Principal
	set bool
}

func withHolder(ctx context.Context, h *principalHolder) context.Context {
	return context.WithValue(ctx, holderKey{}, h)
}

// Claims is the token payload: user id and role.
type Claims struct {
	ID   string `json:"id"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func (c Claims) principal() (entities.Principal, error) {
	id, err := uuid.Parse(c.ID)
	if err != nil || id == uuid.Nil {
		return entities.Principal{}, errInvalidClaims
	}
	role := entities.Role(c.Role)
	if !role.Valid() {
		return entities.Principal{}, errInvalidClaims
	}
	return entities.Principal{ID: id, Role: role}, nil
}

// Auth verifies the bearer token and puts the caller into the request context.
func Auth(logger *slog.Logger, secret string) func(next http.Handler) http.Handler {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	keyFunc := func(*jwt.Token) (any, error) { return []byte(secret), nil }

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				utils.WriteError(w, "unauthorized", "missing bearer token", http.StatusUnauthorized)
				return
			}

			var claims Claims
			if _, err := parser.ParseWithClaims(raw, &claims, keyFunc); err != nil {
				logger.Debug("token rejected", slog.Any("error", err))
				utils.WriteError(w, "unauthorized", "invalid token", http.StatusUnauthorized)
				return
			}

			p, err := claims.principal()
			if err != nil {
				utils.WriteError(w, "unauthorized", err.Error(), http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}

func WithPrincipal(ctx context.Context, p entities.Principal) context.Context {
	if h, ok := ctx.Value(holderKey{}).(*principalHolder); ok {
		h.p, h.set = p, true
	}
	return context.WithValue(ctx, principalKey{}, p)
}

func PrincipalFrom(ctx context.Context) (entities.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(entities.Principal)
	return p, ok
}

// IssueToken signs a token for the given principal. Used by tooling and tests;
// the service itself never issues tokens.
func IssueToken(secret string, p entities.Principal, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		ID:   p.ID.String(),
		Role: string(p.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
