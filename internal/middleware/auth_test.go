package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/lens-order-service/internal/entities"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123"

func TestAuth(t *testing.T) {
	buyer := entities.Principal{ID: uuid.New(), Role: entities.RoleBuyer}

	valid, err := IssueToken(testSecret, buyer, time.Hour)
	require.NoError(t, err)
	expired, err := IssueToken(testSecret, buyer, -time.Minute)
	require.NoError(t, err)
	foreign, err := IssueToken("another-secret-0000000", buyer, time.Hour)
	require.NoError(t, err)
	badRole, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{ID: buyer.ID.String(), Role: "courier"}).
		SignedString([]byte(testSecret))
	require.NoError(t, err)
	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{ID: buyer.ID.String(), Role: "admin"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	testCases := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "valid", header: "Bearer " + valid, wantStatus: http.StatusOK},
		{name: "lowercase scheme", header: "bearer " + valid, wantStatus: http.StatusOK},
		{name: "missing", header: "", wantStatus: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic dXNlcjpwYXNz", wantStatus: http.StatusUnauthorized},
		{name: "expired", header: "Bearer " + expired, wantStatus: http.StatusUnauthorized},
		{name: "wrong secret", header: "Bearer " + foreign, wantStatus: http.StatusUnauthorized},
		{name: "unknown role", header: "Bearer " + badRole, wantStatus: http.StatusUnauthorized},
		{name: "alg none", header: "Bearer " + noneAlg, wantStatus: http.StatusUnauthorized},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got entities.Principal
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, _ = PrincipalFrom(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/orders/buyer", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()
			Auth(logger, testSecret)(next).ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			if tc.wantStatus == http.StatusOK {
				assert.Equal(t, buyer, got)
			}
		})
	}
}

func TestPrincipalFrom_Empty(t *testing.T) {
	_, ok := PrincipalFrom(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	assert.False(t, ok)
}
