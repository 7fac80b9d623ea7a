package httpx_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/doorman/pkg/httpx"
	"github.com/aussiebroadwan/doorman/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestChain_Order(t *testing.T) {
	var order []string
	tag := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}), tag("outer"), tag("inner"))

	serve(h, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.WriteError(rec, http.StatusNotFound, "NotFoundError", "a@b.c is not registered!",
		map[string]string{"email": "a@b.c"})

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	require.JSONEq(t,
		`{"error":{"name":"NotFoundError","message":"a@b.c is not registered!","details":{"email":"a@b.c"}}}`,
		rec.Body.String())
}

func TestWriteError_OmitsEmptyDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.WriteError(rec, http.StatusUnauthorized, "InvalidCredentialsError", "Password is not correct!", nil)
	require.JSONEq(t,
		`{"error":{"name":"InvalidCredentialsError","message":"Password is not correct!"}}`,
		rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Email string `json:"email"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"valid", `{"email":"a@b.c"}`, false},
		{"empty body", ``, true},
		{"not json", `email=a@b.c`, true},
		{"wrong type", `{"email":42}`, true},
		{"trailing data", `{"email":"a@b.c"}{"email":"x"}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var p payload
			err := httpx.DecodeJSON(httptest.NewRecorder(), req, &p)
			if tt.wantErr {
				require.ErrorIs(t, err, httpx.ErrBadJSON)
				return
			}
			require.NoError(t, err)
			require.Equal(t, "a@b.c", p.Email)
		})
	}
}

func TestAuthnMiddleware(t *testing.T) {
	secret := []byte("0123456789abcdef0123456789abcdef")
	signer, err := jwtx.NewSignerHS256(secret)
	require.NoError(t, err)
	verifier := jwtx.NewVerifierHS256(secret, jwtx.VerifyOptions{Issuer: "doorman"})

	valid, err := signer.Sign(jwtx.NewAccessClaims("user-1", "a@b.c", "A", "role-1", time.Minute, "doorman", time.Now()))
	require.NoError(t, err)

	var gotID string
	var gotClaims jwtx.Claims
	h := httpx.AuthnMiddleware(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = httpx.UserIDFromContext(r.Context())
		gotClaims, _ = httpx.ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("valid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
		req.Header.Set("Authorization", "Bearer "+valid)

		rec := serve(h, req)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "user-1", gotID)
		require.Equal(t, "a@b.c", gotClaims.Email)
	})

	t.Run("lowercase scheme", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
		req.Header.Set("Authorization", "bearer "+valid)
		require.Equal(t, http.StatusOK, serve(h, req).Code)
	})

	for name, header := range map[string]string{
		"missing header": "",
		"basic scheme":   "Basic dXNlcjpwYXNz",
		"empty token":    "Bearer ",
		"garbage token":  "Bearer abc.def.ghi",
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}

			rec := serve(h, req)
			require.Equal(t, http.StatusUnauthorized, rec.Code)
			require.Contains(t, rec.Header().Get("WWW-Authenticate"), `error="invalid_token"`)

			var env httpx.ErrorEnvelope
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
			require.Equal(t, "UnauthorizedError", env.Error.Name)
		})
	}
}
