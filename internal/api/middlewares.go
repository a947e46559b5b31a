package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"slices"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang-jwt/jwt/v5/request"

	"github.com/psigiovana/contratos-assinados/internal/entity"
	"github.com/psigiovana/contratos-assinados/pkg/logger"
)

type Middleware struct {
	origins   []string
	jwtSecret []byte
}

// NewMiddleware takes the CORS allowlist and the HMAC secret of admin tokens.
func NewMiddleware(origins []string, jwtSecret string) *Middleware {
	return &Middleware{
		origins:   origins,
		jwtSecret: []byte(jwtSecret),
	}
}

func (m *Middleware) Log(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.SetRequestID(r.Context(), uuid.Must(uuid.NewV4()).String())

		headers := ""

		for k, v := range r.Header {
			if k == "Authorization" {
				continue
			}

			headers += fmt.Sprintf("%s: %s,\n", k, v)
		}

		slog.InfoContext(ctx, "incoming request", "method", r.Method, "url", r.URL.String(), "headers", headers, "user_ip", r.RemoteAddr)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func(ctx context.Context) {
			err := recover()
			if err != nil {
				slog.ErrorContext(ctx, "panic", "error", err, "stack", string(debug.Stack()))
				SendErr(ctx, w, http.StatusInternalServerError, fmt.Errorf("panic: %v", err), errInternalText)
			}
		}(r.Context())
		next.ServeHTTP(w, r)
	})
}

// Cors answers only origins from the allowlist.
func (m *Middleware) Cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		w.Header().Add("Vary", "Origin")

		if origin != "" && slices.Contains(m.origins, origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Origin, Accept")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Auth admits requests carrying an HS256 bearer token signed with the admin
// secret. Without a secret every request is rejected.
func (m *Middleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if len(m.jwtSecret) == 0 {
			SendErr(ctx, w, http.StatusUnauthorized, entity.ErrUnauthorized, "Acesso administrativo desabilitado")
			return
		}

		accessToken, err := request.BearerExtractor{}.ExtractToken(r)
		if err != nil {
			SendErr(ctx, w, http.StatusUnauthorized, fmt.Errorf("%w: %w", entity.ErrUnauthorized, err), "Token ausente no cabeçalho")
			return
		}

		var claims jwt.RegisteredClaims

		_, err = jwt.ParseWithClaims(accessToken, &claims, func(*jwt.Token) (any, error) {
			return m.jwtSecret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
		if err != nil {
			msg := "Token inválido"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token expirado"
			}

			SendErr(ctx, w, http.StatusUnauthorized, fmt.Errorf("%w: %w", entity.ErrUnauthorized, err), msg)

			return
		}

		ctx = entity.SetAdminToContext(ctx, entity.Admin{Subject: claims.Subject})

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
