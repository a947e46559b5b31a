package api_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/psigiovana/contratos-assinados/internal/api"
	"github.com/psigiovana/contratos-assinados/internal/entity"
	"github.com/psigiovana/contratos-assinados/internal/mocks"
)

const (
	testOrigin = "https://psigiovana.github.io"
	testSecret = "test-secret"
)

type TestAPI struct {
	s      *mocks.MockService
	router http.Handler
}

func NewTestAPI(t *testing.T, maxBytes int64) *TestAPI {
	t.Helper()

	s := mocks.NewMockService(gomock.NewController(t))
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("contratos_stored 0\n"))
	})

	return &TestAPI{
		s:      s,
		router: api.NewRouter(api.NewHandler(s, maxBytes), api.NewMiddleware([]string{testOrigin}, testSecret), metrics),
	}
}

func (ta *TestAPI) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	ta.router.ServeHTTP(rec, req)

	return rec
}

func token(t *testing.T, secret string, expiresAt time.Time) string {
	t.Helper()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "giovana",
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	ta := NewTestAPI(t, 1<<20)

	rec := ta.do(t, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestHandler_Upload(t *testing.T) { //nolint:funlen
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		setup      func(s *mocks.MockService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "stored",
			body: `{"name":"contratos/a.pdf","contentBase64":"JVBERg=="}`,
			setup: func(s *mocks.MockService) {
				s.EXPECT().Upload(gomock.Any(), "contratos/a.pdf", "JVBERg==").
					Return(entity.Upload{Path: "contratos/a.pdf", SHA: "abc", Created: true, Status: entity.UploadStored}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"ok":true,"path":"contratos/a.pdf","sha":"abc","created":true}`,
		},
		{
			name: "legacy field names",
			body: `{"nomeArquivo":"contratos/a.pdf","conteudoBase64":"JVBERg=="}`,
			setup: func(s *mocks.MockService) {
				s.EXPECT().Upload(gomock.Any(), "contratos/a.pdf", "JVBERg==").
					Return(entity.Upload{Path: "contratos/a.pdf", SHA: "abc"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"ok":true,"path":"contratos/a.pdf","sha":"abc","created":false}`,
		},
		{
			name:       "malformed json",
			body:       `{"name":`,
			setup:      func(*mocks.MockService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing fields",
			body: `{"name":"a.pdf"}`,
			setup: func(s *mocks.MockService) {
				s.EXPECT().Upload(gomock.Any(), "a.pdf", "").Return(entity.Upload{}, entity.ErrIncorrectRequestBody)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "decoded content too large",
			body: `{"name":"a.pdf","contentBase64":"JVBERg=="}`,
			setup: func(s *mocks.MockService) {
				s.EXPECT().Upload(gomock.Any(), "a.pdf", "JVBERg==").Return(entity.Upload{}, entity.ErrPayloadTooLarge)
			},
			wantStatus: http.StatusRequestEntityTooLarge,
		},
		{
			name:       "body over limit",
			body:       fmt.Sprintf(`{"name":"a.pdf","contentBase64":"%s"}`, strings.Repeat("A", 200<<10)),
			setup:      func(*mocks.MockService) {},
			wantStatus: http.StatusRequestEntityTooLarge,
		},
		{
			name: "github failure",
			body: `{"name":"a.pdf","contentBase64":"JVBERg=="}`,
			setup: func(s *mocks.MockService) {
				s.EXPECT().Upload(gomock.Any(), "a.pdf", "JVBERg==").
					Return(entity.Upload{}, fmt.Errorf("%w: %w", entity.ErrPersistence, errors.New("409 conflict")))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ta := NewTestAPI(t, 1024)
			tt.setup(ta.s)

			req := httptest.NewRequest(http.MethodPost, "/upload", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")

			rec := ta.do(t, req)
			require.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantBody != "" {
				require.JSONEq(t, tt.wantBody, rec.Body.String())
				return
			}

			var resp api.ResponseError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.NotEmpty(t, resp.Message)
			require.NotEmpty(t, resp.Error)
			require.NotEmpty(t, resp.RequestID)
		})
	}
}

func TestMiddleware_Cors(t *testing.T) {
	t.Parallel()

	ta := NewTestAPI(t, 1<<20)

	req := httptest.NewRequest(http.MethodOptions, "/upload", nil)
	req.Header.Set("Origin", testOrigin)

	rec := ta.do(t, req)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, testOrigin, rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://evil.example")

	rec = ta.do(t, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestMiddleware_Auth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "no token", wantStatus: http.StatusUnauthorized},
		{name: "wrong secret", header: "Bearer " + token(t, "other", time.Now().Add(time.Hour)), wantStatus: http.StatusUnauthorized},
		{name: "expired", header: "Bearer " + token(t, testSecret, time.Now().Add(-time.Hour)), wantStatus: http.StatusUnauthorized},
		{name: "valid", header: "Bearer " + token(t, testSecret, time.Now().Add(time.Hour)), wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ta := NewTestAPI(t, 1<<20)

			if tt.wantStatus == http.StatusOK {
				ta.s.EXPECT().ListContracts(gomock.Any()).Return([]entity.RemoteFile{{Name: "a.pdf", Path: "contratos/a.pdf"}}, nil)
			}

			req := httptest.NewRequest(http.MethodGet, "/contratos", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := ta.do(t, req)
			require.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_Contract(t *testing.T) {
	t.Parallel()

	ta := NewTestAPI(t, 1<<20)
	auth := "Bearer " + token(t, testSecret, time.Now().Add(time.Hour))

	ta.s.EXPECT().Contract(gomock.Any(), "a.pdf").Return(entity.RemoteFile{Name: "a.pdf", SHA: "1"}, nil)
	ta.s.EXPECT().Contract(gomock.Any(), "b.pdf").Return(entity.RemoteFile{}, entity.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/contratos/a.pdf", nil)
	req.Header.Set("Authorization", auth)

	rec := ta.do(t, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"sha":"1"`)

	req = httptest.NewRequest(http.MethodGet, "/contratos/b.pdf", nil)
	req.Header.Set("Authorization", auth)

	rec = ta.do(t, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_UploadsList(t *testing.T) {
	t.Parallel()

	ta := NewTestAPI(t, 1<<20)
	auth := "Bearer " + token(t, testSecret, time.Now().Add(time.Hour))

	ta.s.EXPECT().UploadsList(gomock.Any(), entity.UploadsFilter{
		Status:  entity.UploadFailed,
		Page:    2,
		Limit:   20,
		OrderBy: entity.DESC,
	}).Return([]entity.Upload{{Path: "contratos/a.pdf", Status: entity.UploadFailed}}, 21, nil)

	req := httptest.NewRequest(http.MethodGet, "/uploads?status=failed&page=2", nil)
	req.Header.Set("Authorization", auth)

	rec := ta.do(t, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"totalUploads":21`)

	req = httptest.NewRequest(http.MethodGet, "/uploads?orderBy=sideways", nil)
	req.Header.Set("Authorization", auth)

	rec = ta.do(t, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Metrics(t *testing.T) {
	t.Parallel()

	ta := NewTestAPI(t, 1<<20)

	rec := ta.do(t, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "contratos_stored")
}
