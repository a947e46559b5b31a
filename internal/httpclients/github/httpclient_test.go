package github_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/psigiovana/contratos-assinados/internal/entity"
	"github.com/psigiovana/contratos-assinados/internal/httpclients/github"
	"github.com/psigiovana/contratos-assinados/pkg/config"
)

func newClient(url string) *github.Client {
	return github.NewClient(config.GitHub{
		Token:         "secret",
		Repo:          "psigiovana/contratos",
		Branch:        "main",
		APIURL:        url,
		Timeout:       5 * time.Second,
		RetryAttempts: 1,
	})
}

func TestClient_FileSHA(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    int
		body      string
		wantSHA   string
		wantFound bool
		wantErr   bool
	}{
		{
			name:      "existing file",
			status:    http.StatusOK,
			body:      `{"type":"file","name":"a.pdf","path":"contratos/a.pdf","sha":"abc123"}`,
			wantSHA:   "abc123",
			wantFound: true,
		},
		{
			name:   "missing file",
			status: http.StatusNotFound,
			body:   `{"message":"Not Found"}`,
		},
		{
			name:    "forbidden",
			status:  http.StatusForbidden,
			body:    `{"message":"Bad credentials"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodGet, r.Method)
				require.Equal(t, "/repos/psigiovana/contratos/contents/contratos/a.pdf", r.URL.Path)
				require.Equal(t, "main", r.URL.Query().Get("ref"))
				require.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
				require.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))

				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			sha, found, err := newClient(srv.URL).FileSHA(context.Background(), "contratos/a.pdf")
			if tt.wantErr {
				require.ErrorIs(t, err, github.ErrUnexpectedStatus)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.wantSHA, sha)
			require.Equal(t, tt.wantFound, found)
		})
	}
}

func TestClient_FileSHARetriesServerErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}

		_, _ = w.Write([]byte(`{"type":"file","sha":"def456"}`))
	}))
	defer srv.Close()

	sha, found, err := newClient(srv.URL).FileSHA(context.Background(), "contratos/a.pdf")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "def456", sha)
	require.Equal(t, int32(2), calls.Load())
}

func TestClient_PutFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		sha     string
		status  int
		wantErr bool
	}{
		{name: "create", status: http.StatusCreated},
		{name: "replace", sha: "abc123", status: http.StatusOK},
		{name: "conflict", sha: "stale", status: http.StatusConflict, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var calls atomic.Int32

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)

				require.Equal(t, http.MethodPut, r.Method)
				require.Equal(t, "/repos/psigiovana/contratos/contents/contratos/12345_Maria_Silva_Contrato.pdf", r.URL.Path)

				var body map[string]string
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				require.Equal(t, "Upload contrato: contratos/12345_Maria_Silva_Contrato.pdf", body["message"])
				require.Equal(t, "JVBERg==", body["content"])
				require.Equal(t, "main", body["branch"])
				require.Equal(t, tt.sha, body["sha"])

				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"content":{"name":"12345_Maria_Silva_Contrato.pdf","path":"contratos/12345_Maria_Silva_Contrato.pdf","sha":"new","size":4}}`))
			}))
			defer srv.Close()

			file, err := newClient(srv.URL).PutFile(context.Background(), "contratos/12345_Maria_Silva_Contrato.pdf", "JVBERg==", tt.sha)
			require.Equal(t, int32(1), calls.Load())

			if tt.wantErr {
				require.ErrorIs(t, err, github.ErrUnexpectedStatus)
				return
			}

			require.NoError(t, err)
			require.Equal(t, "new", file.SHA)
			require.Equal(t, int64(4), file.Size)
		})
	}
}

func TestClient_List(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/psigiovana/contratos/contents/contratos":
			_, _ = w.Write([]byte(`[
				{"type":"file","name":"a.pdf","path":"contratos/a.pdf","sha":"1","size":10},
				{"type":"dir","name":"old","path":"contratos/old","sha":"2"}
			]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := newClient(srv.URL)

	files, err := c.List(context.Background(), "contratos")
	require.NoError(t, err)
	require.Equal(t, []entity.RemoteFile{{Name: "a.pdf", Path: "contratos/a.pdf", SHA: "1", Size: 10}}, files)

	files, err = c.List(context.Background(), "vazio")
	require.NoError(t, err)
	require.Empty(t, files)

	_, err = c.File(context.Background(), "contratos/b.pdf")
	require.ErrorIs(t, err, entity.ErrNotFound)
}
