package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/psigiovana/contratos-assinados/pkg/metrics"
)

func TestMetrics(t *testing.T) {
	t.Parallel()

	m := metrics.New()
	// a second instance must not collide with the first one
	_ = metrics.New()

	m.ObserveUpload(time.Now(), "stored", true, 1024)
	m.ObserveUpload(time.Now(), "stored", true, 2048)
	m.ObserveUpload(time.Now(), "failed", false, 0)
	m.SetStoredContracts(7)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), `contratos_uploads_total{created="true",status="stored"} 2`)
	require.Contains(t, string(body), `contratos_uploads_total{created="false",status="failed"} 1`)
	require.Contains(t, string(body), "contratos_upload_bytes_count 2")
	require.Contains(t, string(body), "contratos_stored 7")
}
