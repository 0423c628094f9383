package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"csvforge/internal/modkit/module"
	"csvforge/internal/platform/config"
	phttp "csvforge/internal/platform/net/http"
	"csvforge/internal/platform/testkit"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	testkit.Serial(t)
	module.Reset()

	srv := phttp.NewServer(config.New().Prefix("CSVFORGE_TEST_"))
	Mount(srv.Router(), Options{Config: config.New()})
	return srv.Router().Mux()
}

func TestConvertEndpoint(t *testing.T) {
	h := newTestRouter(t)

	body := `{"csv":"name,age\nAnn,30\n","class_name":"person"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/convert", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}

	var env struct {
		Status string `json:"status"`
		Data   struct {
			RunID     string            `json:"run_id"`
			ClassName string            `json:"class_name"`
			Records   int               `json:"records"`
			JSON      string            `json:"json"`
			Sources   map[string]string `json:"sources"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.Data.ClassName != "Person" || env.Data.Records != 1 {
		t.Fatalf("unexpected result: %+v", env.Data)
	}
	if env.Data.RunID == "" || len(env.Data.Sources) != 4 {
		t.Fatalf("missing run id or sources: %+v", env.Data)
	}
	testkit.MustContain(t, env.Data.JSON, `"age":30`)
}

func TestConvertEndpointValidation(t *testing.T) {
	h := newTestRouter(t)

	// neither csv nor path
	req := httptest.NewRequest(http.MethodPost, "/api/v1/convert", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body: %s", rec.Code, rec.Body.String())
	}

	// unknown serializer kind is rejected by input validation
	req = httptest.NewRequest(http.MethodPost, "/api/v1/convert",
		strings.NewReader(`{"csv":"a\n1\n","kinds":["thrift"]}`))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body: %s", rec.Code, rec.Body.String())
	}
}

func TestConvertEndpointRejectsServerPath(t *testing.T) {
	h := newTestRouter(t)

	// file reads are a CLI affordance; a remote caller must not be able
	// to point the service at the server's filesystem
	req := httptest.NewRequest(http.MethodPost, "/api/v1/convert",
		strings.NewReader(`{"path":"/etc/passwd"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422, body: %s", rec.Code, rec.Body.String())
	}
	testkit.MustNotContain(t, rec.Body.String(), "root:")
	testkit.MustContain(t, rec.Body.String(), "csv text")
}

func TestSampleEndpoint(t *testing.T) {
	h := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sample", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}
	testkit.MustContain(t, rec.Body.String(), "john@example.com")
	testkit.MustContain(t, rec.Body.String(), "DataSerializer")
}

func TestMetaEndpoints(t *testing.T) {
	h := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/meta/health", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("health status = %d, body: %s", rec.Code, rec.Body.String())
	}
	testkit.MustContain(t, rec.Body.String(), `"ok":true`)
	testkit.MustContain(t, rec.Body.String(), "csvforge-api")

	req = httptest.NewRequest(http.MethodGet, "/api/v1/meta/version", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("version status = %d, body: %s", rec.Code, rec.Body.String())
	}
	testkit.MustContain(t, rec.Body.String(), `"version":"dev"`)

	// no Postgres wired here so the pg check is skipped, not failed
	req = httptest.NewRequest(http.MethodGet, "/api/v1/meta/ready", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("ready status = %d, body: %s", rec.Code, rec.Body.String())
	}
	testkit.MustContain(t, rec.Body.String(), `"status":"ok"`)
	testkit.MustContain(t, rec.Body.String(), `"skipped"`)
}

func TestRunsEndpointWithoutLedger(t *testing.T) {
	h := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/runs", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	// no Postgres wired in this test, the ledger reports unavailable
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503, body: %s", rec.Code, rec.Body.String())
	}
}
