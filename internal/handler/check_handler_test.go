package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sylvanite/backup-checker/internal/collector"
	"github.com/sylvanite/backup-checker/internal/config"
	"github.com/sylvanite/backup-checker/internal/service/check"
	"github.com/sylvanite/backup-checker/internal/testutil"
)

func newTestRouter(t *testing.T, homes string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	coll := collector.New([]collector.Rule{{
		Name:         "local",
		HomeDirsGlob: homes + "/[^@.]*",
		BackupSubdir: "Drive/Backup",
	}}, nil)

	cfg := &config.Config{
		Mode: config.ModeServe,
		Check: &config.CheckConfig{
			ToleranceOutdated: 120 * time.Hour,
			ToleranceFuture:   24 * time.Hour,
			ReminderInterval:  24 * time.Hour,
		},
		Mail:      &config.MailConfig{},
		Templates: config.LoadTemplateConfig(),
	}

	h := NewCheckHandler(check.NewService(coll, nil, nil, nil, cfg))

	r := gin.New()
	r.POST("/api/v1/check", h.HandleCheck)
	r.GET("/api/v1/report", h.HandleReport)
	return r
}

func TestCheckHandler(t *testing.T) {
	homes := t.TempDir()
	testutil.MakeBackupTree(t, testutil.MakeLocalUserHome(t, homes, "simple_user", "Drive/Backup"))
	r := newTestRouter(t, homes)

	t.Run("report before any run", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/report", nil))

		if w.Code != http.StatusNotFound {
			t.Errorf("GET /report status = %d, want 404", w.Code)
		}
	})

	t.Run("check with reference override", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/check?ref=2023-08-02T00:00:00Z", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("POST /check status = %d, body %s", w.Code, w.Body.String())
		}

		var result check.Result
		if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if result.OutdatedCount != 1 || result.OkCount != 0 {
			t.Errorf("result counts = %+v, want one outdated user", result)
		}
		if result.RunID == "" {
			t.Error("result run ID is empty")
		}
	})

	t.Run("report after run", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/report", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("GET /report status = %d", w.Code)
		}
		if w.Header().Get("X-Run-ID") == "" {
			t.Error("missing X-Run-ID header")
		}
		if !strings.Contains(w.Body.String(), "- simple_user  (2020-01-15)") {
			t.Errorf("report missing user line:\n%s", w.Body.String())
		}
	})

	t.Run("invalid reference date", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/check?ref=yesterday", nil))

		if w.Code != http.StatusBadRequest {
			t.Errorf("POST /check status = %d, want 400", w.Code)
		}
	})
}

func TestCheckHandler_NoUsers(t *testing.T) {
	r := newTestRouter(t, t.TempDir())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/check", nil))

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("POST /check status = %d, want 422", w.Code)
	}
}
