package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMiddleware_RecordsRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Middleware())
	router.GET("/api/articles/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/articles/:id", "404"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/articles/42", nil)
	router.ServeHTTP(w, req)

	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/articles/:id", "404"))
	if after-before != 1 {
		t.Errorf("Expected one request recorded, got %v", after-before)
	}
}

func TestRecordHelpers(t *testing.T) {
	before := testutil.ToFloat64(NarrationsTotal.WithLabelValues(NarrationHit))
	RecordNarration(NarrationHit)
	if testutil.ToFloat64(NarrationsTotal.WithLabelValues(NarrationHit))-before != 1 {
		t.Error("Expected narration hit to be counted")
	}

	beforeErr := testutil.ToFloat64(AIRequestsTotal.WithLabelValues("speech", "error"))
	RecordAIRequest("speech", errors.New("boom"), time.Second)
	if testutil.ToFloat64(AIRequestsTotal.WithLabelValues("speech", "error"))-beforeErr != 1 {
		t.Error("Expected AI error to be counted")
	}

	beforeIngest := testutil.ToFloat64(IngestedArticlesTotal.WithLabelValues("bbc"))
	RecordIngested("bbc", 3)
	if testutil.ToFloat64(IngestedArticlesTotal.WithLabelValues("bbc"))-beforeIngest != 3 {
		t.Error("Expected 3 ingested articles")
	}
}

func TestHandler_ExposesMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/metrics", Handler())
	RecordNarration(NarrationMiss)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/metrics", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "radioai_narrations_total") {
		t.Error("Expected narration metric in output")
	}
}
