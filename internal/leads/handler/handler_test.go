package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"sales360_backend/internal/leads/cadence"
	"sales360_backend/internal/leads/dispatch"
	"sales360_backend/internal/leads/routing"
	"sales360_backend/internal/leads/scoring"
	"sales360_backend/internal/leads/service"
	"sales360_backend/platform/validator"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := service.New(
		scoring.New(scoring.DefaultRules()),
		routing.New(),
		cadence.New(),
		dispatch.New(dispatch.NewCatalog(), nil),
		nil, nil, nil, "GB",
	)
	h := New(svc, validator.New())

	engine := gin.New()
	h.RegisterRoutes(engine.Group("/api/v1/leads"))
	h.RegisterCadenceRoutes(engine.Group("/api/v1/cadence"))
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestScoreEndpointReturnsScoring(t *testing.T) {
	engine := newTestRouter()

	rec := doJSON(t, engine, http.MethodPost, "/api/v1/leads/score",
		`{"country_region":"UK","industry_type":"fx/crypto","budget_readiness":"yes"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Score       int    `json:"score"`
		IntentLevel string `json:"intent_level"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Score != 50 {
		t.Fatalf("expected score 50, got %d", body.Score)
	}
	if body.IntentLevel != "Warm" {
		t.Fatalf("expected Warm intent, got %q", body.IntentLevel)
	}
}

func TestScoreEndpointRejectsMalformedJSON(t *testing.T) {
	engine := newTestRouter()

	rec := doJSON(t, engine, http.MethodPost, "/api/v1/leads/score", `{"country_region":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestNextActionEndpointReturnsAllSections(t *testing.T) {
	engine := newTestRouter()

	rec := doJSON(t, engine, http.MethodPost, "/api/v1/leads/next-action",
		`{"country_region":"UK","industry_type":"fx/crypto","company":"Exness Partners","title":"CEO","decision_level":"owner","whatsapp_replied":true}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	for _, key := range []string{"scoring", "routing", "agent_action"} {
		if _, ok := body[key]; !ok {
			t.Fatalf("expected %q section in response: %s", key, rec.Body.String())
		}
	}
}

func TestPostCallFollowupEndpointValidatesScenario(t *testing.T) {
	engine := newTestRouter()

	rec := doJSON(t, engine, http.MethodPost, "/api/v1/leads/post-call-followup",
		`{"lead":{},"scenario":"party"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown scenario, got %d", rec.Code)
	}

	rec = doJSON(t, engine, http.MethodPost, "/api/v1/leads/post-call-followup",
		`{"lead":{},"scenario":"no_show"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		MessageType string `json:"message_type"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.MessageType != "post_call_no_show" {
		t.Fatalf("expected post_call_no_show, got %q", body.MessageType)
	}
}

func TestCadenceNextStepEndpoint(t *testing.T) {
	engine := newTestRouter()

	rec := doJSON(t, engine, http.MethodPost, "/api/v1/cadence/next-step",
		`{"lead":{},"last_outcome":"missed_call","days_inactive":2}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Decision struct {
			NextAgent string `json:"next_agent"`
			Scenario  string `json:"scenario"`
		} `json:"cadence_decision"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Decision.NextAgent != "post_call_followup_agent" {
		t.Fatalf("expected post_call_followup_agent, got %q", body.Decision.NextAgent)
	}
	if body.Decision.Scenario != "missed_call" {
		t.Fatalf("expected missed_call scenario, got %q", body.Decision.Scenario)
	}
}

func TestGetLeadRejectsInvalidID(t *testing.T) {
	engine := newTestRouter()

	rec := doJSON(t, engine, http.MethodGet, "/api/v1/leads/not-a-uuid", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid lead ID, got %d", rec.Code)
	}
}
