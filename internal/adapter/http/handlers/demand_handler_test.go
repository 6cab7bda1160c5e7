package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vizinhanca-ativa/internal/adapter/http/handlers/mocks"
	"vizinhanca-ativa/internal/adapter/http/middleware"
	"vizinhanca-ativa/internal/domain/entities"
	"vizinhanca-ativa/internal/usecase"
	"vizinhanca-ativa/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

var (
	testSindico   = entities.Actor{ID: "u-sindico", Role: entities.RoleSindico}
	testPrestador = entities.Actor{ID: "u-prestador", Role: entities.RolePrestador}
)

func withActor(actor entities.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetActor(c, actor)
		c.Next()
	}
}

func TestDemandHandler_CreateDemand(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDemandUseCase(ctrl)
		h := NewDemandHandler(uc)

		r := gin.New()
		r.POST("/v1/demands", h.CreateDemand)

		req := httptest.NewRequest(http.MethodPost, "/v1/demands", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDemandUseCase(ctrl)
		h := NewDemandHandler(uc)

		r := gin.New()
		r.POST("/v1/demands", withActor(testSindico), h.CreateDemand)

		req := httptest.NewRequest(http.MethodPost, "/v1/demands", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("forwards idempotency key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDemandUseCase(ctrl)
		h := NewDemandHandler(uc)

		r := gin.New()
		r.POST("/v1/demands", withActor(testSindico), h.CreateDemand)

		uc.EXPECT().CreateDemand(gomock.Any(), testSindico, usecase.CreateDemandInput{
			Title:          "Portão quebrado",
			Category:       entities.CategorySeguranca,
			Description:    "Portão da garagem não fecha",
			IdempotencyKey: "key-1",
		}).Return(usecase.CreateDemandResult{Demand: entities.Demand{ID: "key-1", Status: entities.DemandStatusAberto}}, nil)

		body := `{"title":"Portão quebrado","category":"seguranca","description":"Portão da garagem não fecha"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/demands", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Idempotency-Key", "key-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("degraded analyzer surfaces warning", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDemandUseCase(ctrl)
		h := NewDemandHandler(uc)

		r := gin.New()
		r.POST("/v1/demands", withActor(testSindico), h.CreateDemand)

		uc.EXPECT().CreateDemand(gomock.Any(), testSindico, gomock.Any()).Return(usecase.CreateDemandResult{
			Demand:           entities.Demand{ID: "d-1", Status: entities.DemandStatusAberto},
			AnalyzerDegraded: true,
		}, nil)

		body := `{"title":"t","category":"outros","description":"d"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/demands", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		warnings, _ := resp["warnings"].([]any)
		if len(warnings) != 1 || warnings[0] != "safety_analysis_unavailable" {
			t.Fatalf("expected degradation warning, got %s", w.Body.String())
		}
	})

	t.Run("role error maps to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDemandUseCase(ctrl)
		h := NewDemandHandler(uc)

		r := gin.New()
		r.POST("/v1/demands", withActor(testPrestador), h.CreateDemand)

		uc.EXPECT().CreateDemand(gomock.Any(), testPrestador, gomock.Any()).Return(usecase.CreateDemandResult{}, usecase.ErrNotSindico)

		body := `{"title":"t","category":"outros","description":"d"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/demands", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestDemandHandler_ListDemands(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("mine filter scopes to the caller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDemandUseCase(ctrl)
		h := NewDemandHandler(uc)

		r := gin.New()
		r.GET("/v1/demands", withActor(testSindico), h.ListDemands)

		uc.EXPECT().ListDemands(gomock.Any(), interfaces.DemandFilter{OwnerID: testSindico.ID}).Return([]entities.Demand{{ID: "d-1"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/demands?mine=true", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid category maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDemandUseCase(ctrl)
		h := NewDemandHandler(uc)

		r := gin.New()
		r.GET("/v1/demands", withActor(testSindico), h.ListDemands)

		uc.EXPECT().ListDemands(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrInvalidDemandCategory)

		req := httptest.NewRequest(http.MethodGet, "/v1/demands?category=nope", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestDemandHandler_SubmitProposal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDemandUseCase(ctrl)
		h := NewDemandHandler(uc)

		r := gin.New()
		r.POST("/v1/demands/:demand_id/proposals", withActor(testPrestador), h.SubmitProposal)

		now := time.Now().UTC()
		uc.EXPECT().SubmitProposal(gomock.Any(), "d-1", testPrestador, usecase.SubmitProposalInput{
			Message: "Resolvo amanhã",
			Value:   decimal.RequireFromString("350.50"),
		}).Return(entities.Proposal{ID: "p-1", DemandID: "d-1", Value: decimal.RequireFromString("350.50"), CreatedAt: now}, nil)

		body := `{"message":"Resolvo amanhã","value":"350.50"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/demands/d-1/proposals", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["id"] != "p-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("hired demand maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDemandUseCase(ctrl)
		h := NewDemandHandler(uc)

		r := gin.New()
		r.POST("/v1/demands/:demand_id/proposals", withActor(testPrestador), h.SubmitProposal)

		uc.EXPECT().SubmitProposal(gomock.Any(), "d-1", testPrestador, gomock.Any()).Return(entities.Proposal{}, usecase.ErrDemandHired)

		body := `{"message":"m","value":"10"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/demands/d-1/proposals", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestDemandHandler_HireProvider(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDemandUseCase(ctrl)
		h := NewDemandHandler(uc)

		r := gin.New()
		r.POST("/v1/demands/:demand_id/hire", withActor(testSindico), h.HireProvider)

		uc.EXPECT().HireProvider(gomock.Any(), "d-1", testSindico, "p-1").Return(entities.Demand{
			ID:              "d-1",
			Status:          entities.DemandStatusContratado,
			HiredProviderID: "u-prestador",
			HiredValue:      decimal.RequireFromString("350.50"),
			HiredAt:         time.Now().UTC(),
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/demands/d-1/hire", bytes.NewBufferString(`{"proposal_id":"p-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("non author maps to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDemandUseCase(ctrl)
		h := NewDemandHandler(uc)

		r := gin.New()
		r.POST("/v1/demands/:demand_id/hire", withActor(testSindico), h.HireProvider)

		uc.EXPECT().HireProvider(gomock.Any(), "d-1", testSindico, "p-1").Return(entities.Demand{}, usecase.ErrNotDemandAuthor)

		req := httptest.NewRequest(http.MethodPost, "/v1/demands/d-1/hire", bytes.NewBufferString(`{"proposal_id":"p-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("double hire maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDemandUseCase(ctrl)
		h := NewDemandHandler(uc)

		r := gin.New()
		r.POST("/v1/demands/:demand_id/hire", withActor(testSindico), h.HireProvider)

		uc.EXPECT().HireProvider(gomock.Any(), "d-1", testSindico, "p-1").Return(entities.Demand{}, usecase.ErrDemandHired)

		req := httptest.NewRequest(http.MethodPost, "/v1/demands/d-1/hire", bytes.NewBufferString(`{"proposal_id":"p-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestMapDemandError(t *testing.T) {
	if got := mapDemandError(usecase.ErrInvalidDemandTitle); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapDemandError(usecase.ErrDemandNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapDemandError(usecase.ErrProposalNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapDemandError(usecase.ErrDemandHired); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapDemandError(usecase.ErrDuplicateDemand); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapDemandError(usecase.ErrDuplicateProposal); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapDemandError(usecase.ErrNotDemandAuthor); got.HTTPStatus != http.StatusForbidden {
		t.Fatalf("expected 403")
	}
	if got := mapDemandError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
