package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"vizinhanca-ativa/internal/adapter/http/handlers/mocks"
	"vizinhanca-ativa/internal/domain/entities"
	"vizinhanca-ativa/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestUserHandler_Profile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get profile not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)

		r := gin.New()
		r.GET("/v1/profile", withActor(testPrestador), h.GetProfile)

		uc.EXPECT().GetProfile(gomock.Any(), testPrestador).Return(entities.User{}, usecase.ErrUserNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/profile", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("update profile success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)

		r := gin.New()
		r.PUT("/v1/profile", withActor(testPrestador), h.UpdateProfile)

		uc.EXPECT().UpdateProfile(gomock.Any(), testPrestador, usecase.UpdateProfileInput{
			FullName:    "João Silva",
			CompanyName: "Hidro Silva",
			Category:    entities.CategoryHidraulica,
		}).Return(entities.User{ID: testPrestador.ID, FullName: "João Silva", CompanyName: "Hidro Silva", UserType: entities.RolePrestador}, nil)

		body := `{"full_name":"João Silva","company_name":"Hidro Silva","category":"hidraulica"}`
		req := httptest.NewRequest(http.MethodPut, "/v1/profile", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestUserHandler_Providers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("directory hides phone and prefers company name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)

		r := gin.New()
		r.GET("/v1/providers", withActor(testSindico), h.ListProviders)

		uc.EXPECT().ListProviders(gomock.Any(), entities.CategoryHidraulica).Return([]entities.User{
			{ID: "u-1", FullName: "João Silva", CompanyName: "Hidro Silva", Phone: "11 99999-0000", UserType: entities.RolePrestador},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/providers?category=hidraulica", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if len(resp) != 1 || resp[0]["display_name"] != "Hidro Silva" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if _, leaked := resp[0]["phone"]; leaked {
			t.Fatalf("phone leaked in directory listing: %s", w.Body.String())
		}
	})

	t.Run("provider not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)

		r := gin.New()
		r.GET("/v1/providers/:provider_id", withActor(testSindico), h.GetProvider)

		uc.EXPECT().GetProvider(gomock.Any(), "u-404").Return(entities.User{}, usecase.ErrProviderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/providers/u-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
