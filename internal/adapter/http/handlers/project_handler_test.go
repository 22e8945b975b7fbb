package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	response "pj_billing/internal/adapter/http/dto/response"
	"pj_billing/internal/adapter/http/handlers/mocks"
	"pj_billing/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestProjectHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftFlowUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.GET("/v1/projects", h.List)

		uc.EXPECT().ListProjects(gomock.Any()).Return([]entities.Project{
			{ID: "prj-1", Name: "Managed Operations Retainer", Category: entities.ProjectCategoryRecurring, Client: "Northwind Trading", BaselineAmount: 1200000},
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/projects", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp []response.ProjectResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(resp) != 1 || resp[0].Category != "recurring" {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("catalog error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftFlowUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.GET("/v1/projects", h.List)

		uc.EXPECT().ListProjects(gomock.Any()).Return(nil, errors.New("db"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/projects", nil))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
