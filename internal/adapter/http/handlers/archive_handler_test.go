package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"malharia_pdv/internal/adapter/http/handlers/mocks"
	"malharia_pdv/internal/domain/entities"
	"malharia_pdv/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestArchiveHandler_Stats(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIArchiveUseCase(ctrl)
		h := NewArchiveHandler(uc)

		uc.EXPECT().Stats(gomock.Any()).Return(entities.ArchiveStats{
			TotalArchived:     12,
			ArchivedThisMonth: 3,
			LastArchivedAt:    "28/08/2025 14:30",
		}, nil)

		r := gin.New()
		r.GET("/v1/arquivados/estatisticas", h.Stats)

		req := httptest.NewRequest(http.MethodGet, "/v1/arquivados/estatisticas", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if got["total_archived"] != float64(12) || got["archived_this_month"] != float64(3) {
			t.Fatalf("unexpected body: %v", got)
		}
		if got["last_archived_at"] != "28/08/2025 14:30" {
			t.Fatalf("unexpected last archived: %v", got)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIArchiveUseCase(ctrl)
		h := NewArchiveHandler(uc)

		uc.EXPECT().Stats(gomock.Any()).Return(entities.ArchiveStats{}, errors.New("store"))

		r := gin.New()
		r.GET("/v1/arquivados/estatisticas", h.Stats)

		req := httptest.NewRequest(http.MethodGet, "/v1/arquivados/estatisticas", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestArchiveHandler_RunSweep(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIArchiveUseCase(ctrl)
		h := NewArchiveHandler(uc)

		uc.EXPECT().SweepReport(gomock.Any()).Return(usecase.SweepReport{
			Archived: 2, TotalBefore: 10, TotalAfter: 12,
		}, nil)

		r := gin.New()
		r.POST("/v1/arquivados/varredura", h.RunSweep)

		req := httptest.NewRequest(http.MethodPost, "/v1/arquivados/varredura", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if got["archived"] != float64(2) || got["total_after"] != float64(12) {
			t.Fatalf("unexpected body: %v", got)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIArchiveUseCase(ctrl)
		h := NewArchiveHandler(uc)

		uc.EXPECT().SweepReport(gomock.Any()).Return(usecase.SweepReport{}, errors.New("store"))

		r := gin.New()
		r.POST("/v1/arquivados/varredura", h.RunSweep)

		req := httptest.NewRequest(http.MethodPost, "/v1/arquivados/varredura", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
