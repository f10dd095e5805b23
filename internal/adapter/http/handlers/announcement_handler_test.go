package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"malharia_pdv/internal/adapter/http/handlers/mocks"
	"malharia_pdv/internal/domain/entities"
	"malharia_pdv/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAnnouncementHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAnnouncementUseCase(ctrl)
	h := NewAnnouncementHandler(uc)

	uc.EXPECT().List(gomock.Any()).Return([]entities.Announcement{
		{Row: 2, CreatedAt: "01-01-2025 10:00:00", Recipient: "Equipe", Text: "pedido pronto"},
	}, nil)

	r := gin.New()
	r.GET("/v1/avisos", h.List)

	req := httptest.NewRequest(http.MethodGet, "/v1/avisos", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var got []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(got) != 1 || got[0]["row"] != float64(2) || got[0]["text"] != "pedido pronto" {
		t.Fatalf("unexpected body: %v", got)
	}
}

func TestAnnouncementHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnnouncementUseCase(ctrl)
		h := NewAnnouncementHandler(uc)

		r := gin.New()
		r.POST("/v1/avisos", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/avisos", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing text", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnnouncementUseCase(ctrl)
		h := NewAnnouncementHandler(uc)

		r := gin.New()
		r.POST("/v1/avisos", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/avisos", bytes.NewBufferString(`{"recipient":"Equipe"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnnouncementUseCase(ctrl)
		h := NewAnnouncementHandler(uc)

		uc.EXPECT().Create(gomock.Any(), "Equipe", "81988887777", "pedido pronto").Return(entities.Announcement{
			CreatedAt: "01-01-2025 10:00:00",
			Recipient: "Equipe",
			WhatsApp:  "81988887777",
			Text:      "pedido pronto",
		}, nil)

		r := gin.New()
		r.POST("/v1/avisos", h.Create)

		body := `{"recipient":"Equipe","whatsapp":"81988887777","text":"pedido pronto"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/avisos", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestAnnouncementHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnnouncementUseCase(ctrl)
		h := NewAnnouncementHandler(uc)

		uc.EXPECT().Delete(gomock.Any(), 1).Return(usecase.ErrInvalidAnnouncementRow)

		r := gin.New()
		r.POST("/v1/avisos/deletar", h.Delete)

		req := httptest.NewRequest(http.MethodPost, "/v1/avisos/deletar", bytes.NewBufferString(`{"row":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnnouncementUseCase(ctrl)
		h := NewAnnouncementHandler(uc)

		uc.EXPECT().Delete(gomock.Any(), 4).Return(nil)

		r := gin.New()
		r.POST("/v1/avisos/deletar", h.Delete)

		req := httptest.NewRequest(http.MethodPost, "/v1/avisos/deletar", bytes.NewBufferString(`{"row":"4"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
