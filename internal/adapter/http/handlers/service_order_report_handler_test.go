package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/matteusmoreno/generate-pdf-moto-manager-service/internal/adapter/http/handlers/mocks"
	"github.com/matteusmoreno/generate-pdf-moto-manager-service/internal/domain/entities"
	"github.com/matteusmoreno/generate-pdf-moto-manager-service/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newReportRouter(h *ServiceOrderReportHandler) *gin.Engine {
	r := gin.New()
	r.GET("/generate-pdf/service-order/:order_id", h.GeneratePDF)
	r.GET("/v1/reports/service-orders/:order_id/generations", h.ListGenerations)
	r.GET("/v1/reports/generations/:generation_id", h.GetGeneration)
	return r
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestServiceOrderReportHandler_GeneratePDF(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderReportUseCase(ctrl)
		r := newReportRouter(NewServiceOrderReportHandler(uc))

		uc.EXPECT().GenerateServiceOrderReport(gomock.Any(), int64(1)).Return(entities.ServiceOrderReport{
			OrderID:     1,
			FileName:    "service_order_1.pdf",
			ContentType: "application/pdf",
			Content:     []byte("%PDF-1.3 test"),
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/generate-pdf/service-order/1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Header().Get("Content-Type"); got != "application/pdf" {
			t.Fatalf("unexpected content type %q", got)
		}
		if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="service_order_1.pdf"` {
			t.Fatalf("unexpected content disposition %q", got)
		}
		if w.Body.String() != "%PDF-1.3 test" {
			t.Fatalf("unexpected body %q", w.Body.String())
		}
	})

	t.Run("invalid id is not found without calling usecase", func(t *testing.T) {
		for _, id := range []string{"abc", "0", "-1"} {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIServiceOrderReportUseCase(ctrl)
			r := newReportRouter(NewServiceOrderReportHandler(uc))

			req := httptest.NewRequest(http.MethodGet, "/generate-pdf/service-order/"+id, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusNotFound {
				t.Fatalf("id %q: expected 404, got %d", id, w.Code)
			}
			body := decodeError(t, w)
			if body["error"] != "Ordem de serviço não encontrada" || body["code"] != "SERVICE_ORDER_NOT_FOUND" {
				t.Fatalf("id %q: unexpected body %v", id, body)
			}
			ctrl.Finish()
		}
	})

	t.Run("upstream failures map to not found", func(t *testing.T) {
		for name, cause := range map[string]error{
			"order missing upstream": errors.New("moto manager service order fetch failed: status 404"),
			"login rejected":         errors.New("moto manager authentication failed: status 401"),
		} {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIServiceOrderReportUseCase(ctrl)
			r := newReportRouter(NewServiceOrderReportHandler(uc))

			uc.EXPECT().GenerateServiceOrderReport(gomock.Any(), int64(999)).
				Return(entities.ServiceOrderReport{}, fmt.Errorf("%w: %w", usecase.ErrServiceOrderNotFound, cause))

			req := httptest.NewRequest(http.MethodGet, "/generate-pdf/service-order/999", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusNotFound {
				t.Fatalf("%s: expected 404, got %d", name, w.Code)
			}
			if ct := w.Header().Get("Content-Type"); ct == "application/pdf" {
				t.Fatalf("%s: no pdf expected", name)
			}
			if body := decodeError(t, w); body["error"] != "Ordem de serviço não encontrada" {
				t.Fatalf("%s: unexpected body %v", name, body)
			}
			ctrl.Finish()
		}
	})

	t.Run("render failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderReportUseCase(ctrl)
		r := newReportRouter(NewServiceOrderReportHandler(uc))

		uc.EXPECT().GenerateServiceOrderReport(gomock.Any(), int64(1)).Return(entities.ServiceOrderReport{}, usecase.ErrReportRenderFailed)

		req := httptest.NewRequest(http.MethodGet, "/generate-pdf/service-order/1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if body := decodeError(t, w); body["code"] != "REPORT_RENDER_FAILED" {
			t.Fatalf("unexpected body %v", body)
		}
	})
}

func TestServiceOrderReportHandler_ListGenerations(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderReportUseCase(ctrl)
		r := newReportRouter(NewServiceOrderReportHandler(uc))

		uc.EXPECT().ListGenerations(gomock.Any(), int64(5)).Return([]entities.ReportGeneration{
			{ID: "g2", OrderID: 5, GeneratedAt: time.Now().UTC()},
			{ID: "g1", OrderID: 5, GeneratedAt: time.Now().UTC().Add(-time.Hour)},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/service-orders/5/generations", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			OrderID     int64 `json:"order_id"`
			Generations []struct {
				ID string `json:"id"`
			} `json:"generations"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body.OrderID != 5 || len(body.Generations) != 2 || body.Generations[0].ID != "g2" {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("history disabled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderReportUseCase(ctrl)
		r := newReportRouter(NewServiceOrderReportHandler(uc))

		uc.EXPECT().ListGenerations(gomock.Any(), int64(5)).Return(nil, usecase.ErrHistoryNotConfigured)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/service-orders/5/generations", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestServiceOrderReportHandler_GetGeneration(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success with download url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderReportUseCase(ctrl)
		r := newReportRouter(NewServiceOrderReportHandler(uc))

		uc.EXPECT().GetGeneration(gomock.Any(), "gen-1").Return(usecase.ReportGenerationDetail{
			Generation:           entities.ReportGeneration{ID: "gen-1", OrderID: 1, StorageKey: "k"},
			DownloadURL:          "https://s3/presigned",
			DownloadURLExpiresAt: time.Now().Add(15 * time.Minute),
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/generations/gen-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["download_url"] != "https://s3/presigned" || body["archived"] != true {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderReportUseCase(ctrl)
		r := newReportRouter(NewServiceOrderReportHandler(uc))

		uc.EXPECT().GetGeneration(gomock.Any(), "nope").Return(usecase.ReportGenerationDetail{}, usecase.ErrReportGenerationNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/generations/nope", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if body := decodeError(t, w); body["code"] != "REPORT_GENERATION_NOT_FOUND" {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("unexpected error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderReportUseCase(ctrl)
		r := newReportRouter(NewServiceOrderReportHandler(uc))

		uc.EXPECT().GetGeneration(gomock.Any(), "gen-1").Return(usecase.ReportGenerationDetail{}, errors.New("dynamo down"))

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/generations/gen-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestMapServiceOrderReportError(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{usecase.ErrInvalidServiceOrderID, http.StatusNotFound, "SERVICE_ORDER_NOT_FOUND"},
		{fmt.Errorf("%w: x", usecase.ErrServiceOrderNotFound), http.StatusNotFound, "SERVICE_ORDER_NOT_FOUND"},
		{usecase.ErrInvalidReportGenerationID, http.StatusBadRequest, "INVALID_REQUEST"},
		{usecase.ErrReportGenerationNotFound, http.StatusNotFound, "REPORT_GENERATION_NOT_FOUND"},
		{usecase.ErrHistoryNotConfigured, http.StatusServiceUnavailable, "REPORT_HISTORY_DISABLED"},
		{usecase.ErrReportRenderFailed, http.StatusInternalServerError, "REPORT_RENDER_FAILED"},
		{errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		got := mapServiceOrderReportError(tc.err)
		if got.HTTPStatus != tc.status || got.Code != tc.code {
			t.Fatalf("%v: got (%d, %s), want (%d, %s)", tc.err, got.HTTPStatus, got.Code, tc.status, tc.code)
		}
	}
}
