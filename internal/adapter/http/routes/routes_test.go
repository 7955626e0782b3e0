package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/matteusmoreno/generate-pdf-moto-manager-service/internal/adapter/http/handlers"
	"github.com/matteusmoreno/generate-pdf-moto-manager-service/internal/adapter/http/handlers/mocks"
	"github.com/matteusmoreno/generate-pdf-moto-manager-service/internal/domain/entities"
	"github.com/matteusmoreno/generate-pdf-moto-manager-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockIServiceOrderReportUseCase(ctrl)
	router := newRouter(zap.NewNop(), handlers.NewServiceOrderReportHandler(uc))

	uc.EXPECT().GenerateServiceOrderReport(gomock.Any(), int64(3)).Return(entities.ServiceOrderReport{
		FileName:    "service_order_3.pdf",
		ContentType: "application/pdf",
		Content:     []byte("%PDF"),
	}, nil)
	uc.EXPECT().ListGenerations(gomock.Any(), int64(3)).Return(nil, nil)

	cases := []struct {
		path   string
		status int
	}{
		{"/v1/ping", http.StatusOK},
		{"/generate-pdf/service-order/3", http.StatusOK},
		{"/generate-pdf/service-order/abc", http.StatusNotFound},
		{"/v1/reports/service-orders/3/generations", http.StatusOK},
		{"/v1/generate-pdf/service-order/3", http.StatusNotFound},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
		if w.Code != tc.status {
			t.Fatalf("%s: expected %d, got %d", tc.path, tc.status, w.Code)
		}
	}
}

func TestRouter_RecoversFromPanic(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockIServiceOrderReportUseCase(ctrl)
	uc.EXPECT().GenerateServiceOrderReport(gomock.Any(), int64(1)).DoAndReturn(
		func(context.Context, int64) (entities.ServiceOrderReport, error) {
			panic("boom")
		},
	)
	router := newRouter(zap.NewNop(), handlers.NewServiceOrderReportHandler(uc))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/generate-pdf/service-order/1", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestReportSettings(t *testing.T) {
	t.Run("missing logo is cleared", func(t *testing.T) {
		s := reportSettings(config.ReportConfig{LogoPath: filepath.Join(t.TempDir(), "logo.png"), FooterBrand: "MotoManager"}, zap.NewNop())
		if s.Options.LogoPath != "" {
			t.Fatalf("expected logo to be cleared, got %q", s.Options.LogoPath)
		}
		if s.Layout.PageSize != "A4" || s.FooterBrand != "MotoManager" {
			t.Fatalf("unexpected settings: %+v", s)
		}
	})

	t.Run("existing logo is kept", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logo.png")
		if err := os.WriteFile(path, []byte("png"), 0o600); err != nil {
			t.Fatalf("write logo: %v", err)
		}
		s := reportSettings(config.ReportConfig{LogoPath: path, IncludeTimeline: true}, zap.NewNop())
		if s.Options.LogoPath != path || !s.Options.IncludeTimeline {
			t.Fatalf("unexpected options: %+v", s.Options)
		}
	})
}

func TestBuildReportHandler_WithoutAWS(t *testing.T) {
	cfg := &config.Config{
		MotoManager: config.MotoManagerConfig{BaseURL: "http://localhost:8080"},
	}
	h, err := buildReportHandler(context.Background(), cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h == nil {
		t.Fatalf("expected handler")
	}
}
