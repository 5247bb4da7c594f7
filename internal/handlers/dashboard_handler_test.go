package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDashboardHandler_Get(t *testing.T) {
	handler := NewDashboardHandler(zap.NewNop())

	r := chi.NewRouter()
	r.Route("/api", handler.RegisterRoutes)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard-data", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var data DashboardData
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &data))
	assert.Equal(t, "$3,500", data.SalesVolume)
	assert.Equal(t, "19", data.NewCustomers)
	assert.Equal(t, "$0", data.Refunds)
	assert.NotEmpty(t, data.Graph)
}
