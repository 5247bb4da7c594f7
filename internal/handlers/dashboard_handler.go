package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// DashboardData is the static payload backing the dashboard view
type DashboardData struct {
	SalesVolume  string           `json:"salesVolume"`
	NewCustomers string           `json:"newCustomers"`
	Refunds      string           `json:"refunds"`
	Graph        []GraphDataPoint `json:"graphData"`
}

// GraphDataPoint is one month of dashboard revenue data
type GraphDataPoint struct {
	Month string `json:"month"`
	Users int    `json:"users"`
	Sales int    `json:"sales"`
}

// dashboardData mirrors the demo numbers served by the original API
var dashboardData = DashboardData{
	SalesVolume:  "$3,500",
	NewCustomers: "19",
	Refunds:      "$0",
	Graph: []GraphDataPoint{
		{Month: "Jan", Users: 100, Sales: 1500},
		{Month: "Feb", Users: 210, Sales: 2800},
		{Month: "Mar", Users: 180, Sales: 2100},
		{Month: "Apr", Users: 250, Sales: 3200},
		{Month: "May", Users: 300, Sales: 3500},
	},
}

// DashboardHandler serves the dashboard data route
type DashboardHandler struct {
	BaseHandler
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{BaseHandler: BaseHandler{Logger: logger}}
}

// RegisterRoutes registers the dashboard route
func (h *DashboardHandler) RegisterRoutes(r chi.Router) {
	r.Get("/dashboard-data", h.Get)
}

// Get handles GET /api/dashboard-data
// @Summary Get dashboard data
// @Tags dashboard
// @Produce json
// @Success 200 {object} DashboardData "Dashboard data"
// @Router /dashboard-data [get]
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.RespondJSON(w, http.StatusOK, dashboardData)
}
