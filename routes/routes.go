package routes

import (
	"github.com/gorilla/mux"

	"github.com/Samirun-Shuvo/inventory-ewmgl/handlers"
	"github.com/Samirun-Shuvo/inventory-ewmgl/middleware"
	"github.com/Samirun-Shuvo/inventory-ewmgl/ws"
)

// HTTP method constants for better maintainability
var (
	MethodsGetOnly    = []string{"GET", "OPTIONS"}
	MethodsPostOnly   = []string{"POST", "OPTIONS"}
	MethodsPutOnly    = []string{"PUT", "OPTIONS"}
	MethodsDeleteOnly = []string{"DELETE", "OPTIONS"}
)

func RegisterRoutes(r *mux.Router, h *handlers.Handler, hub *ws.Hub) {
	// Public
	r.HandleFunc("/health", h.HealthCheck).Methods(MethodsGetOnly...)
	r.HandleFunc("/api/auth/login", h.Login).Methods(MethodsPostOnly...)

	// Realtime feed. Registered ahead of the authed subrouter because the
	// browser websocket handshake cannot carry an Authorization header. The
	// feed pushes change notifications only, no record payloads.
	r.HandleFunc("/api/ws", hub.ServeWS).Methods(MethodsGetOnly...)

	// Everything below requires a Bearer token.
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Auth)

	// Dashboard
	api.HandleFunc("/dashboard", h.GetDashboardStats).Methods(MethodsGetOnly...)

	// Organizations
	api.HandleFunc("/organizations", h.ListOrganizations).Methods(MethodsGetOnly...)
	api.HandleFunc("/organizations", h.CreateOrganization).Methods(MethodsPostOnly...)
	api.HandleFunc("/organizations/{id}", h.GetOrganization).Methods(MethodsGetOnly...)
	api.HandleFunc("/organizations/{id}", h.UpdateOrganization).Methods(MethodsPutOnly...)
	api.HandleFunc("/organizations/{id}", h.DeleteOrganization).Methods(MethodsDeleteOnly...)

	// Employees ({key} is an id or a PF number)
	api.HandleFunc("/employees", h.ListEmployees).Methods(MethodsGetOnly...)
	api.HandleFunc("/employees", h.CreateEmployee).Methods(MethodsPostOnly...)
	api.HandleFunc("/employees/{key}", h.GetEmployee).Methods(MethodsGetOnly...)
	api.HandleFunc("/employees/{key}", h.UpdateEmployee).Methods(MethodsPutOnly...)
	api.HandleFunc("/employees/{key}", h.DeleteEmployee).Methods(MethodsDeleteOnly...)

	// Products ({key} is an id or a service tag)
	api.HandleFunc("/products", h.ListProducts).Methods(MethodsGetOnly...)
	api.HandleFunc("/products", h.CreateProduct).Methods(MethodsPostOnly...)
	api.HandleFunc("/products/{key}", h.GetProduct).Methods(MethodsGetOnly...)
	api.HandleFunc("/products/{key}", h.UpdateProduct).Methods(MethodsPutOnly...)
	api.HandleFunc("/products/{key}", h.DeleteProduct).Methods(MethodsDeleteOnly...)

	// Assignment ledger (the panel's "users" screen)
	api.HandleFunc("/users", h.ListAssignments).Methods(MethodsGetOnly...)
	api.HandleFunc("/users", h.CreateAssignment).Methods(MethodsPostOnly...)
	api.HandleFunc("/users/{id}", h.DeleteAssignment).Methods(MethodsDeleteOnly...)

	// Audit trail
	api.HandleFunc("/audit", h.ListAuditLogs).Methods(MethodsGetOnly...)
}
