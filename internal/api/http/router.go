// Package http wires the REST surface: public catalog reads, customer-scoped
// reservation and profile routes, and level-gated admin routes.
package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"toolrental-backend/internal/domain"
	"toolrental-backend/internal/security"
	"toolrental-backend/internal/service"
)

type RouterConfig struct {
	AuthSvc      service.AuthService
	CustomerSvc  service.CustomerService
	AdminSvc     service.AdminService
	ToolSvc      service.ToolService
	BrandSvc     service.BrandService
	CategorySvc  service.CategoryService
	AddressSvc   service.AddressService
	PhoneSvc     service.PhoneService
	BookingSvc   service.BookingService
	DashboardSvc service.DashboardService
	Tokens       security.TokenManager
}

func NewRouter(cfg RouterConfig) *mux.Router {
	authMW := NewAuthMiddleware(cfg.Tokens)

	authHandler := NewAuthHandler(cfg.AuthSvc)
	customerHandler := NewCustomerHandler(cfg.CustomerSvc)
	adminHandler := NewAdminHandler(cfg.AdminSvc)
	toolHandler := NewToolHandler(cfg.ToolSvc)
	catalogHandler := NewCatalogHandler(cfg.BrandSvc, cfg.CategorySvc)
	contactHandler := NewContactHandler(cfg.AddressSvc, cfg.PhoneSvc)
	reservationHandler := NewReservationHandler(cfg.BookingSvc)
	dashboardHandler := NewDashboardHandler(cfg.DashboardSvc)

	r := mux.NewRouter()
	r.Use(RequestLogger)

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/customers", authHandler.RegisterCustomer).Methods("POST")
	api.HandleFunc("/customers/login", authHandler.LoginCustomer).Methods("POST")
	api.HandleFunc("/admins/login", authHandler.LoginAdmin).Methods("POST")
	api.HandleFunc("/tools", toolHandler.List).Methods("GET")
	api.HandleFunc("/tools/featured", toolHandler.ListFeatured).Methods("GET")
	api.HandleFunc("/tools/{id:[0-9]+}", toolHandler.Get).Methods("GET")
	api.HandleFunc("/tools/{id:[0-9]+}/availability", reservationHandler.CheckAvailability).Methods("GET")
	api.HandleFunc("/brands", catalogHandler.ListBrands).Methods("GET")
	api.HandleFunc("/categories", catalogHandler.ListCategories).Methods("GET")

	// Authenticated customer routes
	auth := api.NewRoute().Subrouter()
	auth.Use(authMW.Authenticate)
	auth.HandleFunc("/customers/me", customerHandler.Me).Methods("GET")
	auth.HandleFunc("/reservations", reservationHandler.Create).Methods("POST")
	auth.HandleFunc("/reservations/mine", reservationHandler.ListMine).Methods("GET")
	auth.HandleFunc("/reservations/{id:[0-9]+}", reservationHandler.Get).Methods("GET")
	auth.HandleFunc("/reservations/{id:[0-9]+}/confirm", reservationHandler.Confirm).Methods("POST")
	auth.HandleFunc("/reservations/{id:[0-9]+}", reservationHandler.Cancel).Methods("DELETE")
	auth.HandleFunc("/addresses", contactHandler.CreateAddress).Methods("POST")
	auth.HandleFunc("/addresses", contactHandler.ListMyAddresses).Methods("GET")
	auth.HandleFunc("/addresses/{id:[0-9]+}", contactHandler.UpdateAddress).Methods("PUT")
	auth.HandleFunc("/addresses/{id:[0-9]+}", contactHandler.DeleteAddress).Methods("DELETE")
	auth.HandleFunc("/phones", contactHandler.CreatePhone).Methods("POST")
	auth.HandleFunc("/phones", contactHandler.ListMyPhones).Methods("GET")
	auth.HandleFunc("/phones/{id:[0-9]+}", contactHandler.UpdatePhone).Methods("PUT")
	auth.HandleFunc("/phones/{id:[0-9]+}", contactHandler.DeletePhone).Methods("DELETE")

	// Admin routes, gated by level
	common := api.NewRoute().Subrouter()
	common.Use(authMW.Authenticate, authMW.RequireAdmin(domain.AdminLevelCommon))
	common.HandleFunc("/tools", toolHandler.Create).Methods("POST")
	common.HandleFunc("/tools/{id:[0-9]+}", toolHandler.Update).Methods("PUT")
	common.HandleFunc("/tools/{id:[0-9]+}", toolHandler.Delete).Methods("DELETE")
	common.HandleFunc("/tools/{id:[0-9]+}/featured", toolHandler.SetFeatured).Methods("PUT")
	common.HandleFunc("/brands", catalogHandler.CreateBrand).Methods("POST")
	common.HandleFunc("/brands/{id:[0-9]+}", catalogHandler.UpdateBrand).Methods("PUT")
	common.HandleFunc("/brands/{id:[0-9]+}", catalogHandler.DeleteBrand).Methods("DELETE")
	common.HandleFunc("/categories", catalogHandler.CreateCategory).Methods("POST")
	common.HandleFunc("/categories/{id:[0-9]+}", catalogHandler.UpdateCategory).Methods("PUT")
	common.HandleFunc("/categories/{id:[0-9]+}", catalogHandler.DeleteCategory).Methods("DELETE")
	common.HandleFunc("/reservations", reservationHandler.List).Methods("GET")
	common.HandleFunc("/dashboard", dashboardHandler.Summary).Methods("GET")

	moderator := api.NewRoute().Subrouter()
	moderator.Use(authMW.Authenticate, authMW.RequireAdmin(domain.AdminLevelModerator))
	moderator.HandleFunc("/customers", customerHandler.List).Methods("GET")
	moderator.HandleFunc("/customers/{id}", customerHandler.Get).Methods("GET")
	moderator.HandleFunc("/customers/{id}", customerHandler.Delete).Methods("DELETE")

	manager := api.NewRoute().Subrouter()
	manager.Use(authMW.Authenticate, authMW.RequireAdmin(domain.AdminLevelManager))
	manager.HandleFunc("/admins", authHandler.RegisterAdmin).Methods("POST")
	manager.HandleFunc("/admins", adminHandler.List).Methods("GET")
	manager.HandleFunc("/admins/{id}", adminHandler.Get).Methods("GET")
	manager.HandleFunc("/admins/{id}", adminHandler.Update).Methods("PUT")
	manager.HandleFunc("/admins/{id}", adminHandler.Delete).Methods("DELETE")

	return r
}
