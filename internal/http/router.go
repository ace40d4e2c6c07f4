package http

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"rently-backend/internal/handlers"
	"rently-backend/internal/middleware"
	"rently-backend/internal/models"
)

// NewLandlordRouter wires the landlord portal (port 8080): unit and lease
// management, the ledger commands a landlord may issue, and the dashboard.
func NewLandlordRouter(
	authHandler *handlers.AuthHandler,
	totpHandler *handlers.TOTPHandler,
	unitHandler *handlers.UnitHandler,
	leaseHandler *handlers.LeaseHandler,
	ledgerHandler *handlers.LedgerHandler,
	portalHandler *handlers.LandlordPortalHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Public API routes - Authentication
	r.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	landlordOnly := authMiddleware.RequireRole(models.RoleLandlord)

	// Protected API routes - 2FA enrolment
	totpAPI := r.PathPrefix("/api/2fa").Subrouter()
	totpAPI.Use(landlordOnly)
	totpAPI.HandleFunc("/setup", totpHandler.Setup).Methods("POST")
	totpAPI.HandleFunc("/verify", totpHandler.Verify).Methods("POST")

	// Protected API routes - Units
	unitsAPI := r.PathPrefix("/api/units").Subrouter()
	unitsAPI.Use(landlordOnly)
	unitsAPI.HandleFunc("", unitHandler.ListUnits).Methods("GET")
	unitsAPI.HandleFunc("", unitHandler.CreateUnit).Methods("POST")
	unitsAPI.HandleFunc("/{id}/lease", leaseHandler.GetActiveLeaseForUnit).Methods("GET")
	unitsAPI.HandleFunc("/{id}/photos", unitHandler.ListPhotos).Methods("GET")
	unitsAPI.HandleFunc("/{id}/photos/presign", unitHandler.PresignPhotoUpload).Methods("POST")

	// Protected API routes - Leases and ledger commands
	leasesAPI := r.PathPrefix("/api/leases").Subrouter()
	leasesAPI.Use(landlordOnly)
	leasesAPI.HandleFunc("", leaseHandler.ListLeases).Methods("GET")
	leasesAPI.HandleFunc("", leaseHandler.CreateLease).Methods("POST")
	leasesAPI.HandleFunc("/{id}/ledger", ledgerHandler.GetLedger).Methods("GET")
	leasesAPI.HandleFunc("/{id}/adjust", ledgerHandler.Adjust).Methods("POST")
	leasesAPI.HandleFunc("/{id}/charge-rent", ledgerHandler.ChargeRent).Methods("POST")
	leasesAPI.HandleFunc("/{id}/statement", ledgerHandler.Statement).Methods("GET")

	// Protected API routes - Dashboard
	portalAPI := r.PathPrefix("/api/portal").Subrouter()
	portalAPI.Use(landlordOnly)
	portalAPI.HandleFunc("/dashboard", portalHandler.Dashboard).Methods("GET")
	portalAPI.HandleFunc("/leases/{id}", portalHandler.Ledger).Methods("GET")

	// Receipts are readable by either party, landlord side here
	receiptsAPI := r.PathPrefix("/api/entries").Subrouter()
	receiptsAPI.Use(landlordOnly)
	receiptsAPI.HandleFunc("/{entryId}/receipt", ledgerHandler.Receipt).Methods("GET")

	// Health endpoints (no auth required - for Kubernetes probes)
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")

	// Metrics endpoint (Prometheus format)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// NewRenterRouter wires the renter portal (port 8081): listings browse,
// favorites, the renter dashboard and payment flows.
func NewRenterRouter(
	authHandler *handlers.AuthHandler,
	listingHandler *handlers.ListingHandler,
	favoriteHandler *handlers.FavoriteHandler,
	ledgerHandler *handlers.LedgerHandler,
	portalHandler *handlers.RenterPortalHandler,
	razorpayHandler *handlers.RazorpayHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Public API routes - Authentication
	r.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Public API routes - Listings browse (no account needed)
	r.HandleFunc("/api/listings/search", listingHandler.Search).Methods("GET", "POST")

	// Webhook endpoint authenticates via signature, not JWT
	r.HandleFunc("/api/payment/webhook", razorpayHandler.HandleWebhook).Methods("POST")

	renterOnly := authMiddleware.RequireRole(models.RoleRenter)

	// Protected API routes - Favorites
	favoritesAPI := r.PathPrefix("/api/favorites").Subrouter()
	favoritesAPI.Use(renterOnly)
	favoritesAPI.HandleFunc("", favoriteHandler.List).Methods("GET")
	favoritesAPI.HandleFunc("", favoriteHandler.Save).Methods("POST")
	favoritesAPI.HandleFunc("/{listingId}", favoriteHandler.Remove).Methods("DELETE")

	// Protected API routes - Dashboard and ledger
	portalAPI := r.PathPrefix("/api/portal").Subrouter()
	portalAPI.Use(renterOnly)
	portalAPI.HandleFunc("/dashboard", portalHandler.Dashboard).Methods("GET")

	leasesAPI := r.PathPrefix("/api/leases").Subrouter()
	leasesAPI.Use(renterOnly)
	leasesAPI.HandleFunc("/{id}/ledger", ledgerHandler.GetLedger).Methods("GET")
	leasesAPI.HandleFunc("/{id}/pay", ledgerHandler.Pay).Methods("POST")
	leasesAPI.HandleFunc("/{id}/statement", ledgerHandler.Statement).Methods("GET")

	receiptsAPI := r.PathPrefix("/api/entries").Subrouter()
	receiptsAPI.Use(renterOnly)
	receiptsAPI.HandleFunc("/{entryId}/receipt", ledgerHandler.Receipt).Methods("GET")

	// Protected API routes - Online payments
	paymentAPI := r.PathPrefix("/api/payment").Subrouter()
	paymentAPI.Use(renterOnly)
	paymentAPI.HandleFunc("/status", razorpayHandler.Status).Methods("GET")
	paymentAPI.HandleFunc("/create-order", razorpayHandler.CreateOrder).Methods("POST")
	paymentAPI.HandleFunc("/verify", razorpayHandler.VerifyPayment).Methods("POST")

	// Health endpoints (no auth required - for Kubernetes probes)
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")

	// Metrics endpoint (Prometheus format)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
