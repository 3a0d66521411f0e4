package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/schedfy/dashboard-service/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/schedfy/dashboard-service/internal/api/handlers/check_availability"
	createBookingHandler "github.com/schedfy/dashboard-service/internal/api/handlers/create_booking"
	createRuleHandler "github.com/schedfy/dashboard-service/internal/api/handlers/create_commission_rule"
	deleteBookingHandler "github.com/schedfy/dashboard-service/internal/api/handlers/delete_booking"
	deleteRuleHandler "github.com/schedfy/dashboard-service/internal/api/handlers/delete_commission_rule"
	attributionReportHandler "github.com/schedfy/dashboard-service/internal/api/handlers/get_attribution_report"
	listBookingsHandler "github.com/schedfy/dashboard-service/internal/api/handlers/list_bookings"
	listBookingsRangeHandler "github.com/schedfy/dashboard-service/internal/api/handlers/list_bookings_range"
	listRulesHandler "github.com/schedfy/dashboard-service/internal/api/handlers/list_commission_rules"
	transitionBookingHandler "github.com/schedfy/dashboard-service/internal/api/handlers/transition_booking"
	updateBookingHandler "github.com/schedfy/dashboard-service/internal/api/handlers/update_booking"
	updateRuleHandler "github.com/schedfy/dashboard-service/internal/api/handlers/update_commission_rule"
	"github.com/schedfy/dashboard-service/internal/api/middleware"
	"github.com/schedfy/dashboard-service/internal/config"
	ruleRepo "github.com/schedfy/dashboard-service/internal/infra/storage/commissionrule"
	bookingAPIClient "github.com/schedfy/dashboard-service/internal/integrations/bookingapi"
	"github.com/schedfy/dashboard-service/internal/service/bookingstore"
	rulesService "github.com/schedfy/dashboard-service/internal/service/commissionrules"
	attributionReportUC "github.com/schedfy/dashboard-service/internal/usecase/get_attribution_report"
	"github.com/schedfy/dashboard-service/pkg/dbmetrics"
	"github.com/schedfy/dashboard-service/pkg/logger"
	"github.com/schedfy/dashboard-service/pkg/metrics"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting schedfy-dashboard-service...")
	log.Info("Configuration loaded from config.toml")

	// Metrics (if enabled)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Database for commission rules
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Remote booking API client
	apiClient := bookingAPIClient.NewClient(
		cfg.BookingAPI.URL,
		time.Duration(cfg.BookingAPI.Timeout)*time.Second,
		log,
		clientMetrics(metricsCollector),
		cfg.Metrics.ServiceName,
	)
	log.Info("Booking API client initialized (url=%s, timeout=%ds)",
		cfg.BookingAPI.URL, cfg.BookingAPI.Timeout)

	// Commission rule repository (with metrics wrapper when enabled)
	var ruleRepository *ruleRepo.Repository
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		ruleRepository = ruleRepo.NewRepository(wrappedDB)
		log.Info("Database metrics collection started")
	} else {
		ruleRepository = ruleRepo.NewRepository(db)
	}

	// Services
	store := bookingstore.NewStore(apiClient, log)
	rulesSvc := rulesService.NewService(ruleRepository, log)

	// Use cases
	attributionUseCase := attributionReportUC.NewUseCase(store, ruleRepository, log)

	// Handlers
	listBookings := listBookingsHandler.NewHandler(store, log)
	listBookingsRange := listBookingsRangeHandler.NewHandler(store, log)
	createBooking := createBookingHandler.NewHandler(store, log)
	updateBooking := updateBookingHandler.NewHandler(store, log)
	cancelBooking := cancelBookingHandler.NewHandler(store, log)
	transitionBooking := transitionBookingHandler.NewHandler(store, log)
	deleteBooking := deleteBookingHandler.NewHandler(store, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(store, log)
	attributionReport := attributionReportHandler.NewHandler(attributionUseCase, log)
	createRule := createRuleHandler.NewHandler(rulesSvc, log)
	listRules := listRulesHandler.NewHandler(rulesSvc, log)
	updateRule := updateRuleHandler.NewHandler(rulesSvc, log)
	deleteRule := deleteRuleHandler.NewHandler(rulesSvc, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// Availability check used by booking widgets
	api.HandleFunc("/bookings/check-availability", checkAvailability.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (require X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Booking collection loads ---
	protected.HandleFunc("/entities/{entityId}/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{clientId}/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/professionals/{professionalId}/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/services/{serviceId}/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/entities/{entityId}/bookings/range", listBookingsRange.Handle).Methods(http.MethodGet)

	// --- Booking mutations ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/{action:confirm|complete|no-show}",
		transitionBooking.Handle).Methods(http.MethodPatch)

	// --- Reporting ---
	protected.HandleFunc("/entities/{entityId}/reports/attribution", attributionReport.Handle).Methods(http.MethodGet)

	// --- Commission rules ---
	protected.HandleFunc("/entities/{entityId}/commission-rules", createRule.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/entities/{entityId}/commission-rules", listRules.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/entities/{entityId}/commission-rules/{ruleId}", updateRule.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/entities/{entityId}/commission-rules/{ruleId}", deleteRule.Handle).Methods(http.MethodDelete)

	// HTTP server
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

// clientMetrics avoids handing a typed-nil interface to the API client
// when metrics are disabled.
func clientMetrics(m *metrics.Metrics) bookingAPIClient.MetricsRecorder {
	if m == nil {
		return nil
	}
	return m
}
