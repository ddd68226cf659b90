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

	cancelBookingHandler "github.com/eatease/EatEase-BookingService/internal/api/handlers/cancel_booking"
	checkinBookingHandler "github.com/eatease/EatEase-BookingService/internal/api/handlers/checkin_booking"
	createBookingHandler "github.com/eatease/EatEase-BookingService/internal/api/handlers/create_booking"
	createTableHandler "github.com/eatease/EatEase-BookingService/internal/api/handlers/create_table"
	createVenueHandler "github.com/eatease/EatEase-BookingService/internal/api/handlers/create_venue"
	deleteTableHandler "github.com/eatease/EatEase-BookingService/internal/api/handlers/delete_table"
	deleteVenueHandler "github.com/eatease/EatEase-BookingService/internal/api/handlers/delete_venue"
	forceReleaseBookingHandler "github.com/eatease/EatEase-BookingService/internal/api/handlers/force_release_booking"
	getAvailableTablesHandler "github.com/eatease/EatEase-BookingService/internal/api/handlers/get_available_tables"
	getBookingHandler "github.com/eatease/EatEase-BookingService/internal/api/handlers/get_booking"
	getNextBookingHandler "github.com/eatease/EatEase-BookingService/internal/api/handlers/get_next_booking"
	getStatsHandler "github.com/eatease/EatEase-BookingService/internal/api/handlers/get_stats"
	getUserBookingsHandler "github.com/eatease/EatEase-BookingService/internal/api/handlers/get_user_bookings"
	getVenueHandler "github.com/eatease/EatEase-BookingService/internal/api/handlers/get_venue"
	getVenueBookingsHandler "github.com/eatease/EatEase-BookingService/internal/api/handlers/get_venue_bookings"
	getVenueTablesHandler "github.com/eatease/EatEase-BookingService/internal/api/handlers/get_venue_tables"
	getVenuesHandler "github.com/eatease/EatEase-BookingService/internal/api/handlers/get_venues"
	issueCheckinTokenHandler "github.com/eatease/EatEase-BookingService/internal/api/handlers/issue_checkin_token"
	releaseBookingHandler "github.com/eatease/EatEase-BookingService/internal/api/handlers/release_booking"
	sweepNoShowsHandler "github.com/eatease/EatEase-BookingService/internal/api/handlers/sweep_no_shows"
	updateTableHandler "github.com/eatease/EatEase-BookingService/internal/api/handlers/update_table"
	updateVenueHandler "github.com/eatease/EatEase-BookingService/internal/api/handlers/update_venue"
	"github.com/eatease/EatEase-BookingService/internal/api/middleware"
	"github.com/eatease/EatEase-BookingService/internal/config"
	bookingRepo "github.com/eatease/EatEase-BookingService/internal/infra/storage/booking"
	tableRepo "github.com/eatease/EatEase-BookingService/internal/infra/storage/table"
	venueRepo "github.com/eatease/EatEase-BookingService/internal/infra/storage/venue"
	"github.com/eatease/EatEase-BookingService/internal/jobs"
	bookingsService "github.com/eatease/EatEase-BookingService/internal/service/bookings"
	tablesService "github.com/eatease/EatEase-BookingService/internal/service/tables"
	venuesService "github.com/eatease/EatEase-BookingService/internal/service/venues"
	createBookingUC "github.com/eatease/EatEase-BookingService/internal/usecase/create_booking"
	getAvailableTablesUC "github.com/eatease/EatEase-BookingService/internal/usecase/get_available_tables"
	issueCheckinTokenUC "github.com/eatease/EatEase-BookingService/internal/usecase/issue_checkin_token"
	"github.com/eatease/EatEase-BookingService/pkg/checkintoken"
	"github.com/eatease/EatEase-BookingService/pkg/dbmetrics"
	"github.com/eatease/EatEase-BookingService/pkg/logger"
	"github.com/eatease/EatEase-BookingService/pkg/metrics"
	"github.com/eatease/EatEase-BookingService/pkg/qrimage"
	"github.com/eatease/EatEase-BookingService/pkg/simpletxmanager"
	"github.com/eatease/EatEase-BookingService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting EatEase-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		tableRepository   *tableRepo.Repository
		venueRepository   *venueRepo.Repository
	)

	// Интерфейс transaction manager, общий для обоих вариантов
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		tableRepository = tableRepo.NewRepository(wrappedDB)
		venueRepository = venueRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		tableRepository = tableRepo.NewRepository(db)
		venueRepository = venueRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Политика бронирования и подписант чекин-токенов
	policy := cfg.Booking.Policy()
	signer := checkintoken.NewSigner([]byte(cfg.Booking.CheckinSecret), policy.TokenTTL)
	qrGenerator := qrimage.NewGenerator(0)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, venueRepository, txMgr, policy, log)
	venueSvc := venuesService.NewService(venueRepository, log)
	tableSvc := tablesService.NewService(tableRepository, venueRepository, bookingRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		tableRepository,
		venueRepository,
		txMgr,
		policy,
		metricsCollector,
		log,
	)

	getAvailableTablesUseCase := getAvailableTablesUC.NewUseCase(
		bookingRepository,
		tableRepository,
		venueRepository,
		policy,
		log,
	)

	issueCheckinTokenUseCase := issueCheckinTokenUC.NewUseCase(
		bookingRepository,
		signer,
		qrGenerator,
		policy,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableTables := getAvailableTablesHandler.NewHandler(getAvailableTablesUseCase, log)
	issueCheckinToken := issueCheckinTokenHandler.NewHandler(issueCheckinTokenUseCase, log)
	checkinBooking := checkinBookingHandler.NewHandler(bookingSvc, signer, metricsCollector, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getNextBooking := getNextBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getVenueBookings := getVenueBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	releaseBooking := releaseBookingHandler.NewHandler(bookingSvc, log)
	forceReleaseBooking := forceReleaseBookingHandler.NewHandler(bookingSvc, log)
	sweepNoShows := sweepNoShowsHandler.NewHandler(bookingSvc, metricsCollector, log)
	getStats := getStatsHandler.NewHandler(bookingSvc, log)
	createVenue := createVenueHandler.NewHandler(venueSvc, log)
	getVenues := getVenuesHandler.NewHandler(venueSvc, log)
	getVenue := getVenueHandler.NewHandler(venueSvc, log)
	updateVenue := updateVenueHandler.NewHandler(venueSvc, log)
	deleteVenue := deleteVenueHandler.NewHandler(venueSvc, log)
	createTable := createTableHandler.NewHandler(tableSvc, log)
	getVenueTables := getVenueTablesHandler.NewHandler(tableSvc, log)
	updateTable := updateTableHandler.NewHandler(tableSvc, log)
	deleteTable := deleteTableHandler.NewHandler(tableSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог фудкортов
	api.HandleFunc("/venues", getVenues.Handle).Methods(http.MethodGet)
	api.HandleFunc("/venues/{venueId}", getVenue.Handle).Methods(http.MethodGet)
	api.HandleFunc("/venues/{venueId}/tables", getVenueTables.Handle).Methods(http.MethodGet)

	// Свободные столы на временное окно
	api.HandleFunc("/venues/{venueId}/available-tables", getAvailableTables.Handle).Methods(http.MethodGet)

	// Чекин по QR-коду (терминал фудкорта, авторизация токеном внутри тела)
	api.HandleFunc("/bookings/{bookingId}/checkin", checkinBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID и X-User-Role)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/next", getNextBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/sweep-no-shows", sweepNoShows.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/release", releaseBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/force-release", forceReleaseBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/checkin-token", issueCheckinToken.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Управление фудкортами (для владельцев) ---
	protected.HandleFunc("/venues", createVenue.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/venues/mine", getVenues.HandleOwned).Methods(http.MethodGet)
	protected.HandleFunc("/venues/{venueId}", updateVenue.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/venues/{venueId}", deleteVenue.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/venues/{venueId}/bookings", getVenueBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/venues/{venueId}/tables", createTable.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/tables/{tableId}", updateTable.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/tables/{tableId}", deleteTable.Handle).Methods(http.MethodDelete)

	// --- Статистика платформы (админ) ---
	protected.HandleFunc("/stats", getStats.Handle).Methods(http.MethodGet)

	// Фоновый свипер no_show
	var sweeper *jobs.NoShowSweeper
	if cfg.Sweeper.Enabled {
		sweeper = jobs.NewNoShowSweeper(
			bookingSvc,
			metricsCollector,
			time.Duration(cfg.Sweeper.Interval)*time.Second,
			log,
		)
		sweeper.Start(context.Background())
	}

	// Создаем HTTP сервер
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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if sweeper != nil {
		sweeper.Stop()
		log.Info("No-show sweeper stopped")
	}

	// Останавливаем сбор метрик connection pool
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
