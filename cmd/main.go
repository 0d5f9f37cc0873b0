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

	cancelBookingHandler "github.com/avdeevlv/barber-booking-service/internal/api/handlers/cancel_booking"
	completeBookingHandler "github.com/avdeevlv/barber-booking-service/internal/api/handlers/complete_booking"
	createBlockHandler "github.com/avdeevlv/barber-booking-service/internal/api/handlers/create_block"
	createBookingHandler "github.com/avdeevlv/barber-booking-service/internal/api/handlers/create_booking"
	deleteBlockHandler "github.com/avdeevlv/barber-booking-service/internal/api/handlers/delete_block"
	getAdminBookingsHandler "github.com/avdeevlv/barber-booking-service/internal/api/handlers/get_admin_bookings"
	getAvailableDaysHandler "github.com/avdeevlv/barber-booking-service/internal/api/handlers/get_available_days"
	getAvailableSlotsHandler "github.com/avdeevlv/barber-booking-service/internal/api/handlers/get_available_slots"
	getBlocksHandler "github.com/avdeevlv/barber-booking-service/internal/api/handlers/get_blocks"
	getBookingHandler "github.com/avdeevlv/barber-booking-service/internal/api/handlers/get_booking"
	getServicesHandler "github.com/avdeevlv/barber-booking-service/internal/api/handlers/get_services"
	getUserBookingsHandler "github.com/avdeevlv/barber-booking-service/internal/api/handlers/get_user_bookings"
	rescheduleBookingHandler "github.com/avdeevlv/barber-booking-service/internal/api/handlers/reschedule_booking"
	updateBookingNotesHandler "github.com/avdeevlv/barber-booking-service/internal/api/handlers/update_booking_notes"
	"github.com/avdeevlv/barber-booking-service/internal/api/middleware"
	"github.com/avdeevlv/barber-booking-service/internal/availability"
	"github.com/avdeevlv/barber-booking-service/internal/config"
	"github.com/avdeevlv/barber-booking-service/internal/domain"
	blockRepo "github.com/avdeevlv/barber-booking-service/internal/infra/storage/block"
	bookingRepo "github.com/avdeevlv/barber-booking-service/internal/infra/storage/booking"
	identityClient "github.com/avdeevlv/barber-booking-service/internal/integrations/identity"
	blocksService "github.com/avdeevlv/barber-booking-service/internal/service/blocks"
	bookingsService "github.com/avdeevlv/barber-booking-service/internal/service/bookings"
	createBookingUC "github.com/avdeevlv/barber-booking-service/internal/usecase/create_booking"
	getAvailableDaysUC "github.com/avdeevlv/barber-booking-service/internal/usecase/get_available_days"
	getAvailableSlotsUC "github.com/avdeevlv/barber-booking-service/internal/usecase/get_available_slots"
	rescheduleBookingUC "github.com/avdeevlv/barber-booking-service/internal/usecase/reschedule_booking"
	"github.com/avdeevlv/barber-booking-service/pkg/dbmetrics"
	"github.com/avdeevlv/barber-booking-service/pkg/logger"
	"github.com/avdeevlv/barber-booking-service/pkg/metrics"
	"github.com/avdeevlv/barber-booking-service/pkg/simpletxmanager"
	"github.com/avdeevlv/barber-booking-service/pkg/txmanager"
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

	log.Info("Starting barber-booking-service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Инициализируем клиента IdentityService
	identity := identityClient.NewClient(
		cfg.IdentityService.URL,
		time.Duration(cfg.IdentityService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (IdentityService=%s timeout=%ds)",
		cfg.IdentityService.URL, cfg.IdentityService.Timeout)

	// Статическая конфигурация: расписание, постоянные клиенты, каталог
	schedule := domain.DefaultWeekSchedule()
	recurring := domain.NewRecurringBlockSet(domain.DefaultRecurringBlocks())
	catalog := domain.DefaultCatalog()
	engine := availability.NewEngine(schedule, recurring)

	// Инициализируем репозитории и менеджер транзакций (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		blockRepository   *blockRepo.Repository
	)

	type txManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr txManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		blockRepository = blockRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		blockRepository = blockRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		identity,
		log,
	)
	blockSvc := blocksService.NewService(
		blockRepository,
		identity,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		blockRepository,
		engine,
		catalog,
		txMgr,
		identity,
		log,
	)
	rescheduleBookingUseCase := rescheduleBookingUC.NewUseCase(
		bookingRepository,
		blockRepository,
		engine,
		catalog,
		txMgr,
		identity,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		blockRepository,
		engine,
		catalog,
		log,
	)
	getAvailableDaysUseCase := getAvailableDaysUC.NewUseCase(
		bookingRepository,
		blockRepository,
		engine,
		catalog,
		log,
	)

	// Инициализируем handlers
	getServices := getServicesHandler.NewHandler(catalog, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAvailableDays := getAvailableDaysHandler.NewHandler(getAvailableDaysUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(rescheduleBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	completeBooking := completeBookingHandler.NewHandler(bookingSvc, log)
	updateBookingNotes := updateBookingNotesHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getAdminBookings := getAdminBookingsHandler.NewHandler(bookingSvc, log)
	createBlock := createBlockHandler.NewHandler(blockSvc, log)
	getBlocks := getBlocksHandler.NewHandler(blockSvc, log)
	deleteBlock := deleteBlockHandler.NewHandler(blockSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог услуг
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)

	// Свободные слоты на дату
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Дни месяца со свободными слотами
	api.HandleFunc("/available-days", getAvailableDays.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/complete", completeBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/reschedule", rescheduleBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/notes", updateBookingNotes.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Администрирование ---
	protected.HandleFunc("/admin/bookings", getAdminBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/admin/blocks", createBlock.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/admin/blocks", getBlocks.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/admin/blocks/{blockId}", deleteBlock.Handle).Methods(http.MethodDelete)

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
