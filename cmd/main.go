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

	cancelBookingHandler "github.com/pitchside/Turf-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/pitchside/Turf-BookingService/internal/api/handlers/create_booking"
	getAvailabilityHandler "github.com/pitchside/Turf-BookingService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/pitchside/Turf-BookingService/internal/api/handlers/get_booking"
	getCancellationQuoteHandler "github.com/pitchside/Turf-BookingService/internal/api/handlers/get_cancellation_quote"
	getTurfBookingsHandler "github.com/pitchside/Turf-BookingService/internal/api/handlers/get_turf_bookings"
	getTurfScheduleHandler "github.com/pitchside/Turf-BookingService/internal/api/handlers/get_turf_schedule"
	getUserBookingsHandler "github.com/pitchside/Turf-BookingService/internal/api/handlers/get_user_bookings"
	updateBookingStatusHandler "github.com/pitchside/Turf-BookingService/internal/api/handlers/update_booking_status"
	updateTurfScheduleHandler "github.com/pitchside/Turf-BookingService/internal/api/handlers/update_turf_schedule"
	"github.com/pitchside/Turf-BookingService/internal/api/middleware"
	"github.com/pitchside/Turf-BookingService/internal/cancellation"
	"github.com/pitchside/Turf-BookingService/internal/config"
	bookingRepo "github.com/pitchside/Turf-BookingService/internal/infra/storage/booking"
	scheduleRepo "github.com/pitchside/Turf-BookingService/internal/infra/storage/schedule"
	paymentsClient "github.com/pitchside/Turf-BookingService/internal/integrations/payments"
	turfServiceClient "github.com/pitchside/Turf-BookingService/internal/integrations/turfservice"
	bookingsService "github.com/pitchside/Turf-BookingService/internal/service/bookings"
	scheduleService "github.com/pitchside/Turf-BookingService/internal/service/schedule"
	cancelBookingUC "github.com/pitchside/Turf-BookingService/internal/usecase/cancel_booking"
	createBookingUC "github.com/pitchside/Turf-BookingService/internal/usecase/create_booking"
	getAvailabilityUC "github.com/pitchside/Turf-BookingService/internal/usecase/get_availability"
	"github.com/pitchside/Turf-BookingService/pkg/dbmetrics"
	"github.com/pitchside/Turf-BookingService/pkg/logger"
	"github.com/pitchside/Turf-BookingService/pkg/metrics"
	"github.com/pitchside/Turf-BookingService/pkg/simpletxmanager"
	"github.com/pitchside/Turf-BookingService/pkg/txmanager"
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

	log.Info("Starting Turf-BookingService...")
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

	// Инициализируем интеграционных клиентов
	turfClient := turfServiceClient.NewClient(
		cfg.TurfService.URL,
		time.Duration(cfg.TurfService.Timeout)*time.Second,
		log,
	)
	payClient := paymentsClient.NewClient(cfg.Payments.SecretKey, log)
	log.Info("Integration clients initialized (TurfService=%s timeout=%ds, payments gateway configured)",
		cfg.TurfService.URL, cfg.TurfService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		scheduleRepository *scheduleRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Политика отмены: окно возврата конфигурируемо
	policy := cancellation.NewPolicy()
	if cfg.Payments.RefundWindowHours > 0 {
		policy = cancellation.Policy{
			RefundWindow: time.Duration(cfg.Payments.RefundWindowHours) * time.Hour,
		}
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		turfClient,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		scheduleRepository,
		turfClient,
		log,
	)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		turfClient,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		turfClient,
		txMgr,
		log,
	)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		bookingRepository,
		turfClient,
		payClient,
		txMgr,
		policy,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	getCancellationQuote := getCancellationQuoteHandler.NewHandler(cancelBookingUseCase, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getTurfBookings := getTurfBookingsHandler.NewHandler(bookingSvc, log)
	getTurfSchedule := getTurfScheduleHandler.NewHandler(scheduleSvc, log)
	updateTurfSchedule := updateTurfScheduleHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступность слотов площадки на дату
	api.HandleFunc("/turfs/{turfId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Расписание работы площадки
	api.HandleFunc("/turfs/{turfId}/schedule", getTurfSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Котировка отмены (можно ли отменить и сколько вернут)
	protected.HandleFunc("/bookings/{bookingId}/cancellation", getCancellationQuote.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Управление площадкой (для менеджеров) ---
	// Обновление статуса бронирования (completed, no_show)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Список бронирований площадки
	protected.HandleFunc("/turfs/{turfId}/bookings", getTurfBookings.Handle).Methods(http.MethodGet)

	// Обновление расписания площадки
	protected.HandleFunc("/turfs/{turfId}/schedule", updateTurfSchedule.Handle).Methods(http.MethodPut)

	// Удаление строки расписания площадки
	protected.HandleFunc("/turfs/{turfId}/schedule", updateTurfSchedule.HandleDelete).Methods(http.MethodDelete)

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
