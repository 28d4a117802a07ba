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
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	approveReservationHandler "github.com/cazingue/BMT-ReservationService/internal/api/handlers/approve_reservation"
	cancelReservationHandler "github.com/cazingue/BMT-ReservationService/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/cazingue/BMT-ReservationService/internal/api/handlers/create_reservation"
	getAvailabilityHandler "github.com/cazingue/BMT-ReservationService/internal/api/handlers/get_availability"
	getReservationHandler "github.com/cazingue/BMT-ReservationService/internal/api/handlers/get_reservation"
	manageReservationHandler "github.com/cazingue/BMT-ReservationService/internal/api/handlers/manage_reservation"
	manageTablesHandler "github.com/cazingue/BMT-ReservationService/internal/api/handlers/manage_tables"
	manageTimeSlotsHandler "github.com/cazingue/BMT-ReservationService/internal/api/handlers/manage_timeslots"
	searchReservationsHandler "github.com/cazingue/BMT-ReservationService/internal/api/handlers/search_reservations"
	updateReservationHandler "github.com/cazingue/BMT-ReservationService/internal/api/handlers/update_reservation"
	"github.com/cazingue/BMT-ReservationService/internal/api/middleware"
	"github.com/cazingue/BMT-ReservationService/internal/config"
	reservationRepo "github.com/cazingue/BMT-ReservationService/internal/infra/storage/reservation"
	tableRepo "github.com/cazingue/BMT-ReservationService/internal/infra/storage/table"
	timeslotRepo "github.com/cazingue/BMT-ReservationService/internal/infra/storage/timeslot"
	reservationsService "github.com/cazingue/BMT-ReservationService/internal/service/reservations"
	tablesService "github.com/cazingue/BMT-ReservationService/internal/service/tables"
	timeslotsService "github.com/cazingue/BMT-ReservationService/internal/service/timeslots"
	approveReservationUC "github.com/cazingue/BMT-ReservationService/internal/usecase/approve_reservation"
	createReservationUC "github.com/cazingue/BMT-ReservationService/internal/usecase/create_reservation"
	getAvailabilityUC "github.com/cazingue/BMT-ReservationService/internal/usecase/get_availability"
	updateReservationUC "github.com/cazingue/BMT-ReservationService/internal/usecase/update_reservation"
	"github.com/cazingue/BMT-ReservationService/pkg/dbmetrics"
	"github.com/cazingue/BMT-ReservationService/pkg/logger"
	"github.com/cazingue/BMT-ReservationService/pkg/metrics"
	"github.com/cazingue/BMT-ReservationService/pkg/simpletxmanager"
	"github.com/cazingue/BMT-ReservationService/pkg/txmanager"
)

const migrationsDir = "migrations"

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

	log.Info("Starting BMT-ReservationService...")
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

	// Применяем миграции
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("Failed to set goose dialect: %v", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	log.Info("Migrations applied successfully")

	// Бизнес-правила бронирования
	policy := cfg.Reservation.ToPolicy()
	log.Info("Reservation policy: duration=%dmin, advance=%d..%dh, cutoff=%dh, thursdayDinnerAlwaysOpen=%t",
		policy.ServiceDurationMinutes, policy.MinAdvanceHours, policy.MaxAdvanceHours,
		policy.CancellationCutoffHours, policy.ThursdayDinnerAlwaysOpen)

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		tableRepository       *tableRepo.Repository
		timeslotRepository    *timeslotRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		tableRepository = tableRepo.NewRepository(wrappedDB)
		timeslotRepository = timeslotRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		tableRepository = tableRepo.NewRepository(db)
		timeslotRepository = timeslotRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reservationsSvc := reservationsService.NewService(
		reservationRepository,
		policy,
		log,
	)
	tablesSvc := tablesService.NewService(
		tableRepository,
		reservationRepository,
		log,
	)
	timeslotsSvc := timeslotsService.NewService(
		timeslotRepository,
		log,
	)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		reservationRepository,
		tableRepository,
		timeslotRepository,
		policy,
		log,
	)
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		tableRepository,
		timeslotRepository,
		txMgr,
		policy,
		log,
	)
	updateReservationUseCase := updateReservationUC.NewUseCase(
		reservationRepository,
		tableRepository,
		timeslotRepository,
		txMgr,
		policy,
		log,
	)
	approveReservationUseCase := approveReservationUC.NewUseCase(
		reservationRepository,
		tableRepository,
		txMgr,
		policy,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	updateReservation := updateReservationHandler.NewHandler(updateReservationUseCase, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	searchReservations := searchReservationsHandler.NewHandler(reservationsSvc, log)
	manageReservation := manageReservationHandler.NewHandler(reservationsSvc, log)
	approveReservation := approveReservationHandler.NewHandler(approveReservationUseCase, log)
	manageTables := manageTablesHandler.NewHandler(tablesSvc, log)
	manageTimeSlots := manageTimeSlotsHandler.NewHandler(timeslotsSvc, log)

	// Аутентификация персонала
	auth := middleware.NewAuth(cfg.Auth.JWTSecret, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

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
	api := r.PathPrefix("/api").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (гости, без аутентификации)
	// ============================================================

	// Доступность слотов на дату
	api.HandleFunc("/reservations/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Самообслуживание по коду подтверждения
	api.HandleFunc("/reservations/code/{code}", getReservation.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/code/{code}", updateReservation.Handle).Methods(http.MethodPut)
	api.HandleFunc("/reservations/code/{code}", cancelReservation.Handle).Methods(http.MethodDelete)

	// Действующий каталог слотов (для формы бронирования)
	api.HandleFunc("/timeslots", manageTimeSlots.HandleList).Methods(http.MethodGet)

	// ============================================================
	// STAFF ROUTES (требуют валидный JWT)
	// ============================================================

	staff := api.PathPrefix("").Subrouter()
	staff.Use(auth.Middleware)

	// --- Бронирования (админка) ---
	staff.HandleFunc("/reservations/admin", searchReservations.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/reservations/admin/today", searchReservations.HandleToday).Methods(http.MethodGet)
	staff.HandleFunc("/reservations/admin/{id}", manageReservation.HandleGet).Methods(http.MethodGet)
	staff.HandleFunc("/reservations/admin/{id}", manageReservation.HandleUpdate).Methods(http.MethodPut)
	staff.HandleFunc("/reservations/admin/{id}/approve", approveReservation.Handle).Methods(http.MethodPost)

	// --- Столы ---
	staff.HandleFunc("/tables", manageTables.HandleList).Methods(http.MethodGet)
	staff.HandleFunc("/tables/{id}", manageTables.HandleGet).Methods(http.MethodGet)
	staff.HandleFunc("/tables/{id}/status", manageTables.HandleUpdateStatus).Methods(http.MethodPatch)

	// ============================================================
	// ADMIN ROUTES (требуют роль admin)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(auth.Middleware, auth.RequireAdmin)

	admin.HandleFunc("/reservations/admin/{id}", manageReservation.HandleDelete).Methods(http.MethodDelete)

	admin.HandleFunc("/tables", manageTables.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/tables/{id}", manageTables.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/tables/{id}", manageTables.HandleDelete).Methods(http.MethodDelete)

	admin.HandleFunc("/timeslots", manageTimeSlots.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/timeslots/{id}", manageTimeSlots.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/timeslots/{id}", manageTimeSlots.HandleDelete).Methods(http.MethodDelete)

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
