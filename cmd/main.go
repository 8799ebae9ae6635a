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

	cancelBookingHandler "github.com/m04kA/UKC-FacilityService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/UKC-FacilityService/internal/api/handlers/create_booking"
	createInviteHandler "github.com/m04kA/UKC-FacilityService/internal/api/handlers/create_invite"
	getBookingHandler "github.com/m04kA/UKC-FacilityService/internal/api/handlers/get_booking"
	getFacilityPolicyHandler "github.com/m04kA/UKC-FacilityService/internal/api/handlers/get_facility_policy"
	getUserBookingsHandler "github.com/m04kA/UKC-FacilityService/internal/api/handlers/get_user_bookings"
	getWeekScheduleHandler "github.com/m04kA/UKC-FacilityService/internal/api/handlers/get_week_schedule"
	listFacilitiesHandler "github.com/m04kA/UKC-FacilityService/internal/api/handlers/list_facilities"
	streamBookingsHandler "github.com/m04kA/UKC-FacilityService/internal/api/handlers/stream_bookings"
	updateFacilityPolicyHandler "github.com/m04kA/UKC-FacilityService/internal/api/handlers/update_facility_policy"
	verifyInviteHandler "github.com/m04kA/UKC-FacilityService/internal/api/handlers/verify_invite"
	"github.com/m04kA/UKC-FacilityService/internal/api/middleware"
	"github.com/m04kA/UKC-FacilityService/internal/config"
	"github.com/m04kA/UKC-FacilityService/internal/infra/notify"
	bookingRepo "github.com/m04kA/UKC-FacilityService/internal/infra/storage/booking"
	facilityRepo "github.com/m04kA/UKC-FacilityService/internal/infra/storage/facility"
	inviteRepo "github.com/m04kA/UKC-FacilityService/internal/infra/storage/invite"
	policyRepo "github.com/m04kA/UKC-FacilityService/internal/infra/storage/policy"
	identityServiceClient "github.com/m04kA/UKC-FacilityService/internal/integrations/identityservice"
	bookingsService "github.com/m04kA/UKC-FacilityService/internal/service/bookings"
	facilitiesService "github.com/m04kA/UKC-FacilityService/internal/service/facilities"
	policyService "github.com/m04kA/UKC-FacilityService/internal/service/policy"
	createBookingUC "github.com/m04kA/UKC-FacilityService/internal/usecase/create_booking"
	createInviteUC "github.com/m04kA/UKC-FacilityService/internal/usecase/create_invite"
	getWeekScheduleUC "github.com/m04kA/UKC-FacilityService/internal/usecase/get_week_schedule"
	verifyInviteUC "github.com/m04kA/UKC-FacilityService/internal/usecase/verify_invite"
	"github.com/m04kA/UKC-FacilityService/pkg/dbmetrics"
	"github.com/m04kA/UKC-FacilityService/pkg/logger"
	"github.com/m04kA/UKC-FacilityService/pkg/metrics"
	"github.com/m04kA/UKC-FacilityService/pkg/simpletxmanager"
	"github.com/m04kA/UKC-FacilityService/pkg/txmanager"
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

	log.Info("Starting UKC-FacilityService...")
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

	// Шина уведомлений об изменениях бронирований (redis pub/sub)
	eventBus := notify.NewBus(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.Channel, log)
	defer eventBus.Close()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := eventBus.Ping(pingCtx); err != nil {
		cancelPing()
		log.Fatal("Failed to ping redis: %v", err)
	}
	cancelPing()
	log.Info("Successfully connected to redis (addr=%s, channel=%s)", cfg.Redis.Addr, cfg.Redis.Channel)

	// Инициализируем клиент identity-сервиса
	identityClient := identityServiceClient.NewClient(
		cfg.IdentityService.URL,
		time.Duration(cfg.IdentityService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (IdentityService=%s timeout=%ds)",
		cfg.IdentityService.URL, cfg.IdentityService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		facilityRepository *facilityRepo.Repository
		policyRepository   *policyRepo.Repository
		inviteRepository   *inviteRepo.Repository
	)

	// Интерфейс transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		facilityRepository = facilityRepo.NewRepository(wrappedDB)
		policyRepository = policyRepo.NewRepository(wrappedDB)
		inviteRepository = inviteRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		facilityRepository = facilityRepo.NewRepository(db)
		policyRepository = policyRepo.NewRepository(db)
		inviteRepository = inviteRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		identityClient,
		eventBus,
		log,
	)
	facilitySvc := facilitiesService.NewService(facilityRepository, log)
	policySvc := policyService.NewService(
		policyRepository,
		facilityRepository,
		identityClient,
		log,
	)

	// Инициализируем use cases
	timeProvider := &createBookingUC.RealTimeProvider{}

	createBookingUseCase := createBookingUC.NewUsecase(
		bookingRepository,
		facilityRepository,
		policyRepository,
		eventBus,
		txMgr,
		timeProvider,
		log,
	)
	getWeekScheduleUseCase := getWeekScheduleUC.NewUsecase(
		bookingRepository,
		facilityRepository,
		policyRepository,
		identityClient,
		timeProvider,
		log,
	)
	createInviteUseCase := createInviteUC.NewUsecase(inviteRepository, timeProvider, log)
	verifyInviteUseCase := verifyInviteUC.NewUsecase(inviteRepository, timeProvider, log)

	// Инициализируем handlers
	listFacilities := listFacilitiesHandler.NewHandler(facilitySvc, log)
	getWeekSchedule := getWeekScheduleHandler.NewHandler(getWeekScheduleUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getFacilityPolicy := getFacilityPolicyHandler.NewHandler(policySvc, log)
	updateFacilityPolicy := updateFacilityPolicyHandler.NewHandler(policySvc, log)
	createInvite := createInviteHandler.NewHandler(createInviteUseCase, log)
	verifyInvite := verifyInviteHandler.NewHandler(verifyInviteUseCase, log)
	streamBookings := streamBookingsHandler.NewHandler(eventBus, log)

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

	// Справочник объектов
	api.HandleFunc("/facilities", listFacilities.Handle).Methods(http.MethodGet)

	// Действующая политика бронирования объекта
	api.HandleFunc("/facilities/{facilityId}/policy", getFacilityPolicy.Handle).Methods(http.MethodGet)

	// SSE-стрим событий об изменениях бронирований
	api.HandleFunc("/events/bookings", streamBookings.Handle).Methods(http.MethodGet)

	// Проверка гостевого пропуска на проходной (код пропуска - capability)
	api.HandleFunc("/invites/{passCode}", verifyInvite.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Сетка доступности ---
	// Недельная сетка слотов объекта
	protected.HandleFunc("/facilities/{facilityId}/schedule", getWeekSchedule.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования (физическое удаление)
	protected.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)

	// Список бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Управление политиками (для администраторов) ---
	protected.HandleFunc("/facilities/{facilityId}/policy", updateFacilityPolicy.Handle).Methods(http.MethodPut)

	// --- Гостевые приглашения ---
	protected.HandleFunc("/invites", createInvite.Handle).Methods(http.MethodPost)

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
