package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createAppointmentHandler "github.com/Pratik1Bhuwad/BookSmart-Service/internal/api/handlers/create_appointment"
	createBlockedSlotHandler "github.com/Pratik1Bhuwad/BookSmart-Service/internal/api/handlers/create_blocked_slot"
	createCheckoutSessionHandler "github.com/Pratik1Bhuwad/BookSmart-Service/internal/api/handlers/create_checkout_session"
	createTimeSlotHandler "github.com/Pratik1Bhuwad/BookSmart-Service/internal/api/handlers/create_time_slot"
	decideAppointmentHandler "github.com/Pratik1Bhuwad/BookSmart-Service/internal/api/handlers/decide_appointment"
	deleteBlockedSlotHandler "github.com/Pratik1Bhuwad/BookSmart-Service/internal/api/handlers/delete_blocked_slot"
	deleteTimeSlotHandler "github.com/Pratik1Bhuwad/BookSmart-Service/internal/api/handlers/delete_time_slot"
	deleteWorkingHoursHandler "github.com/Pratik1Bhuwad/BookSmart-Service/internal/api/handlers/delete_working_hours"
	getAppointmentHandler "github.com/Pratik1Bhuwad/BookSmart-Service/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/Pratik1Bhuwad/BookSmart-Service/internal/api/handlers/get_available_slots"
	getClientAppointmentsHandler "github.com/Pratik1Bhuwad/BookSmart-Service/internal/api/handlers/get_client_appointments"
	getProviderAppointmentsHandler "github.com/Pratik1Bhuwad/BookSmart-Service/internal/api/handlers/get_provider_appointments"
	getWorkingHoursHandler "github.com/Pratik1Bhuwad/BookSmart-Service/internal/api/handlers/get_working_hours"
	listBlockedSlotsHandler "github.com/Pratik1Bhuwad/BookSmart-Service/internal/api/handlers/list_blocked_slots"
	listTimeSlotsHandler "github.com/Pratik1Bhuwad/BookSmart-Service/internal/api/handlers/list_time_slots"
	setWorkingHoursHandler "github.com/Pratik1Bhuwad/BookSmart-Service/internal/api/handlers/set_working_hours"
	stripeWebhookHandler "github.com/Pratik1Bhuwad/BookSmart-Service/internal/api/handlers/stripe_webhook"
	updateTimeSlotHandler "github.com/Pratik1Bhuwad/BookSmart-Service/internal/api/handlers/update_time_slot"
	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/api/middleware"
	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/config"
	appointmentRepo "github.com/Pratik1Bhuwad/BookSmart-Service/internal/infra/storage/appointment"
	blockedSlotRepo "github.com/Pratik1Bhuwad/BookSmart-Service/internal/infra/storage/blockedslot"
	providerServiceRepo "github.com/Pratik1Bhuwad/BookSmart-Service/internal/infra/storage/providerservice"
	timeslotRepo "github.com/Pratik1Bhuwad/BookSmart-Service/internal/infra/storage/timeslot"
	workingHoursRepo "github.com/Pratik1Bhuwad/BookSmart-Service/internal/infra/storage/workinghours"
	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/integrations/mailer"
	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/integrations/paymentgateway"
	appointmentsService "github.com/Pratik1Bhuwad/BookSmart-Service/internal/service/appointments"
	availabilityService "github.com/Pratik1Bhuwad/BookSmart-Service/internal/service/availability"
	scheduleService "github.com/Pratik1Bhuwad/BookSmart-Service/internal/service/schedule"
	approveAppointmentUC "github.com/Pratik1Bhuwad/BookSmart-Service/internal/usecase/approve_appointment"
	createAppointmentUC "github.com/Pratik1Bhuwad/BookSmart-Service/internal/usecase/create_appointment"
	createBlockedSlotUC "github.com/Pratik1Bhuwad/BookSmart-Service/internal/usecase/create_blocked_slot"
	createTimeSlotUC "github.com/Pratik1Bhuwad/BookSmart-Service/internal/usecase/create_time_slot"
	getAvailableSlotsUC "github.com/Pratik1Bhuwad/BookSmart-Service/internal/usecase/get_available_slots"
	updateTimeSlotUC "github.com/Pratik1Bhuwad/BookSmart-Service/internal/usecase/update_time_slot"
	"github.com/Pratik1Bhuwad/BookSmart-Service/pkg/dbmetrics"
	"github.com/Pratik1Bhuwad/BookSmart-Service/pkg/logger"
	"github.com/Pratik1Bhuwad/BookSmart-Service/pkg/metrics"
	"github.com/Pratik1Bhuwad/BookSmart-Service/pkg/simpletxmanager"
	"github.com/Pratik1Bhuwad/BookSmart-Service/pkg/txmanager"
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

	log.Info("Starting BookSmart-Service...")
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
	mailerClient := mailer.NewClient(cfg.SMTP.Host, strconv.Itoa(cfg.SMTP.Port), cfg.SMTP.From, log)
	paymentClient := paymentgateway.NewClient(
		cfg.Stripe.SecretKey,
		cfg.Stripe.WebhookSecret,
		cfg.Stripe.SuccessURL,
		cfg.Stripe.CancelURL,
		log,
	)
	log.Info("Integration clients initialized (SMTP=%s:%d, Stripe checkout)", cfg.SMTP.Host, cfg.SMTP.Port)

	// Инициализируем репозитории (с метриками или без)
	var (
		timeSlotRepository     *timeslotRepo.Repository
		blockedSlotRepository  *blockedSlotRepo.Repository
		workingHoursRepository *workingHoursRepo.Repository
		appointmentRepository  *appointmentRepo.Repository
		serviceRepository      *providerServiceRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		timeSlotRepository = timeslotRepo.NewRepository(wrappedDB)
		blockedSlotRepository = blockedSlotRepo.NewRepository(wrappedDB)
		workingHoursRepository = workingHoursRepo.NewRepository(wrappedDB)
		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		serviceRepository = providerServiceRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		timeSlotRepository = timeslotRepo.NewRepository(db)
		blockedSlotRepository = blockedSlotRepo.NewRepository(db)
		workingHoursRepository = workingHoursRepo.NewRepository(db)
		appointmentRepository = appointmentRepo.NewRepository(db)
		serviceRepository = providerServiceRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(
		appointmentRepository,
		blockedSlotRepository,
		workingHoursRepository,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		workingHoursRepository,
		timeSlotRepository,
		blockedSlotRepository,
		log,
	)
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, txMgr, log)

	// Инициализируем use cases
	createTimeSlotUseCase := createTimeSlotUC.NewUseCase(availabilitySvc, timeSlotRepository, txMgr, log)
	updateTimeSlotUseCase := updateTimeSlotUC.NewUseCase(availabilitySvc, timeSlotRepository, txMgr, log)
	createBlockedSlotUseCase := createBlockedSlotUC.NewUseCase(availabilitySvc, blockedSlotRepository, txMgr, log)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		timeSlotRepository,
		serviceRepository,
		mailerClient,
		txMgr,
		log,
	)
	approveAppointmentUseCase := approveAppointmentUC.NewUseCase(
		appointmentRepository,
		timeSlotRepository,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(serviceRepository, timeSlotRepository, log)

	// Инициализируем handlers
	createTimeSlot := createTimeSlotHandler.NewHandler(createTimeSlotUseCase, log)
	updateTimeSlot := updateTimeSlotHandler.NewHandler(updateTimeSlotUseCase, log)
	deleteTimeSlot := deleteTimeSlotHandler.NewHandler(scheduleSvc, log)
	listTimeSlots := listTimeSlotsHandler.NewHandler(scheduleSvc, log)
	setWorkingHours := setWorkingHoursHandler.NewHandler(scheduleSvc, log)
	getWorkingHours := getWorkingHoursHandler.NewHandler(scheduleSvc, log)
	deleteWorkingHours := deleteWorkingHoursHandler.NewHandler(scheduleSvc, log)
	createBlockedSlot := createBlockedSlotHandler.NewHandler(createBlockedSlotUseCase, log)
	deleteBlockedSlot := deleteBlockedSlotHandler.NewHandler(scheduleSvc, log)
	listBlockedSlots := listBlockedSlotsHandler.NewHandler(scheduleSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	decideAppointment := decideAppointmentHandler.NewHandler(approveAppointmentUseCase, appointmentsSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	getClientAppointments := getClientAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getProviderAppointments := getProviderAppointmentsHandler.NewHandler(appointmentsSvc, log)
	createCheckoutSession := createCheckoutSessionHandler.NewHandler(appointmentsSvc, paymentClient, log)
	stripeWebhook := stripeWebhookHandler.NewHandler(paymentClient, appointmentsSvc, log)

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

	// Stripe webhook (аутентификация - проверка подписи)
	r.HandleFunc("/webhooks/stripe", stripeWebhook.Handle).Methods(http.MethodPost)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Свободные слоты по услуге на дату
	api.HandleFunc("/services/{serviceId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Рабочие часы провайдера
	api.HandleFunc("/providers/{providerId}/working-hours",
		getWorkingHours.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Расписание провайдера ---
	protected.HandleFunc("/slots", createTimeSlot.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/slots", listTimeSlots.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/slots/{slotId}", updateTimeSlot.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/slots/{slotId}", deleteTimeSlot.Handle).Methods(http.MethodDelete)

	protected.HandleFunc("/working-hours", setWorkingHours.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/working-hours/{workingHoursId}", deleteWorkingHours.Handle).Methods(http.MethodDelete)

	protected.HandleFunc("/blocked-slots", createBlockedSlot.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/blocked-slots", listBlockedSlots.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/blocked-slots/{blockedSlotId}", deleteBlockedSlot.Handle).Methods(http.MethodDelete)

	// --- Записи ---
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", getClientAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/decision", decideAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/checkout", createCheckoutSession.Handle).Methods(http.MethodPost)

	// Список записей на услуги провайдера
	protected.HandleFunc("/provider/appointments", getProviderAppointments.Handle).Methods(http.MethodGet)

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
