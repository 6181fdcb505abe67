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

	bookConsultationHandler "github.com/medbridge-ng/consultation-service/internal/api/handlers/book_consultation"
	createConsultationTypeHandler "github.com/medbridge-ng/consultation-service/internal/api/handlers/create_consultation_type"
	getAvailableSlotsHandler "github.com/medbridge-ng/consultation-service/internal/api/handlers/get_available_slots"
	getConsultationHandler "github.com/medbridge-ng/consultation-service/internal/api/handlers/get_consultation"
	getConsultationTypesHandler "github.com/medbridge-ng/consultation-service/internal/api/handlers/get_consultation_types"
	getDoctorHandler "github.com/medbridge-ng/consultation-service/internal/api/handlers/get_doctor"
	getDoctorConsultationsHandler "github.com/medbridge-ng/consultation-service/internal/api/handlers/get_doctor_consultations"
	getPatientConsultationsHandler "github.com/medbridge-ng/consultation-service/internal/api/handlers/get_patient_consultations"
	listDoctorsHandler "github.com/medbridge-ng/consultation-service/internal/api/handlers/list_doctors"
	loginHandler "github.com/medbridge-ng/consultation-service/internal/api/handlers/login"
	registerDoctorHandler "github.com/medbridge-ng/consultation-service/internal/api/handlers/register_doctor"
	registerPatientHandler "github.com/medbridge-ng/consultation-service/internal/api/handlers/register_patient"
	updateAvailabilityHandler "github.com/medbridge-ng/consultation-service/internal/api/handlers/update_doctor_availability"
	updateStatusHandler "github.com/medbridge-ng/consultation-service/internal/api/handlers/update_consultation_status"
	"github.com/medbridge-ng/consultation-service/internal/api/middleware"
	"github.com/medbridge-ng/consultation-service/internal/config"
	"github.com/medbridge-ng/consultation-service/internal/domain"
	consultationRepo "github.com/medbridge-ng/consultation-service/internal/infra/storage/consultation"
	ctypeRepo "github.com/medbridge-ng/consultation-service/internal/infra/storage/consultationtype"
	doctorRepo "github.com/medbridge-ng/consultation-service/internal/infra/storage/doctor"
	patientRepo "github.com/medbridge-ng/consultation-service/internal/infra/storage/patient"
	"github.com/medbridge-ng/consultation-service/internal/notify"
	authService "github.com/medbridge-ng/consultation-service/internal/service/auth"
	consultationsService "github.com/medbridge-ng/consultation-service/internal/service/consultations"
	ctypesService "github.com/medbridge-ng/consultation-service/internal/service/consultationtypes"
	doctorsService "github.com/medbridge-ng/consultation-service/internal/service/doctors"
	bookConsultationUC "github.com/medbridge-ng/consultation-service/internal/usecase/book_consultation"
	getAvailableSlotsUC "github.com/medbridge-ng/consultation-service/internal/usecase/get_available_slots"
	updateStatusUC "github.com/medbridge-ng/consultation-service/internal/usecase/update_consultation_status"
	"github.com/medbridge-ng/consultation-service/pkg/dbmetrics"
	"github.com/medbridge-ng/consultation-service/pkg/logger"
	"github.com/medbridge-ng/consultation-service/pkg/metrics"
	"github.com/medbridge-ng/consultation-service/pkg/simpletxmanager"
	"github.com/medbridge-ng/consultation-service/pkg/txmanager"
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

	log.Info("Starting consultation-service...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		consultationRepository *consultationRepo.Repository
		doctorRepository       *doctorRepo.Repository
		patientRepository      *patientRepo.Repository
		typeRepository         *ctypeRepo.Repository
		notifierDB             notify.DBExecutor
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		consultationRepository = consultationRepo.NewRepository(wrappedDB)
		doctorRepository = doctorRepo.NewRepository(wrappedDB)
		patientRepository = patientRepo.NewRepository(wrappedDB)
		typeRepository = ctypeRepo.NewRepository(wrappedDB)
		notifierDB = wrappedDB
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		consultationRepository = consultationRepo.NewRepository(db)
		doctorRepository = doctorRepo.NewRepository(db)
		patientRepository = patientRepo.NewRepository(db)
		typeRepository = ctypeRepo.NewRepository(db)
		notifierDB = db
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Журнал уведомлений (доставка внешним каналом)
	notifier := notify.New(notifierDB, log)

	// Инициализируем сервисы
	authSvc := authService.NewService(
		patientRepository,
		doctorRepository,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.AccessTTLHours)*time.Hour,
		time.Duration(cfg.Auth.RefreshTTLHours)*time.Hour,
		log,
	)
	consultationsSvc := consultationsService.NewService(consultationRepository, log)
	doctorsSvc := doctorsService.NewService(doctorRepository, log)
	ctypesSvc := ctypesService.NewService(typeRepository, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		doctorRepository,
		consultationRepository,
		log,
	)

	bookConsultationUseCase := bookConsultationUC.NewUseCase(
		consultationRepository,
		doctorRepository,
		patientRepository,
		typeRepository,
		txMgr,
		notifier,
		log,
	)

	updateStatusUseCase := updateStatusUC.NewUseCase(
		consultationRepository,
		notifier,
		log,
	)

	// Инициализируем handlers
	registerPatient := registerPatientHandler.NewHandler(authSvc, log)
	registerDoctor := registerDoctorHandler.NewHandler(authSvc, log)
	login := loginHandler.NewHandler(authSvc, log)
	listDoctors := listDoctorsHandler.NewHandler(doctorsSvc, log)
	getDoctor := getDoctorHandler.NewHandler(doctorsSvc, log)
	updateAvailability := updateAvailabilityHandler.NewHandler(doctorsSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	bookConsultation := bookConsultationHandler.NewHandler(bookConsultationUseCase, log)
	updateStatus := updateStatusHandler.NewHandler(updateStatusUseCase, log)
	getConsultation := getConsultationHandler.NewHandler(consultationsSvc, log)
	getPatientConsultations := getPatientConsultationsHandler.NewHandler(consultationsSvc, log)
	getDoctorConsultations := getDoctorConsultationsHandler.NewHandler(consultationsSvc, log)
	createConsultationType := createConsultationTypeHandler.NewHandler(ctypesSvc, log)
	getConsultationTypes := getConsultationTypesHandler.NewHandler(ctypesSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health endpoint (публичный)
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{"status":"ok"}`)
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Регистрация и вход
	api.HandleFunc("/auth/patient/register", registerPatient.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/doctor/register", registerDoctor.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/{role}/login", login.Handle).Methods(http.MethodPost)

	// Каталог докторов
	api.HandleFunc("/doctors", listDoctors.Handle).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{doctorId}", getDoctor.Handle).Methods(http.MethodGet)

	// Доступные слоты доктора на дату
	api.HandleFunc("/doctors/{doctorId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Справочник типов консультаций (чтение публично)
	api.HandleFunc("/consultation-types", getConsultationTypes.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer access-токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(authSvc.Secret(), log))

	// Создание типа консультации
	protected.HandleFunc("/consultation-types", createConsultationType.Handle).Methods(http.MethodPost)

	// --- Консультации ---
	// Бронирование консультации (только пациент)
	bookRoute := protected.PathPrefix("/consultations").Subrouter()
	bookRoute.Use(middleware.RequireRole(domain.RolePatient))
	bookRoute.HandleFunc("", bookConsultation.Handle).Methods(http.MethodPost)

	// Получение консультации по ID (участники)
	protected.HandleFunc("/consultations/{consultationId}", getConsultation.Handle).Methods(http.MethodGet)

	// Перевод консультации в новый статус
	protected.HandleFunc("/consultations/{consultationId}/status", updateStatus.Handle).Methods(http.MethodPatch)

	// История консультаций пациента
	patientRoutes := protected.PathPrefix("/patients/me").Subrouter()
	patientRoutes.Use(middleware.RequireRole(domain.RolePatient))
	patientRoutes.HandleFunc("/consultations", getPatientConsultations.Handle).Methods(http.MethodGet)

	// --- Кабинет доктора ---
	doctorRoutes := protected.PathPrefix("").Subrouter()
	doctorRoutes.Use(middleware.RequireRole(domain.RoleDoctor))

	// Приёмы доктора
	doctorRoutes.HandleFunc("/doctors/me/consultations", getDoctorConsultations.Handle).Methods(http.MethodGet)

	// Замена расписания доктора
	doctorRoutes.HandleFunc("/doctors/{doctorId}/availability", updateAvailability.Handle).Methods(http.MethodPut)

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
