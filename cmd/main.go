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

	acceptRequestHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/accept_request"
	createEmployeeHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/create_employee"
	declineRequestHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/decline_request"
	deleteEmployeeHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/delete_employee"
	deleteLoginHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/delete_login"
	generateSlotsHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/generate_slots"
	getPendingRequestsHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/get_pending_requests"
	getSlotHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/get_slot"
	getSlotsHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/get_slots"
	listEmployeesHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/list_employees"
	listLoginsHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/list_logins"
	loginHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/login"
	requestSlotHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/request_slot"
	setLoginHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/set_login"
	"github.com/m04kA/SMC-SchedulerService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulerService/internal/config"
	employeeRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/employee"
	loginRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/login"
	requestRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/request"
	slotRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/slot"
	credentialsService "github.com/m04kA/SMC-SchedulerService/internal/service/credentials"
	employeesService "github.com/m04kA/SMC-SchedulerService/internal/service/employees"
	scheduleService "github.com/m04kA/SMC-SchedulerService/internal/service/schedule"
	acceptRequestUC "github.com/m04kA/SMC-SchedulerService/internal/usecase/accept_request"
	declineRequestUC "github.com/m04kA/SMC-SchedulerService/internal/usecase/decline_request"
	deleteEmployeeUC "github.com/m04kA/SMC-SchedulerService/internal/usecase/delete_employee"
	generateSlotsUC "github.com/m04kA/SMC-SchedulerService/internal/usecase/generate_slots"
	requestSlotUC "github.com/m04kA/SMC-SchedulerService/internal/usecase/request_slot"
	"github.com/m04kA/SMC-SchedulerService/migrations"
	"github.com/m04kA/SMC-SchedulerService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulerService/pkg/logger"
	"github.com/m04kA/SMC-SchedulerService/pkg/metrics"
	"github.com/m04kA/SMC-SchedulerService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-SchedulerService/pkg/txmanager"
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

	log.Info("Starting SMC-SchedulerService...")
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
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("Failed to set migration dialect: %v", err)
	}
	if err := goose.Up(db, "."); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	log.Info("Database migrations applied")

	// Инициализируем репозитории (с метриками или без)
	var (
		employeeRepository *employeeRepo.Repository
		slotRepository     *slotRepo.Repository
		requestRepository  *requestRepo.Repository
		loginRepository    *loginRepo.Repository
	)

	// Интерфейс transaction manager, который умеют оба менеджера
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		employeeRepository = employeeRepo.NewRepository(wrappedDB)
		slotRepository = slotRepo.NewRepository(wrappedDB)
		requestRepository = requestRepo.NewRepository(wrappedDB)
		loginRepository = loginRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		employeeRepository = employeeRepo.NewRepository(db)
		slotRepository = slotRepo.NewRepository(db)
		requestRepository = requestRepo.NewRepository(db)
		loginRepository = loginRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	employeesSvc := employeesService.NewService(employeeRepository, log)
	credentialsSvc := credentialsService.NewService(loginRepository, employeeRepository, cfg.Auth.BcryptCost, log)
	scheduleSvc := scheduleService.NewService(slotRepository, requestRepository, log)

	// Инициализируем use cases
	requestSlotUseCase := requestSlotUC.NewUseCase(slotRepository, requestRepository, txMgr, log)
	acceptRequestUseCase := acceptRequestUC.NewUseCase(requestRepository, slotRepository, txMgr, log)
	declineRequestUseCase := declineRequestUC.NewUseCase(requestRepository, slotRepository, txMgr, log)
	generateSlotsUseCase := generateSlotsUC.NewUseCase(employeeRepository, slotRepository, txMgr, log)
	deleteEmployeeUseCase := deleteEmployeeUC.NewUseCase(
		employeeRepository,
		slotRepository,
		requestRepository,
		loginRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createEmployee := createEmployeeHandler.NewHandler(employeesSvc, log)
	listEmployees := listEmployeesHandler.NewHandler(employeesSvc, log)
	deleteEmployee := deleteEmployeeHandler.NewHandler(deleteEmployeeUseCase, log)
	generateSlots := generateSlotsHandler.NewHandler(generateSlotsUseCase, log)
	getSlots := getSlotsHandler.NewHandler(scheduleSvc, log)
	getSlot := getSlotHandler.NewHandler(scheduleSvc, log)
	requestSlot := requestSlotHandler.NewHandler(requestSlotUseCase, log)
	acceptRequest := acceptRequestHandler.NewHandler(acceptRequestUseCase, log)
	declineRequest := declineRequestHandler.NewHandler(declineRequestUseCase, log)
	getPendingRequests := getPendingRequestsHandler.NewHandler(scheduleSvc, log)
	loginH := loginHandler.NewHandler(credentialsSvc, log)
	setLogin := setLoginHandler.NewHandler(credentialsSvc, log)
	deleteLogin := deleteLoginHandler.NewHandler(credentialsSvc, log)
	listLogins := listLoginsHandler.NewHandler(credentialsSvc, log)

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
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Список сотрудников и их расписания
	api.HandleFunc("/employees", listEmployees.Handle).Methods(http.MethodGet)
	api.HandleFunc("/employees/{employeeId}/slots", getSlots.Handle).Methods(http.MethodGet)

	// Слот и запрос на его бронирование
	api.HandleFunc("/slots/{slotId}", getSlot.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots/{slotId}/request", requestSlot.Handle).Methods(http.MethodPost)

	// Вход сотрудника
	api.HandleFunc("/auth/login", loginH.Handle).Methods(http.MethodPost)

	// ============================================================
	// EMPLOYEE ROUTES (требуют X-Employee-ID header)
	// ============================================================

	employee := api.PathPrefix("").Subrouter()
	employee.Use(middleware.Auth)

	// Очередь запросов сотрудника и решения по ним
	employee.HandleFunc("/employees/{employeeId}/requests/pending", getPendingRequests.Handle).Methods(http.MethodGet)
	employee.HandleFunc("/requests/{requestId}/accept", acceptRequest.Handle).Methods(http.MethodPost)
	employee.HandleFunc("/requests/{requestId}/decline", declineRequest.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token))

	// Управление сотрудниками
	admin.HandleFunc("/employees", createEmployee.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/employees/{employeeId}", deleteEmployee.Handle).Methods(http.MethodDelete)

	// Генерация слотов
	admin.HandleFunc("/employees/{employeeId}/slots/generate", generateSlots.Handle).Methods(http.MethodPost)

	// Учетные записи сотрудников
	admin.HandleFunc("/employees/{employeeId}/login", setLogin.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/employees/{employeeId}/login", deleteLogin.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/logins", listLogins.Handle).Methods(http.MethodGet)

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
