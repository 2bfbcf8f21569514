package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/Pateriya27/Paisa-Ai/internal/admin"
	"github.com/Pateriya27/Paisa-Ai/internal/advisor"
	"github.com/Pateriya27/Paisa-Ai/internal/auth"
	database "github.com/Pateriya27/Paisa-Ai/internal/db"
	"github.com/Pateriya27/Paisa-Ai/internal/finance/application"
	"github.com/Pateriya27/Paisa-Ai/internal/finance/infrastructure"
	"github.com/Pateriya27/Paisa-Ai/internal/finance/interfaces"
	"github.com/Pateriya27/Paisa-Ai/internal/user"
)

type Response struct {
	Message string `json:"message"`
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("Started %s %s", r.Method, r.URL.Path)

		next.ServeHTTP(w, r)

		log.Printf("Completed %s in %v", r.URL.Path, time.Since(start))
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	})
}

type Server struct {
	router             *http.ServeMux
	authHandler        *auth.Handler
	authService        auth.Service
	userHandler        *user.Handler
	accountHandler     *interfaces.AccountHandler
	transactionHandler *interfaces.TransactionHandler
	budgetHandler      *interfaces.BudgetHandler
	dashboardHandler   *interfaces.DashboardHandler
	advisorHandler     *advisor.Handler
	adminHandler       *admin.Handler
	dbService          *database.DBService
}

func NewServer(
	authHandler *auth.Handler,
	authService auth.Service,
	userHandler *user.Handler,
	accountHandler *interfaces.AccountHandler,
	transactionHandler *interfaces.TransactionHandler,
	budgetHandler *interfaces.BudgetHandler,
	dashboardHandler *interfaces.DashboardHandler,
	advisorHandler *advisor.Handler,
	adminHandler *admin.Handler,
	dbService *database.DBService,
) *Server {
	return &Server{
		router:             http.NewServeMux(),
		authHandler:        authHandler,
		authService:        authService,
		userHandler:        userHandler,
		accountHandler:     accountHandler,
		transactionHandler: transactionHandler,
		budgetHandler:      budgetHandler,
		dashboardHandler:   dashboardHandler,
		advisorHandler:     advisorHandler,
		adminHandler:       adminHandler,
		dbService:          dbService,
	}
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(Response{Message: "Path not found"})
}

func checkConfiguration() error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, continuing with system environment variables")
	}

	if os.Getenv("JWT_SECRET") == "" {
		return errors.New("no JWT_SECRET Provided")
	}
	if os.Getenv("DB_CONNECTION_STRING") == "" {
		return errors.New("no DB_CONNECTION_STRING Provided")
	}
	return nil
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ready",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.dbService.Health())
}

func (s *Server) RegisterRoutes() {
	protect := s.authService.JWTAccessTokenMiddleware()
	adminOnly := s.authService.RequireAdmin()

	mainRouter := http.NewServeMux()

	// Public routes
	mainRouter.Handle("POST /api/auth/register", http.HandlerFunc(s.userHandler.HandleRegister))
	mainRouter.Handle("POST /api/auth/login", http.HandlerFunc(s.authHandler.HandleLogin))
	mainRouter.Handle("GET /api/ready", http.HandlerFunc(s.handleReady))
	mainRouter.Handle("GET /api/health", http.HandlerFunc(s.handleHealth))

	// Profile
	mainRouter.Handle("GET /api/profile", protect(http.HandlerFunc(s.userHandler.HandleGetUserProfile)))

	// Accounts
	mainRouter.Handle("POST /api/accounts", protect(http.HandlerFunc(s.accountHandler.CreateAccount)))
	mainRouter.Handle("GET /api/accounts", protect(http.HandlerFunc(s.accountHandler.GetUserAccounts)))
	mainRouter.Handle("GET /api/accounts/{id}", protect(http.HandlerFunc(s.accountHandler.GetAccount)))
	mainRouter.Handle("PUT /api/accounts/{id}", protect(http.HandlerFunc(s.accountHandler.UpdateAccount)))
	mainRouter.Handle("DELETE /api/accounts/{id}", protect(http.HandlerFunc(s.accountHandler.DeleteAccount)))

	// Transactions
	mainRouter.Handle("POST /api/transactions", protect(http.HandlerFunc(s.transactionHandler.CreateTransaction)))
	mainRouter.Handle("GET /api/transactions", protect(http.HandlerFunc(s.transactionHandler.GetUserTransactions)))
	mainRouter.Handle("GET /api/transactions/account/{accountId}", protect(http.HandlerFunc(s.transactionHandler.GetAccountTransactions)))
	mainRouter.Handle("GET /api/transactions/{id}", protect(http.HandlerFunc(s.transactionHandler.GetTransaction)))
	mainRouter.Handle("PUT /api/transactions/{id}", protect(http.HandlerFunc(s.transactionHandler.UpdateTransaction)))
	mainRouter.Handle("DELETE /api/transactions/{id}", protect(http.HandlerFunc(s.transactionHandler.DeleteTransaction)))

	// Budget
	mainRouter.Handle("POST /api/budgets", protect(http.HandlerFunc(s.budgetHandler.CreateOrUpdateBudget)))
	mainRouter.Handle("GET /api/budgets", protect(http.HandlerFunc(s.budgetHandler.GetBudget)))
	mainRouter.Handle("DELETE /api/budgets", protect(http.HandlerFunc(s.budgetHandler.DeleteBudget)))

	// Dashboard and recommendations
	mainRouter.Handle("GET /api/dashboard", protect(http.HandlerFunc(s.dashboardHandler.GetDashboard)))
	mainRouter.Handle("POST /api/ai/recommendations", protect(http.HandlerFunc(s.advisorHandler.GetRecommendations)))

	// Admin
	mainRouter.Handle("GET /api/admin/users", protect(adminOnly(http.HandlerFunc(s.adminHandler.GetUsers))))
	mainRouter.Handle("GET /api/admin/accounts", protect(adminOnly(http.HandlerFunc(s.adminHandler.GetAccounts))))
	mainRouter.Handle("GET /api/admin/transactions", protect(adminOnly(http.HandlerFunc(s.adminHandler.GetTransactions))))

	mainRouter.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = mainRouter
}

func StartBudgetAlertScheduler(alertService *application.BudgetAlertService) error {
	c := cron.New()
	// 09:00 on the first day of every month
	_, err := c.AddFunc("0 9 1 * *", func() {
		alertService.SendMonthlyBudgetAlerts()
	})
	if err != nil {
		return err
	}
	c.Start()
	return nil
}

func main() {
	if err := checkConfiguration(); err != nil {
		log.Fatalf("Missing configuration, update to start server: %v", err)
	}

	dbService, err := database.NewDBService()
	if err != nil {
		log.Fatalf("Could not initialize database: %v", err)
	}
	defer dbService.Close()

	if err := database.RunMigrations(dbService.DB); err != nil {
		log.Fatalf("Could not run migrations: %v", err)
	}

	userRepo := user.NewUserRepository(dbService.DB)
	userService := user.NewUserService(userRepo)
	userHandler := user.NewHandler(userService)

	jwtManager := auth.NewJWTManager()
	authService := auth.NewAuthService(userService, jwtManager)
	authHandler := auth.NewHandler(authService)

	accountRepo := infrastructure.NewAccountRepository(dbService.DB)
	transactionRepo := infrastructure.NewTransactionRepository(dbService.DB)
	budgetRepo := infrastructure.NewBudgetRepository(dbService.DB)

	accountService := application.NewAccountService(accountRepo)
	transactionService := application.NewTransactionService(transactionRepo, accountRepo)
	budgetService := application.NewBudgetService(budgetRepo)
	dashboardService := application.NewDashboardService(accountRepo, transactionRepo, budgetRepo)
	alertService := application.NewBudgetAlertService(budgetRepo, transactionRepo)

	accountHandler := interfaces.NewAccountHandler(accountService, respondJSON, respondError)
	transactionHandler := interfaces.NewTransactionHandler(transactionService, respondJSON, respondError)
	budgetHandler := interfaces.NewBudgetHandler(budgetService, respondJSON, respondError)
	dashboardHandler := interfaces.NewDashboardHandler(dashboardService, respondJSON, respondError)

	geminiClient := advisor.NewGeminiClient(os.Getenv("GEMINI_API_KEY"))
	advisorService := advisor.NewService(geminiClient, transactionRepo)
	advisorHandler := advisor.NewHandler(advisorService, respondJSON, respondError)

	adminService := admin.NewService(dbService.DB)
	adminHandler := admin.NewHandler(adminService, respondJSON, respondError)

	server := NewServer(authHandler, authService, userHandler, accountHandler, transactionHandler,
		budgetHandler, dashboardHandler, advisorHandler, adminHandler, dbService)
	server.RegisterRoutes()

	if err := StartBudgetAlertScheduler(alertService); err != nil {
		log.Fatalf("Scheduler didn't start, stoping the app ...")
	}

	handler := loggingMiddleware(server.router)
	log.Println("Server starting on port 8080...")
	if err := http.ListenAndServe(":8080", handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
