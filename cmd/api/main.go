package main

import (
	"fmt"
	"net/http"

	"github.com/sweetlane/pos-backend-go/internal/config"
	"github.com/sweetlane/pos-backend-go/internal/domain/attendance"
	appHTTP "github.com/sweetlane/pos-backend-go/internal/handler/http"
	"github.com/sweetlane/pos-backend-go/internal/pkg/database"
	"github.com/sweetlane/pos-backend-go/internal/pkg/jwt"
	"github.com/sweetlane/pos-backend-go/internal/repository/postgresql"
	attendanceService "github.com/sweetlane/pos-backend-go/internal/service/attendance"
	authService "github.com/sweetlane/pos-backend-go/internal/service/auth"
	expenseService "github.com/sweetlane/pos-backend-go/internal/service/expense"
	orderService "github.com/sweetlane/pos-backend-go/internal/service/order"
	payrollService "github.com/sweetlane/pos-backend-go/internal/service/payroll"
	productService "github.com/sweetlane/pos-backend-go/internal/service/product"
	reportService "github.com/sweetlane/pos-backend-go/internal/service/report"
	userService "github.com/sweetlane/pos-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	productRepo := postgresql.NewProductRepository(db)
	cartRepo := postgresql.NewCartRepository(db)
	orderRepo := postgresql.NewOrderRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	expenseRepo := postgresql.NewExpenseRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	engine := attendanceService.NewEngine(attendance.DefaultCyclePolicy())

	authSvc := authService.NewAuthService(userRepo, jwtService)
	userSvc := userService.NewUserService(userRepo)
	productSvc := productService.NewProductService(productRepo, userRepo)
	orderSvc := orderService.NewOrderService(db, cartRepo, orderRepo, productRepo, userRepo)
	entrySvc := attendanceService.NewEntryService(attendanceRepo, userRepo, engine)
	payrollSvc := payrollService.NewPayrollService(attendanceRepo, expenseRepo, userRepo, engine)
	expenseSvc := expenseService.NewExpenseService(expenseRepo, userRepo)
	reportSvc := reportService.NewReportService(reportRepo)

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc, jwtService),
		User:       appHTTP.NewUserHandler(userSvc),
		Product:    appHTTP.NewProductHandler(productSvc),
		Order:      appHTTP.NewOrderHandler(orderSvc),
		Attendance: appHTTP.NewAttendanceHandler(entrySvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc, userRepo),
		Expense:    appHTTP.NewExpenseHandler(expenseSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
