package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/sweetlane/pos-backend-go/internal/config"
	"github.com/sweetlane/pos-backend-go/internal/domain/user"
	"github.com/sweetlane/pos-backend-go/internal/handler/http/middleware"
	"github.com/sweetlane/pos-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	User       UserHandler
	Product    ProductHandler
	Order      OrderHandler
	Attendance AttendanceHandler
	Payroll    PayrollHandler
	Expense    ExpenseHandler
	Report     ReportHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "sweetlane-pos"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.Refresh)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/", h.User.List)
				r.Post("/", h.User.Create)
				r.Get("/{id}", h.User.Get)
				r.Put("/{id}", h.User.Update)
				r.Post("/{id}/toggle-status", h.User.ToggleStatus)
				r.Delete("/{id}", h.User.Delete)
			})

			r.Route("/products", func(r chi.Router) {
				r.Get("/", h.Product.Search)
				r.Get("/{id}", h.Product.Get)

				// Staff only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireStaff)
					r.Post("/", h.Product.Create)
					r.Put("/{id}", h.Product.Update)
					r.Delete("/{id}", h.Product.Delete)
					r.Post("/{id}/restock", h.Product.Restock)
				})
			})

			r.Route("/restocks", func(r chi.Router) {
				r.Use(middleware.RequireStaff)
				r.Get("/", h.Product.ListRestockRecords)
			})

			r.Route("/cart", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionCheckout))
				r.Get("/", h.Order.GetCart)
				r.Post("/items", h.Order.AddToCart)
				r.Delete("/items/{itemID}", h.Order.RemoveFromCart)
				r.Post("/checkout", h.Order.Checkout)
			})

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", h.Order.List)
				r.Get("/{id}", h.Order.Get)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionAttendanceTrack))
				r.Post("/preview", h.Attendance.Preview)
				r.Post("/", h.Attendance.Record)
				r.Get("/", h.Attendance.List)
				r.Get("/{id}", h.Attendance.Get)
				r.Put("/{id}", h.Attendance.Update)
				r.Delete("/{id}", h.Attendance.Delete)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionPayrollView))
				r.Get("/month", h.Payroll.GetMonth)
				r.Get("/users/{userID}", h.Payroll.GetSummary)
			})

			r.Route("/expenses", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Post("/", h.Expense.Create)
				r.Get("/", h.Expense.List)
				r.Delete("/{id}", h.Expense.Delete)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionReportsView))
				r.Get("/sales", h.Report.GetSalesReport)
			})
		})
	})

	return r
}
