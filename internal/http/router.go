package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rogerio-castellano/factory-management/internal/http/handlers"
	"github.com/rogerio-castellano/factory-management/internal/metrics"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// NewRouter builds the API router. Without origins every origin is allowed.
func NewRouter(allowedOrigins ...string) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "Authorization"},
		// the OPTIONS routes below answer preflight themselves
		OptionsPassthrough: true,
		MaxAge:             300,
	}))

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.HealthHandler)

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", handlers.GetEmployeesHandler)
			r.Post("/", handlers.CreateEmployeeHandler)
			r.Get("/{id}", handlers.GetEmployeeByIDHandler)
			r.Put("/{id}", handlers.UpdateEmployeeHandler)
			r.Delete("/{id}", handlers.DeleteEmployeeHandler)
		})
		r.Route("/departments", func(r chi.Router) {
			r.Get("/", handlers.GetDepartmentsHandler)
			r.Post("/", handlers.CreateDepartmentHandler)
			r.Get("/{id}", handlers.GetDepartmentByIDHandler)
			r.Put("/{id}", handlers.UpdateDepartmentHandler)
			r.Delete("/{id}", handlers.DeleteDepartmentHandler)
		})
		r.Route("/factories", func(r chi.Router) {
			r.Get("/", handlers.GetFactoriesHandler)
			r.Post("/", handlers.CreateFactoryHandler)
			r.Get("/{id}", handlers.GetFactoryByIDHandler)
			r.Put("/{id}", handlers.UpdateFactoryHandler)
			r.Delete("/{id}", handlers.DeleteFactoryHandler)
		})
		r.Route("/machines", func(r chi.Router) {
			r.Get("/", handlers.GetMachinesHandler)
			r.Post("/", handlers.CreateMachineHandler)
			r.Get("/{id}", handlers.GetMachineByIDHandler)
			r.Put("/{id}", handlers.UpdateMachineHandler)
			r.Delete("/{id}", handlers.DeleteMachineHandler)
		})
		r.Route("/products", func(r chi.Router) {
			r.Get("/", handlers.GetProductsHandler)
			r.Post("/", handlers.CreateProductHandler)
			r.Get("/{id}", handlers.GetProductByIDHandler)
			r.Put("/{id}", handlers.UpdateProductHandler)
			r.Delete("/{id}", handlers.DeleteProductHandler)
		})
		r.Route("/orders", func(r chi.Router) {
			r.Get("/", handlers.GetOrdersHandler)
			r.Post("/", handlers.CreateOrderHandler)
			r.Get("/{id}", handlers.GetOrderByIDHandler)
			r.Put("/{id}", handlers.UpdateOrderHandler)
			r.Delete("/{id}", handlers.DeleteOrderHandler)
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/join-query", handlers.JoinQueryHandler)
			r.Get("/nested-query", handlers.NestedQueryHandler)
			r.Get("/aggregate-query", handlers.AggregateQueryHandler)
			r.Get("/triggers", handlers.ListTriggersHandler)
			r.Get("/functions", handlers.ListFunctionsHandler)
			r.Get("/procedures", handlers.ListProceduresHandler)
		})

		r.Route("/db-objects", func(r chi.Router) {
			r.Post("/triggers", handlers.ExecuteTriggerHandler)
			r.Options("/triggers", handlers.NoContentHandler)
			r.Post("/functions", handlers.ExecuteFunctionHandler)
			r.Options("/functions", handlers.NoContentHandler)
			r.Post("/procedures", handlers.ExecuteProcedureHandler)
			r.Options("/procedures", handlers.NoContentHandler)
		})

		r.Get("/users", handlers.GetUsersHandler)
		r.Post("/users", handlers.CreateUserHandler)
		r.Options("/users", handlers.NoContentHandler)
	})

	return r
}
