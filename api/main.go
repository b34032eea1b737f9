package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/rogerio-castellano/factory-management/docs"
	"github.com/rogerio-castellano/factory-management/internal/config"
	"github.com/rogerio-castellano/factory-management/internal/db"
	api "github.com/rogerio-castellano/factory-management/internal/http"
	"github.com/rogerio-castellano/factory-management/internal/http/handlers"
	"github.com/rogerio-castellano/factory-management/internal/logger"
	"github.com/rogerio-castellano/factory-management/internal/metrics"
	"github.com/rogerio-castellano/factory-management/internal/repo"
	"github.com/rs/zerolog/log"
)

// @title Factory Management API
// @version 1.0
// @description REST API over the factory management schema: entity CRUD, reports, database objects and account provisioning.
// @host localhost:5000
// @BasePath /api
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	logger.Init(cfg.Log.Level, cfg.Log.FilePath)
	ctx := context.Background()

	database, err := db.Open(cfg.DB)
	if err != nil {
		// requests fail with 500 until the database is reachable
		logger.Error(ctx, err, "Could not connect to database")
	}
	if database != nil {
		defer database.Close()
		if err := metrics.RegisterDB(database); err != nil {
			logger.Warn(ctx, "Pool metrics unavailable: %v", err)
		}
	}

	handlers.SetEmployeeRepo(repo.NewMySQLRepository(database, repo.EmployeeTable))
	handlers.SetDepartmentRepo(repo.NewMySQLRepository(database, repo.DepartmentTable))
	handlers.SetFactoryRepo(repo.NewMySQLRepository(database, repo.FactoryTable))
	handlers.SetMachineRepo(repo.NewMySQLRepository(database, repo.MachineTable))
	handlers.SetProductRepo(repo.NewMySQLRepository(database, repo.ProductTable))
	handlers.SetOrderRepo(repo.NewMySQLRepository(database, repo.OrderTable))
	handlers.SetAnalyticsRepo(repo.NewMySQLAnalyticsRepository(database, cfg.Legacy.OrderJoin))
	handlers.SetRoutineRepo(repo.NewMySQLRoutineRepository(database, cfg.Legacy.FunctionInterpolation))
	handlers.SetAccountRepo(repo.NewMySQLAccountRepository(database))
	handlers.SetHealthRepo(repo.NewMySQLHealthRepository(database))
	handlers.SetSchemaName(cfg.DB.Name)

	if cfg.Legacy.FunctionInterpolation {
		logger.Warn(ctx, "Function inputs are interpolated into SQL text")
	}

	srv := &http.Server{
		Addr:              cfg.API.Addr(),
		Handler:           api.NewRouter(cfg.CORSOrigins...),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info(ctx, "Server running on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, err, "Graceful shutdown failed")
	}
	logger.Info(ctx, "Server stopped")
}
