//go:build integration

package handlers_integrated_test_suite

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/rogerio-castellano/factory-management/internal/config"
	"github.com/rogerio-castellano/factory-management/internal/db"
	handler "github.com/rogerio-castellano/factory-management/internal/http/handlers"
	"github.com/rogerio-castellano/factory-management/internal/repo"
)

// Rows created by this suite use ids with this prefix.
const idPrefix = "IT_"

var (
	database *sql.DB
	cfg      config.Config
)

func init() {
	setupTestRepos()
}

func setupTestRepos() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		log.Fatal("Invalid configuration:", err)
	}

	database, err = db.Open(cfg.DB)
	if err != nil {
		log.Fatal("Could not connect to database:", err)
	}

	handler.SetEmployeeRepo(repo.NewMySQLRepository(database, repo.EmployeeTable))
	handler.SetDepartmentRepo(repo.NewMySQLRepository(database, repo.DepartmentTable))
	handler.SetFactoryRepo(repo.NewMySQLRepository(database, repo.FactoryTable))
	handler.SetMachineRepo(repo.NewMySQLRepository(database, repo.MachineTable))
	handler.SetProductRepo(repo.NewMySQLRepository(database, repo.ProductTable))
	handler.SetOrderRepo(repo.NewMySQLRepository(database, repo.OrderTable))
	handler.SetAnalyticsRepo(repo.NewMySQLAnalyticsRepository(database, true))
	handler.SetRoutineRepo(repo.NewMySQLRoutineRepository(database, false))
	handler.SetAccountRepo(repo.NewMySQLAccountRepository(database))
	handler.SetHealthRepo(repo.NewMySQLHealthRepository(database))
	handler.SetSchemaName(cfg.DB.Name)
}

func clearTestRows() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	for _, t := range []struct{ table, key string }{
		{"PRODUCTION_ORDER", "Order_ID"},
		{"PRODUCT", "P_ID"},
		{"MACHINE", "M_ID"},
		{"FACTORY", "F_ID"},
		{"EMPLOYEE", "E_ID"},
		{"DEPARTMENT", "Dept_ID"},
	} {
		query := fmt.Sprintf("DELETE FROM %s WHERE %s LIKE 'IT\\_%%'", t.table, t.key)
		if _, err := database.ExecContext(ctx, query); err != nil {
			fmt.Println(fmt.Errorf("failed to clear %s: %w", t.table, err))
		}
	}
}

func doRequest(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var data []byte
	if body != nil {
		data, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
