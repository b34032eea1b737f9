package handlers_test_suite

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	handler "github.com/rogerio-castellano/factory-management/internal/http/handlers"
	"github.com/rogerio-castellano/factory-management/internal/models"
	"github.com/rogerio-castellano/factory-management/internal/repo"
)

const schema = "FactoryManagement"

var (
	employeeRepo   *repo.InMemoryRepository[models.Employee]
	departmentRepo *repo.InMemoryRepository[models.Department]
	factoryRepo    *repo.InMemoryRepository[models.Factory]
	machineRepo    *repo.InMemoryRepository[models.Machine]
	productRepo    *repo.InMemoryRepository[models.Product]
	orderRepo      *repo.InMemoryRepository[models.ProductionOrder]
	employments    *repo.InMemoryEmployments

	analyticsRepo *repo.InMemoryAnalyticsRepository
	routineRepo   *repo.InMemoryRoutineRepository
	accountRepo   *repo.InMemoryAccountRepository
	healthRepo    *repo.InMemoryHealthRepository
)

// today is the date the routine repository treats as CURDATE().
var today = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func init() {
	setupTestRepos()
}

func setupTestRepos() {
	employeeRepo = repo.NewInMemoryRepository(repo.EmployeeTable)
	handler.SetEmployeeRepo(employeeRepo)

	departmentRepo = repo.NewInMemoryRepository(repo.DepartmentTable)
	handler.SetDepartmentRepo(departmentRepo)

	factoryRepo = repo.NewInMemoryRepository(repo.FactoryTable)
	handler.SetFactoryRepo(factoryRepo)

	machineRepo = repo.NewInMemoryRepository(repo.MachineTable)
	handler.SetMachineRepo(machineRepo)

	productRepo = repo.NewInMemoryRepository(repo.ProductTable)
	handler.SetProductRepo(productRepo)

	orderRepo = repo.NewInMemoryRepository(repo.OrderTable)
	handler.SetOrderRepo(orderRepo)

	employments = &repo.InMemoryEmployments{}

	analyticsRepo = repo.NewInMemoryAnalyticsRepository(true)
	analyticsRepo.SetRepositories(employeeRepo, departmentRepo, orderRepo, employments)
	handler.SetAnalyticsRepo(analyticsRepo)

	routineRepo = repo.NewInMemoryRoutineRepository()
	routineRepo.SetRepositories(employeeRepo, departmentRepo, machineRepo, factoryRepo, orderRepo, employments)
	routineRepo.SetClock(func() time.Time { return today })
	handler.SetRoutineRepo(routineRepo)

	accountRepo = repo.NewInMemoryAccountRepository()
	handler.SetAccountRepo(accountRepo)
	seedSystemAccounts()

	healthRepo = &repo.InMemoryHealthRepository{}
	handler.SetHealthRepo(healthRepo)

	handler.SetSchemaName(schema)
}

func seedSystemAccounts() {
	accountRepo.Seed("root", "localhost", "GRANT ALL PRIVILEGES ON *.* TO `root`@`localhost` WITH GRANT OPTION")
	accountRepo.Seed("mysql.sys", "localhost", "GRANT USAGE ON *.* TO `mysql.sys`@`localhost`")
}

func clearAll() {
	employeeRepo.Clear()
	departmentRepo.Clear()
	factoryRepo.Clear()
	machineRepo.Clear()
	productRepo.Clear()
	orderRepo.Clear()
	employments.Clear()
	routineRepo.Clear()
	accountRepo.Clear()
	seedSystemAccounts()
	healthRepo.Err = nil
}

// doRequest sends body as JSON; a string body is sent verbatim.
func doRequest(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, _ := json.Marshal(b)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(w *httptest.ResponseRecorder, v any) error {
	return json.NewDecoder(strings.NewReader(w.Body.String())).Decode(v)
}

func str(s string) models.NullString {
	return models.NewNullString(s)
}

func inputs(values ...string) []models.NullString {
	in := make([]models.NullString, len(values))
	for i, v := range values {
		in[i] = str(v)
	}
	return in
}

func addOrder(id, due, status string, qty int64) {
	orderRepo.Create(context.Background(), models.ProductionOrder{
		ID:        str(id),
		OrderDate: str("2025-01-01"),
		DueDate:   str(due),
		Priority:  str("Medium"),
		Status:    str(status),
		Qty:       models.NewNullInt64(qty),
	})
}
