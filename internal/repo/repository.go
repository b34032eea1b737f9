package repo

import (
	"context"
	"errors"

	"github.com/rogerio-castellano/factory-management/internal/db"
	"github.com/rogerio-castellano/factory-management/internal/models"
)

var (
	// ErrNotFound is returned when a keyed lookup matches no row.
	ErrNotFound = errors.New("not found")
	// ErrUnavailable is returned when no database connection could be acquired.
	ErrUnavailable = db.ErrUnavailable
)

// Repository defines the CRUD operations shared by every entity table.
// Update and Delete do not check that the row exists.
type Repository[T any] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, row T) error
	Update(ctx context.Context, id string, row T) error
	Delete(ctx context.Context, id string) error
}

type (
	EmployeeRepository   = Repository[models.Employee]
	DepartmentRepository = Repository[models.Department]
	FactoryRepository    = Repository[models.Factory]
	MachineRepository    = Repository[models.Machine]
	ProductRepository    = Repository[models.Product]
	OrderRepository      = Repository[models.ProductionOrder]
)

// AnalyticsRepository runs the fixed reporting queries.
type AnalyticsRepository interface {
	EmployeeReport(ctx context.Context) ([]models.EmployeeReportRow, error)
	OrdersAboveAverage(ctx context.Context) ([]models.ProductionOrder, error)
	CountOrders(ctx context.Context) (models.OrderCount, error)
}

// RoutineRepository exercises the triggers, functions and stored procedures
// installed in the schema.
type RoutineRepository interface {
	OverdueOrders(ctx context.Context) ([]models.ProductionOrder, error)
	DuplicateEmails(ctx context.Context) ([]models.DuplicateEmail, error)
	DepartmentByEmployee(ctx context.Context, employeeID string) (*models.DepartmentName, error)
	TotalQuantityByProduct(ctx context.Context, productID string) (*models.ProductQuantity, error)
	AssignMachineToFactory(ctx context.Context, machineID, factoryID string) error
	UpdatePriorityByQuantity(ctx context.Context) ([]models.OrderPriority, error)
}

// AccountRepository lists database logins and runs account administration
// statements.
type AccountRepository interface {
	// List returns non-system accounts with their grants; Role is left empty.
	List(ctx context.Context) ([]models.Account, error)
	// Execute runs statements in order on a single connection.
	Execute(ctx context.Context, statements []string) error
}

type HealthRepository interface {
	Ping(ctx context.Context) error
}
