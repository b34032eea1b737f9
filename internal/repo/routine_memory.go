package repo

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rogerio-castellano/factory-management/internal/models"
	"github.com/shopspring/decimal"
)

// InMemoryRoutineRepository emulates the schema's triggers, functions and
// procedures over the in-memory repositories.
type InMemoryRoutineRepository struct {
	employees   EmployeeRepository
	departments DepartmentRepository
	machines    MachineRepository
	factories   FactoryRepository
	orders      OrderRepository
	employments *InMemoryEmployments

	mu            sync.RWMutex
	now           func() time.Time
	orderProducts map[string]string
	assignments   map[string]string
}

func NewInMemoryRoutineRepository() *InMemoryRoutineRepository {
	return &InMemoryRoutineRepository{
		now:           time.Now,
		orderProducts: map[string]string{},
		assignments:   map[string]string{},
	}
}

func (r *InMemoryRoutineRepository) SetRepositories(employees EmployeeRepository, departments DepartmentRepository,
	machines MachineRepository, factories FactoryRepository, orders OrderRepository, employments *InMemoryEmployments) {
	r.employees = employees
	r.departments = departments
	r.machines = machines
	r.factories = factories
	r.orders = orders
	r.employments = employments
}

// SetClock overrides the date used as CURDATE().
func (r *InMemoryRoutineRepository) SetClock(now func() time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.now = now
}

// LinkOrderProduct records that an order produces the given product.
func (r *InMemoryRoutineRepository) LinkOrderProduct(orderID, productID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orderProducts[orderID] = productID
}

// FactoryOf returns the factory a machine was assigned to.
func (r *InMemoryRoutineRepository) FactoryOf(machineID string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.assignments[machineID]
	return f, ok
}

func (r *InMemoryRoutineRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orderProducts = map[string]string{}
	r.assignments = map[string]string{}
}

func (r *InMemoryRoutineRepository) OverdueOrders(ctx context.Context) ([]models.ProductionOrder, error) {
	orders, err := r.orders.List(ctx)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	today := r.now().Format(time.DateOnly)
	r.mu.RUnlock()

	result := []models.ProductionOrder{}
	for _, o := range orders {
		if !o.DueDate.Valid || !o.Status.Valid {
			continue
		}
		if o.DueDate.String < today && o.Status.String != "Completed" {
			result = append(result, o)
			break
		}
	}
	return result, nil
}

func (r *InMemoryRoutineRepository) DuplicateEmails(ctx context.Context) ([]models.DuplicateEmail, error) {
	employees, err := r.employees.List(ctx)
	if err != nil {
		return nil, err
	}

	groups := map[string][]models.NullString{}
	var order []string
	for _, e := range employees {
		if !e.Email.Valid {
			continue
		}
		k := strings.ToLower(e.Email.String)
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], e.Email)
	}

	result := []models.DuplicateEmail{}
	for _, k := range order {
		if len(groups[k]) > 1 {
			result = append(result, models.DuplicateEmail{Email: groups[k][0]})
		}
	}
	return result, nil
}

func (r *InMemoryRoutineRepository) DepartmentByEmployee(ctx context.Context, employeeID string) (*models.DepartmentName, error) {
	res := &models.DepartmentName{}
	for _, link := range r.employments.List() {
		if link.EmployeeID != employeeID {
			continue
		}
		d, err := r.departments.GetByID(ctx, link.DepartmentID)
		if err == nil {
			res.DepartmentName = d.Name
		}
		break
	}
	return res, nil
}

func (r *InMemoryRoutineRepository) TotalQuantityByProduct(ctx context.Context, productID string) (*models.ProductQuantity, error) {
	orders, err := r.orders.List(ctx)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	res := &models.ProductQuantity{}
	for _, o := range orders {
		if r.orderProducts[o.ID.String] != productID || !o.Qty.Valid {
			continue
		}
		res.TotalQuantity = decimal.NewNullDecimal(res.TotalQuantity.Decimal.Add(decimal.NewFromInt(o.Qty.Int64)))
	}
	return res, nil
}

func (r *InMemoryRoutineRepository) AssignMachineToFactory(ctx context.Context, machineID, factoryID string) error {
	if _, err := r.machines.GetByID(ctx, machineID); err != nil {
		return procedureError(err, "Machine %s does not exist", machineID)
	}
	if _, err := r.factories.GetByID(ctx, factoryID); err != nil {
		return procedureError(err, "Factory %s does not exist", factoryID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.assignments[machineID] = factoryID
	return nil
}

// UpdatePriorityByQuantity ranks orders as High (>= 500), Medium (>= 100)
// or Low by quantity.
func (r *InMemoryRoutineRepository) UpdatePriorityByQuantity(ctx context.Context) ([]models.OrderPriority, error) {
	orders, err := r.orders.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, o := range orders {
		if !o.Qty.Valid {
			continue
		}
		priority := "Low"
		switch {
		case o.Qty.Int64 >= 500:
			priority = "High"
		case o.Qty.Int64 >= 100:
			priority = "Medium"
		}
		o.Priority = models.NewNullString(priority)
		if err := r.orders.Update(ctx, o.ID.String, o); err != nil {
			return nil, err
		}
	}

	orders, err = r.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].Qty.Int64 > orders[j].Qty.Int64
	})
	if len(orders) > 10 {
		orders = orders[:10]
	}

	sample := make([]models.OrderPriority, 0, len(orders))
	for _, o := range orders {
		sample = append(sample, models.OrderPriority{OrderID: o.ID, Qty: o.Qty, Priority: o.Priority})
	}
	return sample, nil
}

// procedureError mimics a SIGNAL raised inside a stored procedure.
func procedureError(err error, format string, args ...any) error {
	if errors.Is(err, ErrUnavailable) {
		return err
	}
	return fmt.Errorf("Error 1644 (45000): "+format, args...)
}
