package handlers

import (
	repo "github.com/rogerio-castellano/factory-management/internal/repo"
)

var (
	employeeRepo   repo.EmployeeRepository
	departmentRepo repo.DepartmentRepository
	factoryRepo    repo.FactoryRepository
	machineRepo    repo.MachineRepository
	productRepo    repo.ProductRepository
	orderRepo      repo.OrderRepository

	analyticsRepo repo.AnalyticsRepository
	routineRepo   repo.RoutineRepository
	accountRepo   repo.AccountRepository
	healthRepo    repo.HealthRepository

	// schemaName is the database the role grants are issued against.
	schemaName = "FactoryManagement"
)

func SetEmployeeRepo(r repo.EmployeeRepository) {
	employeeRepo = r
}

func SetDepartmentRepo(r repo.DepartmentRepository) {
	departmentRepo = r
}

func SetFactoryRepo(r repo.FactoryRepository) {
	factoryRepo = r
}

func SetMachineRepo(r repo.MachineRepository) {
	machineRepo = r
}

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetOrderRepo(r repo.OrderRepository) {
	orderRepo = r
}

func SetAnalyticsRepo(r repo.AnalyticsRepository) {
	analyticsRepo = r
}

func SetRoutineRepo(r repo.RoutineRepository) {
	routineRepo = r
}

func SetAccountRepo(r repo.AccountRepository) {
	accountRepo = r
}

func SetHealthRepo(r repo.HealthRepository) {
	healthRepo = r
}

func SetSchemaName(name string) {
	schemaName = name
}
