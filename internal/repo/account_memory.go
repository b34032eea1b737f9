package repo

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/rogerio-castellano/factory-management/internal/models"
)

var (
	createUserRe = regexp.MustCompile(`^CREATE USER IF NOT EXISTS '([^']*)'@'([^']*)' IDENTIFIED BY '(.*)'$`)
	grantRe      = regexp.MustCompile(`^(GRANT .+) TO '([^']*)'@'([^']*)'$`)
)

// InMemoryAccountRepository understands the account statements issued by
// the API and keeps grants in SHOW GRANTS form.
type InMemoryAccountRepository struct {
	mu          sync.RWMutex
	accounts    map[string]*memoryAccount
	executed    []string
	unavailable bool
}

type memoryAccount struct {
	user, host, password string
	grants               []string
}

func NewInMemoryAccountRepository() *InMemoryAccountRepository {
	return &InMemoryAccountRepository{accounts: map[string]*memoryAccount{}}
}

// Seed adds an account with the given grants, as SHOW GRANTS would print them.
func (r *InMemoryAccountRepository) Seed(user, host string, grants ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts[user+"@"+host] = &memoryAccount{user: user, host: host, grants: grants}
}

func (r *InMemoryAccountRepository) SetUnavailable(down bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.unavailable = down
}

// Executed returns every statement run so far.
func (r *InMemoryAccountRepository) Executed() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.executed...)
}

// Password returns the password an account was created with.
func (r *InMemoryAccountRepository) Password(user, host string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.accounts[user+"@"+host]
	if !ok {
		return "", false
	}
	return a.password, true
}

func (r *InMemoryAccountRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts = map[string]*memoryAccount{}
	r.executed = nil
}

func (r *InMemoryAccountRepository) List(ctx context.Context) ([]models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.unavailable {
		return nil, ErrUnavailable
	}

	accounts := []models.Account{}
	for _, a := range r.accounts {
		switch a.user {
		case "mysql.session", "mysql.sys", "root":
			continue
		}
		accounts = append(accounts, models.Account{
			User:   a.user,
			Host:   a.host,
			Grants: append([]string{}, a.grants...),
		})
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].User < accounts[j].User
	})
	return accounts, nil
}

func (r *InMemoryAccountRepository) Execute(ctx context.Context, statements []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.unavailable {
		return ErrUnavailable
	}

	for _, stmt := range statements {
		stmt = strings.TrimSpace(stmt)
		r.executed = append(r.executed, stmt)

		if m := createUserRe.FindStringSubmatch(stmt); m != nil {
			key := m[1] + "@" + m[2]
			if _, exists := r.accounts[key]; !exists {
				r.accounts[key] = &memoryAccount{
					user:     m[1],
					host:     m[2],
					password: m[3],
					grants:   []string{fmt.Sprintf("GRANT USAGE ON *.* TO `%s`@`%s`", m[1], m[2])},
				}
			}
			continue
		}

		if m := grantRe.FindStringSubmatch(stmt); m != nil {
			a, exists := r.accounts[m[2]+"@"+m[3]]
			if !exists {
				return fmt.Errorf("Error 1410 (42000): You are not allowed to create a user with GRANT")
			}
			a.grants = append(a.grants, fmt.Sprintf("%s TO `%s`@`%s`", m[1], m[2], m[3]))
			continue
		}

		if stmt == "FLUSH PRIVILEGES" {
			continue
		}

		return fmt.Errorf("Error 1064 (42000): You have an error in your SQL syntax near '%s'", stmt)
	}
	return nil
}
