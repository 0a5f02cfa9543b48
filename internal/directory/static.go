package directory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"dtr-engine/internal/common"
)

// StaticDirectory is a fixed in-process directory for the CLI and tests.
type StaticDirectory struct {
	mu        sync.RWMutex
	employees map[int]Employee
	companies map[uuid.UUID]Company
}

var _ Directory = (*StaticDirectory)(nil)

func NewStaticDirectory() *StaticDirectory {
	return &StaticDirectory{
		employees: make(map[int]Employee),
		companies: make(map[uuid.UUID]Company),
	}
}

func (d *StaticDirectory) AddEmployee(e Employee) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.employees[e.ID] = e
}

func (d *StaticDirectory) AddCompany(c Company) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.companies[c.ID] = c
}

func (d *StaticDirectory) GetEmployee(_ context.Context, id int) (*Employee, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if e, ok := d.employees[id]; ok {
		return &e, nil
	}
	return nil, common.ErrNotFound
}

func (d *StaticDirectory) GetCompany(_ context.Context, id uuid.UUID) (*Company, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if c, ok := d.companies[id]; ok {
		return &c, nil
	}
	return nil, common.ErrNotFound
}
