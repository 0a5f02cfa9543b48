// Package directory is the employee/company lookup collaborator. The core
// only uses it to validate an extracted employee id and to hint a company
// scope; a miss leaves the enrichment absent and never fails an extraction.
package directory

import (
	"context"

	"github.com/google/uuid"
)

type Employee struct {
	ID        int
	Name      string
	CompanyID uuid.UUID
}

type Company struct {
	ID   uuid.UUID
	Name string
}

type Directory interface {
	GetEmployee(ctx context.Context, id int) (*Employee, error)
	GetCompany(ctx context.Context, id uuid.UUID) (*Company, error)
}
