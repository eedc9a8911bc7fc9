package roster

import "context"

// Directory fetches the employee roster from the upstream HRIS.
type Directory interface {
	// ListEmployees returns the full roster, active and inactive alike.
	// Callers filter to active employees themselves.
	ListEmployees(ctx context.Context) ([]Employee, error)
}
