package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/roster"
	"github.com/cmlabs-hris/attendance-insights-go/internal/pkg/database"
)

// DirectoryRepository reads the roster straight from the HRIS database
// for deployments co-located with it.
type DirectoryRepository struct {
	db database.Querier
}

func NewDirectoryRepository(db database.Querier) roster.Directory {
	return &DirectoryRepository{db: db}
}

func (r *DirectoryRepository) ListEmployees(ctx context.Context) ([]roster.Employee, error) {
	query := `
		SELECT id, first_name, last_name, COALESCE(department, ''), COALESCE(employment_status, '')
		FROM employees
		WHERE deleted_at IS NULL
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []roster.Employee
	for rows.Next() {
		var emp roster.Employee
		var status string
		if err := rows.Scan(&emp.ID, &emp.FirstName, &emp.LastName, &emp.Department, &status); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		emp.EmploymentStatus = roster.EmploymentStatus(status)
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employees: %w", err)
	}
	return employees, nil
}
