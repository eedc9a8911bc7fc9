package httpapi

import (
	"context"

	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/roster"
)

// DirectoryClient fetches the employee roster from GET /employees.
type DirectoryClient struct {
	client *Client
}

func NewDirectoryClient(client *Client) roster.Directory {
	return &DirectoryClient{client: client}
}

// employeeRow mirrors the upstream roster payload, including the field
// name drift between deployments. Normalization into roster.Employee
// happens here and nowhere else.
type employeeRow struct {
	ID               looseID `json:"id"`
	EmployeeID       looseID `json:"employee_id"`
	FirstName        string  `json:"first_name"`
	LastName         string  `json:"last_name"`
	Fname            string  `json:"fname"`
	Lname            string  `json:"lname"`
	Department       string  `json:"department"`
	Dept             string  `json:"dept"`
	Status           string  `json:"status"`
	EmploymentStatus string  `json:"employment_status"`
}

func (c *DirectoryClient) ListEmployees(ctx context.Context) ([]roster.Employee, error) {
	var rows []employeeRow
	if err := c.client.getCollection(ctx, "/employees", nil, &rows); err != nil {
		return nil, err
	}

	employees := make([]roster.Employee, 0, len(rows))
	for _, row := range rows {
		employees = append(employees, roster.Employee{
			ID:               firstNonEmpty(string(row.ID), string(row.EmployeeID)),
			FirstName:        firstNonEmpty(row.FirstName, row.Fname),
			LastName:         firstNonEmpty(row.LastName, row.Lname),
			Department:       firstNonEmpty(row.Department, row.Dept),
			EmploymentStatus: roster.EmploymentStatus(firstNonEmpty(row.EmploymentStatus, row.Status)),
		})
	}
	return employees, nil
}
