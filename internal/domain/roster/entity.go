package roster

import "strings"

type EmploymentStatus string

const (
	EmploymentStatusActive   EmploymentStatus = "active"
	EmploymentStatusInactive EmploymentStatus = "inactive"
)

// Employee is the read-only directory record this service consumes.
// The directory upstream owns the data; nothing here is ever written back.
type Employee struct {
	ID               string
	FirstName        string
	LastName         string
	Department       string
	EmploymentStatus EmploymentStatus
}

// IsActive reports whether the employee participates in classification.
// Upstream exports sometimes leave the status blank for current staff, so
// an empty status counts as active.
func (e Employee) IsActive() bool {
	status := strings.TrimSpace(strings.ToLower(string(e.EmploymentStatus)))
	return status == "" || status == string(EmploymentStatusActive)
}

// FullName returns "First Last" with either part optional.
func (e Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}
