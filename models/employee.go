// models/employee.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Employee statuses accepted at the API boundary.
const (
	EmployeeStatusActive     = "Active"
	EmployeeStatusInactive   = "Inactive"
	EmployeeStatusResigned   = "Resigned"
	EmployeeStatusTerminated = "Terminated"
	EmployeeStatusOnLeave    = "On Leave"
	EmployeeStatusAbsconding = "Absconding"
)

var employeeStatuses = map[string]bool{
	EmployeeStatusActive:     true,
	EmployeeStatusInactive:   true,
	EmployeeStatusResigned:   true,
	EmployeeStatusTerminated: true,
	EmployeeStatusOnLeave:    true,
	EmployeeStatusAbsconding: true,
}

// ValidEmployeeStatus reports whether s is part of the canonical vocabulary.
func ValidEmployeeStatus(s string) bool {
	return employeeStatuses[s]
}

// Employee documents live in the "employees" collection. PF (provident fund
// number) is the human-facing secondary lookup key; the store does not
// guarantee its uniqueness. Organization is a free-text name, not a reference.
type Employee struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name          string             `bson:"name" json:"name"`
	Dob           string             `bson:"dob" json:"dob"`
	PF            string             `bson:"pf" json:"pf"`
	IPExtentionNo string             `bson:"ip_extention_no" json:"ip_extention_no"`
	Email         string             `bson:"email" json:"email"`
	Phone         string             `bson:"phone" json:"phone"`
	Organization  string             `bson:"organization" json:"organization"`
	Department    string             `bson:"department" json:"department"`
	Designation   string             `bson:"designation" json:"designation"`
	Status        string             `bson:"status" json:"status"`
}
