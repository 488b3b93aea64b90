package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AssignmentStatusActive is the only ledger status; released assignments are
// deleted, not flagged.
const AssignmentStatusActive = "Active"

// EmployeeSnapshot is a point-in-time copy of the employee at assignment
// time. Later edits to the employee do not update it.
type EmployeeSnapshot struct {
	ID           primitive.ObjectID `bson:"id" json:"id"`
	PF           string             `bson:"pf" json:"pf"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	Phone        string             `bson:"phone" json:"phone"`
	Department   string             `bson:"department" json:"department"`
	Designation  string             `bson:"designation" json:"designation"`
	Organization string             `bson:"organization" json:"organization"`
}

// ProductSnapshot is a point-in-time copy of the product at assignment time.
type ProductSnapshot struct {
	ID           primitive.ObjectID `bson:"id" json:"id"`
	ProductType  string             `bson:"product_type" json:"product_type"`
	Brand        string             `bson:"brand" json:"brand"`
	Model        string             `bson:"model" json:"model"`
	SerialNumber string             `bson:"serial_number" json:"serial_number"`
	ServiceTag   string             `bson:"service_tag" json:"service_tag"`
	Organization string             `bson:"organization" json:"organization"`
	Status       string             `bson:"status" json:"status"`
	Processor    string             `bson:"processor" json:"processor"`
	RAM          string             `bson:"ram" json:"ram"`
	HDD          string             `bson:"hdd" json:"hdd"`
	SSD          string             `bson:"ssd" json:"ssd"`
	Generation   string             `bson:"generation" json:"generation"`
	DisplaySize  string             `bson:"display_size" json:"display_size"`
	Type         string             `bson:"type" json:"type"`
}

// Assignment links one employee to one product. Documents live in the
// "users" collection, the name the admin panel has always used for the
// ledger. The top-level EmployeeID/ProductID fields carry the uniqueness
// guard; the snapshots carry what the panel renders.
type Assignment struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	EmployeeID primitive.ObjectID `bson:"employeeId" json:"employeeId"`
	ProductID  primitive.ObjectID `bson:"productId" json:"productId"`
	Employee   EmployeeSnapshot   `bson:"employee" json:"employee"`
	Product    ProductSnapshot    `bson:"product" json:"product"`
	Status     string             `bson:"status" json:"status"`
	AssignedAt time.Time          `bson:"assignedAt" json:"assignedAt"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
