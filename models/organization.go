package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Address is the embedded contact address of an organization.
type Address struct {
	City    string `bson:"city" json:"city"`
	Country string `bson:"country" json:"country"`
}

// Organization documents live in the "organizations" collection.
// Field names follow the snake_case wire format the admin panel expects.
type Organization struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"_id,omitempty"`
	Name         string              `bson:"name" json:"name"`
	LegalName    string              `bson:"legal_name" json:"legal_name"`
	Type         string              `bson:"type" json:"type"`
	Industry     string              `bson:"industry" json:"industry"`
	Email        string              `bson:"email" json:"email"`
	Phone        string              `bson:"phone" json:"phone"`
	Website      string              `bson:"website" json:"website"`
	Address      Address             `bson:"address" json:"address"`
	Description  string              `bson:"description" json:"description"`
	EmployeeSize string              `bson:"employee_size" json:"employee_size"`
	OwnerID      *primitive.ObjectID `bson:"owner_id" json:"owner_id"`
	IsVerified   bool                `bson:"is_verified" json:"is_verified"`
	Status       string              `bson:"status" json:"status"`
	CreatedAt    time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time           `bson:"updated_at" json:"updated_at"`
}
