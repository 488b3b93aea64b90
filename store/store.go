// Package store defines the persistence boundary of the inventory service.
// Handlers depend on these interfaces only; mongostore implements them
// against MongoDB and memstore keeps everything in-process.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Samirun-Shuvo/inventory-ewmgl/models"
)

var (
	// ErrNotFound maps to 404 at the handler boundary.
	ErrNotFound = errors.New("not found")
	// ErrConflict maps to 409: the product already has an active assignment.
	ErrConflict = errors.New("product is already assigned")
	// ErrUnavailable maps to 409: the product exists but is not Available.
	ErrUnavailable = errors.New("product is not available for assignment")
)

type Store interface {
	Organizations() OrganizationStore
	Employees() EmployeeStore
	Products() ProductStore
	Assignments() AssignmentStore
	AuthUsers() AuthUserStore
	AuditLogs() AuditLogStore
	Ping(ctx context.Context) error
}

// OrganizationUpdate is a partial patch; nil fields are left unchanged.
type OrganizationUpdate struct {
	Name         *string             `json:"name"`
	LegalName    *string             `json:"legal_name"`
	Type         *string             `json:"type"`
	Industry     *string             `json:"industry"`
	Email        *string             `json:"email"`
	Phone        *string             `json:"phone"`
	Website      *string             `json:"website"`
	Address      *models.Address     `json:"address"`
	Description  *string             `json:"description"`
	EmployeeSize *string             `json:"employee_size"`
	OwnerID      *primitive.ObjectID `json:"owner_id"`
	IsVerified   *bool               `json:"is_verified"`
	Status       *string             `json:"status"`
}

type OrganizationStore interface {
	// List returns all organizations, most recently created first.
	List(ctx context.Context) ([]models.Organization, error)
	Get(ctx context.Context, id primitive.ObjectID) (models.Organization, error)
	Insert(ctx context.Context, org models.Organization) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, upd OrganizationUpdate) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

// EmployeeUpdate is a partial patch; nil fields are left unchanged.
type EmployeeUpdate struct {
	Name          *string `json:"name"`
	Dob           *string `json:"dob"`
	PF            *string `json:"pf"`
	IPExtentionNo *string `json:"ip_extention_no"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	Organization  *string `json:"organization"`
	Department    *string `json:"department"`
	Designation   *string `json:"designation"`
	Status        *string `json:"status"`
}

type EmployeeStore interface {
	List(ctx context.Context) ([]models.Employee, error)
	Get(ctx context.Context, id primitive.ObjectID) (models.Employee, error)
	// GetByPF matches the free-text pf field; with duplicate PFs the first
	// match wins, the store does not enforce uniqueness.
	GetByPF(ctx context.Context, pf string) (models.Employee, error)
	Insert(ctx context.Context, emp models.Employee) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, upd EmployeeUpdate) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

// ProductUpdate is a partial patch; nil fields are left unchanged, never
// reset to empty.
type ProductUpdate struct {
	ProductType     *string `json:"product_type"`
	Organization    *string `json:"organization"`
	Brand           *string `json:"brand"`
	Model           *string `json:"model"`
	DisplaySize     *string `json:"display_size"`
	Type            *string `json:"type"`
	ServiceTag      *string `json:"service_tag"`
	SerialNumber    *string `json:"serial_number"`
	Processor       *string `json:"processor"`
	Generation      *string `json:"generation"`
	SSD             *string `json:"ssd"`
	HDD             *string `json:"hdd"`
	RAM             *string `json:"ram"`
	Specifications  *string `json:"specifications"`
	Note            *string `json:"note"`
	UserInformation *string `json:"user_information"`
	Status          *string `json:"status"`
}

type ProductStore interface {
	List(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, id primitive.ObjectID) (models.Product, error)
	GetByServiceTag(ctx context.Context, tag string) (models.Product, error)
	Insert(ctx context.Context, p models.Product) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, upd ProductUpdate) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

type AssignmentStore interface {
	// List returns all assignments, newest first.
	List(ctx context.Context) ([]models.Assignment, error)
	// Assign atomically verifies the product has no active assignment and is
	// Available, inserts the ledger record, and flips the product status to
	// Assigned. Returns ErrConflict or ErrUnavailable when the guard fails.
	Assign(ctx context.Context, a models.Assignment) (primitive.ObjectID, error)
	// Release removes the ledger record and, in the same atomic step, reverts
	// the product status to Available. A product deleted in the meantime does
	// not block the release.
	Release(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

type AuthUserStore interface {
	GetByEmail(ctx context.Context, email string) (models.AuthUser, error)
	Insert(ctx context.Context, u models.AuthUser) (primitive.ObjectID, error)
	Count(ctx context.Context) (int64, error)
}

type AuditLogStore interface {
	Record(ctx context.Context, e models.AuditLog) error
	// List returns the most recent entries, newest first, capped at limit.
	List(ctx context.Context, limit int64) ([]models.AuditLog, error)
}
