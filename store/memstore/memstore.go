// Package memstore implements store.Store in process memory. It backs the
// STORE_DRIVER=memory mode and the handler tests. One mutex guards every
// collection, which also makes Assign/Release naturally atomic.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Samirun-Shuvo/inventory-ewmgl/models"
	"github.com/Samirun-Shuvo/inventory-ewmgl/store"
)

type Memory struct {
	mu sync.RWMutex

	organizations []models.Organization
	employees     []models.Employee
	products      []models.Product
	assignments   []models.Assignment
	authUsers     []models.AuthUser
	auditLogs     []models.AuditLog
}

func New() *Memory {
	return &Memory{}
}

func (m *Memory) Organizations() store.OrganizationStore { return (*organizationStore)(m) }
func (m *Memory) Employees() store.EmployeeStore         { return (*employeeStore)(m) }
func (m *Memory) Products() store.ProductStore           { return (*productStore)(m) }
func (m *Memory) Assignments() store.AssignmentStore     { return (*assignmentStore)(m) }
func (m *Memory) AuthUsers() store.AuthUserStore         { return (*authUserStore)(m) }
func (m *Memory) AuditLogs() store.AuditLogStore         { return (*auditLogStore)(m) }

func (m *Memory) Ping(ctx context.Context) error { return nil }

// ---- organizations ----

type organizationStore Memory

func (s *organizationStore) List(ctx context.Context) ([]models.Organization, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Organization, len(s.organizations))
	copy(out, s.organizations)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *organizationStore) Get(ctx context.Context, id primitive.ObjectID) (models.Organization, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, org := range s.organizations {
		if org.ID == id {
			return org, nil
		}
	}
	return models.Organization{}, store.ErrNotFound
}

func (s *organizationStore) Insert(ctx context.Context, org models.Organization) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if org.ID.IsZero() {
		org.ID = primitive.NewObjectID()
	}
	s.organizations = append(s.organizations, org)
	return org.ID, nil
}

func (s *organizationStore) Update(ctx context.Context, id primitive.ObjectID, upd store.OrganizationUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.organizations {
		if s.organizations[i].ID != id {
			continue
		}
		org := &s.organizations[i]
		applyString(&org.Name, upd.Name)
		applyString(&org.LegalName, upd.LegalName)
		applyString(&org.Type, upd.Type)
		applyString(&org.Industry, upd.Industry)
		applyString(&org.Email, upd.Email)
		applyString(&org.Phone, upd.Phone)
		applyString(&org.Website, upd.Website)
		applyString(&org.Description, upd.Description)
		applyString(&org.EmployeeSize, upd.EmployeeSize)
		applyString(&org.Status, upd.Status)
		if upd.Address != nil {
			org.Address = *upd.Address
		}
		if upd.OwnerID != nil {
			owner := *upd.OwnerID
			org.OwnerID = &owner
		}
		if upd.IsVerified != nil {
			org.IsVerified = *upd.IsVerified
		}
		org.UpdatedAt = now()
		return nil
	}
	return store.ErrNotFound
}

func (s *organizationStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.organizations {
		if s.organizations[i].ID == id {
			s.organizations = append(s.organizations[:i], s.organizations[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *organizationStore) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.organizations)), nil
}

// ---- employees ----

type employeeStore Memory

func (s *employeeStore) List(ctx context.Context) ([]models.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Employee, len(s.employees))
	copy(out, s.employees)
	return out, nil
}

func (s *employeeStore) Get(ctx context.Context, id primitive.ObjectID) (models.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, emp := range s.employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return models.Employee{}, store.ErrNotFound
}

func (s *employeeStore) GetByPF(ctx context.Context, pf string) (models.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, emp := range s.employees {
		if emp.PF == pf {
			return emp, nil
		}
	}
	return models.Employee{}, store.ErrNotFound
}

func (s *employeeStore) Insert(ctx context.Context, emp models.Employee) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if emp.ID.IsZero() {
		emp.ID = primitive.NewObjectID()
	}
	s.employees = append(s.employees, emp)
	return emp.ID, nil
}

func (s *employeeStore) Update(ctx context.Context, id primitive.ObjectID, upd store.EmployeeUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.employees {
		if s.employees[i].ID != id {
			continue
		}
		emp := &s.employees[i]
		applyString(&emp.Name, upd.Name)
		applyString(&emp.Dob, upd.Dob)
		applyString(&emp.PF, upd.PF)
		applyString(&emp.IPExtentionNo, upd.IPExtentionNo)
		applyString(&emp.Email, upd.Email)
		applyString(&emp.Phone, upd.Phone)
		applyString(&emp.Organization, upd.Organization)
		applyString(&emp.Department, upd.Department)
		applyString(&emp.Designation, upd.Designation)
		applyString(&emp.Status, upd.Status)
		return nil
	}
	return store.ErrNotFound
}

func (s *employeeStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.employees {
		if s.employees[i].ID == id {
			s.employees = append(s.employees[:i], s.employees[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *employeeStore) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.employees)), nil
}

// ---- products ----

type productStore Memory

func (s *productStore) List(ctx context.Context) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

func (s *productStore) Get(ctx context.Context, id primitive.ObjectID) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getLocked(id)
}

func (s *productStore) getLocked(id primitive.ObjectID) (models.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, store.ErrNotFound
}

func (s *productStore) GetByServiceTag(ctx context.Context, tag string) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ServiceTag == tag {
			return p, nil
		}
	}
	return models.Product{}, store.ErrNotFound
}

func (s *productStore) Insert(ctx context.Context, p models.Product) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	s.products = append(s.products, p)
	return p.ID, nil
}

func (s *productStore) Update(ctx context.Context, id primitive.ObjectID, upd store.ProductUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		p := &s.products[i]
		applyString(&p.ProductType, upd.ProductType)
		applyString(&p.Organization, upd.Organization)
		applyString(&p.Brand, upd.Brand)
		applyString(&p.Model, upd.Model)
		applyString(&p.DisplaySize, upd.DisplaySize)
		applyString(&p.Type, upd.Type)
		applyString(&p.ServiceTag, upd.ServiceTag)
		applyString(&p.SerialNumber, upd.SerialNumber)
		applyString(&p.Processor, upd.Processor)
		applyString(&p.Generation, upd.Generation)
		applyString(&p.SSD, upd.SSD)
		applyString(&p.HDD, upd.HDD)
		applyString(&p.RAM, upd.RAM)
		applyString(&p.Specifications, upd.Specifications)
		applyString(&p.Note, upd.Note)
		applyString(&p.UserInformation, upd.UserInformation)
		applyString(&p.Status, upd.Status)
		return nil
	}
	return store.ErrNotFound
}

func (s *productStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *productStore) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.products)), nil
}

// ---- assignments ----

type assignmentStore Memory

func (s *assignmentStore) List(ctx context.Context) ([]models.Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Assignment, len(s.assignments))
	copy(out, s.assignments)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *assignmentStore) Assign(ctx context.Context, a models.Assignment) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.assignments {
		if existing.ProductID == a.ProductID && existing.Status == models.AssignmentStatusActive {
			return primitive.NilObjectID, store.ErrConflict
		}
	}

	productIdx := -1
	for i := range s.products {
		if s.products[i].ID == a.ProductID {
			productIdx = i
			break
		}
	}
	if productIdx < 0 {
		return primitive.NilObjectID, store.ErrNotFound
	}
	if s.products[productIdx].Status != models.ProductStatusAvailable {
		return primitive.NilObjectID, store.ErrUnavailable
	}

	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	s.assignments = append(s.assignments, a)
	s.products[productIdx].Status = models.ProductStatusAssigned
	return a.ID, nil
}

func (s *assignmentStore) Release(ctx context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.assignments {
		if s.assignments[i].ID != id {
			continue
		}
		productID := s.assignments[i].ProductID
		s.assignments = append(s.assignments[:i], s.assignments[i+1:]...)

		for j := range s.products {
			if s.products[j].ID == productID && s.products[j].Status == models.ProductStatusAssigned {
				s.products[j].Status = models.ProductStatusAvailable
			}
		}
		return nil
	}
	return store.ErrNotFound
}

func (s *assignmentStore) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.assignments)), nil
}

// ---- auth users ----

type authUserStore Memory

func (s *authUserStore) GetByEmail(ctx context.Context, email string) (models.AuthUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.authUsers {
		if u.Email == email {
			return u, nil
		}
	}
	return models.AuthUser{}, store.ErrNotFound
}

func (s *authUserStore) Insert(ctx context.Context, u models.AuthUser) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	s.authUsers = append(s.authUsers, u)
	return u.ID, nil
}

func (s *authUserStore) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.authUsers)), nil
}

// ---- audit logs ----

type auditLogStore Memory

func (s *auditLogStore) Record(ctx context.Context, e models.AuditLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ID.IsZero() {
		e.ID = primitive.NewObjectID()
	}
	s.auditLogs = append(s.auditLogs, e)
	return nil
}

func (s *auditLogStore) List(ctx context.Context, limit int64) ([]models.AuditLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.AuditLog, len(s.auditLogs))
	copy(out, s.auditLogs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func now() time.Time { return time.Now().UTC() }

func applyString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
