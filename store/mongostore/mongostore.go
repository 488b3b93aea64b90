// Package mongostore implements store.Store on MongoDB.
package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/Samirun-Shuvo/inventory-ewmgl/store"
)

const (
	collOrganizations = "organizations"
	collEmployees     = "employees"
	collProducts      = "products"
	collAssignments   = "users"
	collAuthUsers     = "authusers"
	collAuditLogs     = "auditlogs"
)

type Mongo struct {
	client *mongo.Client
	db     *mongo.Database

	organizations *organizationStore
	employees     *employeeStore
	products      *productStore
	assignments   *assignmentStore
	authUsers     *authUserStore
	auditLogs     *auditLogStore
}

func New(client *mongo.Client, dbName string) *Mongo {
	db := client.Database(dbName)
	m := &Mongo{client: client, db: db}
	m.organizations = &organizationStore{coll: db.Collection(collOrganizations)}
	m.employees = &employeeStore{coll: db.Collection(collEmployees)}
	m.products = &productStore{coll: db.Collection(collProducts)}
	m.assignments = &assignmentStore{
		coll:     db.Collection(collAssignments),
		products: db.Collection(collProducts),
		client:   client,
	}
	m.authUsers = &authUserStore{coll: db.Collection(collAuthUsers)}
	m.auditLogs = &auditLogStore{coll: db.Collection(collAuditLogs)}
	return m
}

func (m *Mongo) Organizations() store.OrganizationStore { return m.organizations }
func (m *Mongo) Employees() store.EmployeeStore         { return m.employees }
func (m *Mongo) Products() store.ProductStore           { return m.products }
func (m *Mongo) Assignments() store.AssignmentStore     { return m.assignments }
func (m *Mongo) AuthUsers() store.AuthUserStore         { return m.authUsers }
func (m *Mongo) AuditLogs() store.AuditLogStore         { return m.auditLogs }

func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// EnsureIndexes creates the unique partial index that guarantees at most one
// active assignment per product, plus the secondary-key lookup indexes. The
// uniqueness constraint is what closes the check-then-act race between two
// concurrent assigns; the transaction in Assign keeps the status flip tied
// to the insert.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := m.db.Collection(collAssignments).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "productId", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"status": "Active"}),
	})
	if err != nil {
		return err
	}

	_, err = m.db.Collection(collEmployees).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "pf", Value: 1}},
	})
	if err != nil {
		return err
	}

	_, err = m.db.Collection(collProducts).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "service_tag", Value: 1}},
	})
	if err != nil {
		return err
	}

	_, err = m.db.Collection(collAuthUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func setString(set bson.M, key string, v *string) {
	if v != nil {
		set[key] = *v
	}
}
