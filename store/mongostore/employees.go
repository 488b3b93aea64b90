package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Samirun-Shuvo/inventory-ewmgl/models"
	"github.com/Samirun-Shuvo/inventory-ewmgl/store"
)

type employeeStore struct {
	coll *mongo.Collection
}

func (s *employeeStore) List(ctx context.Context) ([]models.Employee, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var employees []models.Employee
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (s *employeeStore) Get(ctx context.Context, id primitive.ObjectID) (models.Employee, error) {
	var emp models.Employee
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&emp)
	if err == mongo.ErrNoDocuments {
		return models.Employee{}, store.ErrNotFound
	}
	return emp, err
}

func (s *employeeStore) GetByPF(ctx context.Context, pf string) (models.Employee, error) {
	var emp models.Employee
	err := s.coll.FindOne(ctx, bson.M{"pf": pf}).Decode(&emp)
	if err == mongo.ErrNoDocuments {
		return models.Employee{}, store.ErrNotFound
	}
	return emp, err
}

func (s *employeeStore) Insert(ctx context.Context, emp models.Employee) (primitive.ObjectID, error) {
	if emp.ID.IsZero() {
		emp.ID = primitive.NewObjectID()
	}
	_, err := s.coll.InsertOne(ctx, emp)
	return emp.ID, err
}

func (s *employeeStore) Update(ctx context.Context, id primitive.ObjectID, upd store.EmployeeUpdate) error {
	set := bson.M{}
	setString(set, "name", upd.Name)
	setString(set, "dob", upd.Dob)
	setString(set, "pf", upd.PF)
	setString(set, "ip_extention_no", upd.IPExtentionNo)
	setString(set, "email", upd.Email)
	setString(set, "phone", upd.Phone)
	setString(set, "organization", upd.Organization)
	setString(set, "department", upd.Department)
	setString(set, "designation", upd.Designation)
	setString(set, "status", upd.Status)

	if len(set) == 0 {
		// Nothing to change; still report 404 for an unknown id.
		count, err := s.coll.CountDocuments(ctx, bson.M{"_id": id})
		if err != nil {
			return err
		}
		if count == 0 {
			return store.ErrNotFound
		}
		return nil
	}

	result, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *employeeStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *employeeStore) Count(ctx context.Context) (int64, error) {
	return s.coll.CountDocuments(ctx, bson.M{})
}
