package mongostore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Samirun-Shuvo/inventory-ewmgl/models"
	"github.com/Samirun-Shuvo/inventory-ewmgl/store"
)

type organizationStore struct {
	coll *mongo.Collection
}

func (s *organizationStore) List(ctx context.Context) ([]models.Organization, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orgs []models.Organization
	if err := cursor.All(ctx, &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

func (s *organizationStore) Get(ctx context.Context, id primitive.ObjectID) (models.Organization, error) {
	var org models.Organization
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&org)
	if err == mongo.ErrNoDocuments {
		return models.Organization{}, store.ErrNotFound
	}
	return org, err
}

func (s *organizationStore) Insert(ctx context.Context, org models.Organization) (primitive.ObjectID, error) {
	if org.ID.IsZero() {
		org.ID = primitive.NewObjectID()
	}
	_, err := s.coll.InsertOne(ctx, org)
	return org.ID, err
}

func (s *organizationStore) Update(ctx context.Context, id primitive.ObjectID, upd store.OrganizationUpdate) error {
	set := bson.M{"updated_at": time.Now().UTC()}
	setString(set, "name", upd.Name)
	setString(set, "legal_name", upd.LegalName)
	setString(set, "type", upd.Type)
	setString(set, "industry", upd.Industry)
	setString(set, "email", upd.Email)
	setString(set, "phone", upd.Phone)
	setString(set, "website", upd.Website)
	setString(set, "description", upd.Description)
	setString(set, "employee_size", upd.EmployeeSize)
	setString(set, "status", upd.Status)
	if upd.Address != nil {
		set["address"] = *upd.Address
	}
	if upd.OwnerID != nil {
		set["owner_id"] = *upd.OwnerID
	}
	if upd.IsVerified != nil {
		set["is_verified"] = *upd.IsVerified
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

func (s *organizationStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *organizationStore) Count(ctx context.Context) (int64, error) {
	return s.coll.CountDocuments(ctx, bson.M{})
}
