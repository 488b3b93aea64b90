package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Samirun-Shuvo/inventory-ewmgl/models"
	"github.com/Samirun-Shuvo/inventory-ewmgl/store"
)

type authUserStore struct {
	coll *mongo.Collection
}

func (s *authUserStore) GetByEmail(ctx context.Context, email string) (models.AuthUser, error) {
	var u models.AuthUser
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return models.AuthUser{}, store.ErrNotFound
	}
	return u, err
}

func (s *authUserStore) Insert(ctx context.Context, u models.AuthUser) (primitive.ObjectID, error) {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	_, err := s.coll.InsertOne(ctx, u)
	return u.ID, err
}

func (s *authUserStore) Count(ctx context.Context) (int64, error) {
	return s.coll.CountDocuments(ctx, bson.M{})
}

type auditLogStore struct {
	coll *mongo.Collection
}

func (s *auditLogStore) Record(ctx context.Context, e models.AuditLog) error {
	if e.ID.IsZero() {
		e.ID = primitive.NewObjectID()
	}
	_, err := s.coll.InsertOne(ctx, e)
	return err
}

func (s *auditLogStore) List(ctx context.Context, limit int64) ([]models.AuditLog, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)
	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.AuditLog
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
