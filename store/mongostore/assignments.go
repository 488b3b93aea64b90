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

type assignmentStore struct {
	coll     *mongo.Collection
	products *mongo.Collection
	client   *mongo.Client
}

func (s *assignmentStore) List(ctx context.Context) ([]models.Assignment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var assignments []models.Assignment
	if err := cursor.All(ctx, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

// Assign runs the duplicate guard, the ledger insert, and the product status
// flip inside one transaction so the two writes commit or roll back
// together. The unique partial index on productId backs the guard up when
// two assigns race past the read.
func (s *assignmentStore) Assign(ctx context.Context, a models.Assignment) (primitive.ObjectID, error) {
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}

	session, err := s.client.StartSession()
	if err != nil {
		return primitive.NilObjectID, err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		count, err := s.coll.CountDocuments(sc, bson.M{
			"productId": a.ProductID,
			"status":    models.AssignmentStatusActive,
		})
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, store.ErrConflict
		}

		var product models.Product
		if err := s.products.FindOne(sc, bson.M{"_id": a.ProductID}).Decode(&product); err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, store.ErrNotFound
			}
			return nil, err
		}
		if product.Status != models.ProductStatusAvailable {
			return nil, store.ErrUnavailable
		}

		if _, err := s.coll.InsertOne(sc, a); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, store.ErrConflict
			}
			return nil, err
		}

		_, err = s.products.UpdateOne(sc,
			bson.M{"_id": a.ProductID},
			bson.M{"$set": bson.M{"status": models.ProductStatusAssigned}},
		)
		return nil, err
	})
	if err != nil {
		return primitive.NilObjectID, err
	}
	return a.ID, nil
}

// Release deletes the ledger record and reverts the product to Available in
// the same transaction. A missing product is not an error: the ledger entry
// still goes away.
func (s *assignmentStore) Release(ctx context.Context, id primitive.ObjectID) error {
	session, err := s.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var a models.Assignment
		if err := s.coll.FindOne(sc, bson.M{"_id": id}).Decode(&a); err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, store.ErrNotFound
			}
			return nil, err
		}

		if _, err := s.coll.DeleteOne(sc, bson.M{"_id": id}); err != nil {
			return nil, err
		}

		_, err := s.products.UpdateOne(sc,
			bson.M{"_id": a.ProductID, "status": models.ProductStatusAssigned},
			bson.M{"$set": bson.M{"status": models.ProductStatusAvailable}},
		)
		return nil, err
	})
	return err
}

func (s *assignmentStore) Count(ctx context.Context) (int64, error) {
	return s.coll.CountDocuments(ctx, bson.M{})
}
