package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Samirun-Shuvo/inventory-ewmgl/models"
	"github.com/Samirun-Shuvo/inventory-ewmgl/store"
)

type productStore struct {
	coll *mongo.Collection
}

func (s *productStore) List(ctx context.Context) ([]models.Product, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *productStore) Get(ctx context.Context, id primitive.ObjectID) (models.Product, error) {
	var p models.Product
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return models.Product{}, store.ErrNotFound
	}
	return p, err
}

func (s *productStore) GetByServiceTag(ctx context.Context, tag string) (models.Product, error) {
	var p models.Product
	err := s.coll.FindOne(ctx, bson.M{"service_tag": tag}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return models.Product{}, store.ErrNotFound
	}
	return p, err
}

func (s *productStore) Insert(ctx context.Context, p models.Product) (primitive.ObjectID, error) {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	_, err := s.coll.InsertOne(ctx, p)
	return p.ID, err
}

func (s *productStore) Update(ctx context.Context, id primitive.ObjectID, upd store.ProductUpdate) error {
	set := bson.M{}
	setString(set, "product_type", upd.ProductType)
	setString(set, "organization", upd.Organization)
	setString(set, "brand", upd.Brand)
	setString(set, "model", upd.Model)
	setString(set, "display_size", upd.DisplaySize)
	setString(set, "type", upd.Type)
	setString(set, "service_tag", upd.ServiceTag)
	setString(set, "serial_number", upd.SerialNumber)
	setString(set, "processor", upd.Processor)
	setString(set, "generation", upd.Generation)
	setString(set, "ssd", upd.SSD)
	setString(set, "hdd", upd.HDD)
	setString(set, "ram", upd.RAM)
	setString(set, "specifications", upd.Specifications)
	setString(set, "note", upd.Note)
	setString(set, "user_information", upd.UserInformation)
	setString(set, "status", upd.Status)

	if len(set) == 0 {
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

func (s *productStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *productStore) Count(ctx context.Context) (int64, error) {
	return s.coll.CountDocuments(ctx, bson.M{})
}
