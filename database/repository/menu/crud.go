// File: database/repository/menu/crud.go
package menuRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pizzavoice/models"
)

func (r *mongoMenuRepo) Create(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (r *mongoMenuRepo) GetByStoreID(ctx context.Context, storeID string) ([]models.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"storeId": storeID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.MenuItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *mongoMenuRepo) Update(ctx context.Context, storeID, itemID string, update map[string]interface{}) (*models.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	// Never let an update move an item to another store.
	delete(update, "storeId")
	delete(update, "_id")

	filter := bson.M{"_id": oid, "storeId": storeID}
	after := options.After
	opts := &options.FindOneAndUpdateOptions{ReturnDocument: &after}

	var updated models.MenuItem
	err = r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": update}, opts).Decode(&updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *mongoMenuRepo) Delete(ctx context.Context, storeID, itemID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return mongo.ErrNoDocuments
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "storeId": storeID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
