// File: database/repository/order/crud.go
package orderRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pizzavoice/models"
)

func (r *mongoOrderRepo) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	if order.OrderTime.IsZero() {
		order.OrderTime = time.Now()
	}
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}
	if _, err := r.coll.InsertOne(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *mongoOrderRepo) GetByID(ctx context.Context, storeID, orderID string) (*models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var order models.Order
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid, "storeId": storeID}).Decode(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *mongoOrderRepo) GetByStoreID(ctx context.Context, storeID string) ([]models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"storeId": storeID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *mongoOrderRepo) UpdateStatus(ctx context.Context, storeID, orderID, status, cancellationReason, cancellationNotes string) (*models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	set := bson.M{"status": status}
	if cancellationReason != "" {
		set["cancellationReason"] = cancellationReason
	}
	if cancellationNotes != "" {
		set["cancellationNotes"] = cancellationNotes
	}

	filter := bson.M{"_id": oid, "storeId": storeID}
	after := options.After
	opts := &options.FindOneAndUpdateOptions{ReturnDocument: &after}

	var updated models.Order
	if err := r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *mongoOrderRepo) Delete(ctx context.Context, storeID, orderID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(orderID)
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
