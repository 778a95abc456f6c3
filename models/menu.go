package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// MenuItem is a single entry of a store's menu.
type MenuItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StoreID     string             `bson:"storeId" json:"storeId"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64            `bson:"price" json:"price"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	Available   bool               `bson:"available" json:"available"`
}
