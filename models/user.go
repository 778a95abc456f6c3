package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is a store account able to manage its menu and orders.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
}
