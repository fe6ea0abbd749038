package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Track is an owner-configured category template. It pre-populates
// session category choices in the form layer and nothing else.
type Track struct {
	Name         string  `json:"name" bson:"name"`
	CurrentTopic string  `json:"currentTopic" bson:"currentTopic"`
	TargetHours  float64 `json:"targetHours" bson:"targetHours"`
}

// Todo is a single item on the owner's todo list.
type Todo struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Text        string             `json:"text" bson:"text"`
	IsCompleted bool               `json:"isCompleted" bson:"isCompleted"`
}

// User is an account. Password holds the bcrypt hash and is never
// serialized to JSON.
type User struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Username string             `json:"username" bson:"username"`
	Password string             `json:"-" bson:"password"`
	Tracks   []Track            `json:"tracks" bson:"tracks"`
	Todos    []Todo             `json:"todos" bson:"todos"`
}
