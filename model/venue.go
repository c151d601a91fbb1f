package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Venue struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name       string             `json:"name" bson:"name"`
	Address    string             `json:"address" bson:"address"`
	Images     []string           `json:"images" bson:"images"`
	City       string             `json:"city" bson:"city"`
	State      string             `json:"state" bson:"state"`
	PostalCode string             `json:"postalCode" bson:"postalCode"`
	Country    string             `json:"country" bson:"country"`
	Longitude  float64            `json:"longitude" bson:"longitude"`
	Latitude   float64            `json:"latitude" bson:"latitude"`
	Capacity   int64              `json:"capacity" bson:"capacity"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type VenuePatch struct {
	Name       *string
	Address    *string
	Images     *[]string
	City       *string
	State      *string
	PostalCode *string
	Country    *string
	Longitude  *float64
	Latitude   *float64
	Capacity   *int64
}
