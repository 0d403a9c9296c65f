package model

import (
	"time"
)

// BlogPost documents keep the caller-supplied "id" field as their logical
// identifier; the Mongo _id stays internal and never leaves the API.
type BlogPost struct {
	ID        string    `bson:"id" json:"id" validate:"required"`
	Title     string    `bson:"title" json:"title" validate:"required,max=200"`
	Content   string    `bson:"content" json:"content" validate:"required"`
	Excerpt   string    `bson:"excerpt" json:"excerpt" validate:"required,max=300"`
	Author    string    `bson:"author" json:"author" validate:"required,max=100"`
	Tags      []string  `bson:"tags" json:"tags"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
