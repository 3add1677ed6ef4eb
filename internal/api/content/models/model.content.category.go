package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContentCategory đại diện cho danh mục phân loại nội dung
type ContentCategory struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name" index:"unique"`
	Slug        string             `json:"slug" bson:"slug" index:"single:1"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
