package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FileInfo struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Filename       string             `bson:"filename" json:"filename"`
	Type           string             `bson:"type" json:"type"`
	Size           string             `bson:"size" json:"size"`
	Date           time.Time          `bson:"date" json:"date"`
	CreatorName    string             `bson:"creatorName" json:"creatorName"`
	Category       string             `bson:"category,omitempty" json:"category,omitempty"`
	Classification string             `bson:"classification" json:"classification"`
	Confidence     float64            `bson:"confidence" json:"confidence"`
}

type UploadFileParams struct {
	Filename       string  `json:"filename" validate:"required"`
	Type           string  `json:"type" validate:"required"`
	Size           string  `json:"size" validate:"required"`
	CreatorName    string  `json:"creatorName" validate:"required"`
	Category       string  `json:"category"`
	Classification string  `json:"classification"`
	Confidence     float64 `json:"confidence"`
}
