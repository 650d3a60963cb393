package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TrainStatus string

const (
	TrainStatusPending   TrainStatus = "Pending"
	TrainStatusTraining  TrainStatus = "Training"
	TrainStatusCompleted TrainStatus = "Completed"
)

type Category struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Sample      []string           `bson:"sample" json:"sample"`
	CreateDate  time.Time          `bson:"createDate" json:"createDate"`
	TrainDate   time.Time          `bson:"trainDate" json:"trainDate"`
	TrainStatus TrainStatus        `bson:"trainStatus" json:"trainStatus"`
}

type CreateCategoryParams struct {
	Name    string    `json:"name" validate:"required"`
	Files   []string  `json:"files" validate:"required"`
	Created time.Time `json:"created" validate:"required"`
}

type EditCategoryParams struct {
	ID      string    `json:"id" validate:"required"`
	Name    string    `json:"name" validate:"required"`
	Files   []string  `json:"files" validate:"required"`
	Updated time.Time `json:"updated" validate:"required"`
}
