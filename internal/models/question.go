package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Question is a stored quiz question. The add endpoint writes the
// question/options/answer field set; the update endpoint writes
// text/options/correctOption instead. Both sets are kept on the record so
// documents touched by either endpoint still decode.
type Question struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Question string             `bson:"question,omitempty" json:"question,omitempty"`
	Options  []string           `bson:"options,omitempty" json:"options,omitempty"`
	Answer   interface{}        `bson:"answer,omitempty" json:"answer,omitempty"`
	Topics   string             `bson:"topics,omitempty" json:"topics,omitempty"`
	Image    string             `bson:"image,omitempty" json:"image,omitempty"`

	Text          string      `bson:"text,omitempty" json:"text,omitempty"`
	CorrectOption interface{} `bson:"correctOption,omitempty" json:"correctOption,omitempty"`
}

type UpdateQuestionRequest struct {
	Text          string      `json:"text"`
	Options       []string    `json:"options"`
	CorrectOption interface{} `json:"correctOption"`
}
