package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"trafficmaster/internal/models"
)

// ErrNotFound is returned by lookups that match no record.
var ErrNotFound = errors.New("record not found")

// AdminStore persists administrator credential records.
type AdminStore interface {
	FindByUsername(ctx context.Context, username string) (*models.Admin, error)
	Insert(ctx context.Context, admin *models.Admin) (*mongo.InsertOneResult, error)
	All(ctx context.Context) ([]models.Admin, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
	SetPassword(ctx context.Context, username, passwordHash string) (*mongo.UpdateResult, error)
}

// QuestionStore persists quiz question records.
type QuestionStore interface {
	Insert(ctx context.Context, question *models.Question) (*mongo.InsertOneResult, error)
	Update(ctx context.Context, id primitive.ObjectID, update models.UpdateQuestionRequest) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
	All(ctx context.Context) ([]models.Question, error)
}
