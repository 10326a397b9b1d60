package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"trafficmaster/internal/models"
)

type mongoAdminStore struct {
	collection *mongo.Collection
}

func NewAdminStore(collection *mongo.Collection) AdminStore {
	return &mongoAdminStore{collection: collection}
}

func (s *mongoAdminStore) FindByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var admin models.Admin
	err := s.collection.FindOne(ctx, bson.M{"username": username}).Decode(&admin)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (s *mongoAdminStore) Insert(ctx context.Context, admin *models.Admin) (*mongo.InsertOneResult, error) {
	return s.collection.InsertOne(ctx, admin)
}

func (s *mongoAdminStore) All(ctx context.Context) ([]models.Admin, error) {
	cur, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	admins := []models.Admin{}
	for cur.Next(ctx) {
		var admin models.Admin
		if err := cur.Decode(&admin); err != nil {
			return nil, err
		}
		admins = append(admins, admin)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return admins, nil
}

func (s *mongoAdminStore) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return s.collection.DeleteOne(ctx, bson.M{"_id": id})
}

func (s *mongoAdminStore) SetPassword(ctx context.Context, username, passwordHash string) (*mongo.UpdateResult, error) {
	filter := bson.M{"username": username}
	update := bson.M{"$set": bson.M{"password": passwordHash}}
	return s.collection.UpdateOne(ctx, filter, update)
}

type mongoQuestionStore struct {
	collection *mongo.Collection
}

func NewQuestionStore(collection *mongo.Collection) QuestionStore {
	return &mongoQuestionStore{collection: collection}
}

func (s *mongoQuestionStore) Insert(ctx context.Context, question *models.Question) (*mongo.InsertOneResult, error) {
	return s.collection.InsertOne(ctx, question)
}

func (s *mongoQuestionStore) Update(ctx context.Context, id primitive.ObjectID, update models.UpdateQuestionRequest) (*mongo.UpdateResult, error) {
	filter := bson.M{"_id": id}
	set := bson.M{"$set": bson.M{
		"text":          update.Text,
		"options":       update.Options,
		"correctOption": update.CorrectOption,
	}}
	return s.collection.UpdateOne(ctx, filter, set)
}

func (s *mongoQuestionStore) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return s.collection.DeleteOne(ctx, bson.M{"_id": id})
}

func (s *mongoQuestionStore) All(ctx context.Context) ([]models.Question, error) {
	cur, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	questions := []models.Question{}
	for cur.Next(ctx) {
		var question models.Question
		if err := cur.Decode(&question); err != nil {
			return nil, err
		}
		questions = append(questions, question)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return questions, nil
}
