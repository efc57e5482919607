package repository

import (
	"context"
	"errors"
	"quizgame/internal/model"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const quizCollection = "quizzes"

// QuizRepo handles persistence of quizzes
type QuizRepo interface {
	Create(ctx context.Context, quiz *model.Quiz) (string, error)
	// GetByID returns nil, nil when no quiz has the id
	GetByID(ctx context.Context, id string) (*model.Quiz, error)
	List(ctx context.Context) ([]*model.Quiz, error)
	// Search matches term case-insensitively against title, description
	// and topics
	Search(ctx context.Context, term string) ([]*model.Quiz, error)
	Update(ctx context.Context, quiz *model.Quiz) error
	Delete(ctx context.Context, id string) error
}

type quizRepo struct {
	collection *mongo.Collection
}

// NewQuizRepo creates a new quiz repository
func NewQuizRepo(db *mongo.Database) QuizRepo {
	return &quizRepo{
		collection: db.Collection(quizCollection),
	}
}

func (r *quizRepo) Create(ctx context.Context, quiz *model.Quiz) (string, error) {
	quiz.ID = ""
	result, err := r.collection.InsertOne(ctx, quiz)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	quiz.ID = oid.Hex()
	return quiz.ID, nil
}

func (r *quizRepo) GetByID(ctx context.Context, id string) (*model.Quiz, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var quiz model.Quiz
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&quiz)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepo) List(ctx context.Context) ([]*model.Quiz, error) {
	return r.find(ctx, bson.M{})
}

func (r *quizRepo) Search(ctx context.Context, term string) ([]*model.Quiz, error) {
	re := primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
	return r.find(ctx, bson.M{"$or": bson.A{
		bson.M{"quizTitle": re},
		bson.M{"quizDescription": re},
		bson.M{"quizTopicsList": re},
	}})
}

func (r *quizRepo) find(ctx context.Context, filter bson.M) ([]*model.Quiz, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	quizzes := []*model.Quiz{}
	if err := cursor.All(ctx, &quizzes); err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepo) Update(ctx context.Context, quiz *model.Quiz) error {
	oid, err := primitive.ObjectIDFromHex(quiz.ID)
	if err != nil {
		return model.ErrNotFound
	}

	// _id is immutable, the replacement must not carry the hex string
	replacement := *quiz
	replacement.ID = ""
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": oid}, &replacement)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *quizRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.collection, id)
}

func deleteByID(ctx context.Context, collection *mongo.Collection, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.ErrNotFound
	}

	result, err := collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}

func now() time.Time {
	return time.Now().UTC()
}
