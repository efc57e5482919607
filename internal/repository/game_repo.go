package repository

import (
	"context"
	"errors"
	"fmt"
	"quizgame/internal/model"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const gameCollection = "quizgames"

// GameRepo handles persistence of quiz games
type GameRepo interface {
	Create(ctx context.Context, game *model.QuizGame) (string, error)
	// GetByID returns nil, nil when no game has the id
	GetByID(ctx context.Context, id string) (*model.QuizGame, error)
	List(ctx context.Context) ([]*model.QuizGame, error)
	SearchByTitle(ctx context.Context, term string) ([]*model.QuizGame, error)
	// Update replaces the whole document, last write wins
	Update(ctx context.Context, game *model.QuizGame) error
	Delete(ctx context.Context, id string) error
	// SetState writes only the runtime fields and returns the updated game.
	// A state that leaves the game running is refused with
	// model.ErrGameEnded once the stored game has ended.
	SetState(ctx context.Context, id string, state model.GameState) (*model.QuizGame, error)
	// AppendResponse pushes resp onto the responses of choice c of question
	// q, provided q is still the open question. It returns
	// model.ErrQuestionClosed when that no longer holds.
	AppendResponse(ctx context.Context, id string, q, c int, resp model.Response) (*model.QuizGame, error)
}

type gameRepo struct {
	collection *mongo.Collection
}

// NewGameRepo creates a new quiz game repository
func NewGameRepo(db *mongo.Database) GameRepo {
	return &gameRepo{
		collection: db.Collection(gameCollection),
	}
}

func (r *gameRepo) Create(ctx context.Context, game *model.QuizGame) (string, error) {
	game.ID = ""
	result, err := r.collection.InsertOne(ctx, game)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	game.ID = oid.Hex()
	return game.ID, nil
}

func (r *gameRepo) GetByID(ctx context.Context, id string) (*model.QuizGame, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var game model.QuizGame
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&game)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func (r *gameRepo) List(ctx context.Context) ([]*model.QuizGame, error) {
	return r.find(ctx, bson.M{})
}

func (r *gameRepo) SearchByTitle(ctx context.Context, term string) ([]*model.QuizGame, error) {
	return r.find(ctx, bson.M{
		"gameTitle": primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"},
	})
}

func (r *gameRepo) find(ctx context.Context, filter bson.M) ([]*model.QuizGame, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	games := []*model.QuizGame{}
	if err := cursor.All(ctx, &games); err != nil {
		return nil, err
	}
	return games, nil
}

func (r *gameRepo) Update(ctx context.Context, game *model.QuizGame) error {
	oid, err := primitive.ObjectIDFromHex(game.ID)
	if err != nil {
		return model.ErrNotFound
	}

	replacement := *game
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

func (r *gameRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.collection, id)
}

func (r *gameRepo) SetState(ctx context.Context, id string, state model.GameState) (*model.QuizGame, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, model.ErrNotFound
	}

	update := bson.M{"$set": bson.M{
		"gameStartedAt":       state.GameStartedAt,
		"gameEndedAt":         state.GameEndedAt,
		"activeQuestionIndex": state.ActiveQuestionIndex,
		"questionStartedAt":   state.QuestionStartedAt,
		"isQuestionOpen":      state.IsQuestionOpen,
		"correctChoiceIndex":  state.CorrectChoiceIndex,
		"isGameOpen":          state.IsGameOpen,
		"updatedAt":           now(),
	}}
	filter := bson.M{"_id": oid}
	if state.GameEndedAt == nil {
		filter["gameEndedAt"] = nil
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var game model.QuizGame
	err = r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&game)
	if err == mongo.ErrNoDocuments {
		n, countErr := r.collection.CountDocuments(ctx, bson.M{"_id": oid})
		if countErr != nil {
			return nil, countErr
		}
		if n == 0 {
			return nil, model.ErrNotFound
		}
		return nil, model.ErrGameEnded
	}
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func (r *gameRepo) AppendResponse(ctx context.Context, id string, q, c int, resp model.Response) (*model.QuizGame, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, model.ErrNotFound
	}

	filter := bson.M{
		"_id":                 oid,
		"isQuestionOpen":      true,
		"activeQuestionIndex": q,
	}
	update := bson.M{
		"$push": bson.M{fmt.Sprintf("questions.%d.choices.%d.responses", q, c): resp},
		"$set":  bson.M{"updatedAt": now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var game model.QuizGame
	err = r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&game)
	if err == mongo.ErrNoDocuments {
		// tell a vanished game apart from a closed question
		n, countErr := r.collection.CountDocuments(ctx, bson.M{"_id": oid})
		if countErr != nil {
			return nil, countErr
		}
		if n == 0 {
			return nil, model.ErrNotFound
		}
		return nil, model.ErrQuestionClosed
	}
	if err != nil {
		return nil, err
	}
	return &game, nil
}
