package mongo

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gymtech/dashboard/internal/core/domain"
)

const chatCollection = "chat_histories"

// ChatHistoryRepository stores one transcript document per role+id pair.
// The document key keeps the `chat_<role-lowercased>_<id>` layout so the
// same numeric id never collides across Member and Employee spaces.
type ChatHistoryRepository struct {
	coll *mongo.Collection
}

func NewChatHistoryRepository(db *mongo.Database) *ChatHistoryRepository {
	return &ChatHistoryRepository{coll: db.Collection(chatCollection)}
}

type chatHistoryDoc struct {
	Key      string               `bson:"_id"`
	Messages []domain.ChatMessage `bson:"messages"`
}

// HistoryKey builds the transcript key for a role+id pair.
func HistoryKey(role domain.Role, userID int) string {
	return fmt.Sprintf("chat_%s_%d", strings.ToLower(role.String()), userID)
}

func (r *ChatHistoryRepository) List(ctx context.Context, role domain.Role, userID int) ([]domain.ChatMessage, error) {
	var doc chatHistoryDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": HistoryKey(role, userID)}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("chat history find: %w", err)
	}
	return doc.Messages, nil
}

func (r *ChatHistoryRepository) Append(ctx context.Context, role domain.Role, userID int, msgs ...domain.ChatMessage) error {
	if len(msgs) == 0 {
		return nil
	}
	update := bson.M{"$push": bson.M{"messages": bson.M{"$each": msgs}}}
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": HistoryKey(role, userID)}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("chat history append: %w", err)
	}
	return nil
}
