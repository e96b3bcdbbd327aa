package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// NewMongoRepositories returns the MongoDB implementations backed by db.
func NewMongoRepositories(db *mongo.Database) Repositories {
	return Repositories{
		Users:    NewMongoUserRepository(db),
		Logs:     NewMongoLogRepository(db),
		Projects: NewMongoProjectRepository(db),
		Skills:   NewMongoSkillRepository(db),
	}
}

// ownedDocument filters a single document by owner and id, owner first.
func ownedDocument(userID, id string) bson.D {
	return bson.D{
		{Key: "user_id", Value: userID},
		{Key: "_id", Value: id},
	}
}

// fieldUpdate builds a $set/$unset update for the named fields of doc. Fields missing from
// the encoded document (nil pointers tagged omitempty) are unset.
func fieldUpdate(doc any, fields []string) (bson.D, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	var encoded bson.M
	if err := bson.Unmarshal(raw, &encoded); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}

	set := bson.D{}
	unset := bson.D{}
	for _, field := range fields {
		if value, ok := encoded[field]; ok {
			set = append(set, bson.E{Key: field, Value: value})
		} else {
			unset = append(unset, bson.E{Key: field, Value: ""})
		}
	}

	update := bson.D{}
	if len(set) > 0 {
		update = append(update, bson.E{Key: "$set", Value: set})
	}
	if len(unset) > 0 {
		update = append(update, bson.E{Key: "$unset", Value: unset})
	}
	return update, nil
}

func translateMongoError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	default:
		return err
	}
}

func findOwned(ctx context.Context, coll *mongo.Collection, userID, id string, out any) error {
	return translateMongoError(coll.FindOne(ctx, ownedDocument(userID, id)).Decode(out))
}

func updateOwned(ctx context.Context, coll *mongo.Collection, userID, id string, doc any, fields []string) error {
	update, err := fieldUpdate(doc, fields)
	if err != nil {
		return err
	}
	if len(update) == 0 {
		return nil
	}

	result, err := coll.UpdateOne(ctx, ownedDocument(userID, id), update)
	if err != nil {
		return translateMongoError(err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func deleteOwnedDocument(ctx context.Context, coll *mongo.Collection, userID, id string) error {
	result, err := coll.DeleteOne(ctx, ownedDocument(userID, id))
	if err != nil {
		return translateMongoError(err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
