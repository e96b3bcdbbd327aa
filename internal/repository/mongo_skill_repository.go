package repository

import (
	"context"

	"github.com/yukikurage/devtrack-api/internal/database"
	"github.com/yukikurage/devtrack-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSkillRepository is a MongoDB implementation of SkillRepository
type MongoSkillRepository struct {
	coll *mongo.Collection
}

func NewMongoSkillRepository(db *mongo.Database) SkillRepository {
	return &MongoSkillRepository{coll: db.Collection(database.CollectionSkills)}
}

func (r *MongoSkillRepository) Create(ctx context.Context, skill *models.Skill) error {
	_, err := r.coll.InsertOne(ctx, skill)
	return translateMongoError(err)
}

func (r *MongoSkillRepository) FindByID(ctx context.Context, userID, id string) (*models.Skill, error) {
	var skill models.Skill
	if err := findOwned(ctx, r.coll, userID, id, &skill); err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *MongoSkillRepository) List(ctx context.Context, userID string) ([]models.Skill, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.D{{Key: "user_id", Value: userID}}, opts)
	if err != nil {
		return nil, err
	}

	skills := []models.Skill{}
	if err := cursor.All(ctx, &skills); err != nil {
		return nil, err
	}
	return skills, nil
}

func (r *MongoSkillRepository) Update(ctx context.Context, skill *models.Skill, fields ...string) error {
	if len(fields) == 0 {
		fields = models.SkillMutableFields
	}
	return updateOwned(ctx, r.coll, skill.UserID, skill.ID, skill, fields)
}

func (r *MongoSkillRepository) Delete(ctx context.Context, userID, id string) error {
	return deleteOwnedDocument(ctx, r.coll, userID, id)
}
