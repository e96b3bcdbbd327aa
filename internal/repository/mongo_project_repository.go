package repository

import (
	"context"

	"github.com/yukikurage/devtrack-api/internal/database"
	"github.com/yukikurage/devtrack-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoProjectRepository is a MongoDB implementation of ProjectRepository
type MongoProjectRepository struct {
	coll *mongo.Collection
}

func NewMongoProjectRepository(db *mongo.Database) ProjectRepository {
	return &MongoProjectRepository{coll: db.Collection(database.CollectionProjects)}
}

func (r *MongoProjectRepository) Create(ctx context.Context, project *models.Project) error {
	_, err := r.coll.InsertOne(ctx, project)
	return translateMongoError(err)
}

func (r *MongoProjectRepository) FindByID(ctx context.Context, userID, id string) (*models.Project, error) {
	var project models.Project
	if err := findOwned(ctx, r.coll, userID, id, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *MongoProjectRepository) List(ctx context.Context, userID string) ([]models.Project, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.D{{Key: "user_id", Value: userID}}, opts)
	if err != nil {
		return nil, err
	}

	projects := []models.Project{}
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *MongoProjectRepository) Update(ctx context.Context, project *models.Project, fields ...string) error {
	if len(fields) == 0 {
		fields = models.ProjectMutableFields
	}
	return updateOwned(ctx, r.coll, project.UserID, project.ID, project, fields)
}

func (r *MongoProjectRepository) Delete(ctx context.Context, userID, id string) error {
	return deleteOwnedDocument(ctx, r.coll, userID, id)
}
