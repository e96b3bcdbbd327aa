package repository

import (
	"context"

	"github.com/yukikurage/devtrack-api/internal/database"
	"github.com/yukikurage/devtrack-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoLogRepository is a MongoDB implementation of LogRepository
type MongoLogRepository struct {
	logs     *mongo.Collection
	projects *mongo.Collection
}

// NewMongoLogRepository creates a LogRepository over the logs collection.
// Project references are resolved against the projects collection.
func NewMongoLogRepository(db *mongo.Database) LogRepository {
	return &MongoLogRepository{
		logs:     db.Collection(database.CollectionLogs),
		projects: db.Collection(database.CollectionProjects),
	}
}

// logListFilter translates a LogFilter into a query document. The owner clause is always
// the first element.
func logListFilter(filter LogFilter) bson.D {
	query := bson.D{{Key: "user_id", Value: filter.UserID}}

	if filter.DateFrom != nil || filter.DateTo != nil {
		dateRange := bson.D{}
		if filter.DateFrom != nil {
			dateRange = append(dateRange, bson.E{Key: "$gte", Value: filter.DateFrom.UTC()})
		}
		if filter.DateTo != nil {
			dateRange = append(dateRange, bson.E{Key: "$lt", Value: filter.DateTo.UTC()})
		}
		query = append(query, bson.E{Key: "date", Value: dateRange})
	}

	if filter.ProjectID != "" {
		query = append(query, bson.E{Key: "project_id", Value: filter.ProjectID})
	}

	return query
}

func logListOptions(filter LogFilter) *options.FindOptions {
	opts := options.Find().SetSort(bson.D{
		{Key: "date", Value: -1},
		{Key: "created_at", Value: 1},
		{Key: "_id", Value: 1},
	})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}
	return opts
}

func (r *MongoLogRepository) Create(ctx context.Context, log *models.Log) error {
	_, err := r.logs.InsertOne(ctx, log)
	return translateMongoError(err)
}

func (r *MongoLogRepository) FindByID(ctx context.Context, userID, id string) (*models.Log, error) {
	var log models.Log
	if err := findOwned(ctx, r.logs, userID, id, &log); err != nil {
		return nil, err
	}

	logs := []models.Log{log}
	if err := r.populateProjects(ctx, userID, logs); err != nil {
		return nil, err
	}
	return &logs[0], nil
}

func (r *MongoLogRepository) List(ctx context.Context, filter LogFilter) ([]models.Log, error) {
	cursor, err := r.logs.Find(ctx, logListFilter(filter), logListOptions(filter))
	if err != nil {
		return nil, err
	}

	logs := []models.Log{}
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}

	if err := r.populateProjects(ctx, filter.UserID, logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// populateProjects resolves each log's project reference to a project owned by userID.
// References to missing or foreign projects resolve to nil.
func (r *MongoLogRepository) populateProjects(ctx context.Context, userID string, logs []models.Log) error {
	seen := map[string]bool{}
	ids := []string{}
	for _, log := range logs {
		if log.ProjectID != nil && !seen[*log.ProjectID] {
			seen[*log.ProjectID] = true
			ids = append(ids, *log.ProjectID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	cursor, err := r.projects.Find(ctx, bson.D{
		{Key: "user_id", Value: userID},
		{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}},
	})
	if err != nil {
		return err
	}

	var projects []models.Project
	if err := cursor.All(ctx, &projects); err != nil {
		return err
	}

	byID := make(map[string]*models.Project, len(projects))
	for i := range projects {
		byID[projects[i].ID] = &projects[i]
	}
	for i := range logs {
		if logs[i].ProjectID != nil {
			logs[i].Project = byID[*logs[i].ProjectID]
		}
	}
	return nil
}

func (r *MongoLogRepository) Update(ctx context.Context, log *models.Log, fields ...string) error {
	if len(fields) == 0 {
		fields = models.LogMutableFields
	}
	return updateOwned(ctx, r.logs, log.UserID, log.ID, log, fields)
}

func (r *MongoLogRepository) Delete(ctx context.Context, userID, id string) error {
	return deleteOwnedDocument(ctx, r.logs, userID, id)
}
