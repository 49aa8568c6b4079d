package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"swimtrack/training-tracker/internal/domain"
	"swimtrack/training-tracker/internal/repository"
)

type exerciseRepo struct {
	collection *mongo.Collection
}

func (r *exerciseRepo) Create(ctx context.Context, exercise *domain.Exercise) (int64, error) {
	if exercise.Name == "" {
		return 0, errors.New("exercise name is required")
	}
	if exercise.ID == 0 {
		exercise.ID = domain.NewID()
	}
	now := time.Now().UTC()
	exercise.CreatedAt = now
	exercise.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, exerciseToRow(exercise)); err != nil {
		return 0, err
	}
	return exercise.ID, nil
}

func (r *exerciseRepo) GetByID(ctx context.Context, id int64) (*domain.Exercise, error) {
	var row exerciseRow
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&row)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	exercise := exerciseToDomain(row)
	if exercise == nil {
		return nil, repository.ErrNotFound
	}
	return exercise, nil
}

func (r *exerciseRepo) List(ctx context.Context) ([]domain.Exercise, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []exerciseRow
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	exercises := make([]domain.Exercise, 0, len(rows))
	for _, row := range rows {
		if e := exerciseToDomain(row); e != nil {
			exercises = append(exercises, *e)
		}
	}
	return exercises, nil
}

func (r *exerciseRepo) Update(ctx context.Context, exercise *domain.Exercise) error {
	if exercise.ID == 0 {
		return errors.New("exercise ID is required for update")
	}
	if exercise.Name == "" {
		return errors.New("exercise name cannot be empty")
	}
	exercise.UpdatedAt = time.Now().UTC()
	row := exerciseToRow(exercise)

	update := bson.M{
		"$set": bson.M{
			"name":         row.Name,
			"description":  row.Description,
			"illustration": row.Illustration,
			"kind":         row.Kind,
			"endurance":    row.Endurance,
			"hypertrophie": row.Hypertrophie,
			"force":        row.Force,
			"updated_at":   row.UpdatedAt,
		},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": exercise.ID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *exerciseRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
