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

// sessionRepo implements repository.SessionRepository against the backend.
type sessionRepo struct {
	collection *mongo.Collection
}

func (r *sessionRepo) Create(ctx context.Context, session *domain.TrainingSession) (int64, error) {
	if session.Date == "" || (session.AthleteName == "" && session.AthleteID == nil) {
		return 0, errors.New("session date and athlete identity are required")
	}
	if session.ID == 0 {
		session.ID = domain.NewID()
	}
	now := time.Now().UTC()
	session.CreatedAt = now
	session.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, sessionToRow(session)); err != nil {
		return 0, err
	}
	return session.ID, nil
}

func (r *sessionRepo) GetByID(ctx context.Context, id int64) (*domain.TrainingSession, error) {
	var row sessionRow
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&row)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	session := sessionToDomain(row)
	if session == nil {
		// Row exists but fails boundary validation; treat as absent.
		return nil, repository.ErrNotFound
	}
	return session, nil
}

func (r *sessionRepo) List(ctx context.Context, filter repository.SessionFilter) ([]domain.TrainingSession, error) {
	query := bson.M{}
	if filter.AthleteID != nil {
		query["athlete_id"] = *filter.AthleteID
	}
	if filter.AthleteName != "" {
		query["athlete_name"] = filter.AthleteName
	}
	dateRange := bson.M{}
	if filter.DateFrom != "" {
		dateRange["$gte"] = filter.DateFrom
	}
	if filter.DateTo != "" {
		dateRange["$lte"] = filter.DateTo
	}
	if len(dateRange) > 0 {
		query["date"] = dateRange
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []sessionRow
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	sessions := make([]domain.TrainingSession, 0, len(rows))
	for _, row := range rows {
		if s := sessionToDomain(row); s != nil {
			sessions = append(sessions, *s)
		}
	}
	return sessions, nil
}

func (r *sessionRepo) Update(ctx context.Context, session *domain.TrainingSession) error {
	if session.ID == 0 {
		return errors.New("session ID is required for update")
	}
	session.UpdatedAt = time.Now().UTC()
	row := sessionToRow(session)

	update := bson.M{
		"$set": bson.M{
			"athlete_id":   row.AthleteID,
			"athlete_name": row.AthleteName,
			"date":         row.Date,
			"slot":         row.Slot,
			"effort":       row.Effort,
			"feeling":      row.Feeling,
			"performance":  row.Performance,
			"engagement":   row.Engagement,
			"fatigue":      row.Fatigue,
			"distance":     row.Distance,
			"duration":     row.Duration,
			"comments":     row.Comments,
			"updated_at":   row.UpdatedAt,
		},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": session.ID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *sessionRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
