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

type assignmentRepo struct {
	collection *mongo.Collection
}

func (r *assignmentRepo) Create(ctx context.Context, assignment *domain.Assignment) (int64, error) {
	if assignment.SessionID == 0 {
		return 0, errors.New("assignment session ID is required")
	}
	if assignment.UserID == nil && assignment.GroupID == nil {
		return 0, errors.New("assignment needs a user or group target")
	}
	if assignment.ID == 0 {
		assignment.ID = domain.NewID()
	}
	now := time.Now().UTC()
	assignment.CreatedAt = now
	assignment.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, assignmentToRow(assignment)); err != nil {
		return 0, err
	}
	return assignment.ID, nil
}

func (r *assignmentRepo) GetByID(ctx context.Context, id int64) (*domain.Assignment, error) {
	var row assignmentRow
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&row)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	assignment := assignmentToDomain(row)
	if assignment == nil {
		return nil, repository.ErrNotFound
	}
	return assignment, nil
}

func (r *assignmentRepo) ListForTarget(ctx context.Context, userID int64, groupIDs []int64) ([]domain.Assignment, error) {
	clauses := []bson.M{{"user_id": userID}}
	if len(groupIDs) > 0 {
		clauses = append(clauses, bson.M{"group_id": bson.M{"$in": groupIDs}})
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"$or": clauses}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []assignmentRow
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	assignments := make([]domain.Assignment, 0, len(rows))
	for _, row := range rows {
		if a := assignmentToDomain(row); a != nil {
			assignments = append(assignments, *a)
		}
	}
	return assignments, nil
}

func (r *assignmentRepo) Update(ctx context.Context, assignment *domain.Assignment) error {
	if assignment.ID == 0 {
		return errors.New("assignment ID is required for update")
	}
	assignment.UpdatedAt = time.Now().UTC()
	row := assignmentToRow(assignment)

	update := bson.M{
		"$set": bson.M{
			"session_id": row.SessionID,
			"kind":       row.Kind,
			"date":       row.Date,
			"slot":       row.Slot,
			"status":     row.Status,
			"updated_at": row.UpdatedAt,
		},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": assignment.ID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *assignmentRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// notificationRepo keeps targets in their own collection, one row per
// (notification, target) pair; deleting a notification removes its targets,
// but deleting an assignment never cascades here.
type notificationRepo struct {
	notifications *mongo.Collection
	targets       *mongo.Collection
}

func (r *notificationRepo) Create(ctx context.Context, notification *domain.Notification) (int64, error) {
	if notification.Title == "" {
		return 0, errors.New("notification title is required")
	}
	if notification.ID == 0 {
		notification.ID = domain.NewID()
	}
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now().UTC()
	}

	if _, err := r.notifications.InsertOne(ctx, notificationToRow(notification)); err != nil {
		return 0, err
	}
	if len(notification.Targets) > 0 {
		docs := make([]interface{}, 0, len(notification.Targets))
		for _, t := range notification.Targets {
			docs = append(docs, notificationTargetRow{
				ID:             domain.NewID(),
				NotificationID: notification.ID,
				UserID:         t.UserID,
				GroupID:        t.GroupID,
			})
		}
		if _, err := r.targets.InsertMany(ctx, docs); err != nil {
			return 0, err
		}
	}
	return notification.ID, nil
}

func (r *notificationRepo) ListForUser(ctx context.Context, userID int64, groupIDs []int64) ([]domain.Notification, error) {
	clauses := []bson.M{{"user_id": userID}}
	if len(groupIDs) > 0 {
		clauses = append(clauses, bson.M{"group_id": bson.M{"$in": groupIDs}})
	}
	cursor, err := r.targets.Find(ctx, bson.M{"$or": clauses})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var targetRows []notificationTargetRow
	if err = cursor.All(ctx, &targetRows); err != nil {
		return nil, err
	}
	if len(targetRows) == 0 {
		return []domain.Notification{}, nil
	}

	ids := make([]int64, 0, len(targetRows))
	targetsByNotif := make(map[int64][]notificationTargetRow, len(targetRows))
	for _, t := range targetRows {
		if _, seen := targetsByNotif[t.NotificationID]; !seen {
			ids = append(ids, t.NotificationID)
		}
		targetsByNotif[t.NotificationID] = append(targetsByNotif[t.NotificationID], t)
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	notifCursor, err := r.notifications.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, findOptions)
	if err != nil {
		return nil, err
	}
	defer notifCursor.Close(ctx)

	var rows []notificationRow
	if err = notifCursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	notifications := make([]domain.Notification, 0, len(rows))
	for _, row := range rows {
		if n := notificationToDomain(row, targetsByNotif[row.ID]); n != nil {
			notifications = append(notifications, *n)
		}
	}
	return notifications, nil
}

func (r *notificationRepo) MarkRead(ctx context.Context, id int64) error {
	result, err := r.notifications.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *notificationRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.notifications.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	_, err = r.targets.DeleteMany(ctx, bson.M{"notification_id": id})
	return err
}
