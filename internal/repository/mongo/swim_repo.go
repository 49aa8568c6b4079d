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

type swimSessionRepo struct {
	sessions *mongo.Collection
	items    *mongo.Collection
}

func (r *swimSessionRepo) Create(ctx context.Context, session *domain.SwimSession) (int64, error) {
	if session.Name == "" {
		return 0, errors.New("swim session name is required")
	}
	if session.ID == 0 {
		session.ID = domain.NewID()
	}
	now := time.Now().UTC()
	session.CreatedAt = now
	session.UpdatedAt = now

	if _, err := r.sessions.InsertOne(ctx, swimSessionToRow(session)); err != nil {
		return 0, err
	}
	if err := r.insertItems(ctx, session); err != nil {
		return 0, err
	}
	return session.ID, nil
}

func (r *swimSessionRepo) insertItems(ctx context.Context, session *domain.SwimSession) error {
	if len(session.Items) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(session.Items))
	for i := range session.Items {
		if session.Items[i].ID == 0 {
			session.Items[i].ID = domain.NewID()
		}
		session.Items[i].SessionID = session.ID
		docs = append(docs, swimItemToRow(session.Items[i]))
	}
	_, err := r.items.InsertMany(ctx, docs)
	return err
}

func (r *swimSessionRepo) loadItems(ctx context.Context, sessionID int64) ([]swimItemRow, error) {
	cursor, err := r.items.Find(ctx, bson.M{"session_id": sessionID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []swimItemRow
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *swimSessionRepo) GetByID(ctx context.Context, id int64) (*domain.SwimSession, error) {
	var row swimSessionRow
	err := r.sessions.FindOne(ctx, bson.M{"_id": id}).Decode(&row)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	items, err := r.loadItems(ctx, id)
	if err != nil {
		return nil, err
	}
	session := swimSessionToDomain(row, items)
	if session == nil {
		return nil, repository.ErrNotFound
	}
	return session, nil
}

func (r *swimSessionRepo) List(ctx context.Context, includeArchived bool) ([]domain.SwimSession, error) {
	query := bson.M{}
	if !includeArchived {
		query["archived"] = false
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.sessions.Find(ctx, query, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []swimSessionRow
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	sessions := make([]domain.SwimSession, 0, len(rows))
	for _, row := range rows {
		items, err := r.loadItems(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		if s := swimSessionToDomain(row, items); s != nil {
			sessions = append(sessions, *s)
		}
	}
	return sessions, nil
}

func (r *swimSessionRepo) Update(ctx context.Context, session *domain.SwimSession) error {
	if session.ID == 0 {
		return errors.New("swim session ID is required for update")
	}
	session.UpdatedAt = time.Now().UTC()
	row := swimSessionToRow(session)

	update := bson.M{
		"$set": bson.M{
			"name":        row.Name,
			"description": row.Description,
			"created_by":  row.CreatedBy,
			"folder":      row.Folder,
			"archived":    row.Archived,
			"updated_at":  row.UpdatedAt,
		},
	}
	result, err := r.sessions.UpdateOne(ctx, bson.M{"_id": session.ID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}

	if _, err := r.items.DeleteMany(ctx, bson.M{"session_id": session.ID}); err != nil {
		return err
	}
	return r.insertItems(ctx, session)
}

func (r *swimSessionRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.sessions.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	_, err = r.items.DeleteMany(ctx, bson.M{"session_id": id})
	return err
}
