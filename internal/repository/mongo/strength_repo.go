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

// strengthSessionRepo stores templates and their items in two collections;
// items carry an explicit position index, the stored order is incidental.
type strengthSessionRepo struct {
	sessions *mongo.Collection
	items    *mongo.Collection
}

func (r *strengthSessionRepo) Create(ctx context.Context, session *domain.StrengthSession) (int64, error) {
	if session.Title == "" {
		return 0, errors.New("strength session title is required")
	}
	if session.ID == 0 {
		session.ID = domain.NewID()
	}
	now := time.Now().UTC()
	session.CreatedAt = now
	session.UpdatedAt = now

	if _, err := r.sessions.InsertOne(ctx, strengthSessionToRow(session)); err != nil {
		return 0, err
	}
	if err := r.insertItems(ctx, session); err != nil {
		return 0, err
	}
	return session.ID, nil
}

func (r *strengthSessionRepo) insertItems(ctx context.Context, session *domain.StrengthSession) error {
	if len(session.Items) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(session.Items))
	for i := range session.Items {
		if session.Items[i].ID == 0 {
			session.Items[i].ID = domain.NewID()
		}
		session.Items[i].SessionID = session.ID
		docs = append(docs, strengthItemToRow(session.Items[i]))
	}
	_, err := r.items.InsertMany(ctx, docs)
	return err
}

func (r *strengthSessionRepo) loadItems(ctx context.Context, sessionID int64) ([]strengthItemRow, error) {
	cursor, err := r.items.Find(ctx, bson.M{"session_id": sessionID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []strengthItemRow
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *strengthSessionRepo) GetByID(ctx context.Context, id int64) (*domain.StrengthSession, error) {
	var row strengthSessionRow
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
	session := strengthSessionToDomain(row, items)
	if session == nil {
		return nil, repository.ErrNotFound
	}
	return session, nil
}

func (r *strengthSessionRepo) List(ctx context.Context) ([]domain.StrengthSession, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.sessions.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []strengthSessionRow
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	sessions := make([]domain.StrengthSession, 0, len(rows))
	for _, row := range rows {
		items, err := r.loadItems(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		if s := strengthSessionToDomain(row, items); s != nil {
			sessions = append(sessions, *s)
		}
	}
	return sessions, nil
}

// Update rewrites the session row and replaces its whole item list: the
// item set is owned by the template, partial item edits go through here.
func (r *strengthSessionRepo) Update(ctx context.Context, session *domain.StrengthSession) error {
	if session.ID == 0 {
		return errors.New("strength session ID is required for update")
	}
	session.UpdatedAt = time.Now().UTC()
	row := strengthSessionToRow(session)

	update := bson.M{
		"$set": bson.M{
			"title":       row.Title,
			"description": row.Description,
			"cycle":       row.Cycle,
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

func (r *strengthSessionRepo) Delete(ctx context.Context, id int64) error {
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

func (r *strengthSessionRepo) RemoveExerciseItems(ctx context.Context, exerciseID int64) error {
	_, err := r.items.DeleteMany(ctx, bson.M{"exercise_id": exerciseID})
	return err
}

type runRepo struct {
	runs *mongo.Collection
	logs *mongo.Collection
}

func (r *runRepo) Create(ctx context.Context, run *domain.StrengthRun) (int64, error) {
	if run.AthleteID == 0 {
		return 0, errors.New("run athlete ID is required")
	}
	if run.ID == 0 {
		run.ID = domain.NewID()
	}
	now := time.Now().UTC()
	run.StartedAt = now
	run.UpdatedAt = now

	if _, err := r.runs.InsertOne(ctx, runToRow(run)); err != nil {
		return 0, err
	}
	return run.ID, nil
}

func (r *runRepo) loadLogs(ctx context.Context, runID int64) ([]setLogRow, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "logged_at", Value: 1}})
	cursor, err := r.logs.Find(ctx, bson.M{"run_id": runID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []setLogRow
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *runRepo) GetByID(ctx context.Context, id int64) (*domain.StrengthRun, error) {
	var row runRow
	err := r.runs.FindOne(ctx, bson.M{"_id": id}).Decode(&row)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	logs, err := r.loadLogs(ctx, id)
	if err != nil {
		return nil, err
	}
	run := runToDomain(row, logs)
	if run == nil {
		return nil, repository.ErrNotFound
	}
	return run, nil
}

func (r *runRepo) ListByAthlete(ctx context.Context, athleteID int64) ([]domain.StrengthRun, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "started_at", Value: -1}})
	cursor, err := r.runs.Find(ctx, bson.M{"athlete_id": athleteID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []runRow
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	runs := make([]domain.StrengthRun, 0, len(rows))
	for _, row := range rows {
		logs, err := r.loadLogs(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		if run := runToDomain(row, logs); run != nil {
			runs = append(runs, *run)
		}
	}
	return runs, nil
}

func (r *runRepo) Update(ctx context.Context, run *domain.StrengthRun) error {
	if run.ID == 0 {
		return errors.New("run ID is required for update")
	}
	run.UpdatedAt = time.Now().UTC()
	row := runToRow(run)

	update := bson.M{
		"$set": bson.M{
			"status":        row.Status,
			"progress":      row.Progress,
			"assignment_id": row.AssignmentID,
			"completed_at":  row.CompletedAt,
			"updated_at":    row.UpdatedAt,
		},
	}
	result, err := r.runs.UpdateOne(ctx, bson.M{"_id": run.ID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *runRepo) AppendLog(ctx context.Context, log *domain.SetLog) (int64, error) {
	if log.RunID == 0 {
		return 0, errors.New("set log run ID is required")
	}
	if log.ID == 0 {
		log.ID = domain.NewID()
	}
	if log.LoggedAt.IsZero() {
		log.LoggedAt = time.Now().UTC()
	}
	if _, err := r.logs.InsertOne(ctx, setLogToRow(*log)); err != nil {
		return 0, err
	}
	return log.ID, nil
}

func (r *runRepo) ReplaceLogs(ctx context.Context, runID int64, logs []domain.SetLog) error {
	if _, err := r.logs.DeleteMany(ctx, bson.M{"run_id": runID}); err != nil {
		return err
	}
	if len(logs) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(logs))
	now := time.Now().UTC()
	for i := range logs {
		if logs[i].ID == 0 {
			logs[i].ID = domain.NewID()
		}
		logs[i].RunID = runID
		if logs[i].LoggedAt.IsZero() {
			logs[i].LoggedAt = now
		}
		docs = append(docs, setLogToRow(logs[i]))
	}
	_, err := r.logs.InsertMany(ctx, docs)
	return err
}

func (r *runRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.runs.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	_, err = r.logs.DeleteMany(ctx, bson.M{"run_id": id})
	return err
}
