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

type oneRmRepo struct {
	collection *mongo.Collection
}

func (r *oneRmRepo) Get(ctx context.Context, athleteID, exerciseID int64) (*domain.OneRmRecord, error) {
	var row oneRmRow
	filter := bson.M{"athlete_id": athleteID, "exercise_id": exerciseID}
	err := r.collection.FindOne(ctx, filter).Decode(&row)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	record := oneRmToDomain(row)
	if record == nil {
		return nil, repository.ErrNotFound
	}
	return record, nil
}

func (r *oneRmRepo) ListByAthlete(ctx context.Context, athleteID int64) ([]domain.OneRmRecord, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"athlete_id": athleteID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []oneRmRow
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	records := make([]domain.OneRmRecord, 0, len(rows))
	for _, row := range rows {
		if rec := oneRmToDomain(row); rec != nil {
			records = append(records, *rec)
		}
	}
	return records, nil
}

// Upsert keys on the (athlete, exercise) natural pair. The monotonic
// strictly-greater rule is enforced in the service, not here: the repository
// writes whatever it is told.
func (r *oneRmRepo) Upsert(ctx context.Context, record *domain.OneRmRecord) error {
	if record.AthleteID == 0 || record.ExerciseID == 0 {
		return errors.New("one-rm record needs athlete and exercise IDs")
	}
	if record.RecordedAt.IsZero() {
		record.RecordedAt = time.Now().UTC()
	}
	filter := bson.M{"athlete_id": record.AthleteID, "exercise_id": record.ExerciseID}
	update := bson.M{
		"$set": bson.M{
			"max":         record.Max,
			"recorded_at": record.RecordedAt,
		},
		"$setOnInsert": bson.M{
			"_id":         domain.NewID(),
			"athlete_id":  record.AthleteID,
			"exercise_id": record.ExerciseID,
		},
	}
	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

type recordRepo struct {
	swim *mongo.Collection
	club *mongo.Collection
}

func (r *recordRepo) UpsertSwimRecord(ctx context.Context, record *domain.SwimRecord) error {
	if record.AthleteID == 0 || record.Event == "" {
		return errors.New("swim record needs athlete ID and event")
	}
	if record.RecordedAt.IsZero() {
		record.RecordedAt = time.Now().UTC()
	}
	filter := bson.M{
		"athlete_id": record.AthleteID,
		"event":      record.Event,
		"pool":       record.Pool,
	}
	update := bson.M{
		"$set": bson.M{
			"seconds":     record.Seconds,
			"recorded_at": record.RecordedAt,
		},
		"$setOnInsert": bson.M{
			"_id":        domain.NewID(),
			"athlete_id": record.AthleteID,
			"event":      record.Event,
			"pool":       record.Pool,
		},
	}
	_, err := r.swim.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *recordRepo) ListSwimRecords(ctx context.Context, athleteID int64) ([]domain.SwimRecord, error) {
	cursor, err := r.swim.Find(ctx, bson.M{"athlete_id": athleteID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []swimRecordRow
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	records := make([]domain.SwimRecord, 0, len(rows))
	for _, row := range rows {
		if rec := swimRecordToDomain(row); rec != nil {
			records = append(records, *rec)
		}
	}
	return records, nil
}

func (r *recordRepo) ListClubRecords(ctx context.Context) ([]domain.ClubRecord, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "event", Value: 1}})
	cursor, err := r.club.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []clubRecordRow
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	records := make([]domain.ClubRecord, 0, len(rows))
	for _, row := range rows {
		if rec := clubRecordToDomain(row); rec != nil {
			records = append(records, *rec)
		}
	}
	return records, nil
}

// ReplaceClubRecords swaps the whole table for the recalculation output.
func (r *recordRepo) ReplaceClubRecords(ctx context.Context, records []domain.ClubRecord) error {
	if _, err := r.club.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(records))
	for i := range records {
		if records[i].ID == 0 {
			records[i].ID = domain.NewID()
		}
		docs = append(docs, clubRecordToRow(&records[i]))
	}
	_, err := r.club.InsertMany(ctx, docs)
	return err
}
