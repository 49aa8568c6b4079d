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

type timesheetRepo struct {
	shifts    *mongo.Collection
	locations *mongo.Collection
}

func (r *timesheetRepo) CreateShift(ctx context.Context, shift *domain.TimesheetShift) (int64, error) {
	if shift.CoachID == 0 || shift.Date == "" {
		return 0, errors.New("shift coach ID and date are required")
	}
	if shift.ID == 0 {
		shift.ID = domain.NewID()
	}
	now := time.Now().UTC()
	shift.CreatedAt = now
	shift.UpdatedAt = now

	if _, err := r.shifts.InsertOne(ctx, shiftToRow(shift)); err != nil {
		return 0, err
	}
	return shift.ID, nil
}

func (r *timesheetRepo) ListShifts(ctx context.Context, coachID int64) ([]domain.TimesheetShift, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.shifts.Find(ctx, bson.M{"coach_id": coachID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []shiftRow
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	shifts := make([]domain.TimesheetShift, 0, len(rows))
	for _, row := range rows {
		if s := shiftToDomain(row); s != nil {
			shifts = append(shifts, *s)
		}
	}
	return shifts, nil
}

func (r *timesheetRepo) UpdateShift(ctx context.Context, shift *domain.TimesheetShift) error {
	if shift.ID == 0 {
		return errors.New("shift ID is required for update")
	}
	shift.UpdatedAt = time.Now().UTC()
	row := shiftToRow(shift)

	update := bson.M{
		"$set": bson.M{
			"location_id": row.LocationID,
			"date":        row.Date,
			"start_min":   row.StartMin,
			"end_min":     row.EndMin,
			"notes":       row.Notes,
			"updated_at":  row.UpdatedAt,
		},
	}
	result, err := r.shifts.UpdateOne(ctx, bson.M{"_id": shift.ID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *timesheetRepo) DeleteShift(ctx context.Context, id int64) error {
	result, err := r.shifts.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *timesheetRepo) CreateLocation(ctx context.Context, location *domain.TimesheetLocation) (int64, error) {
	if location.Name == "" {
		return 0, errors.New("location name is required")
	}
	if location.ID == 0 {
		location.ID = domain.NewID()
	}
	location.CreatedAt = time.Now().UTC()

	row := locationRow{ID: location.ID, Name: location.Name, CreatedAt: location.CreatedAt}
	if _, err := r.locations.InsertOne(ctx, row); err != nil {
		return 0, err
	}
	return location.ID, nil
}

func (r *timesheetRepo) ListLocations(ctx context.Context) ([]domain.TimesheetLocation, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.locations.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []locationRow
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	locations := make([]domain.TimesheetLocation, 0, len(rows))
	for _, row := range rows {
		locations = append(locations, domain.TimesheetLocation{ID: row.ID, Name: row.Name, CreatedAt: row.CreatedAt})
	}
	return locations, nil
}
