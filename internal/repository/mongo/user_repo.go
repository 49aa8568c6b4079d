package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"swimtrack/training-tracker/internal/domain"
	"swimtrack/training-tracker/internal/repository"
)

// userRepo joins users with the group_members collection so the domain
// entity always carries its group ids.
type userRepo struct {
	users   *mongo.Collection
	groups  *mongo.Collection
	members *mongo.Collection
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) (int64, error) {
	if user.Email == "" || user.Name == "" {
		return 0, errors.New("user name and email are required")
	}
	existing := r.users.FindOne(ctx, bson.M{"email": user.Email})
	if existing.Err() == nil {
		return 0, repository.RepositoryError("email already registered")
	}
	if !errors.Is(existing.Err(), mongo.ErrNoDocuments) {
		return 0, existing.Err()
	}

	if user.ID == 0 {
		user.ID = domain.NewID()
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := r.users.InsertOne(ctx, userToRow(user)); err != nil {
		return 0, err
	}
	for _, groupID := range user.GroupIDs {
		member := groupMemberRow{ID: domain.NewID(), GroupID: groupID, UserID: user.ID}
		if _, err := r.members.InsertOne(ctx, member); err != nil {
			return 0, err
		}
	}
	return user.ID, nil
}

func (r *userRepo) groupIDsFor(ctx context.Context, userID int64) ([]int64, error) {
	cursor, err := r.members.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []groupMemberRow
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.GroupID)
	}
	return ids, nil
}

func (r *userRepo) getOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var row userRow
	err := r.users.FindOne(ctx, filter).Decode(&row)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	groupIDs, err := r.groupIDsFor(ctx, row.ID)
	if err != nil {
		return nil, err
	}
	user := userToDomain(row, groupIDs)
	if user == nil {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, bson.M{"email": email})
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, bson.M{"_id": id})
}

func (r *userRepo) List(ctx context.Context) ([]domain.User, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.users.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []userRow
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	// One pass over the membership collection instead of a query per user.
	memberCursor, err := r.members.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer memberCursor.Close(ctx)

	var memberRows []groupMemberRow
	if err = memberCursor.All(ctx, &memberRows); err != nil {
		return nil, err
	}
	groupsByUser := make(map[int64][]int64, len(memberRows))
	for _, m := range memberRows {
		groupsByUser[m.UserID] = append(groupsByUser[m.UserID], m.GroupID)
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		if u := userToDomain(row, groupsByUser[row.ID]); u != nil {
			users = append(users, *u)
		}
	}
	return users, nil
}

func (r *userRepo) ListGroups(ctx context.Context) ([]domain.Group, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.groups.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []groupRow
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	groups := make([]domain.Group, 0, len(rows))
	for _, row := range rows {
		groups = append(groups, domain.Group{ID: row.ID, Name: row.Name, CreatedAt: row.CreatedAt})
	}
	return groups, nil
}

func (r *userRepo) GroupMembers(ctx context.Context, groupID int64) ([]domain.User, error) {
	cursor, err := r.members.Find(ctx, bson.M{"group_id": groupID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var memberRows []groupMemberRow
	if err = cursor.All(ctx, &memberRows); err != nil {
		return nil, err
	}
	if len(memberRows) == 0 {
		return []domain.User{}, nil
	}

	ids := make([]int64, 0, len(memberRows))
	for _, m := range memberRows {
		ids = append(ids, m.UserID)
	}

	userCursor, err := r.users.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer userCursor.Close(ctx)

	var rows []userRow
	if err = userCursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		if u := userToDomain(row, []int64{groupID}); u != nil {
			users = append(users, *u)
		}
	}
	return users, nil
}

func (r *userRepo) BirthdaysOn(ctx context.Context, monthDay string) ([]domain.User, error) {
	// Birthday is an ISO date string; match on the "MM-DD" suffix.
	filter := bson.M{"birthday": bson.M{"$regex": primitive.Regex{Pattern: "-" + monthDay + "$"}}}
	cursor, err := r.users.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []userRow
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		groupIDs, err := r.groupIDsFor(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		if u := userToDomain(row, groupIDs); u != nil {
			users = append(users, *u)
		}
	}
	return users, nil
}
