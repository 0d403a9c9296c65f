package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"main/model"
	"main/utils"
)

type ChallengesRepo struct {
	MongoCollection *mongo.Collection
}

func GetChallengesRepo(client *mongo.Client) *ChallengesRepo {
	db := utils.GetEnvAsString("MONGO_DB", "challenges")
	return &ChallengesRepo{
		MongoCollection: client.Database(db).Collection("challenges"),
	}
}

// Find returns every challenge matching filter in sort order. Challenge
// listings are not paginated.
func (r *ChallengesRepo) Find(ctx context.Context, filter bson.M, sort bson.D) ([]*model.Challenge, error) {
	timer := utils.StartDBTimer("find", r.MongoCollection.Name())
	defer timer.ObserveDuration()

	cursor, err := r.MongoCollection.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	challenges := []*model.Challenge{}
	if err = cursor.All(ctx, &challenges); err != nil {
		return nil, err
	}
	return challenges, nil
}

// FindByID looks a challenge up by its logical id.
func (r *ChallengesRepo) FindByID(ctx context.Context, id string) (*model.Challenge, error) {
	timer := utils.StartDBTimer("find_one", r.MongoCollection.Name())
	defer timer.ObserveDuration()

	var challenge model.Challenge
	err := r.MongoCollection.FindOne(ctx, bson.M{"id": id}).Decode(&challenge)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &challenge, nil
}

// Insert stores a new challenge. A collision on the unique "id" index comes
// back as ErrDuplicateID.
func (r *ChallengesRepo) Insert(ctx context.Context, challenge *model.Challenge) error {
	timer := utils.StartDBTimer("insert", r.MongoCollection.Name())
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, challenge)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateID
	}
	return err
}

// Update applies the $set document to the challenge with the given id and
// returns the updated challenge.
func (r *ChallengesRepo) Update(ctx context.Context, id string, set bson.M) (*model.Challenge, error) {
	timer := utils.StartDBTimer("update", r.MongoCollection.Name())
	defer timer.ObserveDuration()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var challenge model.Challenge
	err := r.MongoCollection.FindOneAndUpdate(ctx,
		bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&challenge)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &challenge, nil
}

// Delete removes the challenge with the given id and returns it.
func (r *ChallengesRepo) Delete(ctx context.Context, id string) (*model.Challenge, error) {
	timer := utils.StartDBTimer("delete", r.MongoCollection.Name())
	defer timer.ObserveDuration()

	var challenge model.Challenge
	err := r.MongoCollection.FindOneAndDelete(ctx, bson.M{"id": id}).Decode(&challenge)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &challenge, nil
}
