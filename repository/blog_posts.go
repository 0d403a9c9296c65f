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

type BlogPostsRepo struct {
	MongoCollection *mongo.Collection
}

func GetBlogPostsRepo(client *mongo.Client) *BlogPostsRepo {
	db := utils.GetEnvAsString("MONGO_DB", "challenges")
	return &BlogPostsRepo{
		MongoCollection: client.Database(db).Collection("blogposts"),
	}
}

// Find returns the posts matching filter, sorted and sliced to the page
// window. A limit of 0 returns everything.
func (r *BlogPostsRepo) Find(ctx context.Context, filter bson.M, sort bson.D, skip, limit int64) ([]*model.BlogPost, error) {
	timer := utils.StartDBTimer("find", r.MongoCollection.Name())
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(sort).SetSkip(skip)
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.MongoCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := []*model.BlogPost{}
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// Count returns the total number of posts matching filter, ignoring
// pagination.
func (r *BlogPostsRepo) Count(ctx context.Context, filter bson.M) (int64, error) {
	timer := utils.StartDBTimer("count", r.MongoCollection.Name())
	defer timer.ObserveDuration()

	return r.MongoCollection.CountDocuments(ctx, filter)
}

// FindByID looks a post up by its logical id.
func (r *BlogPostsRepo) FindByID(ctx context.Context, id string) (*model.BlogPost, error) {
	timer := utils.StartDBTimer("find_one", r.MongoCollection.Name())
	defer timer.ObserveDuration()

	var post model.BlogPost
	err := r.MongoCollection.FindOne(ctx, bson.M{"id": id}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// Insert stores a new post. A collision on the unique "id" index comes back
// as ErrDuplicateID.
func (r *BlogPostsRepo) Insert(ctx context.Context, post *model.BlogPost) error {
	timer := utils.StartDBTimer("insert", r.MongoCollection.Name())
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, post)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateID
	}
	return err
}

// Update applies the $set document to the post with the given id and returns
// the updated post.
func (r *BlogPostsRepo) Update(ctx context.Context, id string, set bson.M) (*model.BlogPost, error) {
	timer := utils.StartDBTimer("update", r.MongoCollection.Name())
	defer timer.ObserveDuration()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var post model.BlogPost
	err := r.MongoCollection.FindOneAndUpdate(ctx,
		bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// Delete removes the post with the given id and returns it.
func (r *BlogPostsRepo) Delete(ctx context.Context, id string) (*model.BlogPost, error) {
	timer := utils.StartDBTimer("delete", r.MongoCollection.Name())
	defer timer.ObserveDuration()

	var post model.BlogPost
	err := r.MongoCollection.FindOneAndDelete(ctx, bson.M{"id": id}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}
