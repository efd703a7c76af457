package submission

import (
	"context"

	"go-reporthub/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SubmissionRepository interface {
	Create(ctx context.Context, sub *Submission) error
	FindByID(ctx context.Context, id string) (*Submission, error)
	List(ctx context.Context, filter ListFilter) ([]Submission, error)
	Update(ctx context.Context, id string, update bson.M) error
	Delete(ctx context.Context, id string) error
}

type SubmissionRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewSubmissionRepository(mongodb *database.MongodbDB) SubmissionRepository {
	return &SubmissionRepositoryImpl{
		Collection: mongodb.DB.Collection("submissions"),
	}
}

func (r *SubmissionRepositoryImpl) Create(ctx context.Context, sub *Submission) error {
	_, err := r.Collection.InsertOne(ctx, sub)
	return err
}

func (r *SubmissionRepositoryImpl) FindByID(ctx context.Context, id string) (*Submission, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var sub Submission
	if err := r.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *SubmissionRepositoryImpl) List(ctx context.Context, filter ListFilter) ([]Submission, error) {
	query := bson.M{}
	if filter.Location != "" {
		query["service_location"] = filter.Location
	}
	if filter.MonthYear != "" {
		query["month_year"] = filter.MonthYear
	}
	if filter.TemplateID != "" {
		query["template_id"] = filter.TemplateID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.UserID != "" {
		query["submitted_by"] = filter.UserID
	}

	opts := options.Find().SetSort(bson.M{"submitted_at": -1})
	cursor, err := r.Collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var subs []Submission
	if err := cursor.All(ctx, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *SubmissionRepositoryImpl) Update(ctx context.Context, id string, update bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	res, err := r.Collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *SubmissionRepositoryImpl) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	res, err := r.Collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
