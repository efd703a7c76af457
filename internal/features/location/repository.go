package location

import (
	"context"

	common_models "go-reporthub/internal/common/models"
	"go-reporthub/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type LocationRepository interface {
	Create(ctx context.Context, loc *Location) error
	FindByID(ctx context.Context, id string) (*Location, error)
	FindByName(ctx context.Context, name string) (*Location, error)
	List(ctx context.Context, filter common_models.StateFilter) ([]Location, error)
	Update(ctx context.Context, id string, update bson.M) error
}

type LocationRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewLocationRepository(mongodb *database.MongodbDB) LocationRepository {
	return &LocationRepositoryImpl{
		Collection: mongodb.DB.Collection("locations"),
	}
}

func (r *LocationRepositoryImpl) Create(ctx context.Context, loc *Location) error {
	_, err := r.Collection.InsertOne(ctx, loc)
	return err
}

func (r *LocationRepositoryImpl) FindByID(ctx context.Context, id string) (*Location, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var loc Location
	if err := r.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&loc); err != nil {
		return nil, err
	}
	return &loc, nil
}

func (r *LocationRepositoryImpl) FindByName(ctx context.Context, name string) (*Location, error) {
	var loc Location
	err := r.Collection.FindOne(ctx, bson.M{"name": name}).Decode(&loc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &loc, nil
}

func (r *LocationRepositoryImpl) List(ctx context.Context, filter common_models.StateFilter) ([]Location, error) {
	query := bson.M{}
	if filter == common_models.ActiveOnly {
		query["state"] = common_models.StateActive
	}

	cursor, err := r.Collection.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var locations []Location
	if err := cursor.All(ctx, &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *LocationRepositoryImpl) Update(ctx context.Context, id string, update bson.M) error {
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
