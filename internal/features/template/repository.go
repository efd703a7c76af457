package template

import (
	"context"

	common_models "go-reporthub/internal/common/models"
	"go-reporthub/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type TemplateRepository interface {
	Create(ctx context.Context, tpl *Template) error
	FindByID(ctx context.Context, id string) (*Template, error)
	List(ctx context.Context, filter common_models.StateFilter) ([]Template, error)
	ListForLocation(ctx context.Context, location string) ([]Template, error)
	Update(ctx context.Context, id string, update bson.M) error
}

type TemplateRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewTemplateRepository(mongodb *database.MongodbDB) TemplateRepository {
	return &TemplateRepositoryImpl{
		Collection: mongodb.DB.Collection("templates"),
	}
}

func (r *TemplateRepositoryImpl) Create(ctx context.Context, tpl *Template) error {
	_, err := r.Collection.InsertOne(ctx, tpl)
	return err
}

func (r *TemplateRepositoryImpl) FindByID(ctx context.Context, id string) (*Template, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var tpl Template
	if err := r.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&tpl); err != nil {
		return nil, err
	}
	return &tpl, nil
}

func (r *TemplateRepositoryImpl) List(ctx context.Context, filter common_models.StateFilter) ([]Template, error) {
	query := bson.M{}
	if filter == common_models.ActiveOnly {
		query["state"] = common_models.StateActive
	}
	return r.find(ctx, query)
}

func (r *TemplateRepositoryImpl) ListForLocation(ctx context.Context, location string) ([]Template, error) {
	return r.find(ctx, bson.M{
		"state":              common_models.StateActive,
		"assigned_locations": bson.M{"$in": []string{location}},
	})
}

func (r *TemplateRepositoryImpl) find(ctx context.Context, query bson.M) ([]Template, error) {
	cursor, err := r.Collection.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var templates []Template
	if err := cursor.All(ctx, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *TemplateRepositoryImpl) Update(ctx context.Context, id string, update bson.M) error {
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
