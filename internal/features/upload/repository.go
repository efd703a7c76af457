package upload

import (
	"context"

	"go-reporthub/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UploadRepository interface {
	Create(ctx context.Context, file *StoredFile) error
	FindByStoredName(ctx context.Context, storedName string) (*StoredFile, error)
}

type UploadRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewUploadRepository(mongodb *database.MongodbDB) UploadRepository {
	return &UploadRepositoryImpl{
		Collection: mongodb.DB.Collection("uploads"),
	}
}

func (r *UploadRepositoryImpl) Create(ctx context.Context, file *StoredFile) error {
	_, err := r.Collection.InsertOne(ctx, file)
	return err
}

func (r *UploadRepositoryImpl) FindByStoredName(ctx context.Context, storedName string) (*StoredFile, error) {
	var file StoredFile
	err := r.Collection.FindOne(ctx, bson.M{"stored_name": storedName}).Decode(&file)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &file, nil
}
