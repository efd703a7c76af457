package upload

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxFileSize caps a single upload at 10MB.
const MaxFileSize = 10 << 20

// StoredFile records one uploaded attachment. StoredName is the opaque
// on-disk name submissions reference in their attachment lists.
type StoredFile struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StoredName   string             `bson:"stored_name" json:"stored_name"`
	OriginalName string             `bson:"original_name" json:"original_name"`
	ContentType  string             `bson:"content_type" json:"content_type"`
	Size         int64              `bson:"size" json:"size"`
	UploadedBy   string             `bson:"uploaded_by" json:"uploaded_by"`
	UploadedAt   time.Time          `bson:"uploaded_at" json:"uploaded_at"`
}

// allowedContentTypes is the upload allow-list. Anything else is
// rejected before touching disk.
var allowedContentTypes = map[string]bool{
	"application/pdf":          true,
	"image/jpeg":               true,
	"image/png":                true,
	"image/gif":                true,
	"text/plain":               true,
	"text/csv":                 true,
	"application/msword":       true,
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":       true,
}

func AllowedContentType(contentType string) bool {
	return allowedContentTypes[contentType]
}
