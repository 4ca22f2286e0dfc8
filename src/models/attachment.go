package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Attachment is the metadata of one uploaded evidence file for a FILE
// question. The bytes live behind the opaque StoragePath; this subsystem only
// cares whether at least one attachment exists for a (survey, question) pair.
type Attachment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	SurveyID    primitive.ObjectID `bson:"surveyId" json:"surveyId"`
	QuestionID  primitive.ObjectID `bson:"questionId" json:"questionId"`
	FileName    string             `bson:"fileName" json:"fileName"`
	ContentType string             `bson:"contentType,omitempty" json:"contentType,omitempty"`
	SizeBytes   int64              `bson:"sizeBytes,omitempty" json:"sizeBytes,omitempty"`
	StoragePath string             `bson:"storagePath" json:"storagePath"`
	UploadedBy  string             `bson:"uploadedBy,omitempty" json:"uploadedBy,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
}
