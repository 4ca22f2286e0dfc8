package attachments

import (
	"context"
	"fmt"
	"time"

	DB "Backend-VendorRisk/src/database"
	"Backend-VendorRisk/src/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SaveAttachment records evidence-file metadata for a FILE question. The
// opaque storage path is generated here; the byte store behind it is a
// separate collaborator and never consulted by scoring.
func SaveAttachment(ctx context.Context, att *models.Attachment) (*models.Attachment, error) {
	if att.SurveyID.IsZero() {
		return nil, fmt.Errorf("survey ID is required")
	}
	if att.QuestionID.IsZero() {
		return nil, fmt.Errorf("question ID is required")
	}

	att.ID = primitive.NewObjectID()
	att.StoragePath = fmt.Sprintf("attachments/%s/%s-%s", att.SurveyID.Hex(), uuid.NewString(), att.FileName)
	att.CreatedAt = time.Now()

	if _, err := DB.AttachmentCollection.InsertOne(ctx, att); err != nil {
		return nil, err
	}
	return att, nil
}

// GetBySurvey lists all attachments of a survey.
func GetBySurvey(ctx context.Context, surveyID primitive.ObjectID) ([]models.Attachment, error) {
	cursor, err := DB.AttachmentCollection.Find(ctx, bson.M{"surveyId": surveyID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var attachments []models.Attachment
	if err := cursor.All(ctx, &attachments); err != nil {
		return nil, err
	}
	return attachments, nil
}

// PresenceByQuestion reports which questions of the survey have at least one
// attachment. Submit validation and FILE scoring key off existence, not off
// the value sent in a particular call.
func PresenceByQuestion(ctx context.Context, surveyID primitive.ObjectID) (map[primitive.ObjectID]bool, error) {
	attachments, err := GetBySurvey(ctx, surveyID)
	if err != nil {
		return nil, err
	}

	present := make(map[primitive.ObjectID]bool, len(attachments))
	for _, att := range attachments {
		present[att.QuestionID] = true
	}
	return present, nil
}

// DeleteAttachment removes one attachment's metadata.
func DeleteAttachment(ctx context.Context, id primitive.ObjectID) error {
	result, err := DB.AttachmentCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return &models.NotFoundError{Resource: "attachment", ID: id.Hex()}
	}
	return nil
}
