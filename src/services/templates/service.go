package templates

import (
	"context"
	"fmt"
	"time"

	DB "Backend-VendorRisk/src/database"
	"Backend-VendorRisk/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateTemplate creates a new template with its question set. Questions are
// immutable per template once surveys reference it.
func CreateTemplate(ctx context.Context, req *models.CreateTemplateRequest) (*models.TemplateWithQuestions, error) {
	now := time.Now()

	template := &models.Template{
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	result, err := DB.TemplateCollection.InsertOne(ctx, template)
	if err != nil {
		return nil, err
	}
	template.ID = result.InsertedID.(primitive.ObjectID)

	questions := make([]interface{}, 0, len(req.Questions))
	created := make([]models.Question, 0, len(req.Questions))
	for i, question := range req.Questions {
		question.ID = primitive.NewObjectID()
		question.TemplateID = template.ID
		question.Order = i + 1

		if err := ValidateQuestion(&question); err != nil {
			return nil, err
		}

		questions = append(questions, question)
		created = append(created, question)
	}

	if len(questions) > 0 {
		if _, err := DB.QuestionCollection.InsertMany(ctx, questions); err != nil {
			return nil, err
		}
	}

	return &models.TemplateWithQuestions{
		Template:  *template,
		Questions: created,
	}, nil
}

// GetTemplateByID retrieves a template with its ordered questions
func GetTemplateByID(ctx context.Context, templateID primitive.ObjectID) (*models.TemplateWithQuestions, error) {
	var template models.Template
	err := DB.TemplateCollection.FindOne(ctx, bson.M{"_id": templateID}).Decode(&template)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &models.NotFoundError{Resource: "template", ID: templateID.Hex()}
		}
		return nil, err
	}

	questions, err := GetTemplateQuestions(ctx, templateID)
	if err != nil {
		return nil, err
	}

	return &models.TemplateWithQuestions{
		Template:  template,
		Questions: questions,
	}, nil
}

// GetTemplates retrieves all templates with pagination
func GetTemplates(ctx context.Context, params models.PaginationParams) (*models.PaginatedResponse, error) {
	filter := bson.M{}
	if params.Search != "" {
		filter["name"] = bson.M{"$regex": params.Search, "$options": "i"}
	}

	total, err := DB.TemplateCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(params.GetSortOrder())

	cursor, err := DB.TemplateCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var templates []models.Template
	if err := cursor.All(ctx, &templates); err != nil {
		return nil, err
	}

	return models.NewPaginatedResponse(templates, total, params), nil
}

// GetTemplateQuestions returns the template's questions sorted by order.
// This is the read contract the survey lifecycle consumes.
func GetTemplateQuestions(ctx context.Context, templateID primitive.ObjectID) ([]models.Question, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cursor, err := DB.QuestionCollection.Find(ctx, bson.M{"templateId": templateID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questions []models.Question
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// ValidateQuestion checks the shape of a question definition against its type.
func ValidateQuestion(question *models.Question) error {
	if !question.Type.IsValid() {
		return fmt.Errorf("unknown question type: %s", question.Type)
	}
	if question.RiskWeight < 0 {
		return fmt.Errorf("risk weight must be non-negative")
	}

	switch question.Type {
	case models.QuestionSingleChoice, models.QuestionMultipleChoice:
		if len(question.Options) == 0 {
			return fmt.Errorf("options are required for choice questions")
		}
		for _, opt := range question.Options {
			if opt.Score != nil && (*opt.Score < 0 || *opt.Score > 100) {
				return fmt.Errorf("option score must be within 0-100")
			}
		}
	case models.QuestionBoolean:
		if question.IsScorable() && !question.RiskImpact.IsValid() {
			return fmt.Errorf("risk impact is required for scorable boolean questions")
		}
	}

	if question.RiskImpact != "" && !question.RiskImpact.IsValid() {
		return fmt.Errorf("unknown risk impact: %s", question.RiskImpact)
	}
	return nil
}
