package surveys

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	DB "Backend-VendorRisk/src/database"
	"Backend-VendorRisk/src/models"
	"Backend-VendorRisk/src/services/attachments"
	"Backend-VendorRisk/src/services/notifications"
	"Backend-VendorRisk/src/services/ratings"
	"Backend-VendorRisk/src/services/scoring"
	"Backend-VendorRisk/src/services/templates"
	"Backend-VendorRisk/src/services/vendors"
	"Backend-VendorRisk/src/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrLinkExpired is returned when a respondent opens a survey link past its
// expiration date. Expiration never changes the survey status.
var ErrLinkExpired = errors.New("survey link has expired")

const defaultLinkTTL = 30 * 24 * time.Hour

// CreateSurvey dispatches a template to a vendor. The survey starts in DRAFT,
// or in SENT when sendNow is set, and carries a fresh respondent link token.
func CreateSurvey(ctx context.Context, req *models.CreateSurveyRequest) (*models.Survey, error) {
	if _, err := templates.GetTemplateByID(ctx, req.TemplateID); err != nil {
		return nil, err
	}
	vendor, err := vendors.GetVendorByID(ctx, req.VendorID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	survey := &models.Survey{
		ID:             primitive.NewObjectID(),
		TemplateID:     req.TemplateID,
		VendorID:       req.VendorID,
		Status:         models.SurveyDraft,
		LinkToken:      uuid.NewString(),
		DueDate:        req.DueDate,
		ExpirationDate: req.ExpirationDate,
		Version:        1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if req.SendNow {
		survey.Status = models.SurveySent
	}

	if _, err := DB.SurveyCollection.InsertOne(ctx, survey); err != nil {
		return nil, err
	}

	ttl := defaultLinkTTL
	if survey.ExpirationDate != nil {
		ttl = time.Until(*survey.ExpirationDate)
	}
	if ttl > 0 {
		if err := utils.CacheLinkToken(survey.LinkToken, survey.ID.Hex(), ttl); err != nil {
			log.Println("[surveys] cache link token:", err)
		}
	}

	if survey.Status == models.SurveySent {
		notifications.Dispatch(models.NotifySurveySent, map[string]string{
			"surveyId":   survey.ID.Hex(),
			"vendorName": vendor.Name,
			"link":       respondentLink(survey.LinkToken),
		}, vendor.ContactMail)
	}

	log.Printf("[surveys] created survey=%s vendor=%s status=%s", survey.ID.Hex(), vendor.ID.Hex(), survey.Status)
	return survey, nil
}

// GetSurveyByID retrieves a survey by its ID
func GetSurveyByID(ctx context.Context, id primitive.ObjectID) (*models.Survey, error) {
	var survey models.Survey
	err := DB.SurveyCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&survey)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &models.NotFoundError{Resource: "survey", ID: id.Hex()}
		}
		return nil, err
	}
	return &survey, nil
}

// GetSurveyByLinkToken resolves a respondent link. The Redis cache is
// consulted first; Mongo is the fallback. An expired link is rejected here,
// at read time.
func GetSurveyByLinkToken(ctx context.Context, token string) (*models.Survey, error) {
	filter := bson.M{"linkToken": token}
	if cached, err := utils.LookupLinkToken(token); err == nil && cached != "" {
		if id, convErr := primitive.ObjectIDFromHex(cached); convErr == nil {
			filter = bson.M{"_id": id}
		}
	}

	var survey models.Survey
	err := DB.SurveyCollection.FindOne(ctx, filter).Decode(&survey)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &models.NotFoundError{Resource: "survey", ID: token}
		}
		return nil, err
	}

	if survey.IsLinkExpired(time.Now()) {
		return nil, ErrLinkExpired
	}
	return &survey, nil
}

// GetSurveysByVendor lists all surveys of one vendor, newest first.
func GetSurveysByVendor(ctx context.Context, vendorID primitive.ObjectID) ([]models.Survey, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := DB.SurveyCollection.Find(ctx, bson.M{"vendorId": vendorID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var surveys []models.Survey
	if err := cursor.All(ctx, &surveys); err != nil {
		return nil, err
	}
	return surveys, nil
}

// Save upserts the provided answers without submitting. A DRAFT or SENT
// survey moves to IN_PROGRESS on its first save; no scoring happens here.
func Save(ctx context.Context, surveyID primitive.ObjectID, inputs []models.AnswerInput) (models.SurveyStatus, error) {
	result, err := DB.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		survey, err := GetSurveyByID(sessCtx, surveyID)
		if err != nil {
			return nil, err
		}
		prevStatus, prevVersion := survey.Status, survey.Version
		if err := survey.MarkInProgress(time.Now()); err != nil {
			return nil, err
		}

		questionMap, err := questionMapForTemplate(sessCtx, survey.TemplateID)
		if err != nil {
			return nil, err
		}
		if err := validateInputs(inputs, questionMap); err != nil {
			return nil, err
		}
		if err := upsertAnswers(sessCtx, surveyID, inputs); err != nil {
			return nil, err
		}

		if survey.Status != prevStatus {
			if err := persistSurvey(sessCtx, survey, prevStatus, prevVersion); err != nil {
				return nil, err
			}
		}

		return survey.Status, nil
	})
	if err != nil {
		return "", err
	}

	status := result.(models.SurveyStatus)
	log.Printf("[surveys] saved %d answers survey=%s status=%s", len(inputs), surveyID.Hex(), status)
	return status, nil
}

// Submit upserts the provided answers and finalizes the response. Every
// required question must be answered, or a ValidationError lists the missing
// ones and nothing is written. A template with manually-scored questions
// parks the survey in PENDING_SCORING; otherwise it completes and is scored
// immediately, followed by the vendor aggregate.
func Submit(ctx context.Context, surveyID primitive.ObjectID, inputs []models.AnswerInput) (models.SurveyStatus, bool, error) {
	type submitOutcome struct {
		status          models.SurveyStatus
		requiresScoring bool
		linkToken       string
	}

	result, err := DB.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		survey, err := GetSurveyByID(sessCtx, surveyID)
		if err != nil {
			return nil, err
		}
		prevStatus, prevVersion := survey.Status, survey.Version
		if !survey.CanSubmit() {
			return nil, &models.InvalidStateError{Status: survey.Status, Action: "submit"}
		}

		questions, err := templates.GetTemplateQuestions(sessCtx, survey.TemplateID)
		if err != nil {
			return nil, err
		}
		questionMap := indexQuestions(questions)
		if err := validateInputs(inputs, questionMap); err != nil {
			return nil, err
		}

		// Validate the merged answer view before any write so a failed
		// submit leaves answers and status untouched.
		existing, err := getAnswerMap(sessCtx, surveyID)
		if err != nil {
			return nil, err
		}
		present, err := attachments.PresenceByQuestion(sessCtx, surveyID)
		if err != nil {
			return nil, err
		}
		merged := overlayInputs(existing, inputs, surveyID)
		if missing := MissingRequired(questions, merged, present); len(missing) > 0 {
			return nil, &models.ValidationError{MissingQuestionIDs: missing}
		}

		if err := upsertAnswers(sessCtx, surveyID, inputs); err != nil {
			return nil, err
		}

		outcome := submitOutcome{linkToken: survey.LinkToken}
		now := time.Now()
		requiresScoring := scoring.RequiresManualScoring(questions)
		if err := survey.MarkSubmitted(requiresScoring, now); err != nil {
			return nil, err
		}

		if requiresScoring {
			outcome.status = survey.Status
			outcome.requiresScoring = true
			if err := persistSurvey(sessCtx, survey, prevStatus, prevVersion); err != nil {
				return nil, err
			}
			return outcome, nil
		}

		// No manual scoring needed: complete and score in the same unit.
		scoreResult, rating, err := computeScore(sessCtx, survey, questions)
		if err != nil {
			return nil, err
		}
		survey.SetRiskScore(scoreResult.Score, rating, now)
		outcome.status = survey.Status
		if err := persistSurvey(sessCtx, survey, prevStatus, prevVersion); err != nil {
			return nil, err
		}
		if _, _, err := vendors.RecalculateVendor(sessCtx, survey.VendorID); err != nil {
			return nil, err
		}
		return outcome, nil
	})
	if err != nil {
		return "", false, err
	}

	outcome := result.(submitOutcome)
	notifications.Dispatch(models.NotifySurveySubmitted, map[string]string{"surveyId": surveyID.Hex()}, "")

	templateKey := models.NotifyAssessmentCompleted
	if outcome.requiresScoring {
		templateKey = models.NotifyScoringPending
	} else if err := utils.DropLinkToken(outcome.linkToken); err != nil {
		log.Println("[surveys] drop link token:", err)
	}
	notifications.Dispatch(templateKey, map[string]string{"surveyId": surveyID.Hex()}, "")

	log.Printf("[surveys] submitted survey=%s status=%s manualScoring=%t", surveyID.Hex(), outcome.status, outcome.requiresScoring)
	return outcome.status, outcome.requiresScoring, nil
}

// RecordManualScores stores reviewer judgments on TEXT / LONG_TEXT answers.
// Legal while the survey is PENDING_SCORING, or COMPLETED for corrections
// (followed by Recalculate). Status never changes here, and a bad entry
// rejects the whole batch before anything is written.
func RecordManualScores(ctx context.Context, surveyID primitive.ObjectID, inputs []models.ManualScoreInput, scoredBy string) (int, error) {
	survey, err := GetSurveyByID(ctx, surveyID)
	if err != nil {
		return 0, err
	}
	if !survey.CanScore() {
		return 0, &models.InvalidStateError{Status: survey.Status, Action: "record manual scores on"}
	}

	questionMap, err := questionMapForTemplate(ctx, survey.TemplateID)
	if err != nil {
		return 0, err
	}
	answers, err := getAnswerMap(ctx, surveyID)
	if err != nil {
		return 0, err
	}

	scored, err := applyManualScores(inputs, questionMap, answers, scoredBy, time.Now())
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, answer := range scored {
		_, err := DB.AnswerCollection.UpdateOne(ctx,
			bson.M{"surveyId": surveyID, "questionId": answer.QuestionID},
			bson.M{"$set": bson.M{
				"manualScore": answer.ManualScore,
				"scoredBy":    answer.ScoredBy,
				"scoredAt":    answer.ScoredAt,
				"updatedAt":   answer.UpdatedAt,
			}},
		)
		if err != nil {
			return updated, err
		}
		updated++
	}

	log.Printf("[surveys] recorded %d manual scores survey=%s by=%s", updated, surveyID.Hex(), scoredBy)
	return updated, nil
}

// applyManualScores validates the whole batch against the template and the
// stored answers, then stamps the judgments in memory. The caller persists
// the returned answers only when every entry passed.
func applyManualScores(inputs []models.ManualScoreInput, questionMap map[primitive.ObjectID]*models.Question, answers map[primitive.ObjectID]*models.Answer, scoredBy string, now time.Time) ([]*models.Answer, error) {
	scored := make([]*models.Answer, 0, len(inputs))
	for _, input := range inputs {
		question, ok := questionMap[input.QuestionID]
		if !ok {
			return nil, &models.NotFoundError{Resource: "question", ID: input.QuestionID.Hex()}
		}
		if !question.IsManuallyScored() {
			return nil, &models.ValidationError{
				Message: fmt.Sprintf("question %s is auto-scored and cannot receive a manual score", input.QuestionID.Hex()),
			}
		}
		answer, ok := answers[input.QuestionID]
		if !ok {
			return nil, &models.NotFoundError{Resource: "answer", ID: input.QuestionID.Hex()}
		}
		if err := answer.SetManualScore(input.Score, scoredBy, now); err != nil {
			return nil, &models.ValidationError{
				Message: fmt.Sprintf("question %s: %v", input.QuestionID.Hex(), err),
			}
		}
		scored = append(scored, answer)
	}
	return scored, nil
}

// CompleteAssessment closes a PENDING_SCORING survey: every answered
// manually-scored question must carry a judgment, then the aggregate is
// computed, persisted and rolled up into the vendor score, all in one unit.
func CompleteAssessment(ctx context.Context, surveyID primitive.ObjectID) (int, string, error) {
	type completion struct {
		score     int
		rating    string
		linkToken string
	}

	result, err := DB.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		survey, err := GetSurveyByID(sessCtx, surveyID)
		if err != nil {
			return nil, err
		}
		prevStatus, prevVersion := survey.Status, survey.Version
		if !survey.CanComplete() {
			return nil, &models.InvalidStateError{Status: survey.Status, Action: "complete"}
		}

		questions, err := templates.GetTemplateQuestions(sessCtx, survey.TemplateID)
		if err != nil {
			return nil, err
		}
		answers, err := getAnswerMap(sessCtx, surveyID)
		if err != nil {
			return nil, err
		}
		if missing := MissingManualScores(questions, answers); len(missing) > 0 {
			return nil, &models.ValidationError{
				Message:            "manual scores missing for questions: " + strings.Join(missing, ", "),
				MissingQuestionIDs: missing,
			}
		}

		now := time.Now()
		scoreResult, rating, err := computeScore(sessCtx, survey, questions)
		if err != nil {
			return nil, err
		}
		if err := survey.MarkCompleted(now); err != nil {
			return nil, err
		}
		survey.SetRiskScore(scoreResult.Score, rating, now)
		if err := persistSurvey(sessCtx, survey, prevStatus, prevVersion); err != nil {
			return nil, err
		}
		if _, _, err := vendors.RecalculateVendor(sessCtx, survey.VendorID); err != nil {
			return nil, err
		}
		return completion{score: scoreResult.Score, rating: rating, linkToken: survey.LinkToken}, nil
	})
	if err != nil {
		return 0, "", err
	}

	done := result.(completion)
	if err := utils.DropLinkToken(done.linkToken); err != nil {
		log.Println("[surveys] drop link token:", err)
	}
	notifications.Dispatch(models.NotifyAssessmentCompleted, map[string]string{
		"surveyId": surveyID.Hex(),
		"score":    strconv.Itoa(done.score),
		"rating":   done.rating,
	}, "")

	log.Printf("[surveys] completed survey=%s score=%d rating=%s", surveyID.Hex(), done.score, done.rating)
	return done.score, done.rating, nil
}

// Recalculate re-runs the scoring engine and the vendor aggregate on a
// COMPLETED survey, e.g. after a manual score correction. Status and
// completedAt stay untouched; with unchanged answers the result is identical.
func Recalculate(ctx context.Context, surveyID primitive.ObjectID) (int, string, error) {
	type recalculation struct {
		score  int
		rating string
	}

	result, err := DB.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		survey, err := GetSurveyByID(sessCtx, surveyID)
		if err != nil {
			return nil, err
		}
		prevStatus, prevVersion := survey.Status, survey.Version
		if !survey.CanRecalculate() {
			return nil, &models.InvalidStateError{Status: survey.Status, Action: "recalculate"}
		}

		questions, err := templates.GetTemplateQuestions(sessCtx, survey.TemplateID)
		if err != nil {
			return nil, err
		}
		scoreResult, rating, err := computeScore(sessCtx, survey, questions)
		if err != nil {
			return nil, err
		}

		survey.SetRiskScore(scoreResult.Score, rating, time.Now())
		if err := persistSurvey(sessCtx, survey, prevStatus, prevVersion); err != nil {
			return nil, err
		}

		if _, _, err := vendors.RecalculateVendor(sessCtx, survey.VendorID); err != nil {
			return nil, err
		}
		return recalculation{score: scoreResult.Score, rating: rating}, nil
	})
	if err != nil {
		return 0, "", err
	}

	done := result.(recalculation)
	log.Printf("[surveys] recalculated survey=%s score=%d rating=%s", surveyID.Hex(), done.score, done.rating)
	return done.score, done.rating, nil
}

// GetBreakdown derives the per-question score breakdown from the survey's
// current questions, answers and attachments. It reproduces the stored
// aggregate when re-averaged by weight.
func GetBreakdown(ctx context.Context, surveyID primitive.ObjectID) ([]scoring.BreakdownItem, error) {
	survey, err := GetSurveyByID(ctx, surveyID)
	if err != nil {
		return nil, err
	}

	questions, err := templates.GetTemplateQuestions(ctx, survey.TemplateID)
	if err != nil {
		return nil, err
	}
	answers, err := getAnswerMap(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	present, err := attachments.PresenceByQuestion(ctx, surveyID)
	if err != nil {
		return nil, err
	}

	result, err := scoring.Aggregate(questions, answers, present)
	if err != nil {
		return nil, err
	}
	return result.Items, nil
}

// ---------- helpers ----------

func respondentLink(token string) string {
	base := strings.TrimRight(os.Getenv("APP_BASE_URL"), "/")
	if base == "" {
		base = "http://localhost:8888"
	}
	return base + "/respond/" + token
}

func indexQuestions(questions []models.Question) map[primitive.ObjectID]*models.Question {
	m := make(map[primitive.ObjectID]*models.Question, len(questions))
	for i := range questions {
		m[questions[i].ID] = &questions[i]
	}
	return m
}

func questionMapForTemplate(ctx context.Context, templateID primitive.ObjectID) (map[primitive.ObjectID]*models.Question, error) {
	questions, err := templates.GetTemplateQuestions(ctx, templateID)
	if err != nil {
		return nil, err
	}
	return indexQuestions(questions), nil
}

// validateInputs checks every input references a template question and the
// value shape matches the question type. All inputs are checked before any
// write happens.
func validateInputs(inputs []models.AnswerInput, questionMap map[primitive.ObjectID]*models.Question) error {
	for _, input := range inputs {
		question, ok := questionMap[input.QuestionID]
		if !ok {
			return &models.NotFoundError{Resource: "question", ID: input.QuestionID.Hex()}
		}
		if err := input.Value.ValidateFor(question); err != nil {
			return &models.ValidationError{Message: err.Error()}
		}
		if input.Comment != "" && !question.AllowComments {
			return &models.ValidationError{
				Message: fmt.Sprintf("question %s does not allow comments", question.ID.Hex()),
			}
		}
	}
	return nil
}

// upsertAnswers persists answers idempotently on the (surveyId, questionId)
// pair. Manual scores on existing answers are preserved.
func upsertAnswers(ctx context.Context, surveyID primitive.ObjectID, inputs []models.AnswerInput) error {
	now := time.Now()
	for _, input := range inputs {
		filter := bson.M{"surveyId": surveyID, "questionId": input.QuestionID}
		update := bson.M{
			"$set": bson.M{
				"value":     input.Value,
				"comment":   input.Comment,
				"updatedAt": now,
			},
			"$setOnInsert": bson.M{
				"surveyId":   surveyID,
				"questionId": input.QuestionID,
				"createdAt":  now,
			},
		}
		opts := options.Update().SetUpsert(true)
		if _, err := DB.AnswerCollection.UpdateOne(ctx, filter, update, opts); err != nil {
			return err
		}
	}
	return nil
}

func getAnswerMap(ctx context.Context, surveyID primitive.ObjectID) (map[primitive.ObjectID]*models.Answer, error) {
	cursor, err := DB.AnswerCollection.Find(ctx, bson.M{"surveyId": surveyID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var answers []models.Answer
	if err := cursor.All(ctx, &answers); err != nil {
		return nil, err
	}

	m := make(map[primitive.ObjectID]*models.Answer, len(answers))
	for i := range answers {
		m[answers[i].QuestionID] = &answers[i]
	}
	return m, nil
}

// overlayInputs builds the merged answer view the validation sees: existing
// answers overlaid with the incoming ones, without touching the database.
func overlayInputs(existing map[primitive.ObjectID]*models.Answer, inputs []models.AnswerInput, surveyID primitive.ObjectID) map[primitive.ObjectID]*models.Answer {
	merged := make(map[primitive.ObjectID]*models.Answer, len(existing)+len(inputs))
	for id, answer := range existing {
		merged[id] = answer
	}
	for _, input := range inputs {
		merged[input.QuestionID] = &models.Answer{
			SurveyID:   surveyID,
			QuestionID: input.QuestionID,
			Value:      input.Value,
			Comment:    input.Comment,
		}
	}
	return merged
}

// computeScore runs the pure engine over the survey's current answers and
// attachments and rates the result. Called inside the same session that wrote
// the answers so it reads its own writes.
func computeScore(ctx context.Context, survey *models.Survey, questions []models.Question) (*scoring.Result, string, error) {
	answers, err := getAnswerMap(ctx, survey.ID)
	if err != nil {
		return nil, "", err
	}
	present, err := attachments.PresenceByQuestion(ctx, survey.ID)
	if err != nil {
		return nil, "", err
	}

	result, err := scoring.Aggregate(questions, answers, present)
	if err != nil {
		return nil, "", err
	}

	rating := string(ratings.LoadConfig(ctx).Rate(result.Score))
	return result, rating, nil
}

// persistSurvey writes the survey's lifecycle fields back after an in-memory
// transition. The filter pins the status and version the caller read, so two
// concurrent submits against the same survey serialize: the loser matches
// nothing and gets an InvalidStateError instead of regressing the winner's
// state.
func persistSurvey(ctx context.Context, survey *models.Survey, prevStatus models.SurveyStatus, prevVersion int64) error {
	result, err := DB.SurveyCollection.UpdateOne(ctx,
		bson.M{"_id": survey.ID, "status": prevStatus, "version": prevVersion},
		bson.M{
			"$set": bson.M{
				"status":                survey.Status,
				"completedAt":           survey.CompletedAt,
				"riskScore":             survey.RiskScore,
				"riskRating":            survey.RiskRating,
				"riskScoreCalculatedAt": survey.RiskScoreCalculatedAt,
				"updatedAt":             survey.UpdatedAt,
			},
			"$inc": bson.M{"version": 1},
		},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return &models.InvalidStateError{Status: prevStatus, Action: "transition to " + string(survey.Status) + " on"}
	}
	survey.Version = prevVersion + 1
	return nil
}
