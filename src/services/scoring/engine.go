package scoring

import (
	"fmt"
	"math"

	"Backend-VendorRisk/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The engine is pure: it reads questions, answers and attachment presence and
// produces the weighted 0-100 aggregate plus its breakdown. It performs no
// I/O, so the lifecycle can run it inside a transaction and tests can feed it
// fixtures directly.

// Assessment is the presentation label over a raw score. It is shared between
// the breakdown and the UI but takes no part in the math.
type Assessment string

const (
	AssessmentPass    Assessment = "Pass"
	AssessmentPartial Assessment = "Partial"
	AssessmentFail    Assessment = "Fail"
	AssessmentNA      Assessment = "N/A"
)

// Label maps a raw score to its assessment label.
// 0 → Pass, 1-50 → Partial, 51-100 → Fail, -1 → N/A.
func Label(raw int) Assessment {
	switch {
	case raw == models.ManualScoreNA:
		return AssessmentNA
	case raw == 0:
		return AssessmentPass
	case raw <= 50:
		return AssessmentPartial
	default:
		return AssessmentFail
	}
}

// BreakdownItem is one explanatory row of the score breakdown. Re-averaging
// the non-N/A items by weight reproduces the aggregate exactly.
type BreakdownItem struct {
	QuestionID   string     `json:"questionId"`
	QuestionText string     `json:"questionText"`
	Weight       int        `json:"weight"`
	WeightLabel  string     `json:"weightLabel"` // "-" for N/A rows: they leave the denominator
	RawScore     int        `json:"rawScore"`    // -1 for N/A rows
	Assessment   Assessment `json:"assessment"`
	IsNA         bool       `json:"isNA"`
}

// Result is the outcome of one aggregate computation.
type Result struct {
	Score int             `json:"score"`
	Items []BreakdownItem `json:"items"`
}

// RawScore computes the raw answer score in [0, 100] for one scorable
// question, per question type. The second return reports N/A: the question is
// excluded from both numerator and denominator of the weighted sum.
func RawScore(q *models.Question, a *models.Answer, hasAttachment bool) (int, bool) {
	switch q.Type {
	case models.QuestionText, models.QuestionLongText:
		// Never auto-scored; the raw score is the recorded human judgment.
		if a == nil || a.ManualScore == nil || *a.ManualScore == models.ManualScoreNA {
			return 0, true
		}
		return *a.ManualScore, false

	case models.QuestionBoolean:
		if a == nil || a.Value.BoolValue == nil {
			return missingAnswerScore(q)
		}
		yes := *a.Value.BoolValue
		if q.RiskImpact == models.ImpactNegative {
			yes = !yes
		}
		if yes {
			return 0, false
		}
		return 100, false

	case models.QuestionSingleChoice:
		if a == nil || len(a.Value.SelectedOptions) == 0 {
			return missingAnswerScore(q)
		}
		score, ok := q.OptionScore(a.Value.SelectedOptions[0])
		if !ok {
			return 100, false
		}
		return score, false

	case models.QuestionMultipleChoice:
		if a == nil || len(a.Value.SelectedOptions) == 0 {
			return missingAnswerScore(q)
		}
		// Worst case wins: the riskiest selected option sets the raw score.
		worst := 0
		for _, label := range a.Value.SelectedOptions {
			score, ok := q.OptionScore(label)
			if !ok {
				score = 100
			}
			if score > worst {
				worst = score
			}
		}
		return worst, false

	case models.QuestionFile:
		// Presence-only signal unless the template configured explicit
		// present/absent scores as the first two options.
		if len(q.Options) >= 2 && q.Options[0].Score != nil && q.Options[1].Score != nil {
			if hasAttachment {
				return *q.Options[0].Score, false
			}
			return *q.Options[1].Score, false
		}
		if hasAttachment {
			return 0, false
		}
		return 100, false
	}

	return 100, false
}

// missingAnswerScore applies the unanswered rule: a required question with no
// answer counts as maximum risk, a legitimately skippable one is excluded.
func missingAnswerScore(q *models.Question) (int, bool) {
	if q.IsRequired {
		return 100, false
	}
	return 0, true
}

// Aggregate computes the weighted 0-100 survey score (0 = no risk) and its
// breakdown over the scorable question set. N/A questions leave numerator and
// denominator; a fully-N/A (or empty) scorable set yields a ComputationError
// rather than a silent zero.
func Aggregate(questions []models.Question, answers map[primitive.ObjectID]*models.Answer, attachments map[primitive.ObjectID]bool) (*Result, error) {
	result := &Result{}

	weightedSum := 0
	weightTotal := 0

	for i := range questions {
		q := &questions[i]
		if !q.IsScorable() {
			continue
		}

		raw, na := RawScore(q, answers[q.ID], attachments[q.ID])

		item := BreakdownItem{
			QuestionID:   q.ID.Hex(),
			QuestionText: q.QuestionText,
			Weight:       q.RiskWeight,
			WeightLabel:  fmt.Sprintf("%d%%", q.RiskWeight),
			RawScore:     raw,
			Assessment:   Label(raw),
			IsNA:         na,
		}
		if na {
			item.RawScore = models.ManualScoreNA
			item.Assessment = AssessmentNA
			item.WeightLabel = "-"
		} else {
			weightedSum += raw * q.RiskWeight
			weightTotal += q.RiskWeight
		}
		result.Items = append(result.Items, item)
	}

	if weightTotal == 0 {
		return nil, &models.ComputationError{Reason: "no scorable questions included in the weighted average"}
	}

	score := int(math.Round(float64(weightedSum) / float64(weightTotal)))
	result.Score = Clamp(score)
	return result, nil
}

// Clamp bounds a score to [0, 100]. Raw scores are already bounded, so this
// only guards the final rounding.
func Clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// RequiresManualScoring reports whether the template contains at least one
// manually-scored question, which decides whether submit parks the survey in
// PENDING_SCORING or completes it immediately.
func RequiresManualScoring(questions []models.Question) bool {
	for i := range questions {
		if questions[i].IsManuallyScored() {
			return true
		}
	}
	return false
}
