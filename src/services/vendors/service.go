package vendors

import (
	"context"
	"log"
	"time"

	DB "Backend-VendorRisk/src/database"
	"Backend-VendorRisk/src/models"
	"Backend-VendorRisk/src/services/ratings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateVendor registers a new vendor. The risk score stays null until one of
// its surveys is scored.
func CreateVendor(ctx context.Context, vendor *models.Vendor) (*models.Vendor, error) {
	now := time.Now()
	vendor.ID = primitive.NewObjectID()
	vendor.CreatedAt = now
	vendor.UpdatedAt = now

	if _, err := DB.VendorCollection.InsertOne(ctx, vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}

// GetVendorByID retrieves a vendor by its ID
func GetVendorByID(ctx context.Context, id primitive.ObjectID) (*models.Vendor, error) {
	var vendor models.Vendor
	err := DB.VendorCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&vendor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &models.NotFoundError{Resource: "vendor", ID: id.Hex()}
		}
		return nil, err
	}
	return &vendor, nil
}

// GetVendors retrieves all vendors with pagination
func GetVendors(ctx context.Context, params models.PaginationParams) (*models.PaginatedResponse, error) {
	filter := bson.M{}
	if params.Search != "" {
		filter["name"] = bson.M{"$regex": params.Search, "$options": "i"}
	}

	total, err := DB.VendorCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(params.GetSortOrder())

	cursor, err := DB.VendorCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var vendors []models.Vendor
	if err := cursor.All(ctx, &vendors); err != nil {
		return nil, err
	}

	return models.NewPaginatedResponse(vendors, total, params), nil
}

// LatestScored picks the survey whose risk score was calculated most
// recently. Only surveys carrying a score participate; nil when none do.
// Last-write-wins by riskScoreCalculatedAt: scoring any one survey
// immediately moves the vendor aggregate to that survey's score.
func LatestScored(surveys []models.Survey) *models.Survey {
	var latest *models.Survey
	for i := range surveys {
		s := &surveys[i]
		if s.RiskScore == nil || s.RiskScoreCalculatedAt == nil {
			continue
		}
		if latest == nil || s.RiskScoreCalculatedAt.After(*latest.RiskScoreCalculatedAt) {
			latest = s
		}
	}
	return latest
}

// RecalculateVendor recomputes the vendor aggregate from its completed,
// scored surveys. A vendor with no scored surveys keeps a null score; the
// aggregate never regresses to zero. Runs inside the caller's session context
// when invoked from the survey lifecycle.
func RecalculateVendor(ctx context.Context, vendorID primitive.ObjectID) (*int, string, error) {
	if _, err := GetVendorByID(ctx, vendorID); err != nil {
		return nil, "", err
	}

	cursor, err := DB.SurveyCollection.Find(ctx, bson.M{
		"vendorId":  vendorID,
		"status":    models.SurveyCompleted,
		"riskScore": bson.M{"$exists": true, "$ne": nil},
	})
	if err != nil {
		return nil, "", err
	}
	defer cursor.Close(ctx)

	var surveys []models.Survey
	if err := cursor.All(ctx, &surveys); err != nil {
		return nil, "", err
	}

	latest := LatestScored(surveys)
	if latest == nil {
		log.Printf("[vendors] vendor=%s has no scored surveys, keeping score null", vendorID.Hex())
		return nil, "", nil
	}

	score := *latest.RiskScore
	rating := string(ratings.LoadConfig(ctx).Rate(score))

	_, err = DB.VendorCollection.UpdateOne(ctx,
		bson.M{"_id": vendorID},
		bson.M{"$set": bson.M{
			"riskScore":             score,
			"riskRating":            rating,
			"riskScoreCalculatedAt": latest.RiskScoreCalculatedAt,
			"updatedAt":             time.Now(),
		}},
	)
	if err != nil {
		return nil, "", err
	}

	log.Printf("[vendors] recalculated vendor=%s score=%d rating=%s", vendorID.Hex(), score, rating)
	return &score, rating, nil
}
