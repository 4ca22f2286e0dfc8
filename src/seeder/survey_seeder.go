package seeder

import (
	"context"
	"log"

	DB "Backend-VendorRisk/src/database"
	"Backend-VendorRisk/src/models"
	ratings "Backend-VendorRisk/src/services/ratings"
	templates "Backend-VendorRisk/src/services/templates"
	users "Backend-VendorRisk/src/services/users"
	"Backend-VendorRisk/src/utils"

	"go.mongodb.org/mongo-driver/bson"
)

func intPtr(v int) *int { return &v }

// SeedDefaultSettings writes the default rating thresholds when the settings
// collection is still empty.
func SeedDefaultSettings() error {
	ctx := context.Background()

	count, err := DB.SettingCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	def := ratings.DefaultConfig()
	pairs := map[string]int{
		models.SettingThresholdVeryLow: def.VeryLowMax,
		models.SettingThresholdLow:     def.LowMax,
		models.SettingThresholdMedium:  def.MediumMax,
		models.SettingThresholdHigh:    def.HighMax,
	}
	for key, value := range pairs {
		if err := utils.PutIntSetting(ctx, key, value); err != nil {
			return err
		}
	}

	log.Println("✅ Seeded default rating thresholds")
	return nil
}

// SeedDefaultUsers creates the initial admin account for a fresh install.
func SeedDefaultUsers() error {
	ctx := context.Background()

	count, err := DB.UserCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	admin := &models.User{
		Name:  "Default Admin",
		Email: "admin@example.com",
		Role:  models.RoleAdmin,
	}
	if _, err := users.CreateUser(ctx, admin, "ChangeMe123!"); err != nil {
		return err
	}

	log.Println("✅ Seeded default admin user:", admin.Email)
	return nil
}

// SeedSampleTemplates creates a sample vendor security template for testing
func SeedSampleTemplates() error {
	ctx := context.Background()

	count, err := DB.TemplateCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	securityTemplate := &models.CreateTemplateRequest{
		Name:        "Vendor Security Assessment",
		Description: "Baseline security posture questionnaire for new vendors",
		Questions: []models.Question{
			{
				Type:         models.QuestionBoolean,
				QuestionText: "Do you hold a current ISO 27001 certification?",
				IsRequired:   true,
				RiskWeight:   3,
				RiskImpact:   models.ImpactPositive,
			},
			{
				Type:         models.QuestionBoolean,
				QuestionText: "Have you experienced a data breach in the last 24 months?",
				IsRequired:   true,
				RiskWeight:   3,
				RiskImpact:   models.ImpactNegative,
			},
			{
				Type:         models.QuestionSingleChoice,
				QuestionText: "How often do you run penetration tests?",
				IsRequired:   true,
				RiskWeight:   2,
				RiskImpact:   models.ImpactPositive,
				Options: []models.QuestionOption{
					{Label: "Quarterly or more often", Sequence: 1},
					{Label: "Yearly", Sequence: 2},
					{Label: "Ad hoc", Sequence: 3},
					{Label: "Never", Sequence: 4},
				},
			},
			{
				Type:         models.QuestionMultipleChoice,
				QuestionText: "Which regions do you store customer data in?",
				IsRequired:   true,
				RiskWeight:   1,
				RiskImpact:   models.ImpactNegative,
				Options: []models.QuestionOption{
					{Label: "EU", Score: intPtr(0), Sequence: 1},
					{Label: "US", Score: intPtr(25), Sequence: 2},
					{Label: "APAC", Score: intPtr(50), Sequence: 3},
					{Label: "Other / unknown", Score: intPtr(100), Sequence: 4},
				},
			},
			{
				Type:          models.QuestionLongText,
				QuestionText:  "Describe your incident response process.",
				IsRequired:    true,
				RiskWeight:    2,
				AllowComments: true,
			},
			{
				Type:         models.QuestionFile,
				QuestionText: "Attach your latest SOC 2 report.",
				IsRequired:   false,
				RiskWeight:   1,
			},
			{
				Type:         models.QuestionText,
				QuestionText: "Who is your security point of contact?",
				IsRequired:   true,
				RiskWeight:   0,
			},
		},
	}

	result, err := templates.CreateTemplate(ctx, securityTemplate)
	if err != nil {
		log.Printf("Error creating template '%s': %v", securityTemplate.Name, err)
		return err
	}
	log.Printf("✅ Created template: %s (ID: %s)", result.Template.Name, result.Template.ID.Hex())

	return nil
}
