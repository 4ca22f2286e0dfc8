package models

import "time"

// Setting เก็บค่า config แบบ key-value (ใช้กับ threshold ของ rating)
type Setting struct {
	Key       string    `bson:"_id" json:"key"`
	Value     int       `bson:"value" json:"value"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty" json:"updatedAt"`
}

// Rating threshold setting keys. Values are inclusive upper bounds checked in
// ascending order.
const (
	SettingThresholdVeryLow = "risk_threshold_very_low"
	SettingThresholdLow     = "risk_threshold_low"
	SettingThresholdMedium  = "risk_threshold_medium"
	SettingThresholdHigh    = "risk_threshold_high"
)
