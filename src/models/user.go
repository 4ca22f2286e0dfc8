package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Known roles. Assessors run manual scoring and completion; admins may also
// change threshold settings.
const (
	RoleAssessor = "Assessor"
	RoleAdmin    = "Admin"
)

// User บัญชีผู้ใช้ฝั่ง backoffice (assessor / admin)
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email" validate:"required,email"`
	Password string             `bson:"password" json:"-"`
	Role     string             `bson:"role" json:"role"`

	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty" json:"updatedAt"`
}
