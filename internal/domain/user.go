package domain

import "time"

const DefaultRole = "User"

type User struct {
	Username           string    `json:"username" gorm:"column:username;primaryKey;size:255"`
	Email              string    `json:"email" gorm:"column:email;size:255;uniqueIndex;not null"`
	PasswordHash       string    `json:"-" gorm:"column:password_hash;size:255;not null"`
	Role               string    `json:"role" gorm:"column:role;size:50;index;default:User"`
	Location           *string   `json:"location,omitempty" gorm:"column:location"`
	VerificationStatus bool      `json:"verification_status" gorm:"column:verification_status"`
	CreatedAt          time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt          time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (User) TableName() string { return "users" }
