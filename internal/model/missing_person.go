package model

import (
	"time"

	"gorm.io/gorm"
)

// Report status values. A report is always in exactly one of these states.
const (
	StatusMissing = "missing"
	StatusFound   = "found"
	StatusClosed  = "closed"
)

// ValidStatus reports whether s is one of the allowed report statuses
func ValidStatus(s string) bool {
	switch s {
	case StatusMissing, StatusFound, StatusClosed:
		return true
	}
	return false
}

type MissingPerson struct {
	gorm.Model
	UserID uint `gorm:"column:user_id;not null;index"`

	FullName string `gorm:"column:full_name;not null"`
	Age      int    `gorm:"column:age;not null"`
	Gender   string `gorm:"column:gender;not null"`

	Height                 string `gorm:"column:height"`
	Weight                 string `gorm:"column:weight"`
	HairColor              string `gorm:"column:hair_color"`
	EyeColor               string `gorm:"column:eye_color"`
	DistinguishingFeatures string `gorm:"column:distinguishing_features"`

	LastSeenDate     time.Time `gorm:"column:last_seen_date;not null;index"`
	LastSeenLocation string    `gorm:"column:last_seen_location;not null"`
	LastSeenWearing  string    `gorm:"column:last_seen_wearing"`

	ContactName  string `gorm:"column:contact_name;not null"`
	ContactPhone string `gorm:"column:contact_phone;not null"`
	ContactEmail string `gorm:"column:contact_email"`

	// NULL when the reporter has no official case number; unique otherwise
	CaseNumber *string `gorm:"column:case_number;uniqueIndex"`

	Status         string `gorm:"column:status;not null;default:missing;index"`
	AdditionalInfo string `gorm:"column:additional_info"`
	PhotoURL       string `gorm:"column:photo_url"`
}
