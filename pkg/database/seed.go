package database

import (
	"fmt"
	"time"

	"github.com/findme-ke/findme-api/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultReporter defines the demo account that owns the seed reports
type DefaultReporter struct {
	Name     string
	Email    string
	Password string
}

// GetDefaultReporter returns the demo reporter account
func GetDefaultReporter() DefaultReporter {
	return DefaultReporter{
		Name:     "Demo Reporter",
		Email:    "demo@findme.local",
		Password: "Demo@123", // Change this in production!
	}
}

// Seed creates initial data for the database. It is idempotent: nothing is
// inserted once the reports table has rows.
func Seed(db *gorm.DB) error {
	reporter, err := seedReporter(db)
	if err != nil {
		return err
	}
	return seedReports(db, reporter.ID)
}

func seedReporter(db *gorm.DB) (*model.User, error) {
	demo := GetDefaultReporter()

	var existing model.User
	result := db.Where("email = ?", demo.Email).First(&existing)
	if result.Error == nil {
		return &existing, nil
	}
	if result.Error != gorm.ErrRecordNotFound {
		return nil, result.Error
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(demo.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := model.User{
		Name:         demo.Name,
		Email:        demo.Email,
		PasswordHash: string(hashed),
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func seedReports(db *gorm.DB, ownerID uint) error {
	var count int64
	if err := db.Model(&model.MissingPerson{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	caseNumber := func(n int) *string {
		s := fmt.Sprintf("MP%03d", n)
		return &s
	}

	samples := []model.MissingPerson{
		{
			UserID:           ownerID,
			FullName:         "John Kamau",
			Age:              34,
			Gender:           "Male",
			Height:           "175cm",
			Weight:           "72kg",
			HairColor:        "Black",
			EyeColor:         "Brown",
			LastSeenDate:     now.AddDate(0, 0, -3),
			LastSeenLocation: "Nairobi CBD, Kenya",
			LastSeenWearing:  "Black jacket and blue pants",
			ContactName:      "Grace Wanjiru",
			ContactPhone:     "+254700111222",
			ContactEmail:     "grace.wanjiru@example.com",
			CaseNumber:       caseNumber(1),
			Status:           model.StatusMissing,
		},
		{
			UserID:                 ownerID,
			FullName:               "Mary Njeri",
			Age:                    26,
			Gender:                 "Female",
			Height:                 "162cm",
			Weight:                 "58kg",
			HairColor:              "Black",
			EyeColor:               "Black",
			DistinguishingFeatures: "Small scar above left eyebrow",
			LastSeenDate:           now.AddDate(0, 0, -12),
			LastSeenLocation:       "Westlands, Nairobi",
			LastSeenWearing:        "Red dress",
			ContactName:            "Peter Mwangi",
			ContactPhone:           "+254711333444",
			CaseNumber:             caseNumber(2),
			Status:                 model.StatusMissing,
		},
		{
			UserID:           ownerID,
			FullName:         "David Omondi",
			Age:              17,
			Gender:           "Male",
			Height:           "168cm",
			HairColor:        "Black",
			EyeColor:         "Brown",
			LastSeenDate:     now.AddDate(0, 0, -20),
			LastSeenLocation: "Kisumu, Kenya",
			LastSeenWearing:  "School uniform",
			ContactName:      "Sarah Otieno",
			ContactPhone:     "+254722555666",
			Status:           model.StatusFound,
		},
		{
			UserID:           ownerID,
			FullName:         "Alice Brown",
			Age:              45,
			Gender:           "Female",
			LastSeenDate:     now.AddDate(0, 0, -45),
			LastSeenLocation: "Mombasa, Kenya",
			LastSeenWearing:  "Green hoodie",
			ContactName:      "James Johnson",
			ContactPhone:     "+254733777888",
			AdditionalInfo:   "May be travelling towards Nakuru",
			Status:           model.StatusClosed,
		},
	}

	return db.Create(&samples).Error
}
