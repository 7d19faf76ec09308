package dto

import (
	"time"

	"github.com/findme-ke/findme-api/internal/model"
)

// CreateMissingPersonRequest is the full creation payload. Only the fields
// listed here are ever copied onto a record; unknown JSON keys are dropped.
type CreateMissingPersonRequest struct {
	FullName string `json:"full_name" binding:"required,min=2,max=100"`
	Age      int    `json:"age" binding:"required,gt=0"`
	Gender   string `json:"gender" binding:"required,max=50"`

	Height                 string `json:"height" binding:"omitempty,max=50"`
	Weight                 string `json:"weight" binding:"omitempty,max=50"`
	HairColor              string `json:"hair_color" binding:"omitempty,max=50"`
	EyeColor               string `json:"eye_color" binding:"omitempty,max=50"`
	DistinguishingFeatures string `json:"distinguishing_features" binding:"omitempty,max=500"`

	LastSeenDate     time.Time `json:"last_seen_date" binding:"required"`
	LastSeenLocation string    `json:"last_seen_location" binding:"required,max=200"`
	LastSeenWearing  string    `json:"last_seen_wearing" binding:"omitempty,max=300"`

	ContactName  string `json:"contact_name" binding:"required,max=100"`
	ContactPhone string `json:"contact_phone" binding:"required,max=30"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email"`

	CaseNumber     *string `json:"case_number" binding:"omitempty,max=50"`
	Status         string  `json:"status" binding:"omitempty,oneof=missing found closed"`
	AdditionalInfo string  `json:"additional_info" binding:"omitempty,max=2000"`
	PhotoURL       string  `json:"photo_url" binding:"omitempty,url"`
}

// UpdateMissingPersonRequest is the post-creation allow-list. Owner, id, case
// number and timestamps are deliberately absent: they are never client-mutable.
type UpdateMissingPersonRequest struct {
	Status                 *string `json:"status" binding:"omitempty,oneof=missing found closed"`
	FullName               *string `json:"full_name" binding:"omitempty,min=2,max=100"`
	ContactPhone           *string `json:"contact_phone" binding:"omitempty,max=30"`
	ContactEmail           *string `json:"contact_email" binding:"omitempty,email"`
	AdditionalInfo         *string `json:"additional_info" binding:"omitempty,max=2000"`
	LastSeenLocation       *string `json:"last_seen_location" binding:"omitempty,max=200"`
	LastSeenWearing        *string `json:"last_seen_wearing" binding:"omitempty,max=300"`
	DistinguishingFeatures *string `json:"distinguishing_features" binding:"omitempty,max=500"`
}

// IsEmpty reports whether the update carries no recognized field at all
func (r *UpdateMissingPersonRequest) IsEmpty() bool {
	return r.Status == nil &&
		r.FullName == nil &&
		r.ContactPhone == nil &&
		r.ContactEmail == nil &&
		r.AdditionalInfo == nil &&
		r.LastSeenLocation == nil &&
		r.LastSeenWearing == nil &&
		r.DistinguishingFeatures == nil
}

type MissingPersonResponse struct {
	ID     uint `json:"id"`
	UserID uint `json:"user_id"`

	FullName string `json:"full_name"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`

	Height                 string `json:"height,omitempty"`
	Weight                 string `json:"weight,omitempty"`
	HairColor              string `json:"hair_color,omitempty"`
	EyeColor               string `json:"eye_color,omitempty"`
	DistinguishingFeatures string `json:"distinguishing_features,omitempty"`

	LastSeenDate     time.Time `json:"last_seen_date"`
	LastSeenLocation string    `json:"last_seen_location"`
	LastSeenWearing  string    `json:"last_seen_wearing,omitempty"`

	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone"`
	ContactEmail string `json:"contact_email,omitempty"`

	CaseNumber     *string `json:"case_number,omitempty"`
	Status         string  `json:"status"`
	AdditionalInfo string  `json:"additional_info,omitempty"`
	PhotoURL       string  `json:"photo_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewMissingPersonResponse converts a record into its response shape
func NewMissingPersonResponse(p *model.MissingPerson) MissingPersonResponse {
	return MissingPersonResponse{
		ID:                     p.ID,
		UserID:                 p.UserID,
		FullName:               p.FullName,
		Age:                    p.Age,
		Gender:                 p.Gender,
		Height:                 p.Height,
		Weight:                 p.Weight,
		HairColor:              p.HairColor,
		EyeColor:               p.EyeColor,
		DistinguishingFeatures: p.DistinguishingFeatures,
		LastSeenDate:           p.LastSeenDate,
		LastSeenLocation:       p.LastSeenLocation,
		LastSeenWearing:        p.LastSeenWearing,
		ContactName:            p.ContactName,
		ContactPhone:           p.ContactPhone,
		ContactEmail:           p.ContactEmail,
		CaseNumber:             p.CaseNumber,
		Status:                 p.Status,
		AdditionalInfo:         p.AdditionalInfo,
		PhotoURL:               p.PhotoURL,
		CreatedAt:              p.CreatedAt,
		UpdatedAt:              p.UpdatedAt,
	}
}

// NewMissingPersonResponses converts a slice of records, never returning nil
// so list endpoints serialize an empty JSON array instead of null
func NewMissingPersonResponses(persons []model.MissingPerson) []MissingPersonResponse {
	responses := make([]MissingPersonResponse, 0, len(persons))
	for i := range persons {
		responses = append(responses, NewMissingPersonResponse(&persons[i]))
	}
	return responses
}
