package domain

import "time"

// ApplicationStatus represents the lifecycle state of a candidate application.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "PENDING"
	ApplicationViewed   ApplicationStatus = "VIEWED"
	ApplicationAccepted ApplicationStatus = "ACCEPTED"
	ApplicationRejected ApplicationStatus = "REJECTED"
)

// applicationTransitions defines the allowed state machine transitions.
var applicationTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationPending: {ApplicationViewed, ApplicationAccepted, ApplicationRejected},
	ApplicationViewed:  {ApplicationAccepted, ApplicationRejected},
}

// CanTransitionTo reports whether moving from s to next is valid.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	for _, allowed := range applicationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Application is a talent's candidacy for an offer. A talent applies to a
// given offer at most once.
type Application struct {
	ID              uint              `json:"application_id" gorm:"primaryKey;column:application_id"`
	TalentID        uint              `json:"-" gorm:"not null;uniqueIndex:idx_talent_offer"`
	Talent          TalentProfile     `json:"talent" gorm:"foreignKey:TalentID"`
	OfferID         uint              `json:"-" gorm:"not null;uniqueIndex:idx_talent_offer"`
	Offer           Offer             `json:"offer" gorm:"foreignKey:OfferID"`
	Status          ApplicationStatus `json:"status" gorm:"not null;default:PENDING"`
	CoverLetterPath string            `json:"cover_letter_path,omitempty"`
	Notes           string            `json:"notes,omitempty"`
	AppliedAt       time.Time         `json:"application_date"`
	UpdatedAt       time.Time         `json:"last_updated"`
}

func (Application) TableName() string { return "applications" }
