package domain

import "time"

// OfferStatus represents the lifecycle state of a job offer.
type OfferStatus string

const (
	OfferOpen      OfferStatus = "OPEN"
	OfferClosed    OfferStatus = "CLOSED"
	OfferExpired   OfferStatus = "EXPIRED"
	OfferCancelled OfferStatus = "CANCELLED"
	OfferDraft     OfferStatus = "DRAFT"
)

// Modality is the work arrangement of an offer.
type Modality string

const (
	ModalityOnSite Modality = "ON_SITE"
	ModalityRemote Modality = "REMOTE"
	ModalityHybrid Modality = "HYBRID"
)

// Offer is a job posting published by a manager.
type Offer struct {
	ID             uint        `json:"offer_id" gorm:"primaryKey;column:offer_id"`
	Title          string      `json:"title" gorm:"not null"`
	Description    string      `json:"description"`
	Location       string      `json:"location"`
	BasicSalary    *float64    `json:"basic_salary,omitempty"`
	CompanyName    string      `json:"company_name"`
	SectorActivity string      `json:"sector_activity"`
	StudyLevel     string      `json:"study_level"`
	Experience     string      `json:"experience"`
	Skills         string      `json:"skills"`
	Modality       Modality    `json:"modality" gorm:"not null;default:ON_SITE"`
	Status         OfferStatus `json:"status" gorm:"not null;default:OPEN"`
	FlexibleHours  bool        `json:"flexible_hours"`
	OfferURL       string      `json:"offer_url,omitempty" gorm:"column:offer_url"`
	PublishedAt    time.Time   `json:"date_publication" gorm:"column:date_publication"`
	ExpiresAt      *time.Time  `json:"date_expiration,omitempty" gorm:"column:date_expiration"`
	ManagerID      uint        `json:"-" gorm:"not null"`
	Manager        ManagerProfile `json:"manager" gorm:"foreignKey:ManagerID"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

func (Offer) TableName() string { return "offers" }

// Acceptable reports whether the offer can still receive applications.
func (o *Offer) Acceptable(now time.Time) bool {
	if o.Status != OfferOpen {
		return false
	}
	return o.ExpiresAt == nil || now.Before(*o.ExpiresAt)
}
