package domain

import "time"

// NotificationType classifies a notification for client-side rendering.
type NotificationType string

const (
	NotifApplicationStatusUpdate NotificationType = "APPLICATION_STATUS_UPDATE"
	NotifApplicationSubmitted    NotificationType = "APPLICATION_SUBMITTED"
	NotifNewCandidateApplication NotificationType = "NEW_CANDIDATE_APPLICATION"
	NotifNewOfferCreated         NotificationType = "NEW_OFFER_CREATED"
	NotifUpdatedOffer            NotificationType = "UPDATED_OFFER"
	NotifNewUserRegistered       NotificationType = "NEW_USER_REGISTERED"
	NotifUserInformationUpdated  NotificationType = "UPDATE_USER_INFORMATIONS"
)

// Notification is a message addressed to a single user.
type Notification struct {
	ID          uint             `json:"notification_id" gorm:"primaryKey;column:notification_id"`
	RecipientID uint             `json:"-" gorm:"not null;index"`
	Recipient   User             `json:"-" gorm:"foreignKey:RecipientID;constraint:OnDelete:CASCADE"`
	Type        NotificationType `json:"type" gorm:"not null"`
	Message     string           `json:"message" gorm:"not null"`
	Read        bool             `json:"is_read" gorm:"column:is_read;not null;default:false"`
	Link        string           `json:"link,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }
