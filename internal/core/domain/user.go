package domain

import "time"

const (
	RoleAdmin   = "ADMIN"
	RoleManager = "MANAGER"
	RoleTalent  = "TALENT"
)

// AcceptanceStatus is the administrative gate controlling whether an account
// may sign in, independent of credential correctness.
type AcceptanceStatus string

const (
	StatusWaiting  AcceptanceStatus = "WAITING"
	StatusAccepted AcceptanceStatus = "ACCEPTED"
	StatusRefused  AcceptanceStatus = "REFUSED"
)

// statusTransitions defines the one-way acceptance gate: once an account is
// ACCEPTED or REFUSED it never goes back to WAITING.
var statusTransitions = map[AcceptanceStatus][]AcceptanceStatus{
	StatusWaiting: {StatusAccepted, StatusRefused},
}

// CanTransitionTo reports whether moving from s to next is allowed.
func (s AcceptanceStatus) CanTransitionTo(next AcceptanceStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Valid reports whether s is one of the known acceptance statuses.
func (s AcceptanceStatus) Valid() bool {
	switch s {
	case StatusWaiting, StatusAccepted, StatusRefused:
		return true
	}
	return false
}

// Role is a named permission group. Every user references exactly one role.
type Role struct {
	ID          uint   `json:"role_id" gorm:"primaryKey;column:role_id"`
	Name        string `json:"role_name" gorm:"column:role_name;uniqueIndex;not null"`
	Description string `json:"role_description,omitempty" gorm:"column:role_description"`
}

func (Role) TableName() string { return "roles" }

// Authority returns the authority string granted by this role.
func (r Role) Authority() string { return r.Name }

// User is an account: identity plus credentials. Email doubles as the login
// name and is globally unique. The password hash is never serialized.
type User struct {
	ID               uint             `json:"user_id" gorm:"primaryKey;column:user_id"`
	Email            string           `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash     string           `json:"-" gorm:"column:password;not null"`
	FirstName        string           `json:"first_name" gorm:"not null"`
	LastName         string           `json:"last_name" gorm:"not null"`
	RoleID           uint             `json:"-" gorm:"not null"`
	Role             Role             `json:"role" gorm:"foreignKey:RoleID"`
	AcceptanceStatus AcceptanceStatus `json:"is_accepted" gorm:"column:is_accepted;not null;default:WAITING"`
	Active           bool             `json:"is_active" gorm:"column:is_active;not null;default:false"`
	RegistrationDate time.Time        `json:"registration_date" gorm:"not null"`
	LastLoginDate    *time.Time       `json:"last_login_date,omitempty"`
	Address          string           `json:"address,omitempty"`
	Nationality      string           `json:"nationality,omitempty"`
	Phone            string           `json:"num_tel,omitempty" gorm:"column:num_tel"`
	BirthDate        *time.Time       `json:"birth_date,omitempty"`
	BirthPlace       string           `json:"birth_place,omitempty"`
	CIN              string           `json:"cin,omitempty" gorm:"column:cin"`
	ImagePath        string           `json:"image_path,omitempty"`
}

func (User) TableName() string { return "users" }

// Enabled reports whether the account may authenticate. Credentials alone are
// not enough: an administrator must have accepted the account.
func (u *User) Enabled() bool {
	return u.AcceptanceStatus == StatusAccepted
}

// Authorities returns the user's authority set. The permission model is a
// single role per account, exposed as a one-element slice.
func (u *User) Authorities() []string {
	if u.Role.Name == "" {
		return nil
	}
	return []string{u.Role.Authority()}
}
