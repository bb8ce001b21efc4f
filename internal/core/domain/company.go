package domain

// Company is an employer profile. Managers belong to exactly one company.
type Company struct {
	ID          uint   `json:"company_id" gorm:"primaryKey;column:company_id"`
	Name        string `json:"name" gorm:"not null"`
	Address     string `json:"address,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	Website     string `json:"website,omitempty"`
	Description string `json:"description,omitempty"`
	Sector      string `json:"sector,omitempty"`
	Size        string `json:"size,omitempty"`
	City        string `json:"city,omitempty"`
	Country     string `json:"country,omitempty"`
}

func (Company) TableName() string { return "companies" }

// TalentProfile is the dependent row created for every talent account. It is
// created empty on registration and completed through the profile flows.
type TalentProfile struct {
	ID     uint   `json:"talent_id" gorm:"primaryKey;column:talent_id"`
	UserID uint   `json:"user_id" gorm:"uniqueIndex;not null"`
	User   User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CVPath string `json:"cv_path,omitempty" gorm:"column:cv_path"`
}

func (TalentProfile) TableName() string { return "talent_profiles" }

// ManagerProfile links a manager account to its company.
type ManagerProfile struct {
	ID        uint    `json:"manager_id" gorm:"primaryKey;column:manager_id"`
	UserID    uint    `json:"user_id" gorm:"uniqueIndex;not null"`
	User      User    `json:"user" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CompanyID uint    `json:"-" gorm:"not null"`
	Company   Company `json:"company" gorm:"foreignKey:CompanyID"`
}

func (ManagerProfile) TableName() string { return "manager_profiles" }
