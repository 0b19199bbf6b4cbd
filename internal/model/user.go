package model

// Roles
const (
	RoleLandlord = "landlord"
	RoleRealtor  = "realtor"
	RoleWorkman  = "workman"
	RoleAdmin    = "admin"
)

// User account — users
type User struct {
	UserID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Name         string `gorm:"type:varchar(100);not null"                     json:"name"`
	Email        string `gorm:"type:varchar(255);not null"                     json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null"                     json:"-"`
	Role         string `gorm:"type:varchar(20);not null;default:'landlord'"   json:"role"`
	IsBusiness   bool   `gorm:"not null;default:false"                         json:"is_business"`
	Timestamps
}

func (User) TableName() string { return "users" }
