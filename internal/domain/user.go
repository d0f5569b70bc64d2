package domain

// User is the identity holder. Users are created out of band (seed or direct
// inserts); the API only reads them.
type User struct {
	ID       int64  `json:"id" gorm:"primaryKey"`
	Email    string `json:"email" gorm:"type:varchar(120);uniqueIndex;not null"`
	Password string `json:"-" gorm:"type:varchar(80);not null"`
	IsActive bool   `json:"is_active" gorm:"not null"`
}

func (User) TableName() string {
	return "users"
}
