package domain

import (
	"time"
)

// Favorite links a user to exactly one planet or one person.
// The check constraint enforces the planet XOR people rule; the two unique
// indexes stop the same item from being favorited twice by one user.
type Favorite struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_favorites_user_planet;uniqueIndex:idx_favorites_user_people"`
	PlanetID  *int64    `json:"planet_id" gorm:"uniqueIndex:idx_favorites_user_planet;check:chk_favorites_target,(planet_id IS NULL) <> (people_id IS NULL)"`
	PeopleID  *int64    `json:"people_id" gorm:"uniqueIndex:idx_favorites_user_people"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Preloaded on list
	User   *User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Planet *Planet `json:"planet,omitempty" gorm:"foreignKey:PlanetID;constraint:OnDelete:CASCADE"`
	People *People `json:"people,omitempty" gorm:"foreignKey:PeopleID;constraint:OnDelete:CASCADE"`
}

func (Favorite) TableName() string {
	return "favorites"
}

