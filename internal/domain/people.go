package domain

// People is a character record of the reference dataset.
type People struct {
	ID        int64  `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"type:varchar(250);not null"`
	Height    string `json:"height" gorm:"type:varchar(50)"`
	Mass      string `json:"mass" gorm:"type:varchar(50)"`
	HairColor string `json:"hair_color" gorm:"type:varchar(50)"`
	SkinColor string `json:"skin_color" gorm:"type:varchar(50)"`
	EyeColor  string `json:"eye_color" gorm:"type:varchar(50)"`
	BirthYear string `json:"birth_year" gorm:"type:varchar(50)"`
	Gender    string `json:"gender" gorm:"type:varchar(50)"`
}

func (People) TableName() string {
	return "people"
}
