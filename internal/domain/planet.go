package domain

// Planet is a location record of the reference dataset.
type Planet struct {
	ID             int64  `json:"id" gorm:"primaryKey"`
	Name           string `json:"name" gorm:"type:varchar(250);not null"`
	Diameter       string `json:"diameter" gorm:"type:varchar(50)"`
	RotationPeriod string `json:"rotation_period" gorm:"type:varchar(50)"`
	OrbitalPeriod  string `json:"orbital_period" gorm:"type:varchar(50)"`
	Gravity        string `json:"gravity" gorm:"type:varchar(50)"`
	Population     string `json:"population" gorm:"type:varchar(50)"`
	Climate        string `json:"climate" gorm:"type:varchar(100)"`
	Terrain        string `json:"terrain" gorm:"type:varchar(100)"`
	SurfaceWater   string `json:"surface_water" gorm:"type:varchar(50)"`
}

func (Planet) TableName() string {
	return "planets"
}
