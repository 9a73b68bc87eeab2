package models

import "time"

type MeasurementType string

const (
	MeasurementTypeTemperature MeasurementType = "temperatura"
	MeasurementTypePH          MeasurementType = "ph"
	MeasurementTypeGH          MeasurementType = "gh"
	MeasurementTypeKH          MeasurementType = "kh"
	MeasurementTypeNO2         MeasurementType = "no2"
	MeasurementTypeNO3         MeasurementType = "no3"
	MeasurementTypeAmmonia     MeasurementType = "ammoniaca"
	MeasurementTypeOxygen      MeasurementType = "ossigeno"
)

var MeasurementTypes = []MeasurementType{
	MeasurementTypeTemperature,
	MeasurementTypePH,
	MeasurementTypeGH,
	MeasurementTypeKH,
	MeasurementTypeNO2,
	MeasurementTypeNO3,
	MeasurementTypeAmmonia,
	MeasurementTypeOxygen,
}

func (t MeasurementType) Valid() bool {
	for _, known := range MeasurementTypes {
		if t == known {
			return true
		}
	}
	return false
}

type Aquarium struct {
	ID        uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string        `gorm:"not null" json:"name"`
	Volume    float64       `gorm:"not null" json:"volume"`
	Parametri []Measurement `gorm:"foreignKey:AquariumID;references:ID;constraint:OnDelete:CASCADE" json:"parametri"`
}

// Measurement is a single water reading. Its ID only fixes insertion order and never leaves the store.
type Measurement struct {
	ID         uint            `gorm:"primaryKey;autoIncrement" json:"-"`
	AquariumID uint            `gorm:"index;not null" json:"-"`
	Tipo       MeasurementType `gorm:"type:varchar(20);check:tipo IN ('temperatura','ph','gh','kh','no2','no3','ammoniaca','ossigeno')" json:"tipo"`
	Valore     float64         `json:"valore"`
	Data       time.Time       `json:"data"`
}

// Fish keeps a plain AquariumID with no foreign key, so a fish may outlive its aquarium.
type Fish struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string `gorm:"not null" json:"name"`
	Species    string `gorm:"not null" json:"species"`
	AquariumID uint   `gorm:"index" json:"aquariumId"`
}

type User struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
}

type Session struct {
	Token     string `gorm:"primaryKey"`
	Username  string `gorm:"index;not null"`
	CreatedAt time.Time
	ExpiresAt *time.Time `gorm:"index"`
}

func (s *Session) Expired(now time.Time) bool {
	return s.ExpiresAt != nil && !now.Before(*s.ExpiresAt)
}

func (Aquarium) TableName() string    { return "aquariums" }
func (Measurement) TableName() string { return "measurements" }
func (Fish) TableName() string        { return "fish" }
func (User) TableName() string        { return "users" }
func (Session) TableName() string     { return "sessions" }
