package models

import "time"

// Participant is a person record managed by the admin API. Email is the
// external identifier for lookups; ID only links the detail tables.
type Participant struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Firstname string    `gorm:"type:varchar(255);not null" json:"firstname"`
	Lastname  string    `gorm:"type:varchar(255);not null" json:"lastname"`
	DOB       time.Time `gorm:"type:date;not null" json:"dob"`

	Work *WorkDetail `gorm:"foreignKey:ParticipantID;constraint:OnDelete:CASCADE" json:"work,omitempty"`
	Home *HomeDetail `gorm:"foreignKey:ParticipantID;constraint:OnDelete:CASCADE" json:"home,omitempty"`
}
