package models

// WorkDetail holds employment data. Exactly one row per participant,
// created and updated in the same transaction as its parent.
type WorkDetail struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	ParticipantID uint    `gorm:"index" json:"participant_id"`
	Companyname   string  `gorm:"type:varchar(255);not null" json:"companyname"`
	Salary        float64 `gorm:"type:decimal(10,2);not null" json:"salary"`
	Currency      string  `gorm:"type:varchar(3);not null" json:"currency"`
}
