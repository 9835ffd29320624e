package models

// HomeDetail holds residence data, same lifecycle as WorkDetail.
type HomeDetail struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	ParticipantID uint   `gorm:"index" json:"participant_id"`
	Country       string `gorm:"type:varchar(255);not null" json:"country"`
	City          string `gorm:"type:varchar(255);not null" json:"city"`
}
