package models

// AdminUser is the Basic Auth credential record. Password holds a bcrypt
// hash, never the cleartext, and is never serialized.
type AdminUser struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	Password string `gorm:"type:varchar(255);not null" json:"-"`
}
