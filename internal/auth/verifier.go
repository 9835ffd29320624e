package auth

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"participant_admin/internal/models"
)

// dummyHash is a valid bcrypt hash compared against when the username does
// not exist, so an unknown user costs the same as a wrong password.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// Verifier checks Basic Auth credentials against the admin_users table.
type Verifier struct {
	db *gorm.DB
}

func NewVerifier(db *gorm.DB) *Verifier {
	return &Verifier{db: db}
}

// Verify reports whether the username/password pair matches a stored admin
// credential. The cleartext password is never stored or logged.
func (v *Verifier) Verify(ctx context.Context, username, password string) bool {
	var admin models.AdminUser
	err := v.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logrus.WithError(err).WithField("username", username).Error("admin credential lookup failed")
		}
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)) == nil
}
