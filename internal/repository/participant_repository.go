package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"participant_admin/internal/models"
)

var (
	// ErrNotFound means no participant matches the given email.
	ErrNotFound = errors.New("participant not found")
	// ErrEmailTaken means a create hit the unique email constraint.
	ErrEmailTaken = errors.New("email already registered")
)

// ParticipantRow is one record of the joined listing. Detail columns are
// pointers because the join is a LEFT JOIN: a participant without detail
// rows still lists, with nulls.
type ParticipantRow struct {
	ID          uint
	Email       string
	Firstname   string
	Lastname    string
	DOB         time.Time
	Companyname *string
	Salary      *float64
	Currency    *string
	Country     *string
	City        *string
}

// Summary is the short listing record.
type Summary struct {
	Email     string
	Firstname string
	Lastname  string
}

// PersonalDetails is the per-email personal lookup result.
type PersonalDetails struct {
	Firstname string
	Lastname  string
	DOB       time.Time
}

// WorkDetails is the per-email employment lookup result.
type WorkDetails struct {
	Companyname string
	Salary      float64
	Currency    string
}

// HomeDetails is the per-email residence lookup result.
type HomeDetails struct {
	Country string
	City    string
}

// ParticipantStore is what the handlers depend on. Email is the sole
// external key for every lookup, update and delete.
type ParticipantStore interface {
	Add(ctx context.Context, p *models.Participant, work *models.WorkDetail, home *models.HomeDetail) (uint, error)
	ListAll(ctx context.Context) ([]ParticipantRow, error)
	ListSummaries(ctx context.Context) ([]Summary, error)
	GetByEmail(ctx context.Context, email string) (*PersonalDetails, error)
	GetWorkByEmail(ctx context.Context, email string) (*WorkDetails, error)
	GetHomeByEmail(ctx context.Context, email string) (*HomeDetails, error)
	DeleteByEmail(ctx context.Context, email string) error
	UpdateByEmail(ctx context.Context, email string, p *models.Participant, work *models.WorkDetail, home *models.HomeDetail) error
}

// ParticipantRepository implements ParticipantStore on a gorm handle.
type ParticipantRepository struct {
	db *gorm.DB
}

func NewParticipantRepository(db *gorm.DB) *ParticipantRepository {
	return &ParticipantRepository{db: db}
}

// Add inserts the participant and both detail rows in one transaction. The
// generated participant id links the detail rows; any failure rolls back
// all three inserts.
func (r *ParticipantRepository) Add(ctx context.Context, p *models.Participant, work *models.WorkDetail, home *models.HomeDetail) (uint, error) {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return 0, tx.Error
	}

	if err := tx.Create(p).Error; err != nil {
		tx.Rollback()
		if isUniqueViolation(err) {
			return 0, ErrEmailTaken
		}
		return 0, err
	}

	work.ParticipantID = p.ID
	if err := tx.Create(work).Error; err != nil {
		tx.Rollback()
		return 0, err
	}

	home.ParticipantID = p.ID
	if err := tx.Create(home).Error; err != nil {
		tx.Rollback()
		return 0, err
	}

	if err := tx.Commit().Error; err != nil {
		return 0, err
	}
	return p.ID, nil
}

// ListAll returns every participant joined with its work and home details.
func (r *ParticipantRepository) ListAll(ctx context.Context) ([]ParticipantRow, error) {
	var rows []ParticipantRow
	err := r.db.WithContext(ctx).
		Table("participants").
		Select(`participants.id, participants.email, participants.firstname, participants.lastname, participants.dob,
			work_details.companyname, work_details.salary, work_details.currency,
			home_details.country, home_details.city`).
		Joins("LEFT JOIN work_details ON work_details.participant_id = participants.id").
		Joins("LEFT JOIN home_details ON home_details.participant_id = participants.id").
		Order("participants.id").
		Scan(&rows).Error
	return rows, err
}

// ListSummaries returns email and name for every participant.
func (r *ParticipantRepository) ListSummaries(ctx context.Context) ([]Summary, error) {
	var summaries []Summary
	err := r.db.WithContext(ctx).
		Model(&models.Participant{}).
		Select("email", "firstname", "lastname").
		Order("id").
		Scan(&summaries).Error
	return summaries, err
}

func (r *ParticipantRepository) GetByEmail(ctx context.Context, email string) (*PersonalDetails, error) {
	var details PersonalDetails
	err := r.db.WithContext(ctx).
		Model(&models.Participant{}).
		Select("firstname", "lastname", "dob").
		Where("email = ?", email).
		Take(&details).Error
	if err != nil {
		return nil, notFoundOr(err)
	}
	return &details, nil
}

func (r *ParticipantRepository) GetWorkByEmail(ctx context.Context, email string) (*WorkDetails, error) {
	var details WorkDetails
	err := r.db.WithContext(ctx).
		Model(&models.WorkDetail{}).
		Select("work_details.companyname", "work_details.salary", "work_details.currency").
		Joins("JOIN participants ON participants.id = work_details.participant_id").
		Where("participants.email = ?", email).
		Take(&details).Error
	if err != nil {
		return nil, notFoundOr(err)
	}
	return &details, nil
}

func (r *ParticipantRepository) GetHomeByEmail(ctx context.Context, email string) (*HomeDetails, error) {
	var details HomeDetails
	err := r.db.WithContext(ctx).
		Model(&models.HomeDetail{}).
		Select("home_details.country", "home_details.city").
		Joins("JOIN participants ON participants.id = home_details.participant_id").
		Where("participants.email = ?", email).
		Take(&details).Error
	if err != nil {
		return nil, notFoundOr(err)
	}
	return &details, nil
}

// DeleteByEmail removes the participant row; the ON DELETE CASCADE foreign
// keys take the detail rows with it.
func (r *ParticipantRepository) DeleteByEmail(ctx context.Context, email string) error {
	res := r.db.WithContext(ctx).Where("email = ?", email).Delete(&models.Participant{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateByEmail rewrites the participant's name and date of birth plus both
// detail rows in one transaction. Email is only the lookup key and is never
// modified.
func (r *ParticipantRepository) UpdateByEmail(ctx context.Context, email string, p *models.Participant, work *models.WorkDetail, home *models.HomeDetail) error {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	res := tx.Model(&models.Participant{}).
		Where("email = ?", email).
		Updates(map[string]interface{}{
			"firstname": p.Firstname,
			"lastname":  p.Lastname,
			"dob":       p.DOB,
		})
	if res.Error != nil {
		tx.Rollback()
		return res.Error
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return ErrNotFound
	}

	err := tx.Model(&models.WorkDetail{}).
		Where("participant_id IN (SELECT id FROM participants WHERE email = ?)", email).
		Updates(map[string]interface{}{
			"companyname": work.Companyname,
			"salary":      work.Salary,
			"currency":    work.Currency,
		}).Error
	if err != nil {
		tx.Rollback()
		return err
	}

	err = tx.Model(&models.HomeDetail{}).
		Where("participant_id IN (SELECT id FROM participants WHERE email = ?)", email).
		Updates(map[string]interface{}{
			"country": home.Country,
			"city":    home.City,
		}).Error
	if err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// isUniqueViolation recognizes the unique email constraint firing, for
// postgres in production and sqlite in tests.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
