package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"participant_admin/internal/models"
	"participant_admin/internal/repository"
	"participant_admin/internal/validation"
)

const dateLayout = "2006-01-02"

// ParticipantController holds the handlers for the /participants routes.
// The store is injected so tests can swap in a stub.
type ParticipantController struct {
	store repository.ParticipantStore
}

func NewParticipantController(store repository.ParticipantStore) *ParticipantController {
	return &ParticipantController{store: store}
}

type participantRow struct {
	ID          uint     `json:"id"`
	Email       string   `json:"email"`
	Firstname   string   `json:"firstname"`
	Lastname    string   `json:"lastname"`
	DOB         string   `json:"dob"`
	Companyname *string  `json:"companyname"`
	Salary      *float64 `json:"salary"`
	Currency    *string  `json:"currency"`
	Country     *string  `json:"country"`
	City        *string  `json:"city"`
}

type summaryRow struct {
	Email     string `json:"email"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

// AddParticipant handles POST /participants/add.
func (pc *ParticipantController) AddParticipant(c *gin.Context) {
	var payload validation.ParticipantPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid participant payload: " + err.Error()})
		return
	}

	if violations := validation.ValidateCreate(&payload); violations != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": violations})
		return
	}

	participant, work, home := payloadRecords(&payload)
	id, err := pc.store.Add(c.Request.Context(), participant, work, home)
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "A participant with this email already exists"})
			return
		}
		logrus.WithError(err).WithField("email", payload.Email).Error("failed to add participant")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add participant"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":       "Participant added successfully",
		"participantId": id,
	})
}

// ListParticipants handles GET /participants.
func (pc *ParticipantController) ListParticipants(c *gin.Context) {
	rows, err := pc.store.ListAll(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("failed to list participants")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch participants"})
		return
	}

	out := make([]participantRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, participantRow{
			ID:          row.ID,
			Email:       row.Email,
			Firstname:   row.Firstname,
			Lastname:    row.Lastname,
			DOB:         row.DOB.Format(dateLayout),
			Companyname: row.Companyname,
			Salary:      row.Salary,
			Currency:    row.Currency,
			Country:     row.Country,
			City:        row.City,
		})
	}
	c.JSON(http.StatusOK, out)
}

// ListParticipantDetails handles GET /participants/details.
func (pc *ParticipantController) ListParticipantDetails(c *gin.Context) {
	summaries, err := pc.store.ListSummaries(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("failed to list participant details")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch participant details"})
		return
	}

	out := make([]summaryRow, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, summaryRow{Email: s.Email, Firstname: s.Firstname, Lastname: s.Lastname})
	}
	c.JSON(http.StatusOK, out)
}

// GetPersonalDetails handles GET /participants/details/:email.
func (pc *ParticipantController) GetPersonalDetails(c *gin.Context) {
	email := c.Param("email")
	details, err := pc.store.GetByEmail(c.Request.Context(), email)
	if err != nil {
		pc.replyLookupError(c, err, email, "Participant not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"firstname": details.Firstname,
		"lastname":  details.Lastname,
		"dob":       details.DOB.Format(dateLayout),
	})
}

// GetWorkDetails handles GET /participants/work/:email.
func (pc *ParticipantController) GetWorkDetails(c *gin.Context) {
	email := c.Param("email")
	details, err := pc.store.GetWorkByEmail(c.Request.Context(), email)
	if err != nil {
		pc.replyLookupError(c, err, email, "Work details not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"companyname": details.Companyname,
		"salary":      details.Salary,
		"currency":    details.Currency,
	})
}

// GetHomeDetails handles GET /participants/home/:email.
func (pc *ParticipantController) GetHomeDetails(c *gin.Context) {
	email := c.Param("email")
	details, err := pc.store.GetHomeByEmail(c.Request.Context(), email)
	if err != nil {
		pc.replyLookupError(c, err, email, "Home details not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"country": details.Country,
		"city":    details.City,
	})
}

// UpdateParticipant handles PUT /participants/:email. The email in the URL
// is only the lookup key; it is never modified.
func (pc *ParticipantController) UpdateParticipant(c *gin.Context) {
	email := c.Param("email")

	var payload validation.ParticipantPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid participant payload: " + err.Error()})
		return
	}

	if violations := validation.ValidateUpdate(&payload); violations != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": violations})
		return
	}

	participant, work, home := payloadRecords(&payload)
	err := pc.store.UpdateByEmail(c.Request.Context(), email, participant, work, home)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Participant not found"})
			return
		}
		logrus.WithError(err).WithField("email", email).Error("failed to update participant")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update participant"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Participant updated successfully"})
}

// DeleteParticipant handles DELETE /participants/:email.
func (pc *ParticipantController) DeleteParticipant(c *gin.Context) {
	email := c.Param("email")
	err := pc.store.DeleteByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Participant not found"})
			return
		}
		logrus.WithError(err).WithField("email", email).Error("failed to delete participant")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete participant"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Participant deleted successfully"})
}

func (pc *ParticipantController) replyLookupError(c *gin.Context, err error, email, notFoundMsg string) {
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
		return
	}
	logrus.WithError(err).WithField("email", email).Error("participant lookup failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch participant details"})
}

// payloadRecords converts a validated payload into the three table records.
func payloadRecords(p *validation.ParticipantPayload) (*models.Participant, *models.WorkDetail, *models.HomeDetail) {
	// The payload passed validation, so the date parses.
	dob, _ := time.Parse(dateLayout, p.DOB)

	participant := &models.Participant{
		Email:     p.Email,
		Firstname: p.Firstname,
		Lastname:  p.Lastname,
		DOB:       dob,
	}
	work := &models.WorkDetail{
		Companyname: p.Work.Companyname,
		Salary:      *p.Work.Salary,
		Currency:    p.Work.Currency,
	}
	home := &models.HomeDetail{
		Country: p.Home.Country,
		City:    p.Home.City,
	}
	return participant, work, home
}
