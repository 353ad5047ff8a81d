package hub

import (
	"errors"
	"net/http"

	"github.com/certhub/certhub/pkg/catalog"
	"github.com/certhub/certhub/pkg/hub/requests"
	"github.com/certhub/certhub/pkg/hub/responses"
	"github.com/certhub/certhub/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// abortWithDomainError maps the domain error taxonomy to HTTP statuses.
func abortWithDomainError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, models.ErrDuplicateEmail):
		status = http.StatusConflict
	case errors.Is(err, models.ErrInvalidCredentials), errors.Is(err, models.ErrNotAuthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, models.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrNoEligibleRecipient):
		status = http.StatusUnprocessableEntity
	}

	logrus.Debug(err)
	c.AbortWithStatusJSON(status, gin.H{"message": err.Error()})
}

func (s *Server) register(c *gin.Context) {
	var req requests.Register
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	account, err := s.directory.Register(req.Email, req.Password, req.FullName, req.Role)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, &account)
}

func (s *Server) login(c *gin.Context) {
	var req requests.Login
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	account, err := s.directory.Authenticate(req.Email, req.Password)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, &account)
}

func (s *Server) logout(c *gin.Context) {
	if err := s.sessions.Clear(); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) me(c *gin.Context) {
	account := c.MustGet("account").(models.Account)
	c.JSON(http.StatusOK, &account)
}

func (s *Server) updateProfile(c *gin.Context) {
	var req requests.UpdateProfile
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	account := c.MustGet("account").(models.Account)
	updated, err := s.directory.UpdateDisplayName(account.Id, req.FullName)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, &updated)
}

func (s *Server) createEvent(c *gin.Context) {
	var req requests.CreateEvent
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	account := c.MustGet("account").(models.Account)
	event, err := s.catalog.Create(req.Title, req.Description, req.EventDate, account.Id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, &event)
}

func (s *Server) listEvents(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.List())
}

func (s *Server) updateEvent(c *gin.Context) {
	var req requests.UpdateEvent
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	event, err := s.catalog.Update(c.Param("id"), catalog.Fields{
		Title:       req.Title,
		Description: req.Description,
		EventDate:   req.EventDate,
	})
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, &event)
}

func (s *Server) deleteEvent(c *gin.Context) {
	if err := s.catalog.Delete(c.Param("id")); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) issueCertificate(c *gin.Context) {
	var req requests.IssueCertificate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	certificate, err := s.registry.Issue(req.EventId, req.RecipientId)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, &certificate)
}

func (s *Server) updateDelivery(c *gin.Context) {
	var req requests.UpdateDelivery
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	certificate, err := s.registry.UpdateDeliveryStatus(c.Param("id"), req.Status)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, &certificate)
}

func (s *Server) listOwnCertificates(c *gin.Context) {
	account := c.MustGet("account").(models.Account)
	certificates := s.registry.ListForAccount(account.Id)
	if certificates == nil {
		certificates = []models.Certificate{}
	}
	c.JSON(http.StatusOK, certificates)
}

func (s *Server) listAllCertificates(c *gin.Context) {
	c.JSON(http.StatusOK, s.registry.List())
}

func (s *Server) listAccounts(c *gin.Context) {
	c.JSON(http.StatusOK, s.directory.List())
}

func (s *Server) verify(c *gin.Context) {
	certificate, err := s.registry.VerifyByNumber(c.Param("number"))
	if err != nil {
		c.JSON(http.StatusNotFound, &responses.Verification{Valid: false})
		return
	}

	c.JSON(http.StatusOK, &responses.Verification{Valid: true, Certificate: &certificate})
}

func (s *Server) stats(c *gin.Context) {
	certificates := s.registry.List()
	pending := 0
	for _, certificate := range certificates {
		if certificate.DeliveryStatus == models.DeliveryPending {
			pending++
		}
	}

	c.JSON(http.StatusOK, &responses.Stats{
		TotalEvents:       len(s.catalog.List()),
		TotalCertificates: len(certificates),
		PendingDelivery:   pending,
	})
}
