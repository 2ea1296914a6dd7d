package handlers

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/texcare/storefront/internal/events"
	"github.com/texcare/storefront/internal/mail"
	"github.com/texcare/storefront/internal/models"
	"github.com/texcare/storefront/internal/recaptcha"
)

type ContactHandler struct {
	DB        *gorm.DB
	Verifier  *recaptcha.Verifier
	Mailer    mail.Sender
	Recipient string
	Producer  *events.Producer
}

type contactRequest struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Subject        string `json:"subject"`
	Message        string `json:"message"`
	RecaptchaToken string `json:"recaptchaToken"`
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[A-Za-z]{2,}$`)

// Submit validates, verifies the spam token, persists the submission and
// relays it by email. Stateless per request, no retries; every failure path
// answers with structured JSON.
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Message == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing required fields"})
	}
	if req.RecaptchaToken == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing recaptcha token"})
	}

	score, err := h.Verifier.Verify(c.Request().Context(), req.RecaptchaToken)
	if err != nil {
		switch {
		case errors.Is(err, recaptcha.ErrLowScore):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "recaptcha score too low"})
		case errors.Is(err, recaptcha.ErrRejected):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "recaptcha verification failed"})
		default:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "recaptcha request failed"})
		}
	}

	if !emailPattern.MatchString(req.Email) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid email address"})
	}

	sub := models.ContactSubmission{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Subject:   req.Subject,
		Message:   req.Message,
		Score:     score,
		CreatedAt: time.Now().Unix(),
	}
	if err := h.DB.Create(&sub).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to store message"})
	}

	subject := "Contact form: " + req.FirstName + " " + req.LastName
	if req.Subject != "" {
		subject = "Contact form: " + req.Subject
	}
	if err := h.Mailer.Send(h.Recipient, subject, mail.BuildContactBody(sub)); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to send message"})
	}

	h.publish(c, map[string]any{
		"type":  "contact_submitted",
		"email": sub.Email,
		"score": sub.Score,
	})
	return c.JSON(http.StatusOK, echo.Map{"message": "Message sent successfully"})
}

func (h *ContactHandler) publish(c echo.Context, event map[string]any) {
	if h.Producer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	key, _ := event["email"].(string)
	if err := h.Producer.PublishEvent(ctx, "contact_events", key, event); err != nil {
		c.Logger().Errorf("Kafka publish error: %v", err)
	}
}
