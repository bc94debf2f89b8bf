package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/niko9090/glos-italy-website-sub000/internal/models"
	"github.com/niko9090/glos-italy-website-sub000/internal/service"
	"github.com/niko9090/glos-italy-website-sub000/pkg/logger"
)

type ContactHandler struct {
	contactService *service.ContactService
}

func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Submit accepts a contact-form submission.
// POST /api/contact
//
// A submission that passes validation always succeeds from the caller's
// point of view: email delivery is a side channel whose failure is logged,
// never returned.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.contactService.Submit(req); err != nil {
		switch {
		case errors.Is(err, service.ErrMissingContactFields),
			errors.Is(err, service.ErrInvalidContactEmail),
			errors.Is(err, service.ErrContactMessageTooLong):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error(err, "Failed to process contact submission", nil)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process contact request"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Thank you for your message. We will get back to you shortly.",
	})
}
