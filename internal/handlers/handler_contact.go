package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/prospectr-app/prospectr/internal/core/ports/services"
	"github.com/prospectr-app/prospectr/internal/dto"
	"github.com/prospectr-app/prospectr/internal/middleware"
)

// contactHandler handles HTTP requests related to contacts.
type contactHandler struct {
	contactService portssvc.ContactSvcFacade
}

func newContactHandler(cs portssvc.ContactSvcFacade) *contactHandler {
	return &contactHandler{contactService: cs}
}

// registerContactRoutes registers all contact-related routes.
func registerContactRoutes(rg *gin.RouterGroup, contactService portssvc.ContactSvcFacade) {
	h := newContactHandler(contactService)

	contacts := rg.Group("/contacts")
	{
		contacts.POST("", h.createContact)
		contacts.GET("", h.listContacts)
		contacts.GET("/:id", h.getContact)
		contacts.PATCH("/:id", h.updateContact)
		contacts.DELETE("/:id", h.deleteContact)
		contacts.POST("/:id/mark/:mark", h.markContact)
		contacts.POST("/:id/queue", h.queueContact)
	}
}

func (h *contactHandler) createContact(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	contact, err := h.contactService.CreateContact(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create contact", slog.String("error", err.Error()))
		respondError(c, err, "Failed to create contact")
		return
	}

	logger.Info("Contact created", slog.String("contact_id", contact.ContactID), slog.String("account_id", contact.AccountID))
	c.JSON(http.StatusCreated, dto.ToContactResponse(contact))
}

func (h *contactHandler) listContacts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListContactsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters"})
		return
	}

	contacts, err := h.contactService.ListContacts(c.Request.Context(), queryFilters(c), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list contacts", slog.String("error", err.Error()))
		respondError(c, err, "Failed to list contacts")
		return
	}

	c.JSON(http.StatusOK, dto.ListContactsResponse{Contacts: dto.ToListContactResponse(contacts)})
}

func (h *contactHandler) getContact(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	contact, err := h.contactService.GetContactByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		logger.Warn("Failed to get contact", slog.String("error", err.Error()))
		respondError(c, err, "Failed to retrieve contact")
		return
	}
	c.JSON(http.StatusOK, dto.ToContactResponse(contact))
}

func (h *contactHandler) updateContact(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateContactRequest
	if err := bindStrictJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	contact, err := h.contactService.UpdateContact(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		logger.Error("Failed to update contact", slog.String("error", err.Error()))
		respondError(c, err, "Failed to update contact")
		return
	}
	c.JSON(http.StatusOK, dto.ToContactResponse(contact))
}

func (h *contactHandler) deleteContact(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.contactService.DeleteContact(c.Request.Context(), c.Param("id")); err != nil {
		logger.Error("Failed to delete contact", slog.String("error", err.Error()))
		respondError(c, err, "Failed to delete contact")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *contactHandler) markContact(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	contact, err := h.contactService.MarkContact(c.Request.Context(), c.Param("id"), c.Param("mark"))
	if err != nil {
		logger.Warn("Failed to mark contact", slog.String("mark", c.Param("mark")), slog.String("error", err.Error()))
		respondError(c, err, "Failed to mark contact")
		return
	}
	c.JSON(http.StatusOK, dto.ToContactResponse(contact))
}

func (h *contactHandler) queueContact(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	contact, err := h.contactService.QueueContact(c.Request.Context(), c.Param("id"))
	if err != nil {
		logger.Error("Failed to queue contact", slog.String("error", err.Error()))
		respondError(c, err, "Failed to queue contact")
		return
	}
	c.JSON(http.StatusOK, dto.ToContactResponse(contact))
}
