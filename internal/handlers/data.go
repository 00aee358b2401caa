package handlers

import (
	"fmt"
	"net/http"

	"copilot/internal/database"
	"copilot/internal/models"

	"github.com/labstack/echo/v4"
)

// AppointmentsHandler lists all appointments
// @Summary List appointments
// @Description Returns every appointment, newest creation first
// @Tags data
// @Accept json
// @Produce json
// @Success 200 {array} models.Appointment
// @Failure 500 {object} models.ErrorResponse
// @Router /api/appointments [get]
func AppointmentsHandler(store *database.Store) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		appointments, err := store.ListAppointments(ctx.Request().Context())
		if err != nil {
			return ctx.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: fmt.Sprintf("failed to fetch appointments: %v", err),
			})
		}
		return ctx.JSON(http.StatusOK, appointments)
	}
}

// ContactsHandler lists distinct contacts
// @Summary List contacts
// @Description Returns the distinct WhatsApp contacts with their most recent message date
// @Tags data
// @Accept json
// @Produce json
// @Success 200 {array} models.Contact
// @Failure 500 {object} models.ErrorResponse
// @Router /api/contacts [get]
func ContactsHandler(store *database.Store) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		contacts, err := store.ListContacts(ctx.Request().Context())
		if err != nil {
			return ctx.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: fmt.Sprintf("failed to fetch contacts: %v", err),
			})
		}
		return ctx.JSON(http.StatusOK, contacts)
	}
}

// MessagesHandler lists messages, optionally for one contact
// @Summary List messages
// @Description Returns all messages newest-first, or one contact's messages chronologically when whatsapp is given
// @Tags data
// @Accept json
// @Produce json
// @Param whatsapp query string false "Contact identifier"
// @Success 200 {array} models.Message
// @Failure 500 {object} models.ErrorResponse
// @Router /api/messages [get]
func MessagesHandler(store *database.Store) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		messages, err := store.ListMessages(ctx.Request().Context(), ctx.QueryParam("whatsapp"))
		if err != nil {
			return ctx.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: fmt.Sprintf("failed to fetch messages: %v", err),
			})
		}
		return ctx.JSON(http.StatusOK, messages)
	}
}
