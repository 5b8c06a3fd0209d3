// Package notification provides handlers for the notification inbox.
package notification

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/GeovaneMT/LavaCar/internal/config"
	"github.com/GeovaneMT/LavaCar/internal/db/models"
	notificationsvc "github.com/GeovaneMT/LavaCar/internal/notification"
	"github.com/GeovaneMT/LavaCar/internal/web/handler"
)

// Path is the base path for notifications.
const Path = handler.RootPath + "notifications"

// Service handles notification routes.
type Service struct {
	cfg           *config.Config
	notifications *notificationsvc.Service
}

// Handler is the exported instance.
var Handler = Service{}

// Init registers routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, notifications *notificationsvc.Service) {
	if app == nil || cfg == nil || notifications == nil {
		log.Fatal().Msg(handler.ErrNilACSFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.notifications = notifications

	app.Get(Path, s.Inbox)
	app.Post(Path, s.Send)
	app.Patch(Path+"/:id/read", s.Read)
}

// Inbox returns the acting user's notifications, newest first.
func (s *Service) Inbox(c *fiber.Ctx) error {
	userID := handler.UserID(c)

	recipientID := c.Query("recipientId", userID)

	inbox, err := s.notifications.ListInbox(c.Context(), userID, recipientID)
	if err != nil {
		return handler.RenderError(c, err)
	}

	out := make([]fiber.Map, 0, len(inbox))
	for _, n := range inbox {
		out = append(out, notificationJSON(&n))
	}

	return c.JSON(out)
}

type sendRequest struct {
	RecipientID   string      `json:"recipientId"`
	RecipientRole models.Role `json:"recipientRole"`
	Title         string      `json:"title"`
	Content       string      `json:"content"`
}

// Send delivers a notification on behalf of the acting user.
func (s *Service) Send(c *fiber.Ctx) error {
	var req sendRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	n, err := s.notifications.SendChecked(c.Context(), handler.UserID(c), notificationsvc.SendRequest{
		RecipientID:   req.RecipientID,
		RecipientRole: req.RecipientRole,
		Title:         req.Title,
		Content:       req.Content,
	})
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(notificationJSON(n))
}

// Read marks a notification as read.
func (s *Service) Read(c *fiber.Ctx) error {
	n, err := s.notifications.Read(c.Context(), handler.UserID(c), c.Params("id"))
	if err != nil {
		return handler.RenderError(c, err)
	}

	return c.JSON(notificationJSON(n))
}

func notificationJSON(n *models.Notification) fiber.Map {
	return fiber.Map{
		"id":            n.ID,
		"recipientId":   n.RecipientID,
		"recipientRole": n.RecipientRole,
		"title":         n.Title,
		"content":       n.Content,
		"readAt":        n.ReadAt,
		"createdAt":     n.CreatedAt,
	}
}
