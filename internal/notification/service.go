// Package notification sends and reads in-app notifications. Sending is an
// internal operation triggered by subscribers and back-office flows;
// reading goes through the policy choke point so recipients only see their
// own inbox.
package notification

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/GeovaneMT/LavaCar/internal/ability"
	notificationctl "github.com/GeovaneMT/LavaCar/internal/db/controller/notification"
	"github.com/GeovaneMT/LavaCar/internal/db/models"
	"github.com/GeovaneMT/LavaCar/internal/policy"
)

// Service wires notification delivery to its store and the policy service.
type Service struct {
	notifications *notificationctl.Store
	policy        *policy.Service
}

// NewService creates the notification service.
func NewService(notifications *notificationctl.Store, policySvc *policy.Service) *Service {
	return &Service{notifications: notifications, policy: policySvc}
}

// SendRequest carries the input for delivering a notification.
type SendRequest struct {
	RecipientID   string
	RecipientRole models.Role
	Title         string
	Content       string
}

// Send delivers a notification to a recipient. Callers are trusted
// internal components; user-facing send flows run their SEND check before
// calling here.
func (s *Service) Send(ctx context.Context, req SendRequest) (*models.Notification, error) {
	n, err := models.NewNotification(req.RecipientID, req.RecipientRole, req.Title, req.Content)
	if err != nil {
		return nil, err
	}

	if err := s.notifications.Create(ctx, n); err != nil {
		return nil, err
	}

	log.Info().Str("notification_id", n.ID).Str("recipient_id", n.RecipientID).
		Msg("notification sent")

	return n, nil
}

// SendChecked delivers a notification on behalf of a user after a SEND
// check on the NOTIFICATION subject built from the outgoing message.
func (s *Service) SendChecked(ctx context.Context, currentUserID string, req SendRequest) (*models.Notification, error) {
	n, err := models.NewNotification(req.RecipientID, req.RecipientRole, req.Title, req.Content)
	if err != nil {
		return nil, err
	}

	subject, err := ability.NotificationSubject(n)
	if err != nil {
		return nil, err
	}

	check := policy.Check{UserID: currentUserID, Action: ability.ActionSend, Subject: subject}
	if err := s.policy.VerifyAbilities(ctx, check); err != nil {
		return nil, err
	}

	if err := s.notifications.Create(ctx, n); err != nil {
		return nil, err
	}

	log.Info().Str("notification_id", n.ID).Str("recipient_id", n.RecipientID).
		Msg("notification sent")

	return n, nil
}

// Read marks a notification as read after a READ check on its subject.
// Only the recipient passes the check; admins are explicitly barred from
// reading other users' inboxes.
func (s *Service) Read(ctx context.Context, currentUserID, notificationID string) (*models.Notification, error) {
	n, err := s.notifications.FindByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, notificationctl.ErrNotificationNotFound) {
			return nil, errors.Wrapf(policy.ErrResourceNotFound, "notification %q", notificationID)
		}
		return nil, err
	}

	subject, err := ability.NotificationSubject(n)
	if err != nil {
		return nil, err
	}

	check := policy.Check{UserID: currentUserID, Action: ability.ActionRead, Subject: subject}
	if err := s.policy.VerifyAbilities(ctx, check); err != nil {
		return nil, err
	}

	n.Read()

	if err := s.notifications.Save(ctx, n); err != nil {
		return nil, err
	}

	return n, nil
}

// ListInbox returns the recipient's notifications, newest first, after a
// READ check scoped to that recipient.
func (s *Service) ListInbox(ctx context.Context, currentUserID, recipientID string) ([]models.Notification, error) {
	check := policy.Check{
		UserID: currentUserID,
		Action: ability.ActionRead,
		Subject: ability.Subject{
			Type:   ability.SubjectNotification,
			Fields: map[string]string{"recipientId": recipientID},
		},
	}
	if err := s.policy.VerifyAbilities(ctx, check); err != nil {
		return nil, err
	}

	return s.notifications.ListByRecipient(ctx, recipientID)
}
