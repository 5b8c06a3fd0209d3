package erp

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/GeovaneMT/LavaCar/internal/ability"
	phonectl "github.com/GeovaneMT/LavaCar/internal/db/controller/phone"
	"github.com/GeovaneMT/LavaCar/internal/db/models"
	"github.com/GeovaneMT/LavaCar/internal/policy"
)

// CreatePhoneRequest carries the input for attaching a phone to a user.
type CreatePhoneRequest struct {
	CurrentUserID string
	UserID        string
	UserRole      models.Role
	Type          models.PhoneType
	Number        string
	IsWhatsapp    bool
}

// CreatePhone attaches a phone number to a user after a CREATE check on the
// PHONE subject built from the new record. The owner and owner-role fields
// drive the check: customers only pass on their own phones, admins only on
// customer phones.
func (s *Service) CreatePhone(ctx context.Context, req CreatePhoneRequest) (*models.Phone, error) {
	phone, err := models.NewPhone(req.UserID, req.UserRole, req.Type, req.Number, req.IsWhatsapp)
	if err != nil {
		return nil, err
	}

	subject, err := ability.PhoneSubject(phone)
	if err != nil {
		return nil, err
	}

	check := policy.Check{UserID: req.CurrentUserID, Action: ability.ActionCreate, Subject: subject}
	if err := s.policy.VerifyAbilities(ctx, check); err != nil {
		return nil, err
	}

	if err := s.phones.Create(ctx, phone); err != nil {
		return nil, err
	}

	log.Info().Str("phone_id", phone.ID).Str("user_id", phone.UserID).Msg("phone created")

	return phone, nil
}

// EditPhoneRequest carries the mutable fields of a phone record.
type EditPhoneRequest struct {
	CurrentUserID string
	PhoneID       string
	Type          models.PhoneType
	Number        string
	IsWhatsapp    bool
}

// EditPhone updates a phone record after an UPDATE check on the stored
// record's subject.
func (s *Service) EditPhone(ctx context.Context, req EditPhoneRequest) (*models.Phone, error) {
	phone, err := s.findPhone(ctx, req.PhoneID)
	if err != nil {
		return nil, err
	}

	subject, err := ability.PhoneSubject(phone)
	if err != nil {
		return nil, err
	}

	check := policy.Check{UserID: req.CurrentUserID, Action: ability.ActionUpdate, Subject: subject}
	if err := s.policy.VerifyAbilities(ctx, check); err != nil {
		return nil, err
	}

	phone.Type = req.Type
	phone.Number = req.Number
	phone.IsWhatsapp = req.IsWhatsapp

	if err := s.phones.Save(ctx, phone); err != nil {
		return nil, err
	}

	return phone, nil
}

// DeletePhone removes a phone record after a DELETE check on its subject.
func (s *Service) DeletePhone(ctx context.Context, currentUserID, phoneID string) error {
	phone, err := s.findPhone(ctx, phoneID)
	if err != nil {
		return err
	}

	subject, err := ability.PhoneSubject(phone)
	if err != nil {
		return err
	}

	check := policy.Check{UserID: currentUserID, Action: ability.ActionDelete, Subject: subject}
	if err := s.policy.VerifyAbilities(ctx, check); err != nil {
		return err
	}

	if err := s.phones.Delete(ctx, phone); err != nil {
		return err
	}

	log.Info().Str("phone_id", phoneID).Msg("phone deleted")

	return nil
}

func (s *Service) findPhone(ctx context.Context, phoneID string) (*models.Phone, error) {
	phone, err := s.phones.FindByID(ctx, phoneID)
	if err != nil {
		if errors.Is(err, phonectl.ErrPhoneNotFound) {
			return nil, errors.Wrapf(policy.ErrResourceNotFound, "phone %q", phoneID)
		}
		return nil, err
	}

	return phone, nil
}
