// Package erp implements the business operations of the car-service ERP.
// Every operation resolves the target entity, projects it onto an
// authorization subject and passes the policy choke point before mutating
// state. Aggregates that raise domain events are dispatched on the bus
// after they are persisted.
package erp

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/GeovaneMT/LavaCar/internal/ability"
	adminctl "github.com/GeovaneMT/LavaCar/internal/db/controller/admin"
	attachmentctl "github.com/GeovaneMT/LavaCar/internal/db/controller/attachment"
	breakdownctl "github.com/GeovaneMT/LavaCar/internal/db/controller/breakdown"
	customerctl "github.com/GeovaneMT/LavaCar/internal/db/controller/customer"
	phonectl "github.com/GeovaneMT/LavaCar/internal/db/controller/phone"
	vehiclectl "github.com/GeovaneMT/LavaCar/internal/db/controller/vehicle"
	"github.com/GeovaneMT/LavaCar/internal/db/models"
	"github.com/GeovaneMT/LavaCar/internal/events"
	"github.com/GeovaneMT/LavaCar/internal/policy"
)

// Service wires the ERP operations to their stores, the policy service and
// the event bus.
type Service struct {
	admins      *adminctl.Store
	customers   *customerctl.Store
	phones      *phonectl.Store
	vehicles    *vehiclectl.Store
	breakdowns  *breakdownctl.Store
	attachments *attachmentctl.Store

	policy *policy.Service
	bus    *events.Bus
}

// NewService creates the ERP service.
func NewService(
	admins *adminctl.Store,
	customers *customerctl.Store,
	phones *phonectl.Store,
	vehicles *vehiclectl.Store,
	breakdowns *breakdownctl.Store,
	attachments *attachmentctl.Store,
	policySvc *policy.Service,
	bus *events.Bus,
) *Service {
	return &Service{
		admins:      admins,
		customers:   customers,
		phones:      phones,
		vehicles:    vehicles,
		breakdowns:  breakdowns,
		attachments: attachments,
		policy:      policySvc,
		bus:         bus,
	}
}

// RegisterPhone carries one phone number supplied at registration time.
type RegisterPhone struct {
	Type       models.PhoneType
	Number     string
	IsWhatsapp bool
}

// RegisterCustomerRequest carries the public registration input.
type RegisterCustomerRequest struct {
	Name     string
	Email    string
	Password string
	Phones   []RegisterPhone
}

// RegisterCustomer creates a new customer account with its initial phone
// numbers. Registration is the one operation without a permission check:
// there is no acting user yet. All phones must validate before anything is
// persisted.
func (s *Service) RegisterCustomer(ctx context.Context, req RegisterCustomerRequest) (*models.Customer, error) {
	log.Info().Str("email", req.Email).Msg("registering customer")

	customer, err := models.NewCustomer(req.Name, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	phones := make([]*models.Phone, 0, len(req.Phones))
	for _, p := range req.Phones {
		phone, err := models.NewPhone(customer.ID, customer.Role, p.Type, p.Number, p.IsWhatsapp)
		if err != nil {
			return nil, err
		}

		phones = append(phones, phone)
	}

	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, err
	}

	for _, phone := range phones {
		if err := s.phones.Create(ctx, phone); err != nil {
			return nil, err
		}
	}

	log.Info().Str("customer_id", customer.ID).Int("phones", len(phones)).
		Msg("customer registered")

	return customer, nil
}

// Me is the profile view of the acting user, whichever table it lives in.
type Me struct {
	ID    string
	Name  string
	Email string
	Role  models.Role
}

// GetMe returns the acting user's own profile after a GET check on the ME
// subject.
func (s *Service) GetMe(ctx context.Context, currentUserID string) (*Me, error) {
	me, subject, err := s.findMe(ctx, currentUserID)
	if err != nil {
		return nil, err
	}

	check := policy.Check{UserID: currentUserID, Action: ability.ActionGet, Subject: subject}
	if err := s.policy.VerifyAbilities(ctx, check); err != nil {
		return nil, err
	}

	return me, nil
}

func (s *Service) findMe(ctx context.Context, userID string) (*Me, ability.Subject, error) {
	admin, err := s.admins.FindByID(ctx, userID)
	if err == nil {
		subject, err := ability.MeSubject(admin)
		if err != nil {
			return nil, ability.Subject{}, err
		}

		return &Me{ID: admin.ID, Name: admin.Name, Email: admin.Email, Role: admin.Role}, subject, nil
	}
	if !errors.Is(err, adminctl.ErrAdminNotFound) {
		return nil, ability.Subject{}, err
	}

	customer, err := s.customers.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, customerctl.ErrCustomerNotFound) {
			return nil, ability.Subject{}, errors.Wrapf(policy.ErrResourceNotFound, "user %q", userID)
		}
		return nil, ability.Subject{}, err
	}

	subject, err := ability.MeSubject(customer)
	if err != nil {
		return nil, ability.Subject{}, err
	}

	return &Me{ID: customer.ID, Name: customer.Name, Email: customer.Email, Role: customer.Role}, subject, nil
}

// GetCustomer returns a customer record after a GET check on the CUSTOMER
// subject. Customers can only fetch themselves; admins can fetch anyone.
func (s *Service) GetCustomer(ctx context.Context, currentUserID, customerID string) (*models.Customer, error) {
	target, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, customerctl.ErrCustomerNotFound) {
			return nil, errors.Wrapf(policy.ErrResourceNotFound, "customer %q", customerID)
		}
		return nil, err
	}

	subject, err := ability.CustomerSubject(target)
	if err != nil {
		return nil, err
	}

	check := policy.Check{UserID: currentUserID, Action: ability.ActionGet, Subject: subject}
	if err := s.policy.VerifyAbilities(ctx, check); err != nil {
		return nil, err
	}

	return target, nil
}

// ListCustomers returns every customer. The check runs against a bare
// CUSTOMER subject with no fields, so only rules without conditions grant
// it; in the default registry that means admins only.
func (s *Service) ListCustomers(ctx context.Context, currentUserID string) ([]models.Customer, error) {
	check := policy.Check{
		UserID:  currentUserID,
		Action:  ability.ActionGet,
		Subject: ability.Subject{Type: ability.SubjectCustomer},
	}
	if err := s.policy.VerifyAbilities(ctx, check); err != nil {
		return nil, err
	}

	return s.customers.List(ctx)
}

// UploadAttachmentRequest carries the metadata of an uploaded file. The
// bytes live in an external store; this core tracks title and URL only.
type UploadAttachmentRequest struct {
	CurrentUserID string
	Title         string
	URL           string
}

// UploadAttachment records an uploaded file after an UPLOAD check on the
// ATTACHMENT subject.
func (s *Service) UploadAttachment(ctx context.Context, req UploadAttachmentRequest) (*models.Attachment, error) {
	check := policy.Check{
		UserID:  req.CurrentUserID,
		Action:  ability.ActionUpload,
		Subject: ability.Subject{Type: ability.SubjectAttachment},
	}
	if err := s.policy.VerifyAbilities(ctx, check); err != nil {
		return nil, err
	}

	attachment, err := models.NewAttachment(req.Title, req.URL)
	if err != nil {
		return nil, err
	}

	if err := s.attachments.Create(ctx, attachment); err != nil {
		return nil, err
	}

	log.Info().Str("attachment_id", attachment.ID).Str("title", attachment.Title).
		Msg("attachment uploaded")

	return attachment, nil
}
