package ability

import (
	"github.com/pkg/errors"

	"github.com/GeovaneMT/LavaCar/internal/db/models"
)

// Project maps a domain entity onto the subject record the evaluator can
// inspect. The entity's concrete type picks the discriminator; unknown or
// malformed input (nil pointer, missing id) fails with ErrMapping, which
// callers treat as a programming error.
//
// Admin and Customer entities project onto their account subject types.
// Use MeSubject to project either account kind onto SubjectMe instead,
// which is how a user's own profile is matched.
func Project(entity any) (Subject, error) {
	switch e := entity.(type) {
	case *models.Admin:
		return AdminSubject(e)
	case *models.Customer:
		return CustomerSubject(e)
	case *models.Phone:
		return PhoneSubject(e)
	case *models.Attachment:
		return AttachmentSubject(e)
	case *models.CustomerVehicle:
		return CustomerVehicleSubject(e)
	case *models.VehicleBreakdown:
		return VehicleBreakdownSubject(e)
	case *models.Notification:
		return NotificationSubject(e)
	default:
		return Subject{}, errors.Wrapf(ErrMapping, "unsupported entity %T", entity)
	}
}

// MeSubject projects an admin or customer onto SubjectMe, the subject type
// rules about "the acting user's own account" are scoped to.
func MeSubject(entity any) (Subject, error) {
	switch e := entity.(type) {
	case *models.Admin:
		if err := checkID(e == nil, e, func() string { return e.ID }); err != nil {
			return Subject{}, err
		}
		return me(e.ID, e.Role), nil
	case *models.Customer:
		if err := checkID(e == nil, e, func() string { return e.ID }); err != nil {
			return Subject{}, err
		}
		return me(e.ID, e.Role), nil
	default:
		return Subject{}, errors.Wrapf(ErrMapping, "unsupported entity %T", entity)
	}
}

func me(id string, role models.Role) Subject {
	return Subject{
		Type: SubjectMe,
		Fields: map[string]string{
			"id":   id,
			"role": role.String(),
		},
	}
}

// AdminSubject projects an admin account.
func AdminSubject(admin *models.Admin) (Subject, error) {
	if err := checkID(admin == nil, admin, func() string { return admin.ID }); err != nil {
		return Subject{}, err
	}

	return Subject{
		Type: SubjectAdmin,
		Fields: map[string]string{
			"id":   admin.ID,
			"role": admin.Role.String(),
		},
	}, nil
}

// CustomerSubject projects a customer account.
func CustomerSubject(customer *models.Customer) (Subject, error) {
	if err := checkID(customer == nil, customer, func() string { return customer.ID }); err != nil {
		return Subject{}, err
	}

	return Subject{
		Type: SubjectCustomer,
		Fields: map[string]string{
			"id":   customer.ID,
			"role": customer.Role.String(),
		},
	}, nil
}

// PhoneSubject projects a phone record. The owner's id and role are the
// fields phone rules condition on.
func PhoneSubject(phone *models.Phone) (Subject, error) {
	if err := checkID(phone == nil, phone, func() string { return phone.ID }); err != nil {
		return Subject{}, err
	}

	return Subject{
		Type: SubjectPhone,
		Fields: map[string]string{
			"id":       phone.ID,
			"userId":   phone.UserID,
			"userRole": phone.UserRole.String(),
		},
	}, nil
}

// AttachmentSubject projects an uploaded attachment.
func AttachmentSubject(attachment *models.Attachment) (Subject, error) {
	if err := checkID(attachment == nil, attachment, func() string { return attachment.ID }); err != nil {
		return Subject{}, err
	}

	return Subject{
		Type:   SubjectAttachment,
		Fields: map[string]string{"id": attachment.ID},
	}, nil
}

// CustomerVehicleSubject projects a customer vehicle.
func CustomerVehicleSubject(vehicle *models.CustomerVehicle) (Subject, error) {
	if err := checkID(vehicle == nil, vehicle, func() string { return vehicle.ID }); err != nil {
		return Subject{}, err
	}

	return Subject{
		Type: SubjectCustomerVehicle,
		Fields: map[string]string{
			"id":         vehicle.ID,
			"customerId": vehicle.CustomerID,
		},
	}, nil
}

// VehicleBreakdownSubject projects a vehicle breakdown.
func VehicleBreakdownSubject(breakdown *models.VehicleBreakdown) (Subject, error) {
	if err := checkID(breakdown == nil, breakdown, func() string { return breakdown.ID }); err != nil {
		return Subject{}, err
	}

	return Subject{
		Type: SubjectVehicleBreakdown,
		Fields: map[string]string{
			"id":        breakdown.ID,
			"ownerId":   breakdown.OwnerID,
			"vehicleId": breakdown.VehicleID,
		},
	}, nil
}

// NotificationSubject projects a notification.
func NotificationSubject(notification *models.Notification) (Subject, error) {
	if err := checkID(notification == nil, notification, func() string { return notification.ID }); err != nil {
		return Subject{}, err
	}

	return Subject{
		Type: SubjectNotification,
		Fields: map[string]string{
			"id":            notification.ID,
			"recipientId":   notification.RecipientID,
			"recipientRole": notification.RecipientRole.String(),
		},
	}, nil
}

// checkID guards a projector against nil pointers and rows without an id.
// The id getter runs only when the pointer is non-nil.
func checkID(isNil bool, entity any, id func() string) error {
	if isNil {
		return errors.Wrapf(ErrMapping, "nil %T", entity)
	}

	if id() == "" {
		return errors.Wrapf(ErrMapping, "%T without id", entity)
	}

	return nil
}
