package ability

import "github.com/GeovaneMT/LavaCar/internal/db/models"

// DefaultRegistry returns the production permission definitions.
//
// Declaration order is load-bearing: the admin definition opens with a
// blanket grant, revokes whole subject types, then re-opens scoped
// subsets. The evaluator's last-match-wins semantics turn that sequence
// into "deny by default, re-grant a subset".
func DefaultRegistry() Registry {
	return Registry{
		models.RoleAdmin:    adminPermissions,
		models.RoleCustomer: customerPermissions,
	}
}

func adminPermissions(admin Actor, b *Builder) {
	b.Can([]Action{ActionManage}, SubjectAll)

	// Admins never touch another admin's account through the generic
	// surface; only their own, and only to read or edit it.
	b.Cannot([]Action{ActionManage}, SubjectMe)
	b.Can([]Action{ActionGet, ActionUpdate}, SubjectMe, Conditions{"id": admin.ID})

	// Phones: own phones plus any customer's phones, nothing else.
	b.Cannot([]Action{ActionManage}, SubjectPhone)
	b.Can([]Action{ActionManage}, SubjectPhone, Conditions{"userId": admin.ID})
	b.Can([]Action{ActionManage}, SubjectPhone, Conditions{"userRole": models.RoleCustomer.String()})

	// Notifications: send to self or to customers, read only their own.
	b.Cannot([]Action{ActionSend}, SubjectNotification)
	b.Can([]Action{ActionSend}, SubjectNotification, Conditions{"recipientId": admin.ID})
	b.Can([]Action{ActionSend}, SubjectNotification, Conditions{"recipientRole": models.RoleCustomer.String()})

	b.Cannot([]Action{ActionRead}, SubjectNotification)
	b.Can([]Action{ActionRead}, SubjectNotification, Conditions{"recipientId": admin.ID})
}

func customerPermissions(customer Actor, b *Builder) {
	b.Can([]Action{ActionManage}, SubjectPhone, Conditions{"userId": customer.ID})

	b.Can([]Action{ActionGet}, SubjectMe, Conditions{"id": customer.ID})
	b.Can([]Action{ActionGet}, SubjectCustomer, Conditions{"id": customer.ID})

	b.Can([]Action{ActionGet, ActionCreate}, SubjectCustomerVehicle, Conditions{"customerId": customer.ID})
	b.Can([]Action{ActionGet, ActionCreate}, SubjectVehicleBreakdown, Conditions{"ownerId": customer.ID})

	b.Can([]Action{ActionGet, ActionUpload}, SubjectAttachment)

	b.Can([]Action{ActionSend}, SubjectNotification, Conditions{"recipientId": customer.ID})
	b.Can([]Action{ActionRead}, SubjectNotification, Conditions{"recipientId": customer.ID})
}
