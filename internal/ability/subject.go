package ability

// SubjectType discriminates which entity kind a subject or rule refers to.
type SubjectType string

const (
	// SubjectAll is the wildcard subject type. A rule scoped to it applies
	// to every subject; a subject of this literal type only matches rules
	// scoped to it.
	SubjectAll SubjectType = "all"

	// SubjectMe is the acting user's own account, whichever table it lives in.
	SubjectMe SubjectType = "ME"
	// SubjectAdmin is an admin account.
	SubjectAdmin SubjectType = "ADMIN"
	// SubjectCustomer is a customer account.
	SubjectCustomer SubjectType = "CUSTOMER"
	// SubjectPhone is a phone number record.
	SubjectPhone SubjectType = "PHONE"
	// SubjectAttachment is an uploaded attachment.
	SubjectAttachment SubjectType = "ATTACHMENT"
	// SubjectCustomerVehicle is a customer's vehicle.
	SubjectCustomerVehicle SubjectType = "CUSTOMER_VEHICLE"
	// SubjectVehicleBreakdown is a breakdown filed against a vehicle.
	SubjectVehicleBreakdown SubjectType = "VEHICLE_BREAKDOWN"
	// SubjectNotification is a notification record.
	SubjectNotification SubjectType = "NOTIFICATION"
)

// SubjectTypes lists every projectable subject type. Bootstrap validation
// checks each one against the projector registry.
func SubjectTypes() []SubjectType {
	return []SubjectType{
		SubjectMe,
		SubjectAdmin,
		SubjectCustomer,
		SubjectPhone,
		SubjectAttachment,
		SubjectCustomerVehicle,
		SubjectVehicleBreakdown,
		SubjectNotification,
	}
}

// Subject is a flat projection of a domain entity: a type discriminator
// plus the scalar fields rule conditions may compare against. Ids are
// stringified and nested values flattened, so condition matching is plain
// string equality.
type Subject struct {
	Type   SubjectType
	Fields map[string]string
}

// All is the literal "all" subject. It matches only rules scoped to
// SubjectAll.
func All() Subject {
	return Subject{Type: SubjectAll}
}
