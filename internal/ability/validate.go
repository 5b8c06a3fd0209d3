package ability

import "github.com/pkg/errors"

// projected lists the subject types the projectors in project.go produce.
// Keep it in sync when adding a subject type; ValidateProjectors catches a
// miss at bootstrap instead of at request time.
var projected = map[SubjectType]bool{
	SubjectMe:               true,
	SubjectAdmin:            true,
	SubjectCustomer:         true,
	SubjectPhone:            true,
	SubjectAttachment:       true,
	SubjectCustomerVehicle:  true,
	SubjectVehicleBreakdown: true,
	SubjectNotification:     true,
}

// ValidateProjectors checks that every declared subject type has a
// projector. It runs during startup validation alongside
// Registry.Validate.
func ValidateProjectors() error {
	for _, t := range SubjectTypes() {
		if !projected[t] {
			return errors.Wrapf(ErrMapping, "no projector for subject type %q", t)
		}
	}

	return nil
}
