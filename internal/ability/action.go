package ability

// Action is a verb token identifying an operation a rule grants or denies.
// The vocabulary is closed per subject type.
type Action string

const (
	// ActionManage is the wildcard action matching any other action.
	ActionManage Action = "manage"

	// ActionGet allows reading a record.
	ActionGet Action = "GET"
	// ActionCreate allows creating a record.
	ActionCreate Action = "CREATE"
	// ActionUpdate allows editing a record.
	ActionUpdate Action = "UPDATE"
	// ActionDelete allows deleting a record.
	ActionDelete Action = "DELETE"

	// ActionSend allows sending a notification.
	ActionSend Action = "SEND"
	// ActionRead allows marking a notification as read.
	ActionRead Action = "READ"
	// ActionUpload allows uploading an attachment.
	ActionUpload Action = "UPLOAD"
)
