package domain

// Event is a group of participants logging shared expenses.
type Event struct {
	EventID         string `json:"eventID"`
	OwnerUserID     string `json:"ownerUserID"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	DefaultCurrency string `json:"defaultCurrency"`
	IsActive        bool   `json:"isActive"`
	AuditFields
}
