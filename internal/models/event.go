package models

// Event is a row of the events table.
type Event struct {
	EventID         string  `json:"eventID"`
	OwnerUserID     string  `json:"ownerUserID"`
	Name            string  `json:"name"`
	Description     *string `json:"description"`
	DefaultCurrency string  `json:"defaultCurrency"`
	IsActive        bool    `json:"isActive"`
	AuditFields
}
