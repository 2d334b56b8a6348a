package domain

import "time"

type LeadStatus string

const (
	LeadNew       LeadStatus = "new"
	LeadContacted LeadStatus = "contacted"
	LeadConverted LeadStatus = "converted"
)

type ServiceType string

const (
	ServiceWindowReplacement ServiceType = "window_replacement"
	ServiceDoorInstallation  ServiceType = "door_installation"
	ServiceRoofRepair        ServiceType = "roof_repair"
)

// Lead is a prospective-customer contact captured from the public site.
type Lead struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Phone     string      `json:"phone,omitempty"`
	Service   ServiceType `json:"service"`
	Status    LeadStatus  `json:"status"`
	IsActive  bool        `json:"is_active"`
	CreatedAt time.Time   `json:"created_at"`
}

func (s LeadStatus) Valid() bool {
	switch s {
	case LeadNew, LeadContacted, LeadConverted:
		return true
	}
	return false
}

func (s ServiceType) Valid() bool {
	switch s {
	case ServiceWindowReplacement, ServiceDoorInstallation, ServiceRoofRepair:
		return true
	}
	return false
}
