package responses

import "github.com/certhub/certhub/pkg/models"

type Stats struct {
	TotalEvents       int `json:"totalEvents"`
	TotalCertificates int `json:"totalCertificates"`
	PendingDelivery   int `json:"pendingDelivery"`
}

type Verification struct {
	Valid       bool                `json:"valid"`
	Certificate *models.Certificate `json:"certificate,omitempty"`
}
