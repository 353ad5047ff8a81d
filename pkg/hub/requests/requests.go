package requests

import "github.com/certhub/certhub/pkg/models"

type Register struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	FullName string      `json:"fullName"`
	Role     models.Role `json:"role"`
}

type Login struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfile struct {
	FullName string `json:"fullName"`
}

type CreateEvent struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	EventDate   string `json:"eventDate"`
}

// UpdateEvent is a partial update; absent fields are left as stored.
type UpdateEvent struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	EventDate   *string `json:"eventDate,omitempty"`
}

type IssueCertificate struct {
	EventId     string `json:"eventId"`
	RecipientId string `json:"recipientId,omitempty"`
}

type UpdateDelivery struct {
	Status models.DeliveryStatus `json:"status"`
}
