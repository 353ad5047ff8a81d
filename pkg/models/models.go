package models

import "time"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}

type DeliveryStatus string

const (
	DeliveryPending   DeliveryStatus = "pending"
	DeliverySent      DeliveryStatus = "sent"
	DeliveryDelivered DeliveryStatus = "delivered"
)

func (d DeliveryStatus) IsValid() bool {
	return d == DeliveryPending || d == DeliverySent || d == DeliveryDelivered
}

type Account struct {
	Id        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Credentials maps account email to its plaintext secret. This is a bare
// lookup table, only acceptable for a demonstration deployment.
type Credentials map[string]string

type Event struct {
	Id          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EventDate   string    `json:"eventDate"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Certificate struct {
	Id                string         `json:"id"`
	EventId           string         `json:"eventId"`
	UserId            string         `json:"userId"`
	CertificateNumber string         `json:"certificateNumber"`
	IssuedAt          time.Time      `json:"issuedAt"`
	Verified          bool           `json:"verified"`
	DeliveryStatus    DeliveryStatus `json:"deliveryStatus"`
	// EventTitle is denormalized at issuance time so the certificate stays
	// presentable after its event is edited or deleted.
	EventTitle string `json:"eventTitle,omitempty"`
}
