package client

import "time"

// Order statuses accepted by the back office.
const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// ValidStatus reports whether s is one of the known order statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusProcessing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Package struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Features    []string  `json:"features,omitempty"`
	IsPopular   bool      `json:"isPopular,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

type Order struct {
	ID                   string    `json:"id,omitempty"`
	Name                 string    `json:"name"`
	Phone                string    `json:"phone"`
	Email                string    `json:"email,omitempty"`
	Address              string    `json:"address"`
	PackageID            string    `json:"packageId,omitempty"`
	PackageName          string    `json:"packageName,omitempty"`
	Total                float64   `json:"total"`
	PickupDate           string    `json:"pickupDate"`
	PreferredTime        string    `json:"preferredTime,omitempty"`
	SpecialInstructions  string    `json:"specialInstructions,omitempty"`
	WantsWhatsAppUpdates bool      `json:"wantsWhatsappUpdates,omitempty"`
	Status               string    `json:"status,omitempty"`
	CreatedAt            time.Time `json:"createdAt,omitempty"`
	UpdatedAt            time.Time `json:"updatedAt,omitempty"`
}

type ChatMessage struct {
	ID        string    `json:"id,omitempty"`
	Sender    string    `json:"sender"`
	Recipient string    `json:"recipient"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp,omitempty"`
	IsRead    bool      `json:"isRead"`
	IsBot     bool      `json:"isBot,omitempty"`
}

type AdminUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Session is the payload returned by a successful admin login.
type Session struct {
	Token string    `json:"token"`
	User  AdminUser `json:"user"`
}
