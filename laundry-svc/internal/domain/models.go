package domain

import "time"

const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

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
	ID                   string    `json:"id"`
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
	Status               string    `json:"status"`
	QRCode               string    `json:"qrCode,omitempty"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt,omitempty"`
}

type ChatMessage struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"`
	Recipient string    `json:"recipient"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	IsRead    bool      `json:"isRead"`
	IsBot     bool      `json:"isBot,omitempty"`
}

type AdminUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type Session struct {
	Token string    `json:"token"`
	User  AdminUser `json:"user"`
}

// ChatEvent is what the Kafka publisher emits for every stored message.
type ChatEvent struct {
	Type    string      `json:"type"`
	Channel string      `json:"channel"`
	Message ChatMessage `json:"message"`
}
