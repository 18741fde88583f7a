package model

import "time"

// Role identifies the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// DefaultTitle is the placeholder title of a chat that has no messages yet.
// It is replaced by a title derived from the first user message.
const DefaultTitle = "New Chat"

// Message is a single turn in a chat. Messages are immutable once created.
type Message struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Role      Role      `json:"role"`
	Timestamp time.Time `json:"timestamp"`
}

// Chat is one conversation thread. Messages is append-only; its order is
// authoritative and chronological.
type Chat struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Messages  []Message `json:"messages"`
	CreatedAt time.Time `json:"createdAt"`
}

// User is the identity record produced by the login flow. It is only used
// for message attribution and greeting text, never for authorization.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// NotificationSettings controls which notification channels are enabled.
type NotificationSettings struct {
	Email bool `json:"email"`
	Push  bool `json:"push"`
	Sound bool `json:"sound"`
}

// ChatSettings holds conversation UI preferences.
type ChatSettings struct {
	FontSize       string `json:"fontSize" validate:"required,oneof=small medium large"`
	ShowTimestamps bool   `json:"showTimestamps"`
	AutoSave       bool   `json:"autoSave"`
	EnterToSend    bool   `json:"enterToSend"`
}

// PrivacySettings holds the user's data handling preferences.
type PrivacySettings struct {
	SaveHistory bool `json:"saveHistory"`
	ShareData   bool `json:"shareData"`
	Analytics   bool `json:"analytics"`
}

// Settings is the full application configuration persisted for the user.
type Settings struct {
	Language      string               `json:"language" validate:"required"`
	Notifications NotificationSettings `json:"notifications"`
	Chat          ChatSettings         `json:"chat"`
	Privacy       PrivacySettings      `json:"privacy"`
}

// DefaultSettings returns the settings applied when nothing is persisted yet.
func DefaultSettings() *Settings {
	return &Settings{
		Language: "en",
		Notifications: NotificationSettings{
			Email: true,
			Push:  true,
			Sound: false,
		},
		Chat: ChatSettings{
			FontSize:       "medium",
			ShowTimestamps: true,
			AutoSave:       true,
			EnterToSend:    true,
		},
		Privacy: PrivacySettings{
			SaveHistory: true,
			ShareData:   false,
			Analytics:   true,
		},
	}
}

// ExportBundle is the user-triggered data download. Write-only: there is no
// corresponding import path.
type ExportBundle struct {
	User       *User     `json:"user"`
	Settings   *Settings `json:"settings"`
	Chats      []*Chat   `json:"chats"`
	ExportDate time.Time `json:"exportDate"`
}
