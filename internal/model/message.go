package model

import "time"

// Message is a direct message between two user accounts. IsRead is persisted
// but no endpoint marks messages read yet.
type Message struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	Message    string    `json:"message"`
	IsRead     bool      `json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`
}

type SendMessageRequest struct {
	ReceiverID string `json:"receiver_id" binding:"required"`
	Message    string `json:"message" binding:"required"`
}

// MessageView is a Message joined with sender and receiver names
type MessageView struct {
	Message
	SenderName   string `json:"sender_name"`
	ReceiverName string `json:"receiver_name"`
}
