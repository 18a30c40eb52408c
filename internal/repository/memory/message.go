package memory

import (
	"time"

	"github.com/carelink/carelink-api/internal/model"
)

type MessageRepository struct {
	s *Store
}

func NewMessageRepository(s *Store) *MessageRepository {
	return &MessageRepository{s: s}
}

// FindByUserID returns every message the user sent or received, in insertion order
func (r *MessageRepository) FindByUserID(userID string) []*model.Message {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []*model.Message
	for _, m := range r.s.messages {
		if m.SenderID == userID || m.ReceiverID == userID {
			out = append(out, m)
		}
	}
	return out
}

func (r *MessageRepository) Create(message *model.Message) *model.Message {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored := *message
	stored.ID = r.s.ids.Next("msg")
	stored.IsRead = false
	stored.CreatedAt = time.Now().UTC()
	r.s.messages = append(r.s.messages, &stored)
	r.s.persistMessages()
	return &stored
}

func (r *MessageRepository) GetAll() []*model.Message {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return append([]*model.Message(nil), r.s.messages...)
}
