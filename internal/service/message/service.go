package message

import (
	"sort"
	"strings"

	"github.com/carelink/carelink-api/internal/model"
	"github.com/carelink/carelink-api/internal/repository"
	apperr "github.com/carelink/carelink-api/pkg/errors"
)

type Service struct {
	messages repository.MessageRepository
	users    repository.UserRepository
}

func NewService(messages repository.MessageRepository, users repository.UserRepository) *Service {
	return &Service{messages: messages, users: users}
}

// ListForUser returns every message the actor sent or received, joined with
// both display names, newest first.
func (s *Service) ListForUser(actor *model.AuthUser) ([]*model.MessageView, error) {
	views := []*model.MessageView{}
	for _, m := range s.messages.FindByUserID(actor.ID) {
		views = append(views, s.view(m))
	}

	sort.SliceStable(views, func(i, j int) bool {
		return views[i].CreatedAt.After(views[j].CreatedAt)
	})
	return views, nil
}

// Send records a message from the actor to another user
func (s *Service) Send(actor *model.AuthUser, req *model.SendMessageRequest) (*model.MessageView, error) {
	body := strings.TrimSpace(req.Message)
	if body == "" {
		return nil, apperr.BadRequest("receiver ID and message are required", nil)
	}

	created := s.messages.Create(&model.Message{
		SenderID:   actor.ID,
		ReceiverID: req.ReceiverID,
		Message:    body,
	})
	return s.view(created), nil
}

func (s *Service) view(m *model.Message) *model.MessageView {
	return &model.MessageView{
		Message:      *m,
		SenderName:   s.userName(m.SenderID),
		ReceiverName: s.userName(m.ReceiverID),
	}
}

func (s *Service) userName(id string) string {
	user, err := s.users.FindByID(id)
	if err != nil {
		return "Unknown"
	}
	return user.Name
}
