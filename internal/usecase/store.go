package usecase

import (
	"sync"

	"github.com/heisenbergtrx/barbarians-telegram-bot/internal/domain"
)

// ConversationStore keeps each applicant's in-flight conversation in
// memory, keyed by applicant ID. Nothing survives a process restart.
type ConversationStore struct {
	mu            sync.Mutex
	conversations map[int64]*domain.Conversation
}

// NewConversationStore builds an empty store.
func NewConversationStore() *ConversationStore {
	return &ConversationStore{conversations: map[int64]*domain.Conversation{}}
}

// Begin starts a fresh conversation for the applicant, discarding any
// partial record left over from a previous attempt.
func (s *ConversationStore) Begin(applicant domain.Applicant, chatID int64) *domain.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv := &domain.Conversation{
		Applicant: applicant,
		ChatID:    chatID,
		Pending:   domain.QuestionName,
		Record:    domain.Record{},
	}
	s.conversations[applicant.ID] = conv
	return conv
}

// Get returns the live conversation for the applicant, or nil.
func (s *ConversationStore) Get(applicantID int64) *domain.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conversations[applicantID]
}

// End discards the applicant's conversation, if any.
func (s *ConversationStore) End(applicantID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.conversations, applicantID)
}
