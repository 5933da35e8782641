package store

import (
	"local.dev/lennysocial/internal/models"
)

// SendChatMessage appends a message; an empty body is a silent no-op.
func (s *Store) SendChatMessage(from, to, message string) (models.ChatMessage, bool, error) {
	message = sanitize(message)
	if message == "" {
		return models.ChatMessage{}, false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	m := models.ChatMessage{
		From:      from,
		To:        to,
		Message:   message,
		Timestamp: nowISO(),
	}
	s.doc.Chats = append(s.doc.Chats, m)
	if err := s.saveLocked(); err != nil {
		return models.ChatMessage{}, false, err
	}
	return m, true, nil
}

// ListConversation returns the messages between the unordered pair
// {userA, userB}, in insertion order.
func (s *Store) ListConversation(userA, userB string) []models.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ChatMessage, 0)
	for _, m := range s.doc.Chats {
		if (m.From == userA && m.To == userB) || (m.From == userB && m.To == userA) {
			out = append(out, m)
		}
	}
	return out
}

// UserChats returns every message the user sent or received, in insertion
// order.
func (s *Store) UserChats(username string) []models.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ChatMessage, 0)
	for _, m := range s.doc.Chats {
		if m.From == username || m.To == username {
			out = append(out, m)
		}
	}
	return out
}

// ChatPartners lists the distinct usernames the user has exchanged messages
// with, in first-contact order.
func (s *Store) ChatPartners(username string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := map[string]struct{}{}
	out := make([]string, 0)
	for _, m := range s.doc.Chats {
		other := ""
		switch {
		case m.From == username:
			other = m.To
		case m.To == username:
			other = m.From
		default:
			continue
		}
		if _, ok := seen[other]; ok {
			continue
		}
		seen[other] = struct{}{}
		out = append(out, other)
	}
	return out
}
