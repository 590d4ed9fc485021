package store

import (
	"movie-theater/internal/data/entity"

	"go.uber.org/zap"
)

func (s *Store) Messages() []entity.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]entity.Message(nil), s.messages...)
}

func (s *Store) UnreadMessageCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, m := range s.messages {
		if !m.Read {
			n++
		}
	}
	return n
}

// AddMessage appends msg with a new "M<ms>" id, the current timestamp and
// read=false. Messages are not persisted.
func (s *Store) AddMessage(msg entity.Message) entity.Message {
	s.mu.Lock()
	msg.ID = s.ids.next(prefixMessage, s.now(), s.messageExists)
	msg.Timestamp = s.timestamp()
	msg.Read = false
	s.messages = append(s.messages, msg)
	s.mu.Unlock()

	s.log.Debug("Message added", zap.String("message_id", msg.ID), zap.String("sender", string(msg.Sender)))
	s.notify(Change{Collection: CollectionMessages, Op: OpAdd, ID: msg.ID})
	return msg
}

func (s *Store) MarkMessageAsRead(id string) bool {
	s.mu.Lock()
	i := s.messageIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	s.messages[i].Read = true
	s.mu.Unlock()

	s.notify(Change{Collection: CollectionMessages, Op: OpUpdate, ID: id})
	return true
}

func (s *Store) messageIndex(id string) int {
	for i := range s.messages {
		if s.messages[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) messageExists(id string) bool {
	return s.messageIndex(id) >= 0
}
