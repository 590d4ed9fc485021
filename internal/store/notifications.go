package store

import (
	"movie-theater/internal/data/entity"

	"go.uber.org/zap"
)

func (s *Store) Notifications() []entity.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]entity.Notification(nil), s.notifications...)
}

func (s *Store) UnreadNotificationCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, item := range s.notifications {
		if !item.Read {
			n++
		}
	}
	return n
}

// AddNotification appends n with a new "N<ms>" id, the current timestamp
// and read=false. Notifications are not persisted.
func (s *Store) AddNotification(n entity.Notification) entity.Notification {
	s.mu.Lock()
	n.ID = s.ids.next(prefixNotification, s.now(), s.notificationExists)
	n.Timestamp = s.timestamp()
	n.Read = false
	s.notifications = append(s.notifications, n)
	s.mu.Unlock()

	s.log.Debug("Notification added", zap.String("notification_id", n.ID), zap.String("type", string(n.Type)))
	s.notify(Change{Collection: CollectionNotifications, Op: OpAdd, ID: n.ID})
	return n
}

func (s *Store) MarkNotificationAsRead(id string) bool {
	s.mu.Lock()
	i := s.notificationIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	s.notifications[i].Read = true
	s.mu.Unlock()

	s.notify(Change{Collection: CollectionNotifications, Op: OpUpdate, ID: id})
	return true
}

// MarkAllNotificationsAsRead flips every read flag, already read or not.
func (s *Store) MarkAllNotificationsAsRead() {
	s.mu.Lock()
	for i := range s.notifications {
		s.notifications[i].Read = true
	}
	s.mu.Unlock()

	s.notify(Change{Collection: CollectionNotifications, Op: OpUpdate})
}

func (s *Store) notificationIndex(id string) int {
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) notificationExists(id string) bool {
	return s.notificationIndex(id) >= 0
}
