package response

import "movie-theater/internal/data/entity"

type MessageListResponse struct {
	Messages    []entity.Message `json:"messages"`
	UnreadCount int              `json:"unreadCount"`
}

type NotificationListResponse struct {
	Notifications []entity.Notification `json:"notifications"`
	UnreadCount   int                   `json:"unreadCount"`
}
