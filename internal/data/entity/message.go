package entity

type MessageSender string

const (
	SenderUser    MessageSender = "user"
	SenderSupport MessageSender = "support"
)

type Message struct {
	ID        string        `json:"id"`
	Sender    MessageSender `json:"sender"`
	Content   string        `json:"content"`
	Timestamp string        `json:"timestamp"`
	Read      bool          `json:"read"`
	Avatar    string        `json:"avatar,omitempty"`
}
