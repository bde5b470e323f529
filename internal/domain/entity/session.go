package entity

// SessionState состояние просмотра датасета в чате
type SessionState string

const (
	StateIdle     SessionState = "idle"     // просмотр не начат
	StateBrowsing SessionState = "browsing" // пользователь листает датасет
)

// Session курсор просмотра датасета для одного чата
type Session struct {
	ChatID int64        // Telegram Chat ID
	Cursor int          // текущий индекс в датасете
	State  SessionState // текущее состояние
}

// NewSession создаёт сессию в начальном состоянии
func NewSession(chatID int64) *Session {
	return &Session{
		ChatID: chatID,
		State:  StateIdle,
	}
}

// MoveTo ставит курсор на индекс и переводит сессию в просмотр
func (s *Session) MoveTo(index int) {
	s.Cursor = index
	s.State = StateBrowsing
}

// Reset возвращает сессию в начальное состояние
func (s *Session) Reset() {
	s.Cursor = 0
	s.State = StateIdle
}
