package storage

import (
	"context"
	"sync"

	"facemask/internal/domain/entity"
	"facemask/internal/domain/port"
)

// MemorySessionRepository in-memory хранилище сессий просмотра
type MemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[int64]entity.Session
}

// NewMemorySessionRepository создаёт новое in-memory хранилище
func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{
		sessions: make(map[int64]entity.Session),
	}
}

// Get возвращает копию сессии чата, создаёт новую если не найдена
func (r *MemorySessionRepository) Get(ctx context.Context, chatID int64) (*entity.Session, error) {
	r.mu.RLock()
	session, exists := r.sessions[chatID]
	r.mu.RUnlock()

	if exists {
		return &session, nil
	}

	// Создаём новую сессию
	newSession := entity.NewSession(chatID)

	r.mu.Lock()
	r.sessions[chatID] = *newSession
	r.mu.Unlock()

	return newSession, nil
}

// Save сохраняет сессию
func (r *MemorySessionRepository) Save(ctx context.Context, session *entity.Session) error {
	r.mu.Lock()
	r.sessions[session.ChatID] = *session
	r.mu.Unlock()

	return nil
}

// Delete удаляет сессию чата
func (r *MemorySessionRepository) Delete(ctx context.Context, chatID int64) error {
	r.mu.Lock()
	delete(r.sessions, chatID)
	r.mu.Unlock()

	return nil
}

// Проверка реализации интерфейса
var _ port.SessionRepository = (*MemorySessionRepository)(nil)
