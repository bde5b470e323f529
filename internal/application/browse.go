package app

import (
	"context"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"facemask/internal/domain/entity"
	"facemask/internal/domain/port"
)

// BrowseService листает датасет по чатам, у каждого чата свой курсор.
type BrowseService struct {
	sessions   port.SessionRepository
	dataset    port.Dataset
	visualizer *VisualizerService
}

// BrowseOutput элемент датасета и его отрисовка.
type BrowseOutput struct {
	Entry    entity.Entry
	Rendered image.Image
	Caption  string
}

// NewBrowseService создаёт сервис просмотра.
func NewBrowseService(sessions port.SessionRepository, dataset port.Dataset, visualizer *VisualizerService) *BrowseService {
	return &BrowseService{
		sessions:   sessions,
		dataset:    dataset,
		visualizer: visualizer,
	}
}

// Show показывает элемент index и ставит на него курсор чата.
func (s *BrowseService) Show(ctx context.Context, chatID int64, index int) (*BrowseOutput, error) {
	session, err := s.sessions.Get(ctx, chatID)
	if err != nil {
		return nil, err
	}
	return s.showAt(ctx, session, index)
}

// Next показывает следующий элемент; после последнего идёт первый.
func (s *BrowseService) Next(ctx context.Context, chatID int64) (*BrowseOutput, error) {
	return s.step(ctx, chatID, 1)
}

// Prev показывает предыдущий элемент; перед первым идёт последний.
func (s *BrowseService) Prev(ctx context.Context, chatID int64) (*BrowseOutput, error) {
	return s.step(ctx, chatID, -1)
}

// Stop завершает просмотр.
func (s *BrowseService) Stop(ctx context.Context, chatID int64) error {
	return s.sessions.Delete(ctx, chatID)
}

func (s *BrowseService) step(ctx context.Context, chatID int64, delta int) (*BrowseOutput, error) {
	size := s.dataset.Size()
	if size == 0 {
		return nil, fmt.Errorf("%w: dataset is empty", entity.ErrIndexOutOfRange)
	}

	session, err := s.sessions.Get(ctx, chatID)
	if err != nil {
		return nil, err
	}

	index := 0
	if session.State == entity.StateBrowsing {
		index = ((session.Cursor+delta)%size + size) % size
	} else if delta < 0 {
		index = size - 1
	}
	return s.showAt(ctx, session, index)
}

func (s *BrowseService) showAt(ctx context.Context, session *entity.Session, index int) (*BrowseOutput, error) {
	entry, err := s.dataset.Get(index)
	if err != nil {
		return nil, err
	}

	caption := Caption(entry, s.dataset.Size())
	rendered, err := s.visualizer.ComposeEntry(entry, "", true)
	if err != nil {
		return nil, err
	}

	session.MoveTo(index)
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	return &BrowseOutput{Entry: entry, Rendered: rendered, Caption: caption}, nil
}

// Caption подпись элемента: позиция, имя файла и число объектов по классам.
func Caption(entry entity.Entry, total int) string {
	counts := make(map[entity.ClassLabel]int)
	for _, obj := range entry.Objects {
		counts[obj.Class]++
	}

	parts := make([]string, 0, len(counts))
	for _, c := range orderedClasses(counts) {
		parts = append(parts, fmt.Sprintf("%s: %d", c, counts[c]))
	}
	if len(parts) == 0 {
		parts = append(parts, "no objects")
	}

	return fmt.Sprintf("%d/%d %s\n%s", entry.Index+1, total, filepath.Base(entry.ImagePath), strings.Join(parts, ", "))
}
