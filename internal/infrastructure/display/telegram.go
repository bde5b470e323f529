package display

import (
	"bytes"
	"context"
	"fmt"
	"image"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/nfnt/resize"

	"facemask/internal/domain/port"
)

// MaxTelegramSide наибольшая сторона отправляемого фото.
const MaxTelegramSide = 2560

// Sender часть tgbotapi.BotAPI, нужная для отправки.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Telegram отправляет картинку фотографией в чат.
type Telegram struct {
	api    Sender
	chatID int64
}

// NewTelegram создаёт display для чата chatID
func NewTelegram(api Sender, chatID int64) *Telegram {
	return &Telegram{api: api, chatID: chatID}
}

// Show уменьшает картинку до лимита Telegram и отправляет её с подписью title
func (t *Telegram) Show(ctx context.Context, img image.Image, title string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b := img.Bounds()
	if b.Dx() > MaxTelegramSide || b.Dy() > MaxTelegramSide {
		img = resize.Thumbnail(MaxTelegramSide, MaxTelegramSide, img, resize.Bilinear)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, img, FormatJPEG); err != nil {
		return fmt.Errorf("encode photo: %w", err)
	}

	photo := tgbotapi.NewPhoto(t.chatID, tgbotapi.FileBytes{Name: "render.jpg", Bytes: buf.Bytes()})
	photo.Caption = title
	if _, err := t.api.Send(photo); err != nil {
		return fmt.Errorf("send photo: %w", err)
	}
	return nil
}

// Проверка реализации интерфейса
var _ port.Display = (*Telegram)(nil)
