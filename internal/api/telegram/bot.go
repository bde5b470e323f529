package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	app "facemask/internal/application"
	"facemask/internal/container"
	"facemask/internal/domain/entity"
	"facemask/internal/infrastructure/display"
)

const (
	msgStart = `👋 Привет! Я показываю изображения датасета с масками и рамки разметки.

📋 Команды:
/next — следующее изображение
/prev — предыдущее изображение
/show N — изображение с номером N
/stats — сводка по датасету
/stop — закончить просмотр
/help — справка`

	msgHelp = `ℹ️ Как пользоваться ботом:

1️⃣ Отправьте /next, чтобы начать просмотр с первого изображения
2️⃣ Листайте командами /next и /prev
3️⃣ /show N открывает изображение по номеру (с нуля)

🎨 Цвета рамок:
🟩 with_mask — маска надета
🟨 mask_weared_incorrect — маска надета неправильно
🟥 without_mask — маски нет`

	msgHint            = "📷 Отправьте /next, чтобы посмотреть изображение."
	msgStopped         = "⏹ Просмотр завершён. Отправьте /next, чтобы начать заново."
	msgUnknownCommand  = "❓ Неизвестная команда. Используйте /help для справки."
	msgBadIndex        = "⚠️ Укажите номер изображения: /show 0"
	msgIndexRange      = "⚠️ Номер вне диапазона. Допустимо от 0 до %d."
	msgEmptyDataset    = "📭 Датасет пуст."
	msgUnknownClass    = "⚠️ В разметке есть неизвестный класс, изображение не показано."
	msgProcessingError = "⚠️ Не удалось подготовить изображение."
)

// botAPI часть tgbotapi.BotAPI, которой пользуется бот
type botAPI interface {
	display.Sender
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// Bot представляет Telegram-бота
type Bot struct {
	api       botAPI
	container *container.Container
}

// NewBot создаёт нового бота
func NewBot(token string, c *container.Container) (*Bot, error) {
	if c.Browse == nil {
		return nil, errors.New("dataset is not loaded")
	}

	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Info().Str("account", api.Self.UserName).Msg("authorized")

	return newBot(api, c), nil
}

func newBot(api botAPI, c *container.Container) *Bot {
	return &Bot{api: api, container: c}
}

// Run запускает основной цикл обработки сообщений до отмены ctx
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	b.sendMessage(msg.Chat.ID, msgHint)
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	browse := b.container.Browse

	switch msg.Command() {
	case "start":
		b.sendMessage(chatID, msgStart)

	case "help":
		b.sendMessage(chatID, msgHelp)

	case "next":
		out, err := browse.Next(ctx, chatID)
		b.sendEntry(ctx, chatID, out, err)

	case "prev":
		out, err := browse.Prev(ctx, chatID)
		b.sendEntry(ctx, chatID, out, err)

	case "show":
		index, err := strconv.Atoi(strings.TrimSpace(msg.CommandArguments()))
		if err != nil {
			b.sendMessage(chatID, msgBadIndex)
			return
		}
		out, err := browse.Show(ctx, chatID, index)
		b.sendEntry(ctx, chatID, out, err)

	case "stats":
		stats, err := app.Summarize(b.container.Dataset)
		if err != nil {
			log.Error().Err(err).Msg("summarize dataset")
			b.sendMessage(chatID, msgProcessingError)
			return
		}
		b.sendMessage(chatID, formatStats(stats))

	case "stop":
		if err := browse.Stop(ctx, chatID); err != nil {
			log.Error().Err(err).Int64("chat", chatID).Msg("stop browsing")
		}
		b.sendMessage(chatID, msgStopped)

	default:
		b.sendMessage(chatID, msgUnknownCommand)
	}
}

// sendEntry отправляет отрисованный элемент или сообщение об ошибке
func (b *Bot) sendEntry(ctx context.Context, chatID int64, out *app.BrowseOutput, err error) {
	if err != nil {
		b.sendMessage(chatID, b.errorMessage(err))
		return
	}

	if err := display.NewTelegram(b.api, chatID).Show(ctx, out.Rendered, out.Caption); err != nil {
		log.Error().Err(err).Int64("chat", chatID).Int("index", out.Entry.Index).Msg("send entry")
		b.sendMessage(chatID, msgProcessingError)
	}
}

func (b *Bot) errorMessage(err error) string {
	size := b.container.Dataset.Size()
	switch {
	case errors.Is(err, entity.ErrIndexOutOfRange) && size == 0:
		return msgEmptyDataset
	case errors.Is(err, entity.ErrIndexOutOfRange):
		return fmt.Sprintf(msgIndexRange, size-1)
	case errors.Is(err, entity.ErrUnknownClass):
		return msgUnknownClass
	default:
		log.Error().Err(err).Msg("prepare entry")
		return msgProcessingError
	}
}

func formatStats(stats app.Stats) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "📊 Изображений: %d\nОбъектов: %d", stats.Images, stats.Objects)
	for _, c := range stats.Classes {
		fmt.Fprintf(&sb, "\n• %s: %d", c.Class, c.Count)
	}
	return sb.String()
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Error().Err(err).Int64("chat", chatID).Msg("send message")
	}
}
