package telegram

import (
	"context"
	"fmt"
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Pablo751/3mchatbot/internal/analytics"
	"github.com/Pablo751/3mchatbot/internal/chatbot"
	"github.com/Pablo751/3mchatbot/internal/conversation"
	"github.com/Pablo751/3mchatbot/internal/storage"
)

const resetCmd = "reset_ctx"

const welcomeMsg = `🦷 Asistente Virtual Dental 3M

Este asistente te ayudará a encontrar el producto dental 3M más adecuado para tus necesidades. Puede ayudarte a:
- Encontrar el producto adecuado para tu necesidad
- Resolver dudas sobre instrucciones de uso
- Proporcionar información técnica
- Comparar productos similares

¿En qué puedo ayudarte hoy?`

// Bot is the hosting layer: it owns session identity (one chatbot session
// per Telegram chat) and interaction recording. The pipeline itself never
// sees Telegram types.
type Bot struct {
	api         *tgbotapi.BotAPI
	s           sender
	sessions    *chatbot.Manager
	recorder    storage.Recorder
	adminUserID int64
}

func New(botToken string, sessions *chatbot.Manager, recorder storage.Recorder, adminUserID int64) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:         api,
		s:           botAPISender{api: api},
		sessions:    sessions,
		recorder:    recorder,
		adminUserID: adminUserID,
	}, nil
}

func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if update.Message != nil {
			b.handleIncomingMessage(ctx, update.Message)
			continue
		}
		if update.CallbackQuery != nil {
			b.handleCallback(update.CallbackQuery)
			continue
		}
	}
}

func (b *Bot) handleIncomingMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.Text == "" {
		return
	}
	if msg.IsCommand() {
		b.handleCommand(msg)
		return
	}

	log.Printf("query from %d (@%s): %q", msg.From.ID, msg.From.UserName, msg.Text)

	// One session per chat: queries from different chats never share
	// conversation state.
	session := b.sessions.Session(msg.Chat.ID)
	res := session.Process(ctx, msg.Text)

	b.recordInteraction(msg.From.ID, msg.Text, res)

	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Limpiar conversación", resetCmd),
		),
	)
	out := tgbotapi.NewMessage(msg.Chat.ID, res.Response)
	out.ReplyMarkup = kb
	if _, err := b.s.Send(out); err != nil {
		log.Printf("failed to send message: %v", err)
	}
}

func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start", "help":
		b.sendMessage(msg.Chat.ID, welcomeMsg)
	case "reset":
		b.sessions.Reset(msg.Chat.ID)
		b.sendMessage(msg.Chat.ID, "Conversación reiniciada")
	}
}

func (b *Bot) handleCallback(cb *tgbotapi.CallbackQuery) {
	if cb.Data == resetCmd && cb.Message != nil {
		b.sessions.Reset(cb.Message.Chat.ID)
		b.sendMessage(cb.Message.Chat.ID, "Conversación reiniciada")
	}
}

func (b *Bot) recordInteraction(userID int64, query string, res chatbot.Result) {
	if b.recorder == nil {
		return
	}
	ev := storage.Event{
		Timestamp:         time.Now(),
		UserID:            userID,
		UserMessage:       query,
		AssistantResponse: res.Response,
		SelectionOutcome:  string(res.Outcome),
		ProductName:       res.ProductName,
	}
	if res.ProductIndex != conversation.NoProduct {
		idx := res.ProductIndex
		ev.ProductIndex = &idx
	}
	if err := b.recorder.AppendInteraction(ev); err != nil {
		log.Printf("failed to record interaction: %v", err)
	}
}

// SendDailyReport aggregates today's recorded interactions and sends the
// summary to the admin user. Wired into the scheduler from main.
func (b *Bot) SendDailyReport(ctx context.Context) error {
	if b.adminUserID == 0 {
		return nil
	}
	if b.recorder == nil {
		return fmt.Errorf("no recorder configured")
	}
	events, err := b.recorder.LoadInteractions()
	if err != nil {
		return fmt.Errorf("failed to load interactions: %w", err)
	}
	stats := analytics.AnalyzeDailyLogs(events, time.Now().UTC())
	b.sendMessage(b.adminUserID, stats.GenerateReportSummary())
	return nil
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.s.Send(msg); err != nil {
		log.Printf("failed to send message: %v", err)
	}
}
