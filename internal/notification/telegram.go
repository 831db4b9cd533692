package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/migueltomazini/barbershop-scheduler-sub001/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const dateLayout = "02.01.2006"

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyAppointmentBooked(ctx context.Context, user *domain.User, svc *domain.Service, a *domain.Appointment) {
	text := fmt.Sprintf(
		"*Appointment booked!*\n\n"+"Service: %s\n"+"Date: %s at %s",
		svc.Name, a.Date.Format(dateLayout), a.Slot,
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyAppointmentCanceled(ctx context.Context, user *domain.User, a *domain.Appointment) {
	text := fmt.Sprintf(
		"*Appointment canceled*\n\n"+"Date: %s at %s\n"+"The slot is available again.",
		a.Date.Format(dateLayout), a.Slot,
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyAppointmentRescheduled(ctx context.Context, user *domain.User, a *domain.Appointment) {
	text := fmt.Sprintf(
		"*Appointment rescheduled*\n\n"+"New date: %s at %s",
		a.Date.Format(dateLayout), a.Slot,
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
