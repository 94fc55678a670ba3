package bot

import (
	"context"
	"fmt"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/manas95826/fact-cli/facts"
)

// Sender sends messages to Telegram.
type Sender interface {
	SendText(ctx context.Context, chatID int64, text string) (int, error)
}

// TelegramSender implements Sender using tgbotapi.
type TelegramSender struct {
	api *tgbotapi.BotAPI
}

// NewTelegramSender creates a new sender.
func NewTelegramSender(api *tgbotapi.BotAPI) *TelegramSender {
	return &TelegramSender{api: api}
}

// New builds a Bot API client for token without contacting Telegram. An
// empty endpoint uses the public API.
func New(token, endpoint string, client *http.Client) *TelegramSender {
	if endpoint == "" {
		endpoint = tgbotapi.APIEndpoint
	}
	if client == nil {
		client = &http.Client{}
	}
	api := &tgbotapi.BotAPI{
		Token:  token,
		Client: client,
		Buffer: 100,
	}
	api.SetAPIEndpoint(endpoint)
	return NewTelegramSender(api)
}

// Identify calls getMe and returns the bot account name.
func (s *TelegramSender) Identify() (string, error) {
	self, err := s.api.GetMe()
	if err != nil {
		return "", fmt.Errorf("get bot identity: %w", err)
	}
	s.api.Self = self
	return self.UserName, nil
}

// SendText sends a plain text message.
func (s *TelegramSender) SendText(ctx context.Context, chatID int64, text string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = ""
	resp, err := s.api.Send(msg)
	if err != nil {
		return 0, fmt.Errorf("send message: %w", err)
	}
	return resp.MessageID, nil
}

// FormatMessage renders the plain text body sent for one fact. The header
// always reads "Random Fact" after the category name, so All gives
// "🌟 Random Random Fact".
func FormatMessage(category facts.Category, fact string) string {
	return fmt.Sprintf("%s %s Random Fact\n\n%s", category.Emoji(), category.DisplayName(), fact)
}
