package bot

import (
	"context"
	"time"

	"github.com/arsenstet/quizzy-cards-bot/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type QuizSI interface {
	Start(ctx context.Context, userID int64, username string) (models.Reply, error)
	Handle(ctx context.Context, userID int64, ev models.Event) (models.Reply, error)
	HandleText(ctx context.Context, userID int64, text string) (models.Reply, error)
}

type StatsSI interface {
	Stats(ctx context.Context, userID int64) (models.QuizStats, error)
	Leaderboard(ctx context.Context, userID int64) ([]models.LeaderboardEntry, int, error)
}

type ServiceI interface {
	QuizSI
	StatsSI
}

type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramAPI struct {
	bot  *tgbotapi.BotAPI
	quiz *QuizT
	log  *zap.Logger
}

func NewTelegramAPI(botToken, env string, timeout time.Duration, service ServiceI, log *zap.Logger) (*TelegramAPI, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}

	bot.Debug = env == "development"

	return &TelegramAPI{
		bot:  bot,
		quiz: NewQuizT(bot, service, timeout, log),
		log:  log,
	}, nil
}

func (t *TelegramAPI) Start() {
	t.log.Info("bot started", zap.String("username", t.bot.Self.UserName))

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.bot.GetUpdatesChan(u)

	for update := range updates {
		if update.Message != nil {
			if update.Message.IsCommand() {
				t.quiz.handleCommand(update.Message)
			} else {
				t.quiz.handleMessage(update.Message)
			}
			continue
		}

		if update.CallbackQuery != nil {
			t.quiz.handleCallbackQuery(update.CallbackQuery)
			t.answerCallback(update.CallbackQuery)
		}
	}
}

func (t *TelegramAPI) answerCallback(query *tgbotapi.CallbackQuery) {
	callback := tgbotapi.NewCallback(query.ID, "")
	if _, err := t.bot.Request(callback); err != nil {
		t.log.Warn("failed to answer callback query", zap.String("id", query.ID), zap.Error(err))
	}
}

func sendMessage(bot BotSender, log *zap.Logger, msg tgbotapi.Chattable) {
	if _, err := bot.Send(msg); err != nil {
		log.Error("failed to send message", zap.Error(err))
	}
}
