package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/arsenstet/quizzy-cards-bot/internal/models"
	"github.com/arsenstet/quizzy-cards-bot/internal/service"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// QuizT is the transport side of the quiz flow: it turns Telegram updates
// into service events and service replies into Telegram messages.
type QuizT struct {
	bot     BotSender
	service ServiceI
	timeout time.Duration
	log     *zap.Logger
}

func NewQuizT(bot BotSender, service ServiceI, timeout time.Duration, log *zap.Logger) *QuizT {
	return &QuizT{
		bot:     bot,
		service: service,
		timeout: timeout,
		log:     log,
	}
}

func (t *QuizT) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		t.handleStartCommand(message)
	case "stats":
		t.handleStatsCommand(message)
	case "help":
		t.sendHelp(message.Chat.ID)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Невідома команда\\. Використай /start\\.")
		msg.ParseMode = tgbotapi.ModeMarkdownV2
		sendMessage(t.bot, t.log, msg)
	}
}

func (t *QuizT) handleStartCommand(message *tgbotapi.Message) {
	if message.From == nil {
		t.log.Warn("message without sender", zap.Int64("chat_id", message.Chat.ID))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	reply, err := t.service.Start(ctx, message.From.ID, message.From.UserName)
	if err != nil {
		t.sendError(message.Chat.ID, err)
		return
	}

	welcome := tgbotapi.NewMessage(message.Chat.ID,
		"👋 *Вітаю\\!* Я *Quizzy Cards* — твій помічник у вивченні нових слів\\.\n"+
			"📚 Надсилай текст або посилання, а я створю квіз із ключовими словами\\.")
	welcome.ParseMode = tgbotapi.ModeMarkdownV2
	sendMessage(t.bot, t.log, welcome)

	t.sendReply(message.Chat.ID, reply)
}

func (t *QuizT) handleStatsCommand(message *tgbotapi.Message) {
	if message.From == nil {
		t.log.Warn("message without sender", zap.Int64("chat_id", message.Chat.ID))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	stats, err := t.service.Stats(ctx, message.From.ID)
	if err != nil {
		t.sendError(message.Chat.ID, err)
		return
	}

	kb := statsKeyboard()
	msg := tgbotapi.NewMessage(message.Chat.ID, fmt.Sprintf(
		"📍 *Статистика*\n📊 *Твої результати:*\n• Вивчено слів: *%d*\n• Правильних відповідей: *%d*\n• Рахунок: *%d*",
		stats.TotalCount, stats.RightCount, stats.Score,
	))
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	msg.ReplyMarkup = kb
	sendMessage(t.bot, t.log, msg)
}

func (t *QuizT) sendHelp(chatID int64) {
	kb := quizKeyboard()
	msg := tgbotapi.NewMessage(chatID,
		"📍 *Довідка*\n"+
			"• /start — почати спочатку\n"+
			"• /stats — твоя статистика\n"+
			"• Надішли текст або посилання, і я зроблю з нього квіз\\.\n"+
			"• Під час квіза просто надсилай переклад слова\\.")
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	msg.ReplyMarkup = kb
	sendMessage(t.bot, t.log, msg)
}

func (t *QuizT) handleMessage(message *tgbotapi.Message) {
	if message.From == nil {
		t.log.Warn("message without sender", zap.Int64("chat_id", message.Chat.ID))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	reply, err := t.service.HandleText(ctx, message.From.ID, message.Text)
	if err != nil && !errors.Is(err, service.ErrPersistenceFailed) {
		t.sendError(message.Chat.ID, err)
		return
	}
	if err != nil {
		t.log.Warn("reply delivered with lost write",
			zap.Int64("user_id", message.From.ID),
			zap.Error(err),
		)
	}

	t.sendReply(message.Chat.ID, reply)
}

func (t *QuizT) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	if query.Message == nil {
		t.log.Warn("callback query without message", zap.String("id", query.ID))
		return
	}
	chatID := query.Message.Chat.ID
	userID := query.From.ID
	data := query.Data

	if data == callbackShowHelp {
		t.sendHelp(chatID)
		return
	}
	if data == callbackLeaderboard {
		t.sendLeaderboard(chatID, userID)
		return
	}

	ev, ok := eventForCallback(data)
	if !ok {
		t.log.Warn("unknown callback data", zap.String("data", data))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	reply, err := t.service.Handle(ctx, userID, ev)
	if err != nil && !errors.Is(err, service.ErrPersistenceFailed) {
		t.sendError(chatID, err)
		return
	}
	if err != nil {
		t.log.Warn("reply delivered with lost write", zap.Int64("user_id", userID), zap.Error(err))
	}

	t.sendReply(chatID, reply)
}

func eventForCallback(data string) (models.Event, bool) {
	if lang, ok := strings.CutPrefix(data, callbackLanguagePrefix); ok {
		// A bare prefix carries no language code and must not slip an
		// empty language into the session.
		if lang == "" {
			return nil, false
		}
		return models.SelectLanguage{Language: lang}, true
	}

	switch data {
	case callbackStartQuiz:
		return models.StartQuiz{}, true
	case callbackViewStats:
		return models.ViewStats{}, true
	case callbackChangeLanguage:
		return models.ChangeLanguage{}, true
	case callbackMainMenu:
		return models.ReturnToMenu{}, true
	case callbackRepeatQuiz:
		return models.RepeatQuiz{}, true
	case callbackNewText:
		return models.NewText{}, true
	default:
		return nil, false
	}
}

func (t *QuizT) sendLeaderboard(chatID, userID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	entries, rank, err := t.service.Leaderboard(ctx, userID)
	if err != nil {
		t.sendError(chatID, err)
		return
	}

	var b strings.Builder
	b.WriteString("📍 *Лідерборд*\n🏆 *Найкращі гравці:*\n")
	for i, entry := range entries {
		name := entry.Username
		if name == "" {
			name = fmt.Sprintf("гравець %d", entry.UserID)
		}
		fmt.Fprintf(&b, "%d\\. %s — *%d*\n", i+1, escapeMarkdown(name), entry.Score)
	}
	fmt.Fprintf(&b, "\nТвоє місце: *%d*", rank)

	kb := quizKeyboard()
	msg := tgbotapi.NewMessage(chatID, b.String())
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	msg.ReplyMarkup = kb
	sendMessage(t.bot, t.log, msg)
}

// sendReply renders one service reply, including the chained follow-up
// prompt when an answer verdict moved the quiz forward.
func (t *QuizT) sendReply(chatID int64, reply models.Reply) {
	rendered := render(reply)
	for r := &rendered; r != nil; r = r.followUp {
		msg := tgbotapi.NewMessage(chatID, r.text)
		msg.ParseMode = tgbotapi.ModeMarkdownV2
		if r.keyboard != nil {
			msg.ReplyMarkup = r.keyboard
		}
		sendMessage(t.bot, t.log, msg)
	}
}

func (t *QuizT) sendError(chatID int64, err error) {
	var text string
	switch {
	case errors.Is(err, service.ErrNotStarted):
		text = "📍 *Помилка*\n❌ *Сесію не знайдено\\.* Використай /start\\."
	case errors.Is(err, service.ErrOutOfOrderEvent):
		text = "📍 *Помилка*\n❌ *Ця дія зараз недоступна\\.*"
	case errors.Is(err, service.ErrConcurrentTransition):
		text = "📍 *Помилка*\n⏳ *Я ще обробляю попередню дію\\. Зачекай секунду\\.*"
	case errors.Is(err, service.ErrExtractionFailed):
		text = "📍 *Введення тексту*\n❌ *Не вдалося знайти важливі слова\\.*"
	case errors.Is(err, service.ErrTranslationFailed):
		text = "📍 *Квіз*\n❌ *Не вдалося отримати переклад\\. Спробуй ще раз\\.*"
	default:
		t.log.Error("handler failed", zap.Int64("chat_id", chatID), zap.Error(err))
		text = "📍 *Помилка*\n❌ *Щось пішло не так\\. Спробуй пізніше\\.*"
	}

	kb := quizKeyboard()
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	msg.ReplyMarkup = kb
	sendMessage(t.bot, t.log, msg)
}
