package bot

import (
	"fmt"
	"strings"

	"github.com/arsenstet/quizzy-cards-bot/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// renderedReply is a service reply flattened to what Telegram needs: the
// MarkdownV2 text and the keyboard for that screen, plus an optional
// follow-up message (the next question prompt after an answer verdict).
type renderedReply struct {
	text     string
	keyboard *tgbotapi.InlineKeyboardMarkup
	followUp *renderedReply
}

func render(reply models.Reply) renderedReply {
	switch reply.Kind {
	case models.ReplyChooseLanguage:
		kb := languageKeyboard()
		return renderedReply{
			text:     "📍 *Вибір мови*\nОбери мову тексту для квіза\\.",
			keyboard: &kb,
		}

	case models.ReplyMainMenu:
		kb := mainMenuKeyboard()
		return renderedReply{
			text: "✅ *Мову вибрано\\!*\n" +
				"• 📝 *Почати квіз* — створюй картки зі слів\n" +
				"• 📊 *Статистика* — твої результати\n" +
				"• 🌐 *Змінити мову* — інша мова тексту",
			keyboard: &kb,
		}

	case models.ReplyAwaitText:
		kb := quizKeyboard()
		return renderedReply{
			text:     "📍 *Введення тексту*\n📝 *Надішли новий текст або посилання для аналізу:*",
			keyboard: &kb,
		}

	case models.ReplyQuizStarted:
		return renderQuizStarted(reply)

	case models.ReplyAnswerCorrect:
		out := renderedReply{
			text: "📍 *Квіз*\n✅ *Правильно\\!* 🎉\nПереходимо до наступного слова\\!",
		}
		return withProgress(out, reply)

	case models.ReplyAnswerWrong:
		kb := quizKeyboard()
		return renderedReply{
			text: fmt.Sprintf(
				"📍 *Квіз*\n*Слово %d/%d*\n❌ *Неправильно\\.*\nСпроби: *%d*",
				reply.Position, reply.Total, reply.AttemptsLeft,
			),
			keyboard: &kb,
		}

	case models.ReplyAnswerRevealed:
		out := renderedReply{
			text: fmt.Sprintf(
				"📍 *Квіз*\n⏳ *Спроби закінчились\\!*\nПравильний переклад: _*%s*_\\.",
				escapeMarkdown(reply.Reveal),
			),
		}
		return withProgress(out, reply)

	case models.ReplyStats:
		kb := statsKeyboard()
		return renderedReply{
			text: fmt.Sprintf(
				"📍 *Статистика*\n📊 *Твої результати:*\n• Вивчено слів: *%d*\n• Правильних відповідей: *%d*\n• Рахунок: *%d*",
				reply.Stats.TotalCount, reply.Stats.RightCount, reply.Stats.Score,
			),
			keyboard: &kb,
		}

	default:
		kb := quizKeyboard()
		return renderedReply{
			text:     "📍 *Помилка*\n❌ *Щось пішло не так\\. Спробуй ще раз\\.*",
			keyboard: &kb,
		}
	}
}

func renderQuizStarted(reply models.Reply) renderedReply {
	escaped := make([]string, len(reply.Words))
	for i, word := range reply.Words {
		escaped[i] = escapeMarkdown(word)
	}

	text := fmt.Sprintf(
		"📍 *Підготовка квіза*\n✨ *Я знайшов ключові слова:* _%s_\\.\nГотовий почати квіз? 🚀",
		strings.Join(escaped, ", "),
	)
	if reply.FewWords {
		text += "\n\n📍 *Попередження*\n⚠️ Знайдено мало слів\\. Можливо, текст надто короткий\\.\nУсе одно продовжимо\\!"
	}

	prompt := renderPrompt(reply)
	return renderedReply{text: text, followUp: &prompt}
}

// withProgress chains the next question prompt, or the quiz summary when
// the verdict closed the last item.
func withProgress(out renderedReply, reply models.Reply) renderedReply {
	if reply.Finished {
		finish := renderFinish(reply)
		out.followUp = &finish
		return out
	}

	prompt := renderPrompt(reply)
	out.followUp = &prompt
	return out
}

func renderPrompt(reply models.Reply) renderedReply {
	kb := quizKeyboard()
	return renderedReply{
		text: fmt.Sprintf(
			"📍 *Квіз*\n*Слово %d/%d*\nПереклади слово _*%s*_ українською:\nСпроби: *%d*",
			reply.Position, reply.Total, escapeMarkdown(reply.Word), reply.AttemptsLeft,
		),
		keyboard: &kb,
	}
}

func renderFinish(reply models.Reply) renderedReply {
	kb := finishKeyboard()
	return renderedReply{
		text: fmt.Sprintf(
			"📍 *Результат квіза*\n🏁 *Квіз завершено\\!*\nТвій результат: *%d/%d*\nВивчено слів: *%d*\nПравильних відповідей: *%d*",
			reply.Score, reply.Total, reply.Stats.TotalCount, reply.Stats.RightCount,
		),
		keyboard: &kb,
	}
}

var markdownEscaper = strings.NewReplacer(
	"_", "\\_", "*", "\\*", "[", "\\[", "]", "\\]", "(", "\\(", ")", "\\)",
	"~", "\\~", "`", "\\`", ">", "\\>", "#", "\\#", "+", "\\+", "-", "\\-",
	"=", "\\=", "|", "\\|", "{", "\\{", "}", "\\}", ".", "\\.", "!", "\\!",
)

// escapeMarkdown quotes user-derived text for MarkdownV2.
func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
