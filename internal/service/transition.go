package service

import (
	"strings"

	"github.com/arsenstet/quizzy-cards-bot/internal/models"
)

// stepResult is a transition outcome: the next session plus the effects the
// engine has to run. Keeping the effects as data means the whole machine is
// checkable without a database or a translator on the other end.
type stepResult struct {
	next  models.Session
	reply models.Reply

	// outcome is non-nil exactly when an item is being left, by a correct
	// answer or an exhausted attempt budget. Never on an intermediate
	// wrong attempt.
	outcome *models.Outcome

	// resolve asks the engine to fetch the reference answer for the word
	// now under the cursor.
	resolve bool

	// stats asks the engine to load lifetime stats into the reply.
	stats bool

	// extract asks the engine to run extractText through the
	// item-extraction pipeline; the session itself does not change until
	// the pipeline succeeds. Extraction runs even when extractText is
	// empty, the pipeline rejects it.
	extract     bool
	extractText string
}

// transition is the total (stage, event) function. Any pair not in the
// table is rejected with ErrOutOfOrderEvent and the session stays as it
// was.
func transition(s models.Session, ev models.Event, maxAttempts int) (stepResult, error) {
	switch e := ev.(type) {
	case models.SelectLanguage:
		if s.Stage != models.StageAwaitingLanguage {
			return stepResult{}, ErrOutOfOrderEvent
		}
		next := clearQuizFields(s)
		next.Stage = models.StageMainMenu
		next.Language = e.Language
		return stepResult{
			next:  next,
			reply: models.Reply{Kind: models.ReplyMainMenu, Stage: next.Stage, Language: next.Language},
		}, nil

	case models.StartQuiz:
		if s.Stage != models.StageMainMenu {
			return stepResult{}, ErrOutOfOrderEvent
		}
		next := s
		next.Stage = models.StageAwaitingText
		return stepResult{
			next:  next,
			reply: models.Reply{Kind: models.ReplyAwaitText, Stage: next.Stage},
		}, nil

	case models.ChangeLanguage:
		if s.Stage != models.StageMainMenu {
			return stepResult{}, ErrOutOfOrderEvent
		}
		next := s
		next.Stage = models.StageAwaitingLanguage
		return stepResult{
			next:  next,
			reply: models.Reply{Kind: models.ReplyChooseLanguage, Stage: next.Stage, Language: next.Language},
		}, nil

	case models.ViewStats:
		if s.Stage != models.StageMainMenu {
			return stepResult{}, ErrOutOfOrderEvent
		}
		return stepResult{
			next:  s,
			reply: models.Reply{Kind: models.ReplyStats, Stage: s.Stage},
			stats: true,
		}, nil

	case models.SubmitText:
		if s.Stage != models.StageAwaitingText {
			return stepResult{}, ErrOutOfOrderEvent
		}
		return stepResult{next: s, extract: true, extractText: e.Text}, nil

	case models.SubmitAnswer:
		if s.Stage != models.StageInQuiz {
			return stepResult{}, ErrOutOfOrderEvent
		}
		return scoreAnswer(s, e.Text, maxAttempts), nil

	case models.ReturnToMenu:
		// Valid from any stage. A quiz in progress is abandoned without
		// persisting anything for the current item.
		next := clearQuizFields(s)
		next.Stage = models.StageMainMenu
		return stepResult{
			next:  next,
			reply: models.Reply{Kind: models.ReplyMainMenu, Stage: next.Stage, Language: next.Language},
		}, nil

	case models.RepeatQuiz:
		if s.Stage != models.StageFinished {
			return stepResult{}, ErrOutOfOrderEvent
		}
		next := s
		next.Stage = models.StageInQuiz
		next.Cursor = 0
		next.Score = 0
		next.AttemptsLeft = maxAttempts
		next.Reference = ""
		res := stepResult{next: next, resolve: true}
		res.reply = models.Reply{Kind: models.ReplyQuizStarted, Stage: next.Stage, Words: next.Words}
		fillPrompt(&res.reply, next)
		return res, nil

	case models.NewText:
		if s.Stage != models.StageFinished {
			return stepResult{}, ErrOutOfOrderEvent
		}
		next := clearQuizFields(s)
		next.Stage = models.StageAwaitingText
		return stepResult{
			next:  next,
			reply: models.Reply{Kind: models.ReplyAwaitText, Stage: next.Stage},
		}, nil

	default:
		return stepResult{}, ErrOutOfOrderEvent
	}
}

// beginQuiz installs freshly extracted words into the session and points
// the cursor at the first one. Runs after the extraction pipeline, which is
// the only part of SubmitText that can fail.
func beginQuiz(s models.Session, words []string, maxAttempts, warnThreshold int) stepResult {
	next := s
	next.Stage = models.StageInQuiz
	next.Words = words
	next.Cursor = 0
	next.Score = 0
	next.AttemptsLeft = maxAttempts
	next.Reference = ""

	res := stepResult{next: next, resolve: true}
	res.reply = models.Reply{
		Kind:     models.ReplyQuizStarted,
		Stage:    next.Stage,
		Words:    words,
		FewWords: len(words) < warnThreshold,
	}
	fillPrompt(&res.reply, next)
	return res
}

// scoreAnswer applies one answer against the current item. The outcome for
// an item is emitted exactly once, at the moment the cursor moves past it.
func scoreAnswer(s models.Session, text string, maxAttempts int) stepResult {
	answer := strings.ToLower(strings.TrimSpace(text))
	word := s.CurrentWord()

	if answer != "" && answer == s.Reference {
		next := s
		next.Score++
		res := stepResult{
			outcome: &models.Outcome{Word: word, IsCorrect: true},
			reply:   models.Reply{Kind: models.ReplyAnswerCorrect, Stage: models.StageInQuiz},
		}
		advance(&next, &res, maxAttempts)
		res.next = next
		return res
	}

	next := s
	next.AttemptsLeft--
	if next.AttemptsLeft > 0 {
		res := stepResult{next: next}
		res.reply = models.Reply{Kind: models.ReplyAnswerWrong, Stage: models.StageInQuiz}
		fillPrompt(&res.reply, next)
		return res
	}

	// Budget exhausted: the item is left as incorrect and the reference
	// answer is revealed.
	res := stepResult{
		outcome: &models.Outcome{Word: word, IsCorrect: false},
		reply:   models.Reply{Kind: models.ReplyAnswerRevealed, Stage: models.StageInQuiz, Reveal: s.Reference},
	}
	advance(&next, &res, maxAttempts)
	res.next = next
	return res
}

// advance moves the cursor to the next item, or finishes the quiz when
// none are left.
func advance(next *models.Session, res *stepResult, maxAttempts int) {
	next.Cursor++
	next.AttemptsLeft = maxAttempts
	next.Reference = ""

	if next.Cursor >= len(next.Words) {
		next.Stage = models.StageFinished
		res.reply.Stage = next.Stage
		res.reply.Finished = true
		res.reply.Score = next.Score
		res.reply.Total = len(next.Words)
		res.stats = true
		return
	}

	res.resolve = true
	fillPrompt(&res.reply, *next)
}

func fillPrompt(r *models.Reply, s models.Session) {
	r.Word = s.CurrentWord()
	r.Position = s.Cursor + 1
	r.Total = len(s.Words)
	r.AttemptsLeft = s.AttemptsLeft
	r.Score = s.Score
}

func clearQuizFields(s models.Session) models.Session {
	next := s
	next.Words = nil
	next.Cursor = 0
	next.Score = 0
	next.AttemptsLeft = 0
	next.Reference = ""
	return next
}
