package service

import (
	"context"
	"errors"

	"github.com/arsenstet/quizzy-cards-bot/internal/config"
	"github.com/arsenstet/quizzy-cards-bot/internal/models"
	"github.com/arsenstet/quizzy-cards-bot/internal/storage/session"
	"go.uber.org/zap"
)

type UserRI interface {
	UpsertUser(ctx context.Context, userID int64, username string) error
}

type QuizRI interface {
	RecordOutcome(ctx context.Context, outcome models.Outcome) error
	QuizStats(ctx context.Context, userID int64) (models.QuizStats, error)
	Leaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error)
	UserRank(ctx context.Context, userID int64) (int, error)
}

type WordsSI interface {
	Items(ctx context.Context, text string) ([]string, error)
	Reference(ctx context.Context, word, sourceLang string) (string, error)
}

// QuizS drives the per-user session state machine. All remote work an
// event needs (extraction, reference resolution, outcome writes) runs
// while the user's session slot is held, so a second event for the same
// user is rejected rather than interleaved.
type QuizS struct {
	sessions *session.Store
	words    WordsSI
	repo     QuizRI
	users    UserRI
	cfg      config.QuizConfig
	log      *zap.Logger
}

func NewQuizService(sessions *session.Store, words WordsSI, repo QuizRI, users UserRI, cfg config.QuizConfig, log *zap.Logger) *QuizS {
	return &QuizS{
		sessions: sessions,
		words:    words,
		repo:     repo,
		users:    users,
		cfg:      cfg,
		log:      log,
	}
}

// Start registers the user on first contact and (re)enters language
// selection. The selected language survives restarts of the quiz flow, so
// it is kept here too.
func (q *QuizS) Start(ctx context.Context, userID int64, username string) (models.Reply, error) {
	if err := q.users.UpsertUser(ctx, userID, username); err != nil {
		// The session can run ahead of durable state; the write is not
		// retried here.
		q.log.Warn("failed to upsert user", zap.Int64("user_id", userID), zap.Error(err))
	}

	q.sessions.Start(userID)

	var reply models.Reply
	err := q.sessions.Update(userID, func(s *models.Session) error {
		*s = clearQuizFields(*s)
		s.Stage = models.StageAwaitingLanguage
		reply = models.Reply{Kind: models.ReplyChooseLanguage, Stage: s.Stage, Language: s.Language}
		return nil
	})
	if err != nil {
		return models.Reply{}, mapStoreErr(err)
	}

	return reply, nil
}

// HandleText routes a plain text message to the event the current stage
// expects. The stage is re-checked inside the locked transition, so a
// racing event cannot sneak a stale route through.
func (q *QuizS) HandleText(ctx context.Context, userID int64, text string) (models.Reply, error) {
	sess, ok := q.sessions.Peek(userID)
	if !ok {
		return models.Reply{}, ErrNotStarted
	}

	switch sess.Stage {
	case models.StageAwaitingText:
		return q.Handle(ctx, userID, models.SubmitText{Text: text})
	case models.StageInQuiz:
		return q.Handle(ctx, userID, models.SubmitAnswer{Text: text})
	default:
		return models.Reply{}, ErrOutOfOrderEvent
	}
}

// Handle applies one event to the user's session and executes the effects
// the transition asks for. On success the returned error may still wrap
// ErrPersistenceFailed: the state moved on but a durable write was lost.
func (q *QuizS) Handle(ctx context.Context, userID int64, ev models.Event) (models.Reply, error) {
	var reply models.Reply
	var softErr error

	err := q.sessions.Update(userID, func(s *models.Session) error {
		// An answer can only be checked against a resolved reference; a
		// resolution deferred by an earlier translator failure is retried
		// here, before the attempt is spent.
		if _, ok := ev.(models.SubmitAnswer); ok && s.Stage == models.StageInQuiz && s.Reference == "" {
			ref, err := q.words.Reference(ctx, s.CurrentWord(), s.Language)
			if err != nil {
				return err
			}
			s.Reference = ref
		}

		res, err := transition(*s, ev, q.cfg.MaxAttempts)
		if err != nil {
			return err
		}

		if res.extract {
			words, err := q.words.Items(ctx, res.extractText)
			if err != nil {
				// Session stays in AwaitingText; the user just retries.
				return err
			}
			res = beginQuiz(res.next, words, q.cfg.MaxAttempts, q.cfg.WarnThreshold)
		}

		if res.outcome != nil {
			outcome := *res.outcome
			outcome.UserID = userID
			if err := q.repo.RecordOutcome(ctx, outcome); err != nil {
				q.log.Error("failed to record outcome",
					zap.Int64("user_id", userID),
					zap.String("word", outcome.Word),
					zap.Error(err),
				)
				softErr = errors.Join(ErrPersistenceFailed, err)
			}
		}

		if res.resolve {
			if word := res.next.CurrentWord(); word != "" {
				ref, err := q.words.Reference(ctx, word, res.next.Language)
				if err != nil {
					// Deferred; the word is asked anyway and resolution is
					// retried on the next attempt.
					q.log.Warn("reference resolution deferred",
						zap.Int64("user_id", userID),
						zap.String("word", word),
						zap.Error(err),
					)
				} else {
					res.next.Reference = ref
				}
			}
		}

		if res.stats {
			stats, err := q.repo.QuizStats(ctx, userID)
			switch {
			case err == nil:
				res.reply.Stats = stats
			case res.reply.Kind == models.ReplyStats:
				// An explicit stats request has nothing to show without
				// them.
				return errors.Join(ErrPersistenceFailed, err)
			default:
				q.log.Warn("failed to load stats for quiz summary",
					zap.Int64("user_id", userID),
					zap.Error(err),
				)
			}
		}

		*s = res.next
		reply = res.reply
		return nil
	})
	if err != nil {
		return models.Reply{}, mapStoreErr(err)
	}

	return reply, softErr
}

func mapStoreErr(err error) error {
	switch {
	case errors.Is(err, session.ErrNotStarted):
		return ErrNotStarted
	case errors.Is(err, session.ErrBusy):
		return ErrConcurrentTransition
	default:
		return err
	}
}
