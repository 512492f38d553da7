package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/arsenstet/quizzy-cards-bot/internal/config"
	"github.com/arsenstet/quizzy-cards-bot/internal/models"
	mock_service "github.com/arsenstet/quizzy-cards-bot/internal/service/mock"
	"github.com/arsenstet/quizzy-cards-bot/internal/storage/session"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newQuizServiceMock(ctrl *gomock.Controller, setupMock func(*mock_service.MockWordsSI, *mock_service.MockQuizRI, *mock_service.MockUserRI)) *QuizS {
	words := mock_service.NewMockWordsSI(ctrl)
	repo := mock_service.NewMockQuizRI(ctrl)
	users := mock_service.NewMockUserRI(ctrl)
	if setupMock != nil {
		setupMock(words, repo, users)
	}

	return &QuizS{
		sessions: session.NewStore(),
		words:    words,
		repo:     repo,
		users:    users,
		cfg: config.QuizConfig{
			MaxAttempts:    3,
			MaxWords:       10,
			WarnThreshold:  5,
			TargetLanguage: "uk",
		},
		log: zap.NewNop(),
	}
}

// driveToQuiz walks a fresh user through /start, language selection and
// text submission so individual tests can start from an active quiz.
func driveToQuiz(t *testing.T, q *QuizS, userID int64) {
	t.Helper()

	ctx := context.Background()

	_, err := q.Start(ctx, userID, "tester")
	require.NoError(t, err)

	_, err = q.Handle(ctx, userID, models.SelectLanguage{Language: "en"})
	require.NoError(t, err)

	_, err = q.Handle(ctx, userID, models.StartQuiz{})
	require.NoError(t, err)

	_, err = q.HandleText(ctx, userID, "the raw text")
	require.NoError(t, err)
}

func TestQuizS_Start(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		f    func(*mock_service.MockWordsSI, *mock_service.MockQuizRI, *mock_service.MockUserRI)
	}{
		{
			name: "success",
			f: func(mw *mock_service.MockWordsSI, mq *mock_service.MockQuizRI, mu *mock_service.MockUserRI) {
				mu.EXPECT().UpsertUser(gomock.Any(), int64(1), "tester").Return(nil)
			},
		},
		{
			name: "success: user upsert failure does not block the session",
			f: func(mw *mock_service.MockWordsSI, mq *mock_service.MockQuizRI, mu *mock_service.MockUserRI) {
				mu.EXPECT().UpsertUser(gomock.Any(), int64(1), "tester").Return(errors.New("db down"))
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			q := newQuizServiceMock(ctrl, tt.f)

			reply, err := q.Start(context.Background(), 1, "tester")
			require.NoError(t, err)
			assert.Equal(t, models.ReplyChooseLanguage, reply.Kind)

			sess, ok := q.sessions.Peek(1)
			require.True(t, ok)
			assert.Equal(t, models.StageAwaitingLanguage, sess.Stage)
		})
	}
}

func TestQuizS_StartKeepsLanguageAcrossRestart(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	q := newQuizServiceMock(ctrl, func(mw *mock_service.MockWordsSI, mq *mock_service.MockQuizRI, mu *mock_service.MockUserRI) {
		mu.EXPECT().UpsertUser(gomock.Any(), int64(1), "tester").Return(nil).Times(2)
	})

	ctx := context.Background()
	_, err := q.Start(ctx, 1, "tester")
	require.NoError(t, err)
	_, err = q.Handle(ctx, 1, models.SelectLanguage{Language: "de"})
	require.NoError(t, err)

	reply, err := q.Start(ctx, 1, "tester")
	require.NoError(t, err)
	assert.Equal(t, models.ReplyChooseLanguage, reply.Kind)
	assert.Equal(t, "de", reply.Language)
}

func TestQuizS_HandleWithoutSession(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	q := newQuizServiceMock(ctrl, nil)

	_, err := q.Handle(context.Background(), 42, models.StartQuiz{})
	assert.ErrorIs(t, err, ErrNotStarted)

	_, err = q.HandleText(context.Background(), 42, "hello")
	assert.ErrorIs(t, err, ErrNotStarted)
}

func TestQuizS_SubmitTextStartsQuiz(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	q := newQuizServiceMock(ctrl, func(mw *mock_service.MockWordsSI, mq *mock_service.MockQuizRI, mu *mock_service.MockUserRI) {
		mu.EXPECT().UpsertUser(gomock.Any(), int64(1), "tester").Return(nil)
		mw.EXPECT().Items(gomock.Any(), "the raw text").Return([]string{"apple", "house"}, nil)
		mw.EXPECT().Reference(gomock.Any(), "apple", "en").Return("яблуко", nil)
	})

	ctx := context.Background()
	_, err := q.Start(ctx, 1, "tester")
	require.NoError(t, err)
	_, err = q.Handle(ctx, 1, models.SelectLanguage{Language: "en"})
	require.NoError(t, err)
	_, err = q.Handle(ctx, 1, models.StartQuiz{})
	require.NoError(t, err)

	reply, err := q.HandleText(ctx, 1, "the raw text")
	require.NoError(t, err)

	assert.Equal(t, models.ReplyQuizStarted, reply.Kind)
	assert.Equal(t, []string{"apple", "house"}, reply.Words)
	assert.True(t, reply.FewWords)
	assert.Equal(t, "apple", reply.Word)
	assert.Equal(t, 3, reply.AttemptsLeft)

	sess, ok := q.sessions.Peek(1)
	require.True(t, ok)
	assert.Equal(t, models.StageInQuiz, sess.Stage)
	assert.Equal(t, "яблуко", sess.Reference)
}

func TestQuizS_ExtractionFailureKeepsAwaitingText(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	q := newQuizServiceMock(ctrl, func(mw *mock_service.MockWordsSI, mq *mock_service.MockQuizRI, mu *mock_service.MockUserRI) {
		mu.EXPECT().UpsertUser(gomock.Any(), int64(1), "tester").Return(nil)
		mw.EXPECT().Items(gomock.Any(), "garbage").Return(nil, ErrExtractionFailed)
	})

	ctx := context.Background()
	_, err := q.Start(ctx, 1, "tester")
	require.NoError(t, err)
	_, err = q.Handle(ctx, 1, models.SelectLanguage{Language: "en"})
	require.NoError(t, err)
	_, err = q.Handle(ctx, 1, models.StartQuiz{})
	require.NoError(t, err)

	_, err = q.HandleText(ctx, 1, "garbage")
	assert.ErrorIs(t, err, ErrExtractionFailed)

	sess, ok := q.sessions.Peek(1)
	require.True(t, ok)
	assert.Equal(t, models.StageAwaitingText, sess.Stage, "the user just submits different text")
}

func TestQuizS_EmptySubmissionFailsExtraction(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	q := newQuizServiceMock(ctrl, func(mw *mock_service.MockWordsSI, mq *mock_service.MockQuizRI, mu *mock_service.MockUserRI) {
		mu.EXPECT().UpsertUser(gomock.Any(), int64(1), "tester").Return(nil)
		mw.EXPECT().Items(gomock.Any(), "").Return(nil, ErrExtractionFailed)
	})

	ctx := context.Background()
	_, err := q.Start(ctx, 1, "tester")
	require.NoError(t, err)
	_, err = q.Handle(ctx, 1, models.SelectLanguage{Language: "en"})
	require.NoError(t, err)
	_, err = q.Handle(ctx, 1, models.StartQuiz{})
	require.NoError(t, err)

	// A captionless photo or sticker routes through here as empty text. It
	// must hit the extraction pipeline like any other submission, not fall
	// through to a zero-value reply.
	reply, err := q.HandleText(ctx, 1, "")
	assert.ErrorIs(t, err, ErrExtractionFailed)
	assert.Zero(t, reply)

	sess, ok := q.sessions.Peek(1)
	require.True(t, ok)
	assert.Equal(t, models.StageAwaitingText, sess.Stage)
}

func TestQuizS_ExactlyOnceOutcomePerItem(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	q := newQuizServiceMock(ctrl, func(mw *mock_service.MockWordsSI, mq *mock_service.MockQuizRI, mu *mock_service.MockUserRI) {
		mu.EXPECT().UpsertUser(gomock.Any(), int64(1), "tester").Return(nil)
		mw.EXPECT().Items(gomock.Any(), "the raw text").Return([]string{"apple"}, nil)
		mw.EXPECT().Reference(gomock.Any(), "apple", "en").Return("яблуко", nil)

		// Two wrong attempts persist nothing; only leaving the item does.
		mq.EXPECT().RecordOutcome(gomock.Any(), models.Outcome{
			UserID:    1,
			Word:      "apple",
			IsCorrect: true,
		}).Return(nil).Times(1)
		mq.EXPECT().QuizStats(gomock.Any(), int64(1)).Return(models.QuizStats{TotalCount: 1, RightCount: 1, Score: 1}, nil)
	})

	driveToQuiz(t, q, 1)
	ctx := context.Background()

	reply, err := q.HandleText(ctx, 1, "груша")
	require.NoError(t, err)
	assert.Equal(t, models.ReplyAnswerWrong, reply.Kind)
	assert.Equal(t, 2, reply.AttemptsLeft)

	reply, err = q.HandleText(ctx, 1, "слива")
	require.NoError(t, err)
	assert.Equal(t, models.ReplyAnswerWrong, reply.Kind)
	assert.Equal(t, 1, reply.AttemptsLeft)

	reply, err = q.HandleText(ctx, 1, "яблуко")
	require.NoError(t, err)
	assert.Equal(t, models.ReplyAnswerCorrect, reply.Kind)
	assert.True(t, reply.Finished)
	assert.Equal(t, 1, reply.Score)
	assert.Equal(t, 1, reply.Stats.Score)
}

func TestQuizS_BudgetExhaustionPersistsIncorrect(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	q := newQuizServiceMock(ctrl, func(mw *mock_service.MockWordsSI, mq *mock_service.MockQuizRI, mu *mock_service.MockUserRI) {
		mu.EXPECT().UpsertUser(gomock.Any(), int64(1), "tester").Return(nil)
		mw.EXPECT().Items(gomock.Any(), "the raw text").Return([]string{"apple", "house"}, nil)
		mw.EXPECT().Reference(gomock.Any(), "apple", "en").Return("яблуко", nil)
		mw.EXPECT().Reference(gomock.Any(), "house", "en").Return("дім", nil)

		mq.EXPECT().RecordOutcome(gomock.Any(), models.Outcome{
			UserID:    1,
			Word:      "apple",
			IsCorrect: false,
		}).Return(nil).Times(1)
	})

	driveToQuiz(t, q, 1)
	ctx := context.Background()

	var reply models.Reply
	var err error
	for i := 0; i < 3; i++ {
		reply, err = q.HandleText(ctx, 1, "ні")
		require.NoError(t, err)
	}

	assert.Equal(t, models.ReplyAnswerRevealed, reply.Kind)
	assert.Equal(t, "яблуко", reply.Reveal)
	assert.Equal(t, "house", reply.Word)

	sess, ok := q.sessions.Peek(1)
	require.True(t, ok)
	assert.Equal(t, 1, sess.Cursor)
	assert.Equal(t, 3, sess.AttemptsLeft)
}

func TestQuizS_PersistenceFailureIsSoft(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	q := newQuizServiceMock(ctrl, func(mw *mock_service.MockWordsSI, mq *mock_service.MockQuizRI, mu *mock_service.MockUserRI) {
		mu.EXPECT().UpsertUser(gomock.Any(), int64(1), "tester").Return(nil)
		mw.EXPECT().Items(gomock.Any(), "the raw text").Return([]string{"apple", "house"}, nil)
		mw.EXPECT().Reference(gomock.Any(), "apple", "en").Return("яблуко", nil)
		mw.EXPECT().Reference(gomock.Any(), "house", "en").Return("дім", nil)

		mq.EXPECT().RecordOutcome(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
	})

	driveToQuiz(t, q, 1)

	reply, err := q.HandleText(context.Background(), 1, "яблуко")

	// The transition sticks even though the write was lost.
	assert.ErrorIs(t, err, ErrPersistenceFailed)
	assert.Equal(t, models.ReplyAnswerCorrect, reply.Kind)
	assert.Equal(t, "house", reply.Word)

	sess, ok := q.sessions.Peek(1)
	require.True(t, ok)
	assert.Equal(t, 1, sess.Cursor)
	assert.Equal(t, 1, sess.Score)
}

func TestQuizS_DeferredReferenceResolution(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	q := newQuizServiceMock(ctrl, func(mw *mock_service.MockWordsSI, mq *mock_service.MockQuizRI, mu *mock_service.MockUserRI) {
		mu.EXPECT().UpsertUser(gomock.Any(), int64(1), "tester").Return(nil)
		mw.EXPECT().Items(gomock.Any(), "the raw text").Return([]string{"apple"}, nil)

		// Resolution fails when the quiz starts, fails again on the first
		// answer, then succeeds on the second.
		mw.EXPECT().Reference(gomock.Any(), "apple", "en").Return("", ErrTranslationFailed).Times(2)
		mw.EXPECT().Reference(gomock.Any(), "apple", "en").Return("яблуко", nil)

		mq.EXPECT().RecordOutcome(gomock.Any(), models.Outcome{
			UserID:    1,
			Word:      "apple",
			IsCorrect: true,
		}).Return(nil)
		mq.EXPECT().QuizStats(gomock.Any(), int64(1)).Return(models.QuizStats{}, nil)
	})

	driveToQuiz(t, q, 1)
	ctx := context.Background()

	sess, ok := q.sessions.Peek(1)
	require.True(t, ok)
	assert.Equal(t, models.StageInQuiz, sess.Stage, "quiz starts with resolution deferred")
	assert.Empty(t, sess.Reference)

	// The attempt cannot be scored without a reference and must not be
	// spent.
	_, err := q.HandleText(ctx, 1, "яблуко")
	assert.ErrorIs(t, err, ErrTranslationFailed)

	sess, ok = q.sessions.Peek(1)
	require.True(t, ok)
	assert.Equal(t, 3, sess.AttemptsLeft)

	reply, err := q.HandleText(ctx, 1, "яблуко")
	require.NoError(t, err)
	assert.Equal(t, models.ReplyAnswerCorrect, reply.Kind)
}

func TestQuizS_ViewStatsFailureIsHard(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	q := newQuizServiceMock(ctrl, func(mw *mock_service.MockWordsSI, mq *mock_service.MockQuizRI, mu *mock_service.MockUserRI) {
		mu.EXPECT().UpsertUser(gomock.Any(), int64(1), "tester").Return(nil)
		mq.EXPECT().QuizStats(gomock.Any(), int64(1)).Return(models.QuizStats{}, errors.New("db down"))
	})

	ctx := context.Background()
	_, err := q.Start(ctx, 1, "tester")
	require.NoError(t, err)
	_, err = q.Handle(ctx, 1, models.SelectLanguage{Language: "en"})
	require.NoError(t, err)

	_, err = q.Handle(ctx, 1, models.ViewStats{})
	assert.ErrorIs(t, err, ErrPersistenceFailed)

	sess, ok := q.sessions.Peek(1)
	require.True(t, ok)
	assert.Equal(t, models.StageMainMenu, sess.Stage, "a failed stats read does not move the session")
}

func TestQuizS_OutOfOrderEventRejected(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	q := newQuizServiceMock(ctrl, func(mw *mock_service.MockWordsSI, mq *mock_service.MockQuizRI, mu *mock_service.MockUserRI) {
		mu.EXPECT().UpsertUser(gomock.Any(), int64(1), "tester").Return(nil)
	})

	ctx := context.Background()
	_, err := q.Start(ctx, 1, "tester")
	require.NoError(t, err)

	_, err = q.Handle(ctx, 1, models.StartQuiz{})
	assert.ErrorIs(t, err, ErrOutOfOrderEvent)

	_, err = q.HandleText(ctx, 1, "hello")
	assert.ErrorIs(t, err, ErrOutOfOrderEvent)

	sess, ok := q.sessions.Peek(1)
	require.True(t, ok)
	assert.Equal(t, models.StageAwaitingLanguage, sess.Stage)
}

func TestQuizS_ConcurrentEventRejected(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	block := make(chan struct{})
	inFlight := make(chan struct{})

	q := newQuizServiceMock(ctrl, func(mw *mock_service.MockWordsSI, mq *mock_service.MockQuizRI, mu *mock_service.MockUserRI) {
		mu.EXPECT().UpsertUser(gomock.Any(), int64(1), "tester").Return(nil)
		mw.EXPECT().Items(gomock.Any(), "slow text").DoAndReturn(func(_ context.Context, _ string) ([]string, error) {
			close(inFlight)
			<-block
			return []string{"apple"}, nil
		})
		mw.EXPECT().Reference(gomock.Any(), "apple", "en").Return("яблуко", nil)
	})

	ctx := context.Background()
	_, err := q.Start(ctx, 1, "tester")
	require.NoError(t, err)
	_, err = q.Handle(ctx, 1, models.SelectLanguage{Language: "en"})
	require.NoError(t, err)
	_, err = q.Handle(ctx, 1, models.StartQuiz{})
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := q.HandleText(ctx, 1, "slow text")
		assert.NoError(t, err)
	}()

	<-inFlight
	_, err = q.Handle(ctx, 1, models.ReturnToMenu{})
	assert.ErrorIs(t, err, ErrConcurrentTransition)

	close(block)
	wg.Wait()

	sess, ok := q.sessions.Peek(1)
	require.True(t, ok)
	assert.Equal(t, models.StageInQuiz, sess.Stage, "the rejected event left no trace")
}
