package service

import (
	"context"

	"github.com/arsenstet/quizzy-cards-bot/internal/config"
	"github.com/arsenstet/quizzy-cards-bot/internal/models"
	"github.com/arsenstet/quizzy-cards-bot/internal/storage/session"
	"go.uber.org/zap"
)

type GoogleTranslateAPII interface {
	Translate(ctx context.Context, text, targetLang string) (string, error)
}

type MyMemoryAPII interface {
	TranslatePair(ctx context.Context, text, sourceLang, targetLang string) (models.TranslationResult, error)
}

type ArticleAPII interface {
	ExtractText(ctx context.Context, pageURL string) (string, error)
}

type APII interface {
	GoogleTranslateAPII
	MyMemoryAPII
	ArticleAPII
}

type RepositoryI interface {
	UserRI
	QuizRI
}

type Service struct {
	*QuizS
	*WordsS
	*StatsS
}

func InitServices(api APII, repo RepositoryI, sessions *session.Store, cfg config.QuizConfig, log *zap.Logger) *Service {
	words := NewWordsService(api, cfg, log)
	return &Service{
		WordsS: words,
		QuizS:  NewQuizService(sessions, words, repo, repo, cfg, log),
		StatsS: NewStatsService(repo, log),
	}
}
