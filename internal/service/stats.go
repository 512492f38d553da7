package service

import (
	"context"

	"github.com/arsenstet/quizzy-cards-bot/internal/models"
	"go.uber.org/zap"
)

const leaderboardSize = 5

// StatsS serves stats reads that do not go through the session state
// machine: the /stats command and the leaderboard view.
type StatsS struct {
	repo QuizRI
	log  *zap.Logger
}

func NewStatsService(repo QuizRI, log *zap.Logger) *StatsS {
	return &StatsS{
		repo: repo,
		log:  log,
	}
}

func (s *StatsS) Stats(ctx context.Context, userID int64) (models.QuizStats, error) {
	stats, err := s.repo.QuizStats(ctx, userID)
	if err != nil {
		s.log.Warn("failed to get quiz stats", zap.Int64("user_id", userID), zap.Error(err))
		return models.QuizStats{}, err
	}
	return stats, nil
}

// Leaderboard returns the top players by score along with the asking
// user's own rank.
func (s *StatsS) Leaderboard(ctx context.Context, userID int64) ([]models.LeaderboardEntry, int, error) {
	entries, err := s.repo.Leaderboard(ctx, leaderboardSize)
	if err != nil {
		s.log.Warn("failed to get leaderboard", zap.Error(err))
		return nil, 0, err
	}

	rank, err := s.repo.UserRank(ctx, userID)
	if err != nil {
		s.log.Warn("failed to get user rank", zap.Int64("user_id", userID), zap.Error(err))
		return nil, 0, err
	}

	return entries, rank, nil
}
