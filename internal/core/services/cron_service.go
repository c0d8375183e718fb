package services

import (
	"context"
	"log"

	"rentease/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// CronService runs scheduled maintenance jobs
type CronService struct {
	cron             *cron.Cron
	refreshTokenRepo repositories.RefreshTokenRepository
}

// NewCronService creates a new cron service
func NewCronService(db *gorm.DB) *CronService {
	return &CronService{
		cron:             cron.New(),
		refreshTokenRepo: repositories.NewRefreshTokenRepository(db),
	}
}

// Start schedules all jobs and starts the scheduler
func (s *CronService) Start() {
	// Purge expired refresh tokens daily at 03:00
	_, err := s.cron.AddFunc("0 3 * * *", s.purgeExpiredTokens)
	if err != nil {
		log.Printf("❌ Failed to schedule token cleanup: %v", err)
		return
	}

	s.cron.Start()
	log.Println("🚀 CronService started")
}

// Stop stops the scheduler, waiting for running jobs
func (s *CronService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("🛑 CronService stopped")
}

func (s *CronService) purgeExpiredTokens() {
	if err := s.refreshTokenRepo.DeleteExpired(context.Background()); err != nil {
		log.Printf("❌ Token cleanup error: %v", err)
		return
	}
	log.Println("🧹 Expired refresh tokens purged")
}
