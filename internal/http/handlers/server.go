package handlers

import (
	"github.com/rogerio-castellano/ims-backend/internal/cache"
	repo "github.com/rogerio-castellano/ims-backend/internal/repo"
)

var (
	productRepo      repo.ProductRepository
	movementRepo     repo.MovementRepository
	notificationRepo repo.NotificationRepository
	userRepo         repo.UserRepository

	statsCache *cache.StatsCache // nil when redis is not configured
)

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetMovementRepo(r repo.MovementRepository) {
	movementRepo = r
}

func SetNotificationRepo(r repo.NotificationRepository) {
	notificationRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetStatsCache(c *cache.StatsCache) {
	statsCache = c
}
