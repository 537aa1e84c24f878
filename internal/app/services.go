package app

import (
	"gorm.io/gorm"

	redisclient "github.com/coursematch/coursematch-backend/internal/clients/redis"
	"github.com/coursematch/coursematch-backend/internal/logger"
	"github.com/coursematch/coursematch-backend/internal/services"
)

type Services struct {
	Extractor services.ExtractorService
	Scoring   services.ScoringService
	Catalog   services.CatalogService
	Profile   services.ProfileService
	Chat      services.ChatService
	Feedback  services.FeedbackService
	Analytics services.AnalyticsService
	Syllabus  services.SyllabusService
}

func wireServices(db *gorm.DB, log *logger.Logger, reposet Repos) Services {
	// Catalog cache is optional: no REDIS_ADDR means no caching.
	var cache redisclient.CatalogCache
	if c, err := redisclient.NewCatalogCache(log); err != nil {
		log.Warn("Catalog cache disabled", "error", err)
	} else {
		cache = c
	}

	extractor := services.NewExtractorService()
	scoring := services.NewScoringService()
	catalog := services.NewCatalogService(db, log, reposet.Course, cache)
	profile := services.NewProfileService(db, log, reposet.Profile)

	return Services{
		Extractor: extractor,
		Scoring:   scoring,
		Catalog:   catalog,
		Profile:   profile,
		Chat:      services.NewChatService(db, log, extractor, scoring, catalog, profile),
		Feedback:  services.NewFeedbackService(db, log, reposet.Feedback),
		Analytics: services.NewAnalyticsService(db, log, reposet.Feedback),
		Syllabus:  services.NewSyllabusService(db, log, catalog, reposet.Course),
	}
}
