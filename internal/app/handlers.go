package app

import (
	"github.com/coursematch/coursematch-backend/internal/handlers"
	"github.com/coursematch/coursematch-backend/internal/logger"
)

type Handlers struct {
	Health   *handlers.HealthHandler
	Chat     *handlers.ChatHandler
	Feedback *handlers.FeedbackHandler
	Profile  *handlers.ProfileHandler
	Course   *handlers.CourseHandler
	Syllabus *handlers.SyllabusHandler
}

func wireHandlers(log *logger.Logger, svc Services) Handlers {
	return Handlers{
		Health:   handlers.NewHealthHandler(),
		Chat:     handlers.NewChatHandler(log, svc.Chat),
		Feedback: handlers.NewFeedbackHandler(log, svc.Feedback, svc.Analytics),
		Profile:  handlers.NewProfileHandler(log, svc.Profile),
		Course:   handlers.NewCourseHandler(log, svc.Catalog),
		Syllabus: handlers.NewSyllabusHandler(log, svc.Syllabus, svc.Catalog),
	}
}
