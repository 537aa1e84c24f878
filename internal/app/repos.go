package app

import (
	"gorm.io/gorm"

	"github.com/coursematch/coursematch-backend/internal/logger"
	"github.com/coursematch/coursematch-backend/internal/repos"
)

type Repos struct {
	Course   repos.CourseRepo
	Profile  repos.ProfileRepo
	Feedback repos.FeedbackRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	return Repos{
		Course:   repos.NewCourseRepo(db, log),
		Profile:  repos.NewProfileRepo(db, log),
		Feedback: repos.NewFeedbackRepo(db, log),
	}
}
