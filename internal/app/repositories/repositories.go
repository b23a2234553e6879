package repositories

import (
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// likePattern builds a contains pattern for ILIKE filters. LIKE
// metacharacters in the input are escaped so they match literally.
func likePattern(search string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(search)
	return "%" + escaped + "%"
}

// Repositories holds all the repository instances
type Repositories struct {
	AdminRepository            *AdminRepository
	StudentRepository          *StudentRepository
	CourseRepository           *CourseRepository
	TeacherRepository          *TeacherRepository
	TimetableRepository        *TimetableRepository
	FeedbackRepository         *FeedbackRepository
	RegistrationLinkRepository *RegistrationLinkRepository
	CourseResourceRepository   *CourseResourceRepository
	SettingsRepository         *SettingsRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		AdminRepository:            NewAdminRepository(db),
		StudentRepository:          NewStudentRepository(db),
		CourseRepository:           NewCourseRepository(db),
		TeacherRepository:          NewTeacherRepository(db),
		TimetableRepository:        NewTimetableRepository(db),
		FeedbackRepository:         NewFeedbackRepository(db),
		RegistrationLinkRepository: NewRegistrationLinkRepository(db),
		CourseResourceRepository:   NewCourseResourceRepository(db),
		SettingsRepository:         NewSettingsRepository(db),
	}
}
