package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/edunova/backend/internal/app/models"
	"github.com/edunova/backend/internal/pkg/apperrors"
)

// Hand-rolled fakes over the repository interfaces. Each method delegates to
// an optional function field so a test only wires what it exercises.

var nopLogger = zerolog.Nop()

type fakeAdminRepo struct {
	CreateFn                func(ctx context.Context, admin *models.Admin) (int64, error)
	GetByIDFn               func(ctx context.Context, id int64) (*models.Admin, error)
	GetByUsernameFn         func(ctx context.Context, username string) (*models.Admin, error)
	UsernameOrEmailExistsFn func(ctx context.Context, username, email string) (bool, error)
	CountFn                 func(ctx context.Context) (int64, error)
}

func (f *fakeAdminRepo) Create(ctx context.Context, admin *models.Admin) (int64, error) {
	return f.CreateFn(ctx, admin)
}

func (f *fakeAdminRepo) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	return f.GetByIDFn(ctx, id)
}

func (f *fakeAdminRepo) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	return f.GetByUsernameFn(ctx, username)
}

func (f *fakeAdminRepo) UsernameOrEmailExists(ctx context.Context, username, email string) (bool, error) {
	return f.UsernameOrEmailExistsFn(ctx, username, email)
}

func (f *fakeAdminRepo) Count(ctx context.Context) (int64, error) {
	if f.CountFn == nil {
		return 0, nil
	}
	return f.CountFn(ctx)
}

type fakeStudentRepo struct {
	CreateFn            func(ctx context.Context, student *models.Student) (int64, error)
	GetByIDFn           func(ctx context.Context, id int64) (*models.Student, error)
	ListFn              func(ctx context.Context, search, status string, page, pageSize int) ([]models.Student, int64, error)
	UpdateFn            func(ctx context.Context, id int64, patch *models.StudentPatch, updatedBy int64) error
	DeleteFn            func(ctx context.Context, id int64) error
	CountByStatusFn     func(ctx context.Context, status string) (int64, error)
	CountAllFn          func(ctx context.Context) (int64, error)
	CountCreatedSinceFn func(ctx context.Context, since time.Time) (int64, error)
	RecentFn            func(ctx context.Context, limit int) ([]models.Student, error)
}

func (f *fakeStudentRepo) Create(ctx context.Context, student *models.Student) (int64, error) {
	return f.CreateFn(ctx, student)
}

func (f *fakeStudentRepo) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return f.GetByIDFn(ctx, id)
}

func (f *fakeStudentRepo) List(ctx context.Context, search, status string, page, pageSize int) ([]models.Student, int64, error) {
	return f.ListFn(ctx, search, status, page, pageSize)
}

func (f *fakeStudentRepo) Update(ctx context.Context, id int64, patch *models.StudentPatch, updatedBy int64) error {
	return f.UpdateFn(ctx, id, patch, updatedBy)
}

func (f *fakeStudentRepo) Delete(ctx context.Context, id int64) error {
	return f.DeleteFn(ctx, id)
}

func (f *fakeStudentRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	return f.CountByStatusFn(ctx, status)
}

func (f *fakeStudentRepo) CountAll(ctx context.Context) (int64, error) {
	return f.CountAllFn(ctx)
}

func (f *fakeStudentRepo) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	return f.CountCreatedSinceFn(ctx, since)
}

func (f *fakeStudentRepo) Recent(ctx context.Context, limit int) ([]models.Student, error) {
	return f.RecentFn(ctx, limit)
}

type fakeCourseRepo struct {
	CreateFn        func(ctx context.Context, course *models.Course) (int64, error)
	GetByIDFn       func(ctx context.Context, id int64) (*models.Course, error)
	GetAllFn        func(ctx context.Context) ([]models.Course, error)
	UpdateFn        func(ctx context.Context, id int64, patch *models.CoursePatch, updatedBy int64) error
	DeleteFn        func(ctx context.Context, id int64) error
	CountByStatusFn func(ctx context.Context, status string) (int64, error)
}

func (f *fakeCourseRepo) Create(ctx context.Context, course *models.Course) (int64, error) {
	return f.CreateFn(ctx, course)
}

func (f *fakeCourseRepo) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	return f.GetByIDFn(ctx, id)
}

func (f *fakeCourseRepo) GetAll(ctx context.Context) ([]models.Course, error) {
	return f.GetAllFn(ctx)
}

func (f *fakeCourseRepo) Update(ctx context.Context, id int64, patch *models.CoursePatch, updatedBy int64) error {
	return f.UpdateFn(ctx, id, patch, updatedBy)
}

func (f *fakeCourseRepo) Delete(ctx context.Context, id int64) error {
	return f.DeleteFn(ctx, id)
}

func (f *fakeCourseRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	return f.CountByStatusFn(ctx, status)
}

type fakeTeacherRepo struct {
	CreateFn        func(ctx context.Context, teacher *models.Teacher) (int64, error)
	GetByIDFn       func(ctx context.Context, id int64) (*models.Teacher, error)
	ListFn          func(ctx context.Context, search, subject, status string, page, pageSize int) ([]models.Teacher, int64, error)
	UpdateFn        func(ctx context.Context, id int64, patch *models.TeacherPatch, updatedBy int64) error
	DeleteFn        func(ctx context.Context, id int64) error
	CountByStatusFn func(ctx context.Context, status string) (int64, error)
}

func (f *fakeTeacherRepo) Create(ctx context.Context, teacher *models.Teacher) (int64, error) {
	return f.CreateFn(ctx, teacher)
}

func (f *fakeTeacherRepo) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	return f.GetByIDFn(ctx, id)
}

func (f *fakeTeacherRepo) List(ctx context.Context, search, subject, status string, page, pageSize int) ([]models.Teacher, int64, error) {
	return f.ListFn(ctx, search, subject, status, page, pageSize)
}

func (f *fakeTeacherRepo) Update(ctx context.Context, id int64, patch *models.TeacherPatch, updatedBy int64) error {
	return f.UpdateFn(ctx, id, patch, updatedBy)
}

func (f *fakeTeacherRepo) Delete(ctx context.Context, id int64) error {
	return f.DeleteFn(ctx, id)
}

func (f *fakeTeacherRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	return f.CountByStatusFn(ctx, status)
}

type fakeTimetableRepo struct {
	CreateFn  func(ctx context.Context, entry *models.TimetableEntry) (int64, error)
	GetByIDFn func(ctx context.Context, id int64) (*models.TimetableEntry, error)
	GetAllFn  func(ctx context.Context) ([]models.TimetableEntry, error)
	UpdateFn  func(ctx context.Context, id int64, patch *models.TimetableEntryPatch, updatedBy int64) error
	DeleteFn  func(ctx context.Context, id int64) error
}

func (f *fakeTimetableRepo) Create(ctx context.Context, entry *models.TimetableEntry) (int64, error) {
	return f.CreateFn(ctx, entry)
}

func (f *fakeTimetableRepo) GetByID(ctx context.Context, id int64) (*models.TimetableEntry, error) {
	return f.GetByIDFn(ctx, id)
}

func (f *fakeTimetableRepo) GetAll(ctx context.Context) ([]models.TimetableEntry, error) {
	return f.GetAllFn(ctx)
}

func (f *fakeTimetableRepo) Update(ctx context.Context, id int64, patch *models.TimetableEntryPatch, updatedBy int64) error {
	return f.UpdateFn(ctx, id, patch, updatedBy)
}

func (f *fakeTimetableRepo) Delete(ctx context.Context, id int64) error {
	return f.DeleteFn(ctx, id)
}

type fakeFeedbackRepo struct {
	CreateFn       func(ctx context.Context, feedback *models.Feedback) (int64, error)
	GetByIDFn      func(ctx context.Context, id int64) (*models.Feedback, error)
	ListFn         func(ctx context.Context, status, feedbackType string, page, pageSize int) ([]models.Feedback, int64, error)
	ListReviewedFn func(ctx context.Context, limit int) ([]models.Feedback, error)
	UpdateStatusFn func(ctx context.Context, id int64, status string, updatedBy int64) error
	DeleteFn       func(ctx context.Context, id int64) error
	StatsFn        func(ctx context.Context) (*models.FeedbackStats, error)
	RecentFn       func(ctx context.Context, limit int) ([]models.Feedback, error)
}

func (f *fakeFeedbackRepo) Create(ctx context.Context, feedback *models.Feedback) (int64, error) {
	return f.CreateFn(ctx, feedback)
}

func (f *fakeFeedbackRepo) GetByID(ctx context.Context, id int64) (*models.Feedback, error) {
	return f.GetByIDFn(ctx, id)
}

func (f *fakeFeedbackRepo) List(ctx context.Context, status, feedbackType string, page, pageSize int) ([]models.Feedback, int64, error) {
	return f.ListFn(ctx, status, feedbackType, page, pageSize)
}

func (f *fakeFeedbackRepo) ListReviewed(ctx context.Context, limit int) ([]models.Feedback, error) {
	return f.ListReviewedFn(ctx, limit)
}

func (f *fakeFeedbackRepo) UpdateStatus(ctx context.Context, id int64, status string, updatedBy int64) error {
	return f.UpdateStatusFn(ctx, id, status, updatedBy)
}

func (f *fakeFeedbackRepo) Delete(ctx context.Context, id int64) error {
	return f.DeleteFn(ctx, id)
}

func (f *fakeFeedbackRepo) Stats(ctx context.Context) (*models.FeedbackStats, error) {
	return f.StatsFn(ctx)
}

func (f *fakeFeedbackRepo) Recent(ctx context.Context, limit int) ([]models.Feedback, error) {
	return f.RecentFn(ctx, limit)
}

type fakeRegistrationLinkRepo struct {
	GetActiveFn  func(ctx context.Context) (*models.RegistrationLink, error)
	ReplaceFn    func(ctx context.Context, link *models.RegistrationLink) (int64, error)
	DeactivateFn func(ctx context.Context, updatedBy int64) error
}

func (f *fakeRegistrationLinkRepo) GetActive(ctx context.Context) (*models.RegistrationLink, error) {
	if f.GetActiveFn == nil {
		return nil, apperrors.ErrRegistrationLinkNotFound
	}
	return f.GetActiveFn(ctx)
}

func (f *fakeRegistrationLinkRepo) Replace(ctx context.Context, link *models.RegistrationLink) (int64, error) {
	return f.ReplaceFn(ctx, link)
}

func (f *fakeRegistrationLinkRepo) Deactivate(ctx context.Context, updatedBy int64) error {
	return f.DeactivateFn(ctx, updatedBy)
}

type fakeCourseResourceRepo struct {
	UpsertFn   func(ctx context.Context, resource *models.CourseResource) (int64, error)
	GetByKeyFn func(ctx context.Context, subject, grade string) (*models.CourseResource, error)
	GetAllFn   func(ctx context.Context) ([]models.CourseResource, error)
	DeleteFn   func(ctx context.Context, id int64) error
}

func (f *fakeCourseResourceRepo) Upsert(ctx context.Context, resource *models.CourseResource) (int64, error) {
	return f.UpsertFn(ctx, resource)
}

func (f *fakeCourseResourceRepo) GetByKey(ctx context.Context, subject, grade string) (*models.CourseResource, error) {
	return f.GetByKeyFn(ctx, subject, grade)
}

func (f *fakeCourseResourceRepo) GetAll(ctx context.Context) ([]models.CourseResource, error) {
	return f.GetAllFn(ctx)
}

func (f *fakeCourseResourceRepo) Delete(ctx context.Context, id int64) error {
	return f.DeleteFn(ctx, id)
}
