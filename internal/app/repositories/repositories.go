package repositories

import (
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is the shared sentinel for point lookups that match no row.
var ErrNotFound = errors.New("not found")

// statementBuilder returns a squirrel builder configured for PostgreSQL
// placeholders. Every repository query goes through it.
func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	StudentRepository      *StudentRepository
	AcademicRepository     *AcademicRepository
	LibraryRepository      *LibraryRepository
	FeedbackRepository     *FeedbackRepository
	UploadRepository       *UploadRepository
	AuditRepository        *AuditRepository
	AnnouncementRepository *AnnouncementRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		StudentRepository:      NewStudentRepository(db),
		AcademicRepository:     NewAcademicRepository(db),
		LibraryRepository:      NewLibraryRepository(db),
		FeedbackRepository:     NewFeedbackRepository(db),
		UploadRepository:       NewUploadRepository(db),
		AuditRepository:        NewAuditRepository(db),
		AnnouncementRepository: NewAnnouncementRepository(db),
	}
}
