package services

import (
	"context"
	"time"

	"github.com/sicproject/backend/internal/app/models"
)

// LibraryService covers loan lookups and book reservations.
type LibraryService interface {
	LoansByStudent(ctx context.Context, studentID string) ([]models.LibraryLoan, error)
	Search(ctx context.Context, pattern string) ([]models.LibraryLoan, error)
	// Reserve records a reservation as a zero-fine loan whose title is
	// derived from the book id. The book id is not checked against any
	// catalog.
	Reserve(ctx context.Context, studentID, bookID string, meta RequestMeta) (*models.LibraryLoan, error)
}

type loanStore interface {
	LoansByStudent(ctx context.Context, studentID string) ([]models.LibraryLoan, error)
	Search(ctx context.Context, pattern string) ([]models.LibraryLoan, error)
	InsertLoan(ctx context.Context, loan *models.LibraryLoan) (int64, error)
}

type libraryServiceImpl struct {
	loans loanStore
	audit AuditService
	now   func() time.Time
}

// NewLibraryService creates a new library service instance
func NewLibraryService(loans loanStore, audit AuditService) LibraryService {
	return &libraryServiceImpl{
		loans: loans,
		audit: audit,
		now:   time.Now,
	}
}

func (s *libraryServiceImpl) LoansByStudent(ctx context.Context, studentID string) ([]models.LibraryLoan, error) {
	loans, err := s.loans.LoansByStudent(ctx, studentID)
	if err != nil {
		return nil, classifyStoreError(err)
	}
	return loans, nil
}

func (s *libraryServiceImpl) Search(ctx context.Context, pattern string) ([]models.LibraryLoan, error) {
	loans, err := s.loans.Search(ctx, pattern)
	if err != nil {
		return nil, classifyStoreError(err)
	}
	return loans, nil
}

// Reserve inserts the reservation row and audits the attempt under the
// acting student id, or "unknown" when none was supplied.
func (s *libraryServiceImpl) Reserve(ctx context.Context, studentID, bookID string, meta RequestMeta) (*models.LibraryLoan, error) {
	now := s.now().UTC().Format(time.RFC3339)
	loan := &models.LibraryLoan{
		StudentID: studentID,
		BookID:    bookID,
		Title:     "reserved-" + bookID,
		IssueDate: now,
		DueDate:   now,
		Fine:      0,
	}

	id, err := s.loans.InsertLoan(ctx, loan)
	if err != nil {
		s.audit.Record(ctx, actorOrUnknown(studentID), "reserve_error", meta.Endpoint, meta.IP, err.Error())
		return nil, classifyStoreError(err)
	}
	loan.ID = id

	s.audit.Record(ctx, actorOrUnknown(studentID), "reserve_book", meta.Endpoint, meta.IP, map[string]interface{}{
		"book_id":    bookID,
		"student_id": studentID,
	})
	return loan, nil
}

func actorOrUnknown(actor string) string {
	if actor == "" {
		return "unknown"
	}
	return actor
}
