package services

import (
	"context"
	"errors"

	"github.com/sicproject/backend/internal/app/models"
	"github.com/sicproject/backend/internal/app/models/dto"
	"github.com/sicproject/backend/internal/app/repositories"
)

// recordedAudit is one captured audit call.
type recordedAudit struct {
	Actor    string
	Action   string
	Endpoint string
	IP       string
	Payload  interface{}
}

// fakeAudit collects audit calls in memory.
type fakeAudit struct {
	entries []recordedAudit
}

func (f *fakeAudit) Record(_ context.Context, actor, action, endpoint, ip string, payload interface{}) {
	f.entries = append(f.entries, recordedAudit{
		Actor:    actor,
		Action:   action,
		Endpoint: endpoint,
		IP:       ip,
		Payload:  payload,
	})
}

func (f *fakeAudit) actions() []string {
	out := make([]string, 0, len(f.entries))
	for _, e := range f.entries {
		out = append(out, e.Action)
	}
	return out
}

var errStoreDown = errors.New("store down")

// memStudentStore is an in-memory studentStore.
type memStudentStore struct {
	students map[string]models.Student
	order    []string
	failAll  bool
}

func newMemStudentStore(students ...models.Student) *memStudentStore {
	s := &memStudentStore{students: map[string]models.Student{}}
	for _, st := range students {
		s.students[st.ID] = st
		s.order = append(s.order, st.ID)
	}
	return s
}

func (s *memStudentStore) ListSummaries(context.Context) ([]models.StudentSummary, error) {
	if s.failAll {
		return nil, errStoreDown
	}
	out := []models.StudentSummary{}
	for _, id := range s.order {
		st := s.students[id]
		out = append(out, models.StudentSummary{
			ID: st.ID, Name: st.Name, Dept: st.Dept, Semester: st.Semester, City: st.City, CGPA: st.CGPA,
		})
	}
	return out, nil
}

func (s *memStudentStore) GetByID(_ context.Context, id string) (*models.Student, error) {
	if s.failAll {
		return nil, errStoreDown
	}
	st, ok := s.students[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &st, nil
}

func (s *memStudentStore) Update(_ context.Context, id string, fields map[string]interface{}) (int64, error) {
	if s.failAll {
		return 0, errStoreDown
	}
	st, ok := s.students[id]
	if !ok {
		return 0, nil
	}
	if name, ok := fields["name"].(string); ok {
		st.Name = name
	}
	if city, ok := fields["city"].(string); ok {
		st.City = city
	}
	if phone, ok := fields["phone"].(string); ok {
		st.Phone = phone
	}
	s.students[id] = st
	return 1, nil
}

func (s *memStudentStore) Search(_ context.Context, pattern string) ([]models.StudentRef, error) {
	if s.failAll {
		return nil, errStoreDown
	}
	out := []models.StudentRef{}
	for _, id := range s.order {
		st := s.students[id]
		if contains(st.Name, pattern) || contains(st.ID, pattern) {
			out = append(out, models.StudentRef{ID: st.ID, Name: st.Name, Dept: st.Dept})
		}
	}
	return out, nil
}

func (s *memStudentStore) SearchByName(_ context.Context, pattern string) ([]models.StudentRef, error) {
	if s.failAll {
		return nil, errStoreDown
	}
	out := []models.StudentRef{}
	for _, id := range s.order {
		st := s.students[id]
		if contains(st.Name, pattern) {
			out = append(out, models.StudentRef{ID: st.ID, Name: st.Name, Dept: st.Dept})
		}
	}
	return out, nil
}

func (s *memStudentStore) Insert(_ context.Context, st *models.Student) error {
	if s.failAll {
		return errStoreDown
	}
	if _, ok := s.students[st.ID]; ok {
		return repositories.ErrStudentExists
	}
	s.students[st.ID] = *st
	s.order = append(s.order, st.ID)
	return nil
}

func (s *memStudentStore) Delete(_ context.Context, id string) (int64, error) {
	if s.failAll {
		return 0, errStoreDown
	}
	if _, ok := s.students[id]; !ok {
		return 0, nil
	}
	delete(s.students, id)
	for i, sid := range s.order {
		if sid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return 1, nil
}

func (s *memStudentStore) ListIDs(context.Context) ([]string, error) {
	if s.failAll {
		return nil, errStoreDown
	}
	return append([]string{}, s.order...), nil
}

func (s *memStudentStore) CountByDept(context.Context) ([]dto.DeptCount, error) {
	if s.failAll {
		return nil, errStoreDown
	}
	counts := map[string]int64{}
	var depts []string
	for _, id := range s.order {
		dept := s.students[id].Dept
		if _, seen := counts[dept]; !seen {
			depts = append(depts, dept)
		}
		counts[dept]++
	}
	out := []dto.DeptCount{}
	for _, d := range depts {
		out = append(out, dto.DeptCount{Dept: d, Count: counts[d]})
	}
	return out, nil
}

func contains(s, sub string) bool {
	if sub == "" {
		return true
	}
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}

// memAcademicStore is an in-memory academicStore.
type memAcademicStore struct {
	marks      map[string][]models.Mark
	attendance []models.Attendance
	fees       map[string][]models.Fee
	failFor    map[string]bool
}

func newMemAcademicStore() *memAcademicStore {
	return &memAcademicStore{
		marks:   map[string][]models.Mark{},
		fees:    map[string][]models.Fee{},
		failFor: map[string]bool{},
	}
}

func (s *memAcademicStore) MarksByStudent(_ context.Context, studentID string) ([]models.Mark, error) {
	return append([]models.Mark{}, s.marks[studentID]...), nil
}

func (s *memAcademicStore) AttendanceByStudent(_ context.Context, studentID string) ([]models.Attendance, error) {
	out := []models.Attendance{}
	for _, a := range s.attendance {
		if a.StudentID == studentID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *memAcademicStore) FeesByStudent(_ context.Context, studentID string) ([]models.Fee, error) {
	return append([]models.Fee{}, s.fees[studentID]...), nil
}

func (s *memAcademicStore) InsertAttendance(_ context.Context, a *models.Attendance) error {
	if s.failFor[a.StudentID] {
		return errStoreDown
	}
	s.attendance = append(s.attendance, *a)
	return nil
}
