package models

// Mark defines a row from the 'marks' table joined with the subject name.
type Mark struct {
	ID          int64  `json:"id" db:"id"`
	StudentID   string `json:"student_id" db:"student_id"`
	SubjectID   string `json:"subject_id" db:"subject_id"`
	ExamType    string `json:"exam_type" db:"exam_type"`
	Score       int    `json:"marks" db:"marks"`
	MaxScore    int    `json:"max_marks" db:"max_marks"`
	Grade       string `json:"grade" db:"grade"`
	SubjectName string `json:"subject_name,omitempty"`
}

// LetterGrade derives the letter grade from a score out of maxScore.
// Thresholds on the percentage: >=85 A, >=70 B, >=55 C, else D.
func LetterGrade(score, maxScore int) string {
	if maxScore <= 0 {
		return "D"
	}
	pct := float64(score) * 100 / float64(maxScore)
	switch {
	case pct >= 85:
		return "A"
	case pct >= 70:
		return "B"
	case pct >= 55:
		return "C"
	default:
		return "D"
	}
}
