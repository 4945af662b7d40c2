package seed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/sicproject/backend/internal/app/models"
	"github.com/sicproject/backend/internal/app/repositories"
)

type seedStudent struct {
	ID       string
	Name     string
	City     string
	Dept     string
	Batch    int
	Semester int
	Age      int
	Password string
}

var seedStudents = []seedStudent{
	{"STU001", "Rahul Sharma", "Mumbai", "CSE", 2023, 4, 20, "rahul123"},
	{"STU002", "Priya Patel", "Ahmedabad", "ECE", 2023, 4, 19, "priya123"},
	{"STU003", "Arjun Reddy", "Hyderabad", "CSE", 2022, 6, 21, "arjun123"},
	{"STU004", "Sneha Gupta", "Delhi", "IT", 2024, 2, 18, "sneha123"},
	{"STU005", "Vikram Singh", "Lucknow", "ME", 2022, 6, 21, "vikram123"},
	{"STU006", "Anjali Verma", "Kanpur", "CSE", 2023, 3, 19, "anjali123"},
	{"STU007", "Rohit Kumar", "Bengaluru", "ECE", 2022, 5, 21, "rohit123"},
	{"STU008", "Harika Reddy", "Hyderabad", "CSE", 2023, 4, 20, "harika123"},
	{"STU009", "Meena Kumari", "Jaipur", "CE", 2023, 4, 20, "meena123"},
	{"STU010", "Soni Kumar", "Vijayawada", "CSE", 2024, 2, 18, "soni123"},
	{"STU011", "Pranav Desai", "Surat", "IT", 2023, 4, 19, "pranav123"},
	{"STU012", "Manish Yadav", "Kanpur", "ME", 2022, 6, 21, "manish123"},
	{"STU013", "Vishal Mehta", "Mumbai", "CSE", 2023, 4, 20, "vishal123"},
	{"STU014", "Deepak Sharma", "Jaipur", "ECE", 2022, 6, 21, "deepak123"},
	{"STU015", "Varun Nair", "Kochi", "CSE", 2024, 2, 18, "varun123"},
	{"STU016", "Satya Narayan", "Bhubaneswar", "CSE", 2023, 4, 20, "satya123"},
	{"STU017", "Suresh Babu", "Tirupati", "ME", 2022, 6, 21, "suresh123"},
	{"STU018", "Mahesh Rao", "Bengaluru", "CSE", 2023, 4, 20, "mahesh123"},
	{"STU019", "Bhavana Iyer", "Chennai", "ECE", 2024, 2, 18, "bhavana123"},
	{"STU020", "Mounika Das", "Hyderabad", "IT", 2023, 4, 20, "mounika123"},
	{"STU021", "Swapna R", "Vijayawada", "CSE", 2023, 4, 20, "swapna123"},
	{"STU022", "Chaitra K", "Mysuru", "CSE", 2023, 4, 20, "chaitra123"},
	{"STU023", "Divya Sharma", "New Delhi", "CE", 2022, 6, 21, "divya123"},
	{"STU024", "Sneha Patel", "Ahmedabad", "CSE", 2024, 2, 18, "snehap123"},
	{"STU025", "Teja Kumar", "Visakhapatnam", "CSE", 2023, 4, 20, "teja123"},
	{"STU026", "Ramesh Gupta", "Patna", "ME", 2022, 6, 21, "ramesh123"},
	{"STU027", "Nikita R", "Pune", "CSE", 2023, 4, 20, "nikita123"},
	{"STU028", "Kavya S", "Mysuru", "ECE", 2023, 4, 20, "kavya123"},
	{"STU029", "Asha Verma", "Kanpur", "IT", 2024, 2, 18, "asha123"},
	{"STU030", "Rohini P", "Coimbatore", "CSE", 2023, 4, 20, "rohini123"},
}

var seedSubjects = []models.Subject{
	{ID: "SUB101", Name: "Data Structures", Code: "DS101", Credits: 4, Department: "CSE", Semester: 4},
	{ID: "SUB102", Name: "Database Systems", Code: "DB101", Credits: 4, Department: "CSE", Semester: 4},
	{ID: "SUB103", Name: "Operating Systems", Code: "OS101", Credits: 4, Department: "CSE", Semester: 4},
	{ID: "SUB104", Name: "Web Technologies", Code: "WT101", Credits: 3, Department: "CSE", Semester: 4},
	{ID: "SUB105", Name: "Mathematics", Code: "MA101", Credits: 3, Department: "CSE", Semester: 4},
}

// CreateDefaultData seeds the demo data set: the admin account, thirty
// student records with matching accounts, subjects, marks, attendance,
// fees and a few library rows. Seeding is skipped entirely when the
// admin account already exists.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)
	studentRepo := repositories.NewStudentRepository(dbPool)
	academicRepo := repositories.NewAcademicRepository(dbPool)
	libraryRepo := repositories.NewLibraryRepository(dbPool)

	exists, err := userRepo.UsernameExists(ctx, "admin")
	if err != nil {
		return fmt.Errorf("failed to check for existing seed data: %w", err)
	}
	if exists {
		lgr.Debug().Msg("Seed data already present, skipping")
		return nil
	}

	lgr.Info().Msg("Seeding default data...")

	// Admin credentials are intentionally stored as-is; the credential
	// contract of this system is plaintext end to end.
	if _, err := userRepo.Create(ctx, &models.User{
		Username: "admin",
		Password: "admin123",
		Role:     models.RoleAdmin,
	}); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	for i, s := range seedStudents {
		studentID := s.ID
		if _, err := userRepo.Create(ctx, &models.User{
			Username:  s.ID,
			Password:  s.Password,
			Role:      models.RoleStudent,
			StudentID: &studentID,
		}); err != nil {
			return fmt.Errorf("failed to seed account %s: %w", s.ID, err)
		}

		phone := fmt.Sprintf("+91%d", 9000000000+int64(i))
		email := strings.ToLower(strings.ReplaceAll(s.Name, " ", ".")) + "@example.edu"
		cgpa := 7.0 + float64(i%20)/10

		if err := studentRepo.Insert(ctx, &models.Student{
			ID:       s.ID,
			Name:     s.Name,
			Age:      s.Age,
			Dept:     s.Dept,
			Semester: s.Semester,
			Batch:    s.Batch,
			Phone:    phone,
			Email:    email,
			City:     s.City,
			CGPA:     cgpa,
		}); err != nil {
			return fmt.Errorf("failed to seed student %s: %w", s.ID, err)
		}
	}

	for _, sub := range seedSubjects {
		if _, err := dbPool.Exec(ctx,
			`INSERT INTO subjects(subject_id,subject_name,subject_code,credits,department,semester) VALUES($1,$2,$3,$4,$5,$6)`,
			sub.ID, sub.Name, sub.Code, sub.Credits, sub.Department, sub.Semester); err != nil {
			return fmt.Errorf("failed to seed subject %s: %w", sub.ID, err)
		}
	}

	if err := seedMarks(ctx, dbPool); err != nil {
		return err
	}
	if err := seedAttendance(ctx, academicRepo); err != nil {
		return err
	}
	if err := seedFees(ctx, dbPool); err != nil {
		return err
	}
	if err := seedLibrary(ctx, libraryRepo); err != nil {
		return err
	}

	if _, err := dbPool.Exec(ctx,
		`INSERT INTO announcements(title,content,posted_by,date,audience) VALUES($1,$2,$3,$4,$5)`,
		"Welcome", "Welcome to the Student Information Center.", "admin", time.Now(), "all"); err != nil {
		return fmt.Errorf("failed to seed announcement: %w", err)
	}

	if _, err := dbPool.Exec(ctx,
		`INSERT INTO logs(user_id,action,endpoint,ip_address,timestamp,request_data) VALUES($1,$2,$3,$4,$5,$6)`,
		"system", "seed", "/seed", "127.0.0.1", time.Now(), "seeded db"); err != nil {
		return fmt.Errorf("failed to seed log entry: %w", err)
	}

	lgr.Info().
		Int("students", len(seedStudents)).
		Int("subjects", len(seedSubjects)).
		Msg("Default data seeded")
	return nil
}

// seedMarks writes one End-Term mark per student and subject. Scores are
// deterministic in the 40..95 range so the grade spread is stable.
func seedMarks(ctx context.Context, dbPool *pgxpool.Pool) error {
	for i := range seedStudents {
		for j, sub := range seedSubjects {
			score := 40 + (i+j*7)%56
			grade := models.LetterGrade(score, 100)
			if _, err := dbPool.Exec(ctx,
				`INSERT INTO marks(student_id,subject_id,exam_type,marks,max_marks,grade) VALUES($1,$2,$3,$4,$5,$6)`,
				seedStudents[i].ID, sub.ID, "End-Term", score, 100, grade); err != nil {
				return fmt.Errorf("failed to seed marks for %s: %w", seedStudents[i].ID, err)
			}
		}
	}
	return nil
}

// seedAttendance writes a few weekly rows per student over the last
// month, mostly present.
func seedAttendance(ctx context.Context, repo *repositories.AcademicRepository) error {
	now := time.Now()
	for d := 1; d <= 30; d += 7 {
		date := now.AddDate(0, 0, -d).Format("2006-01-02")
		for i, s := range seedStudents {
			status := models.AttendancePresent
			if (i+d)%10 == 0 {
				status = models.AttendanceAbsent
			}
			sub := seedSubjects[(i+d)%len(seedSubjects)]
			if err := repo.InsertAttendance(ctx, &models.Attendance{
				StudentID: s.ID,
				SubjectID: sub.ID,
				Date:      date,
				Status:    status,
				MarkedBy:  "faculty1",
			}); err != nil {
				return fmt.Errorf("failed to seed attendance for %s: %w", s.ID, err)
			}
		}
	}
	return nil
}

// seedFees writes one semester-4 fee row per student with a rotating
// paid/partial split.
func seedFees(ctx context.Context, dbPool *pgxpool.Pool) error {
	const total = 45000
	today := time.Now().Format("2006-01-02")

	for i, s := range seedStudents {
		paid := 33000
		switch i % 3 {
		case 0:
			paid = total
		case 1:
			paid = 30000
		}
		status := models.FeeStatus(paid, total)

		var paymentDate *string
		if paid > 0 {
			paymentDate = &today
		}

		if _, err := dbPool.Exec(ctx,
			`INSERT INTO fees(student_id,semester,amount,paid_amount,due_date,status,payment_date) VALUES($1,$2,$3,$4,$5,$6,$7)`,
			s.ID, 4, total, paid, "2025-12-15", status, paymentDate); err != nil {
			return fmt.Errorf("failed to seed fees for %s: %w", s.ID, err)
		}
	}
	return nil
}

func seedLibrary(ctx context.Context, repo *repositories.LibraryRepository) error {
	loans := []models.LibraryLoan{
		{StudentID: "STU001", BookID: "B1001", Title: "Database Systems", IssueDate: "2025-10-01", DueDate: "2025-10-30", Fine: 50},
		{StudentID: "STU001", BookID: "B1004", Title: "Web Technologies", IssueDate: "2025-10-15", DueDate: "2025-11-15", Fine: 0},
		{StudentID: "STU002", BookID: "B1002", Title: "Design Patterns", IssueDate: "2025-09-20", DueDate: "2025-10-20", Fine: 0},
	}
	for i := range loans {
		if _, err := repo.InsertLoan(ctx, &loans[i]); err != nil {
			return fmt.Errorf("failed to seed library loan for %s: %w", loans[i].StudentID, err)
		}
	}
	return nil
}
