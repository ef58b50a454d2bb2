package models

// Student defines the student model based on the 'students' table.
// TeacherID is a weak back reference to a users row with role=teacher;
// it is nulled out if that teacher is ever removed.
type Student struct {
	ID        int64  `json:"id" db:"id" example:"1"`            // Unique identifier for the student record
	Name      string `json:"name" db:"name" example:"Bob"`      // Student's display name
	Branch    string `json:"branch" db:"branch" example:"B1"`   // Organizational unit
	Group     string `json:"group" db:"group_name" example:"G1"` // Class/cohort within the branch
	TeacherID *int64 `json:"teacherId,omitempty" db:"teacher_id"` // Assigned teacher (nullable)
}
