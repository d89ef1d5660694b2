package model

// PanelAssignment binds one lecturer to one panel role for a student. The
// unique index keeps at most one active assignee per (student, role);
// re-assignment replaces the row.
//
// swagger:model PanelAssignment
type PanelAssignment struct {
	BaseModel
	StudentID  uint   `gorm:"not null;uniqueIndex:idx_panel_student_role" json:"studentId"`
	Role       string `gorm:"size:30;not null;uniqueIndex:idx_panel_student_role" json:"role"`
	AssigneeID uint   `gorm:"not null" json:"assigneeId"`
	Assignee   *User  `gorm:"foreignKey:AssigneeID" json:"assignee,omitempty"`
}

func (PanelAssignment) TableName() string {
	return "panel_assignments"
}
