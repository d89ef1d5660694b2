package model

import "time"

// StudentRecord tracks a postgraduate student's progress through the defense
// stages of their program. CurrentStage/Completed are mutated only through
// the progression engine; Version backs the optimistic write check so
// concurrent approve/advance calls on the same student cannot both apply.
//
// swagger:model StudentRecord
type StudentRecord struct {
	BaseModel
	UserID       uint     `gorm:"not null;uniqueIndex:idx_student_user_session" json:"userId"`
	User         *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	SessionID    uint     `gorm:"not null;uniqueIndex:idx_student_user_session" json:"sessionId"`
	Session      *Session `gorm:"foreignKey:SessionID" json:"session,omitempty"`
	MatricNo     string   `gorm:"size:30;unique;not null" json:"matricNo"`
	Program      string   `gorm:"type:enum('msc','phd');not null" json:"program"`
	Department   string   `gorm:"size:100" json:"department"`
	ThesisTitle  string   `gorm:"size:255" json:"thesisTitle"`
	CurrentStage string   `gorm:"size:30;not null;default:'start'" json:"currentStage"`
	Completed    bool     `gorm:"default:false" json:"completed"`
	Version      uint     `gorm:"not null;default:0" json:"-"`
}

func (StudentRecord) TableName() string {
	return "student_records"
}

// StageApproval is the per-stage outcome history of a student: approval
// status plus the composite score snapshot recorded at approval time.
//
// swagger:model StageApproval
type StageApproval struct {
	BaseModel
	StudentID      uint       `gorm:"not null;uniqueIndex:idx_approval_student_stage" json:"studentId"`
	Stage          string     `gorm:"size:30;not null;uniqueIndex:idx_approval_student_stage" json:"stage"`
	Status         string     `gorm:"size:10;not null;default:'pending'" json:"status"`
	CompositeScore int        `gorm:"default:0" json:"compositeScore"`
	ApprovedByID   *uint      `json:"approvedById,omitempty"`
	ApprovedBy     *User      `gorm:"foreignKey:ApprovedByID" json:"approvedBy,omitempty"`
	ApprovedAt     *time.Time `json:"approvedAt,omitempty"`
}

func (StageApproval) TableName() string {
	return "stage_approvals"
}
