package model

// ScoreEntry is one panel member's raw score for one criterion of a student's
// stage. Upserted per (student, stage, criterion, scorer).
//
// swagger:model ScoreEntry
type ScoreEntry struct {
	BaseModel
	StudentID      uint   `gorm:"not null;uniqueIndex:idx_score_entry" json:"studentId"`
	Stage          string `gorm:"size:30;not null;uniqueIndex:idx_score_entry" json:"stage"`
	CriterionTitle string `gorm:"size:100;not null;uniqueIndex:idx_score_entry" json:"criterionTitle"`
	ScorerID       uint   `gorm:"not null;uniqueIndex:idx_score_entry" json:"scorerId"`
	Scorer         *User  `gorm:"foreignKey:ScorerID" json:"scorer,omitempty"`
	Score          int    `gorm:"not null" json:"score"`
	Remark         string `gorm:"size:255" json:"remark"`
}

func (ScoreEntry) TableName() string {
	return "score_entries"
}
