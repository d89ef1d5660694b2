package model

import "time"

const (
	RubricDraft     = "draft"
	RubricPublished = "published"
)

// RubricSet is a stage's scoring rubric for a session and program. Draft sets
// are editable; publishing requires the criterion weights to sum to exactly
// 100 and freezes the set.
//
// swagger:model RubricSet
type RubricSet struct {
	BaseModel
	SessionID   uint              `gorm:"not null;uniqueIndex:idx_rubric_scope" json:"sessionId"`
	Session     *Session          `gorm:"foreignKey:SessionID" json:"session,omitempty"`
	Program     string            `gorm:"type:enum('msc','phd');not null;uniqueIndex:idx_rubric_scope" json:"program"`
	Stage       string            `gorm:"size:30;not null;uniqueIndex:idx_rubric_scope" json:"stage"`
	Status      string            `gorm:"size:10;not null;default:'draft'" json:"status"`
	PublishedAt *time.Time        `json:"publishedAt,omitempty"`
	Criteria    []RubricCriterion `gorm:"foreignKey:RubricSetID" json:"criteria,omitempty"`
}

func (RubricSet) TableName() string {
	return "rubric_sets"
}

// swagger:model RubricCriterion
type RubricCriterion struct {
	BaseModel
	RubricSetID uint   `gorm:"not null;index" json:"rubricSetId"`
	Title       string `gorm:"size:100;not null" json:"title"`
	Percentage  int    `gorm:"not null" json:"percentage"`
	Position    int    `gorm:"not null;default:0" json:"position"`
}

func (RubricCriterion) TableName() string {
	return "rubric_criteria"
}
