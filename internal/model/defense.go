package model

import "time"

// DefenseSchedule is a scheduled defense day: a stage sitting for a set of
// students of one program, with a venue and a chairing lecturer.
//
// swagger:model DefenseSchedule
type DefenseSchedule struct {
	BaseModel
	SessionID uint            `gorm:"not null;index" json:"sessionId"`
	Session   *Session        `gorm:"foreignKey:SessionID" json:"session,omitempty"`
	Program   string          `gorm:"type:enum('msc','phd');not null" json:"program"`
	Stage     string          `gorm:"size:30;not null" json:"stage"`
	Date      time.Time       `gorm:"not null;index" json:"date"`
	Venue     string          `gorm:"size:150" json:"venue"`
	ChairID   *uint           `json:"chairId,omitempty"`
	Chair     *User           `gorm:"foreignKey:ChairID" json:"chair,omitempty"`
	Students  []StudentRecord `gorm:"many2many:defense_schedule_students" json:"students,omitempty"`
}

func (DefenseSchedule) TableName() string {
	return "defense_schedules"
}
