package model

// Session is an academic session, e.g. "2025/2026". At most one session is
// active at a time; activating a session deactivates the rest.
//
// swagger:model Session
type Session struct {
	BaseModel
	Name   string `gorm:"size:20;unique;not null" json:"name"`
	Active bool   `gorm:"default:false" json:"active"`
}

func (Session) TableName() string {
	return "sessions"
}
