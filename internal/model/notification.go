package model

const (
	NotifyStageApproved     = "stage_approved"
	NotifyStageAdvanced     = "stage_advanced"
	NotifyDefenseScheduled  = "defense_scheduled"
	NotifyPanelAssigned     = "panel_assigned"
	NotifyRecordReset       = "record_reset"
	NotifyManuscriptUpload  = "manuscript_uploaded"
)

// swagger:model Notification
type Notification struct {
	BaseModel
	UserID uint   `gorm:"not null;index" json:"userId"`
	Type   string `gorm:"size:30;not null" json:"type"`
	Title  string `gorm:"size:150;not null" json:"title"`
	Body   string `gorm:"size:500" json:"body"`
	Read   bool   `gorm:"default:false;index" json:"read"`
}

func (Notification) TableName() string {
	return "notifications"
}
