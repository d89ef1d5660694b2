package model

// Manuscript is an uploaded thesis document for a student's stage. Uploads
// never overwrite: each upload gets the next revision number.
//
// swagger:model Manuscript
type Manuscript struct {
	BaseModel
	StudentID    uint   `gorm:"not null;index" json:"studentId"`
	Stage        string `gorm:"size:30;not null" json:"stage"`
	Revision     int    `gorm:"not null;default:1" json:"revision"`
	FileName     string `gorm:"size:255;not null" json:"fileName"`
	StoragePath  string `gorm:"size:500;not null" json:"-"`
	ContentType  string `gorm:"size:100" json:"contentType"`
	Size         int64  `json:"size"`
	UploadedByID uint   `gorm:"not null" json:"uploadedById"`
	UploadedBy   *User  `gorm:"foreignKey:UploadedByID" json:"uploadedBy,omitempty"`
}

func (Manuscript) TableName() string {
	return "manuscripts"
}
