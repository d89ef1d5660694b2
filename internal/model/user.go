package model

import (
	"time"
)

type UserRole string

const (
	Student       UserRole = "student"
	Supervisor    UserRole = "supervisor"
	HOD           UserRole = "hod"
	PGCoordinator UserRole = "pg_coordinator"
	Dean          UserRole = "dean"
	Provost       UserRole = "provost"
	Admin         UserRole = "admin"
)

// LecturerRoles are the roles a staff account may hold.
var LecturerRoles = []UserRole{Supervisor, HOD, PGCoordinator, Dean, Provost}

// swagger:model User
type User struct {
	BaseModel
	Name       string    `gorm:"size:100;not null" json:"name"`
	Email      string    `gorm:"size:100;unique;not null" json:"email"`
	Password   string    `gorm:"size:100;not null" json:"-"`
	Role       UserRole  `gorm:"type:enum('student','supervisor','hod','pg_coordinator','dean','provost','admin');default:'student'" json:"role"`
	Department string    `gorm:"size:100" json:"department"`
	StaffTitle string    `gorm:"size:50" json:"staffTitle"` // e.g. Dr., Prof.
	Disabled   bool      `gorm:"default:false" json:"disabled"`
	LastLogin  time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
	LastSeen   time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}

// IsLecturer reports whether the user holds a staff role.
func (u *User) IsLecturer() bool {
	for _, r := range LecturerRoles {
		if u.Role == r {
			return true
		}
	}
	return false
}
