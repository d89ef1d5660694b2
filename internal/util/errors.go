package util

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailRegistered     = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrStudentNotFound     = errors.New("student record not found")
	ErrSessionNotFound     = errors.New("session not found")
	ErrNoActiveSession     = errors.New("no active academic session")
	ErrRubricNotFound      = errors.New("rubric not found for this stage")
	ErrRubricNotPublished  = errors.New("rubric not published")
	ErrScheduleNotFound    = errors.New("defense schedule not found")
	ErrManuscriptNotFound  = errors.New("manuscript not found")
	ErrVersionConflict     = errors.New("record modified concurrently, refresh and retry")
	ErrMatricNoRegistered  = errors.New("matric number already registered")
	ErrNotPanelMember      = errors.New("caller is not on the student's panel")
	ErrUnknownCriterion    = errors.New("criterion is not part of the published rubric")
	ErrAssigneeNotLecturer = errors.New("panel assignee must be a lecturer account")
)
