package service

import (
	"context"
	"time"

	"thesistrack_backend/internal/model"
	"thesistrack_backend/internal/progression"
	"thesistrack_backend/internal/repository"
)

type DashboardService struct {
	StudentRepo      *repository.StudentRepository
	DefenseRepo      *repository.DefenseRepository
	PanelRepo        *repository.PanelRepository
	NotificationRepo *repository.NotificationRepository
}

func NewDashboardService(studentRepo *repository.StudentRepository, defenseRepo *repository.DefenseRepository, panelRepo *repository.PanelRepository, notificationRepo *repository.NotificationRepository) *DashboardService {
	return &DashboardService{StudentRepo: studentRepo, DefenseRepo: defenseRepo, PanelRepo: panelRepo, NotificationRepo: notificationRepo}
}

type DashboardView struct {
	StageCounts         map[string]map[string]int64 `json:"stageCounts"`
	PendingApprovals    []model.StudentRecord       `json:"pendingApprovals"`
	UpcomingDefenses    []model.DefenseSchedule     `json:"upcomingDefenses"`
	RecentNotifications []model.Notification        `json:"recentNotifications"`
	UnreadNotifications int64                       `json:"unreadNotifications"`
}

// maxDashboardScan caps how many student rows the pending-approval filter
// walks; departments are far smaller than this in practice.
const maxDashboardScan = 500

// Overview builds the landing dashboard for a staff member: session-wide
// stage distribution, the students whose current stage the caller's role can
// approve, and the next week of scheduled defenses.
func (s *DashboardService) Overview(ctx context.Context, viewer *model.User, sessionID uint) (*DashboardView, error) {
	counts, err := s.StudentRepo.CountByStage(sessionID)
	if err != nil {
		return nil, err
	}

	pending, err := s.pendingForViewer(viewer, sessionID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	weekEnd := now.AddDate(0, 0, 7)
	upcoming, _, err := s.DefenseRepo.List(1, 20, sessionID, "", &now, &weekEnd)
	if err != nil {
		return nil, err
	}

	recent, _, err := s.NotificationRepo.ListForUser(viewer.ID, 1, 5, false)
	if err != nil {
		return nil, err
	}
	unread, err := s.NotificationRepo.UnreadCount(ctx, viewer.ID)
	if err != nil {
		return nil, err
	}

	return &DashboardView{
		StageCounts:         counts,
		PendingApprovals:    pending,
		UpcomingDefenses:    upcoming,
		RecentNotifications: recent,
		UnreadNotifications: unread,
	}, nil
}

// pendingForViewer filters students down to those whose current stage passes
// the viewer's approval gate. Supervisors additionally only see students
// whose panel lists them as major supervisor.
func (s *DashboardService) pendingForViewer(viewer *model.User, sessionID uint) ([]model.StudentRecord, error) {
	var role progression.ActorRole
	switch viewer.Role {
	case model.Supervisor:
		role = progression.ActorMajorSupervisor
	case model.HOD, model.Admin:
		role = progression.ActorHOD
	case model.Dean:
		role = progression.ActorDean
	case model.Provost:
		role = progression.ActorProvost
	default:
		return nil, nil
	}

	students, _, err := s.StudentRepo.List(1, maxDashboardScan, sessionID, "", "", "")
	if err != nil {
		return nil, err
	}

	var supervised map[uint]bool
	if viewer.Role == model.Supervisor {
		assignments, err := s.PanelRepo.ListForAssignee(viewer.ID)
		if err != nil {
			return nil, err
		}
		supervised = map[uint]bool{}
		for _, a := range assignments {
			if a.Role == string(progression.PanelMajorSupervisor) {
				supervised[a.StudentID] = true
			}
		}
	}

	var pending []model.StudentRecord
	for _, student := range students {
		if student.Completed {
			continue
		}
		ok, err := progression.CanApprove(
			progression.Program(student.Program),
			progression.Stage(student.CurrentStage),
			role,
		)
		if err != nil || !ok {
			continue
		}
		if supervised != nil && !supervised[student.ID] {
			continue
		}
		approval, err := s.StudentRepo.FindApproval(student.ID, student.CurrentStage)
		if err == nil && approval.Status == string(progression.StatusApproved) {
			continue
		}
		pending = append(pending, student)
	}
	return pending, nil
}
