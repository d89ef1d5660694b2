package progression

// PanelRole is one of the closed set of defense panel roles.
type PanelRole string

const (
	PanelMajorSupervisor  PanelRole = "major_supervisor"
	PanelMinorSupervisor  PanelRole = "minor_supervisor"
	PanelInternalExaminer PanelRole = "internal_examiner"
	PanelExternalExaminer PanelRole = "external_examiner"
	PanelCollegeRep       PanelRole = "college_rep"
	PanelFacultyRep       PanelRole = "faculty_rep"
)

var panelRoles = map[PanelRole]bool{
	PanelMajorSupervisor:  true,
	PanelMinorSupervisor:  true,
	PanelInternalExaminer: true,
	PanelExternalExaminer: true,
	PanelCollegeRep:       true,
	PanelFacultyRep:       true,
}

func ValidPanelRole(r PanelRole) bool {
	return panelRoles[r]
}

// PanelRoles returns all panel roles in a stable order.
func PanelRoles() []PanelRole {
	return []PanelRole{
		PanelMajorSupervisor,
		PanelMinorSupervisor,
		PanelInternalExaminer,
		PanelExternalExaminer,
		PanelCollegeRep,
		PanelFacultyRep,
	}
}

// Panel holds at most one assignee per role for a student. Replacement on
// re-assignment keeps the one-assignee-per-role invariant by construction.
type Panel struct {
	assignments map[PanelRole]string
}

func NewPanel() *Panel {
	return &Panel{assignments: map[PanelRole]string{}}
}

// Assign sets the assignee for a role, replacing any prior assignee. The
// previous assignee (empty if none) is returned for audit.
func (p *Panel) Assign(role PanelRole, assignee string) (previous string, err error) {
	if !ValidPanelRole(role) {
		return "", ErrUnknownPanelRole
	}
	previous = p.assignments[role]
	p.assignments[role] = assignee
	return previous, nil
}

// Snapshot returns a copy of the current role to assignee mapping.
func (p *Panel) Snapshot() map[PanelRole]string {
	out := make(map[PanelRole]string, len(p.assignments))
	for r, a := range p.assignments {
		out[r] = a
	}
	return out
}
