package progression

// ActorRole identifies the caller of an approval action. The engine trusts
// the authorization layer to supply it and only enforces the role-to-stage
// gate table.
type ActorRole string

// AllowApproveWithoutRubric permits approving a stage that has no published
// rubric; the recorded composite is then zero. Early-stage gates (Start in
// particular) are administrative sign-offs with nothing to score.
const AllowApproveWithoutRubric = true

const (
	ActorMajorSupervisor ActorRole = "major_supervisor"
	ActorHOD             ActorRole = "hod"
	ActorDean            ActorRole = "dean"
	ActorProvost         ActorRole = "provost"
)

// CanApprove reports whether role passes the approval gate for the given
// stage of a program:
//
//	Start                             -> major supervisor
//	seminar / internal stages         -> HOD or Dean
//	External Defense                  -> Provost
func CanApprove(p Program, stage Stage, role ActorRole) (bool, error) {
	if _, err := StageIndex(p, stage); err != nil {
		return false, err
	}
	switch stage {
	case StageStart:
		return role == ActorMajorSupervisor, nil
	case StageExternalDefense:
		return role == ActorProvost, nil
	default:
		return role == ActorHOD || role == ActorDean, nil
	}
}
