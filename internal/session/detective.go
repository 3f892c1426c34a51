package session

type DetectiveStep string

const (
	DetectiveIdle               DetectiveStep = "idle"
	DetectiveSelectingTarget    DetectiveStep = "selecting_target"
	DetectiveAwaitingSecret     DetectiveStep = "awaiting_secret"
	DetectiveSelectingOwnSecret DetectiveStep = "selecting_own_secret"
)

// OwnSecretRequest tracks a request, directed at the local player, to pick
// one of their own secrets on behalf of another player's detective action.
// It is independent of whatever the local player's own flow is doing.
type OwnSecretRequest struct {
	ActionID    string
	RequesterID int
	SetType     SetType
}

type DetectiveFlow struct {
	Step        DetectiveStep
	ActionID    string
	InitiatorID int
	SetType     SetType
	TargetID    int
	OwnSecret   OwnSecretRequest
}

func NewDetectiveFlow() DetectiveFlow {
	return DetectiveFlow{Step: DetectiveIdle}
}

// foldDetective applies detective-flow actions to the flow's slice of the
// session. Actions it does not handle leave the flow untouched.
func foldDetective(f DetectiveFlow, a Action) DetectiveFlow {
	switch act := a.(type) {
	case DetectiveActionStarted:
		// A fresh start clears any stale target from a prior action.
		f.Step = DetectiveSelectingTarget
		f.ActionID = act.ActionID
		f.InitiatorID = act.InitiatorID
		f.SetType = act.SetType
		f.TargetID = 0
		return f

	case DetectiveTargetSelected:
		if f.Step != DetectiveSelectingTarget {
			return f
		}
		f.TargetID = act.TargetID
		if act.NeedsSecret {
			f.Step = DetectiveAwaitingSecret
		}
		return f

	case SelectOwnSecretRequested:
		// Reachable from any step: another player's action wants one of the
		// local player's secrets.
		f.Step = DetectiveSelectingOwnSecret
		f.OwnSecret = OwnSecretRequest{
			ActionID:    act.ActionID,
			RequesterID: act.RequesterID,
			SetType:     act.SetType,
		}
		return f

	case DetectiveActionComplete:
		// Full reset. Applying this twice is a no-op the second time.
		return NewDetectiveFlow()
	}
	return f
}
