package enum

// CheckoutStage identifies where a checkout attempt is in its sequence of
// fallible steps. Stages advance strictly in order; a failure at any stage
// short-circuits the rest.
type CheckoutStage int

const (
	StageValidating CheckoutStage = iota
	StageResolvingEmployee
	StageResolvingSchedule
	StageSubmitting
	StageDone
	StageFailed
)

func (s CheckoutStage) String() string {
	switch s {
	case StageValidating:
		return "validating"
	case StageResolvingEmployee:
		return "resolving_employee"
	case StageResolvingSchedule:
		return "resolving_schedule"
	case StageSubmitting:
		return "submitting"
	case StageDone:
		return "done"
	case StageFailed:
		return "failed"
	}
	return "unknown"
}
