package reports

// transitions is the whole state machine. Resolved and Rejected have no entry,
// so nothing leaves them.
var transitions = map[Status][]Status{
	StatusPending:    {StatusInProgress, StatusResolved, StatusRejected},
	StatusInProgress: {StatusResolved, StatusRejected},
}

// RequestTransition decides whether current may move to requested. It performs
// no I/O; callers write the new status only after it succeeds.
func RequestTransition(current, requested Status) (Status, error) {
	for _, to := range transitions[current] {
		if to == requested {
			return requested, nil
		}
	}
	return current, &InvalidTransitionError{From: current, To: requested}
}

// AllowedTransitions lists the states reachable from s in one step.
func AllowedTransitions(s Status) []Status {
	next := transitions[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}
