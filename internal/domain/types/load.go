package types

// LoadState is a state of the load-cycle state machine.
type LoadState int

const (
	StateIdle LoadState = iota
	StateLoading
	StateSuccess
	StateEmpty
	StateError
)

func (s LoadState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateEmpty:
		return "empty"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition happens without a new load.
func (s LoadState) Terminal() bool {
	return s == StateSuccess || s == StateEmpty || s == StateError
}

// FailureKind classifies why a load cycle ended in StateError. Users see one
// error state; operators see the kind in logs.
type FailureKind int

const (
	NoFailure FailureKind = iota
	NetworkFailure
	HTTPError
	ParseFailure
)

func (k FailureKind) String() string {
	switch k {
	case NoFailure:
		return "none"
	case NetworkFailure:
		return "network"
	case HTTPError:
		return "http_status"
	case ParseFailure:
		return "parse"
	default:
		return "unknown"
	}
}
