package escrow

import "fmt"

// State is a step in the key lifecycle of one operation.
type State int

const (
	// StateIdle is the state before any key material exists.
	StateIdle State = iota
	// StateKeyMaterialLive means a key or candidate key is held in memory.
	StateKeyMaterialLive
	// StatePersisted means the operation produced its outputs.
	StatePersisted
	// StateFailed means the operation returned an error.
	StateFailed
	// StateScrubbed means all key material of the operation has been wiped.
	StateScrubbed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateKeyMaterialLive:
		return "key-material-live"
	case StatePersisted:
		return "persisted"
	case StateFailed:
		return "failed"
	case StateScrubbed:
		return "scrubbed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Operation names the two lifecycles.
type Operation string

const (
	// OpSplitAndEncrypt is the encrypt path.
	OpSplitAndEncrypt Operation = "split-and-encrypt"
	// OpReconstructAndDecrypt is the decrypt path.
	OpReconstructAndDecrypt Operation = "reconstruct-and-decrypt"
)

// Observer is notified on every state transition.
type Observer func(op Operation, state State)
