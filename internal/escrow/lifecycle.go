package escrow

import "github.com/idelchi/goshare/internal/secret"

// lifecycle tracks one operation and owns its key.
type lifecycle struct {
	escrow *Escrow
	op     Operation
	key    *secret.Key
}

func (e *Escrow) begin(op Operation) *lifecycle {
	lc := &lifecycle{escrow: e, op: op}
	lc.transition(StateIdle)

	return lc
}

// hold takes ownership of key until finish.
func (lc *lifecycle) hold(key *secret.Key) {
	lc.key = key
	lc.transition(StateKeyMaterialLive)
}

// finish records the outcome and destroys the key. It must be deferred.
func (lc *lifecycle) finish(errp *error) {
	if *errp != nil {
		lc.transition(StateFailed)
	} else {
		lc.transition(StatePersisted)
	}

	lc.key.Destroy()
	lc.key = nil

	lc.transition(StateScrubbed)
}

func (lc *lifecycle) transition(state State) {
	lc.escrow.logger.Debug("key lifecycle", "operation", string(lc.op), "state", state.String())

	if lc.escrow.observer != nil {
		lc.escrow.observer(lc.op, state)
	}
}
