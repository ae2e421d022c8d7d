//go:generate go run go.uber.org/mock/mockgen -source=communicator.go -destination=../mocks/mock_runtime.go -package=mocks

package runtime

import (
	"fmt"
	"sync"

	"sim-base/errors"
)

// Communicator identifies a group of cooperating processes and this
// process's place within it. Implementations are immutable after creation
// and safe for concurrent reads.
type Communicator interface {
	// Size returns the number of processes in the group.
	Size() int
	// Rank returns this process's zero-based index within the group.
	Rank() int
}

// Runtime is the distributed-computing substrate behind a Handle. Init and
// Finalize have process-wide, irreversible side effects and must each be
// called at most once per process; Handle is the sole caller of both in this
// library. Real MPI-style backends are provided by the consuming program,
// this package ships the serial variant.
type Runtime interface {
	// Init brings up the substrate from process startup arguments and
	// returns the world communicator. Fails if the substrate is already
	// active or rejects the arguments.
	Init(args []string) (Communicator, error)

	// Finalize tears the substrate down. Not idempotent.
	Finalize() error

	// Active reports whether Init has succeeded and Finalize has not run.
	Active() bool

	// Distributed reports whether this is a multi-process backend.
	Distributed() bool
}

// serialComm is the degenerate single-process communicator.
type serialComm struct{}

func (serialComm) Size() int { return 1 }
func (serialComm) Rank() int { return 0 }

// SerialRuntime is the single-process runtime variant. It performs no real
// communication but keeps the same init/finalize bookkeeping as a
// distributed backend, so lifecycle mistakes surface identically in serial
// runs. Once finalized it cannot be initialized again, matching the
// once-per-process contract of the distributed substrates it stands in for.
type SerialRuntime struct {
	mu        sync.Mutex
	active    bool
	finalized bool
}

func NewSerialRuntime() *SerialRuntime {
	return &SerialRuntime{}
}

func (r *SerialRuntime) Init(args []string) (Communicator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.finalized {
		return nil, fmt.Errorf("%w: serial runtime cannot be reinitialized", errors.ErrRuntimeFinalized)
	}
	if r.active {
		return nil, fmt.Errorf("%w: serial runtime", errors.ErrRuntimeActive)
	}
	r.active = true
	return serialComm{}, nil
}

func (r *SerialRuntime) Finalize() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.active {
		return fmt.Errorf("%w: serial runtime is not active", errors.ErrRuntimeFinalized)
	}
	r.active = false
	r.finalized = true
	return nil
}

func (r *SerialRuntime) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

func (r *SerialRuntime) Distributed() bool { return false }
