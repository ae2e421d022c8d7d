// Package runtime wraps the process-wide distributed-computing substrate the
// parallel linear-algebra objects share. The substrate is initialized at most
// once and finalized at most once per process; Handle makes that lifecycle
// explicit by distinguishing the one owning handle from its aliases.
package runtime

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"sim-base/errors"
	"sim-base/internal"
)

// Handle wraps the communicator of the process-wide runtime. Exactly one
// handle per process owns the backing runtime; the owner finalizes it on
// Close. All other handles are aliases obtained through Alias, which share
// the communicator and never finalize anything.
//
// The caller keeps the owner alive for the lifetime of every alias. There is
// no reference counting: library usage nests alias lifetimes strictly inside
// the owner's, so a tagged ownership flag is sufficient.
//
// Owner construction and Close touch process-wide state and belong on one
// designated goroutine, typically program startup and shutdown. Once the
// owner is constructed, aliases may be created and read concurrently.
type Handle struct {
	id          string
	log         *slog.Logger
	rt          Runtime
	comm        Communicator
	ownsRuntime bool
	distributed bool
	closed      bool
}

// NewOwner initializes the distributed runtime from process startup
// arguments and returns the owning handle. A nil rt selects the built-in
// serial backend; setting SIM_FORCE_SERIAL overrides an injected distributed
// backend with the serial one. A nil log selects the library's fallback
// logger.
//
// Initialization failure wraps ErrRuntimeInit and is fatal: the caller is
// expected to abort startup rather than continue in a degraded mode.
func NewOwner(log *slog.Logger, rt Runtime, args []string) (*Handle, error) {
	if log == nil {
		log = internal.NewLogger()
	}
	cfg, err := internal.Load()
	if err != nil {
		return nil, fmt.Errorf("runtime configuration: %w", err)
	}
	if rt == nil || (cfg.ForceSerial && rt.Distributed()) {
		rt = NewSerialRuntime()
	}

	comm, err := rt.Init(args)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrRuntimeInit, err)
	}

	h := &Handle{
		id:          uuid.NewString(),
		log:         log,
		rt:          rt,
		comm:        comm,
		ownsRuntime: true,
		distributed: rt.Distributed(),
	}
	h.log.Info("communicator runtime initialized",
		"handle", h.id,
		"distributed", h.distributed,
		"size", comm.Size(),
		"rank", comm.Rank(),
	)
	return h, nil
}

// Alias returns a non-owning handle sharing this handle's communicator.
// Closing an alias is a no-op; the caller guarantees the owner outlives it.
func (h *Handle) Alias() *Handle {
	return &Handle{
		id:          uuid.NewString(),
		log:         h.log,
		rt:          h.rt,
		comm:        h.comm,
		ownsRuntime: false,
		distributed: h.distributed,
	}
}

// Comm returns the underlying communicator. Ownership never transfers.
func (h *Handle) Comm() Communicator {
	return h.comm
}

// Distributed reports whether the handle operates in multi-process mode
// rather than the degenerate single-process mode.
func (h *Handle) Distributed() bool {
	return h.distributed
}

// OwnsRuntime reports whether this is the handle responsible for finalizing
// the runtime.
func (h *Handle) OwnsRuntime() bool {
	return h.ownsRuntime
}

// Close finalizes the runtime if this handle owns it; for aliases it is a
// no-op. Closing the owner a second time is a programming error and panics:
// the substrate's finalize is irreversible and must run exactly once.
func (h *Handle) Close() error {
	if !h.ownsRuntime {
		return nil
	}
	if h.closed {
		panic("runtime: owning communicator handle closed twice")
	}
	h.closed = true
	if err := h.rt.Finalize(); err != nil {
		return fmt.Errorf("finalizing communicator runtime: %w", err)
	}
	h.log.Info("communicator runtime finalized", "handle", h.id)
	return nil
}
