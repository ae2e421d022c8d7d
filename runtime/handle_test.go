package runtime_test

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"sim-base/errors"
	"sim-base/mocks"
	"sim-base/runtime"
)

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestNewOwner_Serial_Lifecycle(t *testing.T) {
	req := require.New(t)

	// Given no backend is injected
	h, err := runtime.NewOwner(discard(), nil, []string{"solver", "-n", "1"})
	req.NoError(err)

	// Then the serial variant is selected
	req.True(h.OwnsRuntime())
	req.False(h.Distributed())
	req.Equal(1, h.Comm().Size())
	req.Equal(0, h.Comm().Rank())

	// And the owner finalizes cleanly
	req.NoError(h.Close())
}

func TestAlias_Shares_Communicator_And_Never_Finalizes(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	t.Setenv("SIM_FORCE_SERIAL", "false")

	comm := mocks.NewMockCommunicator(ctrl)
	comm.EXPECT().Size().Return(4).AnyTimes()
	comm.EXPECT().Rank().Return(2).AnyTimes()

	rt := mocks.NewMockRuntime(ctrl)
	rt.EXPECT().Distributed().Return(true).AnyTimes()
	// Init and Finalize each run exactly once, no matter how many aliases exist
	rt.EXPECT().Init(gomock.Any()).Return(comm, nil).Times(1)
	rt.EXPECT().Finalize().Return(nil).Times(1)

	// Given an owner and several aliases
	owner, err := runtime.NewOwner(discard(), rt, nil)
	req.NoError(err)

	aliases := make([]*runtime.Handle, 0, 5)
	for i := 0; i < 5; i++ {
		aliases = append(aliases, owner.Alias())
	}

	// Then every alias sees the owner's communicator and mode
	for _, a := range aliases {
		req.False(a.OwnsRuntime())
		req.True(a.Distributed())
		req.Equal(owner.Comm(), a.Comm())
	}

	// When the aliases close before the owner, nothing is finalized
	for _, a := range aliases {
		req.NoError(a.Close())
	}

	// And the owner's close finalizes once
	req.NoError(owner.Close())
}

func TestOwner_Double_Close_Panics(t *testing.T) {
	req := require.New(t)

	h, err := runtime.NewOwner(discard(), nil, nil)
	req.NoError(err)
	req.NoError(h.Close())

	req.Panics(func() { _ = h.Close() })
}

func TestAlias_Close_Is_Repeatable(t *testing.T) {
	req := require.New(t)

	h, err := runtime.NewOwner(discard(), nil, nil)
	req.NoError(err)
	a := h.Alias()

	req.NoError(a.Close())
	req.NoError(a.Close())
	req.NoError(h.Close())
}

func TestNewOwner_Fails_On_Already_Active_Backend(t *testing.T) {
	req := require.New(t)

	rt := runtime.NewSerialRuntime()
	owner, err := runtime.NewOwner(discard(), rt, nil)
	req.NoError(err)
	req.True(rt.Active())

	// A second owner over the same backend must fail fast
	_, err = runtime.NewOwner(discard(), rt, nil)
	req.Error(err)
	req.True(stderrors.Is(err, errors.ErrRuntimeInit))

	req.NoError(owner.Close())
	req.False(rt.Active())

	// The backend stays down for good once finalized
	_, err = runtime.NewOwner(discard(), rt, nil)
	req.Error(err)
	req.True(stderrors.Is(err, errors.ErrRuntimeInit))
}

func TestNewOwner_Propagates_Init_Failure(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	t.Setenv("SIM_FORCE_SERIAL", "false")

	rt := mocks.NewMockRuntime(ctrl)
	rt.EXPECT().Distributed().Return(true).AnyTimes()
	rt.EXPECT().Init(gomock.Any()).Return(nil, fmt.Errorf("substrate rejected arguments"))

	_, err := runtime.NewOwner(discard(), rt, []string{"--bogus"})
	req.Error(err)
	req.True(stderrors.Is(err, errors.ErrRuntimeInit))
	req.Contains(err.Error(), "substrate rejected arguments")
}

func TestNewOwner_Force_Serial_Overrides_Backend(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	t.Setenv("SIM_FORCE_SERIAL", "true")

	rt := mocks.NewMockRuntime(ctrl)
	rt.EXPECT().Distributed().Return(true).AnyTimes()
	// No Init expectation: the injected backend must never be touched

	h, err := runtime.NewOwner(discard(), rt, nil)
	req.NoError(err)
	req.False(h.Distributed())
	req.Equal(1, h.Comm().Size())
	req.NoError(h.Close())
}

func TestAliases_Read_Concurrently(t *testing.T) {
	req := require.New(t)

	owner, err := runtime.NewOwner(discard(), nil, nil)
	req.NoError(err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		a := owner.Alias()
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = a.Comm().Size()
				_ = a.Comm().Rank()
				_ = a.Distributed()
			}
		}()
	}
	wg.Wait()
	req.NoError(owner.Close())
}

func TestSerialRuntime_Finalize_Is_Not_Idempotent(t *testing.T) {
	req := require.New(t)

	rt := runtime.NewSerialRuntime()
	_, err := rt.Init(nil)
	req.NoError(err)

	req.NoError(rt.Finalize())

	err = rt.Finalize()
	req.Error(err)
	req.True(stderrors.Is(err, errors.ErrRuntimeFinalized))
}
