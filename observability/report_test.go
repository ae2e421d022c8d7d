package observability_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"sim-base/observability"
)

type fakeComm struct {
	size, rank int
}

func (c fakeComm) Size() int { return c.size }
func (c fakeComm) Rank() int { return c.rank }

func TestReporter_Serial_Run(t *testing.T) {
	req := require.New(t)

	var buf bytes.Buffer
	observability.NewReporter(nil, false, 72, false).Write(&buf)
	out := buf.String()

	req.Contains(out, "Run environment")
	req.Contains(out, "Host")
	req.Contains(out, "serial")
	req.Contains(out, "Processes")
	req.NotContains(out, "\x1b[") // colours off means no escape codes
}

func TestReporter_Distributed_Run(t *testing.T) {
	req := require.New(t)

	var buf bytes.Buffer
	observability.NewReporter(fakeComm{size: 16, rank: 5}, true, 72, false).Write(&buf)
	out := buf.String()

	req.Contains(out, "distributed")
	req.Contains(out, "16")
	req.Contains(out, "5")
}
