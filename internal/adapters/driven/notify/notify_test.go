package notify

import (
	"bytes"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pizza-hunt/internal/core/domain"
)

func TestTerminal_FlushedWritesToOut(t *testing.T) {
	var out, errOut bytes.Buffer
	n := NewTerminal(&out, &errOut)

	n.Flushed(3)

	assert.Equal(t, FlushedMessage+" (3)\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestTerminal_FailedWritesToErrOut(t *testing.T) {
	var out, errOut bytes.Buffer
	n := NewTerminal(&out, &errOut)

	n.Failed(&domain.APIError{Message: "dup"})

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "will retry when back online")
	assert.Contains(t, errOut.String(), "dup")
}

func TestTerminal_BufferIsNotStyled(t *testing.T) {
	var out bytes.Buffer
	assert.False(t, NewTerminal(&out, &out).styled)
}

func TestMetrics_Counts(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	m.Flushed(3)
	m.Flushed(2)
	m.Failed(errors.New("boom"))

	assert.InDelta(t, 5.0, testutil.ToFloat64(m.flushedRecords), 0.0001)
	assert.InDelta(t, 2.0, testutil.ToFloat64(m.flushes), 0.0001)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.failures), 0.0001)
}

func TestMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg)
	require.NoError(t, err)

	_, err = NewMetrics(reg)
	assert.Error(t, err)
}

type recordingNotifier struct {
	flushed []int
	failed  []error
}

func (r *recordingNotifier) Flushed(count int) { r.flushed = append(r.flushed, count) }
func (r *recordingNotifier) Failed(err error)  { r.failed = append(r.failed, err) }

func TestMulti_ForwardsToAll(t *testing.T) {
	a, b := &recordingNotifier{}, &recordingNotifier{}
	m := Multi{a, b}

	m.Flushed(4)
	boom := errors.New("boom")
	m.Failed(boom)

	for _, r := range []*recordingNotifier{a, b} {
		assert.Equal(t, []int{4}, r.flushed)
		assert.Equal(t, []error{boom}, r.failed)
	}
}
