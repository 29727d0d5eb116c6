package console

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/huynhanx03/go-collections/pkg/datastructs/circvector"
	"github.com/huynhanx03/go-collections/pkg/datastructs/linkedlist"
	"github.com/huynhanx03/go-collections/pkg/datastructs/sequence"
	"github.com/huynhanx03/go-collections/pkg/settings"
)

// newCircSession returns a session over a CircVector with the given capacity.
func newCircSession(t *testing.T, capacity int) *Session {
	t.Helper()
	c, err := circvector.NewWithCapacity[string](capacity)
	require.NoError(t, err)
	return NewSession(c, nil)
}

// =============================================================================
// Method: Exec()
// =============================================================================

func TestSession_Exec(t *testing.T) {
	s := newCircSession(t, 5)

	steps := []struct {
		line string
		want string
	}{
		{"push_back a", ""},
		{"push_back b", ""},
		{"push_back c", ""},
		{"push_front d", ""},
		{"push_back e", ""},
		{"print", "[d, a, b, c, e]"},
		{"size", "5"},
		{"cap", "5"},
		{"at 0", "d"},
		{"find c", "3"},
		{"find zz", "-1"},
		{"set 1 hello world", ""},
		{"at 1", "hello world"},
		{"insert_after 4 f", ""},
		{"cap", "10"},
		{"remove_at 0", ""},
		{"remove_every_other", ""},
		{"print", "[hello world, c, f]"},
		{"pop_front", "hello world"},
		{"pop_back", "f"},
		{"empty", "false"},
		{"clear", ""},
		{"empty", "true"},
	}

	for _, step := range steps {
		got, err := s.Exec(step.line)
		require.NoError(t, err, step.line)
		assert.Equal(t, step.want, got, step.line)
	}
}

func TestSession_ExecErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
		want error
	}{
		{"blank", "   ", ErrUsage},
		{"unknown", "rotate 3", ErrUnknownCommand},
		{"missing_arg", "push_back", ErrUsage},
		{"missing_value", "insert_after 0", ErrUsage},
		{"bad_index", "at one", ErrUsage},
		{"pop_empty", "pop_front", sequence.ErrEmpty},
		{"at_empty", "at 0", sequence.ErrOutOfRange},
		{"insert_empty", "insert_after 0 x", sequence.ErrEmpty},
		{"remove_empty", "remove_at 0", sequence.ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(linkedlist.New[string](), nil)
			_, err := s.Exec(tt.line)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSession_CapUnsupported(t *testing.T) {
	s := NewSession(linkedlist.New[string](), nil)
	_, err := s.Exec("cap")
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestSession_ExecLogs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	s := NewSession(linkedlist.New[string](), zap.New(core))

	_, err := s.Exec("push_back 23")
	require.NoError(t, err)
	_, err = s.Exec("pop_back")
	require.NoError(t, err)
	_, err = s.Exec("pop_back")
	require.Error(t, err)

	executed := logs.FilterMessage("command executed").All()
	require.Len(t, executed, 2)
	assert.Equal(t, "push_back", executed[0].ContextMap()["cmd"])
	assert.EqualValues(t, 1, executed[0].ContextMap()["len"])
	assert.Equal(t, 1, logs.FilterMessage("command failed").Len())
}

// =============================================================================
// Method: Run()
// =============================================================================

func TestSession_Run(t *testing.T) {
	script := strings.Join([]string{
		"# linked list walk",
		"push_back 23",
		"push_back 490",
		"push_back 317",
		"",
		"insert_after 2 999",
		"find 999",
		"size",
		"remove_at 4",
		"bogus",
		"print",
	}, "\n")

	s := NewSession(linkedlist.New[string](), nil)
	var out bytes.Buffer
	require.NoError(t, s.Run(context.Background(), strings.NewReader(script), &out))

	want := strings.Join([]string{
		"3",
		"4",
		"error: index 4, len 4: index out of range",
		`error: "bogus": unknown command`,
		"[23, 490, 317, 999]",
	}, "\n") + "\n"
	assert.Equal(t, want, out.String())
}

func TestSession_RunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := newCircSession(t, 2)
	var out bytes.Buffer
	err := s.Run(ctx, strings.NewReader("push_back a\nprint\n"), &out)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

// failingWriter rejects every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("write error")
}

func TestSession_RunWriteError(t *testing.T) {
	s := newCircSession(t, 2)
	err := s.Run(context.Background(), strings.NewReader("push_back a\nprint\n"), failingWriter{})
	assert.ErrorContains(t, err, "failed to write output")
}

// =============================================================================
// Function: NewSequence()
// =============================================================================

func TestNewSequence(t *testing.T) {
	t.Run("circvector", func(t *testing.T) {
		seq, err := NewSequence(settings.Sequence{Kind: settings.KindCircVector, Capacity: 3})
		require.NoError(t, err)
		c, ok := seq.(*circvector.CircVector[string])
		require.True(t, ok)
		assert.Equal(t, 3, c.Cap())
	})

	t.Run("linkedlist", func(t *testing.T) {
		seq, err := NewSequence(settings.Sequence{Kind: settings.KindLinkedList})
		require.NoError(t, err)
		assert.IsType(t, &linkedlist.LinkedList[string]{}, seq)
	})

	t.Run("bad_capacity", func(t *testing.T) {
		seq, err := NewSequence(settings.Sequence{Kind: settings.KindCircVector})
		assert.ErrorIs(t, err, sequence.ErrInvalidCapacity)
		assert.Nil(t, seq)
	})

	t.Run("unknown_kind", func(t *testing.T) {
		_, err := NewSequence(settings.Sequence{Kind: "skiplist"})
		assert.ErrorContains(t, err, "unknown sequence kind")
	})
}
