package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-collections/pkg/datastructs/sequence"
)

var (
	// ErrUnknownCommand is returned for a command name the console does not know.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrUsage is returned when a command gets the wrong number or type of arguments.
	ErrUsage = errors.New("bad arguments")

	// ErrUnsupported is returned when the container lacks the requested capability.
	ErrUnsupported = errors.New("not supported by this container")
)

// capacityer is implemented by containers that expose their buffer capacity.
type capacityer interface {
	Cap() int
}

// command describes one console verb.
type command struct {
	minArgs int
	usage   string
	run     func(s *Session, args []string) (string, error)
}

var commands = map[string]command{
	"push_front": {1, "push_front <value>", func(s *Session, args []string) (string, error) {
		s.seq.PushFront(joinValue(args))
		return "", nil
	}},
	"push_back": {1, "push_back <value>", func(s *Session, args []string) (string, error) {
		s.seq.PushBack(joinValue(args))
		return "", nil
	}},
	"pop_front": {0, "pop_front", func(s *Session, _ []string) (string, error) {
		return s.seq.PopFront()
	}},
	"pop_back": {0, "pop_back", func(s *Session, _ []string) (string, error) {
		return s.seq.PopBack()
	}},
	"at": {1, "at <index>", func(s *Session, args []string) (string, error) {
		i, err := parseIndex(args[0])
		if err != nil {
			return "", err
		}
		return s.seq.At(i)
	}},
	"set": {2, "set <index> <value>", func(s *Session, args []string) (string, error) {
		i, err := parseIndex(args[0])
		if err != nil {
			return "", err
		}
		return "", s.seq.Set(i, joinValue(args[1:]))
	}},
	"find": {1, "find <value>", func(s *Session, args []string) (string, error) {
		return strconv.Itoa(s.seq.Find(joinValue(args))), nil
	}},
	"remove_at": {1, "remove_at <index>", func(s *Session, args []string) (string, error) {
		i, err := parseIndex(args[0])
		if err != nil {
			return "", err
		}
		return "", s.seq.RemoveAt(i)
	}},
	"insert_after": {2, "insert_after <index> <value>", func(s *Session, args []string) (string, error) {
		i, err := parseIndex(args[0])
		if err != nil {
			return "", err
		}
		return "", s.seq.InsertAfter(i, joinValue(args[1:]))
	}},
	"remove_every_other": {0, "remove_every_other", func(s *Session, _ []string) (string, error) {
		s.seq.RemoveEveryOther()
		return "", nil
	}},
	"clear": {0, "clear", func(s *Session, _ []string) (string, error) {
		s.seq.Clear()
		return "", nil
	}},
	"size": {0, "size", func(s *Session, _ []string) (string, error) {
		return strconv.Itoa(s.seq.Len()), nil
	}},
	"empty": {0, "empty", func(s *Session, _ []string) (string, error) {
		return strconv.FormatBool(s.seq.Empty()), nil
	}},
	"print": {0, "print", func(s *Session, _ []string) (string, error) {
		return s.seq.String(), nil
	}},
	"cap": {0, "cap", func(s *Session, _ []string) (string, error) {
		c, ok := s.seq.(capacityer)
		if !ok {
			return "", errors.Wrap(ErrUnsupported, "cap")
		}
		return strconv.Itoa(c.Cap()), nil
	}},
}

// Session drives a single string sequence with text commands.
// It is NOT thread-safe.
type Session struct {
	seq sequence.Sequence[string]
	log *zap.Logger
}

// NewSession creates a Session over seq. A nil logger disables logging.
func NewSession(seq sequence.Sequence[string], log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{seq: seq, log: log}
}

// Exec runs one command line and returns its textual result.
// Mutating commands return an empty result.
func (s *Session) Exec(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", errors.Wrap(ErrUsage, "empty command")
	}

	name, args := fields[0], fields[1:]
	cmd, ok := commands[name]
	if !ok {
		return "", errors.Wrapf(ErrUnknownCommand, "%q", name)
	}
	if len(args) < cmd.minArgs {
		return "", errors.Wrapf(ErrUsage, "usage: %s", cmd.usage)
	}

	out, err := cmd.run(s, args)
	if err != nil {
		s.log.Debug("command failed", zap.String("cmd", name), zap.Strings("args", args), zap.Error(err))
		return "", err
	}

	s.log.Debug("command executed",
		zap.String("cmd", name),
		zap.Strings("args", args),
		zap.Int("len", s.seq.Len()),
	)
	return out, nil
}

// Run executes every line read from r and writes results to w.
// Blank lines and lines starting with '#' are skipped. Command failures are
// written as "error: <msg>" and do not stop the run.
func (s *Session) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		out, err := s.Exec(line)
		if err != nil {
			s.log.Warn("line rejected", zap.Int("line", lineNo), zap.Error(err))
			if _, werr := fmt.Fprintf(w, "error: %v\n", err); werr != nil {
				return errors.Wrap(werr, "failed to write output")
			}
			continue
		}
		if out == "" {
			continue
		}
		if _, werr := fmt.Fprintln(w, out); werr != nil {
			return errors.Wrap(werr, "failed to write output")
		}
	}

	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "failed to read script")
	}
	return nil
}

// joinValue rebuilds a value that may contain spaces.
func joinValue(args []string) string {
	return strings.Join(args, " ")
}

// parseIndex parses a decimal index argument.
func parseIndex(arg string) (int, error) {
	i, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.Wrapf(ErrUsage, "index %q is not an integer", arg)
	}
	return i, nil
}
