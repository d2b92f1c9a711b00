package command

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/jobmatch/internal/matching"
)

func newDispatcher(skills ...string) *Dispatcher {
	return New(&Config{}, &Deps{
		Store:  matching.NewStore(matching.NewCatalog(skills)),
		Logger: zap.NewNop(),
	})
}

type step struct {
	line  string
	reply string
}

func runSteps(t *testing.T, d *Dispatcher, steps []step) {
	t.Helper()

	for _, s := range steps {
		got, err := d.Execute(s.line)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", s.line, err)
		}
		if got != s.reply {
			t.Fatalf("%q: expected reply %q, got %q", s.line, s.reply, got)
		}
	}
}

func TestScenario(t *testing.T) {
	d := newDispatcher("a", "b")

	runSteps(t, d, []step{
		{line: "ADD-JOB Bob 20 40 FULLTIME 2000", reply: "1"},
		{line: "ADD-USER Ann 25 FULLTIME 2000", reply: "1"},
		{line: "ADD-JOB-SKILL 1 a", reply: "skill added"},
		{line: "ADD-USER-SKILL 1 a", reply: "skill added"},
		{line: "VIEW 1 1", reply: "tracked"},
		{line: "JOB-STATUS 1", reply: "Bob-1-(a,1)"},
		{line: "USER-STATUS 1", reply: "Ann-(a,1)"},
		{line: "GET-JOBLIST 1", reply: "(1,1018001)"},
		{line: "SCORE 1 1", reply: "1018001"},
	})

	job, _ := d.Store().Job(1)
	if job.Views != 1 {
		t.Fatalf("expected 1 view, got %d", job.Views)
	}
}

func TestErrorReplies(t *testing.T) {
	d := newDispatcher("a", "b")

	runSteps(t, d, []step{
		{line: "ADD-JOB Bob1 20 40 FULLTIME 2000", reply: "invalid name"},
		{line: "ADD-JOB Bob 50 40 FULLTIME 2000", reply: "invalid age"},
		{line: "ADD-JOB Bob 20 40 REMOTE 2000", reply: "invalid time condition"},
		{line: "ADD-JOB Bob 20 40 FULLTIME 2500", reply: "invalid salary"},
		{line: "ADD-JOB Bob 20 40 FULLTIME 3000", reply: "1"},
		{line: "ADD-USER Ann 201 PROJECT 0", reply: "invalid age"},
		{line: "ADD-USER Ann 20 PROJECT 0", reply: "1"},
		{line: "ADD-JOB-SKILL 2 a", reply: "invalid index"},
		{line: "ADD-JOB-SKILL 1 z", reply: "invalid skill"},
		{line: "ADD-JOB-SKILL 1 b", reply: "skill added"},
		{line: "ADD-JOB-SKILL 1 b", reply: "repeated skill"},
		{line: "ADD-USER-SKILL 9 a", reply: "invalid index"},
		{line: "VIEW 1 2", reply: "invalid index"},
		{line: "VIEW 2 1", reply: "invalid index"},
		{line: "JOB-STATUS 0", reply: "invalid index"},
		{line: "USER-STATUS 3", reply: "invalid index"},
		{line: "GET-JOBLIST 2", reply: "invalid index"},
		{line: "SCORE 1 5", reply: "invalid index"},
		{line: "FIRE-JOB 1", reply: "invalid command"},
		{line: "VIEW 1", reply: "invalid command"},
	})

	stats := d.Stats()
	want := Stats{Executed: 3, Rejected: 15, Unknown: 2}
	if diff := cmp.Diff(want, stats); diff != "" {
		t.Fatalf("unexpected stats (-want +got):\n%s", diff)
	}
}

func TestUnicodeNames(t *testing.T) {
	d := newDispatcher()

	runSteps(t, d, []step{
		{line: "ADD-JOB José 20 40 FULLTIME 2000", reply: "1"},
		{line: "ADD-USER Zoë 25 FULLTIME 2000", reply: "1"},
		{line: "ADD-USER Zoë2 25 FULLTIME 2000", reply: "invalid name"},
		{line: "JOB-STATUS 1", reply: "José-0"},
		{line: "USER-STATUS 1", reply: "Zoë"},
	})
}

func TestFailedCreationsKeepSequence(t *testing.T) {
	d := newDispatcher()

	runSteps(t, d, []step{
		{line: "ADD-USER Ann 25 FULLTIME 2000", reply: "1"},
		{line: "ADD-USER Ann 25 FULLTIME 2001", reply: "invalid salary"},
		{line: "ADD-USER Ben 25 FULLTIME 2000", reply: "2"},
	})
}

func TestEdits(t *testing.T) {
	d := newDispatcher("a")

	runSteps(t, d, []step{
		{line: "ADD-JOB Bob 20 40 FULLTIME 2000", reply: "1"},
		{line: "ADD-USER Ann 25 FULLTIME 2000", reply: "1"},
		{line: "EDIT-JOB 1 min_age 41", reply: "invalid age interval"},
		{line: "EDIT-JOB 1 max_age 10", reply: "invalid age interval"},
		{line: "EDIT-JOB 1 max_age 030", reply: "edited"},
		{line: "EDIT-JOB 1 salary 1500", reply: "invalid salary"},
		{line: "EDIT-JOB 1 name Carl", reply: "edited"},
		{line: "EDIT-JOB 1 time_condition PARTTIME", reply: "edited"},
		{line: "EDIT-JOB 1 views 3", reply: "invalid field"},
		{line: "EDIT-JOB 2 name Carl", reply: "invalid index"},
		{line: "EDIT-USER 1 age 300", reply: "invalid age"},
		{line: "EDIT-USER 1 age 30", reply: "edited"},
		{line: "EDIT-USER 1 min_age 30", reply: "invalid field"},
		{line: "JOB-STATUS 1", reply: "Carl-0"},
	})

	job, _ := d.Store().Job(1)
	if job.MinAge != 20 || job.MaxAge != 30 || job.TimeCondition != matching.PartTime {
		t.Fatalf("unexpected job after edits: %+v", job)
	}
}

func TestMalformedArgumentAborts(t *testing.T) {
	d := newDispatcher()
	runSteps(t, d, []step{{line: "ADD-USER Ann 25 FULLTIME 2000", reply: "1"}})

	for _, line := range []string{
		"ADD-JOB Bob twenty 40 FULLTIME 2000",
		"VIEW one 1",
		"EDIT-USER 1 age old",
		"JOB-STATUS 1.5",
	} {
		if _, err := d.Execute(line); !errors.Is(err, ErrMalformedArgument) {
			t.Fatalf("%q: expected malformed argument error, got %v", line, err)
		}
	}
}

func TestRejectedCommandsAreLogged(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	d := New(nil, &Deps{
		Store:  matching.NewStore(matching.NewCatalog([]string{"a"})),
		Logger: zap.New(core),
	})

	if _, err := d.Execute("ADD-USER Ann 25 FULLTIME 2000"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := d.Execute("ADD-USER-SKILL 1 z"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := observed.FilterMessage("command rejected").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 rejected entry, got %d", len(entries))
	}

	ctx := entries[0].ContextMap()
	if ctx["command"] != "ADD-USER-SKILL" || ctx["reason"] != "invalid skill" {
		t.Fatalf("unexpected log context: %v", ctx)
	}
}

func TestJobListLimit(t *testing.T) {
	d := New(&Config{JobListLimit: 2}, &Deps{Store: matching.NewStore(nil)})

	runSteps(t, d, []step{
		{line: "ADD-JOB Aa 20 40 FULLTIME 2000", reply: "1"},
		{line: "ADD-JOB Bb 20 40 FULLTIME 2000", reply: "2"},
		{line: "ADD-JOB Cc 20 40 FULLTIME 9000", reply: "3"},
		{line: "ADD-USER Ann 30 FULLTIME 2000", reply: "1"},
		{line: "GET-JOBLIST 1", reply: "(2,1020002)(1,1020001)"},
	})
}

func TestRun(t *testing.T) {
	d := newDispatcher("a", "b")
	input := strings.Join([]string{
		"ADD-JOB Bob 20 40 FULLTIME 2000",
		"",
		"ADD-USER Ann 25 FULLTIME 2000",
		"  VIEW 1 1  ",
		"JOB-STATUS 1",
	}, "\n")

	var out strings.Builder
	stats, err := d.Run(context.Background(), bufio.NewScanner(strings.NewReader(input)), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got, want := out.String(), "1\n1\ntracked\nBob-1\n"; got != want {
		t.Fatalf("expected output %q, got %q", want, got)
	}
	if stats.Executed != 4 {
		t.Fatalf("expected 4 executed commands, got %d", stats.Executed)
	}
}

func TestRunStopsOnMalformedArgument(t *testing.T) {
	d := newDispatcher()
	input := "ADD-USER Ann 25 FULLTIME 2000\nUSER-STATUS x\nUSER-STATUS 1\n"

	var out strings.Builder
	_, err := d.Run(context.Background(), bufio.NewScanner(strings.NewReader(input)), &out)
	if !errors.Is(err, ErrMalformedArgument) {
		t.Fatalf("expected malformed argument error, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("expected line number in error, got %v", err)
	}
	if out.String() != "1\n" {
		t.Fatalf("expected only the first reply, got %q", out.String())
	}
}

func TestRunHonorsCancellation(t *testing.T) {
	d := newDispatcher()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out strings.Builder
	_, err := d.Run(ctx, bufio.NewScanner(strings.NewReader("ADD-USER Ann 25 FULLTIME 2000\n")), &out)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation, got %v", err)
	}
	if d.Store().UsersLen() != 0 {
		t.Fatalf("no command should run after cancellation")
	}
}

// replyWriter hands every reply written by Run to a channel.
type replyWriter chan string

func (w replyWriter) Write(p []byte) (int, error) {
	w <- string(p)
	return len(p), nil
}

func TestRunReturnsWhenCancelledDuringRead(t *testing.T) {
	d := newDispatcher()
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	replies := make(replyWriter, 1)
	result := make(chan error, 1)
	go func() {
		_, err := d.Run(ctx, bufio.NewScanner(pr), replies)
		result <- err
	}()

	if _, err := io.WriteString(pw, "ADD-USER Ann 25 FULLTIME 2000\n"); err != nil {
		t.Fatalf("writing input: %v", err)
	}

	select {
	case reply := <-replies:
		if reply != "1\n" {
			t.Fatalf("unexpected reply %q", reply)
		}
	case <-time.After(time.Second):
		t.Fatalf("no reply for the first command")
	}

	// The next read blocks since nothing else is written to the pipe.
	cancel()

	select {
	case err := <-result:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context cancellation, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("run did not return after cancellation")
	}
}

func TestDescribe(t *testing.T) {
	described := Describe()
	if len(described) != len(commands) {
		t.Fatalf("expected %d commands, got %d", len(commands), len(described))
	}

	if got := described[0].Usage(); got != "ADD-JOB name min_age max_age time_condition salary" {
		t.Fatalf("unexpected usage %q", got)
	}

	for _, c := range described {
		if c.Summary == "" {
			t.Fatalf("command %s has no summary", c.Name)
		}
	}
}
