package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  []string
}

func (f *fakeExec) record(cmd, arg string) {
	f.calls = append(f.calls, cmd)
	f.args = append(f.args, arg)
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Login(ctx context.Context) error {
	f.record("login", "")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Signup(ctx context.Context) error {
	f.record("signup", "")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.record("logout", "")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) WhoAmI(ctx context.Context) error { f.record("whoami", ""); return nil }
func (f *fakeExec) Home(ctx context.Context) error   { f.record("home", ""); return nil }
func (f *fakeExec) Navigate(ctx context.Context, view string) error {
	f.record("navigate", view)
	return nil
}
func (f *fakeExec) Jobs(ctx context.Context, query string) error {
	f.record("jobs", query)
	return nil
}
func (f *fakeExec) Job(ctx context.Context, jobID string) error {
	f.record("job", jobID)
	return nil
}
func (f *fakeExec) Apply(ctx context.Context, jobID string) error {
	f.record("apply", jobID)
	return nil
}
func (f *fakeExec) Upload(ctx context.Context, path string) error {
	f.record("upload", path)
	return nil
}
func (f *fakeExec) PostJob(ctx context.Context) error { f.record("postjob", ""); return nil }

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"jobs remote golang",
		"job j1",
		"apply j1",
		"dashboard",
		"whoami",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "jobs", "job", "apply", "navigate", "whoami"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
}

func TestRunREPL_ArgsPassedThrough(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"jobs backend engineer",
		"job j42",
		"upload cv.pdf",
		"quit",
	}, "\n"))

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(input))

	want := map[string]string{"jobs": "backend engineer", "job": "j42", "upload": "cv.pdf"}
	for i, c := range exec.calls {
		if arg, ok := want[c]; ok && exec.args[i] != arg {
			t.Fatalf("%s arg = %q, want %q", c, exec.args[i], arg)
		}
	}
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("job\napply\nupload\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
