//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/stretchr/testify/require"
)

var binPath = "openprism_e2e"

const (
	rows        = 40
	cols        = 120
	maxOutput   = 1 << 20
	waitTimeout = 3 * time.Second
)

// Keys as the terminal sends them
const (
	KeyEnter = "\r"
	KeyCtrlC = "\x03"
	KeyEsc   = "\x1b"
	KeyRight = "l"
	KeyLeft  = "h"
	KeyUp    = "k"
	KeyQuit  = "q"
)

// SGR mouse button codes (xterm mode 1006)
const (
	mouseLeft   = 0
	mouseAlt    = 8
	mouseMotion = 32
)

var ansiRe = regexp.MustCompile(
	`(?:\x1b\[[0-9;?<]*[ -/]*[@-~])|` + // CSI
		`(?:\x1b\][^\x07]*\x07)|` + // OSC
		`(?:\x1b[\(\)][A-Za-z])|` + // charset
		`(?:\x1b[=>])|\r`,
)

// Cell is a zero-based terminal position
type Cell struct {
	Col, Row int
}

// Session runs one openprism process on a pseudo terminal
type Session struct {
	t      *testing.T
	cmd    *exec.Cmd
	pty    *os.File
	home   string
	exited chan error

	mu   sync.Mutex
	out  []byte
	mark int
}

// Start launches the app with an isolated $HOME and waits for it to be ready
func Start(t *testing.T, args ...string) *Session {
	t.Helper()
	s := &Session{t: t, home: t.TempDir(), exited: make(chan error, 1)}

	s.cmd = exec.Command(binPath, args...)
	s.cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"LC_ALL=C",
		"LANG=C",
		"HOME="+s.home,
		"XDG_CONFIG_HOME="+s.home+"/.config",
		"OPENPRISM_E2E_TEST=1",
	)

	f, err := pty.StartWithSize(s.cmd, &pty.Winsize{Rows: rows, Cols: cols})
	require.NoError(t, err, "start %s", binPath)
	s.pty = f
	go s.capture()
	go func() { s.exited <- s.cmd.Wait() }()
	t.Cleanup(s.close)

	s.ExpectAny("__READY__", 5*time.Second)
	s.ExpectAny("OpenPrism", waitTimeout)
	return s
}

// Home returns the $HOME of the process
func (s *Session) Home() string {
	return s.home
}

func (s *Session) capture() {
	buf := make([]byte, 8192)
	for {
		n, err := s.pty.Read(buf)
		if n > 0 {
			s.mu.Lock()
			s.out = append(s.out, buf[:n]...)
			if over := len(s.out) - maxOutput; over > 0 {
				s.out = s.out[over:]
				s.mark = max(s.mark-over, 0)
			}
			s.mu.Unlock()
		}
		if err != nil {
			return
		}
	}
}

// Send writes raw input. Later Expect calls only look at output produced after it.
func (s *Session) Send(input string) {
	s.t.Helper()
	s.mu.Lock()
	s.mark = len(s.out)
	s.mu.Unlock()
	_, err := s.pty.Write([]byte(input))
	require.NoError(s.t, err, "write %q", input)
}

// Next moves to the following card
func (s *Session) Next() {
	s.t.Helper()
	s.Send(KeyRight)
}

// Prev moves to the preceding card
func (s *Session) Prev() {
	s.t.Helper()
	s.Send(KeyLeft)
}

// Tap sends Enter, a tap on the selected card
func (s *Session) Tap() {
	s.t.Helper()
	s.Send(KeyEnter)
}

// Dismiss sends Esc, a swipe down
func (s *Session) Dismiss() {
	s.t.Helper()
	s.Send(KeyEsc)
}

// Drag presses the left button at from, moves to to in a few steps and
// releases there. mods adds mouseAlt for a second finger.
func (s *Session) Drag(from, to Cell, mods int) {
	s.t.Helper()
	const steps = 4
	var b strings.Builder
	b.WriteString(sgr(mouseLeft|mods, from, false))
	for i := 1; i <= steps; i++ {
		at := Cell{
			Col: from.Col + (to.Col-from.Col)*i/steps,
			Row: from.Row + (to.Row-from.Row)*i/steps,
		}
		b.WriteString(sgr(mouseLeft|mouseMotion|mods, at, false))
	}
	b.WriteString(sgr(mouseLeft|mods, to, true))
	s.Send(b.String())
}

// Click presses and releases the left button without moving
func (s *Session) Click(at Cell) {
	s.t.Helper()
	s.Send(sgr(mouseLeft, at, false) + sgr(mouseLeft, at, true))
}

func sgr(button int, at Cell, release bool) string {
	final := 'M'
	if release {
		final = 'm'
	}
	return fmt.Sprintf("\x1b[<%d;%d;%d%c", button, at.Col+1, at.Row+1, final)
}

// Expect waits until text shows up in the output since the last input
func (s *Session) Expect(text string, msgAndArgs ...any) {
	s.t.Helper()
	s.expect(text, true, waitTimeout, msgAndArgs...)
}

// ExpectAny waits until text shows up anywhere in the output
func (s *Session) ExpectAny(text string, timeout time.Duration, msgAndArgs ...any) {
	s.t.Helper()
	s.expect(text, false, timeout, msgAndArgs...)
}

func (s *Session) expect(text string, sinceInput bool, timeout time.Duration, msgAndArgs ...any) {
	s.t.Helper()
	deadline := time.Now().Add(timeout)
	for {
		if strings.Contains(s.plain(sinceInput), text) {
			return
		}
		if time.Now().After(deadline) {
			s.t.Logf("waiting for %q, output tail:\n%s", text, tail(s.plain(false), 4096))
			require.FailNow(s.t, fmt.Sprintf("%q not shown within %v", text, timeout), msgAndArgs...)
		}
		time.Sleep(25 * time.Millisecond)
	}
}

func (s *Session) plain(sinceInput bool) string {
	s.mu.Lock()
	out := s.out
	if sinceInput {
		out = out[s.mark:]
	}
	text := string(out)
	s.mu.Unlock()
	return ansiRe.ReplaceAllString(text, "")
}

func tail(s string, n int) string {
	if len(s) > n {
		return s[len(s)-n:]
	}
	return s
}

// Exit sends input and waits for the process to end
func (s *Session) Exit(input string) {
	s.t.Helper()
	s.Send(input)
	select {
	case err := <-s.exited:
		s.exited <- err
		s.t.Logf("process exited: %v", err)
	case <-time.After(2 * time.Second):
		s.t.Logf("output tail:\n%s", tail(s.plain(false), 4096))
		s.t.Fatalf("app did not exit after %q", input)
	}
}

// close hangs up the terminal and reaps the process
func (s *Session) close() {
	_ = s.pty.Close()
	select {
	case err := <-s.exited:
		s.exited <- err
		return
	case <-time.After(time.Second):
	}
	_ = s.cmd.Process.Kill()
	<-s.exited
}
