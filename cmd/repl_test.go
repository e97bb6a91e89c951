package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fzft/go-hashtable/log"
)

func init() {
	log.InitLogger()
}

func newTestRepl() (*Repl, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	r := NewRepl(4, "test")
	r.out = buf
	return r, buf
}

func TestDispatchAddAndHas(t *testing.T) {
	r, buf := newTestRepl()

	quit, err := r.dispatch("add alpha beta")
	assert.NoError(t, err)
	assert.False(t, quit)
	assert.Contains(t, buf.String(), "total nodes: 2")

	buf.Reset()
	_, err = r.dispatch("has alpha")
	assert.NoError(t, err)
	assert.Equal(t, "true\n", buf.String())

	buf.Reset()
	_, err = r.dispatch("has gamma")
	assert.NoError(t, err)
	assert.Equal(t, "false\n", buf.String())
}

func TestDispatchRepeatPrefix(t *testing.T) {
	r, _ := newTestRepl()

	_, err := r.dispatch("3 add alpha")
	assert.NoError(t, err)
	assert.Equal(t, 3, r.table.TotalNodes())

	_, err = r.dispatch("0 add alpha")
	assert.Error(t, err)
}

func TestDispatchRehash(t *testing.T) {
	r, buf := newTestRepl()
	r.dispatch("add a b c d e")

	quit, err := r.dispatch("rehash")
	assert.NoError(t, err)
	assert.False(t, quit)
	assert.Equal(t, 8, r.table.Cap())
	assert.Contains(t, buf.String(), "OK, 8 buckets")
}

func TestDispatchStatsAndDump(t *testing.T) {
	r, buf := newTestRepl()
	r.dispatch("add alpha")

	buf.Reset()
	_, err := r.dispatch("stats")
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "buckets: 4")
	assert.Contains(t, buf.String(), "total nodes: 1")

	buf.Reset()
	_, err = r.dispatch("dump")
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "bucket usage/length: 1/4")
	assert.Contains(t, buf.String(), "alpha")
}

func TestDispatchUnknownCommand(t *testing.T) {
	r, _ := newTestRepl()
	_, err := r.dispatch("frobnicate")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestDispatchQuit(t *testing.T) {
	r, _ := newTestRepl()
	quit, err := r.dispatch("quit")
	assert.NoError(t, err)
	assert.True(t, quit)
}

func TestRunPipedCollectsErrors(t *testing.T) {
	r, _ := newTestRepl()
	in := strings.NewReader("add alpha\nbogus\nhas alpha\nnonsense\n")

	err := r.runPiped(in)
	assert.Error(t, err)
	merr, ok := err.(MultiError)
	assert.True(t, ok, "two failures should come back as a MultiError")
	assert.Len(t, merr, 2)
	assert.True(t, r.table.Contains("alpha"))
}

func TestRunPipedStopsOnQuit(t *testing.T) {
	r, _ := newTestRepl()
	in := strings.NewReader("add alpha\nquit\nadd beta\n")

	err := r.runPiped(in)
	assert.NoError(t, err)
	assert.Equal(t, 1, r.table.TotalNodes(), "lines after quit should not run")
}
