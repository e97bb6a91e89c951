package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/fzft/go-hashtable/deps/linenoise"
	"github.com/fzft/go-hashtable/hashtable"
	"github.com/fzft/go-hashtable/log"
)

var (
	DefaultTableSize = hashtable.DefaultSize

	HashTabHistFileEnv     = "HASHTAB_HISTFILE"
	HashTabHistFileDefault = ".hashtab_history"
)

var replCommands = []string{"add", "has", "stats", "dump", "rehash", "clear", "help", "quit", "exit"}

type ReplCfg struct {
	size        int
	version     string
	interactive bool
	prompt      string
}

// Repl is an interactive inspection shell around a single string table.
type Repl struct {
	config *ReplCfg
	table  *hashtable.HashTable[hashtable.String]
	out    io.Writer
}

func NewRepl(size int, version string) *Repl {
	return &Repl{
		config: &ReplCfg{size: size, version: version},
		table:  hashtable.NewWithSize[hashtable.String](size),
		out:    os.Stdout,
	}
}

func (r *Repl) Run() error {
	r.config.interactive = isatty.IsTerminal(os.Stdin.Fd())
	r.refreshPrompt()
	if r.config.interactive {
		return r.runInteractive()
	}
	return r.runPiped(os.Stdin)
}

func (r *Repl) runInteractive() error {
	line := linenoise.New(replCommands)
	defer line.Close()

	historyFile := getDotfilePath(HashTabHistFileEnv, HashTabHistFileDefault)
	if historyFile != "" {
		line.HistoryLoad(historyFile)
	}

	fmt.Fprintf(r.out, "hashtab %s, %d buckets. Type 'help' for commands.\n", r.config.version, r.table.Cap())

	for {
		input, err := line.Prompt(r.config.prompt)
		if err != nil {
			// Ctrl-C or Ctrl-D ends the session.
			break
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		line.AppendHistory(input)
		if historyFile != "" {
			if err := line.HistorySave(historyFile); err != nil {
				log.Logger.Error("failed to save history", zap.String("file", historyFile), zap.Error(err))
			}
		}

		if strings.EqualFold(strings.TrimSpace(input), "clear") {
			line.ClearScreen()
			continue
		}

		quit, err := r.dispatch(input)
		if err != nil {
			fmt.Fprintf(r.out, "(error) %s\n", err.Error())
		}
		if quit {
			break
		}
	}
	return nil
}

// runPiped consumes commands line by line without a prompt, collecting per-line
// failures so a script sees all of them at once.
func (r *Repl) runPiped(in io.Reader) error {
	var errs MultiError
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		quit, err := r.dispatch(scanner.Text())
		if err != nil {
			errs = append(errs, err)
		}
		if quit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		errs = append(errs, err)
	}
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return errs
	}
}

func (r *Repl) dispatch(line string) (quit bool, err error) {
	argv := strings.Fields(line)
	if len(argv) == 0 {
		return false, nil
	}

	// A leading count repeats the command, e.g. "3 add x".
	repeat := 1
	if n, convErr := strconv.Atoi(argv[0]); convErr == nil && len(argv) > 1 {
		if n <= 0 {
			return false, fmt.Errorf("invalid repeat count %q", argv[0])
		}
		repeat = n
		argv = argv[1:]
	}

	for i := 0; i < repeat; i++ {
		quit, err = r.runCommand(argv)
		if quit || err != nil {
			return quit, err
		}
	}
	return false, nil
}

func (r *Repl) runCommand(argv []string) (bool, error) {
	switch strings.ToLower(argv[0]) {
	case "quit", "exit":
		return true, nil
	case "add":
		if len(argv) < 2 {
			return false, fmt.Errorf("add expects at least one element")
		}
		for _, arg := range argv[1:] {
			r.table.Add(hashtable.String(arg))
		}
		fmt.Fprintf(r.out, "OK, total nodes: %d\n", r.table.TotalNodes())
		if r.table.NeedsRehash() {
			log.Logger.Warn("load factor above threshold",
				zap.Float64("loadFactor", r.table.LoadFactor()),
				zap.Int("buckets", r.table.Cap()))
		}
	case "has":
		if len(argv) != 2 {
			return false, fmt.Errorf("has expects exactly one element")
		}
		fmt.Fprintf(r.out, "%t\n", r.table.Contains(hashtable.String(argv[1])))
	case "stats":
		fmt.Fprintf(r.out, "buckets: %d\nusage: %d\ntotal nodes: %d\nload factor: %.2f\n",
			r.table.Cap(), r.table.Usage(), r.table.TotalNodes(), r.table.LoadFactor())
	case "dump":
		fmt.Fprintln(r.out, r.table.String())
	case "rehash":
		r.table.Rehash()
		log.Logger.Info("table rehashed",
			zap.Int("buckets", r.table.Cap()),
			zap.Float64("loadFactor", r.table.LoadFactor()))
		fmt.Fprintf(r.out, "OK, %d buckets\n", r.table.Cap())
	case "clear":
		return false, fmt.Errorf("clear only works in an interactive session")
	case "help":
		r.printHelp()
	default:
		return false, fmt.Errorf("unknown command %q, try 'help'", argv[0])
	}
	return false, nil
}

func (r *Repl) printHelp() {
	fmt.Fprint(r.out, `Commands:
  add <elem> [elem ...]  store elements (duplicates allowed)
  has <elem>             membership test
  stats                  usage, node count and load factor
  dump                   bucket-by-bucket diagnostic view
  rehash                 double the bucket count and relocate entries
  clear                  clear the screen
  quit | exit            leave the shell
A leading number repeats a command, e.g. '3 add x'.
`)
}

func (r *Repl) refreshPrompt() {
	r.config.prompt = fmt.Sprintf("hashtab[%d]> ", r.table.Cap())
}

func getDotfilePath(envOverride, dotFilename string) string {
	path := os.Getenv(envOverride)
	if path != "" {
		if path == "/dev/null" {
			return ""
		}
		return path
	}
	home := os.Getenv("HOME")
	if home != "" {
		return fmt.Sprintf("%s/%s", home, dotFilename)
	}
	return ""
}
