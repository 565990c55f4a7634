package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"gioui.org/app"
	"github.com/esimov/primejudge"
	"github.com/esimov/primejudge/utils"
	"golang.org/x/term"
)

const HelpBanner = `
┌─┐┬─┐┬┌┬┐┌─┐ ┬┬ ┬┌┬┐┌─┐┌─┐
├─┘├┬┘││││├┤  ││ │ ││├─┘├┤
┴  ┴└─┴┴ ┴└─┘└┘└─┘─┴┘└─┘└─┘

Prime number judger.
    Version: %s

`

// pipeName is the file name that indicates stdin is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

// mode is the way the program handles the numbers.
type mode int

const (
	guiMode mode = iota
	checkMode
	rangeMode
	stdinMode
)

var defaults = primejudge.DefaultConfig()

var (
	// Flags
	input   = flag.Int64("n", defaults.Input, "Initial number")
	theme   = flag.String("theme", string(defaults.Theme), "Window theme: light or dark")
	width   = flag.Int("width", defaults.Width, "Window width")
	height  = flag.Int("height", defaults.Height, "Window height")
	check   = flag.Bool("check", false, "Judge the -n number in the terminal without opening a window")
	from    = flag.Int64("from", 0, "Lower bound of the range judged in the terminal")
	to      = flag.Int64("to", 0, "Upper bound of the range judged in the terminal")
	source  = flag.String("in", "", "Read whitespace separated numbers from stdin (use -)")
	workers = flag.Int("conc", 0, "Number of numbers judged concurrently (defaults to the number of CPUs)")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	deco := utils.NewDecorator(os.Stderr)

	themeName, err := primejudge.ParseTheme(*theme)
	if err != nil {
		log.Fatal(deco.Text("Invalid theme: "+err.Error(), utils.ErrorMessage))
	}
	cfg := primejudge.Config{
		Input:  *input,
		Theme:  themeName,
		Width:  *width,
		Height: *height,
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(deco.Text("Invalid configuration: "+err.Error(), utils.ErrorMessage))
	}

	switch selectMode(*source, isFlagSet("from") || isFlagSet("to"), *check) {
	case stdinMode:
		err = judgeStdin(*source)
	case rangeMode:
		err = judgeRange(*from, *to)
	case checkMode:
		err = primejudge.WriteVerdicts(os.Stdout, []primejudge.Verdict{primejudge.Judge(*input)})
	default:
		runGUI(cfg, deco)
	}
	if err != nil {
		log.Fatal(
			deco.Text("Error judging the numbers: ", utils.ErrorMessage) +
				deco.Text(err.Error(), utils.DefaultMessage),
		)
	}
}

// selectMode picks the terminal mode requested by the flags. The stdin source wins over
// a range, a range over -check; without any of them the window is opened.
func selectMode(src string, hasRange, check bool) mode {
	switch {
	case src != "":
		return stdinMode
	case hasRange:
		return rangeMode
	case check:
		return checkMode
	}
	return guiMode
}

// runGUI opens the window. Gio needs the main thread, so the event loop
// runs in a separate goroutine while app.Main blocks.
func runGUI(cfg primejudge.Config, deco *utils.Decorator) {
	gui := primejudge.NewGUI(cfg, primejudge.NewJudgmentState(cfg.Input))

	go func() {
		if err := run(newWindow(gui), gui); err != nil {
			log.Fatal(
				deco.Text("Unable to run the window: ", utils.ErrorMessage) +
					deco.Text(err.Error(), utils.DefaultMessage),
			)
		}
		os.Exit(0)
	}()
	app.Main()
}

// judgeRange judges the inclusive range concurrently while showing a progress indicator.
func judgeRange(lo, hi int64) error {
	return runBatch(os.Stdout, os.Stderr, func(ctx context.Context) ([]primejudge.Verdict, error) {
		return primejudge.JudgeRange(ctx, lo, hi, *workers)
	})
}

// judgeStdin judges the numbers piped on the standard input.
func judgeStdin(src string) error {
	if src != pipeName {
		return fmt.Errorf("unsupported source %q, only `-` is accepted", src)
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("`-` should be used with a pipe for stdin")
	}

	inputs, err := readInputs(os.Stdin)
	if err != nil {
		return err
	}
	return runBatch(os.Stdout, os.Stderr, func(ctx context.Context) ([]primejudge.Verdict, error) {
		return primejudge.JudgeAll(ctx, inputs, *workers)
	})
}

// runBatch executes fn with a context cancelled on CTRL-C, then writes the verdicts to stdout.
// The progress indicator and the execution time go to stderr.
func runBatch(stdout, stderr io.Writer, fn func(ctx context.Context) ([]primejudge.Verdict, error)) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deco := utils.NewDecorator(stderr)
	msg := fmt.Sprintf("%s %s",
		deco.Text("⚡ PRIMEJUDGE", utils.StatusMessage),
		deco.Text("⇢ judging the numbers...", utils.DefaultMessage),
	)
	showProgress := isTerminal(stderr)
	spinner := utils.NewSpinner(stderr, msg, time.Millisecond*80, true)
	if showProgress {
		spinner.Start()
	}

	now := time.Now()
	verdicts, err := fn(ctx)
	if showProgress {
		spinner.Stop()
	}
	if err != nil {
		return err
	}

	if err := primejudge.WriteVerdicts(stdout, verdicts); err != nil {
		return err
	}
	fmt.Fprintf(stderr, "\nExecution time: %s\n",
		deco.Text(utils.FormatTime(time.Since(now)), utils.SuccessMessage))

	return nil
}

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// readInputs parses the whitespace separated integers of r.
func readInputs(r io.Reader) ([]int64, error) {
	var inputs []int64

	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		n, err := strconv.ParseInt(scanner.Text(), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", scanner.Text(), err)
		}
		inputs = append(inputs, n)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("unable to read the input: %w", err)
	}
	return inputs, nil
}

// isFlagSet reports whether the named flag was provided on the command line.
func isFlagSet(name string) bool {
	var found bool
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
