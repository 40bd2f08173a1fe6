package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/nicholas-fedor/bidsort/pkg/bid"
	"github.com/nicholas-fedor/bidsort/pkg/session"
	"github.com/nicholas-fedor/bidsort/pkg/sorter"
	"github.com/nicholas-fedor/bidsort/pkg/types"
)

// Menu choices.
const (
	choiceLoad      = 1
	choiceDisplay   = 2
	choiceSelection = 3
	choiceQuick     = 4
	choiceMerge     = 5
	choiceStandard  = 6
	choiceEnter     = 7
	choiceExit      = 9
)

// loadOperation names the load step in timing output.
const loadOperation = "Load Bids"

// errReadInput indicates the menu input could not be read.
var errReadInput = errors.New("failed to read menu input")

// sortChoices maps menu numbers to algorithms.
var sortChoices = map[int]sorter.Algorithm{
	choiceSelection: sorter.Selection,
	choiceQuick:     sorter.Quick,
	choiceMerge:     sorter.Merge,
	choiceStandard:  sorter.Standard,
}

// Recorder receives timed operations, normally *metrics.Metrics.
type Recorder interface {
	ObserveSort(algorithm string, result session.Result)
	ObserveLoad(result session.Result)
}

// Config holds the collaborators of a Menu.
type Config struct {
	Input   io.Reader   // Source of choices and bid entries.
	Output  io.Writer   // Destination of prompts and results.
	CSVPath string      // File read by "Load Bids".
	Clock   types.Clock // Timing source; defaults to the system clock.
	Metrics Recorder    // Optional; nil disables metric recording.
}

// Menu is an interactive session over one bid sequence.
type Menu struct {
	scanner *bufio.Scanner
	out     io.Writer
	csvPath string
	clock   types.Clock
	metrics Recorder
	bids    []bid.Bid
	report  session.Report
}

// New creates a Menu from cfg.
func New(cfg Config) *Menu {
	clock := cfg.Clock
	if clock == nil {
		clock = types.SystemClock{}
	}

	out := cfg.Output
	if out == nil {
		out = io.Discard
	}

	input := cfg.Input
	if input == nil {
		input = strings.NewReader("")
	}

	return &Menu{
		scanner: bufio.NewScanner(input),
		out:     out,
		csvPath: cfg.CSVPath,
		clock:   clock,
		metrics: cfg.Metrics,
	}
}

// Bids returns a copy of the bids currently held by the menu.
func (m *Menu) Bids() []bid.Bid {
	return slices.Clone(m.bids)
}

// Report returns the timed operations performed so far.
func (m *Menu) Report() *session.Report {
	return &m.report
}

// Run processes choices until the user exits, the input ends or ctx is cancelled.
//
// Parameters:
//   - ctx: Checked before each prompt.
//
// Returns:
//   - error: ctx.Err() on cancellation, a wrapped read error, or nil.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.printMenu()

		line, ok := m.readLine()
		if !ok {
			m.println()
			logrus.Debug("Menu input closed")

			return m.inputErr()
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			m.println("Invalid input. Please enter a number.")

			continue
		}

		if choice == choiceExit {
			m.println("Good bye.")

			return nil
		}

		if err := m.handle(choice); err != nil {
			return err
		}
	}
}

// handle runs a single non-exit choice.
func (m *Menu) handle(choice int) error {
	switch choice {
	case choiceLoad:
		m.load()
	case choiceDisplay:
		m.display()
	case choiceEnter:
		return m.enter()
	default:
		algorithm, ok := sortChoices[choice]
		if !ok {
			m.println("Invalid choice. Try again.")

			return nil
		}

		m.sort(algorithm)
	}

	return nil
}

func (m *Menu) printMenu() {
	m.printf("\nMenu:\n")
	m.printf("  %d. Load Bids\n", choiceLoad)
	m.printf("  %d. Display All Bids\n", choiceDisplay)
	m.printf("  %d. Selection Sort\n", choiceSelection)
	m.printf("  %d. Quick Sort\n", choiceQuick)
	m.printf("  %d. Merge Sort\n", choiceMerge)
	m.printf("  %d. Standard Sort\n", choiceStandard)
	m.printf("  %d. Enter Bid\n", choiceEnter)
	m.printf("  %d. Exit\n", choiceExit)
	m.printf("Enter choice: ")
}

// load replaces the held bids with the contents of the CSV file.
// A failed load keeps the previous bids.
func (m *Menu) load() {
	m.printf("Loading CSV file: %s\n", m.csvPath)

	var (
		loaded []bid.Bid
		err    error
	)

	result := session.Measure(m.clock, loadOperation, 0, func() {
		loaded, err = bid.LoadCSV(m.csvPath)
	})
	if err != nil {
		logrus.WithError(err).WithField("path", m.csvPath).Warn("Could not load bids")
		m.printf("Failed to load bids: %v\n", err)

		return
	}

	result.Records = len(loaded)
	m.bids = loaded
	m.record(result, nil)

	m.printf("%d bids loaded successfully.\n", len(loaded))
	m.println(result.String())
}

func (m *Menu) display() {
	if len(m.bids) == 0 {
		m.println("No bids loaded.")

		return
	}

	for _, b := range m.bids {
		m.println(bid.Format(b))
	}
}

// sort orders the held bids in place with algorithm and reports the time taken.
func (m *Menu) sort(algorithm sorter.Algorithm) {
	if len(m.bids) == 0 {
		m.println("No bids loaded.")

		return
	}

	var err error

	result := session.Measure(m.clock, algorithm.DisplayName(), len(m.bids), func() {
		err = sorter.Sort(algorithm, m.bids)
	})
	if err != nil {
		logrus.WithError(err).Error("Sort failed")
		m.printf("Sort failed: %v\n", err)

		return
	}

	m.record(result, &algorithm)
	m.println(result.String())
}

// enter prompts for the fields of a new bid and appends it.
func (m *Menu) enter() error {
	prompts := []string{"Enter Id: ", "Enter title: ", "Enter fund: ", "Enter amount: $"}
	fields := make([]string, 0, len(prompts))

	for _, prompt := range prompts {
		m.printf("%s", prompt)

		line, ok := m.readLine()
		if !ok {
			m.println()

			return m.inputErr()
		}

		fields = append(fields, line)
	}

	entry := bid.ParseEntry(fields[0], fields[1], fields[2], fields[3])
	m.bids = append(m.bids, entry)

	logrus.WithFields(logrus.Fields{
		"id":    entry.ID,
		"title": entry.Title,
	}).Debug("Bid entered")
	m.printf("Bid %s added.\n", entry.ID)

	return nil
}

// record adds result to the report and forwards it to the metrics recorder.
// A nil algorithm marks a load.
func (m *Menu) record(result session.Result, algorithm *sorter.Algorithm) {
	m.report.Add(result)

	if m.metrics == nil {
		return
	}

	if algorithm == nil {
		m.metrics.ObserveLoad(result)

		return
	}

	m.metrics.ObserveSort(algorithm.String(), result)
}

func (m *Menu) readLine() (string, bool) {
	if !m.scanner.Scan() {
		return "", false
	}

	return m.scanner.Text(), true
}

// inputErr reports why reading stopped; nil at end of input.
func (m *Menu) inputErr() error {
	if err := m.scanner.Err(); err != nil {
		return fmt.Errorf("%w: %w", errReadInput, err)
	}

	return nil
}

func (m *Menu) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(m.out, format, args...)
}

func (m *Menu) println(args ...any) {
	_, _ = fmt.Fprintln(m.out, args...)
}
