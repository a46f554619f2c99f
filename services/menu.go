package services

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"ppr-analyser/models"
)

const (
	choiceMenu   = 0
	choiceExport = 9
	choiceExit   = 10
)

// ResultExporter persists an AggregateResult somewhere outside the terminal.
type ResultExporter interface {
	Write(r *models.AggregateResult) error
}

// Prompter reads answers line by line. A single Prompter must be shared by
// everything that reads the same input, since it buffers ahead. Close stops
// the reader goroutine once no more answers are needed.
type Prompter struct {
	out       io.Writer
	lines     <-chan string
	done      chan struct{}
	closeOnce sync.Once
}

// NewPrompter starts reading lines from in.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	lines := make(chan string)
	done := make(chan struct{})
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
	}()
	return &Prompter{out: out, lines: lines, done: done}
}

// Close releases the reader goroutine. A goroutine blocked inside a read of
// in exits after that read returns.
func (p *Prompter) Close() {
	p.closeOnce.Do(func() { close(p.done) })
}

// Ask prints prompt and waits for the next line. It returns io.EOF when the
// input is exhausted and ctx.Err() when ctx is cancelled first.
func (p *Prompter) Ask(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}
		return strings.TrimSpace(line), nil
	}
}

// PromptRowCap asks whether to process every line and, if not, how many.
// Caps below MinRowCap are refused and asked again.
func PromptRowCap(ctx context.Context, p *Prompter, available int) (int, error) {
	for {
		choice, err := p.Ask(ctx, "Would you like to process all records? y/n: ")
		if err != nil {
			return 0, err
		}
		switch strings.ToLower(choice) {
		case "y":
			return available, nil
		case "n":
			answer, err := p.Ask(ctx, "Enter a maximum row: ")
			if err != nil {
				return 0, err
			}
			n, err := strconv.Atoi(answer)
			if err != nil {
				fmt.Fprintln(p.out, "Error in user input (value). Try again..")
				continue
			}
			if err := ValidateRowCap(n); err != nil {
				fmt.Fprintf(p.out, "Rows cannot be less than %d! Try again..\n", MinRowCap)
				continue
			}
			return n, nil
		default:
			fmt.Fprintln(p.out, "Invalid input:", choice)
		}
	}
}

// Menu answers repeated queries against one AggregateResult.
type Menu struct {
	prompter *Prompter
	out      io.Writer
	printer  *Printer
	result   *models.AggregateResult
	exporter ResultExporter
}

// NewMenu creates a Menu. exporter may be nil, which disables option 9.
func NewMenu(p *Prompter, out io.Writer, result *models.AggregateResult, exporter ResultExporter) *Menu {
	return &Menu{
		prompter: p,
		out:      out,
		printer:  NewPrinter(out),
		result:   result,
		exporter: exporter,
	}
}

func (m *Menu) printMenu() {
	fmt.Fprint(m.out, `    0 - View menu
    1 - Number of records
    2 - Maximum value
    3 - Minimum value
    4 - Mean value
    5 - Median value
    6 - Mode value
    7 - Standard Deviation
    8 - Extra Data Mining
    9 - Export statistics workbook
    10 - Exit
`)
}

// Run loops until the user picks exit, the input ends, or ctx is cancelled.
// Cancelling only stops the loop; the result it reads is already complete.
func (m *Menu) Run(ctx context.Context) error {
	s := m.result.Span
	fmt.Fprintf(m.out, "\nYou can analyse the property prices since %s - %s.\n",
		s.FirstDate.Format(displayDate), s.LastDate.Format(displayDate))
	m.printMenu()

	for {
		answer, err := m.prompter.Ask(ctx, "\nEnter your choice: ")
		switch {
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			fmt.Fprintln(m.out, "\nProgram stopped by user key interrupt.")
			return nil
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return err
		}

		choice, err := strconv.Atoi(answer)
		if err != nil || choice < choiceMenu || (choice > choiceExport && choice != choiceExit) {
			fmt.Fprintln(m.out, "You entered an invalid choice.")
			continue
		}
		if choice == choiceExit {
			fmt.Fprintln(m.out, "\nThank you for reviewing the data. Program finished.")
			return nil
		}
		m.dispatch(choice)
	}
}

func (m *Menu) dispatch(choice int) {
	r := m.result
	switch choice {
	case choiceMenu:
		m.printMenu()
	case 1:
		m.printer.Records(r)
	case 2:
		m.printer.Maximum(r)
	case 3:
		m.printer.Minimum(r)
	case 4:
		m.printer.Means(r)
	case 5:
		m.printer.MedianValue(r)
	case 6:
		m.printer.ModeValue(r)
	case 7:
		m.printer.StdDevs(r)
	case 8:
		m.printer.Extra(r)
	case choiceExport:
		if m.exporter == nil {
			fmt.Fprintln(m.out, "Workbook export is not configured.")
			return
		}
		if err := m.exporter.Write(r); err != nil {
			fmt.Fprintf(m.out, "Workbook export failed: %v\n", err)
			return
		}
		fmt.Fprintln(m.out, "Workbook exported.")
	}
}
