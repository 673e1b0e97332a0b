package write

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"
)

type WriteSettings struct {
	DisplayWriters []Writer // Where progress should be written. Nil disables all progress output
	// DisplayInterval throttles Displayer writers. Zero uses the default
	// interval, a negative value displays every iteration.
	DisplayInterval time.Duration
}

// DefaultWriteSettings returns settings that write nothing. Solvers are
// usually driven by a caller that renders the finished trace itself.
func DefaultWriteSettings() *WriteSettings {
	return &WriteSettings{}
}

type Type int

const (
	// Logger is a writer intended to save details of the solve for future
	// postprocessing. The data is saved as csv, one row per iteration
	Logger Type = iota

	// Displayer is a writer intended for human monitoring of the solve.
	// Writes only happen periodically, and an effort is made to align columns
	Displayer
)

type Writer struct {
	io.Writer
	T Type
}

type Value struct {
	Value   interface{}
	Heading string
}

type DataAdder interface {
	AppendWriteData([]*Value) []*Value
}

const headingInterval = 30
const defaultValueInterval time.Duration = 500 * time.Millisecond

// Display tabulates the values of its data adders once per iteration.
// Headings are assumed not to change during a solve.
type Display struct {
	displayValues []*Value

	headings   []string
	values     []string
	maxLengths []int

	valueInterval      time.Duration
	lastHeadingDisplay int
	lastValueDisplay   time.Time

	existsDisplayer bool
	existsLogger    bool

	writers []Writer

	dataAdders []DataAdder
}

// accumulateValues gets all of the values from the data adders and stores
// them in display
func (d *Display) accumulateValues() {
	d.displayValues = d.displayValues[:0]
	for _, add := range d.dataAdders {
		d.displayValues = add.AppendWriteData(d.displayValues)
	}
}

func NewDisplay() *Display {
	return &Display{}
}

// AddDataAdder adds a DataAdder to the list of values to be printed/logged.
// This should only be called during initialization
func (d *Display) AddDataAdder(dataAdders ...DataAdder) {
	d.dataAdders = append(d.dataAdders, dataAdders...)
}

// Init initializes the displays for the writers according to their Type
func (d *Display) Init(w *WriteSettings) error {
	d.writers = w.DisplayWriters
	d.existsDisplayer = false
	d.existsLogger = false

	d.valueInterval = w.DisplayInterval
	if d.valueInterval == 0 {
		d.valueInterval = defaultValueInterval
	}
	// headings and values are displayed on the first iteration
	d.lastHeadingDisplay = headingInterval + 1
	d.lastValueDisplay = time.Time{}

	if len(d.writers) == 0 {
		return nil
	}
	d.accumulateValues()

	d.headings = d.headings[:0]
	for _, dat := range d.displayValues {
		d.headings = append(d.headings, dat.Heading)
	}

	for _, w := range d.writers {
		switch w.T {
		default:
			return fmt.Errorf("display: unknown writer type %d", w.T)
		case Logger:
			d.existsLogger = true
			if err := writeCSV(w, d.headings); err != nil {
				return err
			}
		case Displayer:
			d.existsDisplayer = true
		}
	}
	return nil
}

// Iterate is the write action performed by display at every iteration
// of the algorithm, as set by the values in the Writers and dataAdders which
// were set during initialization
func (d *Display) Iterate() error {
	if len(d.writers) == 0 {
		return nil
	}

	var displayValues bool
	var displayHeadings bool

	if d.existsDisplayer {
		displayValues = d.shouldDisplayValues()
		if displayValues {
			d.lastValueDisplay = time.Now()
			d.lastHeadingDisplay++
		}

		displayHeadings = d.shouldDisplayHeadings()
		if displayHeadings {
			d.lastHeadingDisplay = 0
		}
	}

	// only accumulate values if needed
	if d.existsLogger || displayValues || displayHeadings {
		d.accumulateValues()
		d.values = d.values[:0]
		for _, v := range d.displayValues {
			d.values = append(d.values, valueToString(v.Value))
		}
	}

	if displayValues || displayHeadings {
		d.maxLengths = d.maxLengths[:0]
		for i, v := range d.values {
			n := len(v)
			if len(d.headings[i]) > n {
				n = len(d.headings[i])
			}
			d.maxLengths = append(d.maxLengths, n)
		}
	}
	for _, w := range d.writers {
		switch w.T {
		case Logger:
			if err := writeCSV(w, d.values); err != nil {
				return err
			}
		case Displayer:
			if displayHeadings {
				if _, err := w.Write([]byte("\n")); err != nil {
					return err
				}
				if err := writeAlignedStrings(w, d.headings, d.maxLengths); err != nil {
					return err
				}
			}
			if displayValues {
				if err := writeAlignedStrings(w, d.values, d.maxLengths); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (d *Display) shouldDisplayValues() bool {
	// Limit printing when iterations are quick
	return d.valueInterval < 0 || time.Since(d.lastValueDisplay) > d.valueInterval
}

func (d *Display) shouldDisplayHeadings() bool {
	// Display headings again after a certain number of value printings
	return d.lastHeadingDisplay > headingInterval
}

func writeAlignedStrings(w io.Writer, strs []string, maxLengths []int) error {
	for i, str := range strs {
		s := str + strings.Repeat(" ", maxLengths[i]-len(str)) + "\t"
		if _, err := w.Write([]byte(s)); err != nil {
			return err
		}
	}
	_, err := w.Write([]byte("\n"))
	return err
}

// writeCSV writes one comma separated row
func writeCSV(w io.Writer, fields []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(fields); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func valueToString(v interface{}) string {
	switch t := v.(type) {
	case int:
		return fmt.Sprintf("%d", t)
	case float64:
		return fmt.Sprintf("%e", t)
	case string:
		return t
	default:
		return fmt.Sprintf("%v", t)
	}
}
