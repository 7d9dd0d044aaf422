package deck

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

const (
	liquidField = 2
	vaporField  = 3
	minFields   = 4
)

// ReadOptions controls how a data source is parsed
type ReadOptions struct {
	// SkipMalformed drops bad records instead of failing the load
	SkipMalformed bool
	Logger        *log.Logger
}

// Source holds the liquid-phase and vapor-phase columns of a data file in
// file order. Liquid and Vapor always have the same length.
type Source struct {
	Liquid  []Card
	Vapor   []Card
	Skipped int
}

// Len returns the number of records read
func (s Source) Len() int {
	return len(s.Liquid)
}

// Combined returns the liquid cards followed by the vapor cards
func (s Source) Combined() []Card {
	out := make([]Card, 0, len(s.Liquid)+len(s.Vapor))
	out = append(out, s.Liquid...)
	return append(out, s.Vapor...)
}

// LoadFile reads a data source from path
func LoadFile(path string, opts ReadOptions) (Source, error) {
	if path == "" {
		return Source{}, &ConfigurationError{Err: errors.New("no data file configured")}
	}
	f, err := os.Open(path)
	if err != nil {
		return Source{}, &ConfigurationError{Path: path, Err: err}
	}
	defer f.Close()

	src, err := ReadRecords(f, opts)
	if err != nil {
		return Source{}, fmt.Errorf("load %s: %w", path, err)
	}
	return src, nil
}

// ReadRecords parses comma-separated records, taking field 2 as the liquid
// value and field 3 as the vapor value of every line. Blank lines are
// ignored. With SkipMalformed set, records that fail to tokenize or parse
// are counted in Skipped and logged instead of aborting the read.
func ReadRecords(r io.Reader, opts ReadOptions) (Source, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var src Source
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if !errors.As(err, &perr) {
				return Source{}, &ConfigurationError{Err: err}
			}
			merr := &MalformedRecordError{Line: perr.Line, Err: perr.Err}
			if !opts.SkipMalformed {
				return Source{}, merr
			}
			logger.Warn("Skipping malformed record", "line", perr.Line, "error", merr)
			src.Skipped++
			continue
		}
		line, _ := cr.FieldPos(0)

		liquid, vapor, err := parseRecord(record, line)
		if err != nil {
			if !opts.SkipMalformed {
				return Source{}, err
			}
			logger.Warn("Skipping malformed record", "line", line, "error", err)
			src.Skipped++
			continue
		}
		src.Liquid = append(src.Liquid, liquid)
		src.Vapor = append(src.Vapor, vapor)
	}

	if src.Len() == 0 {
		return Source{}, &InsufficientDataError{Queue: "source", Need: "reading records"}
	}

	logger.Debug("Read data source", "records", src.Len(), "skipped", src.Skipped)
	return src, nil
}

func parseRecord(record []string, line int) (Card, Card, error) {
	if len(record) < minFields {
		return Card{}, Card{}, &MalformedRecordError{Line: line, Fields: len(record)}
	}
	liquid, err := ParseCard(record[liquidField])
	if err != nil {
		return Card{}, Card{}, &MalformedRecordError{Line: line, Fields: len(record), Err: fmt.Errorf("liquid value: %w", err)}
	}
	vapor, err := ParseCard(record[vaporField])
	if err != nil {
		return Card{}, Card{}, &MalformedRecordError{Line: line, Fields: len(record), Err: fmt.Errorf("vapor value: %w", err)}
	}
	return liquid, vapor, nil
}
