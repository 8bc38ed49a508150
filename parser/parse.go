package parser

import (
	"call-staffing/errors"
	"call-staffing/metrics"
	"call-staffing/models"
	"encoding/csv"
	stderrors "errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

const (
	minFields = 5
	maxFields = 7
)

// Parse reads CSV data from the reader and returns one ParameterSet per row.
// Lines starting with '#' are headers/comments.
// Each row is: name, arrival rate (calls/hour), average handling time
// (seconds), abandonment (%), unavailability (%). Two optional trailing
// columns override the max wait time and the productive time, both in
// seconds. Fields the row does not carry keep their value from defaults,
// which is normally the resolved model configuration.
func Parse(r io.Reader, defaults models.StaffingParameters) ([]models.ParameterSet, error) {
	start := time.Now()
	defer func() {
		metrics.ParserDurationSeconds.Observe(time.Since(start).Seconds())
	}()

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	var data []models.ParameterSet
	lineNum := 0

	for {
		record, err := reader.Read()
		lineNum++
		if err == io.EOF {
			break
		}
		if err != nil {
			metrics.ParserErrorsTotal.WithLabelValues("read").Inc()
			return nil, fmt.Errorf("error reading CSV at line %d: %w", lineNum, err)
		}

		if len(record) > 0 && strings.HasPrefix(strings.TrimSpace(record[0]), "#") {
			continue
		}

		set, err := parseRecord(lineNum, record, defaults)
		if err != nil {
			metrics.ParserErrorsTotal.WithLabelValues(errorType(err)).Inc()
			return nil, err
		}
		data = append(data, set)
		metrics.ParserRecordsTotal.Inc()
	}

	return data, nil
}

func parseRecord(lineNum int, record []string, defaults models.StaffingParameters) (models.ParameterSet, error) {
	fail := func(sentinel error, cause error) (models.ParameterSet, error) {
		err := sentinel
		if cause != nil {
			err = fmt.Errorf("%w: %v", sentinel, cause)
		}
		return models.ParameterSet{}, &errors.ParseError{Line: lineNum, Record: record, Err: err}
	}

	// encoding/csv skips only zero-length lines; a whitespace-only line
	// arrives here as a single empty field.
	if len(record) == 0 || (len(record) == 1 && strings.TrimSpace(record[0]) == "") {
		return fail(errors.ErrEmptyRecord, nil)
	}
	if len(record) < minFields || len(record) > maxFields {
		return fail(errors.ErrInvalidFieldCount, nil)
	}

	set := models.ParameterSet{
		Name:       strings.TrimSpace(record[0]),
		Parameters: defaults,
	}
	p := &set.Parameters

	var err error
	if p.ArrivalRate, err = parseFloat(record[1]); err != nil {
		return fail(errors.ErrInvalidArrivalRate, err)
	}
	if p.ServiceTime, err = parseFloat(record[2]); err != nil {
		return fail(errors.ErrInvalidServiceTime, err)
	}

	abandonment, err := parseFloat(record[3])
	if err != nil {
		return fail(errors.ErrInvalidAbandonment, err)
	}
	p.AbandonmentRate = abandonment / 100

	unavailability, err := parseFloat(record[4])
	if err != nil {
		return fail(errors.ErrInvalidUnavailability, err)
	}
	p.UnavailabilityPercentage = unavailability / 100

	if len(record) > 5 && strings.TrimSpace(record[5]) != "" {
		if p.MaxWaitTime, err = parseFloat(record[5]); err != nil {
			return fail(errors.ErrInvalidMaxWaitTime, err)
		}
	}
	if len(record) > 6 && strings.TrimSpace(record[6]) != "" {
		if p.ProductiveTime, err = parseFloat(record[6]); err != nil {
			return fail(errors.ErrInvalidProductiveTime, err)
		}
	}

	return set, nil
}

func parseFloat(value string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(value), 64)
}

// errorType labels a parse error by the field that failed.
func errorType(err error) string {
	switch {
	case stderrors.Is(err, errors.ErrEmptyRecord):
		return "empty_record"
	case stderrors.Is(err, errors.ErrInvalidFieldCount):
		return "field_count"
	case stderrors.Is(err, errors.ErrInvalidArrivalRate):
		return "arrival_rate"
	case stderrors.Is(err, errors.ErrInvalidServiceTime):
		return "service_time"
	case stderrors.Is(err, errors.ErrInvalidAbandonment):
		return "abandonment"
	case stderrors.Is(err, errors.ErrInvalidUnavailability):
		return "unavailability"
	case stderrors.Is(err, errors.ErrInvalidMaxWaitTime):
		return "max_wait_time"
	case stderrors.Is(err, errors.ErrInvalidProductiveTime):
		return "productive_time"
	default:
		return "unknown"
	}
}
