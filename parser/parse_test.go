package parser_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	customerrors "call-staffing/errors"
	"call-staffing/models"
	"call-staffing/parser"
	"call-staffing/staffing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	// Helper to build the parameters a row is expected to produce
	expect := func(arrival, service, abandonment, unavailability float64) models.StaffingParameters {
		p := staffing.DefaultParameters()
		p.ArrivalRate = arrival
		p.ServiceTime = service
		p.AbandonmentRate = abandonment
		p.UnavailabilityPercentage = unavailability
		return p
	}

	tests := map[string]struct {
		input         string
		expectedData  []models.ParameterSet
		expectedError error
	}{
		"ValidInput_SingleLine": {
			input: `
Retail Support, 468, 300, 5, 38
`,
			expectedData: []models.ParameterSet{
				{Name: "Retail Support", Parameters: expect(468, 300, 0.05, 0.38)},
			},
		},
		"ValidInput_MultipleLines_WithComments": {
			input: `
# This is a comment
# Name, ArrivalRate, ServiceTime, Abandonment%, Unavailability%
Billing, 250, 180, 3, 35
Collections, 1000, 600, 15, 50
`,
			expectedData: []models.ParameterSet{
				{Name: "Billing", Parameters: expect(250, 180, 0.03, 0.35)},
				{Name: "Collections", Parameters: expect(1000, 600, 0.15, 0.5)},
			},
		},
		"ValidInput_OptionalOverrides": {
			input: `
Priority Line, 120, 240, 4, 40, 15, 27000
Default Wait, 120, 240, 4, 40, , 27000
`,
			expectedData: []models.ParameterSet{
				{Name: "Priority Line", Parameters: func() models.StaffingParameters {
					p := expect(120, 240, 0.04, 0.40)
					p.MaxWaitTime = 15
					p.ProductiveTime = 27000
					return p
				}()},
				{Name: "Default Wait", Parameters: func() models.StaffingParameters {
					p := expect(120, 240, 0.04, 0.40)
					p.ProductiveTime = 27000
					return p
				}()},
			},
		},
		"InvalidFieldCount_TooFew": {
			input:         `Billing, 250, 180, 3`,
			expectedError: customerrors.ErrInvalidFieldCount,
		},
		"InvalidFieldCount_TooMany": {
			input:         `Billing, 250, 180, 3, 35, 20, 24588, 100`,
			expectedError: customerrors.ErrInvalidFieldCount,
		},
		"InvalidArrivalRate": {
			input:         `Billing, lots, 180, 3, 35`,
			expectedError: customerrors.ErrInvalidArrivalRate,
		},
		"InvalidServiceTime": {
			input:         `Billing, 250, 3m, 3, 35`,
			expectedError: customerrors.ErrInvalidServiceTime,
		},
		"InvalidAbandonment": {
			input:         `Billing, 250, 180, 3%, 35`,
			expectedError: customerrors.ErrInvalidAbandonment,
		},
		"InvalidUnavailability": {
			input:         `Billing, 250, 180, 3, high`,
			expectedError: customerrors.ErrInvalidUnavailability,
		},
		"InvalidMaxWaitTime": {
			input:         `Billing, 250, 180, 3, 35, soon`,
			expectedError: customerrors.ErrInvalidMaxWaitTime,
		},
		"InvalidProductiveTime": {
			input:         `Billing, 250, 180, 3, 35, 20, 6h50m`,
			expectedError: customerrors.ErrInvalidProductiveTime,
		},
		"EmptyRecord": {
			input:         "# header\n   \nBilling, 250, 180, 3, 35",
			expectedError: customerrors.ErrEmptyRecord,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r := strings.NewReader(strings.TrimSpace(tt.input))
			got, err := parser.Parse(r, staffing.DefaultParameters())

			if tt.expectedError != nil {
				assert.True(t, errors.Is(err, tt.expectedError), "Parse() error = %v, expectedError %v", err, tt.expectedError)
				return
			}

			if err != nil {
				t.Errorf("Parse() unexpected error = %v", err)
				return
			}

			assert.Equal(t, tt.expectedData, got, fmt.Sprintf("Parse() = %v, want %v", got, tt.expectedData))
		})
	}
}

func TestParse_ErrorCarriesLine(t *testing.T) {
	input := "# Name, ArrivalRate, ServiceTime, Abandonment%, Unavailability%\nBilling, 250, 180, 3, 35\nBroken, x, 180, 3, 35"

	_, err := parser.Parse(strings.NewReader(input), staffing.DefaultParameters())

	var parseErr *customerrors.ParseError
	if assert.True(t, errors.As(err, &parseErr)) {
		assert.Equal(t, 3, parseErr.Line)
		assert.Equal(t, "Broken", parseErr.Record[0])
	}
}

func TestParse_Empty(t *testing.T) {
	got, err := parser.Parse(strings.NewReader("# only a header\n"), staffing.DefaultParameters())
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestParse_CarriesModelDefaults(t *testing.T) {
	defaults := staffing.DefaultParameters()
	defaults.MaxWaitTime = 40
	defaults.ProductiveTime = 27000
	defaults.PatienceTime = 90

	input := `
Retail Support, 468, 300, 5, 38
Priority Line, 120, 240, 4, 40, 15
`
	got, err := parser.Parse(strings.NewReader(strings.TrimSpace(input)), defaults)
	if !assert.NoError(t, err) || !assert.Len(t, got, 2) {
		return
	}

	assert.Equal(t, 40.0, got[0].Parameters.MaxWaitTime)
	assert.Equal(t, 27000.0, got[0].Parameters.ProductiveTime)
	assert.Equal(t, 90.0, got[0].Parameters.PatienceTime)
	assert.Equal(t, 468.0, got[0].Parameters.ArrivalRate)

	// column 6 still overrides the model wait time
	assert.Equal(t, 15.0, got[1].Parameters.MaxWaitTime)
	assert.Equal(t, 27000.0, got[1].Parameters.ProductiveTime)
}
