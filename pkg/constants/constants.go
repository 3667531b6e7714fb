// Package constants provides shared constants for the take-home application.
package constants

// Pay period counts per year.
const (
	// WeeklyPeriods is the number of weekly paychecks in a year
	WeeklyPeriods = 52

	// BiweeklyPeriods is the number of biweekly paychecks in a year
	BiweeklyPeriods = 26

	// SemimonthlyPeriods is the number of semimonthly paychecks in a year
	SemimonthlyPeriods = 24

	// MonthlyPeriods is the number of monthly paychecks in a year
	MonthlyPeriods = 12

	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12
)

// Federal income tax bands. Each ceiling is inclusive.
const (
	FederalBand1Ceiling = 11600.0
	FederalBand2Ceiling = 47150.0
	FederalBand3Ceiling = 100525.0

	FederalBand1Rate = 0.10
	FederalBand2Rate = 0.12
	FederalBand3Rate = 0.22
	FederalBand4Rate = 0.24
)

// Payroll tax constants
const (
	// MedicareRate applies to every paycheck
	MedicareRate = 0.0145

	// SocialSecurityRate applies only when annual salary is at or below the wage base
	SocialSecurityRate = 0.062

	// SocialSecurityWageBase is the annual salary above which Social Security is dropped entirely
	SocialSecurityWageBase = 168600.0

	// DefaultStateTaxRate is used for any state missing from the state table
	DefaultStateTaxRate = 0.05
)

// Benefit deduction rates, applied to gross pay.
const (
	HealthInsuranceRate = 0.05
	RetirementRate      = 0.03
)

// Financial constants
const (
	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatPDF renders one paystub-style page per profile
	OutputFormatPDF = "pdf"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum request body size (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024
)
