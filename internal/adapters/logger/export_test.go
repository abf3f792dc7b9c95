// export_test.go exports private identifiers for white-box testing.
package logger

// ErrorEntry exposes the private entry type for tests.
type ErrorEntry = errorEntry

// Exported error formatting helpers.
var (
	CollectErrorEntries = collectErrorEntries
	FormatErrorEntries  = formatErrorEntries
)
