// export_test.go exports private identifiers for white-box testing.
package app

// Merge exposes the option merging logic for tests.
var Merge = merge
