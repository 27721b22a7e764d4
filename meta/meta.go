// meta/meta.go
package meta

// STARTING_STONES defines the number of stones in every bin at the start.
const STARTING_STONES = 4

// TOP_PATHS defines how many ranked outcomes to report.
const TOP_PATHS = 10
