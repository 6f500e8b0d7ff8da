// Package result carries the coded outcome of a repository operation.
//
// A repository answers every expected business condition (blank input,
// missing row, duplicate key) through a Result, and reserves the error
// return for storage faults. Each repository package declares its own
// named Code constants; the numeric values are only meaningful per operation.
package result

type Code int

type Result struct {
	Success bool
	Code    Code
}

// OK is the successful outcome, always coded 0.
func OK() Result {
	return Result{Success: true, Code: 0}
}

func Fail(code Code) Result {
	return Result{Success: false, Code: code}
}

// Done returns a successful Result carrying a non-zero code. Condition
// queries use it to report which branch produced the list.
func Done(code Code) Result {
	return Result{Success: true, Code: code}
}
