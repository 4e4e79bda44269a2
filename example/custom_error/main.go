// Package main reports a custom error type through its Error method.
//
// Output:
//
//	Error: human-readable description of MyError
package main

import "github.com/next-trace/scg-mainerror/mainerror"

// MyError can also be a more complex struct.
type MyError struct{}

func (MyError) Error() string { return "human-readable description of MyError" }

func main() {
	mainerror.Main(func() mainerror.Result {
		return mainerror.From(MyError{})
	})
}
