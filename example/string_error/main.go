// Package main shows that a plain string can be reported as an error.
//
// Output:
//
//	Error: strings can be used as errors
package main

import "github.com/next-trace/scg-mainerror/mainerror"

func main() {
	mainerror.Main(run)
}

func run() mainerror.Result {
	return mainerror.FromText("strings can be used as errors")
}
