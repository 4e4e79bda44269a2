// Package main returns different error types from one entry function.
//
// Output:
//
//	Error: strconv.Atoi: parsing "not a number"
//	caused by: invalid syntax
package main

import (
	"errors"
	"strconv"
	"unicode/utf8"

	"github.com/next-trace/scg-mainerror/mainerror"
)

func main() {
	mainerror.Run(run)
}

func run() error {
	if _, err := strconv.Atoi("not a number"); err != nil {
		return mainerror.From(err, mainerror.WithCompactMessages())
	}

	if !utf8.Valid([]byte{159}) {
		return errors.New("invalid utf-8 sequence")
	}

	return mainerror.FromText("str")
}
