package mainerror

import (
	"strings"

	"github.com/next-trace/scg-mainerror/contract"
)

// truncatedLine replaces the causes beyond maxDepth.
const truncatedLine = "[cause chain truncated]"

// causeOf returns the single cause exposed by err, or nil.
// Errors that unwrap to several errors (errors.Join, multiple %w) end the chain:
// their own message already lists every branch. A *Error inside the chain is
// not a link of its own; the error it boxes is returned instead.
func causeOf(err error) error {
	return unbox(nextOf(err))
}

// unbox steps through nested *Error values to the error they box.
func unbox(err error) error {
	for {
		e, ok := err.(*Error)
		if !ok || e == nil {
			return err
		}

		err = e.err
	}
}

func nextOf(err error) error {
	switch x := err.(type) {
	case interface{ Unwrap() error }:
		return x.Unwrap()
	case interface{ Unwrap() []error }:
		return nil
	case contract.Causer:
		return x.Cause()
	}

	return nil
}

// messages collects the message of the wrapped error and of up to maxDepth
// causes. truncated reports whether the chain continued past the cap.
func (e *Error) messages() (msgs []string, truncated bool) {
	top := unbox(e.err)
	msgs = []string{top.Error()}

	for cause := causeOf(top); !isNil(cause); cause = causeOf(cause) {
		if len(msgs) > e.maxDepth {
			return msgs, true
		}

		msgs = append(msgs, cause.Error())
	}

	return msgs, false
}

// lines returns the report lines, without markers.
func (e *Error) lines() []string {
	msgs, truncated := e.messages()
	if e.compact {
		msgs = compactMessages(msgs)
	}

	if truncated {
		msgs = append(msgs, truncatedLine)
	}

	return msgs
}

// compactMessages strips from each message the text it repeats from the next
// one. The last message is always kept.
func compactMessages(msgs []string) []string {
	out := make([]string, 0, len(msgs))

	for i, msg := range msgs {
		if i == len(msgs)-1 {
			out = append(out, msg)
			break
		}

		next := msgs[i+1]

		switch {
		case msg == next:
			continue
		case next != "" && strings.HasSuffix(msg, ": "+next):
			msg = strings.TrimSuffix(msg, ": "+next)
		}

		out = append(out, msg)
	}

	return out
}
