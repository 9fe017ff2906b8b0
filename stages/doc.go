// Package stages collects the small, concrete stage vocabulary built on top
// of the csp core: file and subprocess sources, line filters, an in-memory
// source/sink, and adapters that turn a plain function into a stage. None of
// these are part of the concurrency substrate itself — each is an ordinary
// csp.Stage with a one-line contract, documented on its constructor.
package stages
