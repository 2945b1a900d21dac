// Package cli implements the interactive trip admin console: a small REPL
// over the user and trip coordinators. It renders listings, drives the
// create/edit/delete dialogs through prompts, and shows inline field errors
// when the submit gate rejects a draft.
package cli
