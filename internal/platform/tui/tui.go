// Package tui provides the Bubble Tea front end for puzzlekit.
// It maps keys to session calls and renders the session state.
package tui
