// Package tui plays 2048 in a terminal against a local engine.
//
// Keys are read from stdin in raw mode: arrow keys, wasd or hjkl move,
// r starts a new game and q or Ctrl+C quits. UI strings come from an
// embedded gettext catalog (locale/en.po).
package tui
