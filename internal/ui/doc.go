// Package ui implements the profile search screen with Bubble Tea.
//
//   - View: a screen with its own model, update, view (Elm-style)
//   - SearchView: the search form plus the error / loading / card region
//   - KeybindRegistry: key to command bindings and the help bar
//
// SearchView renders whatever fetch.Controller reports; it never issues
// requests itself.
package ui
