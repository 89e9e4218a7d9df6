// Package ui renders the job listing page with Bubble Tea.
//
// Core pieces:
//   - View: a screen region with its own Init/Update/View (Elm-style)
//   - ListingView: top bar, hero, search input and the result cards
//   - DetailView: the side panel for the selected posting
//   - FocusManager: rotates focus between the search input and results
//   - KeybindRegistry/KeyHandler: single keys and SPC leader sequences
//
// All presentation state lives in a listing.Controller owned by AppModel;
// views read it when rendering and handlers write it.
package ui
