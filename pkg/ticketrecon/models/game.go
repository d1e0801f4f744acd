package models

// GameDef is an entry of the externally owned game master list. The
// core never mutates it.
type GameDef struct {
	// ID is the game identifier in the master store.
	ID string `json:"id"`
	// Name is the official display name.
	Name string `json:"name"`
	// ShortCode is the code embedded in report file names.
	ShortCode string `json:"short_code,omitempty"`
	// Board is the board/variant label, if any.
	Board string `json:"board,omitempty"`
	// Weekday is the draw weekday for the short code (e.g. "Tuesday").
	Weekday string `json:"weekday,omitempty"`
}

// DayCodeTable maps a weekday name to the short codes drawn that day,
// each resolving to its GameDef.
type DayCodeTable map[string]map[string]GameDef

// SuggestionStatus classifies the outcome of the auto game/day mapper.
type SuggestionStatus string

const (
	// SuggestOK means an unambiguous code was found matching the
	// weekday of the business date.
	SuggestOK SuggestionStatus = "ok"
	// SuggestMismatchDay means the code resolved, but under a
	// different weekday than the business date implies.
	SuggestMismatchDay SuggestionStatus = "mismatch_day"
	// SuggestAmbiguous means the code exists under multiple weekdays
	// and the selected weekday has no entry for it.
	SuggestAmbiguous SuggestionStatus = "ambiguous"
	// SuggestNotFound means no known code token was located.
	SuggestNotFound SuggestionStatus = "not_found"
)

// Suggestion is the result of matching a file name against the
// weekday-keyed code table.
type Suggestion struct {
	Status SuggestionStatus `json:"status"`
	// Code is the detected short code ("" when not found).
	Code string `json:"code,omitempty"`
	// Game is the resolved game definition when resolvable.
	Game *GameDef `json:"game,omitempty"`
	// Weekday is the weekday derived from the business date.
	Weekday string `json:"weekday"`
	// CodeWeekdays lists the weekdays the code is configured under.
	CodeWeekdays []string `json:"code_weekdays,omitempty"`
}
