package controller

// Mode is the coarse screen the controller is showing. Exactly one is
// active at a time; the login prompt additionally remembers the mode it
// stacked over so it can return there.
type Mode int

const (
	ModeLoading Mode = iota
	ModeBrowsing
	ModeDetail
	ModeLogin
	ModeForm
	ModeConfirmDelete
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeLoading:
		return "loading"
	case ModeBrowsing:
		return "browsing"
	case ModeDetail:
		return "detail"
	case ModeLogin:
		return "login"
	case ModeForm:
		return "form"
	case ModeConfirmDelete:
		return "confirm_delete"
	default:
		return "unknown"
	}
}

// ViewState is the fully resolved view: Mode refined by the collection
// contents and in-flight submissions.
type ViewState int

const (
	StateLoading ViewState = iota
	StateBrowsing
	StateEmptyCollection
	StateDetail
	StateLoginPrompt
	StateEditing
	StateSubmitting
	StateConfirmingDelete
)

// String returns a human-readable view state name.
func (s ViewState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateBrowsing:
		return "browsing"
	case StateEmptyCollection:
		return "empty_collection"
	case StateDetail:
		return "detail"
	case StateLoginPrompt:
		return "login_prompt"
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	case StateConfirmingDelete:
		return "confirming_delete"
	default:
		return "unknown"
	}
}
