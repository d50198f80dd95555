package tui

// ErrMsg reports an asynchronous failure.
type ErrMsg struct {
	Err error
}

// StatusMsg sets a transient footer message.
type StatusMsg struct {
	Msg string
}

// ClearStatusMsg clears an expired footer message.
type ClearStatusMsg struct{}

// ExportedMsg reports a completed calendar export.
type ExportedMsg struct {
	Path  string
	Count int
}
