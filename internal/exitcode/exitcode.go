package exitcode

const (
	Success         = 0
	UsageError      = 1
	ValidationError = 2
	ReadError       = 3
	WriteError      = 4
	ClipboardError  = 5
	ServeError      = 6
)
