package clipboard

import (
	"fmt"

	sysclip "github.com/atotto/clipboard"
)

// FailureMessage is shown to the user when the note could not be copied.
const FailureMessage = "copy failed: select the note and copy it manually"

// Writer is the host clipboard capability.
type Writer interface {
	Write(text string) error
}

// System writes to the host clipboard.
type System struct{}

// Write implements Writer.
func (System) Write(text string) error {
	return sysclip.WriteAll(text)
}

// Copy writes text through w once. Failures are returned wrapped and are
// never retried.
func Copy(w Writer, text string) error {
	if err := w.Write(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}
