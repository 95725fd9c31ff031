package transcript

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompt precedes every input line in an export.
const Prompt = "$ "

// ErrCopyFailed is matched by every error returned from Copy.
var ErrCopyFailed = errors.New("transcript: copy failed")

// Sink receives exported text, typically a clipboard.
type Sink interface {
	Write(text string) error
}

// CopyError reports a sink that rejected an export.
type CopyError struct {
	Title string
	Err   error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("transcript: copy %q: %v", e.Title, e.Err)
}

func (e *CopyError) Unwrap() []error {
	return []error{ErrCopyFailed, e.Err}
}

// Export renders s as prompt-prefixed input lines, each followed by its
// output, with one blank line between commands and none after the last.
func Export(s Session) string {
	var b strings.Builder
	for i, cmd := range s.Commands {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(Prompt)
		b.WriteString(cmd.Input)
		b.WriteByte('\n')
		b.WriteString(cmd.Output)
	}
	return b.String()
}

// ExportAll exports each session in order, separated by one blank line.
func ExportAll(sessions ...Session) string {
	parts := make([]string, len(sessions))
	for i, s := range sessions {
		parts[i] = Export(s)
	}
	return strings.Join(parts, "\n\n")
}

// Copy exports s and writes it to sink. A sink failure is returned as a
// *CopyError and has no other effect.
func Copy(sink Sink, s Session) error {
	if err := sink.Write(Export(s)); err != nil {
		return &CopyError{Title: s.Title, Err: err}
	}
	return nil
}

// CopyAll writes ExportAll(sessions...) to sink. title names the selection
// in a returned *CopyError.
func CopyAll(sink Sink, title string, sessions ...Session) error {
	if err := sink.Write(ExportAll(sessions...)); err != nil {
		return &CopyError{Title: title, Err: err}
	}
	return nil
}

type exportData struct {
	Title    string    `json:"title"`
	Commands []Command `json:"commands"`
	Steps    int       `json:"steps"`
	Text     string    `json:"text"`
}

// ExportJSON writes s and its text export as an indented JSON document.
func ExportJSON(w io.Writer, s Session) error {
	data := exportData{
		Title:    s.Title,
		Commands: s.CommandList(),
		Steps:    len(s.Commands),
		Text:     Export(s),
	}
	if data.Commands == nil {
		data.Commands = []Command{}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(data)
}
