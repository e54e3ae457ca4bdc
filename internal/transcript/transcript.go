package transcript

import (
	"bytes"
	"io"
	"strings"
)

// Line is one line of demo output.
type Line struct {
	Seq  int64  `json:"seq"`
	Text string `json:"text"`
}

// Transcript is the recorded output of a single demo run.
type Transcript struct {
	Demo  string `json:"demo"`
	RunID string `json:"run_id,omitempty"`
	Lines []Line `json:"lines"`
}

// Texts returns the text of each line in order.
func (t *Transcript) Texts() []string {
	texts := make([]string, len(t.Lines))
	for i, l := range t.Lines {
		texts[i] = l.Text
	}
	return texts
}

// String renders the transcript the way the demo printed it.
func (t *Transcript) String() string {
	var b strings.Builder
	for _, l := range t.Lines {
		b.WriteString(l.Text)
		b.WriteByte('\n')
	}
	return b.String()
}

// Record runs demo against a fresh Recorder and returns its transcript.
func Record(demo, runID string, run func(w io.Writer)) *Transcript {
	rec := NewRecorder()
	run(rec)
	return &Transcript{
		Demo:  demo,
		RunID: runID,
		Lines: rec.Lines(),
	}
}

// Recorder is an io.Writer that collects complete lines.
//
// Text after the last newline is held back until the next write completes
// it, or until Lines is called.
type Recorder struct {
	seq     int64
	pending bytes.Buffer
	lines   []Line
}

// NewRecorder creates an empty recorder. The first recorded line has Seq 1.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Write implements io.Writer. It never fails.
func (r *Recorder) Write(p []byte) (int, error) {
	r.pending.Write(p)
	for {
		data := r.pending.Bytes()
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			break
		}
		r.appendLine(string(data[:i]))
		r.pending.Next(i + 1)
	}
	return len(p), nil
}

// Lines flushes any unterminated text as a final line and returns a copy of
// the recorded lines.
func (r *Recorder) Lines() []Line {
	if r.pending.Len() > 0 {
		r.appendLine(r.pending.String())
		r.pending.Reset()
	}
	out := make([]Line, len(r.lines))
	copy(out, r.lines)
	return out
}

func (r *Recorder) appendLine(text string) {
	r.seq++
	r.lines = append(r.lines, Line{
		Seq:  r.seq,
		Text: strings.TrimSuffix(text, "\r"),
	})
}
