// Package transcript captures what a vignette writes to its console.
//
// A Recorder is handed to a demo driver in place of standard output. It
// splits the written bytes into lines and numbers them with a sequence that
// starts at 1, so two runs of the same demo produce identical transcripts.
//
// Transcripts serialize to canonical JSON (sorted keys, no HTML escaping,
// NFC-normalized strings). The canonical form is what golden files and the
// CLI's JSON output contain:
//
//	{"demo":"dip","lines":[{"seq":1,"text":"Man, that's some tasty pizza!"}],"run_id":"test-run-dip"}
package transcript
