// Package transcript records the messages produced during a boardroom
// session.
//
// A Log is the in-memory chronological record the director appends to once
// per turn. A Store optionally persists the same messages as JSONL (one
// JSON object per line) in an append-only file under the session directory,
// so a finished session can be replayed or inspected after the process
// exits. The scheduler core itself never touches either; persistence is an
// opt-in concern of the calling loop.
package transcript
