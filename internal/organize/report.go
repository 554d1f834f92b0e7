package organize

// MoveRecord is one completed (or simulated) file move.
type MoveRecord struct {
	From string
	To   string
}

// SkipRecord is a file left in place, with the reason.
type SkipRecord struct {
	File   string
	Reason string
}

// ErrorRecord is a per-file failure. The batch continues past it.
type ErrorRecord struct {
	File string
	Err  string
}

// Report summarizes one organize batch. It is only written during the call
// that produced it.
type Report struct {
	TotalFiles int
	Moved      []MoveRecord
	Skipped    []SkipRecord
	Errors     []ErrorRecord
	TotalMoved int
}

// ProgressFunc is called before each file is processed, with the 1-based
// position, the batch size and the file's base name.
type ProgressFunc func(current, total int, filename string)
