package runner

// FileOutcome records the result of converting a single file.
type FileOutcome struct {
	// Path is the input file path that was processed.
	Path string

	// OutputPath is where the converted markup was written.
	// Empty if the file encountered an error before writing.
	OutputPath string

	// Warnings counts conversion warnings for this file, such as anchors
	// without an href attribute.
	Warnings int

	// BytesWritten is the size of the written markup.
	BytesWritten int64

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesConverted is the number of files successfully converted and written.
	FilesConverted int

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int

	// FilesWithWarnings is the number of files with at least one warning.
	FilesWithWarnings int

	// WarningsTotal is the total number of warnings across all files.
	WarningsTotal int

	// BytesWritten is the total markup size written across all files.
	BytesWritten int64
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file.
	// Files are ordered deterministically (by path).
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether any file failed to convert.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// HasWarnings reports whether any conversion warnings occurred.
func (r *Result) HasWarnings() bool {
	if r == nil {
		return false
	}
	return r.Stats.WarningsTotal > 0
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesConverted++
	r.Stats.BytesWritten += outcome.BytesWritten

	if outcome.Warnings > 0 {
		r.Stats.FilesWithWarnings++
		r.Stats.WarningsTotal += outcome.Warnings
	}
}
