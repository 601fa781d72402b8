package constants

// SourceStatus is the per-source pipeline state.
type SourceStatus string

const (
	SourcePending    SourceStatus = "PENDING"
	SourceNormalized SourceStatus = "NORMALIZED"
	SourceExtracted  SourceStatus = "EXTRACTED"
	SourceParsed     SourceStatus = "PARSED"
	SourceInserted   SourceStatus = "INSERTED" // terminal success
	SourceSkipped    SourceStatus = "SKIPPED"  // terminal failure, reachable from any non-terminal state
)

// Terminal reports whether no further transition is possible.
func (s SourceStatus) Terminal() bool {
	return s == SourceInserted || s == SourceSkipped
}
