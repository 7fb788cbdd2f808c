package stacktrace

// Mode selects how a builder obtains the stack trace of a new error.
type Mode int

const (
	// TraceCollect always records the current stack.
	TraceCollect Mode = iota + 1
	// TraceBorrowOrCollect reuses the cause's stack, recording a fresh one when the cause has none.
	TraceBorrowOrCollect
	// TraceBorrowOnly reuses the cause's stack and never records.
	TraceBorrowOnly
	// TraceEnhance records the current stack and chains the cause's stack below it.
	TraceEnhance
	// TraceOmit records nothing.
	TraceOmit
)

func (m Mode) String() string {
	switch m {
	case TraceCollect:
		return "collect"
	case TraceBorrowOrCollect:
		return "borrow_or_collect"
	case TraceBorrowOnly:
		return "borrow_only"
	case TraceEnhance:
		return "enhance"
	case TraceOmit:
		return "omit"
	default:
		return "unknown"
	}
}
