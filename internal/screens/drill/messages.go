package drill

import "github.com/abhisek/mathdrill/internal/problemgen"

// questionReadyMsg is sent when question generation finishes. OK is false
// when no question satisfies the session constraints.
type questionReadyMsg struct {
	Generated problemgen.Generated
	OK        bool
	Err       error
}

// drillEndMsg is sent to leave the drill.
type drillEndMsg struct{}
