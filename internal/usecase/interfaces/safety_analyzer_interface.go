package interfaces

import "context"

// ISafetyAnalyzer extracts safety concerns from a free-text service
// description. It may fail transiently; callers treat a failure as "no
// concerns identified" plus a surfaced warning, never as a fatal error.
type ISafetyAnalyzer interface {
	Analyze(ctx context.Context, description string) ([]string, error)
}
