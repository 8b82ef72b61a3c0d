package router

import "strings"

// Match names the action a request target maps to.
type Match int

const (
	MatchNotFound Match = iota
	MatchRoot
	MatchEcho
	MatchFiles
	MatchUserAgent
)

const (
	echoPrefix      = "/echo/"
	filesPrefix     = "/files/"
	userAgentMarker = "/user-agent"
)

func (m Match) String() string {
	switch m {
	case MatchRoot:
		return "root"
	case MatchEcho:
		return "echo"
	case MatchFiles:
		return "files"
	case MatchUserAgent:
		return "user-agent"
	default:
		return "not-found"
	}
}

// Classify maps a request target to a Match, first match wins. rest is the
// part of the target after the echo or files prefix and empty otherwise.
func Classify(target string) (m Match, rest string) {
	switch {
	case target == "/":
		return MatchRoot, ""
	case strings.HasPrefix(target, echoPrefix):
		return MatchEcho, strings.TrimPrefix(target, echoPrefix)
	case strings.HasPrefix(target, filesPrefix):
		return MatchFiles, strings.TrimPrefix(target, filesPrefix)
	case strings.Contains(target, userAgentMarker):
		return MatchUserAgent, ""
	default:
		return MatchNotFound, ""
	}
}
