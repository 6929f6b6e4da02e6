package session

import (
	"slices"

	"github.com/vovakirdan/nagapatha/internal/advisor"
	"github.com/vovakirdan/nagapatha/internal/config"
	"github.com/vovakirdan/nagapatha/internal/engine"
)

// NoticeKind classifies a Notice.
type NoticeKind int

const (
	NoticeScoreSaved NoticeKind = iota
	NoticeScoreFailed
	NoticeScoreSkipped
	NoticeSessionFailed
	NoticeAdviceFailed
)

func (k NoticeKind) String() string {
	switch k {
	case NoticeScoreSaved:
		return "score saved"
	case NoticeScoreFailed:
		return "score not saved"
	case NoticeScoreSkipped:
		return "score skipped"
	case NoticeSessionFailed:
		return "session not recorded"
	case NoticeAdviceFailed:
		return "advice unavailable"
	default:
		return "notice"
	}
}

// Notice reports the outcome of work done outside the game loop.
type Notice struct {
	Kind    NoticeKind
	Message string
	Err     error
}

// Failed reports whether the notice describes an error.
func (n Notice) Failed() bool {
	return n.Err != nil
}

// View is what a front end renders: the engine snapshot plus the state the
// controller keeps around it.
type View struct {
	engine.Snapshot

	Seq       uint64 // increases with every published view
	GameID    string
	Player    string
	Tier      config.Tier
	TierName  string
	HighScore int
	Advice    *advisor.Response // pending recommendation, nil if none
	Notices   []Notice          // cleared when a game starts
}

func (v View) clone() View {
	v.Snake = slices.Clone(v.Snake)
	v.Notices = slices.Clone(v.Notices)
	if v.Advice != nil {
		a := *v.Advice
		v.Advice = &a
	}
	return v
}

// HasNotice reports whether a notice of kind k is present.
func (v View) HasNotice(k NoticeKind) bool {
	return slices.ContainsFunc(v.Notices, func(n Notice) bool { return n.Kind == k })
}
