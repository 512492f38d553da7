package models

type Stage int

const (
	StageAwaitingLanguage Stage = iota
	StageMainMenu
	StageAwaitingText
	StageInQuiz
	StageFinished
)

func (s Stage) String() string {
	switch s {
	case StageAwaitingLanguage:
		return "awaiting_language"
	case StageMainMenu:
		return "main_menu"
	case StageAwaitingText:
		return "awaiting_text"
	case StageInQuiz:
		return "in_quiz"
	case StageFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Session is the per-user quiz progress. It lives in memory only and is
// owned by the quiz engine while an event for that user is being handled.
//
// Invariants: 0 <= Cursor <= len(Words); 0 <= AttemptsLeft <= max attempts;
// Words is empty outside StageInQuiz/StageFinished.
type Session struct {
	Stage        Stage
	Language     string
	Words        []string
	Cursor       int
	AttemptsLeft int
	Reference    string
	Score        int
}

// CurrentWord returns the word under the cursor, or "" when the cursor has
// run past the end.
func (s Session) CurrentWord() string {
	if s.Cursor < 0 || s.Cursor >= len(s.Words) {
		return ""
	}
	return s.Words[s.Cursor]
}
