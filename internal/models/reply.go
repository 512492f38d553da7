package models

type ReplyKind int

const (
	ReplyChooseLanguage ReplyKind = iota
	ReplyMainMenu
	ReplyAwaitText
	ReplyQuizStarted
	ReplyAnswerCorrect
	ReplyAnswerWrong
	ReplyAnswerRevealed
	ReplyStats
)

// Reply tells the transport layer what to present after an event was
// applied. Only the fields relevant to Kind are set.
type Reply struct {
	Kind     ReplyKind
	Stage    Stage
	Language string

	// Extraction result, ReplyQuizStarted only.
	Words    []string
	FewWords bool

	// Current question prompt (quiz started, answer correct/revealed while
	// more words remain).
	Word         string
	Position     int
	Total        int
	AttemptsLeft int

	// Reveal carries the reference answer when the attempt budget ran out.
	Reveal string

	// Quiz run result and lifetime stats.
	Score    int
	Finished bool
	Stats    QuizStats
}
