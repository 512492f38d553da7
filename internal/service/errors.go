package service

import "errors"

// Every failure the engine reports belongs to one of these classes. The
// first three are local to one event and leave the user able to retry; the
// last three reject the event without touching the session.
var (
	ErrExtractionFailed  = errors.New("could not extract keywords from text")
	ErrTranslationFailed = errors.New("could not translate word")
	ErrPersistenceFailed = errors.New("could not persist quiz data")

	ErrOutOfOrderEvent      = errors.New("event not valid for current stage")
	ErrNotStarted           = errors.New("quiz session not started")
	ErrConcurrentTransition = errors.New("another event for this user is being processed")
)
