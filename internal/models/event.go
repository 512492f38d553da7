package models

// Event is one inbound action against a user's session. The set of events
// each stage accepts is fixed by the transition table in the service layer;
// anything else is rejected without touching the session.
type Event interface {
	isEvent()
}

type SelectLanguage struct {
	Language string
}

type StartQuiz struct{}

type ChangeLanguage struct{}

type ViewStats struct{}

type SubmitText struct {
	Text string
}

type SubmitAnswer struct {
	Text string
}

type ReturnToMenu struct{}

type RepeatQuiz struct{}

type NewText struct{}

func (SelectLanguage) isEvent() {}
func (StartQuiz) isEvent()      {}
func (ChangeLanguage) isEvent() {}
func (ViewStats) isEvent()      {}
func (SubmitText) isEvent()     {}
func (SubmitAnswer) isEvent()   {}
func (ReturnToMenu) isEvent()   {}
func (RepeatQuiz) isEvent()     {}
func (NewText) isEvent()        {}
