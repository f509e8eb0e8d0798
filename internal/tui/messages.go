package tui

type profileLoadedMsg struct {
	err error
}

type ssnRevealedMsg struct {
	err error
}

type licenseRevealedMsg struct {
	err error
}

type passportRevealedMsg struct {
	err error
}

type saveDoneMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
