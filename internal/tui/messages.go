package tui

import "github.com/cardfolio/cardfolio/models"

type authDoneMsg struct {
	user models.User
	err  error
}

type collectionLoadedMsg struct {
	items []models.CardSummary
	err   error
}

type draftLoadedMsg struct {
	draft models.CardDraft
	err   error
}

type draftSavedMsg struct {
	card models.Card
	err  error
}

type deleteDoneMsg struct {
	err error
}

type imageAttachedMsg struct {
	dataURI string
	err     error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
