package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/cardfolio/cardfolio/internal/service"
	"github.com/cardfolio/cardfolio/models"
	tea "github.com/charmbracelet/bubbletea"
)

type mainScreen int

const (
	screenCollection mainScreen = iota
	screenEditor
	screenConfirmDelete
)

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices

	screen  mainScreen
	items   []models.CardSummary
	idx     int
	loading bool
	status  string
	errMsg  string

	form   formCardModel
	saving bool

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices) mainLoopModel {
	return mainLoopModel{
		ctx:      ctx,
		services: services,
		loading:  true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdRefresh()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case collectionLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, m.cmdListCached()
		}
		m.errMsg = ""
		m.items = msg.items
		m.clampIdx()
		return m, nil

	case draftLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.screen = screenEditor
		m.form = newFormCardModel(msg.draft)
		return m, nil

	case draftSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "saved"
		if draft, ok := m.services.DraftService.Current(); ok {
			m.form = newFormCardModel(draft)
		}
		return m, tea.Batch(m.cmdClearStatus(), m.cmdRefresh())

	case deleteDoneMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
		} else {
			m.status = "card deleted"
		}
		m.screen = screenCollection
		return m, tea.Batch(m.cmdClearStatus(), m.cmdRefresh())

	case imageAttachedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.status = "photo attached"
		m.form.setProfileImage(msg.dataURI)
		m.services.DraftService.Update(m.form.toDraft())
		return m, m.cmdClearStatus()

	case copiedMsg:
		m.status = "share URL copied"
		return m, m.cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m mainLoopModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenEditor:
		return m.handleEditorKey(msg)
	case screenConfirmDelete:
		return m.handleConfirmKey(msg)
	default:
		return m.handleCollectionKey(msg)
	}
}

func (m mainLoopModel) handleCollectionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "l":
		m.logout = true
		return m, tea.Quit
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "r":
		m.loading = true
		return m, m.cmdRefresh()
	case "n":
		m.services.DraftService.StartNew()
		if draft, ok := m.services.DraftService.Current(); ok {
			m.screen = screenEditor
			m.form = newFormCardModel(draft)
		}
	case "enter", "e":
		if item, ok := m.current(); ok {
			return m, m.cmdLoadDraft(item.CardID)
		}
	case "f":
		if item, ok := m.current(); ok {
			return m, m.cmdToggleFavorite(item)
		}
	case "d":
		if _, ok := m.current(); ok {
			m.screen = screenConfirmDelete
		}
	}

	return m, nil
}

func (m mainLoopModel) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.screen = screenCollection
		return m, m.cmdRefresh()
	case "tab", "down":
		m.form.focusNext()
		return m, nil
	case "shift+tab", "up":
		m.form.focusPrev()
		return m, nil
	case "ctrl+s":
		if m.saving {
			return m, nil
		}
		m.saving = true
		return m, m.cmdSaveDraft()
	case "ctrl+p":
		if path := m.form.imagePath(); path != "" {
			return m, m.cmdAttachImage(path)
		}
		return m, nil
	case "ctrl+y":
		if m.form.base.ShareURL != "" {
			return m, m.cmdCopyShareURL(m.form.base.CardID, m.form.base.ShareURL)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.updateFocused(msg)

	// Push every edit through the draft service so the observable store
	// and the debounced local persistence see it.
	m.services.DraftService.Update(m.form.toDraft())

	return m, cmd
}

func (m mainLoopModel) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		if item, ok := m.current(); ok {
			return m, m.cmdDelete(item.CardID)
		}
		m.screen = screenCollection
	case "n", "esc":
		m.screen = screenCollection
	}
	return m, nil
}

func (m mainLoopModel) View() string {
	switch m.screen {
	case screenEditor:
		help := "ctrl+s: save │ ctrl+y: copy share URL │ ctrl+p: attach photo │ tab: next field │ esc: back"
		body := m.form.View()
		if m.saving {
			body += "\nSaving...\n"
		}
		return m.withStatus("CARDFOLIO — EDITOR", body, help)

	case screenConfirmDelete:
		name := ""
		if item, ok := m.current(); ok {
			name = item.Name
		}
		return renderPage("DELETE CARD", fmt.Sprintf("Delete %q? The public link stops working.", name), "y: delete │ n: cancel")

	default:
		return m.withStatus("CARDFOLIO — MY CARDS", m.collectionView(),
			"n: new │ enter: edit │ f: favorite │ d: delete │ r: refresh │ l: logout │ q: quit")
	}
}

func (m mainLoopModel) collectionView() string {
	if m.loading {
		return "Loading..."
	}
	if len(m.items) == 0 {
		return "No cards yet. Press n to create one."
	}

	var b strings.Builder
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		star := " "
		if item.Favorite {
			star = "*"
		}
		b.WriteString(fmt.Sprintf("%s%s %-30s  views %-5d shares %d\n",
			cursor, star, item.Name, item.Views, item.Shares))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m mainLoopModel) withStatus(title, body, help string) string {
	if m.status != "" {
		body += "\n\n" + m.status
	}
	if m.errMsg != "" {
		body += "\n\n" + errorStyle.Render("Error: "+m.errMsg)
	}
	return renderPage(title, body, help)
}

func (m mainLoopModel) current() (models.CardSummary, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.CardSummary{}, false
	}
	return m.items[m.idx], true
}

func (m *mainLoopModel) clampIdx() {
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m mainLoopModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	collection := m.services.CollectionService
	return func() tea.Msg {
		items, err := collection.Refresh(ctx)
		return collectionLoadedMsg{items: items, err: err}
	}
}

// cmdListCached falls back to the local cache when the server refresh
// failed, so the collection stays browsable offline.
func (m mainLoopModel) cmdListCached() tea.Cmd {
	ctx := m.ctx
	collection := m.services.CollectionService
	return func() tea.Msg {
		items, err := collection.List(ctx)
		if err != nil {
			return clearStatusMsg{}
		}
		return collectionLoadedMsg{items: items}
	}
}

func (m mainLoopModel) cmdLoadDraft(cardID string) tea.Cmd {
	ctx := m.ctx
	drafts := m.services.DraftService
	return func() tea.Msg {
		draft, err := drafts.LoadForEdit(ctx, cardID)
		return draftLoadedMsg{draft: draft, err: err}
	}
}

func (m mainLoopModel) cmdSaveDraft() tea.Cmd {
	ctx := m.ctx
	drafts := m.services.DraftService
	return func() tea.Msg {
		card, err := drafts.Save(ctx)
		return draftSavedMsg{card: card, err: err}
	}
}

func (m mainLoopModel) cmdDelete(cardID string) tea.Cmd {
	ctx := m.ctx
	collection := m.services.CollectionService
	return func() tea.Msg {
		return deleteDoneMsg{err: collection.Delete(ctx, cardID)}
	}
}

func (m mainLoopModel) cmdToggleFavorite(item models.CardSummary) tea.Cmd {
	ctx := m.ctx
	collection := m.services.CollectionService
	return func() tea.Msg {
		if err := collection.SetFavorite(ctx, item.CardID, !item.Favorite); err != nil {
			return collectionLoadedMsg{err: err}
		}
		items, err := collection.List(ctx)
		return collectionLoadedMsg{items: items, err: err}
	}
}

func (m mainLoopModel) cmdAttachImage(path string) tea.Cmd {
	images := m.services.ImageService
	return func() tea.Msg {
		raw, err := os.ReadFile(path)
		if err != nil {
			return imageAttachedMsg{err: fmt.Errorf("read %s: %w", path, err)}
		}
		dataURI, err := images.Prepare(raw)
		if err != nil {
			return imageAttachedMsg{err: err}
		}
		return imageAttachedMsg{dataURI: dataURI}
	}
}

// cmdCopyShareURL copies the public link and reports the share to the
// server so the card's share counter reflects it. The copy is what the
// user asked for; the counter bump is best effort.
func (m mainLoopModel) cmdCopyShareURL(cardID, shareURL string) tea.Cmd {
	ctx := m.ctx
	collection := m.services.CollectionService
	return func() tea.Msg {
		if err := clipboard.WriteAll(shareURL); err != nil {
			return clearStatusMsg{}
		}
		if cardID != "" {
			_ = collection.RecordShare(ctx, cardID)
		}
		return copiedMsg{}
	}
}

func (m mainLoopModel) cmdClearStatus() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
