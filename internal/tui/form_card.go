package tui

import (
	"strings"

	"github.com/cardfolio/cardfolio/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldName = iota
	fieldTitle
	fieldDescription
	fieldEmail
	fieldPhone
	fieldAccentColor
	fieldTheme
	fieldLinkTitle
	fieldLinkURL
	fieldImagePath
	fieldCount
)

// formCardModel is the draft editor form. Every keystroke flows back into
// the draft service, which handles debounced local persistence; the form
// itself never talks to storage.
type formCardModel struct {
	inputs []textinput.Model
	focus  int

	// base carries the draft fields the form does not edit (card ID,
	// images, feature sections, share URL).
	base models.CardDraft
}

func newFormCardModel(draft models.CardDraft) formCardModel {
	placeholders := [fieldCount]string{
		"name", "title", "description", "email", "phone",
		"#rrggbb", "theme", "link title", "https://...",
		"path/to/photo.jpg",
	}

	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = placeholders[i]
		inputs[i].Width = 40
	}
	inputs[fieldName].CharLimit = 100
	inputs[fieldTitle].CharLimit = 100
	inputs[fieldDescription].CharLimit = 500
	inputs[fieldEmail].CharLimit = 254
	inputs[fieldPhone].CharLimit = 50
	inputs[fieldName].Focus()

	m := formCardModel{inputs: inputs, base: draft}
	m.inputs[fieldName].SetValue(draft.Name)
	m.inputs[fieldTitle].SetValue(draft.Title)
	m.inputs[fieldDescription].SetValue(draft.Description)
	m.inputs[fieldEmail].SetValue(draft.Email)
	m.inputs[fieldPhone].SetValue(draft.Phone)
	m.inputs[fieldAccentColor].SetValue(draft.AccentColor)
	m.inputs[fieldTheme].SetValue(draft.Theme)
	if len(draft.Links) > 0 {
		m.inputs[fieldLinkTitle].SetValue(draft.Links[0].Title)
		m.inputs[fieldLinkURL].SetValue(draft.Links[0].URL)
	}

	return m
}

// toDraft folds the form values back into the draft, keeping everything the
// form does not edit.
func (m formCardModel) toDraft() models.CardDraft {
	draft := m.base
	draft.Name = m.inputs[fieldName].Value()
	draft.Title = m.inputs[fieldTitle].Value()
	draft.Description = m.inputs[fieldDescription].Value()
	draft.Email = m.inputs[fieldEmail].Value()
	draft.Phone = m.inputs[fieldPhone].Value()
	draft.AccentColor = m.inputs[fieldAccentColor].Value()
	draft.Theme = m.inputs[fieldTheme].Value()

	linkTitle := m.inputs[fieldLinkTitle].Value()
	linkURL := m.inputs[fieldLinkURL].Value()
	if linkURL != "" {
		link := models.Link{Title: linkTitle, URL: linkURL, Type: models.LinkTypeWebsite}
		if len(draft.Links) > 0 {
			link.Type = draft.Links[0].Type
			link.Color = draft.Links[0].Color
			draft.Links[0] = link
		} else {
			draft.Links = []models.Link{link}
		}
	} else if len(draft.Links) > 0 {
		draft.Links = draft.Links[1:]
	}

	return draft
}

// imagePath returns the photo file path typed into the form.
func (m formCardModel) imagePath() string {
	return strings.TrimSpace(m.inputs[fieldImagePath].Value())
}

// setProfileImage stores the prepared inline image on the draft base and
// clears the path input.
func (m *formCardModel) setProfileImage(dataURI string) {
	m.base.ProfileImage = dataURI
	m.inputs[fieldImagePath].SetValue("")
}

func (m formCardModel) updateFocused(msg tea.Msg) (formCardModel, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *formCardModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *formCardModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m formCardModel) View() string {
	title := "New card"
	if m.base.CardID != "" {
		title = "Editing: " + m.inputs[fieldName].Value()
	}

	var b strings.Builder
	b.WriteString(title + "\n\n")
	b.WriteString("Name        [" + m.inputs[fieldName].View() + "]\n")
	b.WriteString("Title       [" + m.inputs[fieldTitle].View() + "]\n")
	b.WriteString("Description [" + m.inputs[fieldDescription].View() + "]\n")
	b.WriteString("Email       [" + m.inputs[fieldEmail].View() + "]\n")
	b.WriteString("Phone       [" + m.inputs[fieldPhone].View() + "]\n")
	b.WriteString("Accent      [" + m.inputs[fieldAccentColor].View() + "]\n")
	b.WriteString("Theme       [" + m.inputs[fieldTheme].View() + "]\n")
	b.WriteString("Link title  [" + m.inputs[fieldLinkTitle].View() + "]\n")
	b.WriteString("Link URL    [" + m.inputs[fieldLinkURL].View() + "]\n")
	b.WriteString("Photo file  [" + m.inputs[fieldImagePath].View() + "] (ctrl+p to attach)\n")

	if m.base.ProfileImage != "" {
		b.WriteString("\nProfile photo attached\n")
	}
	if m.base.ShareURL != "" {
		b.WriteString("\nShare URL: " + accentStyle.Render(m.base.ShareURL) + "\n")
	}

	return b.String()
}
