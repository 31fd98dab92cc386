package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/alexanderramin/semainier/internal/api"
	"github.com/alexanderramin/semainier/internal/cli/formatter"
	"github.com/alexanderramin/semainier/internal/domain"
)

// shellMode tracks which interaction mode the shell is in.
type shellMode int

const (
	modeList    shellMode = iota // Activity list with key commands.
	modeForm                     // huh form is active.
	modeConfirm                  // delete confirmation prompt is shown.
)

// activitiesLoadedMsg carries the result of a list reload.
type activitiesLoadedMsg struct {
	activities []domain.Activity
	err        error
}

// submitDoneMsg carries the result of a create or update request.
type submitDoneMsg struct {
	name string
	err  error
}

// deleteDoneMsg carries the result of a delete request.
type deleteDoneMsg struct {
	name string
	err  error
}

// shellModel is the bubbletea Model for the interactive activity shell.
// Blocking stdin reads are off limits while bubbletea owns the terminal, so
// delete confirmation is a mode of the model itself, not a Confirmer.
type shellModel struct {
	client  activityAPI
	notify  Notifier
	copyURL func(string) error

	mode   shellMode
	form   *huh.Form
	fields *activityFields
	editID string // empty means the form creates, otherwise it edits this id

	// pendingDelete is the activity awaiting confirmation in modeConfirm.
	pendingDelete *domain.Activity

	// activities is the structured result of the last successful load.
	// Edit repopulates the form from here, keyed by id.
	activities []domain.Activity
	loadErr    error
	cursor     int

	status   string
	width    int
	quitting bool
}

// newShellModel creates a new bubbletea shell model.
func newShellModel(client activityAPI, notify Notifier, copyURL func(string) error) shellModel {
	return shellModel{
		client:  client,
		notify:  notify,
		copyURL: copyURL,
	}
}

func (m shellModel) Init() tea.Cmd {
	return m.loadActivities()
}

func (m shellModel) loadActivities() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		activities, err := client.List(context.Background())
		return activitiesLoadedMsg{activities: activities, err: err}
	}
}

func (m shellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		if m.form != nil {
			m.form = m.form.WithWidth(msg.Width)
		}
		return m, nil

	case activitiesLoadedMsg:
		m.loadErr = msg.err
		if msg.err != nil {
			m.activities = nil
		} else {
			m.activities = msg.activities
		}
		if m.cursor >= len(m.activities) {
			m.cursor = len(m.activities) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case submitDoneMsg:
		if msg.err != nil {
			// Keep the form populated so the user can correct and resubmit.
			m.notifyUser(apiMessage(msg.err))
			m.mode = modeForm
			m.form = newActivityForm(m.fields, m.editID != "")
			return m, m.form.Init()
		}
		verb := "créée"
		if m.editID != "" {
			verb = "modifiée"
		}
		m.status = formatter.StyleGreen.Render(fmt.Sprintf("✔ Activité %s : %s", verb, msg.name))
		m.closeForm()
		return m, m.loadActivities()

	case deleteDoneMsg:
		if msg.err != nil {
			m.notifyUser(apiMessage(msg.err))
			return m, nil
		}
		m.status = formatter.StyleGreen.Render(fmt.Sprintf("✔ Activité supprimée : %s", msg.name))
		return m, m.loadActivities()

	case tea.KeyMsg:
		switch m.mode {
		case modeForm:
			return m.updateForm(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		}
		return m.updateList(msg)
	}

	if m.mode == modeForm && m.form != nil {
		return m.updateForm(msg)
	}

	return m, nil
}

// ── list mode ────────────────────────────────────────────────────────────────

func (m shellModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch commandForKey(msg) {
	case cmdQuit:
		m.quitting = true
		return m, tea.Quit

	case cmdReload:
		m.status = ""
		return m, m.loadActivities()

	case cmdCursorUp:
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case cmdCursorDown:
		if m.cursor < len(m.activities)-1 {
			m.cursor++
		}
		return m, nil

	case cmdNewActivity:
		m.openForm(&activityFields{}, "")
		return m, m.form.Init()

	case cmdEditSelected:
		selected := m.selectedActivity()
		if selected == nil {
			return m, nil
		}
		m.openForm(&activityFields{
			name:     selected.Name,
			minutes:  strconv.Itoa(selected.WeeklyMinutes),
			category: selected.Category,
		}, selected.ID)
		return m, m.form.Init()

	case cmdDeleteSelected:
		selected := m.selectedActivity()
		if selected == nil {
			return m, nil
		}
		pending := *selected
		m.mode = modeConfirm
		m.pendingDelete = &pending
		m.status = ""
		return m, nil

	case cmdCopyLink:
		url := m.client.FeedURL()
		if err := m.copyURL(url); err != nil {
			m.notifyUser(fmt.Sprintf("Copie impossible : %v", err))
			return m, nil
		}
		m.status = "Lien du calendrier copié."
		return m, nil
	}

	return m, nil
}

// updateConfirm handles the delete confirmation prompt. Declining, or any
// explicit cancel key, returns to the list without issuing a request.
func (m shellModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, confirmKeys.Accept):
		pending := m.pendingDelete
		m.pendingDelete = nil
		m.mode = modeList
		if pending == nil {
			return m, nil
		}
		return m, m.deleteActivity(*pending)

	case key.Matches(msg, confirmKeys.Decline):
		m.pendingDelete = nil
		m.mode = modeList
		m.status = "Annulé."
		return m, nil
	}

	return m, nil
}

func (m *shellModel) selectedActivity() *domain.Activity {
	if len(m.activities) == 0 || m.cursor < 0 || m.cursor >= len(m.activities) {
		return nil
	}
	return &m.activities[m.cursor]
}

func (m shellModel) deleteActivity(a domain.Activity) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		err := client.Delete(context.Background(), a.ID)
		return deleteDoneMsg{name: a.Name, err: err}
	}
}

// ── form mode ────────────────────────────────────────────────────────────────

func (m *shellModel) openForm(fields *activityFields, editID string) {
	m.mode = modeForm
	m.fields = fields
	m.editID = editID
	m.form = newActivityForm(fields, editID != "")
	if m.width > 0 {
		m.form = m.form.WithWidth(m.width)
	}
}

func (m *shellModel) closeForm() {
	m.mode = modeList
	m.form = nil
	m.fields = nil
	m.editID = ""
}

func (m shellModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.closeForm()
		m.status = "Annulé."
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		if !m.fields.submit {
			m.closeForm()
			m.status = "Annulé."
			return m, cmd
		}
		return m, tea.Batch(cmd, m.submitActivity())
	}

	return m, cmd
}

// submitActivity sends the form to the server, creating or updating
// depending on the id stored when the form was opened.
func (m shellModel) submitActivity() tea.Cmd {
	client := m.client
	fields := *m.fields
	editID := m.editID

	return func() tea.Msg {
		minutes, _ := strconv.Atoi(strings.TrimSpace(fields.minutes))
		activity := domain.Activity{
			ID:            editID,
			Name:          fields.name,
			WeeklyMinutes: minutes,
			Category:      fields.category,
		}

		var err error
		if editID == "" {
			_, err = client.Create(context.Background(), activity)
		} else {
			_, err = client.Update(context.Background(), activity)
		}
		return submitDoneMsg{name: fields.name, err: err}
	}
}

// ── helpers ──────────────────────────────────────────────────────────────────

func (m *shellModel) notifyUser(message string) {
	m.status = message
	if m.notify != nil {
		m.notify.Notify(message)
	}
}

// apiMessage turns a client error into a user-facing message, preferring the
// server-supplied one.
func apiMessage(err error) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if errors.Is(err, api.ErrServerUnavailable) {
		return "Serveur indisponible. Lancez `semainier serve`."
	}
	return err.Error()
}

// ── view ─────────────────────────────────────────────────────────────────────

func (m shellModel) View() string {
	if m.quitting {
		return formatter.Dim("Au revoir.") + "\n"
	}

	if m.mode == modeForm && m.form != nil {
		title := "Nouvelle activité"
		if m.editID != "" {
			title = "Modifier l'activité"
		}
		return formatter.Header(title) + "\n\n" + m.form.View()
	}

	var b strings.Builder
	b.WriteString(formatter.Header("Semainier"))
	b.WriteString("\n\n")
	b.WriteString(m.renderList())
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	if m.mode == modeConfirm && m.pendingDelete != nil {
		b.WriteString("\n" + formatter.Bold(fmt.Sprintf("Supprimer %q ?", m.pendingDelete.Name)) +
			" " + formatter.Dim("(o/n)") + "\n")
		return b.String()
	}

	b.WriteString("\n" + formatter.Dim("a: ajouter  e: modifier  d: supprimer  c: copier le lien  r: recharger  q: quitter") + "\n")
	return b.String()
}

// renderList renders one row per activity; an empty store renders exactly
// one placeholder row, and a failed load renders exactly one error row.
func (m shellModel) renderList() string {
	if m.loadErr != nil {
		return formatter.StyleRed.Render(fmt.Sprintf("Erreur de chargement : %s", apiMessage(m.loadErr)))
	}

	if len(m.activities) == 0 {
		return formatter.Dim("Aucune activité — appuyez sur 'a' pour en ajouter une.")
	}

	var b strings.Builder
	for i, a := range m.activities {
		marker := "  "
		if i == m.cursor {
			marker = formatter.StyleHeader.Render("❯") + " "
		}
		line := fmt.Sprintf("%s (%s) — %s",
			formatter.Bold(a.Name),
			formatter.WeeklyMinutes(a.WeeklyMinutes),
			formatter.CategoryBadge(a.Category))
		b.WriteString(marker + line)
		if i < len(m.activities)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
