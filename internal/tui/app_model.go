// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verdantlabs/wastesentry/internal/adapter"
	"github.com/verdantlabs/wastesentry/models"
)

type screen int

const (
	screenLogin screen = iota
	screenList
	screenDetail
	screenRequest
	screenAudit
	screenAlerts
	screenRoster
)

type appMode int

const (
	modeLogin appMode = iota
	modeMain
)

// appModel is the root Bubble Tea model. It owns the sub-models of every
// screen, routes key and result messages to the active one, and renders the
// error and confirmation overlays on top of whatever screen is current.
type appModel struct {
	ctx           context.Context
	server        adapter.ServerAdapter
	mode          appMode
	currentScreen screen

	login   loginModel
	list    listModel
	detail  detailModel
	request requestModel
	audit   auditModel
	alerts  alertsModel
	roster  rosterModel

	session       models.User
	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingRevoke string

	quitByUser    bool
	logout        bool
	resultSession models.User
}

func newLoginAppModel(ctx context.Context, server adapter.ServerAdapter) appModel {
	return appModel{
		ctx:           ctx,
		server:        server,
		mode:          modeLogin,
		currentScreen: screenLogin,
		login:         newLoginModel(),
	}
}

func newMainAppModel(ctx context.Context, server adapter.ServerAdapter, session models.User) appModel {
	m := newLoginAppModel(ctx, server)
	m.mode = modeMain
	m.session = session
	m.currentScreen = screenList
	m.list = newListModel()
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.mode == modeMain {
		return tea.Batch(m.list.spinner.Tick, m.cmdLoadEvidence())
	}
	return textinput.Blink
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			switch {
			case key.Matches(msg, keys.yes):
				m.showConfirm = false
				if m.pendingRevoke == "" {
					return m, nil
				}
				return m, m.cmdTransition(m.pendingRevoke, "revoked")
			case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
				m.showConfirm = false
				m.pendingRevoke = ""
			}
			return m, nil
		}

	case loginDoneMsg:
		m.login.submitting = false
		if msg.err != nil {
			m.login.errMsg = m.humanizeLoginError(msg.err)
			return m, nil
		}
		m.resultSession = msg.session
		return m, tea.Quit

	case evidenceLoadedMsg:
		m.list.loading = false
		m.list.lastErr = msg.err
		if msg.err == nil {
			m.list.items = msg.items
			if m.list.idx >= len(m.list.items) {
				m.list.idx = len(m.list.items) - 1
			}
			if m.list.idx < 0 {
				m.list.idx = 0
			}
		}
		return m, nil

	case evidenceUpdatedMsg:
		m.request.submitting = false
		if msg.err != nil {
			if m.currentScreen == screenRequest {
				m.request.errMsg = m.humanizeCustodyError(msg.err)
				return m, nil
			}
			m.showErrorf(m.humanizeCustodyError(msg.err))
			return m, nil
		}
		m.detail.item = msg.item
		m.detail.status = transitionStatusText(msg.action)
		m.patchItem(msg.item)
		if m.currentScreen == screenRequest {
			m.currentScreen = screenDetail
		}
		return m, cmdClearStatus()

	case auditLoadedMsg:
		m.audit.loading = false
		m.audit.lastErr = msg.err
		if msg.err == nil {
			m.audit.blocks = msg.blocks
		}
		return m, nil

	case chainValidatedMsg:
		m.audit.lastErr = msg.err
		if msg.err == nil {
			status := msg.status
			m.audit.chain = &status
		}
		return m, nil

	case alertsLoadedMsg:
		m.alerts.loading = false
		m.alerts.lastErr = msg.err
		if msg.err == nil {
			m.alerts.alerts = msg.alerts
		}
		return m, nil

	case rosterLoadedMsg:
		m.roster.loading = false
		m.roster.lastErr = msg.err
		if msg.err == nil {
			m.roster.workers = msg.workers
		}
		return m, nil

	case copiedMsg:
		status := "Copied!"
		if msg.err != nil {
			status = "Clipboard unavailable"
		}
		if m.currentScreen == screenDetail {
			m.detail.status = status
		}
		m.list.status = status
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.detail.status = ""
		m.list.status = ""
		return m, nil

	case spinner.TickMsg:
		if m.list.loading {
			var cmd tea.Cmd
			m.list.spinner, cmd = m.list.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenLogin:
		return m.updateLogin(msg)
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenRequest:
		return m.updateRequest(msg)
	case screenAudit:
		return m.updateAudit(msg)
	case screenAlerts:
		return m.updateAlerts(msg)
	case screenRoster:
		return m.updateRoster(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showError {
		return m.errorOverlay.View()
	}
	if m.showConfirm {
		return m.confirm.View()
	}

	switch m.currentScreen {
	case screenLogin:
		return m.login.View()
	case screenList:
		return m.list.View()
	case screenDetail:
		return m.detail.View()
	case screenRequest:
		return m.request.View()
	case screenAudit:
		return m.audit.View()
	case screenAlerts:
		return m.alerts.View()
	case screenRoster:
		return m.roster.View()
	}
	return ""
}

// ─── per-screen updates ─────────────────────────────────────────────

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		m.quitByUser = true
		return m, tea.Quit
	case "tab", "down":
		m.login.focusNext()
		return m, nil
	case "shift+tab", "up":
		m.login.focusPrev()
		return m, nil
	case "enter":
		if m.login.submitting {
			return m, nil
		}

		login := strings.TrimSpace(m.login.inputs[0].Value())
		pass := m.login.inputs[1].Value()
		if login == "" || pass == "" {
			m.login.errMsg = "Login and password are required"
			return m, nil
		}

		m.login.errMsg = ""
		m.login.submitting = true
		return m, m.cmdLogin(login, pass)
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
		return m, nil
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.items)-1 {
			m.list.idx++
		}
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		item, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.detail = detailModel{item: item, admin: m.session.IsAdmin()}
		m.currentScreen = screenDetail
		return m, nil
	case key.Matches(keyMsg, keys.refresh):
		m.list.loading = true
		return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadEvidence())
	case key.Matches(keyMsg, keys.audit):
		m.audit = auditModel{loading: true}
		m.currentScreen = screenAudit
		return m, m.cmdLoadAudit()
	case key.Matches(keyMsg, keys.alerts):
		m.alerts = alertsModel{loading: true}
		m.currentScreen = screenAlerts
		return m, m.cmdLoadAlerts()
	case key.Matches(keyMsg, keys.roster):
		m.roster = rosterModel{loading: true}
		m.currentScreen = screenRoster
		return m, m.cmdLoadRoster()
	}

	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	item := m.detail.item

	switch {
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
		return m, nil
	case key.Matches(keyMsg, keys.request):
		m.request = newRequestModel(item.ID)
		m.currentScreen = screenRequest
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.approve):
		return m, m.cmdTransition(item.ID, "approved")
	case key.Matches(keyMsg, keys.deny):
		return m, m.cmdTransition(item.ID, "denied")
	case key.Matches(keyMsg, keys.unlock):
		return m, m.cmdTransition(item.ID, "unlocked")
	case key.Matches(keyMsg, keys.revoke):
		m.showConfirm = true
		m.confirm.message = item.ID
		m.pendingRevoke = item.ID
		return m, nil
	case key.Matches(keyMsg, keys.verify):
		return m, m.cmdTransition(item.ID, "verified")
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopyToClipboard(item.ID)
	case key.Matches(keyMsg, keys.copyKey):
		if item.DecryptionKey == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(item.DecryptionKey)
	}

	return m, nil
}

func (m appModel) updateRequest(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.request.reason, cmd = m.request.reason.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "ctrl+c":
		m.quitByUser = true
		return m, tea.Quit
	case "esc":
		m.currentScreen = screenDetail
		return m, nil
	case "enter":
		if m.request.submitting {
			return m, nil
		}

		reason := strings.TrimSpace(m.request.reason.Value())
		if reason == "" {
			m.request.errMsg = "A reason is required"
			return m, nil
		}

		m.request.errMsg = ""
		m.request.submitting = true
		return m, m.cmdRequestAccess(m.request.evidenceID, reason)
	}

	var cmd tea.Cmd
	m.request.reason, cmd = m.request.reason.Update(msg)
	return m, cmd
}

func (m appModel) updateAudit(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
		return m, nil
	case key.Matches(keyMsg, keys.refresh):
		m.audit = auditModel{loading: true}
		return m, m.cmdLoadAudit()
	case key.Matches(keyMsg, keys.verify):
		return m, m.cmdValidateChain()
	}

	return m, nil
}

func (m appModel) updateAlerts(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
		return m, nil
	case key.Matches(keyMsg, keys.refresh):
		m.alerts = alertsModel{loading: true}
		return m, m.cmdLoadAlerts()
	}

	return m, nil
}

func (m appModel) updateRoster(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
		return m, nil
	case key.Matches(keyMsg, keys.refresh):
		m.roster = rosterModel{loading: true}
		return m, m.cmdLoadRoster()
	}

	return m, nil
}

// ─── commands ───────────────────────────────────────────────────────

func (m appModel) cmdLogin(login, pass string) tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		session, err := server.Login(ctx, models.User{Login: login, Password: pass})
		return loginDoneMsg{session: session, err: err}
	}
}

func (m appModel) cmdLoadEvidence() tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		items, err := server.ListEvidence(ctx)
		return evidenceLoadedMsg{items: items, err: err}
	}
}

func (m appModel) cmdRequestAccess(evidenceID, reason string) tea.Cmd {
	ctx := m.ctx
	server := m.server
	requester := m.session.Login

	return func() tea.Msg {
		item, err := server.RequestAccess(ctx, models.AccessRequest{
			EvidenceID: evidenceID,
			Requester:  requester,
			Reason:     reason,
		})
		return evidenceUpdatedMsg{item: item, action: "requested", err: err}
	}
}

// cmdTransition runs one of the remaining custody transitions. The action
// names the past-tense result shown in the detail status line.
func (m appModel) cmdTransition(evidenceID, action string) tea.Cmd {
	ctx := m.ctx
	server := m.server
	decision := models.CustodyDecision{EvidenceID: evidenceID, Admin: m.session.Login}

	return func() tea.Msg {
		var (
			item models.EvidenceItem
			err  error
		)

		switch action {
		case "approved":
			item, err = server.Approve(ctx, decision)
		case "denied":
			item, err = server.Deny(ctx, decision)
		case "unlocked":
			item, err = server.Unlock(ctx, evidenceID)
		case "revoked":
			item, err = server.Revoke(ctx, decision)
		case "verified":
			item, err = server.VerifyIntegrity(ctx, decision)
		default:
			err = fmt.Errorf("unknown custody action %q", action)
		}

		return evidenceUpdatedMsg{item: item, action: action, err: err}
	}
}

func (m appModel) cmdLoadAudit() tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		blocks, err := server.AuditBlocks(ctx)
		return auditLoadedMsg{blocks: blocks, err: err}
	}
}

func (m appModel) cmdValidateChain() tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		status, err := server.ValidateChain(ctx)
		return chainValidatedMsg{status: status, err: err}
	}
}

func (m appModel) cmdLoadAlerts() tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		alerts, err := server.ListAlerts(ctx)
		return alertsLoadedMsg{alerts: alerts, err: err}
	}
}

func (m appModel) cmdLoadRoster() tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		workers, err := server.ListRoster(ctx)
		return rosterLoadedMsg{workers: workers, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		err := clipboard.WriteAll(text)
		return copiedMsg{err: err}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// ─── helpers ────────────────────────────────────────────────────────

func (m *appModel) showErrorf(format string, args ...any) {
	m.showError = true
	m.errorOverlay.message = fmt.Sprintf(format, args...)
}

func (m *appModel) patchItem(item models.EvidenceItem) {
	for i := range m.list.items {
		if m.list.items[i].ID == item.ID {
			m.list.items[i] = item
			return
		}
	}
}

func (m appModel) humanizeLoginError(err error) string {
	if errors.Is(err, adapter.ErrUnauthorized) {
		return "Invalid credentials"
	}
	return humanizeServerUnavailableError(err)
}

func (m appModel) humanizeCustodyError(err error) string {
	switch {
	case errors.Is(err, adapter.ErrForbidden):
		return "Admin role required for this action"
	case errors.Is(err, adapter.ErrConflict):
		return "Action is not allowed in the item's current custody state"
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Session expired, please log in again"
	case errors.Is(err, adapter.ErrNotFound):
		return "Evidence no longer exists on the server"
	}
	return humanizeServerUnavailableError(err)
}

func transitionStatusText(action string) string {
	switch action {
	case "requested":
		return "Access requested"
	case "approved":
		return "Access approved"
	case "denied":
		return "Access denied"
	case "unlocked":
		return "Evidence unlocked"
	case "revoked":
		return "Access revoked, key discarded"
	case "verified":
		return "Integrity verified"
	default:
		return ""
	}
}
