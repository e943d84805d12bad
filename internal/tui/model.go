package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"blklauncher/internal/catalog"
	"blklauncher/internal/engine"
	"blklauncher/internal/ui"
)

type boardModel struct {
	ctx   context.Context
	svc   *engine.Service
	games []catalog.Game

	profile   engine.Profile
	quests    engine.DailyChallenges
	favorites map[string]bool
	recent    []string
	top       []string
	lockdown  engine.LockdownState

	session *engine.PlaySession
	secret  textinput.Model

	selected int
	width    int
	height   int
	now      time.Time
	lastLog  string
	loading  bool
	err      error
}

type loadedMsg struct {
	profile  engine.Profile
	quests   engine.DailyChallenges
	favs     []string
	recent   []string
	top      []string
	lockdown engine.LockdownState
	err      error
}

type tickMsg time.Time

type sessionMsg struct {
	sess *engine.PlaySession
	err  error
}

type playedMsg struct {
	title string
	res   *engine.PlayResult
	err   error
}

type favMsg struct {
	gameID  string
	favored bool
	err     error
}

type unlockMsg struct {
	err error
}

func newBoardModel(ctx context.Context, svc *engine.Service, games []catalog.Game) boardModel {
	in := textinput.New()
	in.Placeholder = "admin secret"
	in.EchoMode = textinput.EchoPassword
	in.CharLimit = 64
	return boardModel{
		ctx:       ctx,
		svc:       svc,
		games:     games,
		favorites: map[string]bool{},
		secret:    in,
		now:       time.Now(),
		loading:   true,
		lastLog:   "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), tickCmd())
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		p, err := m.svc.ActiveProfile(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		dc, err := m.svc.EnsureDailyChallenges(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		favs, err := m.svc.Favorites(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		recent, err := m.svc.RecentlyPlayed(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		top, err := m.svc.TopGames(m.ctx, 3)
		if err != nil {
			return loadedMsg{err: err}
		}
		ld, err := m.svc.Lockdown(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{profile: p, quests: dc, favs: favs, recent: recent, top: top, lockdown: ld}
	}
}

func (m boardModel) startCmd(g catalog.Game) tea.Cmd {
	return func() tea.Msg {
		sess, err := m.svc.StartSession(m.ctx, g)
		return sessionMsg{sess: sess, err: err}
	}
}

func (m boardModel) endCmd(sess *engine.PlaySession) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.EndSession(m.ctx, sess)
		return playedMsg{title: sess.Game.Title, res: res, err: err}
	}
}

func (m boardModel) favCmd(gameID string) tea.Cmd {
	return func() tea.Msg {
		favored, err := m.svc.ToggleFavorite(m.ctx, gameID)
		return favMsg{gameID: gameID, favored: favored, err: err}
	}
}

func (m boardModel) unlockCmd(secret string) tea.Cmd {
	return func() tea.Msg {
		return unlockMsg{err: m.svc.ClearLockdown(m.ctx, secret)}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		m.now = time.Time(msg)
		// The countdown self-clears server-side; reload picks that up.
		if m.lockdown.Active {
			return m, tea.Batch(m.loadCmd(), tickCmd())
		}
		return m, tickCmd()
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.profile = msg.profile
		m.quests = msg.quests
		m.recent = msg.recent
		m.top = msg.top
		m.favorites = map[string]bool{}
		for _, id := range msg.favs {
			m.favorites[id] = true
		}
		wasActive := m.lockdown.Active
		m.lockdown = msg.lockdown
		if m.lockdown.Active && !wasActive {
			m.secret.SetValue("")
			m.secret.Focus()
		}
		return m, nil
	case sessionMsg:
		if msg.err != nil {
			m.lastLog = "Launch failed: " + msg.err.Error()
			return m, nil
		}
		m.session = msg.sess
		m.lastLog = fmt.Sprintf("Playing %s…", msg.sess.Game.Title)
		return m, nil
	case playedMsg:
		m.session = nil
		if msg.err != nil {
			m.lastLog = "Session failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = playSummary(msg.title, msg.res)
		return m, m.loadCmd()
	case favMsg:
		if msg.err != nil {
			m.lastLog = "Favorite failed: " + msg.err.Error()
			return m, nil
		}
		if msg.favored {
			m.lastLog = fmt.Sprintf("Added %s to favorites.", msg.gameID)
		} else {
			m.lastLog = fmt.Sprintf("Removed %s from favorites.", msg.gameID)
		}
		return m, m.loadCmd()
	case unlockMsg:
		if msg.err != nil {
			m.lastLog = "Unlock failed: " + msg.err.Error()
			m.secret.SetValue("")
			return m, nil
		}
		m.lastLog = "Lockdown cleared."
		return m, m.loadCmd()
	case tea.KeyMsg:
		if m.lockdown.Active {
			return m.updateLocked(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			if m.session != nil {
				return m, tea.Sequence(m.endCmd(m.session), tea.Quit)
			}
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.games)-1 {
				m.selected++
			}
			return m, nil
		case "enter":
			if m.session != nil {
				m.lastLog = "Close the current session first (x)."
				return m, nil
			}
			if g, ok := m.selectedGame(); ok {
				return m, m.startCmd(g)
			}
			return m, nil
		case "x", "esc":
			if m.session == nil {
				return m, nil
			}
			return m, m.endCmd(m.session)
		case "f":
			if g, ok := m.selectedGame(); ok {
				return m, m.favCmd(g.ID)
			}
			return m, nil
		}
	}
	return m, nil
}

// updateLocked routes keys to the secret prompt while the overlay is up.
func (m boardModel) updateLocked(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter":
		secret := m.secret.Value()
		if strings.TrimSpace(secret) == "" {
			return m, nil
		}
		return m, m.unlockCmd(secret)
	}
	var cmd tea.Cmd
	m.secret, cmd = m.secret.Update(msg)
	return m, cmd
}

func (m boardModel) selectedGame() (catalog.Game, bool) {
	if m.selected < 0 || m.selected >= len(m.games) {
		return catalog.Game{}, false
	}
	return m.games[m.selected], true
}

func playSummary(title string, res *engine.PlayResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Played %s: +%d XP", title, engine.PlayXP)
	if res.XP.LeveledUp {
		fmt.Fprintf(&b, " (level %d)", res.XP.Level)
	}
	for _, rule := range res.Unlocked {
		fmt.Fprintf(&b, " %s %s", ui.IconTrophy, rule.Name)
	}
	return b.String()
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}
	if m.lockdown.Active {
		return m.renderLockdown()
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	// Simple 2-column layout.
	leftW := 30
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 20 {
			leftW = 20
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		r := ""
		if i < len(linesRight) {
			r = linesRight[i]
		}
		fmt.Fprintf(&body, "%-*s  %s\n", leftW, l, r)
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderLockdown() string {
	reason := m.lockdown.Reason
	if reason == "" {
		reason = "This site is locked."
	}
	var b strings.Builder
	b.WriteString(ui.Bad.Render(ui.IconLock+" LOCKDOWN") + "\n\n")
	b.WriteString(reason + "\n")
	if !m.lockdown.Until.IsZero() {
		b.WriteString(ui.Warn.Render(m.lockdown.Countdown()) + "\n")
	}
	b.WriteString("\n" + m.secret.View() + "\n")
	b.WriteString(ui.Muted.Render("enter unlock · ctrl+c quit"))
	return ui.Overlay.Render(b.String()) + "\n"
}

func (m boardModel) renderHeader() string {
	p := m.profile
	required := engine.XPRequiredForLevel(p.Level)
	line := fmt.Sprintf("%s  %s · Lv %d %s  %s %d/%d",
		ui.Heading(ui.IconGame, "BLK Launcher"),
		ui.Key.Render(p.Name),
		p.Level,
		ui.Gold.Render(p.Title),
		ui.XPBar(p.XP, required, 16),
		p.XP, required)
	clock := ui.Muted.Render(m.now.Format("15:04:05"))
	if m.session != nil {
		clock = ui.Good.Render(ui.IconClock+" "+engine.FormatClock(m.session.Elapsed(m.now))) + "  " + clock
	}
	return line + "  " + clock
}

func (m boardModel) renderSidebar() string {
	var b strings.Builder
	b.WriteString(ui.H2.Render(ui.IconQuest+" Daily Quests") + "\n")
	if len(m.quests.Challenges) == 0 {
		b.WriteString(ui.Muted.Render("(none)") + "\n")
	}
	for _, ch := range m.quests.Challenges {
		mark := ui.Muted.Render("[ ]")
		if ch.Done {
			mark = ui.Good.Render("[✓]")
		}
		b.WriteString(mark + " " + ch.Text + "\n")
	}

	b.WriteString("\n" + ui.H2.Render(ui.IconBolt+" Recently Played") + "\n")
	if len(m.recent) == 0 {
		b.WriteString(ui.Muted.Render("(nothing yet)") + "\n")
	}
	for i, id := range m.recent {
		if i >= 5 {
			break
		}
		b.WriteString("· " + m.titleFor(id) + "\n")
	}

	b.WriteString("\n" + ui.H2.Render(ui.IconTrophy+" Most Played") + "\n")
	if len(m.top) == 0 {
		b.WriteString(ui.Muted.Render("(nothing yet)") + "\n")
	}
	for _, id := range m.top {
		b.WriteString("· " + m.titleFor(id) + "\n")
	}
	return b.String()
}

func (m boardModel) renderMain() string {
	var b strings.Builder
	b.WriteString(ui.H2.Render(ui.IconSparkle+" Games") + "\n")
	if len(m.games) == 0 {
		b.WriteString(ui.Muted.Render("No games in the catalog.") + "\n")
	}
	for i, g := range m.games {
		row := fmt.Sprintf("%s %s %s", ui.FavoriteMark(m.favorites[g.ID]), g.Title, ui.Muted.Render("("+g.Category+")"))
		if i == m.selected {
			row = ui.SelectedRow.Render("▸ ") + row
		} else {
			row = "  " + row
		}
		b.WriteString(row + "\n")
	}
	return b.String()
}

func (m boardModel) renderFooter() string {
	keys := "↑/↓ select · enter play · x stop · f favorite · r refresh · q quit"
	return "\n" + ui.Muted.Render(keys) + "\n" + m.lastLog + "\n"
}

func (m boardModel) titleFor(id string) string {
	if g, ok := catalog.Find(m.games, id); ok {
		return g.Title
	}
	return id
}
