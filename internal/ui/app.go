package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/enlace/internal/auth"
	"github.com/five82/enlace/internal/delay"
	"github.com/five82/enlace/internal/prefs"
	"github.com/five82/enlace/internal/requests"
	"github.com/five82/enlace/internal/screen"
	"github.com/five82/enlace/internal/users"
)

// Options configures the UI.
type Options struct {
	Context         context.Context
	Logger          *zap.Logger
	Prefs           prefs.Prefs
	PrefsPath       string
	NavigationDelay time.Duration
	LoginDelay      time.Duration
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	logger    *zap.Logger
	prefsPath string
	prefs     prefs.Prefs

	// Gates
	router   *screen.Router
	login    *auth.Login
	recovery *auth.Recovery

	// Authentication forms
	loginInputs   []textinput.Model // rut, clave
	loginFocus    int
	loginErr      string
	recoveryInput textinput.Model
	recoveryErr   string

	// Management modules
	userPanel    *section[users.User]
	requestPanel *section[requests.Request]

	// UI state
	theme    Theme
	keys     keyMap
	spinner  spinner.Model
	progress progress.Model
	width    int
	height   int
	ready    bool
	showHelp bool

	// Status line
	status    string
	statusErr bool
}

// New creates a new Bubble Tea model showing the login screen.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	userPrefs := opts.Prefs
	if userPrefs.MenuLayout == "" {
		userPrefs.MenuLayout = prefs.Defaults().MenuLayout
	}
	theme := GetTheme(userPrefs.Theme)
	userPrefs.Theme = theme.Name

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	m := Model{
		logger:       logger,
		prefsPath:    prefsPath,
		prefs:        userPrefs,
		router:       screen.NewRouter(ctx, opts.NavigationDelay, logger.Named("router")),
		login:        auth.NewLogin(ctx, opts.LoginDelay, logger.Named("auth")),
		recovery:     &auth.Recovery{},
		userPanel:    newSection(users.NewModule(logger), userSchema(), logger),
		requestPanel: newSection(requests.NewModule(logger), requestSchema(), logger),
		theme:        theme,
		keys:         DefaultKeyMap(),
		spinner:      spin,
		progress:     progress.New(progress.WithSolidFill(theme.Brand), progress.WithoutPercentage()),
	}
	m.initAuthInputs()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Close cancels outstanding timers.
func (m Model) Close() {
	m.router.Close()
	m.login.Close()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = max(min(msg.Width-24, 48), 10)
		m.ready = true
		return m, nil

	case delay.ExpiredMsg:
		return m.handleExpired(msg)

	case frameMsg:
		if m.login.InProgress() {
			return m, frameCmd()
		}
		return m, nil

	case spinner.TickMsg:
		if !m.router.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Cargando..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	switch m.router.Current() {
	case screen.Login:
		if m.login.InProgress() {
			return m.renderLoginProgress()
		}
		return m.renderLogin()
	case screen.ForgotPassword:
		return m.renderRecovery()
	}

	if m.router.Loading() {
		return m.renderLoader()
	}
	return m.renderMain()
}

// handleExpired routes a timer expiry to the gate that armed it.
func (m Model) handleExpired(msg delay.ExpiredMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.login.Owns(msg):
		if _, ok := m.login.Complete(msg); ok {
			m.resetLogin()
			m.router.Navigate(screen.UserAdmin)
			m.setStatus("Bienvenido al sistema Enlace", false)
		}
	case m.router.Owns(msg):
		m.router.Complete(msg)
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch m.router.Current() {
	case screen.Login:
		return m.handleLoginKey(msg)
	case screen.ForgotPassword:
		return m.handleRecoveryKey(msg)
	}
	return m.handleMainKey(msg)
}

func (m Model) handleMainKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.activePanel()
	loading := m.router.Loading()

	if loading || !p.Capturing() {
		switch {
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
			return m, nil
		case key.Matches(msg, m.keys.Users):
			return m, m.navigate(screen.UserAdmin)
		case key.Matches(msg, m.keys.Requests):
			return m, m.navigate(screen.ITRequests)
		case key.Matches(msg, m.keys.ToggleLayout):
			m.toggleLayout()
			return m, nil
		case key.Matches(msg, m.keys.CycleTheme):
			m.cycleTheme()
			return m, nil
		case key.Matches(msg, m.keys.Logout):
			m.logout()
			return m, nil
		}
	}
	if loading {
		return m, nil
	}

	m.status = ""
	cmd, note := p.HandleKey(msg, m.keys)
	if note != "" {
		m.setStatus(note, false)
	}
	return m, cmd
}

// navigate asks the router for target and starts the loader spinner when the
// switch is deferred. The module being left returns to its list.
func (m *Model) navigate(target screen.Screen) tea.Cmd {
	from := m.router.Current()
	cmd := m.router.Navigate(target)
	if cmd == nil {
		return nil
	}
	if target != from {
		if p := m.panelFor(from); p != nil {
			p.Reset()
		}
	}
	m.status = ""
	return tea.Batch(cmd, m.spinner.Tick)
}

func (m *Model) logout() {
	m.router.Navigate(screen.Login)
	m.userPanel.Reset()
	m.requestPanel.Reset()
	m.resetLogin()
	m.setStatus("Sesión cerrada", false)
}

func (m *Model) toggleLayout() {
	next, err := prefs.ToggleMenuLayout(m.prefsPath, m.prefs)
	m.prefs = next
	if err != nil {
		m.logger.Warn("menu layout not saved", zap.Error(err))
		m.setStatus("No se pudo guardar la preferencia de menú: "+err.Error(), true)
		return
	}
	m.logger.Info("menu layout changed", zap.String("layout", string(next.MenuLayout)))
	m.setStatus("Menú "+layoutLabel(next.MenuLayout), false)
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.prefs.Theme = m.theme.Name
	m.progress = progress.New(progress.WithSolidFill(m.theme.Brand), progress.WithoutPercentage())
	m.progress.Width = max(min(m.width-24, 48), 10)
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.logger.Warn("theme not saved", zap.Error(err))
		m.setStatus("No se pudo guardar el tema: "+err.Error(), true)
		return
	}
	m.setStatus("Tema "+m.theme.Name, false)
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

// activePanel returns the module of the visible main screen.
func (m Model) activePanel() panel {
	if p := m.panelFor(m.router.Current()); p != nil {
		return p
	}
	return m.userPanel
}

func (m Model) panelFor(s screen.Screen) panel {
	switch s {
	case screen.UserAdmin:
		return m.userPanel
	case screen.ITRequests:
		return m.requestPanel
	}
	return nil
}

// Messages

type frameMsg time.Time

// Commands

func frameCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
