package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/gravitrone/skyline/internal/carousel"
	"github.com/gravitrone/skyline/internal/catalog"
	"github.com/gravitrone/skyline/internal/config"
	"github.com/gravitrone/skyline/internal/logging"
	"github.com/gravitrone/skyline/internal/store"
	"github.com/gravitrone/skyline/internal/theme"
	"github.com/gravitrone/skyline/internal/ui/components"
)

// --- Tab Constants ---

const (
	tabHome         = 0
	tabProjects     = 1
	tabGallery      = 2
	tabBlog         = 3
	tabTestimonials = 4
	tabContact      = 5
	tabTrack        = 6
	tabCount        = 7
)

var tabNames = []string{"Home", "Projects", "Gallery", "Blog", "Testimonials", "Contact", "Track"}

// --- Messages ---

type errMsg struct{ err error }
type clearToastMsg struct{}
type settingsLoadedMsg struct {
	settings catalog.Settings
	err      error
}
type storeChangedMsg struct{ ev store.Event }

type appToast struct {
	level string
	text  string
}

// --- App Model ---

// App is the root TUI model that routes between tabs.
type App struct {
	repo     Catalog
	sub      *store.Subscription
	config   *config.Config
	logger   *zap.Logger
	settings catalog.Settings
	styles   theme.Styles
	nav      navKeys
	slideOps []carousel.Option

	tab         int
	tabNav      bool
	width       int
	height      int
	err         string
	helpOpen    bool
	quitConfirm bool
	toast       *appToast

	home         HomeModel
	projects     ProjectsModel
	gallery      GalleryModel
	blog         BlogModel
	testimonials TestimonialsModel
	contact      ContactModel
	track        TrackModel
}

// NewApp creates the root application model. bus may be nil, in which case the
// App never refreshes on store changes.
func NewApp(repo Catalog, bus *store.Bus, cfg *config.Config, logger *zap.Logger) App {
	if cfg == nil {
		cfg = config.Default()
	}
	logger = logging.OrNop(logger)
	settings := catalog.DefaultSettings()
	a := App{
		repo:     repo,
		config:   cfg,
		logger:   logger.Named("ui"),
		settings: settings,
		styles:   theme.New(settings.Theme),
		nav:      newNavKeys(cfg.VimKeys),
		slideOps: []carousel.Option{
			carousel.WithInterval(cfg.Autoplay()),
			carousel.WithTransition(cfg.Transition()),
		},
		tab:    tabHome,
		tabNav: true,
	}
	if bus != nil {
		a.sub = bus.Subscribe()
	}
	e := a.tabEnv()
	a.home = NewHomeModel(e)
	a.projects = NewProjectsModel(e)
	a.gallery = NewGalleryModel(e)
	a.blog = NewBlogModel(e)
	a.testimonials = NewTestimonialsModel(e, cfg.TestimonialsPerPage)
	a.contact = NewContactModel(e)
	a.track = NewTrackModel(e)
	return a
}

func (a App) Init() tea.Cmd {
	return tea.Batch(a.loadSettings, a.home.Init(), a.listen())
}

// Close unsubscribes from the store and disposes every carousel.
func (a App) Close() {
	if a.sub != nil {
		a.sub.Close()
	}
	a.home.Unmount()
	a.gallery.Unmount()
	a.projects.Unmount()
}

func (a App) tabEnv() env {
	return env{
		repo:     a.repo,
		styles:   a.styles,
		nav:      a.nav,
		carousel: a.slideOps,
		width:    a.width,
		height:   a.height,
	}
}

func (a *App) pushEnv() {
	e := a.tabEnv()
	a.home.env = e
	a.projects.env = e
	a.gallery.env = e
	a.blog.env = e
	a.testimonials.env = e
	a.contact.env = e
	a.track.env = e
}

func (a App) loadSettings() tea.Msg {
	s, err := a.repo.Settings(context.Background())
	return settingsLoadedMsg{settings: s, err: err}
}

// listen waits for the next store event. It yields nothing once the
// subscription is closed.
func (a App) listen() tea.Cmd {
	sub := a.sub
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-sub.C()
		if !ok {
			return nil
		}
		return storeChangedMsg{ev: ev}
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.pushEnv()
		return a, nil

	case errMsg:
		a.logger.Error("tab error", zap.Error(msg.err))
		a.err = msg.err.Error()
		return a, nil
	case clearToastMsg:
		a.toast = nil
		return a, nil

	case settingsLoadedMsg:
		if msg.err != nil {
			a.logger.Warn("load settings", zap.Error(msg.err))
		}
		a.settings = msg.settings
		a.styles = theme.New(msg.settings.Theme)
		a.pushEnv()
		return a, nil

	case storeChangedMsg:
		a.logger.Debug("store changed",
			zap.String("key", msg.ev.Key),
			zap.String("collection", msg.ev.Collection),
			zap.Bool("external", msg.ev.External),
		)
		cmds := []tea.Cmd{a.listen()}
		if msg.ev.External || msg.ev.Key == catalog.KeySettings {
			cmds = append(cmds, a.loadSettings)
		}
		if msg.ev.External || (msg.ev.Key != "" && msg.ev.Key != catalog.KeySettings) {
			cmds = append(cmds, a.initTab(a.tab))
		}
		return a, tea.Batch(cmds...)

	case homeLoadedMsg:
		var cmd tea.Cmd
		a.home, cmd = a.home.Update(msg)
		if a.tab != tabHome {
			a.home = a.home.Unmount()
			return a, nil
		}
		return a, cmd
	case galleryLoadedMsg:
		var cmd tea.Cmd
		a.gallery, cmd = a.gallery.Update(msg)
		if a.tab != tabGallery {
			a.gallery = a.gallery.Unmount()
			return a, nil
		}
		return a, cmd
	case projectsLoadedMsg:
		var cmd tea.Cmd
		a.projects, cmd = a.projects.Update(msg)
		return a, cmd
	case blogLoadedMsg:
		var cmd tea.Cmd
		a.blog, cmd = a.blog.Update(msg)
		return a, cmd
	case testimonialsLoadedMsg:
		var cmd tea.Cmd
		a.testimonials, cmd = a.testimonials.Update(msg)
		return a, cmd
	case contactProjectsMsg:
		var cmd tea.Cmd
		a.contact, cmd = a.contact.Update(msg)
		return a, cmd
	case leadsTrackedMsg:
		var cmd tea.Cmd
		a.track, cmd = a.track.Update(msg)
		return a, cmd

	case enquirySubmittedMsg:
		a.logger.Info("enquiry submitted", zap.String("lead", msg.id))
		var cmd tea.Cmd
		a.contact, cmd = a.contact.Update(msg)
		return a, tea.Batch(cmd, a.setToast("success", "Enquiry received. Track it with lead id "+msg.id))
	case enquiryInvalidMsg:
		var cmd tea.Cmd
		a.contact, cmd = a.contact.Update(msg)
		return a, tea.Batch(cmd, a.setToast("warning", "Please fix: "+msg.errs.Error()))
	case enquiryFailedMsg:
		a.logger.Error("submit enquiry", zap.Error(msg.err))
		a.contact, _ = a.contact.Update(msg)
		a.err = msg.err.Error()
		return a, nil

	case tea.KeyMsg:
		return a.handleKeys(msg)
	}

	return a.delegate(msg)
}

func (a App) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.quitConfirm {
		switch {
		case isKey(msg, "y"):
			return a, tea.Quit
		case isKey(msg, "n"), isBack(msg):
			a.quitConfirm = false
		}
		return a, nil
	}
	if a.helpOpen {
		if isBack(msg) || isKey(msg, "?") {
			a.helpOpen = false
		}
		return a, nil
	}
	if a.err != "" {
		a.err = ""
	}

	// Text entry owns the keyboard until esc.
	if !a.tabNav && a.tabCapturing() {
		if isKey(msg, "ctrl+c") {
			return a.requestQuit()
		}
		if isBack(msg) && a.tab != tabProjects {
			a.blurActive()
			a.tabNav = true
			return a, nil
		}
		return a.delegate(msg)
	}

	// Global keys
	if isKey(msg, "?") {
		a.helpOpen = true
		return a, nil
	}
	if isQuit(msg) {
		return a.requestQuit()
	}

	if idx, ok := tabIndexForKey(msg.String()); ok && (a.tabNav || !a.tabWantsDigits()) {
		return a.switchTab(idx)
	}

	// Arrow tab navigation until user enters content with Down
	if a.tabNav {
		if isKey(msg, "left") {
			return a.switchTab((a.tab - 1 + tabCount) % tabCount)
		}
		if isKey(msg, "right") {
			return a.switchTab((a.tab + 1) % tabCount)
		}
		if a.nav.isDown(msg) {
			return a.enterContent()
		}

		// Any other key exits tab nav so the active tab can handle it.
		app, focusCmd := a.enterContent()
		a = app.(App)
		model, cmd := a.delegate(msg)
		return model, tea.Batch(focusCmd, cmd)
	}

	if (a.nav.isUp(msg) || isBack(msg)) && a.canExitToTabNav() {
		a.tabNav = true
		return a, nil
	}
	return a.delegate(msg)
}

// delegate hands msg to the active tab.
func (a App) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.tab {
	case tabHome:
		a.home, cmd = a.home.Update(msg)
	case tabProjects:
		a.projects, cmd = a.projects.Update(msg)
	case tabGallery:
		a.gallery, cmd = a.gallery.Update(msg)
	case tabBlog:
		a.blog, cmd = a.blog.Update(msg)
	case tabTestimonials:
		a.testimonials, cmd = a.testimonials.Update(msg)
	case tabContact:
		a.contact, cmd = a.contact.Update(msg)
	case tabTrack:
		a.track, cmd = a.track.Update(msg)
	}
	return a, cmd
}

func (a App) requestQuit() (tea.Model, tea.Cmd) {
	if a.contact.hasInput() {
		a.quitConfirm = true
		return a, nil
	}
	return a, tea.Quit
}

func (a App) enterContent() (tea.Model, tea.Cmd) {
	a.tabNav = false
	var cmd tea.Cmd
	switch a.tab {
	case tabContact:
		cmd = a.contact.Focus()
	case tabTrack:
		cmd = a.track.Focus()
	}
	return a, cmd
}

func (a *App) blurActive() {
	switch a.tab {
	case tabContact:
		a.contact.Blur()
	case tabTrack:
		a.track.Blur()
	}
}

func (a App) switchTab(newTab int) (tea.Model, tea.Cmd) {
	if newTab == a.tab {
		return a, nil
	}
	a.leaveTab()
	a.tab = newTab
	a.tabNav = true
	return a, a.initTab(newTab)
}

// leaveTab releases whatever the active tab holds while visible.
func (a *App) leaveTab() {
	a.blurActive()
	switch a.tab {
	case tabHome:
		a.home = a.home.Unmount()
	case tabProjects:
		a.projects = a.projects.Unmount()
	case tabGallery:
		a.gallery = a.gallery.Unmount()
	}
}

func (a App) initTab(tab int) tea.Cmd {
	switch tab {
	case tabHome:
		return a.home.Init()
	case tabProjects:
		return a.projects.Init()
	case tabGallery:
		return a.gallery.Init()
	case tabBlog:
		return a.blog.Init()
	case tabTestimonials:
		return a.testimonials.Init()
	case tabContact:
		return a.contact.Init()
	case tabTrack:
		return a.track.Init()
	}
	return nil
}

func (a App) tabCapturing() bool {
	switch a.tab {
	case tabProjects:
		return a.projects.capturing()
	case tabContact:
		return a.contact.capturing()
	case tabTrack:
		return a.track.capturing()
	}
	return false
}

// tabWantsDigits returns true when digit keys jump carousel slides.
func (a App) tabWantsDigits() bool {
	switch a.tab {
	case tabHome:
		return a.home.wantsDigits()
	case tabProjects:
		return a.projects.wantsDigits()
	case tabGallery:
		return a.gallery.wantsDigits()
	}
	return false
}

func (a App) canExitToTabNav() bool {
	switch a.tab {
	case tabHome, tabGallery, tabTestimonials:
		return true
	case tabProjects:
		return a.projects.atTop()
	case tabBlog:
		return a.blog.atTop()
	}
	return false
}

func (a App) View() string {
	banner := centerBlockUniform(RenderBanner(a.styles, a.settings), a.width)
	tabs := centerBlockUniform(a.renderTabs(), a.width)

	var content string
	switch a.tab {
	case tabHome:
		content = a.home.View()
	case tabProjects:
		content = a.projects.View()
	case tabGallery:
		content = a.gallery.View()
	case tabBlog:
		content = a.blog.View()
	case tabTestimonials:
		content = a.testimonials.View()
	case tabContact:
		content = a.contact.View()
	case tabTrack:
		content = a.track.View()
	}

	if a.quitConfirm {
		content = a.renderQuitConfirm()
	} else if a.helpOpen {
		content = a.renderHelp()
	}
	content = centerBlockUniform(content, a.width)

	footer := renderFooter(a.styles, a.settings, a.width)
	hints := components.StatusBar(a.statusHints(), a.width)

	feedback := ""
	if a.err != "" {
		feedback = "\n\n" + centerBlockUniform(components.ErrorBox("Error", a.err, a.width), a.width)
	} else if a.toast != nil {
		feedback = "\n\n" + centerBlockUniform(a.renderToast(), a.width)
	}

	return fmt.Sprintf("%s\n%s\n\n%s\n\n%s\n\n%s%s", banner, tabs, content, footer, hints, feedback)
}

func (a App) renderTabs() string {
	segments := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		if i == a.tab {
			segments = append(segments, a.styles.TabActive.Render(name))
		} else {
			segments = append(segments, a.styles.TabInactive.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, segments...)
}

func (a App) statusHints() []string {
	if a.quitConfirm {
		return []string{
			components.Hint(a.styles, "y", "Confirm"),
			components.Hint(a.styles, "n", "Cancel"),
		}
	}
	if a.helpOpen {
		return []string{
			components.Hint(a.styles, "esc", "Back"),
		}
	}
	return a.statusHintsForTab()
}

func (a App) statusHintsForTab() []string {
	hint := func(k, desc string) string { return components.Hint(a.styles, k, desc) }
	base := []string{
		hint(fmt.Sprintf("1-%d", tabCount), "Tabs"),
		hint("?", "Help"),
		hint("q", "Quit"),
	}
	if a.tabNav {
		return append(base, hint("←/→", "Switch tab"), hint("↓", "Enter"))
	}

	switch a.tab {
	case tabHome:
		if a.home.wantsDigits() {
			return append(base, hint("←/→", "Slide"), hint("1-9", "Jump"))
		}
	case tabProjects:
		switch {
		case a.projects.querying:
			return append(base, hint("enter", "Apply"), hint("esc", "Clear"))
		case a.projects.wantsArrows():
			return append(base, hint("←/→", "Image"), hint("esc", "Back"))
		}
		return append(base,
			hint("/", "Search"),
			hint("s", "Status"),
			hint("t", "Type"),
			hint("x", "Clear"),
			hint("enter", "Open"),
		)
	case tabGallery:
		return append(base, hint("←/→", "Slide"), hint("c", "Category"))
	case tabBlog:
		if a.blog.detail != nil {
			return append(base, hint("esc", "Back"))
		}
		return append(base, hint("enter", "Read"))
	case tabTestimonials:
		return append(base, hint("←/→", "Page"))
	case tabContact:
		return append(base, hint("tab", "Next field"), hint("ctrl+s", "Send"), hint("esc", "Done"))
	case tabTrack:
		return append(base, hint("enter", "Look up"), hint("esc", "Done"))
	}
	return base
}

func (a App) renderHelp() string {
	hints := a.statusHintsForTab()
	lines := make([]string, 0, len(hints)+2)
	lines = append(lines, a.styles.Muted.Render("esc to close"))
	lines = append(lines, "")
	for _, hint := range hints {
		lines = append(lines, "  "+hint)
	}
	body := strings.Join(lines, "\n")
	return components.Indent(components.TitledBox(a.styles, "Help", body, a.width), 1)
}

func (a App) renderQuitConfirm() string {
	body := "Your enquiry has not been sent. Quit anyway?"
	return components.Indent(components.ConfirmDialog(a.styles, "Quit", body), 1)
}

func (a *App) setToast(level, text string) tea.Cmd {
	a.toast = &appToast{
		level: level,
		text:  components.SanitizeOneLine(text),
	}
	return tea.Tick(2500*time.Millisecond, func(time.Time) tea.Msg {
		return clearToastMsg{}
	})
}

func (a App) renderToast() string {
	if a.toast == nil {
		return ""
	}
	title := "Info"
	switch a.toast.level {
	case "success":
		title = "Success"
	case "warning":
		title = "Warning"
	case "error":
		return components.ErrorBox("Error", a.toast.text, a.width)
	}
	return components.TitledBox(a.styles, title, a.toast.text, a.width)
}

func centerBlockUniform(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	maxWidth := 0
	for _, line := range lines {
		w := lipgloss.Width(line)
		if w > maxWidth {
			maxWidth = w
		}
	}
	if maxWidth <= 0 || maxWidth >= width {
		return s
	}
	pad := (width - maxWidth) / 2
	if pad <= 0 {
		return s
	}
	prefix := strings.Repeat(" ", pad)
	for i := range lines {
		if lines[i] != "" {
			lines[i] = prefix + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}
