package update

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/huh"

	"github.com/sandeepkv93/pomodesk/internal/config"
	"github.com/sandeepkv93/pomodesk/internal/display"
	"github.com/sandeepkv93/pomodesk/internal/notes"
	"github.com/sandeepkv93/pomodesk/internal/notify"
	"github.com/sandeepkv93/pomodesk/internal/quotes"
	"github.com/sandeepkv93/pomodesk/internal/scheduler"
	"github.com/sandeepkv93/pomodesk/internal/storage"
	"github.com/sandeepkv93/pomodesk/internal/timer"
	"github.com/sandeepkv93/pomodesk/internal/todo"
	"github.com/sandeepkv93/pomodesk/internal/views"
)

type Panel string

const (
	PanelTasks Panel = "Tasks"
	PanelNotes Panel = "Notes"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	StartPause  string
	Reset       string
	EditTime    string
	Settings    string
	Style       string
	Intensity   string
	Fullscreen  string
	SwitchPanel string
	Theme       string
	Palette     string
	Help        string
	Quit        string
}

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type formKind int

const (
	formNone formKind = iota
	formSettings
	formPermission
)

// Deps are the long-lived components the model drives. Engine and Sync are
// required; the rest may be nil in tests.
type Deps struct {
	Engine     *timer.Engine
	Sync       *display.Synchronizer
	Rotator    *quotes.Rotator
	Dispatcher *notify.Dispatcher
	Tasks      *todo.List
	Notes      *notes.Book
	Store      *storage.Store
	// Fires is the real clock's delivery channel; nil when a manual clock
	// drives the components.
	Fires <-chan scheduler.Fire
	// AskPermission shows the notification prompt at startup.
	AskPermission bool
}

type Model struct {
	Panel       Panel
	Theme       views.Theme
	Status      StatusBar
	Keys        GlobalKeyMap
	Palette     CommandPaletteState
	HelpVisible bool
	Quitting    bool
	LastError   error
	Width       int
	Height      int

	Notifications []Notification

	engine     *timer.Engine
	sync       *display.Synchronizer
	rotator    *quotes.Rotator
	dispatcher *notify.Dispatcher
	tasks      *todo.List
	notes      *notes.Book
	store      *storage.Store
	fires      <-chan scheduler.Fire

	taskCursor   int
	noteCursor   int
	editingTime  bool
	taskInputFor string // "" adds, otherwise the id being renamed
	addingTask   bool
	editingNote  string
	previewKey   string

	tasksList     list.Model
	notesList     list.Model
	timeInput     textinput.Model
	taskInput     textinput.Model
	commandInput  textinput.Model
	notesArea     textarea.Model
	notePreview   viewport.Model
	timerProgress progress.Model
	helpModel     help.Model

	form            *huh.Form
	formKind        formKind
	settingsDraft   *settingsDraft
	permissionDraft *permissionDraft
}

type listItem struct {
	title       string
	description string
}

func (i listItem) FilterValue() string { return i.title + " " + i.description }
func (i listItem) Title() string       { return i.title }
func (i listItem) Description() string { return i.description }

// FireMsg carries one tick-source delivery into Update so the callback runs
// on the UI goroutine.
type FireMsg struct {
	Fire scheduler.Fire
}

type ConfigChangedMsg struct {
	Config config.Config
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

func NewModel(deps Deps) Model {
	if deps.Store == nil {
		deps.Store = storage.NewStore(nil)
	}
	if deps.Tasks == nil {
		deps.Tasks = todo.Load(deps.Store)
	}
	if deps.Notes == nil {
		deps.Notes = notes.Load(deps.Store)
	}
	m := Model{
		Panel: PanelTasks,
		Theme: loadTheme(deps.Store),
		Keys: GlobalKeyMap{
			StartPause:  " ",
			Reset:       "r",
			EditTime:    "e",
			Settings:    "s",
			Style:       "v",
			Intensity:   "a",
			Fullscreen:  "f",
			SwitchPanel: "tab",
			Theme:       "t",
			Palette:     "/",
			Help:        "?",
			Quit:        "q",
		},
		engine:     deps.Engine,
		sync:       deps.Sync,
		rotator:    deps.Rotator,
		dispatcher: deps.Dispatcher,
		tasks:      deps.Tasks,
		notes:      deps.Notes,
		store:      deps.Store,
		fires:      deps.Fires,
	}
	m.initBubbleComponents()
	if deps.AskPermission && deps.Dispatcher != nil && deps.Dispatcher.NeedsPrompt() {
		m.openPermissionForm()
	}
	m.syncBubbleData()
	return m
}

func (m *Model) initBubbleComponents() {
	m.tasksList = newPanelList()
	m.notesList = newPanelList()

	m.timeInput = textinput.New()
	m.timeInput.Prompt = ""
	m.timeInput.CharLimit = 4
	m.timeInput.Width = 6

	m.taskInput = textinput.New()
	m.taskInput.Prompt = "> "
	m.taskInput.CharLimit = 256
	m.taskInput.Width = 42

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.notesArea = textarea.New()
	m.notesArea.SetWidth(54)
	m.notesArea.SetHeight(10)
	m.notesArea.ShowLineNumbers = false
	m.notesArea.CharLimit = 0
	m.notesArea.Placeholder = "Write in markdown…"

	m.notePreview = viewport.New(54, 10)
	m.timerProgress = progress.New(progress.WithDefaultGradient(), progress.WithWidth(30), progress.WithoutPercentage())
	m.helpModel = help.New()
}

func newPanelList() list.Model {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 54, 12)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	return l
}
