package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ragchat/internal/chat"
	"ragchat/internal/persona"
	"ragchat/internal/service"
)

// RAGPort is the TUI-facing subset of the RAG service.
type RAGPort interface {
	Ingest(path string) (service.IngestResult, error)
	Retrieve(query string) (string, error)
}

type mode int

const (
	modeChat mode = iota
	modeIngest
)

// Model is the Bubble Tea model for the chat application.
// Service calls run synchronously inside Update: at most one ingestion or
// query is in flight at a time.
type Model struct {
	service    RAGPort
	generator  chat.Generator
	session    *chat.Session
	personas   []persona.Persona
	personaIdx int
	input      textinput.Model
	viewport   viewport.Model
	mode       mode
	summary    string
	status     string
	ready      bool
}

// New creates a new TUI model instance.
func New(svc RAGPort, gen chat.Generator) Model {
	personas := persona.All()
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = personas[0].Placeholder
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{
		service:   svc,
		generator: gen,
		session:   chat.NewSession(),
		personas:  personas,
		input:     ti,
		viewport:  vp,
		status:    "Ctrl+O: upload document | Tab: switch persona | Ctrl+C: quit",
	}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := transcriptBoxStyle.GetFrameSize()
		_, qh := inputBoxStyle.GetFrameSize()
		totalHeaderLines := 2 // title + summary
		totalFooterLines := 1 // status
		reserved := totalHeaderLines + totalFooterLines + qh + 1
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-rh)
		m.viewport.SetContent(m.renderTranscript())
		return m, nil
	case tea.KeyMsg:
		// Global quits
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "tab":
			return m.cyclePersona(), nil
		case "ctrl+o":
			return m.toggleIngestMode(), nil
		case "enter":
			value := strings.TrimSpace(m.input.Value())
			if value == "" {
				return m, nil
			}
			m.input.SetValue("")
			if m.mode == modeIngest {
				return m.handleIngest(value)
			}
			return m.handleChat(value)
		case "up":
			m.viewport.LineUp(1)
			return m, nil
		case "down":
			m.viewport.LineDown(1)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) cyclePersona() Model {
	m.personaIdx = (m.personaIdx + 1) % len(m.personas)
	p := m.personas[m.personaIdx]
	if m.mode == modeChat {
		m.input.Placeholder = p.Placeholder
	}
	m.status = fmt.Sprintf("Persona: %s (ingested data unchanged)", p.Label)
	return m
}

func (m Model) toggleIngestMode() Model {
	if m.mode == modeIngest {
		m.mode = modeChat
		m.input.Placeholder = m.personas[m.personaIdx].Placeholder
		m.status = "Back to chat."
		return m
	}
	m.mode = modeIngest
	m.input.Placeholder = "Path to PDF or .txt file, then Enter"
	m.status = "Upload: enter a document path (Ctrl+O to cancel)"
	return m
}

func (m Model) handleIngest(path string) (tea.Model, tea.Cmd) {
	res, err := m.service.Ingest(path)
	if err != nil {
		m.status = "Ingestion failed: " + err.Error()
		return m, nil
	}
	if res.Count == 0 {
		m.summary = ""
		m.status = "Document contained no usable text; knowledge base is empty."
	} else {
		m.summary = res.Summary
		m.status = fmt.Sprintf("Indexed %d chunks from %s", res.Count, path)
	}
	m.mode = modeChat
	m.input.Placeholder = m.personas[m.personaIdx].Placeholder
	return m, nil
}

func (m Model) handleChat(message string) (tea.Model, tea.Cmd) {
	m.session.Append(chat.RoleUser, message)

	contextText, err := m.service.Retrieve(message)
	if err != nil {
		// Configuration errors are fatal: stop instead of degrading.
		m.status = "Fatal: " + err.Error()
		m.viewport.SetContent(m.renderTranscript())
		return m, tea.Quit
	}

	p := m.personas[m.personaIdx]
	reply := chat.Respond(context.Background(), m.generator, p.SystemPrompt, contextText, message)
	m.session.Append(chat.RoleAssistant, reply)

	m.status = fmt.Sprintf("Persona: %s", p.Label)
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
	return m, nil
}

// View renders the TUI layout and current transcript.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	p := m.personas[m.personaIdx]
	title := titleStyle.Render(p.Title)
	summary := summaryStyle.Render(m.summary)
	transcript := transcriptBoxStyle.Render(m.viewport.View())
	input := inputBoxStyle.Render(m.input.View())
	status := statusStyle.Render(m.status)
	return title + "\n" + summary + "\n" + transcript + "\n" + input + "\n" + status
}

func (m Model) renderTranscript() string {
	turns := m.session.Turns()
	if len(turns) == 0 {
		return "No messages yet. Upload a document with Ctrl+O, then ask away."
	}
	var sb strings.Builder
	for i, t := range turns {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		switch t.Role {
		case chat.RoleUser:
			sb.WriteString(userLabelStyle.Render("You"))
		default:
			sb.WriteString(assistantLabelStyle.Render(m.personas[m.personaIdx].Label))
		}
		sb.WriteString("\n")
		sb.WriteString(t.Content)
	}
	return sb.String()
}

var (
	titleStyle          = lipgloss.NewStyle().Bold(true)
	summaryStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	transcriptBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputBoxStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	statusStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	userLabelStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	assistantLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
