package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const defaultAPIURL = "http://localhost:3000"

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Bold(true).
			PaddingLeft(2)

	normalStyle = lipgloss.NewStyle().
			PaddingLeft(4)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	detailStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(lipgloss.Color("252"))
)

type step int

const (
	stepEnteringEmail step = iota
	stepEnteringPassword
	stepLoggingIn
	stepBrowsing
	stepViewingBook
)

type book struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	Rating        float64 `json:"rating"`
	PublishedDate string  `json:"publishedDate"`
}

type bookPage struct {
	TotalItems  int64  `json:"totalItems"`
	TotalPages  int    `json:"totalPages"`
	CurrentPage int    `json:"currentPage"`
	Books       []book `json:"books"`
}

type model struct {
	apiURL       string
	step         step
	email        string
	password     string
	token        string
	currentInput string
	page         bookPage
	cursor       int
	message      string
	quitting     bool
}

type loginSuccessMsg struct{ token string }
type booksLoadedMsg bookPage
type seedSuccessMsg struct{}
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func initialModel() model {
	apiURL := os.Getenv("BOOKSTORE_API")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	return model{
		apiURL: apiURL,
		step:   stepEnteringEmail,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func login(apiURL, email, password string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		payload, _ := json.Marshal(map[string]string{
			"email":    email,
			"password": password,
		})

		resp, err := client.Post(apiURL+"/api/users/login", "application/json", bytes.NewBuffer(payload))
		if err != nil {
			return errMsg{fmt.Errorf("cannot reach the API at %s: %w", apiURL, err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return errMsg{fmt.Errorf("login rejected (status %d)", resp.StatusCode)}
		}

		var result struct {
			Token string `json:"token"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil || result.Token == "" {
			return errMsg{fmt.Errorf("unexpected login response")}
		}

		return loginSuccessMsg{token: result.Token}
	}
}

func fetchBooks(apiURL, token string, page int) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		q := url.Values{}
		q.Set("page", strconv.Itoa(page))
		q.Set("limit", "10")

		req, _ := http.NewRequest(http.MethodGet, apiURL+"/api/books?"+q.Encode(), nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("failed to fetch books: %w", err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return errMsg{fmt.Errorf("book list rejected (status %d)", resp.StatusCode)}
		}

		var result bookPage
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return errMsg{fmt.Errorf("unexpected book list response: %w", err)}
		}

		return booksLoadedMsg(result)
	}
}

func seedBook(apiURL, token string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		payload, _ := json.Marshal(map[string]any{
			"title":         "Demo Book " + time.Now().Format("15:04:05"),
			"author":        "Bookstore Admin",
			"category":      "Demo",
			"price":         9.99,
			"rating":        4.0,
			"publishedDate": time.Now().Format("2006-01-02"),
		})

		req, _ := http.NewRequest(http.MethodPost, apiURL+"/api/books", bytes.NewBuffer(payload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("failed to seed book: %w", err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusCreated {
			return errMsg{fmt.Errorf("seed rejected (status %d)", resp.StatusCode)}
		}

		return seedSuccessMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case loginSuccessMsg:
		m.token = msg.token
		m.step = stepBrowsing
		m.message = ""
		return m, fetchBooks(m.apiURL, m.token, 1)

	case booksLoadedMsg:
		m.page = bookPage(msg)
		if m.cursor >= len(m.page.Books) {
			m.cursor = 0
		}
		return m, nil

	case seedSuccessMsg:
		m.message = ""
		return m, fetchBooks(m.apiURL, m.token, m.page.CurrentPage)

	case errMsg:
		m.message = msg.Error()
		if m.step == stepLoggingIn {
			m.step = stepEnteringEmail
			m.currentInput = ""
			m.password = ""
		}
		return m, nil
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}

	switch m.step {
	case stepEnteringEmail, stepEnteringPassword:
		return m.handleInputKey(msg)

	case stepBrowsing:
		switch msg.String() {
		case "q":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.page.Books)-1 {
				m.cursor++
			}
		case "left", "h":
			if m.page.CurrentPage > 1 {
				return m, fetchBooks(m.apiURL, m.token, m.page.CurrentPage-1)
			}
		case "right", "l":
			if m.page.CurrentPage < m.page.TotalPages {
				return m, fetchBooks(m.apiURL, m.token, m.page.CurrentPage+1)
			}
		case "r":
			return m, fetchBooks(m.apiURL, m.token, m.page.CurrentPage)
		case "s":
			return m, seedBook(m.apiURL, m.token)
		case "enter":
			if len(m.page.Books) > 0 {
				m.step = stepViewingBook
			}
		}

	case stepViewingBook:
		switch msg.String() {
		case "q", "esc", "enter":
			m.step = stepBrowsing
		}
	}

	return m, nil
}

func (m model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		if m.step == stepEnteringEmail {
			m.email = m.currentInput
			m.currentInput = ""
			m.step = stepEnteringPassword
			return m, nil
		}
		m.password = m.currentInput
		m.currentInput = ""
		m.step = stepLoggingIn
		return m, login(m.apiURL, m.email, m.password)

	case tea.KeyBackspace:
		if len(m.currentInput) > 0 {
			m.currentInput = m.currentInput[:len(m.currentInput)-1]
		}

	case tea.KeyRunes, tea.KeySpace:
		m.currentInput += string(msg.Runes)
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	s := titleStyle.Render("Bookstore Admin") + "\n"

	if m.message != "" {
		s += errorStyle.Render(m.message) + "\n\n"
	}

	switch m.step {
	case stepEnteringEmail:
		s += promptStyle.Render("Email: ") + inputStyle.Render(m.currentInput) + "_\n"

	case stepEnteringPassword:
		masked := ""
		for range m.currentInput {
			masked += "*"
		}
		s += promptStyle.Render("Password: ") + inputStyle.Render(masked) + "_\n"

	case stepLoggingIn:
		s += "Logging in...\n"

	case stepBrowsing:
		s += successStyle.Render(fmt.Sprintf("Catalog — %d books, page %d/%d", m.page.TotalItems, m.page.CurrentPage, m.page.TotalPages)) + "\n\n"
		if len(m.page.Books) == 0 {
			s += normalStyle.Render("(no books)") + "\n"
		}
		for i, b := range m.page.Books {
			line := fmt.Sprintf("%s — %s  $%.2f  ★%.1f", b.Title, b.Author, b.Price, b.Rating)
			if i == m.cursor {
				s += selectedStyle.Render("> "+line) + "\n"
			} else {
				s += normalStyle.Render(line) + "\n"
			}
		}
		s += "\n" + normalStyle.Render("↑/↓ select · ←/→ page · enter details · s seed demo · r refresh · q quit") + "\n"

	case stepViewingBook:
		b := m.page.Books[m.cursor]
		s += successStyle.Render(b.Title) + "\n\n"
		s += detailStyle.Render("Author:     "+b.Author) + "\n"
		s += detailStyle.Render("Category:   "+b.Category) + "\n"
		s += detailStyle.Render(fmt.Sprintf("Price:      $%.2f", b.Price)) + "\n"
		s += detailStyle.Render(fmt.Sprintf("Rating:     %.1f / 5", b.Rating)) + "\n"
		s += detailStyle.Render("Published:  "+b.PublishedDate) + "\n"
		s += detailStyle.Render("ID:         "+b.ID) + "\n"
		s += "\n" + normalStyle.Render("enter/esc back") + "\n"
	}

	return s
}

func main() {
	if _, err := tea.NewProgram(initialModel()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
