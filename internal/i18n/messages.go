package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed *.json
var messageFiles embed.FS

// Fallback is the catalog used when a message is missing or the language is unknown.
const Fallback = "en"

// Message represents a localized message
type Message struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Messages holds all messages for a language
type Messages struct {
	Language string    `json:"language"`
	Messages []Message `json:"messages"`
}

// Manager handles internationalization
type Manager struct {
	currentLanguage string
	messages        map[string]map[string]string // language -> message_id -> text
}

// NewManager creates a manager for language. Unsupported languages fall back to English.
func NewManager(language string) (*Manager, error) {
	manager := &Manager{
		currentLanguage: Fallback,
		messages:        make(map[string]map[string]string),
	}

	if err := manager.loadMessages(); err != nil {
		return nil, fmt.Errorf("failed to load messages: %w", err)
	}

	if _, exists := manager.messages[language]; exists {
		manager.currentLanguage = language
	}
	return manager, nil
}

// MustNew is NewManager for the embedded catalogs, which are known to parse.
func MustNew(language string) *Manager {
	m, err := NewManager(language)
	if err != nil {
		panic(err)
	}
	return m
}

// loadMessages loads all message files from embedded filesystem
func (m *Manager) loadMessages() error {
	files, err := messageFiles.ReadDir(".")
	if err != nil {
		return fmt.Errorf("failed to read message files: %w", err)
	}

	for _, file := range files {
		if !strings.HasSuffix(file.Name(), ".json") {
			continue
		}

		// "zh.json" -> "zh"
		language := strings.TrimSuffix(file.Name(), ".json")

		content, err := messageFiles.ReadFile(file.Name())
		if err != nil {
			return fmt.Errorf("failed to read message file %s: %w", file.Name(), err)
		}

		var messages Messages
		if err := json.Unmarshal(content, &messages); err != nil {
			return fmt.Errorf("failed to parse message file %s: %w", file.Name(), err)
		}

		langMessages := make(map[string]string, len(messages.Messages))
		for _, msg := range messages.Messages {
			langMessages[msg.ID] = msg.Text
		}
		m.messages[language] = langMessages
	}

	return nil
}

// Get retrieves a localized message by ID
func (m *Manager) Get(messageID string) string {
	if message, ok := m.messages[m.currentLanguage][messageID]; ok {
		return message
	}
	if message, ok := m.messages[Fallback][messageID]; ok {
		return message
	}
	return fmt.Sprintf("[%s]", messageID)
}

// GetWithArgs retrieves a localized message by ID and formats it with arguments
func (m *Manager) GetWithArgs(messageID string, args ...any) string {
	return fmt.Sprintf(m.Get(messageID), args...)
}

// Language returns the active language
func (m *Manager) Language() string {
	return m.currentLanguage
}
