// Package llm scores CV organization quality through a configurable LLM
// provider, with a rule-based fallback when no provider is reachable.
package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderOllama Provider = "ollama"
	ProviderGroq   Provider = "groq"
	ProviderNone   Provider = "none"
)

type Service struct {
	provider Provider
	apiKey   string
	model    string
	timeout  time.Duration
}

func NewService(provider, apiKey, model string) *Service {
	return &Service{
		provider: Provider(provider),
		apiKey:   apiKey,
		model:    model,
		timeout:  600 * time.Second, // slow local models need room
	}
}

// Provider returns the configured provider name.
func (s *Service) Provider() string {
	return string(s.provider)
}

// Enabled reports whether a real provider is configured.
func (s *Service) Enabled() bool {
	return s != nil && s.provider != ProviderNone && s.provider != ""
}

// Generate sends a prompt to the configured provider and returns the raw
// response text.
func (s *Service) Generate(prompt string) (string, error) {
	switch s.provider {
	case ProviderOpenAI:
		return s.callOpenAI(prompt)
	case ProviderOllama:
		return s.callOllama(prompt)
	case ProviderGroq:
		return s.callGroq(prompt)
	case ProviderNone:
		return "", fmt.Errorf("LLM provider not configured")
	default:
		return "", fmt.Errorf("unknown provider: %s", s.provider)
	}
}

func (s *Service) callOpenAI(prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"model": s.model,
		"messages": []map[string]string{
			{
				"role":    "system",
				"content": "You are a CV reviewer. Return only valid JSON.",
			},
			{
				"role":    "user",
				"content": prompt,
			},
		},
		"temperature": 0.1,
		"response_format": map[string]string{
			"type": "json_object",
		},
	}

	jsonData, _ := json.Marshal(reqBody)

	req, err := http.NewRequest("POST",
		"https://api.openai.com/v1/chat/completions",
		bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: s.timeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("OpenAI API error: %d", resp.StatusCode)
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}

	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		return "", err
	}

	if result.Error.Message != "" {
		return "", fmt.Errorf("OpenAI error: %s", result.Error.Message)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	return result.Choices[0].Message.Content, nil
}

func (s *Service) callOllama(prompt string) (string, error) {
	log.Printf("[DEBUG] Calling Ollama with model: %s", s.model)

	reqBody := map[string]interface{}{
		"model":  s.model,
		"prompt": prompt,
		"stream": false,
		"format": "json",
	}

	jsonData, _ := json.Marshal(reqBody)

	req, err := http.NewRequest("POST",
		"http://localhost:11434/api/generate",
		bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")

	startTime := time.Now()
	client := &http.Client{Timeout: s.timeout}
	resp, err := client.Do(req)
	elapsed := time.Since(startTime)

	if err != nil {
		log.Printf("[ERROR] Ollama request failed after %v: %v", elapsed, err)
		return "", fmt.Errorf("Ollama connection failed (is Ollama running?): %w", err)
	}
	defer resp.Body.Close()

	log.Printf("[DEBUG] Ollama request took: %v, status: %d", elapsed, resp.StatusCode)

	var result struct {
		Response string `json:"response"`
		Error    string `json:"error"`
	}

	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		return "", err
	}

	if result.Error != "" {
		return "", fmt.Errorf("Ollama error: %s", result.Error)
	}

	return result.Response, nil
}

func (s *Service) callGroq(prompt string) (string, error) {
	log.Printf("[DEBUG] Calling Groq with model: %s", s.model)

	reqBody := map[string]interface{}{
		"model": s.model,
		"messages": []map[string]string{
			{
				"role":    "system",
				"content": "You are a CV reviewer. Return only valid JSON.",
			},
			{
				"role":    "user",
				"content": prompt,
			},
		},
		"temperature": 0.1,
		"response_format": map[string]string{
			"type": "json_object",
		},
	}

	jsonData, _ := json.Marshal(reqBody)

	req, err := http.NewRequest("POST",
		"https://api.groq.com/openai/v1/chat/completions",
		bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	startTime := time.Now()
	client := &http.Client{Timeout: s.timeout}
	resp, err := client.Do(req)
	elapsed := time.Since(startTime)

	log.Printf("[DEBUG] Groq request took: %v", elapsed)

	if err != nil {
		return "", fmt.Errorf("Groq API error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Groq API error: %d", resp.StatusCode)
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}

	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		return "", err
	}

	if result.Error.Message != "" {
		return "", fmt.Errorf("Groq error: %s", result.Error.Message)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no response from Groq")
	}

	return result.Choices[0].Message.Content, nil
}
