package service

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"strings"

	"google.golang.org/adk/model"
	"google.golang.org/adk/model/gemini"
	"google.golang.org/genai"

	"github.com/shayan-0/chat-Agent/internal/config"
)

const apologyFormat = "I apologize, but I encountered an error processing your message. " +
	"Please try again or contact our support team for assistance. Error: %v"

// ChatAgent envia a mensagem do usuário ao Gemini junto com a instrução de sistema fixa.
// É somente leitura após a construção e pode ser compartilhado entre requisições.
type ChatAgent struct {
	llm         model.LLM
	modelName   string
	temperature float32
	maxTokens   int32
}

// NewChatAgent valida a configuração e cria o modelo Gemini usado em todas as chamadas
func NewChatAgent(ctx context.Context, cfg config.Config) (*ChatAgent, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	llm, err := gemini.NewModel(ctx, cfg.Model, &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Transport: &DebugTransport{Base: http.DefaultTransport}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create model: %w", err)
	}

	return NewChatAgentWithModel(cfg, llm), nil
}

// NewChatAgentWithModel cria o agente sobre um model.LLM já construído
func NewChatAgentWithModel(cfg config.Config, llm model.LLM) *ChatAgent {
	return &ChatAgent{
		llm:         llm,
		modelName:   cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}
}

// ProcessMessage retorna o texto gerado pelo modelo.
// Falhas nunca são propagadas: viram uma mensagem de desculpas contendo o erro.
func (a *ChatAgent) ProcessMessage(ctx context.Context, userID, message string) (reply string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered while processing message for user %s: %v", userID, r)
			reply = fmt.Sprintf(apologyFormat, r)
		}
	}()

	log.Printf("Processing message for user %s", userID)

	text, err := a.generate(ctx, message)
	if err != nil {
		log.Printf("Error generating response for user %s: %v", userID, err)
		return fmt.Sprintf(apologyFormat, err)
	}
	return text
}

func (a *ChatAgent) generate(ctx context.Context, message string) (string, error) {
	req := a.buildRequest(message)
	slog.Debug("calling model",
		"model", a.modelName,
		"system_chars", len(SystemInstruction),
		"message_chars", len(message))

	var text strings.Builder
	for resp, err := range a.llm.GenerateContent(ctx, req, false) {
		if err != nil {
			return "", err
		}
		if resp == nil {
			continue
		}
		if resp.ErrorCode != "" {
			return "", fmt.Errorf("model returned %s: %s", resp.ErrorCode, resp.ErrorMessage)
		}
		if resp.Content == nil {
			continue
		}
		for _, part := range resp.Content.Parts {
			if part == nil || part.Thought {
				continue
			}
			text.WriteString(part.Text)
		}
	}
	return text.String(), nil
}

// buildRequest monta o prompt de duas partes: instrução de sistema + turno do usuário
func (a *ChatAgent) buildRequest(message string) *model.LLMRequest {
	return &model.LLMRequest{
		Model: a.modelName,
		Contents: []*genai.Content{
			genai.NewContentFromText(message, genai.RoleUser),
		},
		Config: &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(SystemInstruction, genai.RoleUser),
			Temperature:       genai.Ptr(a.temperature),
			MaxOutputTokens:   a.maxTokens,
		},
	}
}
