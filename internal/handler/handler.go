package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/shayan-0/chat-Agent/internal/model"
	"github.com/shayan-0/chat-Agent/internal/server"
)

const agentNotInitialized = "Agent not initialized. Please check configuration."

// Handler contém as dependências necessárias para os handlers HTTP
type Handler struct {
	server   *server.Server
	validate *validator.Validate
}

// NewHandler cria uma nova instância do Handler
func NewHandler(srv *server.Server) *Handler {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Erros de validação usam o nome do campo no JSON
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &Handler{
		server:   srv,
		validate: v,
	}
}

// HandleRoot retorna informações sobre o serviço
func (h *Handler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"service": "Hajj & Umrah Chat Agent",
		"version": "1.0.0",
		"endpoints": map[string]interface{}{
			"chat": map[string]interface{}{
				"url":         "/chat",
				"method":      "POST",
				"description": "Chat endpoint for Hajj & Umrah guidance and platform FAQs",
				"example": map[string]string{
					"user_id": "u1",
					"message": "What is Tawaf?",
				},
			},
			"health": map[string]interface{}{
				"url":         "/health",
				"method":      "GET",
				"description": "Health check endpoint",
			},
		},
		"agent": map[string]interface{}{
			"model":       h.server.Config.Model,
			"initialized": h.server.Agent != nil,
		},
	}

	writeJSON(w, http.StatusOK, response)
}

// HandleHealth retorna o status de saúde do servidor, sem checar dependências
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.HealthResponse{
		Status:  "healthy",
		Service: server.ServiceName,
	})
}

// HandleChat envia a mensagem ao agente e devolve {"reply": ...}
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	req, err := decodeChatRequest(r.Body)
	if err != nil {
		log.Printf("Error parsing JSON: %v", err)
		writeJSON(w, http.StatusUnprocessableEntity, model.ErrorResponse{Detail: decodeIssues(err)})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, model.ErrorResponse{Detail: validationIssues(err)})
		return
	}

	if h.server.Agent == nil {
		writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{Detail: agentNotInitialized})
		return
	}

	reply, err := h.processMessage(r.Context(), *req.UserID, *req.Message)
	if err != nil {
		log.Printf("Error processing message for user %s: %v", *req.UserID, err)
		writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{
			Detail: fmt.Sprintf("Error processing message: %v", err),
		})
		return
	}

	writeJSON(w, http.StatusOK, model.ChatResponse{Reply: reply})
}

// processMessage chama o agente; um panic que escape dele vira erro da camada HTTP
func (h *Handler) processMessage(ctx context.Context, userID, message string) (reply string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return h.server.Agent.ProcessMessage(ctx, userID, message), nil
}

var errTrailingData = errors.New("unexpected data after JSON body")

// decodeChatRequest lê o corpo com correspondência exata das chaves.
// O decoder de structs do encoding/json ignora maiúsculas/minúsculas, então
// o objeto é lido como mapa e cada campo é buscado pelo nome exato.
func decodeChatRequest(body io.Reader) (model.ChatRequest, error) {
	var req model.ChatRequest

	dec := json.NewDecoder(body)
	var fields map[string]json.RawMessage
	if err := dec.Decode(&fields); err != nil {
		return req, err
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return req, errTrailingData
	}

	targets := []struct {
		name string
		dst  **string
	}{
		{"user_id", &req.UserID},
		{"message", &req.Message},
	}
	for _, t := range targets {
		raw, ok := fields[t.name]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, t.dst); err != nil {
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &typeErr) {
				typeErr.Field = t.name
			}
			return req, err
		}
	}
	return req, nil
}

func decodeIssues(err error) []model.ValidationIssue {
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		return []model.ValidationIssue{{Loc: []string{"body"}, Msg: "Field required", Type: "missing"}}
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return []model.ValidationIssue{{
			Loc:  []string{"body", typeErr.Field},
			Msg:  "Input should be a valid string",
			Type: "string_type",
		}}
	case errors.As(err, &typeErr):
		return []model.ValidationIssue{{
			Loc:  []string{"body"},
			Msg:  "Input should be a valid dictionary or object to extract fields from",
			Type: "model_attributes_type",
		}}
	default:
		return []model.ValidationIssue{{Loc: []string{"body"}, Msg: "JSON decode error", Type: "json_invalid"}}
	}
}

func validationIssues(err error) []model.ValidationIssue {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []model.ValidationIssue{{Loc: []string{"body"}, Msg: err.Error(), Type: "value_error"}}
	}

	issues := make([]model.ValidationIssue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issue := model.ValidationIssue{Loc: []string{"body", fe.Field()}, Msg: fe.Error(), Type: fe.Tag()}
		if fe.Tag() == "required" {
			issue.Msg = "Field required"
			issue.Type = "missing"
		}
		issues = append(issues, issue)
	}
	return issues
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to write response: %v", err)
	}
}
