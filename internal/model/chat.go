package model

// ChatRequest representa a requisição para o endpoint de chat.
// Os campos são ponteiros para distinguir chave ausente de string vazia.
type ChatRequest struct {
	UserID  *string `json:"user_id" validate:"required"`
	Message *string `json:"message" validate:"required"`
}

// ChatResponse representa a resposta do endpoint de chat
type ChatResponse struct {
	Reply string `json:"reply"`
}

// ErrorResponse é o corpo das respostas de erro.
// Detail é uma string ou uma lista de ValidationIssue.
type ErrorResponse struct {
	Detail any `json:"detail"`
}

// ValidationIssue descreve um campo inválido no corpo da requisição
type ValidationIssue struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// HealthResponse representa a resposta do health check
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
