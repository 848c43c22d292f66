package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/shayan-0/chat-Agent/internal/config"
	"github.com/shayan-0/chat-Agent/internal/service"
)

// ServiceName identifica o serviço no health check
const ServiceName = "hajj-umrah-chat-agent"

// Agent é o contrato do agente de chat usado pelos handlers
type Agent interface {
	ProcessMessage(ctx context.Context, userID, message string) string
}

// Server representa o servidor HTTP com todas as dependências.
// Agent fica nil quando a configuração é inválida.
type Server struct {
	Config config.Config
	Agent  Agent
	Router chi.Router
}

// NewServer cria o servidor e constrói o agente uma única vez.
// Erro de configuração não impede a subida: /chat passa a responder 500.
func NewServer(ctx context.Context, cfg config.Config) (*Server, error) {
	s := &Server{Config: cfg}

	agent, err := service.NewChatAgent(ctx, cfg)
	switch {
	case errors.Is(err, config.ErrMissingAPIKey):
		log.Printf("Configuration error: %v", err)
		log.Println("Please set the GEMINI_API_KEY environment variable")
	case err != nil:
		return nil, fmt.Errorf("failed to create agent: %w", err)
	default:
		s.Agent = agent
		log.Printf("✅ Chat agent initialized (model %s)", cfg.Model)
	}

	return s, nil
}

// SetupRouter configura as rotas e middlewares do Chi
func (s *Server) SetupRouter(
	handleRoot func(http.ResponseWriter, *http.Request),
	handleHealth func(http.ResponseWriter, *http.Request),
	handleChat func(http.ResponseWriter, *http.Request),
) {
	r := chi.NewRouter()

	// Middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	if s.Config.Level() <= slog.LevelInfo {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)

	// Rotas
	r.Get("/", handleRoot)
	r.Get("/health", handleHealth)
	r.Post("/chat", handleChat)

	s.Router = r
}

// Start inicia o servidor HTTP e bloqueia até o contexto ser cancelado
func (s *Server) Start(ctx context.Context) {
	addr := s.Config.Addr()

	// Sem WriteTimeout: a chamada ao modelo não tem prazo
	httpServer := &http.Server{
		Addr:        addr,
		Handler:     s.Router,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		log.Println("╔════════════════════════════════════════════════════╗")
		log.Println("║   Hajj & Umrah Chat Agent v1.0.0                   ║")
		log.Println("╚════════════════════════════════════════════════════╝")
		log.Println("")
		log.Printf("🚀 HTTP server listening on %s", addr)
		log.Println("")
		log.Println("📌 Endpoints:")
		log.Println("   • Info:      / (GET)")
		log.Println("   • Health:    /health (GET)")
		log.Println("   • Chat:      /chat (POST)")
		log.Println("")
		if s.Agent == nil {
			log.Println("⚠️  Agent not initialized: /chat will answer 500 until GEMINI_API_KEY is set")
			log.Println("")
		}

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Aguardar sinal de interrupção
	<-ctx.Done()
	log.Println("🛑 Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("❌ Server shutdown error: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
