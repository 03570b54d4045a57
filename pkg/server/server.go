package server

import (
	"fmt"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/oarkflow/log"
	"github.com/oarkflow/xid"

	"github.com/oarkflow/lambda"
	"github.com/oarkflow/lambda/pkg/config"
)

// defaultEvalSteps bounds evaluation for HTTP callers when the config leaves
// the evaluator unbounded. A hung handler is not acceptable the way a hung
// interactive evaluation is.
const defaultEvalSteps = 1_000_000

// Server exposes the evaluator over HTTP. Each session owns one environment;
// statements within a session are serialized so the environment is only ever
// mutated between statements.
type Server struct {
	app      *fiber.App
	cfg      *config.Config
	logger   *log.Logger
	mu       sync.Mutex
	sessions map[string]*lambda.Session
}

type EvalRequest struct {
	Source string `json:"source"`
}

type StatementResult struct {
	Kind   string `json:"kind"`
	Name   string `json:"name,omitempty"`
	Expr   string `json:"expr,omitempty"`
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
	Code   string `json:"code,omitempty"`
}

type EvalResponse struct {
	Results []StatementResult `json:"results"`
}

func New(cfg *config.Config) *Server {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	s := &Server{
		app:      app,
		cfg:      cfg,
		logger:   &log.DefaultLogger,
		sessions: make(map[string]*lambda.Session),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.app.Use(cors.New())
	s.app.Use(logger.New())

	s.app.Get("/api/health", s.healthHandler)
	s.app.Post("/api/eval", s.evalHandler)
	s.app.Post("/api/sessions", s.createSessionHandler)
	s.app.Post("/api/sessions/:id/eval", s.sessionEvalHandler)
	s.app.Get("/api/sessions/:id/definitions", s.definitionsHandler)
}

func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Server.Port)
	s.logger.Info().Str("addr", addr).Msg("starting lambda server")
	return s.app.Listen(addr)
}

func (s *Server) evalSteps() int {
	if s.cfg.EvalSteps > 0 {
		return s.cfg.EvalSteps
	}
	return defaultEvalSteps
}

func (s *Server) healthHandler(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "healthy",
	})
}

// evalHandler runs statements against a throwaway environment, so bindings
// in the request source are visible to later statements of the same request
// only.
func (s *Server) evalHandler(c *fiber.Ctx) error {
	var req EvalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	sess := lambda.NewSession(lambda.NewEnvironment(),
		lambda.WithLogger(s.logger),
		lambda.WithStepLimit(s.evalSteps()),
	)
	return s.respond(c, sess.Run(req.Source))
}

func (s *Server) createSessionHandler(c *fiber.Ctx) error {
	id := xid.New().String()
	sess := lambda.NewSession(lambda.NewEnvironment(),
		lambda.WithLogger(s.logger),
		lambda.WithStepLimit(s.evalSteps()),
	)
	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()
	s.logger.Info().Str("session", id).Msg("session created")
	return c.JSON(fiber.Map{"id": id})
}

func (s *Server) sessionEvalHandler(c *fiber.Ctx) error {
	var req EvalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	id := c.Params("id")
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return c.Status(404).JSON(fiber.Map{"error": "session not found"})
	}
	return s.respond(c, sess.Run(req.Source))
}

func (s *Server) definitionsHandler(c *fiber.Ctx) error {
	id := c.Params("id")
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return c.Status(404).JSON(fiber.Map{"error": "session not found"})
	}
	env := sess.Env()
	defs := make(map[string]string, env.Len())
	for _, name := range env.Names() {
		expr, _ := env.Lookup(name)
		defs[name] = expr.String()
	}
	return c.JSON(fiber.Map{"definitions": defs})
}

func (s *Server) respond(c *fiber.Ctx, results []lambda.Result) error {
	resp := EvalResponse{Results: make([]StatementResult, 0, len(results))}
	status := 200
	for _, res := range results {
		sr := statementResult(res)
		if sr.Kind == "error" && status == 200 {
			status = 422
		}
		resp.Results = append(resp.Results, sr)
	}
	return c.Status(status).JSON(resp)
}

func statementResult(res lambda.Result) StatementResult {
	switch {
	case res.Err != nil:
		sr := StatementResult{Kind: "error", Error: res.Err.Error()}
		if lerr, ok := res.Err.(*lambda.Error); ok {
			sr.Code = string(lerr.Code)
		}
		return sr
	case res.Binding != nil:
		return StatementResult{
			Kind: "binding",
			Name: res.Binding.Name,
			Expr: res.Binding.Value.String(),
		}
	default:
		return StatementResult{Kind: "value", Result: res.Value.String()}
	}
}
