package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/oarkflow/log"

	"github.com/oarkflow/lambda"
	"github.com/oarkflow/lambda/pkg/config"
)

// REPL is the interactive statement loop. It owns the session environment
// for its lifetime and renders results; the core only hands back parsed
// bindings and normal forms.
type REPL struct {
	cfg    *config.Config
	sess   *lambda.Session
	logger *log.Logger
	out    io.Writer
}

func New(cfg *config.Config, env *lambda.Environment, logger *log.Logger) *REPL {
	if logger == nil {
		logger = &log.DefaultLogger
	}
	return &REPL{
		cfg: cfg,
		sess: lambda.NewSession(env,
			lambda.WithLogger(logger),
			lambda.WithStepLimit(cfg.EvalSteps),
		),
		logger: logger,
	}
}

func (r *REPL) Run() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          r.cfg.Prompt,
		HistoryFile:     r.cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()
	r.out = rl.Stdout()

	fmt.Fprintln(r.out, "λ Lambda Calculus Interpreter")
	fmt.Fprintln(r.out, "Type 'exit' or 'quit' to leave.")
	fmt.Fprintln(r.out, "Use ':load file.lam' to load definitions.")

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case line == "exit" || line == "quit":
			return nil
		case strings.HasPrefix(line, ":load "):
			r.load(strings.TrimSpace(strings.TrimPrefix(line, ":load ")))
		case line == ":env":
			r.printEnv()
		default:
			r.eval(line)
		}
	}
	return nil
}

func (r *REPL) load(name string) {
	if !strings.HasSuffix(name, ".lam") {
		name += ".lam"
	}
	if err := lambda.LoadFile(name, r.sess.Env(), r.logger); err != nil {
		fmt.Fprintf(r.out, "error: %v\n", err)
	}
}

func (r *REPL) printEnv() {
	env := r.sess.Env()
	for _, name := range env.Names() {
		expr, _ := env.Lookup(name)
		fmt.Fprintf(r.out, "%s := %s\n", name, expr)
	}
}

func (r *REPL) eval(line string) {
	res := r.sess.RunStatement(line)
	switch {
	case res.Err != nil:
		fmt.Fprintf(r.out, "error: %v\n", res.Err)
	case res.Binding != nil:
		fmt.Fprintf(r.out, "%s := %s\n", res.Binding.Name, res.Binding.Value)
	default:
		fmt.Fprintf(r.out, "=> %s\n", res.Value)
	}
}
