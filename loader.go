package lambda

import (
	"os"
	"strings"

	"github.com/oarkflow/errors"
	"github.com/oarkflow/log"
)

// LoadFile reads a definitions file into env, one statement per line. Blank
// lines and # comment lines are skipped before they reach the lexer. A line
// that fails to parse is logged and skipped; the rest of the file is still
// processed. Bare expression lines are evaluated and their normal form
// logged, though the canonical file content is definitions only.
func LoadFile(path string, env *Environment, logger *log.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.New("reading definitions file " + path + ": " + err.Error())
	}
	if logger == nil {
		logger = &log.DefaultLogger
	}
	sess := NewSession(env, WithLogger(logger))
	for i, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		res := sess.RunStatement(line)
		switch {
		case res.Err != nil:
			logger.Error().Str("file", path).Int("line", i+1).Err(res.Err).Msg("skipping line")
		case res.Binding != nil:
			logger.Info().Str("file", path).Str("name", res.Binding.Name).Str("expr", res.Binding.Value.String()).Msg("definition loaded")
		default:
			logger.Debug().Str("file", path).Int("line", i+1).Str("value", res.Value.String()).Msg("expression evaluated")
		}
	}
	return nil
}
