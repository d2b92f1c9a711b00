package command

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/spigell/jobmatch/internal/logger"
	"github.com/spigell/jobmatch/internal/matching"
)

const (
	replyInvalidCommand = "invalid command"
	maxLogLength        = 80
)

// ErrMalformedArgument is returned when a numeric token can not be parsed.
// It is the only command failure that stops a run.
var ErrMalformedArgument = errors.New("malformed argument")

// replyErrors are the domain failures reported back as command replies.
var replyErrors = []error{
	matching.ErrNameInvalid,
	matching.ErrAgeInvalid,
	matching.ErrAgeIntervalInvalid,
	matching.ErrTimeConditionInvalid,
	matching.ErrSalaryInvalid,
	matching.ErrSkillInvalid,
	matching.ErrSkillDuplicate,
	matching.ErrNotFound,
	matching.ErrFieldInvalid,
}

// Config contains settings consumed by the command handlers.
type Config struct {
	JobListLimit int
	// ExternalCatalog is set when the skill catalog was not read from the
	// command stream.
	ExternalCatalog bool
}

// Deps aggregates dependencies shared by all command handlers.
type Deps struct {
	Store  *matching.Store
	Logger *zap.Logger
}

// Stats describes the outcome of the commands executed so far.
type Stats struct {
	Executed int
	Rejected int
	Unknown  int
}

// Dispatcher maps command lines to store operations.
type Dispatcher struct {
	config   Config
	deps     Deps
	commands map[string]*Command
	stats    Stats
}

func New(cfg *Config, deps *Deps) *Dispatcher {
	d := &Dispatcher{
		commands: make(map[string]*Command, len(commands)),
	}

	if cfg != nil {
		d.config = *cfg
	}
	if deps != nil {
		d.deps = *deps
	}
	if d.deps.Store == nil {
		d.deps.Store = matching.NewStore(nil)
	}
	d.deps.Logger = logger.WithFields(d.deps.Logger)

	for _, c := range commands {
		d.commands[c.Name] = c
	}

	return d
}

func (d *Dispatcher) Stats() Stats {
	return d.stats
}

func (d *Dispatcher) Store() *matching.Store {
	return d.deps.Store
}

// Execute runs one command line and returns its reply. Domain failures are
// part of the reply; an error is returned only for malformed arguments.
func (d *Dispatcher) Execute(line string) (string, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return "", nil
	}

	log := logger.WithFields(d.deps.Logger, logger.CommandFields(tokens[0], logger.TruncateForLog(line, maxLogLength))...)
	log.Debug("executing command")

	c, ok := d.commands[tokens[0]]
	if !ok || len(tokens)-1 != len(c.Params) {
		d.stats.Unknown++
		log.Info("command rejected", zap.String("reason", replyInvalidCommand))
		return replyInvalidCommand, nil
	}

	args := make(map[string]any, len(c.Params))
	for i, param := range c.Params {
		args[param] = tokens[i+1]
	}

	reply, err := c.apply(d, args)
	if err != nil {
		if errors.Is(err, ErrMalformedArgument) {
			return "", fmt.Errorf("%s: %w", c.Name, err)
		}
		for _, known := range replyErrors {
			if errors.Is(err, known) {
				d.stats.Rejected++
				log.Info("command rejected", zap.String("reason", known.Error()))
				return known.Error(), nil
			}
		}
		return "", fmt.Errorf("%s: %w", c.Name, err)
	}

	d.stats.Executed++
	return reply, nil
}

// Run executes every non-blank line of sc and writes one reply line per
// command to w. It stops at the first malformed argument or read error, and
// returns ctx.Err() as soon as ctx is done, even while a read is blocked.
func (d *Dispatcher) Run(ctx context.Context, sc *bufio.Scanner, w io.Writer) (Stats, error) {
	done := make(chan struct{})
	defer close(done)

	lines := scanLines(sc, done)

	lineNo := 0
	first := true
	for {
		if err := ctx.Err(); err != nil {
			return d.stats, err
		}

		var (
			text string
			ok   bool
		)
		select {
		case <-ctx.Done():
			return d.stats, ctx.Err()
		case text, ok = <-lines:
		}

		if !ok {
			if err := sc.Err(); err != nil {
				return d.stats, fmt.Errorf("reading commands: %w", err)
			}
			return d.stats, nil
		}

		lineNo++
		line := strings.TrimSpace(text)
		if line == "" {
			continue
		}

		if first {
			first = false
			if d.config.ExternalCatalog && looksLikeCatalogHeader(line) {
				d.deps.Logger.Warn("input starts with a skill count but the catalog is configured",
					zap.Int("line", lineNo), zap.String(logger.FieldInput, logger.TruncateForLog(line, maxLogLength)))
			}
		}

		reply, err := d.Execute(line)
		if err != nil {
			return d.stats, fmt.Errorf("line %d: %w", lineNo, err)
		}

		if _, err := fmt.Fprintln(w, reply); err != nil {
			return d.stats, fmt.Errorf("writing reply: %w", err)
		}
	}
}

// scanLines feeds the lines of sc into the returned channel until the input
// ends or done is closed. The channel is closed once sc stops, so sc.Err is
// safe to read after a receive reports a closed channel.
func scanLines(sc *bufio.Scanner, done <-chan struct{}) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-done:
				return
			}
		}
	}()

	return lines
}

// decode converts positional arguments into target, parsing numeric fields.
func decode(args map[string]any, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       decimalHook,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           target,
	})
	if err != nil {
		return err
	}

	if err := decoder.Decode(args); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedArgument, err)
	}

	return nil
}

func decodeInt(raw string) (int, error) {
	var target struct {
		Value int `mapstructure:"value"`
	}
	if err := decode(map[string]any{"value": raw}, &target); err != nil {
		return 0, err
	}
	return target.Value, nil
}

// decimalHook parses integers in base 10 only, so "020" stays twenty.
func decimalHook(from, to reflect.Kind, data any) (any, error) {
	if from != reflect.String || to != reflect.Int {
		return data, nil
	}
	return strconv.Atoi(data.(string))
}
