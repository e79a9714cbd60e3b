// Package demo contains the splop CLI commands.
// Each command prints its input items decorated by their position in the list.
package demo

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/contextkit"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/splop/pkg/loopkit"
	"go.llib.dev/splop/pkg/statuskit"
)

const ErrReadItems errorkit.Error = "ErrReadItems"

// Register adds every demo command to the multiplexer.
func Register(m cli.Multiplexer) {
	m.Handle("comma", CommaCommand{})
	m.Handle("racing", RacingCommand{})
	m.Handle("vec", VecCommand{})
}

type ctxKeyLogger struct{}

// Command structs hold cli configuration only, their logger comes from the request context.
var ctxLogger contextkit.ValueHandler[ctxKeyLogger, *logging.Logger]

// ContextWithLogger returns a context that makes the commands log with l.
func ContextWithLogger(ctx context.Context, l *logging.Logger) context.Context {
	return ctxLogger.ContextWith(ctx, l)
}

// items returns the positional arguments as the input items,
// or the lines of the request body when no argument is given.
func items(r *cli.Request) iterkit.SeqE[string] {
	if 0 < len(r.Args) {
		args := r.Args
		return func(yield func(string, error) bool) {
			for _, arg := range args {
				if !yield(arg, nil) {
					return
				}
			}
		}
	}
	if r.Body == nil {
		return func(yield func(string, error) bool) {}
	}
	return iterkit.BufioScanner[string](bufio.NewScanner(r.Body), nil)
}

func loggerOf(ctx context.Context) *logging.Logger {
	if l, ok := ctxLogger.Lookup(ctx); ok && l != nil {
		return l
	}
	return &logging.Logger{Out: os.Stderr}
}

// decorate walks the input items with their status, and writes the line returned by fn for each of them.
func decorate(ctx context.Context, w cli.Response, r *cli.Request, fn func(item string, s statuskit.Status) string) {
	var stats = map[statuskit.Status]int{}
	for sv, err := range statuskit.WithStatusE(items(r)) {
		if err != nil {
			err = ErrReadItems.Wrap(err)
			loggerOf(ctx).Error(ctx, "failed to read the input items", logging.ErrField(err))
			w.ExitCode(cli.ExitCodeError)
			return
		}
		stats[sv.Status]++
		fmt.Fprintln(w, fn(sv.Value, sv.Status))
	}
	loggerOf(ctx).Debug(ctx, "items decorated",
		logging.Field("first", stats[statuskit.First]+stats[statuskit.FirstAndLast]),
		logging.Field("middle", stats[statuskit.Middle]),
		logging.Field("last", stats[statuskit.Last]+stats[statuskit.FirstAndLast]),
	)
}

type CommaCommand struct {
	Separator string `flag:"sep,s" env:"SPLOP_SEPARATOR" desc:"separator printed between the items, a comma and a space by default"`
}

const defaultSeparator = ", "

func (cmd CommaCommand) separator() string {
	if cmd.Separator == "" {
		return defaultSeparator
	}
	return cmd.Separator
}

func (cmd CommaCommand) Summary() string { return "print the items as a bracketed, separated list" }

func (cmd CommaCommand) ServeCLI(w cli.Response, r *cli.Request) {
	ctx := logging.ContextWith(r.Context(), logging.Field("command", "comma"))

	var (
		sep   loopkit.SkipFirst
		out   strings.Builder
		count int
	)
	out.WriteString("[")
	for item, err := range items(r) {
		if err != nil {
			err = ErrReadItems.Wrap(err)
			loggerOf(ctx).Error(ctx, "failed to read the input items", logging.ErrField(err))
			w.ExitCode(cli.ExitCodeError)
			return
		}
		sep.Do(func() { out.WriteString(cmd.separator()) })
		out.WriteString(item)
		count++
	}
	out.WriteString("]")
	fmt.Fprintln(w, out.String())
	loggerOf(ctx).Debug(ctx, "items joined", logging.Field("count", count))
}

type RacingCommand struct{}

func (cmd RacingCommand) Summary() string { return "mark the winner and the loser of the race" }

func (cmd RacingCommand) ServeCLI(w cli.Response, r *cli.Request) {
	ctx := logging.ContextWith(r.Context(), logging.Field("command", "racing"))
	decorate(ctx, w, r, func(name string, s statuskit.Status) string {
		if s.IsFirst() {
			name += " <-- winner (ᵔᴥᵔ)"
		}
		if s.IsLastOnly() {
			name += " ... ʘ︵ʘ"
		}
		return name
	})
}

type VecCommand struct{}

func (cmd VecCommand) Summary() string { return "draw a bracket along the items" }

func (cmd VecCommand) ServeCLI(w cli.Response, r *cli.Request) {
	ctx := logging.ContextWith(r.Context(), logging.Field("command", "vec"))
	decorate(ctx, w, r, func(item string, s statuskit.Status) string {
		var prefix string
		if s.IsFirst() {
			prefix += "┏"
		}
		if s.IsInBetween() {
			prefix += "┃"
		}
		if s.IsLast() {
			prefix += "┗"
		}
		return prefix + " " + item
	})
}
