package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"sync"

	"golang.org/x/term"
)

// LogHandler prints records as "time LEVEL [module] message". Attributes
// other than module are only used for filtering and are not printed.
type LogHandler struct {
	subHandler  slog.Handler
	buffer      *bytes.Buffer
	bufferMutex *sync.Mutex
	out         io.Writer
	colour      bool
}

const (
	reset = "\033[0m"

	cyan        = 36
	lightGray   = 37
	darkGray    = 90
	lightRed    = 91
	lightYellow = 93
)

func (h *LogHandler) colorize(colorCode int, v string) string {
	if !h.colour {
		return v
	}
	return fmt.Sprintf("\033[%sm%s%s", strconv.Itoa(colorCode), v, reset)
}

func (h *LogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.subHandler.Enabled(ctx, level)
}

func (h *LogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.subHandler = h.subHandler.WithAttrs(attrs)
	return &c
}

func (h *LogHandler) WithGroup(name string) slog.Handler {
	c := *h
	c.subHandler = h.subHandler.WithGroup(name)
	return &c
}

func (h *LogHandler) Handle(ctx context.Context, r slog.Record) error {
	level := r.Level.String() + " "

	switch {
	case r.Level >= slog.LevelError:
		level = h.colorize(lightRed, level)
	case r.Level >= slog.LevelWarn:
		level = h.colorize(lightYellow, level)
	case r.Level >= slog.LevelInfo:
		level = h.colorize(cyan, level)
	default:
		level = h.colorize(darkGray, level)
	}

	attrs, err := h.parseAttributes(ctx, r)
	if err != nil {
		return err
	}

	var line bytes.Buffer
	line.WriteString(h.colorize(lightGray, r.Time.Format("15:04:05.000 ")))
	line.WriteString(level)
	if attrs["module"] != nil {
		line.WriteString(h.colorize(lightGray, fmt.Sprintf("[%s] ", attrs["module"])))
	}
	line.WriteString(r.Message)
	if attrs["err"] != nil {
		line.WriteString(fmt.Sprintf(": %s", attrs["err"]))
	}
	line.WriteByte('\n')

	_, err = h.out.Write(line.Bytes())
	return err
}

func (h *LogHandler) parseAttributes(ctx context.Context, r slog.Record) (map[string]any, error) {
	h.bufferMutex.Lock()
	defer func() {
		h.buffer.Reset()
		h.bufferMutex.Unlock()
	}()
	if err := h.subHandler.Handle(ctx, r); err != nil {
		return nil, fmt.Errorf("error when calling inner handler's Handle: %w", err)
	}

	var attrs map[string]any
	err := json.Unmarshal(h.buffer.Bytes(), &attrs)
	if err != nil {
		return nil, fmt.Errorf("error when unmarshaling inner handler's Handle result: %w", err)
	}
	return attrs, nil
}

// NewHandler writes to out. Colours are enabled only when out is a
// terminal.
func NewHandler(out io.Writer, opts *slog.HandlerOptions) *LogHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	b := &bytes.Buffer{}
	return &LogHandler{
		buffer: b,
		subHandler: slog.NewJSONHandler(b, &slog.HandlerOptions{
			Level:       opts.Level,
			AddSource:   opts.AddSource,
			ReplaceAttr: opts.ReplaceAttr,
		}),
		bufferMutex: &sync.Mutex{},
		out:         out,
		colour:      isTerminal(out),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Setup installs the handler on stderr as the default slog logger.
func Setup(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(NewHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// Module returns the default logger tagged with a module name.
func Module(name string) *slog.Logger {
	return slog.Default().With("module", name)
}
