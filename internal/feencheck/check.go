package feencheck

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/rs/zerolog"
	"golang.org/x/exp/maps"

	"github.com/corentings/feen"
)

// stdinName labels records read from the fallback reader.
const stdinName = "-"

// ErrInvalidRecords is returned by Run when at least one record failed to parse.
var ErrInvalidRecords = errors.New("invalid records found")

// Report is the outcome of checking one record.
type Report struct {
	Source  string `json:"source"`
	Line    int    `json:"line"`
	Record  string `json:"record"`
	Valid   bool   `json:"valid"`
	Kind    string `json:"kind,omitempty"`
	Field   string `json:"field,omitempty"`
	Rank    *int   `json:"rank,omitempty"`
	Half    *int   `json:"half,omitempty"`
	Offset  *int   `json:"offset,omitempty"`
	Message string `json:"message,omitempty"`
	Width   int    `json:"width,omitempty"`
	Height  int    `json:"height,omitempty"`
	Active  string `json:"active,omitempty"`
	Flipped bool   `json:"flipped,omitempty"`
}

// Summary counts the records checked by Run.
type Summary struct {
	Total   int
	Valid   int
	Invalid int
	ByKind  map[feen.ErrorKind]int
}

// Run checks every record of the configured files, or of in when no file is
// configured, writing reports to out and diagnostics to errOut. It returns
// ErrInvalidRecords when any record is invalid.
func Run(ctx context.Context, cfg Config, in io.Reader, out, errOut io.Writer) (Summary, error) {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	logger := newLogger(cfg, errOut)

	c := &checker{
		cfg:     cfg,
		out:     out,
		log:     logger,
		enc:     json.NewEncoder(out),
		summary: Summary{ByKind: make(map[feen.ErrorKind]int)},
	}

	if len(cfg.Files) == 0 {
		if in == nil {
			return c.summary, errors.New("no input")
		}
		if err := c.checkSource(ctx, stdinName, in); err != nil {
			return c.summary, err
		}
	}
	for _, name := range cfg.Files {
		if err := c.checkFile(ctx, name); err != nil {
			return c.summary, err
		}
	}

	c.writeSummary()
	logger.Info().
		Int("total", c.summary.Total).
		Int("invalid", c.summary.Invalid).
		Msg("check complete")
	if c.summary.Invalid > 0 {
		return c.summary, ErrInvalidRecords
	}
	return c.summary, nil
}

func newLogger(cfg Config, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.WarnLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

type checker struct {
	cfg     Config
	out     io.Writer
	log     zerolog.Logger
	enc     *json.Encoder
	summary Summary
}

func (c *checker) checkFile(ctx context.Context, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()
	return c.checkSource(ctx, name, f)
}

func (c *checker) checkSource(ctx context.Context, name string, r io.Reader) error {
	c.log.Debug().Str("source", name).Msg("checking source")
	err := readLines(r, func(l line) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return c.checkLine(name, l)
	})
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	return nil
}

func (c *checker) checkLine(source string, l line) error {
	rep := Report{Source: source, Line: l.number, Record: l.text}

	rec, err := feen.Parse(l.text)
	c.summary.Total++
	if err != nil {
		c.summary.Invalid++
		kind := feen.KindOf(err)
		c.summary.ByKind[kind]++
		rep.Kind = kind.String()
		rep.Message = err.Error()
		var fe *feen.Error
		if errors.As(err, &fe) {
			rep.Field = fe.Field
			if fe.Rank >= 0 {
				rep.Rank = &fe.Rank
			}
			if fe.Half >= 0 {
				rep.Half = &fe.Half
			}
			if fe.Offset >= 0 {
				rep.Offset = &fe.Offset
			}
		}
		c.log.Debug().
			Str("source", source).
			Int("line", l.number).
			Stringer("kind", kind).
			Msg("invalid record")
	} else {
		c.summary.Valid++
		rep.Valid = true
		rep.Width = rec.Board.Width()
		rep.Height = rec.Board.Height()
		rep.Active = rec.Styles.Active
		rep.Flipped = rec.Flipped()
	}

	if rep.Valid && c.cfg.Quiet {
		return nil
	}
	return c.writeReport(rep)
}

func (c *checker) writeReport(rep Report) error {
	if c.cfg.JSONOutput {
		return c.enc.Encode(rep)
	}
	var err error
	if rep.Valid {
		_, err = fmt.Fprintf(c.out, "%s:%d: ok %dx%d %s to move\n",
			rep.Source, rep.Line, rep.Width, rep.Height, rep.Active)
	} else {
		_, err = fmt.Fprintf(c.out, "%s:%d: %s: %s\n", rep.Source, rep.Line, rep.Kind, rep.Message)
	}
	return err
}

func (c *checker) writeSummary() {
	if c.cfg.JSONOutput {
		return
	}
	fmt.Fprintf(c.out, "%d records, %d valid, %d invalid\n",
		c.summary.Total, c.summary.Valid, c.summary.Invalid)
	kinds := maps.Keys(c.summary.ByKind)
	slices.Sort(kinds)
	for _, kind := range kinds {
		fmt.Fprintf(c.out, "  %s: %d\n", kind, c.summary.ByKind[kind])
	}
}
