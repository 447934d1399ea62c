// Package session runs the interactive flashcard loop. A Session owns the
// deck, the mistake tracker and the transcript of everything printed and
// typed, and is created once per process.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/kpauljoseph/flashcards/internal/deck"
	"github.com/kpauljoseph/flashcards/internal/quiz"
	"github.com/kpauljoseph/flashcards/internal/stats"
	"github.com/kpauljoseph/flashcards/pkg/logger"
)

const (
	maxLineSize = 1024 * 1024

	menuPrompt = "Input the action (add, remove, import, export, ask, exit, log, hardest card, reset stats):"
	exitCmd    = "exit"
)

type commandFunc func(ctx context.Context) error

type inputLine struct {
	text string
	err  error
}

type Session struct {
	deck    *deck.Deck
	tracker *stats.Tracker
	engine  *quiz.Engine

	in         *bufio.Scanner
	lines      chan inputLine
	readerOnce sync.Once
	out        io.Writer
	transcript []string

	logger         *logger.Logger
	defaultLogFile string
	commands       map[string]commandFunc
}

type Option func(*Session)

func WithLogger(l *logger.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// WithDefaultLogFile sets the file used when the "log" command gets an
// empty file name.
func WithDefaultLogFile(path string) Option {
	return func(s *Session) {
		s.defaultLogFile = path
	}
}

func New(in io.Reader, out io.Writer, options ...Option) *Session {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	s := &Session{
		deck:    deck.New(),
		tracker: stats.NewTracker(),
		in:      scanner,
		lines:   make(chan inputLine),
		out:     out,
		logger:  logger.Discard(),
	}

	for _, opt := range options {
		opt(s)
	}

	s.engine = quiz.NewEngine(s.deck, s.tracker, s.logger)
	s.commands = map[string]commandFunc{
		"add":          s.cmdAdd,
		"remove":       s.cmdRemove,
		"ask":          s.cmdAsk,
		"import":       s.cmdImport,
		"export":       s.cmdExport,
		"log":          s.cmdLog,
		"hardest card": s.cmdHardestCard,
		"reset stats":  s.cmdResetStats,
	}

	return s
}

func (s *Session) Deck() *deck.Deck {
	return s.deck
}

func (s *Session) Tracker() *stats.Tracker {
	return s.tracker
}

// Transcript returns a copy of every line printed or read so far.
func (s *Session) Transcript() []string {
	return append([]string(nil), s.transcript...)
}

// Println writes msg to the output and records it in the transcript.
func (s *Session) Println(msg string) {
	s.transcript = append(s.transcript, msg)
	fmt.Fprintln(s.out, msg)
}

// Prompt prints msg, then reads one line of input with surrounding spaces
// trimmed. It returns io.EOF once input is exhausted and ctx.Err() if ctx
// is cancelled while waiting.
func (s *Session) Prompt(ctx context.Context, msg string) (string, error) {
	s.Println(msg)
	s.readerOnce.Do(func() { go s.readLines() })

	var next inputLine
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-s.lines:
		if !ok {
			return "", io.EOF
		}
		next = line
	}
	if next.err != nil {
		return "", next.err
	}

	line := strings.Trim(next.text, " ")
	s.transcript = append(s.transcript, line)
	s.logger.Trace("Input: %q", line)
	return line, nil
}

// readLines feeds input lines to Prompt so a blocked read never holds up
// cancellation. It finishes with a single error entry and closes the channel.
func (s *Session) readLines() {
	defer close(s.lines)
	for s.in.Scan() {
		s.lines <- inputLine{text: s.in.Text()}
	}
	if err := s.in.Err(); err != nil {
		s.lines <- inputLine{err: fmt.Errorf("failed to read input: %w", err)}
		return
	}
	s.lines <- inputLine{err: io.EOF}
}

// Run reads and executes commands until "exit" or end of input.
func (s *Session) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		cmd, err := s.Prompt(ctx, menuPrompt)
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debug("Input closed, leaving command loop")
				return nil
			}
			return err
		}

		if cmd == exitCmd {
			return nil
		}

		handler, ok := s.commands[cmd]
		if !ok {
			s.logger.Debug("Ignoring unknown command %q", cmd)
			continue
		}

		if err := handler(ctx); err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debug("Input closed during %q", cmd)
				return nil
			}
			return err
		}
	}
}

// Close prints the farewell line.
func (s *Session) Close() {
	s.Println("Bye bye!")
}
