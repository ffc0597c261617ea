// Package transcript obtains the Spanish question, either from an
// external speech-to-text command or from a transcript file, falling back
// to a fixed example when neither is available.
package transcript

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

var (
	// ErrAudioNotFound is returned when the audio file does not exist.
	ErrAudioNotFound = errors.New("transcript: audio file not found")
	// ErrEmpty is returned when a transcript has no text.
	ErrEmpty = errors.New("transcript: empty transcript")
)

// Transcriber turns an audio file into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// Command runs an external speech-to-text program with the audio path as
// its last argument and reads the transcript from stdout.
type Command struct {
	Name string
	Args []string
}

// ParseCommand splits a command line on whitespace.
func ParseCommand(line string) (Command, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, false
	}
	return Command{Name: fields[0], Args: fields[1:]}, true
}

// Transcribe runs the command.
func (c Command) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if _, err := os.Stat(audioPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrAudioNotFound, audioPath)
		}
		return "", err
	}

	args := append(append([]string(nil), c.Args...), audioPath)
	cmd := exec.CommandContext(ctx, c.Name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("run %s: %w: %s", c.Name, err, strings.TrimSpace(stderr.String()))
	}

	text := strings.TrimSpace(stdout.String())
	if text == "" {
		return "", ErrEmpty
	}
	return text, nil
}

// ReadFile returns the trimmed contents of a transcript file.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", ErrEmpty
	}
	return text, nil
}

// Source resolves the question text. Each step that fails is logged and
// the next one is tried; it never fails.
type Source struct {
	Transcriber Transcriber // optional
	AudioPath   string
	QueryPath   string
	Fallback    string
	Logger      *slog.Logger
}

// Text returns the question and where it came from: "audio", "file" or
// "fallback".
func (s Source) Text(ctx context.Context) (text, origin string) {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if s.Transcriber != nil && s.AudioPath != "" {
		t, err := s.Transcriber.Transcribe(ctx, s.AudioPath)
		if err == nil {
			return t, "audio"
		}
		logger.Warn("transcription failed", "audio", s.AudioPath, "error", err)
	}

	if s.QueryPath != "" {
		t, err := ReadFile(s.QueryPath)
		if err == nil {
			return t, "file"
		}
		logger.Warn("transcript file unavailable, using example query", "path", s.QueryPath, "error", err)
	}
	return s.Fallback, "fallback"
}
