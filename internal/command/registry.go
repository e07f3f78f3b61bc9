// ============================================================================
// findpay - Payment filter command parsing
// ============================================================================
//
// Package:     command
// Description: Registry of command words and dispatch of full command lines
// Author:      Mike Stoffels
// Created:     2025-10-17
// License:     MIT
// ============================================================================

package command

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode"

	mdwerror "github.com/msto63/findpay/foundation/core/error"
	mdwlog "github.com/msto63/findpay/foundation/core/log"
	"github.com/msto63/findpay/internal/findpayment"
)

const operation = "command.Dispatch"

// MessageUnknownCommand is returned for an unregistered command word
const MessageUnknownCommand = "Unknown command"

// ParseFunc turns the argument text of a command into a request
type ParseFunc func(args string) (findpayment.Request, error)

// Definition describes one command
type Definition struct {
	Name        string    // Command word, e.g. "findpayment"
	Aliases     []string  // Alternative words
	Description string    // One-line summary
	Usage       string    // Full usage text shown for malformed input
	Parse       ParseFunc // Argument parser
}

// Invocation is a dispatched command line
type Invocation struct {
	Command string // Canonical command name
	Word    string // Command word as typed
	Args    string // Argument text after the command word
	Request findpayment.Request
}

// Options configures registry behavior
type Options struct {
	Logger *mdwlog.Logger
}

// Registry maps command words to definitions
type Registry struct {
	commands map[string]*Definition
	aliases  map[string]string
	logger   *mdwlog.Logger
	mutex    sync.RWMutex
}

// NewRegistry creates an empty registry
func NewRegistry(opts Options) *Registry {
	if opts.Logger == nil {
		opts.Logger = mdwlog.Nop()
	}
	return &Registry{
		commands: make(map[string]*Definition),
		aliases:  make(map[string]string),
		logger:   opts.Logger.WithName("command-registry"),
	}
}

// Register adds a command and its aliases. Names and aliases share one
// namespace; reusing a word is an error.
func (r *Registry) Register(def *Definition) error {
	if def == nil {
		return invalid("command definition cannot be nil")
	}
	if strings.TrimSpace(def.Name) == "" {
		return invalid("command name cannot be empty")
	}
	if def.Parse == nil {
		return invalid(fmt.Sprintf("command %s has no parse function", def.Name))
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	words := append([]string{def.Name}, def.Aliases...)
	seen := make(map[string]bool, len(words))
	for _, w := range words {
		if strings.TrimSpace(w) == "" || strings.IndexFunc(w, unicode.IsSpace) >= 0 {
			return invalid(fmt.Sprintf("invalid command word %q", w))
		}
		if seen[w] || r.taken(w) {
			return invalid(fmt.Sprintf("command word %s already registered", w))
		}
		seen[w] = true
	}

	r.commands[def.Name] = def
	for _, a := range def.Aliases {
		r.aliases[a] = def.Name
	}

	r.logger.Debug("Command registered", mdwlog.Fields{
		"command": def.Name,
		"aliases": def.Aliases,
	})
	return nil
}

func (r *Registry) taken(word string) bool {
	if _, ok := r.commands[word]; ok {
		return true
	}
	_, ok := r.aliases[word]
	return ok
}

// Lookup resolves a command word or alias
func (r *Registry) Lookup(word string) (*Definition, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if name, ok := r.aliases[word]; ok {
		word = name
	}
	def, ok := r.commands[word]
	return def, ok
}

// Names returns the sorted command names
func (r *Registry) Names() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Aliases returns a copy of the alias table
func (r *Registry) Aliases() map[string]string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	aliases := make(map[string]string, len(r.aliases))
	for k, v := range r.aliases {
		aliases[k] = v
	}
	return aliases
}

// Usage returns the usage text of every command, sorted by name
func (r *Registry) Usage() string {
	names := r.Names()
	parts := make([]string, 0, len(names))
	for _, name := range names {
		def, _ := r.Lookup(name)
		parts = append(parts, def.Usage)
	}
	return strings.Join(parts, "\n\n")
}

// Dispatch splits line into a command word and arguments and runs the
// command's parser. Errors from the parser are returned unchanged.
func (r *Registry) Dispatch(line string) (Invocation, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Invocation{}, mdwerror.New(findpayment.MessageInvalidCommandFormat + r.Usage()).
			WithCode(mdwerror.CodeMalformedCommand).
			WithOperation(operation).
			WithDetail("reason", "blank command line")
	}

	word, args := trimmed, ""
	if i := strings.IndexFunc(trimmed, unicode.IsSpace); i >= 0 {
		word, args = trimmed[:i], trimmed[i:]
	}

	def, ok := r.Lookup(word)
	if !ok {
		r.logger.Debug("Unknown command word", mdwlog.Fields{"word": word})
		return Invocation{}, mdwerror.New(MessageUnknownCommand).
			WithCode(mdwerror.CodeUnknownCommand).
			WithOperation(operation).
			WithDetail("word", word)
	}

	req, err := def.Parse(args)
	if err != nil {
		return Invocation{}, err
	}

	return Invocation{
		Command: def.Name,
		Word:    word,
		Args:    args,
		Request: req,
	}, nil
}

func invalid(message string) error {
	return mdwerror.New(message).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("command.Register")
}
