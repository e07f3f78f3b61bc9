// ============================================================================
// findpay - Payment filter command parsing
// ============================================================================
//
// Package:     findpayment
// Description: Parses findpayment arguments into a validated Request
// Author:      Mike Stoffels
// Created:     2025-10-17
// License:     MIT
// ============================================================================

package findpayment

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/msto63/findpay/foundation/argparse"
	mdwerror "github.com/msto63/findpay/foundation/core/error"
	mdwlog "github.com/msto63/findpay/foundation/core/log"
	"github.com/msto63/findpay/internal/model"
)

const operation = "findpayment.Parse"

// DefaultMaxInputLength bounds the argument text accepted by Parse
const DefaultMaxInputLength = 4096

// prefixLikeRe matches a token that starts with a label marker such as "x/"
var prefixLikeRe = regexp.MustCompile(`^[A-Za-z]/`)

// Options configures parser behavior
type Options struct {
	// Logger receives debug entries for each parse; nil discards them
	Logger *mdwlog.Logger

	// MaxInputLength is the longest argument text accepted, in bytes
	MaxInputLength int

	// StrictPrefixes reports label-like preamble tokens ("x/5") as
	// UNKNOWN_FILTER instead of MALFORMED_COMMAND
	StrictPrefixes bool

	// Location decides which calendar day "today" is; nil means time.Local
	Location *time.Location

	// Now returns the current instant; nil means time.Now
	Now func() time.Time
}

// Parser turns findpayment argument text into a Request. A Parser holds no
// mutable state and may be used from multiple goroutines.
type Parser struct {
	logger  *mdwlog.Logger
	options Options
}

// New creates a parser with the given options
func New(opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = mdwlog.Nop()
	}
	if opts.MaxInputLength <= 0 {
		opts.MaxInputLength = DefaultMaxInputLength
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Parser{
		logger:  opts.Logger.WithField("component", "findpayment-parser"),
		options: opts,
	}
}

var defaultParser = New(Options{})

// Parse parses args with a parser using default options
func Parse(args string) (Request, error) {
	return defaultParser.Parse(args)
}

// Parse validates args of the form "INDEX [a/AMOUNT | d/DATE | r/REMARK]".
// The first violated rule ends parsing; the returned error is a *mdwerror.Error
// whose Error() text is meant for the user.
func (p *Parser) Parse(args string) (Request, error) {
	p.logger.Debug("Parsing findpayment arguments", mdwlog.Fields{
		"input":  args,
		"length": len(args),
	})

	req, err := p.parse(args)
	if err != nil {
		p.logger.Debug("findpayment parsing failed", mdwlog.Fields{
			"input":      args,
			"error_code": mdwerror.GetCode(err),
		})
		return Request{}, err
	}

	p.logger.Debug("findpayment parsing completed", mdwlog.Fields{
		"index":  req.Index().OneBased(),
		"filter": req.Filter().Kind().String(),
		"value":  req.Filter().Value(),
	})
	return req, nil
}

func (p *Parser) parse(args string) (Request, error) {
	if len(args) > p.options.MaxInputLength {
		return Request{}, newError(mdwerror.CodeInputTooLong,
			fmt.Sprintf(MessageInputTooLong, p.options.MaxInputLength)).
			WithDetail("length", len(args))
	}

	argMap := argparse.Tokenize(args, Prefixes()...)

	index, err := p.parseIndex(argMap)
	if err != nil {
		return Request{}, err
	}

	if err := validatePrefixUsage(argMap); err != nil {
		return Request{}, err
	}

	return p.buildRequest(argMap, index)
}

// parseIndex reads the member index from the preamble
func (p *Parser) parseIndex(argMap *argparse.ArgMap) (model.Index, error) {
	preamble := strings.TrimSpace(argMap.Preamble())
	if preamble == "" {
		return model.Index{}, malformed("missing index")
	}

	tokens := strings.Fields(preamble)
	if p.options.StrictPrefixes {
		// the first token is the index slot; a label there is a malformed index
		for _, tok := range tokens[1:] {
			if prefixLikeRe.MatchString(tok) {
				return model.Index{}, newError(mdwerror.CodeUnknownFilter,
					fmt.Sprintf(MessageUnknownFilter, tok[:2])).
					WithDetail("token", tok)
			}
		}
	}
	if len(tokens) != 1 {
		return model.Index{}, malformed("expected a single index token").
			WithDetail("tokens", len(tokens))
	}

	index, err := model.ParseIndex(tokens[0])
	if err != nil {
		return model.Index{}, malformed(err.Error())
	}
	return index, nil
}

// validatePrefixUsage requires exactly one filter label, given once
func validatePrefixUsage(argMap *argparse.ArgMap) error {
	if dups := argMap.Duplicates(Prefixes()...); len(dups) > 0 {
		names := make([]string, len(dups))
		for i, d := range dups {
			names[i] = d.String()
		}
		return newError(mdwerror.CodeDuplicateFilter,
			MessageDuplicateFilter+strings.Join(names, " ")).
			WithDetail("prefixes", names)
	}

	switch countFilters(argMap) {
	case 0:
		return newError(mdwerror.CodeMissingFilter, MessageMissingFilter)
	case 1:
		return nil
	default:
		return newError(mdwerror.CodeTooManyFilters, MessageTooManyFilters)
	}
}

// countFilters returns how many distinct filter labels are present
func countFilters(argMap *argparse.ArgMap) int {
	n := 0
	for _, kind := range FilterKinds() {
		if argMap.Has(kind.Prefix()) {
			n++
		}
	}
	return n
}

// buildRequest parses the value of the single present filter
func (p *Parser) buildRequest(argMap *argparse.ArgMap, index model.Index) (Request, error) {
	for _, kind := range FilterKinds() {
		raw, ok := argMap.Value(kind.Prefix())
		if !ok {
			continue
		}

		var (
			filter Filter
			err    error
		)
		switch kind {
		case FilterAmount:
			filter, err = parseAmount(raw)
		case FilterRemark:
			filter, err = parseRemark(raw)
		case FilterDate:
			filter, err = parseDate(raw, p.today())
		}
		if err != nil {
			return Request{}, err
		}
		return newRequest(index, filter), nil
	}

	// validatePrefixUsage guarantees one filter is present
	return Request{}, newError(mdwerror.CodeMissingFilter, MessageMissingFilter)
}

func parseAmount(raw string) (Filter, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, newError(mdwerror.CodeEmptyAmount, MessageEmptyAmount)
	}
	amount, err := model.ParseAmount(raw)
	if err != nil {
		return nil, newError(mdwerror.CodeInvalidAmount, MessageInvalidAmount).
			WithDetail("reason", err.Error())
	}
	return AmountFilter{Amount: amount}, nil
}

func parseRemark(raw string) (Filter, error) {
	remark := strings.TrimSpace(raw)
	if remark == "" {
		return nil, newError(mdwerror.CodeEmptyRemark, MessageEmptyRemark)
	}
	return RemarkFilter{Remark: remark}, nil
}

func parseDate(raw string, today model.Date) (Filter, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, newError(mdwerror.CodeEmptyDate, MessageEmptyDate)
	}
	date, err := model.ParseStrictDate(raw, today)
	if err != nil {
		reason := "format"
		if errors.Is(err, model.ErrFutureDate) {
			reason = "future"
		}
		return nil, newError(mdwerror.CodeInvalidDate, MessageInvalidDate).
			WithDetail("reason", reason)
	}
	return DateFilter{Date: date}, nil
}

// today returns the current calendar day in the configured location
func (p *Parser) today() model.Date {
	return model.DateOf(p.options.Now().In(p.options.Location))
}

func newError(code mdwerror.Code, message string) *mdwerror.Error {
	return mdwerror.New(message).
		WithCode(code).
		WithOperation(operation)
}

// malformed builds the MALFORMED_COMMAND error; every cause shares the usage
// message and only the detail records which check failed
func malformed(reason string) *mdwerror.Error {
	return newError(mdwerror.CodeMalformedCommand, MessageInvalidCommandFormat+MessageUsage).
		WithDetail("reason", reason)
}

// ErrorCode returns the code of a parse error, or CodeUnknown
func ErrorCode(err error) mdwerror.Code {
	return mdwerror.GetCode(err)
}
