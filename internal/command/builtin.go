package command

import (
	"github.com/msto63/findpay/internal/findpayment"
)

// AliasFindPayment is the short form of the findpayment command word
const AliasFindPayment = "fp"

// FindPayment returns the definition of the findpayment command backed by p
func FindPayment(p *findpayment.Parser) *Definition {
	return &Definition{
		Name:        findpayment.CommandWord,
		Aliases:     []string{AliasFindPayment},
		Description: "Find payments of a member by amount, date or remark",
		Usage:       findpayment.MessageUsage,
		Parse:       p.Parse,
	}
}

// NewDefault creates a registry holding the built-in commands
func NewDefault(p *findpayment.Parser, opts Options) (*Registry, error) {
	r := NewRegistry(opts)
	if err := r.Register(FindPayment(p)); err != nil {
		return nil, err
	}
	return r, nil
}
