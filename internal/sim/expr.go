package sim

import (
	"fmt"
	"regexp"
)

type tokenKind int

const (
	tokNoType tokenKind = iota
	tokEq
	tokNeq
	tokAnd
	tokHex
	tokDec
	tokReg
	tokPlus
	tokMinus
	tokMul
	tokDiv
	tokLParen
	tokRParen
)

type rule struct {
	pattern string
	kind    tokenKind
}

// Order matters: the first matching rule wins.
var exprRules = []rule{
	{` +`, tokNoType},
	{`==`, tokEq},
	{`!=`, tokNeq},
	{`&&`, tokAnd},
	{`0[xX][0-9a-fA-F]+`, tokHex},
	{`[0-9]+`, tokDec},
	{`\$[a-z0-9$]+`, tokReg},
	{`\+`, tokPlus},
	{`-`, tokMinus},
	{`\*`, tokMul},
	{`/`, tokDiv},
	{`\(`, tokLParen},
	{`\)`, tokRParen},
}

// Expr holds the compiled token rules of the expression evaluator.
type Expr struct {
	rules    []rule
	compiled []*regexp.Regexp
}

func NewExpr() *Expr {
	return &Expr{rules: exprRules}
}

func (e *Expr) Init() error {
	e.compiled = make([]*regexp.Regexp, 0, len(e.rules))
	for _, r := range e.rules {
		re, err := regexp.Compile("^(?:" + r.pattern + ")")
		if err != nil {
			return fmt.Errorf("regex compilation failed for %q: %w", r.pattern, err)
		}
		e.compiled = append(e.compiled, re)
	}
	return nil
}

func (e *Expr) Ready() bool {
	return len(e.compiled) == len(e.rules)
}
