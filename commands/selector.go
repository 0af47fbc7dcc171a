package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"kata/selector"
	"kata/state"
)

// BuildSelector builds selector from command line tokens. Fragment tokens
// look like "kind:value" ("element:div", "class:nav", `attr:href^="http"`),
// any other token is a combinator placed between compound selectors around
// it. With strict set only known combinators are accepted.
func BuildSelector(tokens []string, strict bool) (*selector.Builder, error) {
	var (
		compounds   []*selector.Builder
		combinators []string
	)
	for i, tok := range tokens {
		if kind, value, ok := fragmentToken(tok); ok {
			if len(compounds) == len(combinators) {
				compounds = append(compounds, selector.New())
			}
			compounds[len(compounds)-1].Append(kind, value)
			continue
		}
		if len(compounds) == len(combinators) {
			return nil, fmt.Errorf("token %d (%q): combinator must follow a selector", i+1, tok)
		}
		combinators = append(combinators, tok)
	}
	if len(compounds) == 0 {
		return nil, errors.New("no selector tokens have been specified")
	}
	if len(compounds) == len(combinators) {
		return nil, fmt.Errorf("combinator %q is not followed by a selector", combinators[len(combinators)-1])
	}

	b := compounds[0]
	for i, text := range combinators {
		c, err := selector.ParseCombinator(text)
		switch {
		case err == nil:
			b = selector.Combine(b, c, compounds[i+1])
		case strict:
			// records ErrInvalidCombinator
			b = selector.Combine(b, selector.Combinator(text), compounds[i+1])
		default:
			b = selector.CombineUnchecked(b, text, compounds[i+1])
		}
	}
	return b, b.Err()
}

func fragmentToken(tok string) (selector.Kind, string, bool) {
	name, value, found := strings.Cut(tok, ":")
	if !found || len(name) == 0 {
		return 0, "", false
	}
	kind, err := selector.ParseKind(name)
	if err != nil {
		return 0, "", false
	}
	return kind, value, true
}

func strictCombinators(env *state.LocalEnv) bool {
	if env.Cfg == nil {
		return true
	}
	return env.Cfg.Selector.StrictCombinators
}

// Selector prints selector built from command line tokens.
func Selector(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	env := state.EnvFromContext(ctx)
	log := env.Logger().Named("selector")

	b, err := BuildSelector(cmd.Args().Slice(), strictCombinators(env))
	if err != nil {
		return fmt.Errorf("unable to build selector: %w", err)
	}
	spec := b.Specificity()
	log.Debug("Selector built", zap.Stringer("selector", b), zap.Ints("specificity", spec[:]))

	_, err = fmt.Fprintln(env.Output(), b.String())
	return err
}
