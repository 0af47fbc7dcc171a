package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"kata/css"
	"kata/state"
)

// Rule prints CSS rule for selector built from command line tokens.
// Properties come from repeated --property name=value flags and from
// --declarations "name: value; ..." text, the former win.
func Rule(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	env := state.EnvFromContext(ctx)
	log := env.Logger().Named("rule")

	b, err := BuildSelector(cmd.Args().Slice(), strictCombinators(env))
	if err != nil {
		return fmt.Errorf("unable to build selector: %w", err)
	}

	parser := css.NewParser(log)

	props := make(map[string]css.Value)
	if decl := cmd.String("declarations"); len(decl) > 0 {
		if props, err = parser.ParseDeclarations(decl); err != nil {
			return fmt.Errorf("unable to parse declarations: %w", err)
		}
	}

	var errs error
	for _, p := range cmd.StringSlice("property") {
		name, raw, found := strings.Cut(p, "=")
		name = strings.TrimSpace(name)
		if !found || len(name) == 0 {
			errs = multierr.Append(errs, fmt.Errorf("property %q: expected name=value", p))
			continue
		}
		v, err := parser.ParseValue(raw)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("property %s: %w", name, err))
			continue
		}
		props[name] = v
	}
	if errs != nil {
		return errs
	}
	if len(props) == 0 {
		return errors.New("no properties have been specified")
	}

	var sheet css.Stylesheet
	sheet.AddRule(b.String(), props)
	log.Debug("Rule prepared", zap.Stringer("selector", b), zap.Int("properties", len(props)))

	_, err = sheet.WriteTo(env.Output())
	return err
}
