// Package commands implements program subcommands.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"kata/rect"
	"kata/serde"
	"kata/state"
)

// Area prints area of rectangle WIDTH x HEIGHT.
func Area(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	env := state.EnvFromContext(ctx)
	log := env.Logger().Named("area")

	r, err := rectangleFromArgs(cmd)
	if err != nil {
		return err
	}
	log.Debug("Rectangle created", zap.Stringer("rectangle", r))

	_, err = fmt.Fprintln(env.Output(), strconv.FormatFloat(r.Area(), 'g', -1, 64))
	return err
}

// Encode prints serialized rectangle WIDTH x HEIGHT.
func Encode(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	env := state.EnvFromContext(ctx)
	log := env.Logger().Named("encode")

	r, err := rectangleFromArgs(cmd)
	if err != nil {
		return err
	}

	var text string
	if env.Cfg != nil && (len(env.Cfg.Serde.Indent) > 0 || len(env.Cfg.Serde.Prefix) > 0) {
		text, err = serde.SerializeIndent(r, env.Cfg.Serde.Prefix, env.Cfg.Serde.Indent)
	} else {
		text, err = serde.Serialize(r)
	}
	if err != nil {
		return fmt.Errorf("unable to encode rectangle %s: %w", r, err)
	}
	log.Debug("Rectangle encoded", zap.Stringer("rectangle", r), zap.Int("size", len(text)))

	_, err = fmt.Fprintln(env.Output(), text)
	return err
}

// Decode reads serialized value from file (or STDIN) and rebuilds it using
// requested shape.
func Decode(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	env := state.EnvFromContext(ctx)
	log := env.Logger().Named("decode")

	shape := cmd.String("shape")
	if len(shape) == 0 && env.Cfg != nil {
		shape = env.Cfg.Serde.Shape
	}
	if len(shape) == 0 {
		return errors.New("no shape has been specified")
	}

	src := cmd.Args().Get(0)
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many sources", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	var (
		data []byte
		err  error
	)
	if len(src) == 0 || src == "-" {
		src = "STDIN"
		data, err = io.ReadAll(env.Input())
	} else {
		data, err = os.ReadFile(src)
	}
	if err != nil {
		return fmt.Errorf("unable to read '%s': %w", src, err)
	}

	v, err := env.Shapes.Deserialize(shape, string(data))
	if err != nil {
		return fmt.Errorf("unable to decode %s from '%s': %w", shape, src, err)
	}
	log.Debug("Value decoded", zap.String("shape", shape), zap.String("source", src))

	if a, ok := v.(interface{ Area() float64 }); ok {
		_, err = fmt.Fprintf(env.Output(), "%s %v area %s\n", shape, v, strconv.FormatFloat(a.Area(), 'g', -1, 64))
	} else {
		_, err = fmt.Fprintf(env.Output(), "%s %v\n", shape, v)
	}
	return err
}

func rectangleFromArgs(cmd *cli.Command) (rect.Rectangle, error) {
	if cmd.Args().Len() != 2 {
		return rect.Rectangle{}, fmt.Errorf("expected WIDTH and HEIGHT, got %d argument(s)", cmd.Args().Len())
	}
	width, err := strconv.ParseFloat(cmd.Args().Get(0), 64)
	if err != nil {
		return rect.Rectangle{}, fmt.Errorf("bad width: %w", err)
	}
	height, err := strconv.ParseFloat(cmd.Args().Get(1), 64)
	if err != nil {
		return rect.Rectangle{}, fmt.Errorf("bad height: %w", err)
	}
	return rect.New(width, height), nil
}
