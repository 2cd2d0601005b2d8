package bitcmd

import (
	"context"
	"encoding"
	"encoding/hex"
	"fmt"
	"io"
	"slices"

	"go.brendoncarroll.net/exp/slices2"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"

	"myceliumweb.org/bitnum"
)

// Eval parses args as operands of the named type and applies the named operation.
func Eval(ctx context.Context, types map[string]Type, typeName, opName string, args []string) (Value, error) {
	ty, ok := types[typeName]
	if !ok {
		return nil, fmt.Errorf("unknown type %q", typeName)
	}
	op, ok := ty.Ops[opName]
	if !ok {
		return nil, fmt.Errorf("type %s has no operation %q. have %v", ty.Name, opName, opNames(ty))
	}
	if len(args) != op.Arity {
		return nil, fmt.Errorf("%s %s takes %d operands, got %d", ty.Name, opName, op.Arity, len(args))
	}
	logctx.Debug(ctx, "eval", zap.String("type", ty.Name), zap.String("op", opName), zap.Strings("args", args))
	vals, err := parseAll(ty, args)
	if err != nil {
		return nil, err
	}
	out, err := op.F(vals)
	if err != nil {
		return nil, fmt.Errorf("%s %s %v: %w", ty.Name, opName, args, err)
	}
	return out, nil
}

// Parse parses a single operand of the named type.
func Parse(ctx context.Context, types map[string]Type, typeName, arg string) (Value, error) {
	ty, ok := types[typeName]
	if !ok {
		return nil, fmt.Errorf("unknown type %q", typeName)
	}
	logctx.Debug(ctx, "parse", zap.String("type", ty.Name), zap.String("arg", arg))
	vals, err := parseAll(ty, []string{arg})
	if err != nil {
		return nil, err
	}
	return vals[0], nil
}

// PrintValue writes the decimal and binary renderings of v.
func PrintValue(w io.Writer, v Value) error {
	if _, err := fmt.Fprintf(w, "%v\n", v); err != nil {
		return err
	}
	if b, ok := v.(interface{ Binary() string }); ok {
		if _, err := fmt.Fprintf(w, "0b%s\n", b.Binary()); err != nil {
			return err
		}
	}
	return nil
}

// Inspect writes everything known about v: renderings, encoding, population count and fingerprint.
func Inspect(w io.Writer, v Value) error {
	if err := PrintValue(w, v); err != nil {
		return err
	}
	enc, ok := v.(interface {
		encoding.BinaryMarshaler
		Len() int
	})
	if !ok {
		return nil
	}
	data, err := enc.MarshalBinary()
	if err != nil {
		return err
	}
	id, err := bitnum.Fingerprint(enc)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "WIDTH: %d\n", enc.Len()); err != nil {
		return err
	}
	if pc, ok := v.(interface{ CountOnes() int }); ok {
		if _, err := fmt.Fprintf(w, "ONES: %d\n", pc.CountOnes()); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "ENCODED: %s\n", hex.EncodeToString(data)); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "FINGERPRINT: %s\n", hex.EncodeToString(id[:]))
	return err
}

func parseAll(ty Type, args []string) ([]Value, error) {
	type result struct {
		v   Value
		err error
	}
	rs := slices2.Map(args, func(x string) result {
		v, err := ty.Parse(x)
		return result{v: v, err: err}
	})
	vals := make([]Value, 0, len(rs))
	for i, r := range rs {
		if r.err != nil {
			return nil, fmt.Errorf("operand %d %q is not a valid %s: %w", i, args[i], ty.Name, r.err)
		}
		vals = append(vals, r.v)
	}
	return vals, nil
}

func opNames(ty Type) []string {
	names := make([]string, 0, len(ty.Ops))
	for name := range ty.Ops {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
