// package bitcmd implements the bitnum command line tool.
package bitcmd

import (
	"context"
	"slices"
	"strconv"

	"go.brendoncarroll.net/star"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"
)

func Root() star.Command {
	return root
}

var root = star.NewDir(star.Metadata{
	Short: "fixed width bit-level numbers",
}, map[star.Symbol]star.Command{
	"eval":    evalCmd,
	"parse":   parseCmd,
	"inspect": inspectCmd,
	"types":   typesCmd,
	"verify":  verifyCmd,
})

var evalCmd = star.Command{
	Metadata: star.Metadata{
		Short: "apply an operation to operands of a type",
	},
	Flags: []star.IParam{argParam, verboseParam},
	Pos:   []star.IParam{typeParam, opParam},
	F: func(c star.Context) error {
		ctx := newContext(c)
		out, err := Eval(ctx, DefaultTypes(), typeParam.Load(c), opParam.Load(c), argParam.LoadAll(c))
		if err != nil {
			return err
		}
		return PrintValue(c.StdOut, out)
	},
}

var parseCmd = star.Command{
	Metadata: star.Metadata{
		Short: "parse a literal and print it back",
	},
	Flags: []star.IParam{verboseParam},
	Pos:   []star.IParam{typeParam, literalParam},
	F: func(c star.Context) error {
		ctx := newContext(c)
		v, err := Parse(ctx, DefaultTypes(), typeParam.Load(c), literalParam.Load(c))
		if err != nil {
			return err
		}
		return PrintValue(c.StdOut, v)
	},
}

var inspectCmd = star.Command{
	Metadata: star.Metadata{
		Short: "print the encoding, population count and fingerprint of a literal",
	},
	Flags: []star.IParam{verboseParam},
	Pos:   []star.IParam{typeParam, literalParam},
	F: func(c star.Context) error {
		ctx := newContext(c)
		v, err := Parse(ctx, DefaultTypes(), typeParam.Load(c), literalParam.Load(c))
		if err != nil {
			return err
		}
		return Inspect(c.StdOut, v)
	},
}

var typesCmd = star.Command{
	Metadata: star.Metadata{
		Short: "list the types and their operations",
	},
	F: func(c star.Context) error {
		types := DefaultTypes()
		names := make([]string, 0, len(types))
		for name := range types {
			names = append(names, name)
		}
		slices.SortFunc(names, func(a, b string) int {
			if d := types[a].Width - types[b].Width; d != 0 {
				return d
			}
			if a < b {
				return -1
			} else if a > b {
				return 1
			}
			return 0
		})
		c.Printf("%-6s %-6s %s\n", "TYPE", "WIDTH", "OPS")
		for _, name := range names {
			ty := types[name]
			c.Printf("%-6s %-6d %v\n", ty.Name, ty.Width, opNames(ty))
		}
		return nil
	},
}

var verifyCmd = star.Command{
	Metadata: star.Metadata{
		Short: "check bit-serial arithmetic against native arithmetic for every integer type",
	},
	Flags: []star.IParam{samplesParam, seedParam, verboseParam},
	F: func(c star.Context) error {
		ctx := newContext(c)
		n := samplesParam.Load(c)
		if err := Verify(ctx, seedParam.Load(c), n); err != nil {
			return err
		}
		c.Printf("ok: %d samples per type\n", n)
		return nil
	},
}

var typeParam = star.Param[string]{
	Name:  "type",
	Parse: star.ParseString,
}

var opParam = star.Param[string]{
	Name:  "op",
	Parse: star.ParseString,
}

var literalParam = star.Param[string]{
	Name:  "literal",
	Parse: star.ParseString,
}

var argParam = star.Param[string]{
	Name:     "arg",
	Repeated: true,
	Parse:    star.ParseString,
}

var samplesParam = star.Param[int]{
	Name:    "n",
	Default: star.Ptr("10000"),
	Parse:   strconv.Atoi,
}

var seedParam = star.Param[uint64]{
	Name:    "seed",
	Default: star.Ptr("0"),
	Parse: func(x string) (uint64, error) {
		return strconv.ParseUint(x, 10, 64)
	},
}

var verboseParam = star.Param[bool]{
	Name:    "v",
	Default: star.Ptr("false"),
	Parse:   strconv.ParseBool,
}

func newContext(c star.Context) context.Context {
	l := zap.NewNop()
	if verboseParam.Load(c) {
		if dl, err := zap.NewDevelopment(); err == nil {
			l = dl
		}
	}
	return logctx.NewContext(c.Context, l)
}
