package cli

import (
	"fmt"
	"math/big"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/viant/xconv/desc"
)

var targetKinds = map[string]*desc.Type{
	"bool":       desc.Of[bool](),
	"char":       desc.Rune,
	"byte":       desc.Of[byte](),
	"short":      desc.Of[int16](),
	"int":        desc.Of[int32](),
	"long":       desc.Of[int64](),
	"float":      desc.Of[float32](),
	"double":     desc.Of[float64](),
	"bigint":     desc.Of[*big.Int](),
	"bigdecimal": desc.Of[*big.Float](),
	"string":     desc.Of[string](),
	"date":       desc.Of[time.Time](),
	"duration":   desc.Of[time.Duration](),
	"ints":       desc.Of[[]int64](),
	"doubles":    desc.Of[[]float64](),
	"strings":    desc.Of[[]string](),
	"bytes":      desc.Of[[]byte](),
}

type ToOptions struct {
	GlobalOptions

	Quiet   bool
	Default string
}

func DefaultToOptions() *ToOptions {
	return &ToOptions{GlobalOptions: DefaultGlobalOptions()}
}

func NewCmdTo() *cobra.Command {
	o := DefaultToOptions()
	cmd := &cobra.Command{
		Use:   "to KIND VALUE",
		Short: fmt.Sprintf("Convert value to one of (%s).", strings.Join(kindNames(), ", ")),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd, args)
		},
		SilenceUsage: true,
	}
	o.GlobalOptions.Bind(cmd.Flags())
	cmd.Flags().BoolVarP(&o.Quiet, "quiet", "q", o.Quiet, "Print default value instead of failing.")
	cmd.Flags().StringVar(&o.Default, "default", o.Default, "Default value printed by quiet conversions.")
	return cmd
}

func (o *ToOptions) Validate(args []string) error {
	if _, ok := targetKinds[args[0]]; !ok {
		return fmt.Errorf("kind must be one of (%s)", strings.Join(kindNames(), ", "))
	}
	return o.GlobalOptions.Validate(args)
}

func (o *ToOptions) Run(cmd *cobra.Command, args []string) error {
	value, err := o.converter.ConvertWithCheck(targetKinds[args[0]], args[1], o.Default, o.Quiet)
	if err != nil {
		return err
	}
	return o.print(cmd, value)
}

func kindNames() []string {
	names := lo.Keys(targetKinds)
	sort.Strings(names)
	return names
}
