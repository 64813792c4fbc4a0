package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viant/xconv"
	"github.com/viant/xconv/desc"
	"github.com/viant/xconv/numeral"
)

type ChineseOptions struct {
	GlobalOptions

	Financial bool
	Money     bool
}

func DefaultChineseOptions() *ChineseOptions {
	return &ChineseOptions{GlobalOptions: DefaultGlobalOptions()}
}

func NewCmdChinese() *cobra.Command {
	o := DefaultChineseOptions()
	cmd := &cobra.Command{
		Use:   "chinese NUMBER",
		Short: "Format number as Chinese numeral text.",
		Args:  cobra.ExactArgs(1),
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
	cmd.Flags().BoolVar(&o.Financial, "financial", o.Financial, "Use financial glyphs.")
	cmd.Flags().BoolVar(&o.Money, "money", o.Money, "Format as money amount with 元角分 units.")
	return cmd
}

func (o *ChineseOptions) Validate(args []string) error {
	if o.Financial && o.Money {
		return fmt.Errorf("financial and money flags are mutually exclusive")
	}
	return o.GlobalOptions.Validate(args)
}

func (o *ChineseOptions) Run(cmd *cobra.Command, args []string) error {
	target := desc.Of[numeral.Chinese]()
	switch {
	case o.Financial:
		target = desc.Of[numeral.ChineseFinancial]()
	case o.Money:
		target = desc.Of[numeral.ChineseMoney]()
	}
	value, err := o.converter.Convert(target, args[0])
	if err != nil {
		return err
	}
	return o.print(cmd, value)
}

// NewCmdNumber parses Chinese numeral text
func NewCmdNumber() *cobra.Command {
	o := DefaultGlobalOptions()
	return newTextCommand("number TEXT", "Parse Chinese numeral text.", &o, func(cmd *cobra.Command, text string) error {
		value, err := numeral.ParseChinese(text)
		if err != nil {
			return err
		}
		return o.print(cmd, value)
	})
}

func NewCmdWords() *cobra.Command {
	o := DefaultGlobalOptions()
	return newTextCommand("words NUMBER", "Format number as English amount words.", &o, func(cmd *cobra.Command, text string) error {
		number, err := o.converter.Convert(desc.Of[float64](), text)
		if err != nil {
			return err
		}
		return o.print(cmd, xconv.NumberToWord(number.(float64)))
	})
}

func NewCmdSimple() *cobra.Command {
	o := DefaultGlobalOptions()
	return newTextCommand("simple NUMBER", "Format number in compact form.", &o, func(cmd *cobra.Command, text string) error {
		number, err := o.converter.Convert(desc.Of[float64](), text)
		if err != nil {
			return err
		}
		return o.print(cmd, xconv.NumberToSimple(number.(float64)))
	})
}

func newTextCommand(use, short string, o *GlobalOptions, run func(cmd *cobra.Command, text string) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return run(cmd, args[0])
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}
