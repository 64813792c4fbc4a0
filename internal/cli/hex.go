package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viant/xconv"
	"github.com/viant/xconv/codec"
)

const (
	hexEncode = "encode"
	hexDecode = "decode"
)

type HexOptions struct {
	GlobalOptions

	Charset string
}

func DefaultHexOptions() *HexOptions {
	return &HexOptions{GlobalOptions: DefaultGlobalOptions(), Charset: codec.DefaultCharset}
}

func NewCmdHex() *cobra.Command {
	o := DefaultHexOptions()
	cmd := &cobra.Command{
		Use:   "hex (encode|decode) TEXT",
		Short: "Encode text as hex or decode hex to text.",
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
	cmd.Flags().StringVar(&o.Charset, "charset", o.Charset, "Character set of the text.")
	return cmd
}

func (o *HexOptions) Validate(args []string) error {
	if args[0] != hexEncode && args[0] != hexDecode {
		return fmt.Errorf("hex action must be one of (%s, %s)", hexEncode, hexDecode)
	}
	return o.GlobalOptions.Validate(args)
}

func (o *HexOptions) Run(cmd *cobra.Command, args []string) error {
	var text string
	var err error
	if args[0] == hexEncode {
		text, err = xconv.StrToHex(args[1], o.Charset)
	} else {
		text, err = xconv.HexToStr(args[1], o.Charset)
	}
	if err != nil {
		return err
	}
	return o.print(cmd, text)
}
