package cli

import (
	"github.com/spf13/cobra"
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   appName,
		Short: appName + " converts values between types and numeral text forms",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}
	cmd.AddCommand(NewCmdTo())
	cmd.AddCommand(NewCmdChinese())
	cmd.AddCommand(NewCmdNumber())
	cmd.AddCommand(NewCmdWords())
	cmd.AddCommand(NewCmdSimple())
	cmd.AddCommand(NewCmdHex())
	return cmd
}
