package cli

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/viant/xconv"
	"github.com/viant/xconv/conv"
	"github.com/viant/xconv/desc"
)

const appName = "xconv"

type GlobalOptions struct {
	ConfigFilePath string
	Verbose        bool

	converter *xconv.Converter
}

func DefaultGlobalOptions() GlobalOptions {
	return GlobalOptions{}
}

func (o *GlobalOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.ConfigFilePath, "config", "c", o.ConfigFilePath, "Read conversion options from a YAML file.")
	fs.BoolVarP(&o.Verbose, "verbose", "v", o.Verbose, "Log conversion details.")
}

func (o *GlobalOptions) Complete(cmd *cobra.Command, args []string) error {
	options := conv.DefaultOptions()
	if o.ConfigFilePath != "" {
		var err error
		if options, err = conv.LoadOptions(o.ConfigFilePath); err != nil {
			return err
		}
	}
	o.converter = xconv.New(xconv.WithOptions(options), xconv.WithLogger(newLogger(cmd.ErrOrStderr(), o.Verbose)))
	return nil
}

func (o *GlobalOptions) Validate(args []string) error {
	return nil
}

// print writes value converted to text
func (o *GlobalOptions) print(cmd *cobra.Command, value interface{}) error {
	text, err := o.converter.Convert(desc.Of[string](), value)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
	return err
}

func newLogger(out io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetReportCaller(true)
	log.SetLevel(logrus.WarnLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}
