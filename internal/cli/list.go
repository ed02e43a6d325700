package cli

import (
	"fmt"
	"io"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/userdirs/pkg/userdirs"
)

var listFormat string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every resolved user directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd.OutOrStdout(), listFormat)
	},
}

func init() {
	listCmd.Flags().StringVarP(&listFormat, "format", "f", "text", "Output format: text, json, or yaml")
	rootCmd.AddCommand(listCmd)
}

func runList(out io.Writer, format string) error {
	rep, err := buildReport(userdirs.New())
	if err != nil {
		return err
	}
	return writeReport(out, rep, format)
}

func writeReport(out io.Writer, rep *Report, format string) error {
	switch format {
	case "text":
		rep.writeText(out)
		return nil
	case "json":
		data, err := sonic.MarshalIndent(rep, "", "  ")
		if err != nil {
			return err
		}
		_, err = out.Write(append(data, '\n'))
		return err
	case "yaml":
		data, err := yaml.Marshal(rep)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	default:
		return fmt.Errorf("unknown format %q (want text, json, or yaml)", format)
	}
}
