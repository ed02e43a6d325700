package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/saintfish/chardet"
	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/userdirs/pkg/fsn"
	"github.com/GriffinCanCode/userdirs/pkg/userdirs"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose filename-encoding configuration",
	Long: `doctor reports the effective filename encoding and attempts every
directory lookup. When a lookup fails to convert, doctor additionally
guesses what encoding the raw bytes look like. The guess is a hint for
fixing G_FILENAME_ENCODING only; it is never used to decode anything.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDoctor(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(out io.Writer) error {
	dec := fsn.ForPlatform()
	fmt.Fprintf(out, "assumed filename encoding: %s\n", dec.Encoding())
	for _, key := range []string{"G_FILENAME_ENCODING", "LC_ALL", "LC_CTYPE", "LANG"} {
		if v, ok := os.LookupEnv(key); ok {
			fmt.Fprintf(out, "%s=%s\n", key, v)
		} else {
			fmt.Fprintf(out, "%s is unset\n", key)
		}
	}
	fmt.Fprintln(out)

	acc := userdirs.New(userdirs.WithDecoder(dec))
	checks := []struct {
		kind string
		fn   func() (string, error)
	}{
		{"config", acc.ConfigDir},
		{"data", acc.DataDir},
		{"cache", acc.CacheDir},
	}
	for _, s := range userdirs.Specials() {
		checks = append(checks, struct {
			kind string
			fn   func() (string, error)
		}{s.String(), func() (string, error) { return acc.SpecialDir(s) }})
	}

	failed := 0
	for _, c := range checks {
		dir, err := c.fn()
		switch {
		case err != nil:
			failed++
			fmt.Fprintf(out, "%-12s FAILED: %v\n", c.kind, err)
			if hint := encodingHint(err); hint != "" {
				fmt.Fprintf(out, "%-12s hint: %s\n", "", hint)
			}
		case dir == "":
			fmt.Fprintf(out, "%-12s (not defined)\n", c.kind)
		default:
			fmt.Fprintf(out, "%-12s ok: %s\n", c.kind, dir)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d directory lookup(s) failed to convert", failed)
	}
	return nil
}

// encodingHint guesses what encoding the offending bytes of a decode
// failure look like. The guess is advisory only and never feeds back into
// decoding.
func encodingHint(err error) string {
	var decErr *fsn.DecodeError
	if !errors.As(err, &decErr) || len(decErr.Input) == 0 {
		return ""
	}
	best, err := chardet.NewTextDetector().DetectBest(decErr.Input)
	if err != nil || best == nil {
		return ""
	}
	return fmt.Sprintf("bytes look like %s (confidence %d%%); try G_FILENAME_ENCODING=%s",
		best.Charset, best.Confidence, best.Charset)
}
