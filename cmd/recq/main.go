// Command recq runs recq collection operations over a JSON or MsgPack file.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/andreyvit/recq"
)

type app struct {
	file      string
	format    string
	output    string
	outFormat string
	inPlace   bool
	verbose   bool

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func main() {
	a := &app{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
	if err := newRootCmd(a).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "recq",
		Short:         "Query and edit record collections stored as JSON or MsgPack",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if a.verbose {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}
		},
	}
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	f := root.PersistentFlags()
	f.StringVarP(&a.file, "file", "f", "-", "collection file (- for stdin)")
	f.StringVar(&a.format, "format", "", "input encoding: json or msgpack (default: by file extension)")
	f.StringVarP(&a.output, "output", "o", "", "write results to this file instead of stdout")
	f.StringVar(&a.outFormat, "out-format", "", "output encoding (default: by output extension, else input encoding)")
	f.BoolVarP(&a.inPlace, "in-place", "i", false, "write modified collections back to --file")
	f.BoolVarP(&a.verbose, "verbose", "v", false, "log every mutation")

	root.AddCommand(
		newFindCmd(a),
		newGetCmd(a),
		newUpdateCmd(a),
		newDeleteCmd(a),
		newDeleteWhereCmd(a),
		newDeleteAtCmd(a),
		newIDsCmd(a),
		newDumpCmd(a),
	)
	return root
}

func (a *app) inputEncoding() (recq.Encoding, error) {
	if a.format != "" {
		return recq.ParseEncoding(a.format)
	}
	return recq.EncodingForPath(a.file), nil
}

func (a *app) outputEncoding() (recq.Encoding, error) {
	switch {
	case a.outFormat != "":
		return recq.ParseEncoding(a.outFormat)
	case a.output != "":
		return recq.EncodingForPath(a.output), nil
	default:
		return a.inputEncoding()
	}
}

func (a *app) load() (recq.Collection, error) {
	enc, err := a.inputEncoding()
	if err != nil {
		return nil, err
	}
	var data []byte
	if a.file == "-" || a.file == "" {
		data, err = io.ReadAll(a.stdin)
	} else {
		data, err = os.ReadFile(a.file)
	}
	if err != nil {
		return nil, fmt.Errorf("reading collection: %w", err)
	}
	c, err := enc.DecodeCollection(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.file, err)
	}
	return c, nil
}

func (a *app) writeValue(v recq.Value) error {
	enc, err := a.outputEncoding()
	if err != nil {
		return err
	}
	data, err := enc.Encode(v)
	if err != nil {
		return err
	}
	if enc == recq.JSON {
		data = append(data, '\n')
	}
	return a.writeRaw(a.output, data)
}

// writeCollection emits a modified collection, back into --file when
// --in-place is set.
func (a *app) writeCollection(c recq.Collection) error {
	if !a.inPlace {
		return a.writeValue(recq.ListOf(c...))
	}
	if a.file == "-" || a.file == "" {
		return fmt.Errorf("--in-place requires --file")
	}
	enc, err := a.inputEncoding()
	if err != nil {
		return err
	}
	data, err := enc.EncodeCollection(c)
	if err != nil {
		return err
	}
	return a.writeRaw(a.file, data)
}

func (a *app) writeRaw(path string, data []byte) error {
	if path == "" {
		_, err := a.stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
