package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/deckjson/pkg/errors"
	deckio "github.com/matzehuels/deckjson/pkg/io"
	"github.com/matzehuels/deckjson/pkg/pipeline"
)

// stdio names standard input or output in place of a path.
const stdio = "-"

// defaultBase is the base output path when reading from stdin.
const defaultBase = "deck"

// outputExt maps each output format to the extension of its file.
var outputExt = map[string]string{
	pipeline.FormatJSON:    ".json",
	pipeline.FormatDialect: ".dialect.txt",
}

// serializeOpts holds the resolved flags of the serialize command.
type serializeOpts struct {
	output      string   // output file (single format), base path (multiple) or "-"
	formats     []string // output formats: "json", "dialect"
	inputFormat string   // input format override, required when reading stdin as JSON
	indent      string   // indentation for canonical JSON
	noRemap     bool     // keep attribute names as written
	block       []string // extra attribute names to drop
	noCache     bool     // bypass the artifact cache entirely
	refresh     bool     // re-serialize even when cached
	cacheScope  string   // cache key namespace, empty for the shared one
}

// serializeCommand creates the serialize command.
func (c *CLI) serializeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serialize <deck.toml|deck.json|->",
		Short: "Serialize a deck description to deck.gl JSON",
		Long: `Serialize reads a deck description and writes it in one or more formats:

  json     canonical JSON with sorted keys and camelCase attribute names
  dialect  the legacy text form (Python-style literals with quotes and
           booleans substituted)

With a single format and no --output the result is written to stdout.
With several formats the files are named after the input (deck.json,
deck.dialect.txt) or after --output when it is given.`,
		Example: `  deckjson serialize deck.toml
  deckjson serialize deck.toml -f json,dialect -o out/deck
  cat deck.json | deckjson serialize - --input-format json --indent "  "`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return c.bindFlags(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.serializeOptions()
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runSerialize(cmd.Context(), args[0], opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringP("output", "o", "", "output file (single format) or base path (multiple); '-' for stdout")
	flags.StringP("format", "f", pipeline.DefaultFormat, "output format(s): json (default), dialect (comma-separated)")
	flags.String("input-format", "", "input format: toml, json (default: from file extension, toml for stdin)")
	flags.String("indent", "", "indent canonical JSON with this string")
	flags.Bool("no-remap", false, "keep attribute names as written instead of camelCase")
	flags.StringSlice("block", nil, "additional attribute names to omit (repeatable)")
	flags.Bool("no-cache", false, "disable the artifact cache")
	flags.Bool("refresh", false, "ignore cached artifacts and serialize again")
	flags.String("cache-scope", "", "keep cached artifacts in a separate namespace")

	return cmd
}

// serializeOptions resolves the serialize flags through the config layer.
func (c *CLI) serializeOptions() serializeOpts {
	v := c.config
	return serializeOpts{
		output:      v.GetString("output"),
		formats:     parseFormats(v.GetString("format")),
		inputFormat: strings.ToLower(v.GetString("input-format")),
		indent:      v.GetString("indent"),
		noRemap:     v.GetBool("no-remap"),
		block:       v.GetStringSlice("block"),
		noCache:     v.GetBool("no-cache"),
		refresh:     v.GetBool("refresh"),
		cacheScope:  strings.TrimSpace(v.GetString("cache-scope")),
	}
}

// runSerialize loads input, serializes it in every requested format and
// writes the artifacts.
func (c *CLI) runSerialize(ctx context.Context, input string, opts serializeOpts, stdin io.Reader, stdout io.Writer) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	data, format, err := readInput(input, opts.inputFormat, stdin)
	if err != nil {
		return err
	}
	logger.Debugf("Read %s (%s, %d bytes)", sourceName(input), format, len(data))

	runner, err := c.newRunner(opts.noCache, opts.cacheScope)
	if err != nil {
		return err
	}
	defer runner.Close()

	result, err := runner.Execute(ctx, pipeline.Options{
		Input:       data,
		InputFormat: format,
		Source:      sourceName(input),
		Refresh:     opts.refresh,
		Formats:     opts.formats,
		Indent:      opts.indent,
		NoRemap:     opts.noRemap,
		BlockList:   opts.block,
	})
	if err != nil {
		return err
	}

	if writesToStdout(opts) {
		for _, f := range opts.formats {
			if err := deckio.WriteText(stdout, string(result.Artifacts[f])); err != nil {
				return err
			}
		}
		return nil
	}

	paths, err := outputPaths(input, opts)
	if err != nil {
		return err
	}
	for _, f := range opts.formats {
		if err := deckio.ExportText(paths[f], string(result.Artifacts[f])); err != nil {
			return err
		}
	}
	prog.done(fmt.Sprintf("Wrote %d artifact(s)", len(opts.formats)))

	printSuccess("Serialized %s", sourceName(input))
	printStats(result.Stats.LayerCount, len(opts.formats), result.CacheInfo.SerializeHit)
	for _, f := range opts.formats {
		printFile(paths[f])
	}
	return nil
}

// readInput returns the document bytes and their format. A path of "-"
// reads stdin, which is TOML unless inputFormat says otherwise.
func readInput(input, inputFormat string, stdin io.Reader) ([]byte, string, error) {
	if input == stdio {
		format := inputFormat
		if format == "" {
			format = deckio.FormatTOML
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, "", errors.Wrap(errors.ErrCodeInvalidInput, err, "read stdin")
		}
		return data, format, nil
	}

	format := inputFormat
	if format == "" {
		var err error
		if format, err = deckio.FormatFromPath(input); err != nil {
			return nil, "", err
		}
	}
	data, err := deckio.ReadFile(input)
	if err != nil {
		return nil, "", err
	}
	return data, format, nil
}

// sourceName labels input in logs and messages.
func sourceName(input string) string {
	if input == stdio {
		return pipeline.DefaultSource
	}
	return input
}

// writesToStdout reports whether artifacts go to stdout instead of files.
func writesToStdout(opts serializeOpts) bool {
	return opts.output == stdio || (opts.output == "" && len(opts.formats) == 1)
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output ends in a known artifact extension, that extension is stripped.
func basePath(output, input string) string {
	if output == "" {
		if input == stdio {
			return defaultBase
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	for _, ext := range outputExt {
		if strings.HasSuffix(output, ext) {
			return strings.TrimSuffix(output, ext)
		}
	}
	return output
}

// outputPaths maps each requested format to its output file. A single
// format with an explicit output writes exactly there.
func outputPaths(input string, opts serializeOpts) (map[string]string, error) {
	paths := make(map[string]string, len(opts.formats))
	if len(opts.formats) == 1 && opts.output != "" {
		paths[opts.formats[0]] = opts.output
	} else {
		base := basePath(opts.output, input)
		for _, f := range opts.formats {
			paths[f] = base + outputExt[f]
		}
	}

	if input != stdio {
		in := filepath.Clean(input)
		for _, p := range paths {
			if filepath.Clean(p) == in {
				return nil, errors.New(errors.ErrCodeInvalidPath, "output %s would overwrite the input", p)
			}
		}
	}
	return paths, nil
}
