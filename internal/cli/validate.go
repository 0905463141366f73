package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/skooma/internal/presentation"
	"github.com/aretw0/skooma/pkg/dataframe"
	"github.com/aretw0/skooma/pkg/schemafile"
)

// ValidateOptions contains all the configuration for the validate command.
type ValidateOptions struct {
	SchemaPath string
	DataPath   string
	Format     string // plain, table or markdown
	Delimiter  string
	NoInfer    bool
	Out        io.Writer
}

// RunValidate loads a schema definition and a data file, validates the data
// and renders the report. It returns whether the table passed validation.
func RunValidate(opts ValidateOptions) (bool, error) {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	def, err := schemafile.Load(opts.SchemaPath)
	if err != nil {
		return false, fmt.Errorf("loading schema %s: %w", opts.SchemaPath, err)
	}
	schema, err := def.Compile()
	if err != nil {
		return false, fmt.Errorf("compiling schema %s: %w", opts.SchemaPath, err)
	}

	f, err := os.Open(opts.DataPath)
	if err != nil {
		return false, err
	}
	defer f.Close()

	var frame *dataframe.Frame
	switch ext := strings.ToLower(filepath.Ext(opts.DataPath)); ext {
	case ".csv":
		var csvOpts []dataframe.CSVOption
		if opts.Delimiter != "" {
			csvOpts = append(csvOpts, dataframe.WithDelimiter(rune(opts.Delimiter[0])))
		}
		if opts.NoInfer {
			csvOpts = append(csvOpts, dataframe.WithoutInference())
		}
		frame, err = dataframe.FromCSV(f, csvOpts...)
	case ".json":
		frame, err = dataframe.FromJSON(f)
	default:
		return false, fmt.Errorf("unsupported data format %q (want .csv or .json)", ext)
	}
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", opts.DataPath, err)
	}

	report := schema.Validate(frame)

	source := filepath.Base(opts.DataPath)
	switch opts.Format {
	case "", "plain":
		presentation.WritePlain(opts.Out, source, report)
	case "table":
		presentation.WriteTable(opts.Out, source, report)
	case "markdown":
		presentation.WriteMarkdown(opts.Out, source, report)
	default:
		return false, fmt.Errorf("unknown output format %q (want plain, table or markdown)", opts.Format)
	}

	return report.Valid(), nil
}
