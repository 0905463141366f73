package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/skooma/pkg/schemafile"
)

// RunLint loads and compiles each schema file, reporting problems without
// validating any data. It returns an error if any file fails to compile.
func RunLint(paths []string, out io.Writer) error {
	if out == nil {
		out = os.Stdout
	}

	failures := 0
	for _, path := range paths {
		def, err := schemafile.Load(path)
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", path, err)
			failures++
			continue
		}
		if _, err := def.Compile(); err != nil {
			fmt.Fprintf(out, "%s: %v\n", path, err)
			failures++
			continue
		}
		fmt.Fprintf(out, "%s: ok (%d columns)\n", path, len(def.Columns))
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d schema files failed", failures, len(paths))
	}
	return nil
}
