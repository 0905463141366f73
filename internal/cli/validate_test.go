package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `name: orders
columns:
  id:
    type: integer
    predicate: positive
  amount: float
  currency: string
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunValidate(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "orders.yaml", testSchema)

	t.Run("Valid CSV", func(t *testing.T) {
		dataPath := writeFile(t, dir, "good.csv", "id,amount,currency\n1,9.99,EUR\n2,5.00,USD\n")

		var out bytes.Buffer
		valid, err := RunValidate(ValidateOptions{
			SchemaPath: schemaPath,
			DataPath:   dataPath,
			Out:        &out,
		})
		require.NoError(t, err)
		assert.True(t, valid)
		assert.Contains(t, out.String(), "good.csv")
	})

	t.Run("Invalid CSV reports violations", func(t *testing.T) {
		dataPath := writeFile(t, dir, "bad.csv", "id,amount,currency\n-1,9.99,EUR\n")

		var out bytes.Buffer
		valid, err := RunValidate(ValidateOptions{
			SchemaPath: schemaPath,
			DataPath:   dataPath,
			Out:        &out,
		})
		require.NoError(t, err)
		assert.False(t, valid)
		assert.Contains(t, out.String(), "Invalid value in column 'id': -1")
	})

	t.Run("Valid JSON", func(t *testing.T) {
		dataPath := writeFile(t, dir, "good.json", `{"id": [1, 2], "amount": [1.5, 2.5], "currency": ["EUR", "USD"]}`)

		var out bytes.Buffer
		valid, err := RunValidate(ValidateOptions{
			SchemaPath: schemaPath,
			DataPath:   dataPath,
			Out:        &out,
		})
		require.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("Unsupported extension", func(t *testing.T) {
		dataPath := writeFile(t, dir, "data.txt", "whatever")

		_, err := RunValidate(ValidateOptions{
			SchemaPath: schemaPath,
			DataPath:   dataPath,
			Out:        &bytes.Buffer{},
		})
		assert.ErrorContains(t, err, "unsupported data format")
	})

	t.Run("Unknown format", func(t *testing.T) {
		dataPath := writeFile(t, dir, "ok.csv", "id,amount,currency\n1,1.0,EUR\n")

		_, err := RunValidate(ValidateOptions{
			SchemaPath: schemaPath,
			DataPath:   dataPath,
			Format:     "xml",
			Out:        &bytes.Buffer{},
		})
		assert.ErrorContains(t, err, "unknown output format")
	})

	t.Run("Missing schema file", func(t *testing.T) {
		_, err := RunValidate(ValidateOptions{
			SchemaPath: filepath.Join(dir, "nope.yaml"),
			DataPath:   filepath.Join(dir, "good.csv"),
			Out:        &bytes.Buffer{},
		})
		assert.Error(t, err)
	})
}

func TestRunValidateSemicolonDelimiter(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "orders.yaml", testSchema)
	dataPath := writeFile(t, dir, "semi.csv", "id;amount;currency\n1;9.99;EUR\n")

	var out bytes.Buffer
	valid, err := RunValidate(ValidateOptions{
		SchemaPath: schemaPath,
		DataPath:   dataPath,
		Delimiter:  ";",
		Out:        &out,
	})
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestRunLint(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.yaml", testSchema)
	bad := writeFile(t, dir, "bad.yaml", "columns:\n  id:\n    type: integer\n    predicate: no_such_predicate\n")

	t.Run("All good", func(t *testing.T) {
		var out bytes.Buffer
		err := RunLint([]string{good}, &out)
		require.NoError(t, err)
		assert.Contains(t, out.String(), "ok (3 columns)")
	})

	t.Run("Reports failures", func(t *testing.T) {
		var out bytes.Buffer
		err := RunLint([]string{good, bad}, &out)
		assert.ErrorContains(t, err, "1 of 2 schema files failed")
		assert.Contains(t, out.String(), "no_such_predicate")
	})
}
