package tabular

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidleathers/dialprep/internal/domain/errors"
	"github.com/davidleathers/dialprep/internal/domain/values"
)

func TestReadCSV(t *testing.T) {
	t.Run("parses headers and rows", func(t *testing.T) {
		input := "Phone1,Phone1 Type,Extra\n5551234567,Mobile,ignored\n5559876543,Landline,also ignored\n"

		table, err := ReadCSV(strings.NewReader(input))
		require.NoError(t, err)

		assert.Equal(t, []string{"Phone1", "Phone1 Type", "Extra"}, table.Headers())
		assert.Equal(t, 2, table.RowCount())
		assert.Equal(t, "5551234567", table.Cell(0, "Phone1"))
		assert.Equal(t, "Landline", table.Cell(1, "Phone1 Type"))
	})

	t.Run("column lookup is case-insensitive", func(t *testing.T) {
		input := "PHONE1,phone1 type\n5551234567,Mobile\n"

		table, err := ReadCSV(strings.NewReader(input))
		require.NoError(t, err)

		assert.True(t, table.HasColumn("Phone1"))
		assert.True(t, table.HasColumn("Phone1 Type"))
		assert.False(t, table.HasColumn("Phone2"))
		assert.Equal(t, "Mobile", table.Cell(0, "Phone1 Type"))
	})

	t.Run("strips utf8 bom from first header", func(t *testing.T) {
		input := "\uFEFFPhone1,Phone1 Type\n5551234567,Mobile\n"

		table, err := ReadCSV(strings.NewReader(input))
		require.NoError(t, err)

		assert.True(t, table.HasColumn("Phone1"))
		assert.Equal(t, "5551234567", table.Cell(0, "Phone1"))
	})

	t.Run("short rows read as empty cells", func(t *testing.T) {
		input := "Phone1,Phone1 Type\n5551234567\n"

		table, err := ReadCSV(strings.NewReader(input))
		require.NoError(t, err)

		assert.Equal(t, "5551234567", table.Cell(0, "Phone1"))
		assert.Equal(t, "", table.Cell(0, "Phone1 Type"))
	})

	t.Run("empty input is malformed", func(t *testing.T) {
		_, err := ReadCSV(strings.NewReader(""))
		require.Error(t, err)
		assert.Equal(t, "MALFORMED_INPUT", errors.Code(err))
	})

	t.Run("unparseable quoting is malformed", func(t *testing.T) {
		input := "Phone1,Phone1 Type\n\"unterminated,Mobile\n"

		_, err := ReadCSV(strings.NewReader(input))
		require.Error(t, err)
		assert.Equal(t, "MALFORMED_INPUT", errors.Code(err))
	})

	t.Run("out of range access is empty", func(t *testing.T) {
		table, err := ReadCSV(strings.NewReader("Phone1\n5551234567\n"))
		require.NoError(t, err)

		assert.Equal(t, "", table.Cell(5, "Phone1"))
		assert.Equal(t, "", table.Cell(0, "Missing"))
	})
}

func TestWriteNumbers(t *testing.T) {
	t.Run("headerless single column", func(t *testing.T) {
		numbers := []values.CleanNumber{
			values.MustNewCleanNumber("5551234567"),
			values.MustNewCleanNumber("5555555555"),
		}

		var buf bytes.Buffer
		require.NoError(t, WriteNumbers(&buf, numbers))

		assert.Equal(t, "5551234567\n5555555555\n", buf.String())
	})

	t.Run("empty list writes nothing", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteNumbers(&buf, nil))
		assert.Empty(t, buf.String())
	})
}
