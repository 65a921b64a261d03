package uploadparser

import (
	"testing"

	"github.com/nuam-exchange/taxrating-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestParsePipeDelimited(t *testing.T) {
	content := "issuer_codigo|instrument_codigo|rating|valid_from\n" +
		"EMI001|INS001|AAA|2025-01-01\n" +
		"EMI002|INS002|BB|2025-02-01\n"

	parsed, err := Parse(content)
	assert.NoError(t, err)
	assert.Equal(t, []string{"issuer_codigo", "instrument_codigo", "rating", "valid_from"}, parsed.Header)
	assert.Len(t, parsed.Rows, 2)
	assert.Equal(t, 1, parsed.Rows[0].Number)
	assert.Equal(t, "EMI001", parsed.Rows[0].Fields["issuer_codigo"])
	assert.Equal(t, 2, parsed.Rows[1].Number)
	assert.Equal(t, "BB", parsed.Rows[1].Fields["rating"])
}

func TestParseTabDelimited(t *testing.T) {
	content := "issuer_codigo\tinstrument_codigo\trating\tvalid_from\n" +
		"EMI001\tINS001\tAAA\t2025-01-01\n"

	parsed, err := Parse(content)
	assert.NoError(t, err)
	assert.Len(t, parsed.Header, 4)
	assert.Len(t, parsed.Rows, 1)
	assert.Equal(t, "INS001", parsed.Rows[0].Fields["instrument_codigo"])
}

func TestParseTabWinsOverPipe(t *testing.T) {
	// a tab in the header selects tab even when values contain pipes
	content := "codigo\tcomments\n" +
		"EMI001\tpipe | inside a comment\n"

	parsed, err := Parse(content)
	assert.NoError(t, err)
	assert.Equal(t, "pipe | inside a comment", parsed.Rows[0].Fields["comments"])
}

func TestParseSkipsBlankLinesWithoutConsumingNumbers(t *testing.T) {
	content := "issuer_codigo|rating\n" +
		"EMI001|AAA\n" +
		"\n" +
		"   \n" +
		"EMI002|BB\n"

	parsed, err := Parse(content)
	assert.NoError(t, err)
	assert.Len(t, parsed.Rows, 2)
	assert.Equal(t, 1, parsed.Rows[0].Number)
	assert.Equal(t, 2, parsed.Rows[1].Number)
}

func TestParseColumnCountMismatch(t *testing.T) {
	content := "issuer_codigo|instrument_codigo|rating\n" +
		"EMI001|INS001\n" +
		"EMI002|INS002|AAA|extra\n" +
		"EMI003|INS003|BB\n"

	parsed, err := Parse(content)
	assert.NoError(t, err)
	assert.Len(t, parsed.Rows, 3)
	assert.True(t, parsed.Rows[0].ColumnCountMismatch)
	assert.True(t, parsed.Rows[1].ColumnCountMismatch)
	assert.False(t, parsed.Rows[2].ColumnCountMismatch)
	// numbering stays continuous through mismatching rows
	assert.Equal(t, 3, parsed.Rows[2].Number)
}

func TestParseKeepsSurplusTokens(t *testing.T) {
	content := "issuer_codigo|instrument_codigo|rating\n" +
		"EMI001|INS001|AAA|2025-01-01|stray\n"

	parsed, err := Parse(content)
	assert.NoError(t, err)
	assert.True(t, parsed.Rows[0].ColumnCountMismatch)
	// everything the line carried stays visible in the raw mapping
	assert.Equal(t, "AAA", parsed.Rows[0].Fields["rating"])
	assert.Equal(t, "2025-01-01", parsed.Rows[0].Fields["column_4"])
	assert.Equal(t, "stray", parsed.Rows[0].Fields["column_5"])
}

func TestParseTrimsFieldsAndBom(t *testing.T) {
	content := "\xef\xbb\xbfissuer_codigo | rating \n" +
		" EMI001 | AAA \r\n"

	parsed, err := Parse(content)
	assert.NoError(t, err)
	assert.Equal(t, []string{"issuer_codigo", "rating"}, parsed.Header)
	assert.Equal(t, "EMI001", parsed.Rows[0].Fields["issuer_codigo"])
	assert.Equal(t, "AAA", parsed.Rows[0].Fields["rating"])
}

func TestParseEmptyFile(t *testing.T) {
	_, err := Parse("")
	assert.ErrorIs(t, err, models.ErrUnparsableUploadFile)

	_, err = Parse("\n  \n\n")
	assert.ErrorIs(t, err, models.ErrUnparsableUploadFile)
}

func TestParseBlankHeaderField(t *testing.T) {
	_, err := Parse("issuer_codigo||rating\nEMI001|x|AAA\n")
	assert.ErrorIs(t, err, models.ErrUnparsableUploadFile)
}

func TestParseHeaderOnly(t *testing.T) {
	parsed, err := Parse("issuer_codigo|instrument_codigo|rating|valid_from\n")
	assert.NoError(t, err)
	assert.Empty(t, parsed.Rows)
}
