package pure_utils

import "strings"

const utf8Bom = "\xef\xbb\xbf"

// TrimBom strips a leading UTF-8 byte order mark, which spreadsheet tools
// routinely prepend when exporting delimited text.
func TrimBom(s string) string {
	return strings.TrimPrefix(s, utf8Bom)
}
