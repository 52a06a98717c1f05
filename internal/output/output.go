// Package output renders search results in the line format written next to
// the input puzzle:
//
//	WORD (startCol, startRow) (endCol, endRow)
//	WORD not found
package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/heartmarshall/wordsearch/internal/domain"
)

// DefaultExtension is the extension of the result file.
const DefaultExtension = ".output"

// FormatEntry renders one result line without the trailing newline.
func FormatEntry(e domain.Entry) string {
	if !e.Match.Found {
		return e.Word + " not found"
	}
	return fmt.Sprintf("%s %s %s", e.Word, e.Match.Start, e.Match.End)
}

// Write renders every entry of r to w, one line each.
func Write(w io.Writer, r domain.Result) error {
	bw := bufio.NewWriter(w)
	for _, e := range r.Entries() {
		if _, err := bw.WriteString(FormatEntry(e) + "\n"); err != nil {
			return fmt.Errorf("write entry %s: %w", e.Word, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}

// PathFor returns the sibling result path of input: same directory and base
// name, extension replaced by ext. An empty ext means DefaultExtension.
func PathFor(input, ext string) string {
	if ext == "" {
		ext = DefaultExtension
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + ext
}

// WriteFile creates or truncates path and writes r to it.
func WriteFile(path string, r domain.Result) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output file: %w", cerr)
		}
	}()

	return Write(f, r)
}
