// Package check runs the validator over whole files and trees. Each
// file gets one verdict: how many complete statements it holds and the
// first defect, if any.
package check

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dhamidi/clasp/meta"
)

// Defect classifies what is wrong with a source.
type Defect int

const (
	DefectNone Defect = iota
	DefectMismatch
	DefectOpenComment
	DefectOpenStatement
)

var defectNames = map[Defect]string{
	DefectNone:          "None",
	DefectMismatch:      "Mismatch",
	DefectOpenComment:   "OpenComment",
	DefectOpenStatement: "OpenStatement",
}

func (d Defect) String() string {
	if name, ok := defectNames[d]; ok {
		return name
	}
	return "Unknown"
}

// Verdict is the outcome of checking one source.
type Verdict struct {
	Name       string
	Statements int
	Defect     Defect
	// Line is where the defect sits: the mismatching line, or the last
	// line of the file for end-of-file defects.
	Line int
}

func (v Verdict) OK() bool {
	return v.Defect == DefectNone
}

func (v Verdict) String() string {
	switch v.Defect {
	case DefectMismatch:
		return fmt.Sprintf("%s:%d: mismatched closing bracket", v.Name, v.Line)
	case DefectOpenComment:
		return fmt.Sprintf("%s:%d: unterminated block comment at end of file", v.Name, v.Line)
	case DefectOpenStatement:
		return fmt.Sprintf("%s:%d: unterminated statement at end of file", v.Name, v.Line)
	}
	plural := "s"
	if v.Statements == 1 {
		plural = ""
	}
	return fmt.Sprintf("%s: %d statement%s", v.Name, v.Statements, plural)
}

// Reader checks one stream line by line. Scanning stops at the first
// mismatch; an input that ends with open state is reported as an open
// comment or an open statement.
func Reader(r io.Reader, name string) (Verdict, error) {
	verdict := Verdict{Name: name}
	v := meta.NewValidator()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		switch v.Validate(sc.Text()) {
		case meta.Complete:
			if strings.TrimSpace(v.Input()) != "" {
				verdict.Statements++
			}
			v.Reset()
		case meta.Mismatch:
			verdict.Defect = DefectMismatch
			verdict.Line = lineNo
			return verdict, nil
		}
	}
	if err := sc.Err(); err != nil {
		return verdict, fmt.Errorf("read %s: %w", name, err)
	}
	if v.Depth() > 0 {
		if v.InBlockComment() {
			verdict.Defect = DefectOpenComment
		} else {
			verdict.Defect = DefectOpenStatement
		}
		verdict.Line = lineNo
	}
	return verdict, nil
}

// File checks one file on disk.
func File(path string) (Verdict, error) {
	f, err := os.Open(path)
	if err != nil {
		return Verdict{Name: path}, fmt.Errorf("check %s: %w", path, err)
	}
	defer f.Close()
	return Reader(f, path)
}

// sourceExtensions are the files Dir and the watcher pick up. Both
// cases of .c are listed: .C is C++ by convention.
var sourceExtensions = []string{".c", ".h", ".cc", ".hh", ".cpp", ".hpp", ".cxx", ".C"}

// IsSourceFile reports whether path names a C-family source file.
func IsSourceFile(path string) bool {
	return slices.Contains(sourceExtensions, filepath.Ext(path))
}

// Dir checks every C-family source file under root, skipping hidden
// directories. Verdicts come back in walk order.
func Dir(root string) ([]Verdict, error) {
	var verdicts []Verdict
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if !IsSourceFile(path) {
			return nil
		}
		v, err := File(path)
		if err != nil {
			return err
		}
		verdicts = append(verdicts, v)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("check %s: %w", root, err)
	}
	return verdicts, nil
}
