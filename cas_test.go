// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"robpike.io/cas/config"
	"robpike.io/cas/expr"
	"robpike.io/cas/parse"
	"robpike.io/cas/scan"
)

var testConf config.Config

// TestAll runs the testdata transcripts: lines of input in the left
// column, each followed by its expected output indented with a tab.
func TestAll(t *testing.T) {
	expr.SetConfig(&testConf)

	dir, err := os.Open("testdata")
	require.NoError(t, err)
	names, err := dir.Readdirnames(0)
	require.NoError(t, err)
	for _, name := range names {
		if !strings.HasSuffix(name, ".cas") {
			continue
		}
		path := filepath.Join("testdata", name)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		lines := strings.Split(string(data), "\n")
		// Will have a trailing empty string.
		if len(lines) > 0 && lines[len(lines)-1] == "" {
			lines = lines[:len(lines)-1]
		}
		lineNum := 1
		errCount := 0
		for len(lines) > 0 {
			input, output, length := getText(t, path, lineNum, lines)
			if input == nil {
				break
			}
			if !runTest(t, path, lineNum, input, output) {
				errCount++
				if errCount > 3 {
					t.Fatal("too many errors")
				}
			}
			lines = lines[length:]
			lineNum += length
		}
	}
}

func runTest(t *testing.T, name string, lineNum int, input, output []string) bool {
	scanner := scan.New(&testConf, name, strings.NewReader(strings.Join(input, "\n")+"\n"))
	parser := parse.NewParser(&testConf, name, scanner)
	var testBuf bytes.Buffer
	run(parser, &testBuf, false)
	result := testBuf.String()
	if !equal(strings.Split(result, "\n"), output) {
		t.Errorf("\n%s:%d:\n%s\ngot:\n%swant:\n%s",
			name, lineNum,
			strings.Join(input, "\n"), result, strings.Join(output, "\n"))
		return false
	}
	return true
}

func equal(a, b []string) bool {
	// Split leaves an empty trailing line.
	if len(a) > 0 && a[len(a)-1] == "" {
		a = a[:len(a)-1]
	}
	if len(a) != len(b) {
		return false
	}
	for i, s := range a {
		if strings.TrimSpace(s) != strings.TrimSpace(b[i]) {
			return false
		}
	}
	return true
}

// getText returns the next block of the transcript: the input lines,
// the expected output lines, and how many raw lines the block spans.
func getText(t *testing.T, fileName string, lineNum int, lines []string) (input, output []string, length int) {
	// Skip blank and comment lines.
	for _, line := range lines {
		if len(line) > 0 && !strings.HasPrefix(line, "#") {
			break
		}
		length++
	}
	// Input starts in the left column.
	for _, line := range lines[length:] {
		if len(line) == 0 {
			t.Fatalf("%s:%d: unexpected empty line", fileName, lineNum+length)
		}
		if strings.HasPrefix(line, "\t") {
			break
		}
		input = append(input, line)
		length++
	}
	// Output is tab-indented.
	for _, line := range lines[length:] {
		if !strings.HasPrefix(line, "\t") {
			break
		}
		output = append(output, strings.TrimPrefix(line, "\t"))
		length++
	}
	return input, output, length
}
