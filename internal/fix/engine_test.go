package fix

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tsfix/internal/diag"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func TestApplyNarrowsBraceImport(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "page.tsx",
		"import { A, B, C } from 'x';\n"+
			"export const v = A + C;\n")

	res, err := Apply([]diag.Diagnostic{{File: path, Line: 1, Import: "B"}}, Options{})
	require.NoError(t, err)
	require.Len(t, res.Changed, 1)
	assert.Equal(t, FileChange{Path: path, EditCount: 1}, res.Changed[0])
	assert.Empty(t, res.Skipped)

	assert.Equal(t,
		"import { A, C } from 'x';\n"+
			"export const v = A + C;\n",
		readFile(t, path))
}

func TestApplyRemovesLineWhenListEmpties(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "api.ts",
		"import { A } from 'x';\n"+
			"export const v = 1;\n")

	_, err := Apply([]diag.Diagnostic{{File: path, Line: 1, Import: "A"}}, Options{})
	require.NoError(t, err)
	assert.Equal(t, "export const v = 1;\n", readFile(t, path))
}

func TestApplySentinelRemovesAnyLine(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "page.tsx",
		"import React, { useState } from 'react';\n"+
			"export const v = 1;\n")

	// The sentinel wins even when single-name records target the same line.
	records := []diag.Diagnostic{
		{File: path, Line: 1, Import: "useState"},
		{File: path, Line: 1, Import: diag.ImportAll},
	}
	_, err := Apply(records, Options{})
	require.NoError(t, err)
	assert.Equal(t, "export const v = 1;\n", readFile(t, path))
}

func TestApplyMultipleNamesOnOneLine(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "util.ts",
		"import { A, B, C } from 'x';\n"+
			"export const v = C;\n")

	records := []diag.Diagnostic{
		{File: path, Line: 1, Import: "A"},
		{File: path, Line: 1, Import: "B"},
	}
	_, err := Apply(records, Options{})
	require.NoError(t, err)
	assert.Equal(t,
		"import { C } from 'x';\n"+
			"export const v = C;\n",
		readFile(t, path))
}

func TestApplyEditsMultipleLinesDescending(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "page.tsx",
		"import { A } from 'a';\n"+
			"import { B, C } from 'b';\n"+
			"import D from 'd';\n"+
			"export const v = C;\n")

	records := []diag.Diagnostic{
		{File: path, Line: 1, Import: "A"},
		{File: path, Line: 2, Import: "B"},
		{File: path, Line: 3, Import: "D"},
	}
	res, err := Apply(records, Options{})
	require.NoError(t, err)
	require.Len(t, res.Changed, 1)
	assert.Equal(t, 3, res.Changed[0].EditCount)

	assert.Equal(t,
		"import { C } from 'b';\n"+
			"export const v = C;\n",
		readFile(t, path))
}

// The collapse pass runs over the whole file, so a pre-existing run of
// blank lines far from any edit is squeezed too.
func TestApplyCollapsesPreexistingBlankRuns(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "page.tsx",
		"import { A, B } from 'x';\n"+
			"const a = A;\n"+
			"\n"+
			"\n"+
			"\n"+
			"const b = 1;\n")

	_, err := Apply([]diag.Diagnostic{{File: path, Line: 1, Import: "B"}}, Options{})
	require.NoError(t, err)
	assert.Equal(t,
		"import { A } from 'x';\n"+
			"const a = A;\n"+
			"\n"+
			"const b = 1;\n",
		readFile(t, path))
}

func TestApplyDryRunWritesNothing(t *testing.T) {
	dir := t.TempDir()
	original := "import { A, B } from 'x';\nexport const v = A;\n"
	path := writeFile(t, dir, "page.tsx", original)

	res, err := Apply([]diag.Diagnostic{{File: path, Line: 1, Import: "B"}}, Options{DryRun: true})
	require.NoError(t, err)
	require.Len(t, res.Changed, 1)
	assert.Equal(t, original, readFile(t, path), "dry run must not touch the file")
}

func TestApplyNoOpRecordLeavesFileUnchanged(t *testing.T) {
	dir := t.TempDir()
	original := "const x = 1;\nconst y = 2;\n"
	path := writeFile(t, dir, "page.tsx", original)

	res, err := Apply([]diag.Diagnostic{{File: path, Line: 2, Import: "Missing"}}, Options{})
	require.NoError(t, err)
	assert.Empty(t, res.Changed)
	assert.Empty(t, res.Skipped)
	assert.Equal(t, original, readFile(t, path))
}

func TestApplySkipsUnreadableFileAndContinues(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.ts", "import { A, B } from 'x';\nexport const v = A;\n")
	missing := filepath.Join(dir, "missing.ts")

	records := []diag.Diagnostic{
		{File: good, Line: 1, Import: "B"},
		{File: missing, Line: 1, Import: "A"},
	}
	res, err := Apply(records, Options{})
	require.NoError(t, err)

	require.Len(t, res.Skipped, 1)
	assert.Equal(t, missing, res.Skipped[0].Path)
	assert.NotEmpty(t, res.Skipped[0].Reason)

	require.Len(t, res.Changed, 1)
	assert.Equal(t, good, res.Changed[0].Path)
	assert.Equal(t, "import { A } from 'x';\nexport const v = A;\n", readFile(t, good))
}

func TestApplySkipsOutOfRangeLine(t *testing.T) {
	dir := t.TempDir()
	original := "const x = 1;\n"
	path := writeFile(t, dir, "short.ts", original)

	res, err := Apply([]diag.Diagnostic{{File: path, Line: 40, Import: "A"}}, Options{})
	require.NoError(t, err)
	require.Len(t, res.Skipped, 1)
	assert.Contains(t, res.Skipped[0].Reason, "out of range")
	assert.Equal(t, original, readFile(t, path))
}

func TestApplyWithoutDiagnostics(t *testing.T) {
	res, err := Apply(nil, Options{})
	assert.ErrorIs(t, err, ErrNoDiagnostics)
	require.NotNil(t, res)
	assert.Empty(t, res.Changed)
}
