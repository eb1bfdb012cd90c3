// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/officesmith/internal/libreoffice"
	"github.com/pdiddy/officesmith/internal/process"
)

// recordingRunner captures every command instead of spawning it.
type recordingRunner struct {
	mu       sync.Mutex
	commands []process.Command
	result   process.Result
	err      error
}

func (r *recordingRunner) Run(ctx context.Context, cmd process.Command) (process.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands = append(r.commands, cmd)
	return r.result, r.err
}

func (r *recordingRunner) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.commands)
}

// fakeLocator returns a fixed executable path or error.
type fakeLocator struct {
	path  string
	err   error
	calls int
}

func (f *fakeLocator) ExecutablePath() (string, error) {
	f.calls++
	return f.path, f.err
}

const fakeSoffice = "/opt/libreoffice/program/soffice"

func TestConvertToPdf_SupportedExtensions(t *testing.T) {
	for _, ext := range SupportedExtensions() {
		t.Run(ext, func(t *testing.T) {
			runner := &recordingRunner{}
			c := NewConverter(&fakeLocator{path: fakeSoffice}, runner)

			err := c.ConvertToPdf(context.Background(), "input"+ext, t.TempDir())
			require.NoError(t, err)
			assert.Equal(t, 1, runner.count())
		})
	}
}

func TestConvertToPdf_UnsupportedExtensions(t *testing.T) {
	for _, source := range []string{"scan.pdf", "REPORT.DOCX", "notes", "setup.exe", "memo.docs", "archive.odt.zip"} {
		t.Run(source, func(t *testing.T) {
			runner := &recordingRunner{}
			loc := &fakeLocator{path: fakeSoffice}
			c := NewConverter(loc, runner)

			err := c.ConvertToPdf(context.Background(), source, t.TempDir())

			var typeErr *UnsupportedFileTypeError
			require.ErrorAs(t, err, &typeErr)
			assert.Equal(t, filepath.Ext(source), typeErr.Ext)
			assert.ErrorIs(t, err, ErrUnsupportedFileType)
			assert.Equal(t, 0, runner.count(), "no process should be spawned")
			assert.Equal(t, 0, loc.calls, "locator should not be consulted")
		})
	}
}

func TestConvertToPdf_CommandLine(t *testing.T) {
	runner := &recordingRunner{}
	c := NewConverter(&fakeLocator{path: fakeSoffice}, runner)

	require.NoError(t, c.ConvertToPdf(context.Background(), "report.docx", "/out"))
	require.Equal(t, 1, runner.count())

	wantSrc, err := filepath.Abs("report.docx")
	require.NoError(t, err)
	wantDir, err := filepath.Abs("/out")
	require.NoError(t, err)

	cmd := runner.commands[0]
	assert.Equal(t, fakeSoffice, cmd.Path)
	assert.Equal(t, wantDir, cmd.Dir)
	for _, flag := range []string{"-headless", "-norestore", "-nologo", "-nofirststartwizard"} {
		assert.Contains(t, cmd.Args, flag)
	}
	assert.Equal(t, []string{"-convert-to", "pdf"}, cmd.Args[4:6])
	assert.Equal(t, wantSrc, cmd.Args[len(cmd.Args)-1])
}

func TestConvertToPdf_DefaultOutputDir(t *testing.T) {
	runner := &recordingRunner{}
	c := NewConverter(&fakeLocator{path: fakeSoffice}, runner)

	require.NoError(t, c.ConvertToPdf(context.Background(), "a.odt", ""))
	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, cwd, runner.commands[0].Dir)
}

func TestConvertToPdf_LocatorErrorsPropagate(t *testing.T) {
	for _, locErr := range []error{libreoffice.ErrNotInstalled, libreoffice.ErrUnsupportedPlatform} {
		t.Run(locErr.Error(), func(t *testing.T) {
			runner := &recordingRunner{}
			c := NewConverter(&fakeLocator{err: locErr}, runner)

			err := c.ConvertToPdf(context.Background(), "report.docx", t.TempDir())
			assert.Equal(t, locErr, err, "locator error should not be wrapped")
			assert.Equal(t, 0, runner.count())
		})
	}
}

func TestConvertToPdf_ExitStatus(t *testing.T) {
	tests := []struct {
		name    string
		strict  bool
		code    int
		wantErr bool
	}{
		{name: "non-zero ignored by default", code: 5},
		{name: "non-zero rejected when strict", strict: true, code: 5, wantErr: true},
		{name: "zero accepted when strict", strict: true, code: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &recordingRunner{result: process.Result{ExitCode: tt.code}}
			c := NewConverter(&fakeLocator{path: fakeSoffice}, runner, WithStrictExit(tt.strict))

			err := c.ConvertToPdf(context.Background(), "report.docx", t.TempDir())
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var exitErr *ExitStatusError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, tt.code, exitErr.Code)
			assert.Equal(t, "report.docx", exitErr.Source)
		})
	}
}

func TestConvertToPdf_SpawnFailure(t *testing.T) {
	spawnErr := &os.PathError{Op: "fork/exec", Path: fakeSoffice, Err: os.ErrPermission}
	c := NewConverter(&fakeLocator{path: fakeSoffice}, &recordingRunner{err: spawnErr})

	err := c.ConvertToPdf(context.Background(), "report.docx", t.TempDir())
	assert.ErrorIs(t, err, os.ErrPermission)
	assert.Contains(t, err.Error(), "report.docx")
}

// installStub lays out <root>/program/soffice as a shell script that logs
// its working directory and arguments, then writes the PDF soffice would.
func installStub(t *testing.T) (root, logPath string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell stubs need a POSIX shell")
	}
	root = t.TempDir()
	logPath = filepath.Join(t.TempDir(), "calls.log")
	script := `#!/bin/sh
pwd > "` + logPath + `"
for a in "$@"; do echo "$a" >> "` + logPath + `"; done
for a in "$@"; do last="$a"; done
base=$(basename "$last")
touch "${base%.*}.pdf"
`
	if err := os.MkdirAll(filepath.Join(root, "program"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "program", "soffice"), []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	return root, logPath
}

func TestConvertToPdf_EndToEnd(t *testing.T) {
	root, logPath := installStub(t)
	loc := libreoffice.NewLocator(libreoffice.NewStaticStrategy(afero.NewOsFs(), root, "program/soffice"))
	c := NewConverter(loc, process.OSRunner{})

	srcDir := filepath.Join(t.TempDir(), "my documents")
	require.NoError(t, os.MkdirAll(srcDir, 0o755))
	src := filepath.Join(srcDir, "quarterly report.docx")
	require.NoError(t, os.WriteFile(src, []byte("doc"), 0o644))
	out := t.TempDir()

	require.NoError(t, c.ConvertToPdf(context.Background(), src, out))

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 8)

	gotDir, _ := filepath.EvalSymlinks(lines[0])
	wantDir, _ := filepath.EvalSymlinks(out)
	assert.Equal(t, wantDir, gotDir)
	assert.Equal(t, Arguments(src), lines[1:])
	assert.FileExists(t, filepath.Join(out, "quarterly report.pdf"))
}

func TestConvertToPdf_EndToEndNotInstalled(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nowhere")
	loc := libreoffice.NewLocator(libreoffice.NewStaticStrategy(afero.NewOsFs(), missing, "program/soffice"))
	c := NewConverter(loc, process.OSRunner{})

	err := c.ConvertToPdf(context.Background(), "report.docx", t.TempDir())
	assert.True(t, errors.Is(err, libreoffice.ErrNotInstalled), "got %v", err)
}

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported("dir.v2/report.pptx"))
	assert.False(t, IsSupported("report.PPTX"))
	assert.False(t, IsSupported("report"))

	exts := SupportedExtensions()
	exts[0] = ".mutated"
	assert.NotContains(t, SupportedExtensions(), ".mutated")
}
