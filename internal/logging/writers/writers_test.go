package writers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateWriter(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()

	tests := []struct {
		name       string
		output     string
		wantStream *os.File
		wantFile   string
		shouldFail bool
	}{
		{name: "empty string defaults to stdout", output: "", wantStream: os.Stdout},
		{name: "stdout", output: "stdout", wantStream: os.Stdout},
		{name: "stderr", output: "stderr", wantStream: os.Stderr},
		{
			name:     "file path",
			output:   filepath.Join(tmpDir, "run.log"),
			wantFile: filepath.Join(tmpDir, "run.log"),
		},
		{
			name:     "file protocol",
			output:   "file://" + filepath.Join(tmpDir, "proto.log"),
			wantFile: filepath.Join(tmpDir, "proto.log"),
		},
		{name: "unsupported scheme", output: "redis://localhost:6379", shouldFail: true},
		{name: "empty file URL", output: "file://", shouldFail: true},
		{name: "bare word", output: "syslog", shouldFail: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writer, err := CreateWriter(tt.output)
			if tt.shouldFail {
				require.Error(t, err)
				require.Nil(t, writer)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, writer)
			t.Cleanup(func() { _ = writer.Close() })

			if tt.wantStream != nil {
				assert.Equal(t, tt.wantStream, Unwrap(writer))
				require.NoError(t, writer.Close(), "closing a stream is a no-op")
				return
			}

			assert.Nil(t, Unwrap(writer))
			_, err = writer.Write([]byte("line\n"))
			require.NoError(t, err)
			content, err := os.ReadFile(tt.wantFile)
			require.NoError(t, err)
			assert.Equal(t, "line\n", string(content))
		})
	}
}

func TestCreateFileWriter(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()

	t.Run("nested directories are created", func(t *testing.T) {
		path := filepath.Join(tmpDir, "nested", "dir", "run.log")
		f, err := createFileWriter(path)
		require.NoError(t, err)
		require.NoError(t, f.Close())
		assert.FileExists(t, path)
	})

	t.Run("existing content is kept", func(t *testing.T) {
		path := filepath.Join(tmpDir, "existing.log")
		require.NoError(t, os.WriteFile(path, []byte("week 8\n"), 0o644))

		f, err := createFileWriter(path)
		require.NoError(t, err)
		_, err = f.WriteString("week 9\n")
		require.NoError(t, err)
		require.NoError(t, f.Close())

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "week 8\nweek 9\n", string(content))
	})
}

func TestParseWriterType(t *testing.T) {
	t.Parallel()

	tests := map[string]WriterType{
		"":                        WriterTypeStdout,
		"stdout":                  WriterTypeStdout,
		"stderr":                  WriterTypeStderr,
		"/var/log/autodgm.log":    WriterTypeFile,
		"file:///var/log/app.log": WriterTypeFile,
		"./logs/app.log":          WriterTypeFile,
	}
	for output, want := range tests {
		assert.Equal(t, want, ParseWriterType(output), output)
	}
}
