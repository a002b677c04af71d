package termio

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("hello world\n"))
	var out bytes.Buffer

	got, err := GetSimpleText(reader, "Enter text", &out)
	require.NoError(t, err)
	require.Equal(t, "hello world", got)
	require.Contains(t, out.String(), "Enter text")
}

func TestGetSimpleText_PartialLineOnEOF(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("no newline"))
	var out bytes.Buffer

	got, err := GetSimpleText(reader, "Enter text", &out)
	require.NoError(t, err)
	require.Equal(t, "no newline", got)
}

func TestGetSimpleText_EOF(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader(""))
	var out bytes.Buffer

	_, err := GetSimpleText(reader, "Enter text", &out)
	require.Error(t, err)
}

func TestGetPassword(t *testing.T) {
	orig := readPassword
	defer func() { readPassword = orig }()
	readPassword = func(fd int) ([]byte, error) {
		return []byte("s3cret"), nil
	}

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	require.Equal(t, []byte("s3cret"), pw)
	require.Contains(t, out.String(), "Enter password")
}

func TestGetMultiline(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("line one\nline two\n\n"))
	var out bytes.Buffer

	got, err := GetMultiline(reader, "Describe the problem", &out)
	require.NoError(t, err)
	require.Equal(t, "line one\nline two", got)
}
