package iocli

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStdio(t *testing.T) {
	stdio := NewStdio()
	assert.NotNil(t, stdio)
	var _ IO = stdio
}

func TestPrintlnAndPrintf(t *testing.T) {
	var out bytes.Buffer
	s := New(strings.NewReader(""), &out)

	s.Println("hello", "world")
	s.Printf("test %d %s", 1, "abc")
	_, err := s.Write([]byte("!"))
	require.NoError(t, err)

	assert.Equal(t, "hello world\ntest 1 abc!", out.String())
}

// Несколько вызовов ReadInput читают последовательные строки из одного буфера
func TestReadInput_SharedReader(t *testing.T) {
	var out bytes.Buffer
	s := New(strings.NewReader("  first  \nsecond\nlast"), &out)

	for _, want := range []string{"first", "second", "last"} {
		got, err := s.ReadInput("> ")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := s.ReadInput("> ")
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "> > > > ", out.String())
}

func TestReadPassword_NotTerminal(t *testing.T) {
	s := New(strings.NewReader("s3cret-pass\n"), io.Discard)

	pw, err := s.ReadPassword("Password: ")
	require.NoError(t, err)
	assert.Equal(t, "s3cret-pass", pw)
}

// Тест NewStdio: подменяем os.Stdin на pipe
func TestReadInput_Stdin(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)

	go func() {
		_, _ = w.Write([]byte("user input\n"))
		_ = w.Close()
	}()

	oldStdin := os.Stdin
	defer func() { os.Stdin = oldStdin }()
	os.Stdin = r

	stdio := NewStdio()
	stdio.out = io.Discard
	result, err := stdio.ReadInput("Prompt: ")
	require.NoError(t, err)
	assert.Equal(t, "user input", result)
}
