package io

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type failWriter struct{}

var errWrite = errors.New("write failed")

func (failWriter) Write(p []byte) (int, error) {
	return 0, errWrite
}

func TestConsole_Print(t *testing.T) {
	assert := assert.New(t)

	buf := &bytes.Buffer{}
	con := &Console{Output: buf}

	assert.NoError(con.Print(8))
	assert.NoError(con.Print(0))
	assert.NoError(con.Print(255))

	assert.Equal("8\n0\n255\n", buf.String())
	assert.Equal(3, con.Lines)
}

func TestConsole_Rewind(t *testing.T) {
	assert := assert.New(t)

	buf := &bytes.Buffer{}
	con := &Console{Output: buf}

	assert.NoError(con.Print(90))
	assert.Equal(1, con.Lines)

	con.Rewind()
	assert.Equal(0, con.Lines)
	assert.Equal("90\n", buf.String())
}

func TestConsole_Detached(t *testing.T) {
	assert := assert.New(t)

	con := &Console{}
	err := con.Print(1)
	assert.Equal(ErrConsoleDetached, err)
	assert.Equal(0, con.Lines)
}

func TestConsole_WriteError(t *testing.T) {
	assert := assert.New(t)

	con := &Console{Output: failWriter{}}
	err := con.Print(1)
	assert.ErrorIs(err, errWrite)
	assert.Equal(0, con.Lines)
}
