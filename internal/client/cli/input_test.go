package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain line", input: "hello\n", want: "hello"},
		{name: "surrounding whitespace trimmed", input: "  padded  \n", want: "padded"},
		{name: "eof after partial line", input: "no-newline", want: "no-newline"},
		{name: "eof with no input", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			reader := bufio.NewReader(strings.NewReader(tt.input))

			got, err := GetSimpleText(reader, "Enter value", &out)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Enter value")
		})
	}
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
	assert.Equal(t, []byte("s3cret"), pw)
	assert.Contains(t, out.String(), "Enter password")
}

func TestGetPasswordError(t *testing.T) {
	orig := readPassword
	defer func() { readPassword = orig }()

	readPassword = func(fd int) ([]byte, error) {
		return nil, errors.New("not a terminal")
	}

	var out bytes.Buffer
	_, err := GetPassword(&out)
	require.Error(t, err)
}

func TestParseID(t *testing.T) {
	id, err := parseID([]string{"42"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = parseID(nil)
	assert.Error(t, err)

	_, err = parseID([]string{"abc"})
	assert.Error(t, err)

	_, err = parseID([]string{"0"})
	assert.Error(t, err)
}
