package streams

import (
	"bytes"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func Test_OpenInputStdin(t *testing.T) {
	for _, name := range []string{"", StandardStream} {
		r, err := OpenInput(name, strings.NewReader("TWFu"))
		require.NoError(t, err)
		require.Equal(t, "stdin", r.String())

		data, err := ioutil.ReadAll(r)
		require.NoError(t, err)
		require.Equal(t, "TWFu", string(data))
		require.NoError(t, r.Close())
		require.True(t, r.Closed())
	}
}

func Test_OpenInputFile(t *testing.T) {
	r, err := OpenInput("testdata/file.bin", nil)
	require.NoError(t, err)
	defer r.Close()
	require.Equal(t, "testdata/file.bin", r.String())

	data, err := ioutil.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, "TWFu\nTWE9\n", string(data))
}

func Test_OpenInputMissing(t *testing.T) {
	_, err := OpenInput("testdata/does-not-exist.bin", nil)
	require.Error(t, err)
	require.True(t, os.IsNotExist(errors.Cause(err)))
}

func Test_OpenOutputStdout(t *testing.T) {
	buf := &bytes.Buffer{}
	w, err := OpenOutput(StandardStream, buf)
	require.NoError(t, err)
	require.Equal(t, "stdout", w.String())

	_, err = w.Write([]byte("TWFu"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.Equal(t, "TWFu", buf.String())
}

func Test_OpenOutputFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "streams")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "out.txt")
	w, err := OpenOutput(name, nil)
	require.NoError(t, err)
	_, err = w.Write([]byte("TWE9"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err := ioutil.ReadFile(name)
	require.NoError(t, err)
	require.Equal(t, "TWE9", string(data))
}
