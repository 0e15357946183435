package vector

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// EnvDirTestSuite provides a scratch directory for env directory tests
type EnvDirTestSuite struct {
	suite.Suite
	tempDir string
}

func (s *EnvDirTestSuite) SetupTest() {
	s.tempDir = s.T().TempDir()
}

func TestEnvDir(t *testing.T) {
	suite.Run(t, new(EnvDirTestSuite))
}

func (s *EnvDirTestSuite) TestReadEnvDir() {
	dir := filepath.Join(s.tempDir, "env")
	writeEnvFiles(s.T(), dir, map[string]string{
		"PATH":     "/usr/bin:/bin\n",
		"GREETING": "hello world  \t\nignored second line\n",
		"EMPTY":    "",
		"BLANK":    "\n",
		"MULTI":    "one\x00two",
		".hidden":  "secret",
	})
	require.NoError(s.T(), os.Mkdir(filepath.Join(dir, "subdir"), DirMode))

	env, err := ReadEnvDir(dir, nil)
	require.NoError(s.T(), err)

	s.Equal([]string{
		"BLANK=",
		"GREETING=hello world",
		"MULTI=one\ntwo",
		"PATH=/usr/bin:/bin",
	}, env.Strings())
	s.Equal(4, env.Cap())
}

func (s *EnvDirTestSuite) TestReadEnvDirReuse() {
	dir := filepath.Join(s.tempDir, "env")
	writeEnvFiles(s.T(), dir, map[string]string{"A": "1\n"})

	reuse, err := FromStrings([]string{"X=1", "Y=2", "Z=3"})
	require.NoError(s.T(), err)

	env, err := ReadEnvDir(dir, reuse)
	require.NoError(s.T(), err)
	s.Same(reuse, env)
	s.Equal([]string{"A=1"}, env.Strings())
	s.Equal(3, env.Cap())
}

func (s *EnvDirTestSuite) TestReadEnvDirMissing() {
	_, err := ReadEnvDir(filepath.Join(s.tempDir, "missing"), nil)
	s.Require().Error(err)
	s.ErrorIs(err, os.ErrNotExist)

	var opErr *OpError
	s.Require().ErrorAs(err, &opErr)
	s.Equal(OpReadEnvDir, opErr.Op)
}

func (s *EnvDirTestSuite) TestReadEnvDirInvalidName() {
	dir := filepath.Join(s.tempDir, "env")
	writeEnvFiles(s.T(), dir, map[string]string{
		"A=B": "x\n",
		"OK":  "y\n",
	})

	env, err := ReadEnvDir(dir, nil)
	s.Nil(env)
	s.ErrorIs(err, ErrInvalidName)

	var merr *MultiError
	s.Require().ErrorAs(err, &merr)
	s.Len(merr.Errors, 1)
}

func (s *EnvDirTestSuite) TestApplyEnvDir() {
	dir := filepath.Join(s.tempDir, "env")
	writeEnvFiles(s.T(), dir, map[string]string{
		"HOME":  "/srv/app\n",
		"DEBUG": "",
		"NEW":   "value\n",
	})

	env, err := FromStrings([]string{
		"HOME=/root",
		"DEBUG=1",
		"KEEP=yes",
		"HOME=/duplicate",
	})
	require.NoError(s.T(), err)

	require.NoError(s.T(), ApplyEnvDir(env, dir))
	s.Equal([]string{"KEEP=yes", "HOME=/srv/app", "NEW=value"}, env.Strings())

	_, ok := env.Lookup("DEBUG")
	s.False(ok)
}

func (s *EnvDirTestSuite) TestWriteEnvDirRoundTrip() {
	dir := filepath.Join(s.tempDir, "out", "env")
	env, err := FromStrings([]string{
		"EMPTY=",
		"EQUALS=a=b",
		"LINES=first\nsecond",
		"NAME=value",
	})
	require.NoError(s.T(), err)

	require.NoError(s.T(), WriteEnvDir(dir, env))

	data, err := os.ReadFile(filepath.Join(dir, "LINES"))
	require.NoError(s.T(), err)
	s.Equal("first\x00second\n", string(data))

	back, err := ReadEnvDir(dir, nil)
	require.NoError(s.T(), err)
	s.Equal(env.Strings(), back.Strings())
}

func (s *EnvDirTestSuite) TestWriteEnvDirInvalidEntries() {
	dir := filepath.Join(s.tempDir, "env")
	env, err := FromStrings([]string{"NOEQUALS", "=empty", "a/b=c", "GOOD=1"})
	require.NoError(s.T(), err)

	err = WriteEnvDir(dir, env)
	s.Require().Error(err)
	s.True(errors.Is(err, ErrInvalidName))

	var merr *MultiError
	s.Require().ErrorAs(err, &merr)
	s.Len(merr.Errors, 3)

	// Valid entries are still written
	back, err := ReadEnvDir(dir, nil)
	require.NoError(s.T(), err)
	s.Equal([]string{"GOOD=1"}, back.Strings())
}

func TestLookupSetenvUnset(t *testing.T) {
	env, err := FromStrings([]string{"A=1", "B=2", "A=3", "AB=4"})
	require.NoError(t, err)

	value, ok := env.Lookup("A")
	require.True(t, ok)
	require.Equal(t, "1", value)

	_, ok = env.Lookup("C")
	require.False(t, ok)

	require.Equal(t, 2, env.Unset("A"))
	require.Equal(t, []string{"B=2", "AB=4"}, env.Strings())

	require.NoError(t, env.Setenv("B", "5"))
	require.Equal(t, []string{"AB=4", "B=5"}, env.Strings())

	require.ErrorIs(t, env.Setenv("BAD=NAME", "x"), ErrInvalidName)
	require.ErrorIs(t, env.Setenv("", "x"), ErrInvalidName)
}

func TestEnviron(t *testing.T) {
	t.Setenv("VECTOR_TEST_VAR", "present")

	env, err := Environ()
	require.NoError(t, err)

	value, ok := env.Lookup("VECTOR_TEST_VAR")
	require.True(t, ok)
	require.Equal(t, "present", value)
	require.Equal(t, len(os.Environ()), env.Len())
}
