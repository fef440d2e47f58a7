package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/level-manager/internal/errors"
)

type RootCmdTestSuite struct {
	suite.Suite
	dir string
}

func (s *RootCmdTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

// run executes the root command with stdin and returns stdout
func (s *RootCmdTestSuite) run(stdin string, args ...string) (string, error) {
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	base := []string{
		"--env-file", filepath.Join(s.dir, "missing.env"),
		"--store", "file",
		"--dir", s.dir,
		"--log-level", "error",
	}
	cmd.SetArgs(append(base, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func (s *RootCmdTestSuite) TestNewLoadLevels() {
	out, err := s.run("quit\n", "new", "Hero")
	s.Require().NoError(err)
	s.Contains(out, "Created Hero (warrior), saved as Hero_lvl01")

	out, err = s.run("", "levels", "Hero")
	s.Require().NoError(err)
	s.Contains(out, "Hero: 1")

	out, err = s.run("inc blade 10\nlevel str end spe\nsave\nquit\n", "load", "Hero")
	s.Require().NoError(err)
	s.Contains(out, "Loaded Hero at level 1")
	s.Contains(out, "Saved Hero_lvl02")

	out, err = s.run("", "levels", "Hero")
	s.Require().NoError(err)
	s.Contains(out, "Hero: 1, 2")

	out, err = s.run("quit\n", "load", "Hero", "--level", "1")
	s.Require().NoError(err)
	s.Contains(out, "Loaded Hero at level 1")
}

func (s *RootCmdTestSuite) TestNewRefusesExistingName() {
	_, err := s.run("quit\n", "new", "Hero")
	s.Require().NoError(err)

	_, err = s.run("quit\n", "new", "Hero")
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
	s.Equal(6, errors.GetCode(err).ExitCode())
}

func (s *RootCmdTestSuite) TestNewWithClass() {
	out, err := s.run("print skills\nquit\n", "new", "Vex", "--class", "thief")
	s.Require().NoError(err)
	s.Contains(out, "Created Vex (thief)")

	_, err = s.run("quit\n", "new", "Bard", "--class", "bard")
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RootCmdTestSuite) TestLoadMissing() {
	_, err := s.run("", "load", "Nobody")
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Equal(3, errors.GetCode(err).ExitCode())

	_, err = s.run("", "load", "Nobody", "--level", "-1")
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RootCmdTestSuite) TestLevelsWithoutSnapshots() {
	out, err := s.run("", "levels", "Nobody")
	s.Require().NoError(err)
	s.Contains(out, "No snapshots saved for Nobody")
}

func (s *RootCmdTestSuite) TestInvalidConfiguration() {
	_, err := s.run("", "levels", "Hero", "--format", "xml")
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(errors.Describe(err), "format: must be one of: json, yaml")
}

func (s *RootCmdTestSuite) TestSQLiteStore() {
	dbPath := filepath.Join(s.dir, "levels.db")

	_, err := s.run("quit\n", "new", "Hero", "--store", "sqlite", "--sqlite-path", dbPath)
	s.Require().NoError(err)

	out, err := s.run("", "levels", "Hero", "--store", "sqlite", "--sqlite-path", dbPath)
	s.Require().NoError(err)
	s.Contains(out, "Hero: 1")
}

func TestRootCmdSuite(t *testing.T) {
	suite.Run(t, new(RootCmdTestSuite))
}
