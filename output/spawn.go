package output

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ardnew/mung"
	"github.com/kelseyhightower/envconfig"
	"github.com/mattn/go-shellwords"

	"github.com/ardnew/flatenv/log"
	"github.com/ardnew/flatenv/pkg"
)

// Special [Config.Spawn] directories.
const (
	SpawnWorkingDir = "."
	SpawnTempDir    = "temp"
)

// DefaultShell interprets spawned stubs when $SHELL is unset or empty.
const DefaultShell = "/bin/sh"

// spawnMode is the permission of each spawned stub.
const spawnMode os.FileMode = 0o755

var errBadStubName = errors.New("key is not a valid file name")

// shellEnv is read from the process environment.
type shellEnv struct {
	Shell string `envconfig:"SHELL" default:"/bin/sh"`
}

// Spawner writes one executable stub per pair. Running a stub prints the
// value of its pair.
type Spawner struct {
	dir     string
	shell   []string
	logger  log.Logger
	spawned int
}

// NewSpawner returns a Spawner writing to dir, creating it if needed.
// dir may be [SpawnWorkingDir] or [SpawnTempDir].
func NewSpawner(dir string, logger log.Logger) (*Spawner, error) {
	dir, err := spawnDir(dir)
	if err != nil {
		return nil, err
	}

	shell, err := loginShell()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, pkg.ErrSpawn.Wrap(err).With(slog.String("dir", dir))
	}

	return &Spawner{dir: dir, shell: shell, logger: logger}, nil
}

func spawnDir(dir string) (string, error) {
	switch dir {
	case SpawnWorkingDir:
		wd, err := os.Getwd()
		if err != nil {
			return "", pkg.ErrSpawn.Wrap(err)
		}

		return wd, nil

	case SpawnTempDir:
		return os.TempDir(), nil

	default:
		abs, err := filepath.Abs(dir)
		if err != nil {
			return "", pkg.ErrSpawn.Wrap(err).With(slog.String("dir", dir))
		}

		return abs, nil
	}
}

// loginShell returns the words of $SHELL.
func loginShell() ([]string, error) {
	var env shellEnv
	if err := envconfig.Process("", &env); err != nil {
		return nil, pkg.ErrSpawn.Wrap(err)
	}

	if strings.TrimSpace(env.Shell) == "" {
		env.Shell = DefaultShell
	}

	words, err := shellwords.Parse(env.Shell)
	if err != nil {
		return nil, pkg.ErrSpawn.Wrap(err).With(slog.String("shell", env.Shell))
	}

	if len(words) == 0 {
		words = []string{DefaultShell}
	}

	return words, nil
}

// Dir returns the absolute directory receiving stubs.
func (s *Spawner) Dir() string { return s.dir }

// Shell returns the interpreter line of each stub, without "#!".
func (s *Spawner) Shell() string { return strings.Join(s.shell, " ") }

// Script returns the content of the stub for value.
func (s *Spawner) Script(value string) string {
	return "#!" + s.Shell() + "\necho " + quote(value) + "\n"
}

// Spawn writes the stub for key. An existing file is replaced.
func (s *Spawner) Spawn(key, value string) error {
	if key == "" || key == "." || key == ".." ||
		strings.ContainsRune(key, filepath.Separator) ||
		strings.ContainsRune(key, '/') {
		return pkg.ErrSpawn.Wrap(errBadStubName).With(slog.String("key", key))
	}

	path := filepath.Join(s.dir, key)

	err := os.WriteFile(path, []byte(s.Script(value)), spawnMode)
	if err == nil {
		// WriteFile keeps the mode of an existing file and honors umask.
		err = os.Chmod(path, spawnMode)
	}

	if err != nil {
		return pkg.ErrSpawn.Wrap(err).With(slog.String("path", path))
	}

	s.spawned++

	s.logger.Debug("spawned", slog.String("path", path))

	return nil
}

// Spawned returns the number of stubs written.
func (s *Spawner) Spawned() int { return s.spawned }

// PathHint returns $PATH with the stub directory prepended, unless it is
// already present.
func (s *Spawner) PathHint() string {
	return mung.Make(
		mung.WithSubjectItems(os.Getenv("PATH")),
		mung.WithDelim(string(os.PathListSeparator)),
		mung.WithPrefixItems(s.dir),
	).String()
}

// quote wraps s in single quotes for the shell.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
