package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// Environment variables passed to extensions. They use the configuration
// keys so an extension loading config.Load sees the same settings.
const (
	EnvBackupFile   = "INV_BACKUP_FILE"
	EnvBackupFormat = "INV_BACKUP_FORMAT"
	EnvBackupStrict = "INV_BACKUP_STRICT"
	EnvLogLevel     = "INV_LOG_LEVEL"
)

// IsCommand reports whether name is one of Commands.
func IsCommand(name string) bool {
	for _, c := range Commands {
		if c.Name() == name {
			return true
		}
	}
	return false
}

// RunExtension attempts to find and execute an external inv-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "inv-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		return false, 0
	}

	cfg, _, err := Settings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return true, 1
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = os.Stderr

	// Pass the resolved settings as environment variables.
	cmd.Env = append(os.Environ(),
		EnvBackupFile+"="+cfg.Backup.File,
		EnvBackupFormat+"="+cfg.Backup.Format,
		EnvBackupStrict+"="+strconv.FormatBool(cfg.Backup.Strict),
		EnvLogLevel+"="+cfg.Log.Level,
	)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
