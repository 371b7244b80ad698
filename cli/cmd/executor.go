package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/gofrs/uuid"
	"github.com/google/renameio"
)

// execute materialises the resolved script into a temporary file and runs
// it with the forwarded arguments and inherited stdio. The script is
// written atomically before the process is spawned, and removed after it
// exits.
func execute(content string, args []string) error {
	id, err := uuid.NewV4()
	if err != nil {
		return err
	}
	path := filepath.Join(os.TempDir(), fmt.Sprintf("mk-%s", id.String()[:8]))
	if err := renameio.WriteFile(path, []byte(content), 0o755); err != nil {
		return err
	}
	defer func() {
		if err := os.Remove(path); err != nil {
			log.WithError(err).Warn("failed to remove script")
		}
	}()
	log.WithField("script", path).Debug("executing")
	c := exec.Command(path, args...)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}
