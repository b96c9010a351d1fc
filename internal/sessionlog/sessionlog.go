// Package sessionlog seeds the play-session log template.
package sessionlog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Header is the fixed column layout of the session log.
var Header = []string{"Date", "Player", "Campaign", "Race", "Class", "Subclass"}

// Bootstrap creates the session log at path with Header and no rows. An
// existing file is left untouched and reported with created == false.
func Bootstrap(path string) (created bool, err error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, fmt.Errorf("create session log: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("close session log: %w", closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	if err := writer.Write(Header); err != nil {
		return false, fmt.Errorf("write session log header: %w", err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return false, fmt.Errorf("write session log header: %w", err)
	}
	return true, nil
}
