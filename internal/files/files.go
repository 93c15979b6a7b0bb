package files

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Attachment is a named file destined for the codes array of a compile
// request. The name is the base name of the path it was read from, since
// wandbox places attachments next to the main source file.
type Attachment struct {
	Name    string
	Content string
}

// ReadSource reads the main source file of a compilation job.
func ReadSource(path string) (string, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return "", errors.Wrapf(err, "failed to read source file %s", path)
	}

	return string(data), nil
}

// ReadAttachments reads every additional file of a compilation job. Any
// unreadable path fails the whole set; a job with half its headers missing
// is not worth dispatching.
func ReadAttachments(paths []string) ([]Attachment, error) {
	attachments := make([]Attachment, 0, len(paths))

	for _, path := range paths {
		data, err := os.ReadFile(path)

		if err != nil {
			return nil, errors.Wrapf(err, "failed to read attachment %s", path)
		}

		attachments = append(attachments, Attachment{
			Name:    filepath.Base(path),
			Content: string(data),
		})
	}

	return attachments, nil
}
