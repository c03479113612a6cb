package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-mapsvg/pkg/imagemap"
)

func loadFile(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("imagemap loader: file path is required")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("imagemap loader: %w: %s", imagemap.ErrNotFound, path)
		}
		return nil, fmt.Errorf("imagemap loader: %w: read %s: %v", imagemap.ErrUnreadable, path, err)
	}
	return data, nil
}
