package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-mapsvg/pkg/imagemap"
)

func loadFromFS(ctx context.Context, filesystem fs.FS, name string) ([]byte, error) {
	if filesystem == nil {
		return nil, errors.New("imagemap loader: filesystem is not configured")
	}
	if name == "" {
		return nil, errors.New("imagemap loader: fs path is required")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := fs.ReadFile(filesystem, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("imagemap loader: %w: %s", imagemap.ErrNotFound, name)
		}
		return nil, fmt.Errorf("imagemap loader: %w: read %s: %v", imagemap.ErrUnreadable, name, err)
	}
	return data, nil
}
