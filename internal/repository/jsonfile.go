package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// File names of the JSON backend inside the data directory.
const (
	CapacityFile = "capacity.json"
	PartsFile    = "parts.json"
	BlockedFile  = "blocked_days.json"
	OrdersFile   = "orders.json"
)

// readJSONFile reads path into raw bytes. A missing file is reported with
// found=false and no error.
func readJSONFile(ctx context.Context, path string) (data []byte, found bool, err error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	data, err = os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, persistenceErr("reading "+path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, false, nil
	}
	return data, true, nil
}

// writeJSONFile writes v as indented JSON through a temp file and a rename,
// so a failed write never truncates the previous file.
func writeJSONFile(ctx context.Context, path string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return persistenceErr("encoding "+path, err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return persistenceErr("creating "+dir, err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return persistenceErr("writing "+path, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return persistenceErr("writing "+path, err)
	}
	if err := tmp.Close(); err != nil {
		return persistenceErr("writing "+path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return persistenceErr("replacing "+path, err)
	}
	return nil
}
