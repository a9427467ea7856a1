package assets

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
)

// LoadResourceAtPath reads and decodes the file at path.
//
//	states, err := assets.LoadResourceAtPath[assets.BlockStates]("assets/minecraft/blockstates/stone.json")
//
// A missing or unreadable file fails with ErrIO, invalid content with ErrParse.
func LoadResourceAtPath[T any](path string) (*T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newError(ErrIO, path, err)
	}
	return decode[T](data, path)
}

func decode[T any](data []byte, path string) (*T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, newError(ErrParse, path, err)
	}
	return &v, nil
}

// readFile reads a resource file and maps fs errors to ErrNotFound or ErrIO
func readFile(fsys fs.FS, name, displayPath string) ([]byte, error) {
	data, err := fs.ReadFile(fsys, name)
	if err == nil {
		return data, nil
	}
	// ids escaping the pack root ("../x") can never exist inside it
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) {
		return nil, newError(ErrNotFound, displayPath, err)
	}
	return nil, newError(ErrIO, displayPath, err)
}
