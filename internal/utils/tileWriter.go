package utils

import (
	"fmt"
	"io/ioutil"
	"path"
)

// TileWriter stores one encoded tile at zoom z, column x and row y (xyz scheme)
type TileWriter interface {
	WriteTile(z, x, y uint, data []byte) error
}

// DirectoryWriter writes tiles to Root/<z>/<x>/<y>.<Extension>
type DirectoryWriter struct {
	Root      string
	Extension string
}

// WriteTile implements TileWriter
func (d DirectoryWriter) WriteTile(z, x, y uint, data []byte) error {
	colPath := path.Join(d.Root, fmt.Sprintf("%d", z), fmt.Sprintf("%d", x))
	if err := EnsureDirectory(colPath); err != nil {
		return err
	}

	return ioutil.WriteFile(path.Join(colPath, fmt.Sprintf("%d.%s", y, d.Extension)), data, 0644)
}
