package validate

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gruppe-adler/irap-utils/internal/utils"
)

var irapExtensions = []string{".irap", ".irapgrid", ".grd", ".txt", ".asc"}

// IrapFile validates that given path is a readable IRAP ASCII grid file
func IrapFile(irapPath string) error {
	if !utils.IsFile(irapPath) {
		return fmt.Errorf("%s does not exists or is no file", irapPath)
	}

	name := strings.ToLower(filepath.Base(irapPath))
	name = strings.TrimSuffix(name, ".gz")

	ext := filepath.Ext(name)
	for _, allowed := range irapExtensions {
		if ext == allowed {
			return nil
		}
	}

	return fmt.Errorf("%s has unsupported extension %q (expected one of %s, optionally gzipped)", irapPath, ext, strings.Join(irapExtensions, ", "))
}

// OutputDirectory validates that given path is an existing directory
func OutputDirectory(outputPath string) error {
	if !utils.IsDirectory(outputPath) {
		return fmt.Errorf("output directory %s doesn't exists", outputPath)
	}
	return nil
}
