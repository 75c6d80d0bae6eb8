package cache

import (
	"os"
	"path"
	"runtime"

	"github.com/adrg/xdg"
)

// Dir returns the directory where frogctl temporary files should be stored
func Dir() string {
	switch runtime.GOOS {
	case "linux":
		if os.Geteuid() == 0 {
			return "/var/cache/frogctl"
		}
		return path.Join(xdg.CacheHome, "frogctl")
	case "darwin":
		home, _ := os.UserHomeDir()
		return path.Join(home, "Library", "Caches", "frogctl")
	default:
		return path.Join(os.TempDir(), "frogctl")
	}
}
