// Package testing prepares the process for package tests. Import it for its side effects:
//
//	import (
//		_ "liyu1981.xyz/aquarium-service/pkg/testing"
//	)
//
// It moves the working directory to the module root and sends file logs to a temp dir.
package testing

import (
	"os"
	"path"
	"path/filepath"
	"runtime"
)

const envKeyLogDir = "AQUA_LOG_DIR"

func init() {
	_, filename, _, _ := runtime.Caller(0)
	root := path.Join(path.Dir(filename), "..", "..")
	if err := os.Chdir(root); err != nil {
		panic(err)
	}

	if _, found := os.LookupEnv(envKeyLogDir); !found {
		if err := os.Setenv(envKeyLogDir, filepath.Join(os.TempDir(), "aquarium-service-test-logs")); err != nil {
			panic(err)
		}
	}
}
