// Package testing moves the working directory to the module root, so tests
// share one logs directory and relative fixtures resolve the same way from
// every package.
package testing

import (
	"os"
	"path"
	"runtime"
)

func init() {
	// usage, in some_test.go:
	//
	//   import (
	//     _ "liyu1981.xyz/edms-report-service/pkg/testing"
	//   )

	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "..", "..")
	if err := os.Chdir(dir); err != nil {
		panic(err)
	}
}
