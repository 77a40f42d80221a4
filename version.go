package socketlabs

import (
	"fmt"
	"runtime"
	"strings"
)

// Version is the semantic version of the library. It is injected at build
// time via ldflags; the value below is the fallback for development builds.
var Version = "1.0.0"

// clientName identifies this library in the User-Agent header.
const clientName = "socketlabs-go"

// UserAgent returns the User-Agent header value sent with every request,
// identifying the client, its version, and the runtime:
//
//	socketlabs-go/1.0.0 (go/1.24.3; linux/amd64)
func UserAgent() string {
	return fmt.Sprintf("%s/%s (go/%s; %s/%s)",
		clientName,
		Version,
		strings.TrimPrefix(runtime.Version(), "go"),
		runtime.GOOS,
		runtime.GOARCH,
	)
}
