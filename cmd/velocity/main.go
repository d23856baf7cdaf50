// The velocity command is the toolchain entry point: it compiles .vel
// sources to Go, executes them, checks them, dumps token streams and
// rebuilds on change.
//
//	velocity build main.vel
//	velocity run main.vel -- --port 8080
//	velocity check main.vel
//	velocity tokens main.vel
//	velocity watch .
package main

import "os"

func main() {
	if err := execute(); err != nil {
		os.Exit(1)
	}
}
