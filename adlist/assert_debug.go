//go:build adlistdebug

package adlist

import (
	"fmt"
	"log"
)

func assert(cond bool, format string, args ...interface{}) {
	if cond {
		return
	}
	msg := fmt.Sprintf(format, args...)
	log.Printf("adlist: assertion failed: %s", msg)
	panic(msg)
}
