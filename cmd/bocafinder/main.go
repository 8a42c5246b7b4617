// Command bocafinder builds planar graphs from click events and finds the
// nearest of several targets by a blended distance/hop metric.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
