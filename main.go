// Pointeuse - a personal time clock with geofenced automation.

package main

import (
	"github.com/mapointeuse/pointeuse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		cmd.Die(err)
	}
}
