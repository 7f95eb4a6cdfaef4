package main

import (
	"github.com/starshine-sys/rsvp/cmd"
	"github.com/starshine-sys/rsvp/common/log"
)

func main() {
	defer log.Sync()

	if err := cmd.Run(); err != nil {
		log.Fatal(err)
	}
}
