package main

import (
	"go.brendoncarroll.net/star"

	"myceliumweb.org/bitnum/bitcmd"
)

func main() {
	star.Main(bitcmd.Root())
}
