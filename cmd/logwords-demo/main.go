// Rank the words of a few built-in log lines
package main

import (
	"fmt"

	"github.com/gopheracademy/logwords/rank"
)

var logs = []string{
	"Error: Disk full",
	"Warning: Memory low",
	"error: network down",
	"Error: Disk full",
}

func main() {
	fmt.Println(rank.TopKWords(logs, 2))
}
