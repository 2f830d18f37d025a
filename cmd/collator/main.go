package main

import (
	"github.com/addchain/collator/cmd/collator/cmd"
)

func main() {
	cmd.Execute()
}
