package main

import "github.com/atikulmunna/logsummary/internal/cmd"

func main() {
	cmd.Execute()
}
