package main

import "github.com/yanqian/garden-faq/internal/cli"

func main() {
	cli.Execute()
}
