package main

import "github.com/an-ttt/MySpyder-sub002/internal/cli"

func main() {
    cli.Execute()
}
