package main

import "github.com/ddelcastillo/team-virrey-meetup-text-cli/cmd"

func main() {
	cmd.Execute()
}
