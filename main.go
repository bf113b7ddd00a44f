/*
Copyright © 2026 Paulo Suderio
*/
package main

import "github.com/suderio/svarog/cmd"

func main() {
	cmd.Execute()
}
