/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/spellcms/spellcms/cmd"

func main() {
	cmd.Execute()
}
