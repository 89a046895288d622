// Command mdclean converts Markdown files to plain text.
package main

import "github.com/gaurav-prasanna/mdclean/cmd"

func main() {
	cmd.Execute()
}
