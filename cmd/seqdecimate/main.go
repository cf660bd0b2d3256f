// Command seqdecimate is the decimator CLI of spec.md §4.7.
package main

import "github.com/arl/go-seqarrange/cmd/seqdecimate/cmd"

func main() {
	cmd.Execute()
}
