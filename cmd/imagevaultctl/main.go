package main

import "github.com/dmitrijs2005/imagevault/internal/ctl"

func main() {
	ctl.Execute()
}
