package main

import (
	"github.com/Gottox/dewey/cmd/dewey/internal"
)

func main() {
	internal.Execute()
}
