package main

import (
	"os"

	"github.com/smukherj1/zipped-range/internal/zipcat"
)

func main() {
	code := zipcat.Execute()

	os.Exit(code)
}
