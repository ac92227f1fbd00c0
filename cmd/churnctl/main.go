package main

import (
	"os"

	"github.com/FereolKpavode/CHURN/cmd/churnctl/root"
)

func main() {
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
