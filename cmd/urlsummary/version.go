package main

import (
	"context"
	"fmt"

	"github.com/a-h/urlsummary"
)

type VersionCommand struct {
}

func (c VersionCommand) Run(ctx context.Context) (err error) {
	fmt.Println(urlsummary.Version)
	return nil
}
