package cli

import (
	"fmt"
	"path/filepath"

	"github.com/daftar-app/daftar/internal/config"
	"github.com/daftar-app/daftar/internal/constants"
)

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	baseDir, err := config.DefaultBaseDir()
	if err != nil {
		return err
	}

	path := filepath.Join(baseDir, constants.AppName+".toml")
	if err := config.Init(path, config.Default(baseDir)); err != nil {
		return err
	}

	fmt.Printf("Initialized daftar config at: %s\n", path)
	fmt.Printf("Data will be stored in: %s\n", ctx.DataDir)
	return nil
}

type NameCmd struct {
	Name string `arg:"" help:"Your display name."`
}

func (c *NameCmd) Run(ctx *Context) error {
	if err := ctx.Store.SetUserName(c.Name); err != nil {
		return err
	}
	fmt.Printf("Welcome, %s!\n", ctx.Store.UserName())
	return nil
}
