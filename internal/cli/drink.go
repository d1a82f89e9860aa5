package cli

import (
	"fmt"
	"strings"

	"github.com/daftar-app/daftar/internal/catalog"
	"github.com/daftar-app/daftar/internal/models"
)

type DrinkAddCmd struct {
	Name string `arg:"" help:"Drink name or a preset from 'daftar drink list'."`
	Type string `short:"t" help:"Drink type (hot|cold|femininity)." default:"hot"`
	Icon string `short:"i" help:"Emoji icon." default:"🥤"`
}

func (c *DrinkAddCmd) Run(ctx *Context) error {
	if err := ctx.requireName(); err != nil {
		return err
	}

	name, icon := c.Name, c.Icon
	drinkType := models.DrinkType(c.Type)

	// Presets win over flags so "daftar drink add coffee" just works.
	for _, preset := range catalog.DrinkPresets() {
		if strings.EqualFold(preset.Name, c.Name) {
			name, icon, drinkType = preset.Name, preset.Icon, preset.Type
			break
		}
	}

	drink, err := ctx.Store.AddDrink(name, icon, drinkType)
	if err != nil {
		return err
	}
	fmt.Printf("Logged drink: %s %s at %s (ID: %s)\n", drink.Icon, drink.Name, drink.Timestamp, drink.ID)
	return nil
}

type DrinkDeleteCmd struct {
	ID string `arg:"" help:"Drink ID to remove from today."`
}

func (c *DrinkDeleteCmd) Run(ctx *Context) error {
	if err := ctx.requireName(); err != nil {
		return err
	}
	if err := ctx.Store.DeleteDrink(c.ID); err != nil {
		return err
	}
	fmt.Println("Drink removed.")
	return nil
}

type DrinkListCmd struct{}

func (c *DrinkListCmd) Run(ctx *Context) error {
	fmt.Println("Drink presets:")
	for _, preset := range catalog.DrinkPresets() {
		fmt.Printf("  %s %s (%s)\n", preset.Icon, preset.Name, preset.Type)
	}
	return nil
}
