package cli

import (
	"fmt"
	"strings"

	"github.com/daftar-app/daftar/internal/catalog"
	"github.com/daftar-app/daftar/internal/models"
)

type MaskListCmd struct {
	Type string `short:"t" help:"Filter by mask type (face|hair|body)."`
}

func (c *MaskListCmd) Run(ctx *Context) error {
	if err := ctx.requireName(); err != nil {
		return err
	}

	masks := append(catalog.BuiltinMasks(), ctx.Store.CustomMasks()...)
	fmt.Println("Masks:")
	for _, m := range masks {
		if c.Type != "" && string(m.Type) != c.Type {
			continue
		}
		label := ""
		if m.IsCustom {
			label = " (custom)"
		}
		fmt.Printf("  %s %s [%s]%s\n", m.Icon, m.Name, m.Type, label)
		fmt.Printf("     %s\n", strings.Join(m.Ingredients, ", "))
		fmt.Printf("     %s\n", m.Preparation)
	}
	return nil
}

type MaskAddCmd struct {
	Name        string   `arg:"" help:"Mask name."`
	Type        string   `short:"t" help:"Mask type (face|hair|body)." default:"face"`
	Icon        string   `short:"i" help:"Emoji icon." default:"🧖‍♀️"`
	Ingredients []string `short:"g" help:"Ingredients (repeatable)."`
	Preparation string   `short:"p" help:"Preparation steps."`
	Benefits    string   `short:"b" help:"Benefits description."`
}

func (c *MaskAddCmd) Run(ctx *Context) error {
	if err := ctx.requireName(); err != nil {
		return err
	}

	switch models.MaskType(c.Type) {
	case models.MaskFace, models.MaskHair, models.MaskBody:
	default:
		return fmt.Errorf("invalid mask type: %q", c.Type)
	}

	mask, err := ctx.Store.AddCustomMask(models.DiyMask{
		Name:        c.Name,
		Icon:        c.Icon,
		Type:        models.MaskType(c.Type),
		Ingredients: c.Ingredients,
		Preparation: c.Preparation,
		Benefits:    c.Benefits,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Added mask: %s %s (ID: %s)\n", mask.Icon, mask.Name, mask.ID)
	return nil
}

type RecipeListCmd struct {
	Tag string `short:"t" help:"Filter by tag, e.g. breakfast."`
}

func (c *RecipeListCmd) Run(ctx *Context) error {
	if err := ctx.requireName(); err != nil {
		return err
	}

	recipes := append(catalog.BuiltinRecipes(), ctx.Store.CustomRecipes()...)
	fmt.Println("Recipes:")
	for _, r := range recipes {
		if c.Tag != "" && !hasTag(r, c.Tag) {
			continue
		}
		label := ""
		if r.IsCustom {
			label = " (custom)"
		}
		fmt.Printf("  %s — %d kcal, %s%s\n", r.Name, r.Calories, r.Time, label)
	}
	return nil
}

func hasTag(r models.Recipe, tag string) bool {
	for _, t := range r.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

type RecipeAddCmd struct {
	Name        string   `arg:"" help:"Recipe name."`
	Calories    int      `short:"c" help:"Calories per serving." default:"0"`
	Time        string   `short:"m" help:"Preparation time, e.g. '20 min'."`
	Ingredients []string `short:"g" help:"Ingredients (repeatable)."`
	Steps       []string `short:"s" help:"Steps (repeatable)."`
	Tags        []string `help:"Tags, e.g. breakfast (repeatable)."`
}

func (c *RecipeAddCmd) Run(ctx *Context) error {
	if err := ctx.requireName(); err != nil {
		return err
	}

	recipe, err := ctx.Store.AddCustomRecipe(models.Recipe{
		Name:        c.Name,
		Calories:    c.Calories,
		Time:        c.Time,
		Ingredients: c.Ingredients,
		Steps:       c.Steps,
		Tags:        c.Tags,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Added recipe: %s (ID: %s)\n", recipe.Name, recipe.ID)
	return nil
}
