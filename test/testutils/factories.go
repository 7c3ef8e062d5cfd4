// Package testutils provides test data factories for the annotation service
package testutils

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/forkful/garnish/internal/ports/inbound"
	"github.com/google/uuid"
)

// IngredientFactory builds randomized ingredient commands for tests
type IngredientFactory struct {
	faker *gofakeit.Faker
}

// NewIngredientFactory creates a factory with a fixed seed for reproducibility
func NewIngredientFactory(seed int64) *IngredientFactory {
	return &IngredientFactory{
		faker: gofakeit.New(seed),
	}
}

var amountPool = []string{
	"1", "2", "1.5", "2.0", ".5", "1/2", "3/4", "1 1/2", "2.25", "1.0-2.0", "",
}

var unitPool = []string{"cup", "tbsp", "tsp", "g", "oz", "", "ml"}

var preparationPool = []string{
	"finely chopped",
	"chopped, optional",
	"melted, alt: margarine",
	"diced (or use shallots)",
	"sifted (optional)",
	"optional",
	"- room temperature -",
	"melted, alt: margarine, optional",
	"",
}

// Command builds one randomized ingredient command
func (f *IngredientFactory) Command() inbound.AnnotateIngredientCommand {
	name := f.faker.Vegetable()
	if f.faker.Bool() {
		name = f.faker.Fruit()
	}

	return inbound.AnnotateIngredientCommand{
		ID:          uuid.New(),
		Name:        name,
		Amount:      f.faker.RandomString(amountPool),
		Unit:        f.faker.RandomString(unitPool),
		Preparation: f.faker.RandomString(preparationPool),
		Optional:    f.faker.Bool(),
	}
}

// CommandInSection builds a randomized command pinned to a section
func (f *IngredientFactory) CommandInSection(section string) inbound.AnnotateIngredientCommand {
	cmd := f.Command()
	cmd.Section = section
	return cmd
}

// Commands builds n randomized commands
func (f *IngredientFactory) Commands(n int) []inbound.AnnotateIngredientCommand {
	cmds := make([]inbound.AnnotateIngredientCommand, 0, n)
	for i := 0; i < n; i++ {
		cmds = append(cmds, f.Command())
	}
	return cmds
}

// HostileCommand builds a command stuffed with malformed text, for checking
// that the pipeline is total over its inputs
func (f *IngredientFactory) HostileCommand() inbound.AnnotateIngredientCommand {
	cmd := f.Command()
	cmd.Name = f.faker.LetterN(3) + " ((" + f.faker.LetterN(4)
	cmd.Preparation = fmt.Sprintf("((%s, alt: ;; %s –", f.faker.LetterN(5), f.faker.LetterN(2))
	cmd.Amount = "." + f.faker.DigitN(2) + ".0"
	return cmd
}
