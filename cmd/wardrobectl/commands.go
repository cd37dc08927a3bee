package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/wardrobecapital/wardrobe/pkg/currency"
	appsvcs "github.com/wardrobecapital/wardrobe/services/wardrobe/application/services"
)

func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}

type itemsCmd struct {
	owner  owner
	output output
}

func (*itemsCmd) Name() string     { return "items" }
func (*itemsCmd) Synopsis() string { return "list an owner's items with cost per wear" }
func (*itemsCmd) Usage() string {
	return `wardrobectl items [-owner <uuid>]

  Lists every item of the owner in insertion order.
`
}

func (c *itemsCmd) SetFlags(f *flag.FlagSet) {
	c.owner.setFlags(f)
	c.output.setFlags(f)
}

func (c *itemsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, err := openEnv(ctx, true)
	if err != nil {
		return fail(err)
	}
	defer e.close()

	owner, err := c.owner.resolve(e.cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	p, err := e.svcs.Portfolio.Portfolio(ctx, owner)
	if err != nil {
		return fail(err)
	}
	if err := c.output.print(itemsMarkdown(p.Holdings, e.money)); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}

type statsCmd struct {
	owner  owner
	output output
}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "display portfolio statistics" }
func (*statsCmd) Usage() string {
	return `wardrobectl stats [-owner <uuid>]

  Displays total value, wears, average cost per wear and category allocation.
`
}

func (c *statsCmd) SetFlags(f *flag.FlagSet) {
	c.owner.setFlags(f)
	c.output.setFlags(f)
}

func (c *statsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, err := openEnv(ctx, true)
	if err != nil {
		return fail(err)
	}
	defer e.close()

	owner, err := c.owner.resolve(e.cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	p, err := e.svcs.Portfolio.Portfolio(ctx, owner)
	if err != nil {
		return fail(err)
	}
	if err := c.output.print(statsMarkdown(p.Stats, e.money)); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}

type simulateCmd struct {
	name     string
	brand    string
	category string
	price    string
	wears    int
	output   output
}

func (*simulateCmd) Name() string     { return "simulate" }
func (*simulateCmd) Synopsis() string { return "project resale value and cost per wear of a purchase" }
func (*simulateCmd) Usage() string {
	return `wardrobectl simulate -price <amount> -wears <n> [-name <name>] [-brand <brand>] [-category <category>]

  Estimates five-year retention with the advisor and projects cost per wear
  over three and five years.
`
}

func (c *simulateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "item name")
	f.StringVar(&c.brand, "brand", "", "brand")
	f.StringVar(&c.category, "category", "", "category")
	f.StringVar(&c.price, "price", "", "purchase price")
	f.IntVar(&c.wears, "wears", 0, "expected wears per year")
	c.output.setFlags(f)
}

func (c *simulateCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	price, err := decimal.NewFromString(c.price)
	if err == nil {
		err = currency.CheckAmount(price)
	}
	if err != nil || c.wears < 0 {
		fmt.Fprintln(os.Stderr, "Error: -price must be a non-negative amount below 10^12 with at most 2 decimals and -wears a non-negative integer")
		return subcommands.ExitUsageError
	}

	e, err := openEnv(ctx, false)
	if err != nil {
		return fail(err)
	}
	defer e.close()

	p := e.svcs.Portfolio.Simulate(ctx, appsvcs.SimulateInput{
		Name:         c.name,
		Brand:        c.brand,
		Category:     c.category,
		Price:        price,
		WearsPerYear: c.wears,
	})
	if err := c.output.print(projectionMarkdown(p, e.money)); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}

type adviseCmd struct {
	owner  owner
	output output
}

func (*adviseCmd) Name() string     { return "advise" }
func (*adviseCmd) Synopsis() string { return "ask the advisor about a wardrobe" }
func (*adviseCmd) Usage() string {
	return `wardrobectl advise [-owner <uuid>] [question...]

  Asks the advisor the question, or for a general review when none is given.
`
}

func (c *adviseCmd) SetFlags(f *flag.FlagSet) {
	c.owner.setFlags(f)
	c.output.setFlags(f)
}

func (c *adviseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, err := openEnv(ctx, true)
	if err != nil {
		return fail(err)
	}
	defer e.close()

	owner, err := c.owner.resolve(e.cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	advice, err := e.svcs.Portfolio.Advise(ctx, owner, strings.Join(f.Args(), " "))
	if err != nil {
		return fail(err)
	}
	if err := c.output.print(advice); err != nil {
		return fail(err)
	}
	if appsvcs.AdviceFailed(advice) {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
