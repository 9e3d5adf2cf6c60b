package main

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/specwire/specwire"
)

type CLI struct {
	Endpoints EndpointsCmd `cmd:"" help:"List the endpoint names a catalog declares."`
	Describe  DescribeCmd  `cmd:"" help:"Describe an endpoint's methods and parameters."`
}

type EndpointsCmd struct {
	File string `short:"f" required:"" help:"Catalog file (YAML or JSON)."`
}

func (c *EndpointsCmd) Run() error {
	catalog, err := specwire.FileLoader{Path: c.File}.Load()
	if err != nil {
		return err
	}
	registry, err := specwire.NewRegistry(catalog.Endpoints)
	if err != nil {
		return err
	}
	for _, name := range registry.Names() {
		fmt.Println(name)
	}
	return nil
}

type DescribeCmd struct {
	File     string `short:"f" required:"" help:"Catalog file (YAML or JSON)."`
	Endpoint string `arg:"" optional:"" help:"Endpoint to describe; omit for all."`
}

func (c *DescribeCmd) Run() error {
	catalog, err := specwire.FileLoader{Path: c.File}.Load()
	if err != nil {
		return err
	}
	if c.Endpoint == "" {
		fmt.Print(specwire.DescribeCatalog(catalog))
		return nil
	}
	registry, err := specwire.NewRegistry(catalog.Endpoints)
	if err != nil {
		return err
	}
	ep, err := registry.Endpoint(c.Endpoint)
	if err != nil {
		return err
	}
	fmt.Print(specwire.DescribeEndpoint(ep))
	return nil
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("specwire"),
		kong.Description("Inspect declarative REST API catalogs."),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
