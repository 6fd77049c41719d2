package benchmark_test

import (
	"testing"

	"github.com/dzonerzy/go-argparse/argparse"
	"github.com/spf13/cobra"
	"github.com/urfave/cli/v2"
)

// Each variant declares its flags and parses on every iteration so setup cost
// is part of the measurement for all three.

var simpleArgs = []string{"--port", "9000", "--verbose"}

func BenchmarkSimpleCLI_Argparse(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p := argparse.New("bench", "1.0")
		argparse.SetDefault(p.Add(argparse.RequiresNext, "-p", "--port"), 8080).Help("Server port")
		p.Add(argparse.Default, "--verbose").Help("Verbose output")
		if err := p.Parse(simpleArgs); err != nil {
			b.Fatal(err)
		}
		_ = argparse.MustLookup(p, "--port", 0)
	}
}

func BenchmarkSimpleCLI_Cobra(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var port int
		cmd := &cobra.Command{
			Use: "bench",
			Run: func(_ *cobra.Command, _ []string) {},
		}
		cmd.Flags().IntVarP(&port, "port", "p", 8080, "Server port")
		cmd.Flags().Bool("verbose", false, "Verbose output")
		cmd.SetArgs(simpleArgs)
		if err := cmd.Execute(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSimpleCLI_Urfave(b *testing.B) {
	args := append([]string{"bench"}, simpleArgs...)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Value: 8080, Usage: "Server port"},
				&cli.BoolFlag{Name: "verbose", Usage: "Verbose output"},
			},
			Action: func(c *cli.Context) error {
				_ = c.Int("port")
				return nil
			},
		}
		if err := app.Run(args); err != nil {
			b.Fatal(err)
		}
	}
}

var repeatedArgs = []string{"--tag", "a", "--tag", "b", "--tag", "c", "--name", "svc"}

func BenchmarkRepeatedFlags_Argparse(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p := argparse.New("bench", "1.0")
		p.Add(argparse.RequiresNext|argparse.Multiple, "--tag")
		p.Add(argparse.RequiresNext|argparse.Required, "--name")
		if err := p.Parse(repeatedArgs); err != nil {
			b.Fatal(err)
		}
		if tags, _ := argparse.Get[string](p, "--tag"); len(tags) != 3 {
			b.Fatal("tags not collected")
		}
	}
}

func BenchmarkRepeatedFlags_Cobra(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var tags []string
		cmd := &cobra.Command{Use: "bench", Run: func(_ *cobra.Command, _ []string) {}}
		cmd.Flags().StringArrayVar(&tags, "tag", nil, "Tag")
		cmd.Flags().String("name", "", "Name")
		_ = cmd.MarkFlagRequired("name")
		cmd.SetArgs(repeatedArgs)
		if err := cmd.Execute(); err != nil {
			b.Fatal(err)
		}
		if len(tags) != 3 {
			b.Fatal("tags not collected")
		}
	}
}

func BenchmarkRepeatedFlags_Urfave(b *testing.B) {
	args := append([]string{"bench"}, repeatedArgs...)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Flags: []cli.Flag{
				&cli.StringSliceFlag{Name: "tag"},
				&cli.StringFlag{Name: "name", Required: true},
			},
			Action: func(c *cli.Context) error {
				if len(c.StringSlice("tag")) != 3 {
					b.Fatal("tags not collected")
				}
				return nil
			},
		}
		if err := app.Run(args); err != nil {
			b.Fatal(err)
		}
	}
}
