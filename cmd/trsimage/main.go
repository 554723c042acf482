package main

import (
	"io"
	"log"
	"os"
	"path/filepath"

	trsimage "github.com/kwadsten/trs-image"
	"github.com/urfave/cli/v2"
)

const defaultConfig = "trsimage.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func viewFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "contrast",
			Value: 60,
			Usage: "black/white threshold, 0-100",
		},
		&cli.IntFlag{
			Name:  "zoom",
			Usage: "zoom steps, -50 to 50",
		},
		&cli.IntFlag{
			Name:  "pan-x",
			Usage: "pan steps right (negative for left)",
		},
		&cli.IntFlag{
			Name:  "pan-y",
			Usage: "pan steps down (negative for up)",
		},
		&cli.BoolFlag{
			Name:  "invert",
			Usage: "invert black and white",
		},
	}
}

func options(c *cli.Context) trsimage.ConvertOptions {
	return trsimage.ConvertOptions{
		PanX:     c.Int("pan-x"),
		PanY:     c.Int("pan-y"),
		Zoom:     c.Int("zoom"),
		Contrast: c.Int("contrast"),
		Invert:   c.Bool("invert"),
	}
}

func newConverter(c *cli.Context) (*trsimage.TRSImage, *trsimage.ConfigDB, error) {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	config, err := trsimage.NewConfigDB(c.String("config"))
	if err != nil {
		return nil, nil, err
	}

	return trsimage.New(config, logger), config, nil
}

func main() {
	app := cli.NewApp()

	app.Name = "trsimage"
	app.Usage = "TRS-80 Model III image converter"
	app.Version = "1.5.0"

	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			EnvVars: []string{"TRSIMAGE_CONFIG"},
			Value:   filepath.Join(configDir, defaultConfig),
			Usage:   "path to settings database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "convert",
			Usage:       "Convert an image to a BASIC program",
			Description: "",
			ArgsUsage:   "FILE",
			Flags: append(viewFlags(),
				&cli.StringFlag{
					Name:  "output-dir",
					Usage: "output directory (default: last used)",
				},
				&cli.BoolFlag{
					Name:  "image-map",
					Usage: "also write a plain text image map (.tim)",
				},
				&cli.StringFlag{
					Name:  "preview",
					Usage: "also write a preview bitmap to this PNG file",
				}),
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				t, config, err := newConverter(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer config.Close()

				opts := options(c)
				opts.ImageMap = c.Bool("image-map")
				opts.Preview = c.String("preview")

				if opts.OutputDir = c.String("output-dir"); opts.OutputDir == "" {
					if opts.OutputDir, err = config.OutputDir(); err != nil {
						return cli.Exit(err, 1)
					}
					if opts.OutputDir == "" {
						if opts.OutputDir, err = os.Getwd(); err != nil {
							return cli.Exit(err, 1)
						}
					}
				}

				if err := t.Convert(c.Args().First(), opts); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "preview",
			Usage:       "Render the preview bitmap to a PNG file",
			Description: "",
			ArgsUsage:   "FILE OUTPUT",
			Flags:       viewFlags(),
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				t, config, err := newConverter(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer config.Close()

				if err := t.Preview(c.Args().Get(0), c.Args().Get(1), options(c)); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
