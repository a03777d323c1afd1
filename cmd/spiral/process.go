package main

import (
	"context"
	"flag"
	"fmt"
	"path/filepath"

	"github.com/pipelined/spiral/log"
	"github.com/pipelined/spiral/png"
	"github.com/pipelined/spiral/transform"
)

type processCommand struct {
	in         string
	out        string
	transforms stringList
	compare    bool
	scale      int
	log        log.Logger
}

//Implement command interface
func (cmd *processCommand) Name() string {
	return "process"
}

func (cmd *processCommand) Help() string {
	return "Process image with listed transforms"
}

func (cmd *processCommand) Register(fs *flag.FlagSet) {
	fs.StringVar(&cmd.in, "in", "", "input image to process (required)")
	fs.StringVar(&cmd.out, "out", "", "directory to save processed images, defaults to input directory")
	fs.Var(&cmd.transforms, "transform", "semicolon separated transform names to apply (required)")
	fs.BoolVar(&cmd.compare, "compare", false, "also save before and after comparison")
	fs.IntVar(&cmd.scale, "scale", 1, "scale of comparison image")
}

func (cmd *processCommand) Run() error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if cmd.log == nil {
		cmd.log = log.GetLogger()
	}
	img, err := png.Read(cmd.in)
	if err != nil {
		return err
	}
	cmd.log.Debug(fmt.Sprintf("read %v: %v", cmd.in, img.Shape()))

	results, err := transform.ApplyAll(context.Background(), img, cmd.transforms...)
	if err != nil {
		return err
	}
	for _, r := range results {
		path := cmd.outputPath(r.Name)
		if err := png.Write(path, r.Image); err != nil {
			return err
		}
		cmd.log.Info(fmt.Sprintf("%v: saved %v %v", r.Name, path, r.Image.Shape()))
		if !cmd.compare {
			continue
		}
		c, err := png.Comparison(img, r.Image, cmd.scale)
		if err != nil {
			return err
		}
		path = cmd.outputPath(r.Name + "_compare")
		if err := png.Write(path, c); err != nil {
			return err
		}
		cmd.log.Info(fmt.Sprintf("%v: saved comparison %v", r.Name, path))
	}
	return nil
}

func (cmd *processCommand) outputPath(name string) string {
	path := png.OutputPath(cmd.in, name)
	if cmd.out == "" {
		return path
	}
	return filepath.Join(cmd.out, filepath.Base(path))
}

func (cmd *processCommand) Validate() error {
	var message string
	if cmd.in == "" {
		message = message + "Missing -in required flag\n"
	}
	if len(cmd.transforms) == 0 {
		message = message + "Missing -transform required flag\n"
	}
	for _, name := range cmd.transforms {
		if _, err := transform.Lookup(name); err != nil {
			message = message + fmt.Sprintf("%v\n", err)
		}
	}
	if cmd.scale <= 0 {
		message = message + "Flag -scale must be positive\n"
	}
	if message != "" {
		return fmt.Errorf("%s", message)
	}
	return nil
}
