package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/kissoflove/mvcgen/pkg/emit"
	"github.com/kissoflove/mvcgen/pkg/orchestrator"
	"github.com/kissoflove/mvcgen/pkg/widgetlist"
)

type settings struct {
	output    string
	namingDir string
	force     bool
	watch     bool
}

func main() {
	output := flag.String("output", "", "directory for the generated files (default \".\")")
	namingDir := flag.String("naming", "", "directory holding YAML naming overlays")
	configPath := flag.String("config", "", "config file (default ./mvcgen.yaml when present)")
	force := flag.Bool("force", false, "overwrite existing files without asking")
	watch := flag.Bool("watch", false, "regenerate whenever the widget list changes")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: mvcgen-cli [flags] <widget-list-file>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	listPath := flag.Arg(0)

	cfg, err := loadSettings(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Explicit flags win over config file and environment.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "output":
			cfg.output = *output
		case "naming":
			cfg.namingDir = *namingDir
		case "force":
			cfg.force = *force
		case "watch":
			cfg.watch = *watch
		}
	})
	if cfg.output == "" {
		cfg.output = "."
	}

	ctx := context.Background()

	var options []orchestrator.Option
	if cfg.namingDir != "" {
		options = append(options, orchestrator.WithNamingFS(os.DirFS(cfg.namingDir)))
	}
	gen := orchestrator.New(options...)

	if err := generate(ctx, gen, listPath, cfg); err != nil {
		log.Fatalf("Failed to generate skeleton: %v", err)
	}

	if cfg.watch {
		if err := watchLoop(ctx, gen, listPath, cfg); err != nil {
			log.Fatalf("Watch failed: %v", err)
		}
	}
}

// loadSettings reads mvcgen.yaml (or the file named by configPath) and the
// MVCGEN_* environment, returning defaults when neither is present.
func loadSettings(configPath string) (settings, error) {
	v := viper.New()
	v.SetDefault("output", "")
	v.SetDefault("naming_dir", "")
	v.SetDefault("force", false)
	v.SetDefault("watch", false)

	v.SetEnvPrefix("MVCGEN")
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return settings{}, err
		}
	} else {
		v.SetConfigName("mvcgen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return settings{}, err
			}
		}
	}

	return settings{
		output:    v.GetString("output"),
		namingDir: v.GetString("naming_dir"),
		force:     v.GetBool("force"),
		watch:     v.GetBool("watch"),
	}, nil
}

func generate(ctx context.Context, gen *orchestrator.Orchestrator, listPath string, cfg settings) error {
	result, err := gen.Generate(ctx, orchestrator.Request{
		Source: widgetlist.SourceFromFile(listPath),
	})
	if err != nil {
		return err
	}

	if !cfg.force && !cfg.watch {
		existing, err := emit.Existing(cfg.output, result.Files)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			overwrite := false
			prompt := &survey.Confirm{
				Message: fmt.Sprintf("Overwrite %s?", strings.Join(existing, ", ")),
			}
			if err := survey.AskOne(prompt, &overwrite); err != nil {
				return err
			}
			if !overwrite {
				fmt.Println("Aborted, nothing written.")
				return nil
			}
		}
	}

	if err := emit.WriteFiles(cfg.output, result.Files); err != nil {
		return err
	}

	names := make([]string, 0, len(result.Files))
	for _, file := range result.Files {
		names = append(names, file.FileName)
	}
	fmt.Printf("Wrote %s to %s\n", strings.Join(names, ", "), cfg.output)

	for _, warning := range result.Warnings {
		log.Printf("warning: %s", warning.Message)
	}
	return nil
}

// watchLoop regenerates on every change to the widget list until the process
// is interrupted. The parent directory is watched because most editors
// replace files on save instead of writing in place.
func watchLoop(ctx context.Context, gen *orchestrator.Orchestrator, listPath string, cfg settings) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dir := filepath.Dir(listPath)
	if err := watcher.Add(dir); err != nil {
		return err
	}

	target := filepath.Clean(listPath)
	log.Printf("watching %s", target)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := generate(ctx, gen, listPath, cfg); err != nil {
				log.Printf("regenerate: %v", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch: %v", err)
		}
	}
}
