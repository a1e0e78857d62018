package zkvm

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/keurnel/zkasm/internal/config"
	"github.com/keurnel/zkasm/internal/zkasm"
	"github.com/spf13/cobra"
)

var (
	outputPath     string
	configPath     string
	strictFlag     bool
	allowNonR8Base bool
)

var AssembleFileCmd = &cobra.Command{
	Use:     "assemble-file <assembly-file>",
	GroupID: "file-operations",
	Short:   "Assemble a zkVM assembly file into instruction words.",
	Long:    `Assemble a zkVM assembly file into its newline-delimited hex instruction words.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runAssembleFile(cmd, args); err != nil {
			cmd.PrintErrln("Error:", err)
			os.Exit(1)
		}
	},
}

func init() {
	AssembleFileCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write assembled words to this file instead of stdout")
	AssembleFileCmd.Flags().StringVar(&configPath, "config", "", "path to a zkasm config.toml (defaults to ~/.config/zkasm/config.toml)")
	AssembleFileCmd.Flags().BoolVar(&strictFlag, "strict", false, "fail on an unresolved label instead of emitting the legacy zero placeholder")
	AssembleFileCmd.Flags().BoolVar(&allowNonR8Base, "allow-non-r8-base", false, "permit a frame-pointer memory operand based on a register other than r8")
}

// runAssembleFile resolves the source file, loads configuration, and runs
// the full assemble-link pipeline over it.
func runAssembleFile(cmd *cobra.Command, args []string) error {
	fullPath, err := resolveFilePath(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	source, err := readSourceFile(fullPath)
	if err != nil {
		return err
	}
	log.Printf("zkasm: assembling %s", fullPath)

	asm := zkasm.New(zkasm.Config{
		Strict:         cfg.Assembler.Strict || strictFlag,
		AllowNonR8Base: cfg.Assembler.AllowNonR8Base || allowNonR8Base,
	})

	words, err := asm.AssembleLink(strings.Split(source, "\n"))
	if err != nil {
		return fmt.Errorf("failed to assemble %s: %w", fullPath, err)
	}
	log.Printf("zkasm: emitted %d words", len(words))

	return writeWords(cmd, words)
}

// resolveFilePath validates the CLI arguments and returns the absolute path
// to the assembly file.
func resolveFilePath(args []string) (string, error) {
	if len(args) < 1 || args[0] == "" {
		return "", fmt.Errorf("no assembly file provided")
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("unable to get current working directory: %w", err)
	}

	fullPath := filepath.Join(cwd, args[0])
	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		return "", fmt.Errorf("assembly file does not exist at path: %s", fullPath)
	}

	return fullPath, nil
}

// loadConfig loads the config file at configPath, or the default location
// if configPath was not set.
func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.Load()
	}
	return config.LoadFrom(configPath)
}

// readSourceFile reads the assembly source file and returns its content.
func readSourceFile(path string) (string, error) {
	sourceBytes, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read assembly file: %w", err)
	}
	return string(sourceBytes), nil
}

// writeWords writes the assembled words, one per line, to outputPath if
// set, or to the command's stdout otherwise.
func writeWords(cmd *cobra.Command, words []string) error {
	output := strings.Join(words, "\n") + "\n"

	if outputPath == "" {
		cmd.Print(output)
		return nil
	}

	if err := os.WriteFile(outputPath, []byte(output), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
