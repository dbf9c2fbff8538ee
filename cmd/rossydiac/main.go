// Command rossydiac is the thin CLI collaborator around the rossydiac
// library: it parses flags, reads/writes files, and classifies errors
// into process exit codes (spec.md §6, a non-goal of the core itself).
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	rossydiac "github.com/N1CEJAN/RossyDiac"
	"github.com/N1CEJAN/RossyDiac/core/dtpconv"
	"github.com/N1CEJAN/RossyDiac/core/errkind"
	"github.com/N1CEJAN/RossyDiac/core/msgconv"
)

const (
	exitOK           = 0
	exitInvalidValue = 1
	exitFormat       = 2
	exitIo           = 3
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("rossydiac: ")

	if len(os.Args) < 2 {
		log.Println("expected a subcommand: convert-to-dtp, convert-to-msg, print-msg, print-dtp")
		os.Exit(exitInvalidValue)
	}

	var err error
	switch os.Args[1] {
	case "convert-to-dtp":
		err = runConvertToDtp(os.Args[2:])
	case "convert-to-msg":
		err = runConvertToMsg(os.Args[2:])
	case "print-msg":
		err = runPrintMsg(os.Args[2:])
	case "print-dtp":
		err = runPrintDtp(os.Args[2:])
	default:
		log.Printf("unknown subcommand %q", os.Args[1])
		os.Exit(exitInvalidValue)
	}

	if err != nil {
		log.Println(err)
		os.Exit(classify(err))
	}
}

// classify maps a core error into the exit code spec.md §6/§7 mandates;
// a plain I/O error (no Kind method) also counts as Io.
func classify(err error) int {
	var kErr errkind.Error
	if !errors.As(err, &kErr) {
		return exitIo
	}
	switch kErr.Kind() {
	case errkind.Format:
		return exitFormat
	case errkind.Semantic:
		return exitInvalidValue
	default:
		return exitIo
	}
}

func runConvertToDtp(args []string) error {
	fs := flag.NewFlagSet("convert-to-dtp", flag.ExitOnError)
	file := fs.String("file", "", "path to the MSG input file")
	destDir := fs.String("destination-directory", ".", "directory to write the DTP output file into")
	pkg := fs.String("package-name", "", "ROS2 package name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" || *pkg == "" {
		return fmt.Errorf("--file and --package-name are required")
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		return err
	}
	stem := strings.TrimSuffix(filepath.Base(*file), filepath.Ext(*file))

	out, name, err := rossydiac.ConvertToDtp(data, stem, *pkg)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(*destDir, name+".dtp.xml"), out, 0o644)
}

func runConvertToMsg(args []string) error {
	fs := flag.NewFlagSet("convert-to-msg", flag.ExitOnError)
	file := fs.String("file", "", "path to the DTP input file")
	destDir := fs.String("destination-directory", ".", "directory to write the MSG output file into")
	pkg := fs.String("package-name", "", "ROS2 package name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" || *pkg == "" {
		return fmt.Errorf("--file and --package-name are required")
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		return err
	}

	out, name, err := rossydiac.ConvertToMsg(data, *pkg)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(*destDir, name+".msg"), out, 0o644)
}

func runPrintMsg(args []string) error {
	fs := flag.NewFlagSet("print-msg", flag.ExitOnError)
	file := fs.String("file", "", "path to the MSG input file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return fmt.Errorf("--file is required")
	}
	data, err := os.ReadFile(*file)
	if err != nil {
		return err
	}
	stem := strings.TrimSuffix(filepath.Base(*file), filepath.Ext(*file))
	msgType, err := msgconv.Parse(data, stem)
	if err != nil {
		return err
	}
	fmt.Printf("%+v\n", msgType)
	return nil
}

func runPrintDtp(args []string) error {
	fs := flag.NewFlagSet("print-dtp", flag.ExitOnError)
	file := fs.String("file", "", "path to the DTP input file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return fmt.Errorf("--file is required")
	}
	data, err := os.ReadFile(*file)
	if err != nil {
		return err
	}
	dtpType, err := dtpconv.Parse(data)
	if err != nil {
		return err
	}
	fmt.Printf("%+v\n", dtpType)
	return nil
}
