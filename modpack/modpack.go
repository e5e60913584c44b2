// Package modpack implements the modpack lifecycle: create, update and clean.
package modpack

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/leocov-dev/pzpack/core"
	"github.com/leocov-dev/pzpack/fileio"
)

var (
	ErrModpackExists   = errors.New("modpack already exists")
	ErrModpackNotFound = errors.New("modpack does not exist")
)

// Options carries everything a lifecycle operation needs. Source is unused by Clean.
type Options struct {
	Source      string
	Destination string
	Name        string
	Layout      core.Layout
	ModIDs      []string
	Ignore      fileio.Matcher
	Out         io.Writer
}

func (o Options) modpack() *core.Modpack {
	return core.NewModpack(o.Destination, o.Name, o.Layout)
}

func (o Options) out() io.Writer {
	if o.Out == nil {
		return os.Stdout
	}
	return o.Out
}

// Create builds a new modpack tree and fills it with the configured mods.
// It returns ErrModpackExists, without touching the disk, if the modpack root is already present.
func Create(opts Options) (*CopyReport, error) {
	out := opts.out()
	pack := opts.modpack()

	exists, err := pack.Exists()
	if err != nil {
		return nil, err
	}
	if exists {
		fmt.Fprintf(out, "Error: a modpack named '%s' already exists at %s\n", pack.Name, pack.GetRoot())
		fmt.Fprintln(out, "Please choose a different name or use the 'update' command to update the existing modpack.")
		return nil, fmt.Errorf("%w: %s", ErrModpackExists, pack.GetRoot())
	}

	fmt.Fprintf(out, "Creating modpack structure '%s'...\n", pack.Name)
	if err := fileio.InitModpackDirs(pack); err != nil {
		return nil, err
	}

	descriptor, err := fileio.WriteDescriptor(pack)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(out, "%s file created at %s\n", pack.Layout.DescriptorFile, descriptor)

	fmt.Fprintln(out, "Copying mods to the new modpack...")
	report := copyMods(opts, pack)
	if report.HasErrors() {
		fmt.Fprintln(out, "Modpack creation completed with errors. Check the messages above.")
	} else {
		fmt.Fprintln(out, "Modpack created successfully!")
	}
	return report, nil
}

// Update empties the content directory of an existing modpack and copies every configured mod again
func Update(opts Options) (*CopyReport, error) {
	out := opts.out()
	pack := opts.modpack()

	if err := requireExisting(out, pack); err != nil {
		return nil, err
	}

	if err := Clean(opts); err != nil {
		return nil, err
	}

	fmt.Fprintln(out, "Updating mods...")
	report := copyMods(opts, pack)
	if report.HasErrors() {
		fmt.Fprintln(out, "Update completed with errors. Check the messages above.")
	} else {
		fmt.Fprintln(out, "Mods updated successfully!")
	}
	return report, nil
}

// Clean removes everything inside the content directory of an existing
// modpack. The directory itself, the descriptor and the modpack root stay.
func Clean(opts Options) error {
	out := opts.out()
	pack := opts.modpack()

	if err := requireExisting(out, pack); err != nil {
		return err
	}

	contentDir := pack.GetContentDir()
	fmt.Fprintf(out, "Cleaning destination directory: %s\n", contentDir)
	existed, err := fileio.EmptyDir(contentDir)
	if err != nil {
		return fmt.Errorf("failed to clean %s: %w", contentDir, err)
	}
	if !existed {
		fmt.Fprintf(out, "Directory %s does not exist. Nothing to clean.\n", contentDir)
		return nil
	}

	log.Info().Str("modpack", pack.Name).Msg("Content directory emptied")
	fmt.Fprintf(out, "Directory %s cleaned successfully.\n", contentDir)
	return nil
}

func requireExisting(out io.Writer, pack *core.Modpack) error {
	exists, err := pack.Exists()
	if err != nil {
		return err
	}
	if !exists {
		fmt.Fprintf(out, "Error: modpack '%s' does not exist in %s\n", pack.Name, pack.Destination)
		fmt.Fprintln(out, "Please check the modpack name and try again.")
		return fmt.Errorf("%w: %s", ErrModpackNotFound, pack.GetRoot())
	}
	return nil
}
