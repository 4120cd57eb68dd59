package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openlearn/coursepack/internal/course"
	"github.com/openlearn/coursepack/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export <package.json>",
	Short: "Export the stored course package to a package file",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return err
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	pkg, err := st.Lessons().LoadPackage(context.Background())
	if err != nil {
		return err
	}
	if len(pkg.Lessons) == 0 {
		return fmt.Errorf("no lessons stored in %s", dbPath)
	}

	if err := course.SavePackage(args[0], pkg); err != nil {
		return err
	}
	fmt.Printf("Exported %d lessons to %s\n", len(pkg.Lessons), args[0])
	return nil
}
