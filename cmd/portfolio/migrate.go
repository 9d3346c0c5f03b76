package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jdoe/portfolio-backend/internal/store"
)

var (
	migrateFrom string
	migrateTo   string
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Copy all content from one storage backend to another",
	Long: `Migrate copies every entity from the source backend into the
destination backend. Records get fresh identifiers and creation
timestamps in the destination; relative ordering is preserved because
records are copied oldest-first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if migrateFrom == migrateTo {
			return fmt.Errorf("source and destination backends are both %q", migrateFrom)
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		src, err := openStore(cmd.Context(), cfg, migrateFrom)
		if err != nil {
			return fmt.Errorf("opening source backend: %w", err)
		}
		defer src.Close()
		dst, err := openStore(cmd.Context(), cfg, migrateTo)
		if err != nil {
			return fmt.Errorf("opening destination backend: %w", err)
		}
		defer dst.Close()

		return copyAll(cmd.Context(), src, dst)
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrateFrom, "from", "file", "source backend (sqlite, file or mongo)")
	migrateCmd.Flags().StringVar(&migrateTo, "to", "sqlite", "destination backend (sqlite, file or mongo)")
}

func copyAll(ctx context.Context, src, dst store.Store) error {
	about, err := src.About(ctx)
	if err != nil {
		return fmt.Errorf("reading about: %w", err)
	}
	if about.ID != "" {
		if _, err := dst.SaveAbout(ctx, about); err != nil {
			return fmt.Errorf("writing about: %w", err)
		}
		fmt.Println("migrated about")
	}

	resume, err := src.Resume(ctx)
	if err != nil {
		return fmt.Errorf("reading resume: %w", err)
	}
	if resume.ID != "" {
		if _, err := dst.SaveResume(ctx, resume); err != nil {
			return fmt.Errorf("writing resume: %w", err)
		}
		fmt.Println("migrated resume")
	}

	projects, err := src.Projects(ctx)
	if err != nil {
		return fmt.Errorf("reading projects: %w", err)
	}
	for i := len(projects) - 1; i >= 0; i-- {
		if _, err := dst.CreateProject(ctx, projects[i]); err != nil {
			return fmt.Errorf("writing project %q: %w", projects[i].Title, err)
		}
	}
	fmt.Printf("migrated %d projects\n", len(projects))

	experiences, err := src.Experiences(ctx)
	if err != nil {
		return fmt.Errorf("reading experiences: %w", err)
	}
	for i := len(experiences) - 1; i >= 0; i-- {
		if _, err := dst.CreateExperience(ctx, experiences[i]); err != nil {
			return fmt.Errorf("writing experience %q: %w", experiences[i].Role, err)
		}
	}
	fmt.Printf("migrated %d experiences\n", len(experiences))

	certificates, err := src.Certificates(ctx)
	if err != nil {
		return fmt.Errorf("reading certificates: %w", err)
	}
	for i := len(certificates) - 1; i >= 0; i-- {
		if _, err := dst.CreateCertificate(ctx, certificates[i]); err != nil {
			return fmt.Errorf("writing certificate %q: %w", certificates[i].Title, err)
		}
	}
	fmt.Printf("migrated %d certificates\n", len(certificates))

	skills, err := src.Skills(ctx)
	if err != nil {
		return fmt.Errorf("reading skills: %w", err)
	}
	for _, skill := range skills {
		if _, err := dst.CreateSkill(ctx, skill); err != nil {
			return fmt.Errorf("writing skill %q: %w", skill.Name, err)
		}
	}
	fmt.Printf("migrated %d skills\n", len(skills))

	messages, err := src.Messages(ctx)
	if err != nil {
		return fmt.Errorf("reading messages: %w", err)
	}
	for i := len(messages) - 1; i >= 0; i-- {
		if _, err := dst.CreateMessage(ctx, messages[i]); err != nil {
			return fmt.Errorf("writing message from %q: %w", messages[i].Name, err)
		}
	}
	fmt.Printf("migrated %d messages\n", len(messages))

	return nil
}
