package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jdoe/portfolio-backend/internal/models"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed sample singleton content",
	Long: `Seed writes placeholder About and Resume records so a fresh
deployment has something to render. Existing records are left alone.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		st, err := openStore(cmd.Context(), cfg, cfg.Backend)
		if err != nil {
			return err
		}
		defer st.Close()
		ctx := cmd.Context()

		about, err := st.About(ctx)
		if err != nil {
			return err
		}
		if about.ID == "" {
			_, err := st.SaveAbout(ctx, models.About{
				Title:       "John Doe",
				Description: "A highly motivated and results-oriented software engineer with a passion for building innovative solutions.",
				SocialLinks: map[string]string{
					"github":   "https://github.com/johndoe",
					"linkedin": "https://linkedin.com/in/johndoe",
					"email":    "john.doe@example.com",
				},
			})
			if err != nil {
				return err
			}
			fmt.Println("About seeded successfully!")
		} else {
			fmt.Println("About already exists, skipping")
		}

		resume, err := st.Resume(ctx)
		if err != nil {
			return err
		}
		if resume.ID == "" {
			_, err := st.SaveResume(ctx, models.Resume{
				PersonalInfo: map[string]string{
					"name":     "John Doe",
					"email":    "john.doe@example.com",
					"phone":    "123-456-7890",
					"linkedin": "linkedin.com/in/johndoe",
					"github":   "github.com/johndoe",
					"website":  "johndoe.com",
				},
				Summary: "A highly motivated and results-oriented software engineer with a passion for building innovative solutions.",
				Education: []models.Education{
					{
						Degree:     "Master of Science in Computer Science",
						University: "University of Example",
						Year:       "2023",
					},
				},
				Experience: []models.ResumeExperience{
					{
						Role:    "Software Engineer",
						Company: "Tech Solutions Inc.",
						Period:  "2023 - Present",
						Achievements: []string{
							"Developed and maintained web applications using React and Node.js.",
							"Collaborated with cross-functional teams to deliver high-quality software.",
						},
					},
				},
			})
			if err != nil {
				return err
			}
			fmt.Println("Resume seeded successfully!")
		} else {
			fmt.Println("Resume already exists, skipping")
		}
		return nil
	},
}
